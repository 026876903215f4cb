// Package autosave schedules background persistence for the editor. A
// debounce timer re-arms on every content mutation and a single
// coordinator mutex serializes saves, so bursts of edits coalesce into
// one write and a save can never overlap another.
package autosave

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/artfolio/artfolio/canvas-go/internal/editor"
	"github.com/artfolio/artfolio/canvas-go/internal/gallery"
)

// DefaultInterval is the quiet period after the last mutation before an
// automatic save fires.
const DefaultInterval = 60 * time.Second

// saveTimeout bounds a single timer-initiated store round trip.
const saveTimeout = 30 * time.Second

// State describes where the coordinator sits in its save lifecycle.
type State string

const (
	StateIdle   State = "idle"
	StateDirty  State = "dirty"
	StateSaving State = "saving"
	StateError  State = "error"
)

// Coordinator watches an editor for content mutations and persists its
// document to a gallery.Store. Until a gallery id is bound, mutations
// mark state but never schedule or perform saves.
type Coordinator struct {
	store    gallery.Store
	ed       *editor.Editor
	interval time.Duration
	log      *slog.Logger

	// saveMu serializes saves end to end. A queued save re-checks the
	// editor's dirty flag once it acquires the mutex, which is what
	// coalesces redundant timer fires.
	saveMu sync.Mutex

	mu        sync.Mutex
	galleryID string
	timer     *time.Timer
	state     State
	lastErr   error
	closed    bool

	onSaved func(galleryID string)
	onError func(err error)
}

// New wires a coordinator to the editor's change feed. interval <= 0
// selects DefaultInterval.
func New(store gallery.Store, ed *editor.Editor, interval time.Duration, log *slog.Logger) *Coordinator {
	if interval <= 0 {
		interval = DefaultInterval
	}
	if log == nil {
		log = slog.Default()
	}
	c := &Coordinator{
		store:    store,
		ed:       ed,
		interval: interval,
		log:      log,
		state:    StateIdle,
	}
	ed.OnContentChange(c.markDirty)
	return c
}

// OnSaved registers a callback fired after each successful save. Set it
// before the first mutation.
func (c *Coordinator) OnSaved(fn func(galleryID string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onSaved = fn
}

// OnError registers a callback fired after each failed save.
func (c *Coordinator) OnError(fn func(err error)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onError = fn
}

// Load fetches the scene for galleryID, resets the editor with it, and
// binds the coordinator so future mutations schedule autosaves.
func (c *Coordinator) Load(ctx context.Context, galleryID string) error {
	doc, err := c.store.LoadScene(ctx, galleryID)
	if err != nil {
		return fmt.Errorf("load gallery %s: %w", galleryID, err)
	}
	c.ed.InitializeState(doc)
	c.Bind(galleryID)
	return nil
}

// Bind associates the coordinator with a gallery id without touching
// the editor, for documents that arrived from somewhere other than the
// store.
func (c *Coordinator) Bind(galleryID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.galleryID = galleryID
	c.state = StateIdle
	c.lastErr = nil
	c.stopTimerLocked()
}

// GalleryID reports the bound gallery id, empty when unbound.
func (c *Coordinator) GalleryID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.galleryID
}

// Status reports the coordinator's lifecycle state and, in StateError,
// the error that put it there.
func (c *Coordinator) Status() (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state, c.lastErr
}

// IsSaving reports whether a save is in flight right now.
func (c *Coordinator) IsSaving() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateSaving
}

// markDirty is the editor change callback. It records the dirty state
// and, when a gallery is bound and the editor has been hydrated, cancels
// and re-arms the debounce timer.
func (c *Coordinator) markDirty() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if c.state != StateSaving {
		c.state = StateDirty
	}
	if c.galleryID == "" || c.ed.LastSaved().IsZero() {
		return
	}
	c.stopTimerLocked()
	c.timer = time.AfterFunc(c.interval, c.timerFire)
}

func (c *Coordinator) timerFire() {
	c.mu.Lock()
	closed := c.closed
	c.mu.Unlock()
	if closed {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	// Save logs its own failures. A failed automatic save does not
	// re-arm; the next mutation does.
	_ = c.Save(ctx)
}

// Save persists the editor's document now. It is a no-op without a
// bound gallery id or when the editor has no unsaved changes, and it
// blocks while another save is in flight, re-checking both conditions
// once the previous save finishes.
func (c *Coordinator) Save(ctx context.Context) error {
	c.saveMu.Lock()
	defer c.saveMu.Unlock()

	c.mu.Lock()
	id := c.galleryID
	c.stopTimerLocked()
	c.mu.Unlock()

	if id == "" {
		return nil
	}
	if !c.ed.HasUnsavedChanges() {
		c.setIdleIfClean()
		return nil
	}

	c.setState(StateSaving)
	doc, rev := c.ed.Snapshot()
	saveID := uuid.NewString()
	c.log.Info("saving scene", "galleryId", id, "saveId", saveID, "objects", len(doc.Objects))

	if err := c.store.SaveScene(ctx, id, doc); err != nil {
		c.mu.Lock()
		c.state = StateError
		c.lastErr = err
		fn := c.onError
		c.mu.Unlock()
		c.log.Error("save failed", "galleryId", id, "saveId", saveID, "error", err)
		if fn != nil {
			fn(err)
		}
		return fmt.Errorf("autosave gallery %s: %w", id, err)
	}

	// Edits that landed mid-save leave the editor dirty; MarkSaved only
	// clears the flag when the saved revision is still current.
	c.ed.MarkSaved(rev, time.Now())
	c.mu.Lock()
	c.lastErr = nil
	fn := c.onSaved
	c.mu.Unlock()
	c.setIdleIfClean()
	c.log.Info("scene saved", "galleryId", id, "saveId", saveID)
	if fn != nil {
		fn(id)
	}
	return nil
}

// Close stops the debounce timer and waits for any in-flight save to
// finish. Explicit Save calls still work afterwards; automatic ones do
// not.
func (c *Coordinator) Close() {
	c.mu.Lock()
	c.closed = true
	c.stopTimerLocked()
	c.mu.Unlock()

	// Drain: taking saveMu blocks until an in-flight save releases it.
	c.saveMu.Lock()
	defer c.saveMu.Unlock()
}

func (c *Coordinator) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

func (c *Coordinator) setIdleIfClean() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ed.HasUnsavedChanges() {
		c.state = StateDirty
	} else {
		c.state = StateIdle
	}
}

// stopTimerLocked is called with c.mu held.
func (c *Coordinator) stopTimerLocked() {
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
