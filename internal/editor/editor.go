// Package editor owns the live gallery scene and the full set of
// operations the builder UI drives: content mutations (routed through the
// undo/redo history), selection and viewport state, snapping queries,
// clipboard, and dirty/saved tracking for the persistence layer.
package editor

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/artfolio/artfolio/canvas-go/internal/history"
	"github.com/artfolio/artfolio/canvas-go/internal/scene"
	"github.com/artfolio/artfolio/canvas-go/internal/snap"
)

const (
	MinZoom = 0.2
	MaxZoom = 3.0

	// Default canvas size for a gallery started from scratch.
	DefaultWidth  = 1280
	DefaultHeight = 800
)

// Editor is the single state container for one open gallery. All content
// mutations go through Commands on the history; mutating the objects any
// other way breaks undo. View state (selection, zoom, pan, toggles) is
// not content and bypasses the history.
//
// The struct is safe for concurrent use: the autosave timer snapshots the
// document from its own goroutine.
type Editor struct {
	mu sync.RWMutex

	doc       *scene.Document
	selected  map[string]bool
	clipboard []*scene.Object

	zoom       float64
	panX, panY float64
	grid       bool
	snapOn     bool

	hist      *history.History
	unsaved   bool
	lastSaved time.Time
	rev       uint64

	onChange []func()

	log *slog.Logger
}

// New returns an editor holding an empty default-sized document.
func New(log *slog.Logger) *Editor {
	if log == nil {
		log = slog.Default()
	}
	return &Editor{
		doc:      scene.NewDocument(DefaultWidth, DefaultHeight),
		selected: make(map[string]bool),
		zoom:     1,
		snapOn:   true,
		hist:     history.New(),
		log:      log,
	}
}

// InitializeState replaces the whole document in one shot: objects,
// size and background. Selection and history are cleared, the document
// counts as just saved. Used only when hydrating from storage, never
// mid-session.
func (e *Editor) InitializeState(doc *scene.Document) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if doc == nil {
		e.doc = scene.NewDocument(DefaultWidth, DefaultHeight)
	} else {
		e.doc = doc.Clone()
	}
	e.selected = make(map[string]bool)
	e.hist.Clear()
	e.unsaved = false
	e.lastSaved = time.Now()
}

// OnContentChange registers fn to run after every executed, undone or
// redone content command. Observers run outside the editor's lock.
func (e *Editor) OnContentChange(fn func()) {
	e.mu.Lock()
	e.onChange = append(e.onChange, fn)
	e.mu.Unlock()
}

func (e *Editor) notifyChange() {
	e.mu.RLock()
	fns := make([]func(), len(e.onChange))
	copy(fns, e.onChange)
	e.mu.RUnlock()
	for _, fn := range fns {
		fn()
	}
}

// markMutated bumps the revision and dirty flag. Callers hold e.mu.
func (e *Editor) markMutated() {
	e.rev++
	e.unsaved = true
}

// Snapshot returns a deep copy of the current document together with the
// revision counter identifying it, for the save path.
func (e *Editor) Snapshot() (*scene.Document, uint64) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Clone(), e.rev
}

// MarkSaved records a successful save of the snapshot revision rev. The
// unsaved flag clears only when nothing mutated after that snapshot, so a
// save that raced an edit leaves the document dirty.
func (e *Editor) MarkSaved(rev uint64, at time.Time) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastSaved = at
	if e.rev == rev {
		e.unsaved = false
	}
}

// SelectObjects replaces the selection. Selection is not content: it is
// not undoable.
func (e *Editor) SelectObjects(ids []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selected = make(map[string]bool, len(ids))
	for _, id := range ids {
		e.selected[id] = true
	}
}

// ClearSelection drops the selection.
func (e *Editor) ClearSelection() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selected = make(map[string]bool)
}

// SetZoom clamps z to [MinZoom, MaxZoom] and applies it.
func (e *Editor) SetZoom(z float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.zoom = min(max(z, MinZoom), MaxZoom)
}

func (e *Editor) SetPan(x, y float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.panX, e.panY = x, y
}

func (e *Editor) ToggleGrid() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.grid = !e.grid
}

func (e *Editor) ToggleSnap() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.snapOn = !e.snapOn
}

// SnapPosition resolves the snapped position and guides for dragging the
// identified object to the proposed (x, y). The object's stored anchor
// convention is respected: a circle's proposal is its center. Unknown ids
// return the input unchanged.
func (e *Editor) SnapPosition(id string, x, y float64) (float64, float64, []snap.Guide) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	obj := e.doc.FindObject(id)
	if obj == nil {
		return x, y, nil
	}

	// Offset between the stored anchor and the bounding box origin
	// (non-zero for circles). The snap engine works on box coordinates.
	box := obj.BoundingBox()
	offX, offY := box.X-obj.X, box.Y-obj.Y

	w, h, _ := obj.SnapSize()
	siblings := make([]*scene.Object, 0, len(e.doc.Objects))
	for _, sib := range e.doc.Objects {
		if sib.ID != id {
			siblings = append(siblings, sib)
		}
	}

	res := snap.Resolve(snap.Input{
		X: x + offX, Y: y + offY,
		Width: w, Height: h,
		Siblings:     siblings,
		CanvasWidth:  e.doc.Width,
		CanvasHeight: e.doc.Height,
		GridEnabled:  e.grid,
		SnapEnabled:  e.snapOn,
	})
	return res.X - offX, res.Y - offY, res.Guides
}

// Document returns a deep copy of the current document.
func (e *Editor) Document() *scene.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Clone()
}

// Objects returns deep copies of the top-level objects in document order.
func (e *Editor) Objects() []*scene.Object {
	e.mu.RLock()
	defer e.mu.RUnlock()
	objs := make([]*scene.Object, len(e.doc.Objects))
	for i, obj := range e.doc.Objects {
		objs[i] = obj.Clone()
	}
	return objs
}

// SelectedIDs returns the selection in sorted order.
func (e *Editor) SelectedIDs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	ids := make([]string, 0, len(e.selected))
	for id := range e.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (e *Editor) Zoom() float64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.zoom
}

func (e *Editor) Pan() (float64, float64) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.panX, e.panY
}

func (e *Editor) GridEnabled() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.grid
}

func (e *Editor) SnapEnabled() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snapOn
}

// HasUnsavedChanges reports whether content mutated since the last
// successful save or hydration.
func (e *Editor) HasUnsavedChanges() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.unsaved
}

// LastSaved returns the time of the last successful save, zero before the
// first hydration.
func (e *Editor) LastSaved() time.Time {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.lastSaved
}

func (e *Editor) CanUndo() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hist.CanUndo()
}

func (e *Editor) CanRedo() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hist.CanRedo()
}

// HistoryLen reports how many commands are undoable.
func (e *Editor) HistoryLen() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.hist.Len()
}
