package editor

import (
	"github.com/artfolio/artfolio/canvas-go/internal/history"
	"github.com/artfolio/artfolio/canvas-go/internal/scene"
	"github.com/artfolio/artfolio/canvas-go/internal/typeid"
)

// pasteOffset shifts pasted objects so they do not land exactly on their
// source.
const pasteOffset = 10

// Copy stores detached deep copies of the identified top-level objects on
// the clipboard, in document order. It returns how many were copied.
// Copying is not a content mutation.
func (e *Editor) Copy(ids []string) int {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.clipboard = e.clipboard[:0]
	for _, obj := range e.doc.Objects {
		if want[obj.ID] {
			e.clipboard = append(e.clipboard, obj.Clone())
		}
	}
	return len(e.clipboard)
}

// Paste inserts clones of the clipboard contents as one command: a paste
// is a single user intent, so one undo removes the whole batch. Every
// pasted object and descendant gets a fresh id; positions shift by
// pasteOffset, stacking across repeated pastes. The new objects become
// the selection and their ids are returned.
func (e *Editor) Paste() []string {
	e.mu.Lock()
	if len(e.clipboard) == 0 {
		e.mu.Unlock()
		return nil
	}

	added := make([]*scene.Object, 0, len(e.clipboard))
	ids := make([]string, 0, len(e.clipboard))
	for _, src := range e.clipboard {
		src.X += pasteOffset
		src.Y += pasteOffset
		dup := src.Clone()
		reassignIDs(dup)
		added = append(added, dup)
		ids = append(ids, dup.ID)
	}

	e.hist.Execute(&history.Command{
		Description: "paste",
		Execute: func() {
			e.doc.Objects = append(e.doc.Objects, added...)
		},
		Undo: func() {
			for _, id := range ids {
				e.removeByID(id)
			}
		},
	})
	e.selected = make(map[string]bool, len(ids))
	for _, id := range ids {
		e.selected[id] = true
	}
	e.markMutated()
	e.mu.Unlock()

	e.notifyChange()
	return ids
}

func reassignIDs(obj *scene.Object) {
	obj.ID = typeid.NewObjectID()
	for _, child := range obj.Children {
		reassignIDs(child)
	}
}
