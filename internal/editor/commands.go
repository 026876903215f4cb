package editor

import (
	"github.com/artfolio/artfolio/canvas-go/internal/history"
	"github.com/artfolio/artfolio/canvas-go/internal/scene"
	"github.com/artfolio/artfolio/canvas-go/internal/typeid"
)

// AddObject appends a fresh object to the scene as an undoable command
// and returns its id (assigned when the caller left it empty). Nil
// objects are ignored.
func (e *Editor) AddObject(obj *scene.Object) string {
	if obj == nil {
		return ""
	}

	e.mu.Lock()
	if obj.ID == "" {
		obj.ID = typeid.NewObjectID()
	}
	id := obj.ID
	e.hist.Execute(&history.Command{
		Description: "add " + string(obj.Type),
		Execute: func() {
			e.doc.Objects = append(e.doc.Objects, obj)
		},
		Undo: func() {
			e.removeByID(id)
		},
	})
	e.markMutated()
	e.mu.Unlock()

	e.notifyChange()
	return id
}

// UpdateObject applies the patch to the identified top-level object. The
// command captures the full prior object, so undo restores it wholesale
// rather than reverting field by field. Unknown ids are a silent no-op
// and push nothing onto the history.
func (e *Editor) UpdateObject(id string, patch Patch) bool {
	e.mu.Lock()
	prior := e.doc.FindObject(id)
	if prior == nil {
		e.mu.Unlock()
		e.log.Debug("update ignored, object missing", "id", id)
		return false
	}

	updated := prior.Clone()
	patch.applyTo(updated)
	e.hist.Execute(&history.Command{
		Description: "update " + string(prior.Type),
		Execute: func() {
			e.replaceByID(id, updated)
		},
		Undo: func() {
			e.replaceByID(id, prior)
		},
	})
	e.markMutated()
	e.mu.Unlock()

	e.notifyChange()
	return true
}

// DeleteObject removes the identified top-level object and drops it from
// the selection. Undo re-appends the object at the end of the list, not
// at its original position. Unknown ids are a silent no-op.
func (e *Editor) DeleteObject(id string) bool {
	e.mu.Lock()
	obj := e.doc.FindObject(id)
	if obj == nil {
		e.mu.Unlock()
		e.log.Debug("delete ignored, object missing", "id", id)
		return false
	}

	e.hist.Execute(&history.Command{
		Description: "delete " + string(obj.Type),
		Execute: func() {
			e.removeByID(id)
			delete(e.selected, id)
		},
		Undo: func() {
			e.doc.Objects = append(e.doc.Objects, obj)
		},
	})
	e.markMutated()
	e.mu.Unlock()

	e.notifyChange()
	return true
}

// Undo reverts the most recent content command. Undoing re-dirties the
// document: the persisted state no longer matches.
func (e *Editor) Undo() bool {
	e.mu.Lock()
	ok := e.hist.Undo()
	if ok {
		e.markMutated()
	}
	e.mu.Unlock()

	if ok {
		e.notifyChange()
	}
	return ok
}

// Redo re-applies the most recently undone command.
func (e *Editor) Redo() bool {
	e.mu.Lock()
	ok := e.hist.Redo()
	if ok {
		e.markMutated()
	}
	e.mu.Unlock()

	if ok {
		e.notifyChange()
	}
	return ok
}

// removeByID deletes the top-level object with the given id, preserving
// the order of the rest. Callers hold e.mu.
func (e *Editor) removeByID(id string) {
	for i, obj := range e.doc.Objects {
		if obj.ID == id {
			e.doc.Objects = append(e.doc.Objects[:i], e.doc.Objects[i+1:]...)
			return
		}
	}
}

// replaceByID swaps the top-level object with the given id in place.
// Callers hold e.mu.
func (e *Editor) replaceByID(id string, obj *scene.Object) {
	for i, cur := range e.doc.Objects {
		if cur.ID == id {
			e.doc.Objects[i] = obj
			return
		}
	}
}
