package editor

import (
	"testing"

	"github.com/artfolio/artfolio/canvas-go/internal/scene"
)

func TestCopyPasteAssignsFreshIDs(t *testing.T) {
	frame := scene.New(scene.TypeFrame)
	frame.ID = "f"
	frame.X, frame.Y, frame.Width, frame.Height = 100, 100, 200, 200
	child := scene.New(scene.TypeGalleryItem)
	child.ID = "gi"
	child.Width, child.Height = 50, 50
	frame.Children = []*scene.Object{child}

	e := seededEditor(newRect("r", 0, 0, 50, 50), frame)

	if n := e.Copy([]string{"f", "r"}); n != 2 {
		t.Fatalf("Copy = %d, want 2", n)
	}
	ids := e.Paste()
	if len(ids) != 2 {
		t.Fatalf("Paste returned %d ids, want 2", len(ids))
	}

	doc := e.Document()
	if len(doc.Objects) != 4 {
		t.Fatalf("document has %d objects after paste, want 4", len(doc.Objects))
	}

	// Clipboard preserves document order: the rect came first.
	pastedRect := doc.FindObject(ids[0])
	if pastedRect == nil || pastedRect.Type != scene.TypeRect {
		t.Fatalf("first pasted object = %+v, want a rect", pastedRect)
	}
	if pastedRect.X != 10 || pastedRect.Y != 10 {
		t.Errorf("pasted rect at (%g, %g), want offset (10, 10)", pastedRect.X, pastedRect.Y)
	}

	pastedFrame := doc.FindObject(ids[1])
	if pastedFrame.X != 110 || len(pastedFrame.Children) != 1 {
		t.Fatalf("pasted frame = %+v, want offset copy with one child", pastedFrame)
	}
	childCopy := pastedFrame.Children[0]
	if childCopy.ID == "gi" || childCopy.ID == "" {
		t.Errorf("pasted child id = %q, want a fresh id", childCopy.ID)
	}
	for _, id := range ids {
		if id == "f" || id == "r" {
			t.Errorf("pasted id %q collides with a source id", id)
		}
	}

	sel := e.SelectedIDs()
	if len(sel) != 2 {
		t.Errorf("selection = %v after paste, want the two pasted ids", sel)
	}
}

func TestPasteIsOneUndoableCommand(t *testing.T) {
	e := seededEditor(
		newRect("a", 0, 0, 10, 10),
		newRect("b", 20, 0, 10, 10),
	)
	e.Copy([]string{"a", "b"})
	e.Paste()

	if e.HistoryLen() != 1 {
		t.Fatalf("HistoryLen() = %d after paste, want 1", e.HistoryLen())
	}
	e.Undo()
	if got := len(e.Document().Objects); got != 2 {
		t.Errorf("objects after undoing paste = %d, want the original 2", got)
	}
}

func TestRepeatedPasteStacksOffsets(t *testing.T) {
	e := seededEditor(newRect("r", 40, 40, 50, 50))
	e.Copy([]string{"r"})

	first := e.Paste()
	second := e.Paste()

	doc := e.Document()
	if x := doc.FindObject(first[0]).X; x != 50 {
		t.Errorf("first paste X = %g, want 50", x)
	}
	if x := doc.FindObject(second[0]).X; x != 60 {
		t.Errorf("second paste X = %g, want 60", x)
	}
}

func TestPasteWithEmptyClipboard(t *testing.T) {
	e := seededEditor(newRect("a", 0, 0, 10, 10))
	if ids := e.Paste(); ids != nil {
		t.Errorf("Paste() = %v with empty clipboard, want nil", ids)
	}
	if e.HistoryLen() != 0 {
		t.Error("empty paste pushed a command")
	}

	e.Copy([]string{"ghost"})
	if ids := e.Paste(); ids != nil {
		t.Errorf("Paste() = %v after copying nothing, want nil", ids)
	}
}
