// Package history implements the linear undo/redo engine every content
// mutation of a gallery scene passes through.
package history

// Command is one reversible unit of scene mutation. Execute and Undo must
// each leave the scene fully consistent; a command is never partially
// applied.
type Command struct {
	Execute     func()
	Undo        func()
	Description string
}

// History is a pair of command stacks, most recent at the end. Executing
// a new command invalidates the redo branch; undo/redo strictly reverse
// submission order.
type History struct {
	undoStack []*Command
	redoStack []*Command
}

func New() *History {
	return &History{}
}

// Execute runs the command and records it. Any redoable commands are
// discarded.
func (h *History) Execute(cmd *Command) {
	cmd.Execute()
	h.undoStack = append(h.undoStack, cmd)
	h.redoStack = h.redoStack[:0]
}

// Undo reverts the most recent command and moves it to the redo stack.
// Returns false without side effects when there is nothing to undo.
func (h *History) Undo() bool {
	if len(h.undoStack) == 0 {
		return false
	}
	cmd := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	cmd.Undo()
	h.redoStack = append(h.redoStack, cmd)
	return true
}

// Redo re-applies the most recently undone command and moves it back to
// the undo stack. Returns false without side effects when there is
// nothing to redo.
func (h *History) Redo() bool {
	if len(h.redoStack) == 0 {
		return false
	}
	cmd := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	cmd.Execute()
	h.undoStack = append(h.undoStack, cmd)
	return true
}

func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Len returns the number of undoable commands.
func (h *History) Len() int {
	return len(h.undoStack)
}

// Clear drops both stacks. Used when a new document is hydrated.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}
