// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

// Define the set of possible editor actions.
const (
	ActionUnknown Action = iota
	ActionQuit
	ActionSave
	ActionSaveAs
	ActionRename
	ActionCancel

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionMovePageUp
	ActionMovePageDown
	ActionMoveHome // Beginning of line
	ActionMoveEnd  // End of line

	// --- Text Manipulation ---
	ActionInsertRune // Requires Rune argument
	ActionInsertTab
	ActionInsertNewLine
	ActionDeleteCharForward  // Delete key
	ActionDeleteCharBackward // Backspace key
	ActionUndo
	ActionRedo
	ActionCopyLine
	ActionPaste
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionQuit:               "Quit",
	ActionSave:               "Save",
	ActionSaveAs:             "SaveAs",
	ActionRename:             "Rename",
	ActionCancel:             "Cancel",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionMovePageUp:         "PageUp",
	ActionMovePageDown:       "PageDown",
	ActionMoveHome:           "Home",
	ActionMoveEnd:            "End",
	ActionInsertRune:         "InsertRune",
	ActionInsertTab:          "InsertTab",
	ActionInsertNewLine:      "InsertNewLine",
	ActionDeleteCharForward:  "DeleteForward",
	ActionDeleteCharBackward: "DeleteBackward",
	ActionUndo:               "Undo",
	ActionRedo:               "Redo",
	ActionCopyLine:           "CopyLine",
	ActionPaste:              "Paste",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsEdit reports whether a changes the document.
func (a Action) IsEdit() bool {
	switch a {
	case ActionInsertRune, ActionInsertTab, ActionInsertNewLine,
		ActionDeleteCharForward, ActionDeleteCharBackward, ActionPaste:
		return true
	}
	return false
}

// IsMovement reports whether a only moves the cursor.
func (a Action) IsMovement() bool {
	return a >= ActionMoveUp && a <= ActionMoveEnd
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action Action
	Rune   rune // Used for ActionInsertRune
}
