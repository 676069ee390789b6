package modehandler

import (
	"errors"

	"github.com/bethropolis/tedit/internal/core"
	"github.com/bethropolis/tedit/internal/core/history"
	"github.com/bethropolis/tedit/internal/input"
	"github.com/bethropolis/tedit/internal/logger"
)

// keepsMessage lists the actions that leave the transient status
// message in place; every other key clears it.
func keepsMessage(a input.Action) bool {
	switch a {
	case input.ActionSave, input.ActionSaveAs, input.ActionRename,
		input.ActionUndo, input.ActionRedo:
		return true
	}
	return false
}

// handleActionNormal handles actions when in ModeNormal.
func (mh *ModeHandler) handleActionNormal(actionEvent input.ActionEvent) bool {
	action := actionEvent.Action
	if action == input.ActionUnknown {
		return false
	}
	if !keepsMessage(action) {
		mh.statusBar.ResetTemporaryMessage()
	}
	if action != input.ActionQuit {
		mh.quitPending = false
	}

	var err error
	switch action {
	case input.ActionQuit:
		if mh.editor.IsModified() && !mh.quitPending {
			mh.quitPending = true
			mh.statusBar.SetTemporaryMessage("Unsaved changes! Press Ctrl+Q again to quit.")
			return true
		}
		mh.quit()
		return false

	case input.ActionSave:
		mh.save()
	case input.ActionSaveAs:
		mh.startPrompt(promptSaveAs)
	case input.ActionRename:
		mh.startPrompt(promptRename)

	case input.ActionUndo:
		if err := mh.editor.Undo(); errors.Is(err, history.ErrNothingToUndo) {
			mh.statusBar.SetTemporaryMessage("Nothing to undo")
		} else if err != nil {
			logger.Errorf("Undo: %v", err)
		}
	case input.ActionRedo:
		if err := mh.editor.Redo(); errors.Is(err, history.ErrNothingToRedo) {
			mh.statusBar.SetTemporaryMessage("Nothing to redo")
		} else if err != nil {
			logger.Errorf("Redo: %v", err)
		}

	case input.ActionMoveUp:
		mh.editor.MoveUp()
	case input.ActionMoveDown:
		mh.editor.MoveDown()
	case input.ActionMoveLeft:
		mh.editor.MoveLeft()
	case input.ActionMoveRight:
		mh.editor.MoveRight()
	case input.ActionMovePageUp:
		mh.editor.PageMove(-1)
	case input.ActionMovePageDown:
		mh.editor.PageMove(1)
	case input.ActionMoveHome:
		mh.editor.Home()
	case input.ActionMoveEnd:
		mh.editor.End()

	case input.ActionInsertRune:
		err = mh.editor.InsertRune(actionEvent.Rune)
	case input.ActionInsertTab:
		err = mh.editor.InsertTab()
	case input.ActionInsertNewLine:
		err = mh.editor.InsertNewLine()
	case input.ActionDeleteCharBackward:
		err = mh.editor.DeleteBackward()
	case input.ActionDeleteCharForward:
		err = mh.editor.DeleteForward()

	case input.ActionCopyLine:
		if err := mh.editor.CopyLine(); err != nil {
			mh.statusBar.SetTemporaryMessage("Copied to internal clipboard only: %v", err)
		}
	case input.ActionPaste:
		if err := mh.editor.Paste(); err != nil {
			mh.statusBar.SetTemporaryMessage("Paste failed: %v", err)
		}

	case input.ActionCancel:
		// Nothing to cancel in normal mode; the message was cleared above.
	default:
		return false
	}

	if err != nil {
		logger.Errorf("ModeHandler: %v failed: %v", action, err)
	}
	return true
}

func (mh *ModeHandler) save() {
	err := mh.editor.Save()
	switch {
	case err == nil:
		mh.statusBar.SetTemporaryMessage("File saved successfully.")
	case errors.Is(err, core.ErrNoFileName):
		mh.statusBar.SetTemporaryMessage("Save aborted: No file name.")
	default:
		logger.Errorf("Save: %v", err)
		mh.statusBar.SetTemporaryMessage("Could not save file!")
	}
}
