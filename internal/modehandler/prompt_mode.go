package modehandler

import (
	"errors"

	"github.com/bethropolis/tedit/internal/core"
	"github.com/bethropolis/tedit/internal/input"
	"github.com/bethropolis/tedit/internal/logger"
)

type promptKind int

const (
	promptSaveAs promptKind = iota
	promptRename
)

type promptState struct {
	kind  promptKind
	input []rune
}

func (k promptKind) label() string {
	if k == promptRename {
		return "Rename to: "
	}
	return "Save as: "
}

func (mh *ModeHandler) startPrompt(kind promptKind) {
	mh.currentMode = ModePrompt
	mh.prompt = promptState{kind: kind}
	mh.statusBar.SetPrompt(kind.label(), "")
	logger.Debugf("ModeHandler: entering prompt %q", kind.label())
}

// PromptText returns the label and input of the active prompt.
func (mh *ModeHandler) PromptText() (string, string) {
	if mh.currentMode != ModePrompt {
		return "", ""
	}
	return mh.prompt.kind.label(), string(mh.prompt.input)
}

// handleActionPrompt handles actions when in ModePrompt.
func (mh *ModeHandler) handleActionPrompt(actionEvent input.ActionEvent) bool {
	switch actionEvent.Action {
	case input.ActionInsertRune:
		mh.prompt.input = append(mh.prompt.input, actionEvent.Rune)
	case input.ActionDeleteCharBackward:
		if n := len(mh.prompt.input); n > 0 {
			mh.prompt.input = mh.prompt.input[:n-1]
		}
	case input.ActionInsertNewLine:
		mh.finishPrompt(string(mh.prompt.input))
		return true
	case input.ActionCancel:
		mh.finishPrompt("")
		return true
	default:
		return false
	}
	mh.statusBar.SetPrompt(mh.prompt.kind.label(), string(mh.prompt.input))
	return true
}

// finishPrompt leaves prompt mode and runs the prompted operation. An
// empty name aborts it.
func (mh *ModeHandler) finishPrompt(name string) {
	kind := mh.prompt.kind
	mh.currentMode = ModeNormal
	mh.prompt = promptState{}
	mh.statusBar.ClearPrompt()

	switch kind {
	case promptSaveAs:
		mh.saveAs(name)
	case promptRename:
		mh.rename(name)
	}
}

func (mh *ModeHandler) saveAs(name string) {
	if name == "" {
		mh.statusBar.SetTemporaryMessage("Save as aborted.")
		return
	}
	if err := mh.editor.SaveAs(name); err != nil {
		logger.Errorf("SaveAs '%s': %v", name, err)
		mh.statusBar.SetTemporaryMessage("Could not save file!")
		return
	}
	mh.statusBar.SetTemporaryMessage("File saved as %s", name)
}

func (mh *ModeHandler) rename(name string) {
	if name == "" {
		mh.statusBar.SetTemporaryMessage("Rename aborted.")
		return
	}
	err := mh.editor.Rename(name)
	switch {
	case err == nil:
		mh.statusBar.SetTemporaryMessage("Renamed to %s", name)
	case errors.Is(err, core.ErrRenamedUnsaved):
		logger.Warnf("Rename: %v", err)
		mh.statusBar.SetTemporaryMessage("Renamed to %s, but changes could not be saved!", name)
	case errors.Is(err, core.ErrSameName):
		mh.statusBar.SetTemporaryMessage("Same name. Nothing to do.")
	case errors.Is(err, core.ErrCreateFailed):
		logger.Errorf("Rename: %v", err)
		mh.statusBar.SetTemporaryMessage("Could not create file!")
	default:
		logger.Errorf("Rename: %v", err)
		mh.statusBar.SetTemporaryMessage("Rename failed: cannot write new file.")
	}
}
