// internal/modehandler/modehandler.go
package modehandler

import (
	"github.com/bethropolis/tedit/internal/core"
	"github.com/bethropolis/tedit/internal/input"
	"github.com/bethropolis/tedit/internal/logger"
	"github.com/bethropolis/tedit/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModePrompt           // collecting a file name on the status bar
)

func (m InputMode) String() string {
	if m == ModePrompt {
		return "PROMPT"
	}
	return "NORMAL"
}

// ModeHandler routes decoded key actions to the editor according to the
// current mode and reports outcomes on the status bar.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}

	currentMode InputMode
	prompt      promptState
	quitPending bool
	quitting    bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{} // closed when the user quits
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	return &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeNormal,
	}
}

// HandleKeyEvent decodes ev and handles it in the current mode.
// Returns true if the screen needs a redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	return mh.HandleAction(mh.inputProcessor.ProcessEvent(ev))
}

// HandleAction handles an already decoded action.
func (mh *ModeHandler) HandleAction(actionEvent input.ActionEvent) bool {
	switch mh.currentMode {
	case ModeNormal:
		return mh.handleActionNormal(actionEvent)
	case ModePrompt:
		return mh.handleActionPrompt(actionEvent)
	default:
		logger.Warnf("ModeHandler: unknown input mode %v", mh.currentMode)
		return false
	}
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

func (mh *ModeHandler) quit() {
	if mh.quitting {
		return
	}
	mh.quitting = true
	logger.Infof("ModeHandler: quit requested")
	close(mh.quitSignal)
}
