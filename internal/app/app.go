// internal/app/app.go
package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/bethropolis/tedit/internal/buffer"
	"github.com/bethropolis/tedit/internal/config"
	"github.com/bethropolis/tedit/internal/core"
	"github.com/bethropolis/tedit/internal/event"
	"github.com/bethropolis/tedit/internal/highlighter"
	"github.com/bethropolis/tedit/internal/input"
	"github.com/bethropolis/tedit/internal/logger"
	"github.com/bethropolis/tedit/internal/modehandler"
	"github.com/bethropolis/tedit/internal/statusbar"
	"github.com/bethropolis/tedit/internal/theme"
	"github.com/bethropolis/tedit/internal/tui"
	"github.com/bethropolis/tedit/internal/watcher"
	"github.com/gdamore/tcell/v2"
)

// App encapsulates the core components and main loop of the editor.
type App struct {
	cfg          *config.Config
	tuiManager   *tui.TUI
	editor       *core.Editor
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	modeHandler  *modehandler.ModeHandler
	themeManager *theme.Manager
	watcher      *watcher.Watcher // nil when watching is off or unavailable
	filePath     string

	quit        chan struct{}
	expiryTimer *time.Timer
}

// NewApp creates and initializes a new application instance. A nil
// screen means the real terminal.
func NewApp(cfg *config.Config, filePath string, screen tcell.Screen) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	themeManager := theme.NewManager(config.FindDataSubdir(config.ThemesDirName, cfg.Editor.DataDir))
	languages := highlighter.NewRegistry(config.FindDataSubdir(config.LanguagesDirName, cfg.Editor.DataDir))

	var tuiManager *tui.TUI
	var err error
	if screen == nil {
		tuiManager, err = tui.New(themeManager.Current())
	} else {
		tuiManager, err = tui.NewWithScreen(screen, themeManager.Current())
	}
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	eventManager := event.NewManager()
	editor := core.NewEditor(buffer.NewSliceBuffer(), cfg.Editor, eventManager, languages)
	statusBar := statusbar.New(statusbar.ConfigFromTheme(themeManager.Current()))
	quitChan := make(chan struct{})

	a := &App{
		cfg:          cfg,
		tuiManager:   tuiManager,
		editor:       editor,
		statusBar:    statusBar,
		eventManager: eventManager,
		themeManager: themeManager,
		filePath:     filePath,
		quit:         quitChan,
	}
	a.modeHandler = modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		StatusBar:      statusBar,
		QuitSignal:     quitChan,
	})

	if cfg.Editor.WatchFile {
		w, err := watcher.New(tuiManager, config.WatchDebounce, config.SaveGracePeriod)
		if err != nil {
			logger.Warnf("App: file watching disabled: %v", err)
		} else {
			a.watcher = w
		}
	}

	a.subscribe()

	if cfg.Editor.Theme != "" && cfg.Editor.Theme != theme.DefaultName {
		if err := a.SetTheme(cfg.Editor.Theme); err != nil {
			logger.Warnf("App: %v; keeping '%s' (available: %v)", err, themeManager.Current().Name, themeManager.ListThemes())
		}
	}

	if filePath != "" {
		a.openFile(filePath)
	}
	a.resize()
	return a, nil
}

// openFile loads path into the editor and reports the outcome.
func (a *App) openFile(path string) {
	_, statErr := os.Stat(path)
	if err := a.editor.Open(path); err != nil {
		logger.Errorf("App: open '%s': %v", path, err)
		a.statusBar.SetTemporaryMessage("Could not open file!")
		return
	}
	if errors.Is(statErr, os.ErrNotExist) {
		a.statusBar.SetTemporaryMessage("New file.")
		return
	}
	a.statusBar.SetTemporaryMessage("File loaded successfully.")
}

// Run polls, handles and draws on the calling goroutine until the user
// quits.
func (a *App) Run() error {
	defer a.shutdown()

	a.eventManager.Dispatch(event.TypeAppReady, nil)
	a.drawEditor()

	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return nil
		}
		if a.handleEvent(ev) {
			a.drawEditor()
		}
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, nil)
			if a.editor.IsModified() {
				logger.Warnf("Exited with unsaved changes.")
			}
			logger.Infof("Exiting application.")
			return nil
		default:
		}
	}
}

// handleEvent processes one terminal event and reports whether the screen
// needs a redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.Sync()
		a.resize()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	case *watcher.FileChangedEvent:
		a.eventManager.Dispatch(event.TypeFileChangedOnDisk, event.FileChangedOnDiskData{FilePath: ev.Path})
		return true
	case *tcell.EventInterrupt:
		// Posted when a status message expires.
		return true
	}
	return false
}

// resize recomputes the text area after a terminal size change.
func (a *App) resize() {
	w, h := a.tuiManager.Size()
	a.editor.SetViewSize(tui.TextArea(a.editor, w, h))
}

// SetTheme activates a theme by name and restyles the UI.
func (a *App) SetTheme(name string) error {
	if err := a.themeManager.SetTheme(name); err != nil {
		return err
	}
	a.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Name: a.themeManager.Current().Name})
	return nil
}

func (a *App) shutdown() {
	if a.expiryTimer != nil {
		a.expiryTimer.Stop()
	}
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			logger.Debugf("App: closing watcher: %v", err)
		}
	}
	a.tuiManager.Close()
}
