package app

import (
	"time"

	"github.com/bethropolis/tedit/internal/logger"
	"github.com/bethropolis/tedit/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// drawEditor redraws all components.
func (a *App) drawEditor() {
	a.updateStatusBarContent()

	activeTheme := a.themeManager.Current()
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()
	logger.DebugTagf("draw", "drawEditor: screen %dx%d", width, height)

	a.resize()
	a.tuiManager.Clear()
	tui.DrawBuffer(a.tuiManager, a.editor, activeTheme)
	a.statusBar.Draw(screen, width, height)
	tui.DrawCursor(a.tuiManager, a.editor, a.statusBar)
	a.tuiManager.Show()

	a.scheduleMessageExpiry()
}

// updateStatusBarContent pushes current editor state to the status bar.
func (a *App) updateStatusBarContent() {
	a.statusBar.SetFileInfo(a.editor.FileName(), a.editor.IsModified())
	a.statusBar.SetCursorInfo(a.editor.GetCursor())
}

// scheduleMessageExpiry wakes the loop once the current status message
// has timed out, so it disappears without a key press.
func (a *App) scheduleMessageExpiry() {
	if a.statusBar.Message() == "" {
		return
	}
	if a.expiryTimer != nil {
		a.expiryTimer.Stop()
	}
	a.expiryTimer = time.AfterFunc(a.statusBar.Timeout()+10*time.Millisecond, func() {
		if err := a.tuiManager.PostEvent(tcell.NewEventInterrupt(nil)); err != nil {
			logger.Debugf("App: posting expiry interrupt: %v", err)
		}
	})
}
