package app

import (
	"path/filepath"

	"github.com/bethropolis/tedit/internal/event"
	"github.com/bethropolis/tedit/internal/logger"
	"github.com/bethropolis/tedit/internal/statusbar"
)

// subscribe wires app-level reactions to editor events.
func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSaved)
	a.eventManager.Subscribe(event.TypeLanguageChanged, a.handleLanguageChanged)
	a.eventManager.Subscribe(event.TypeFileChangedOnDisk, a.handleFileChangedOnDisk)
	a.eventManager.Subscribe(event.TypeThemeChanged, a.handleThemeChanged)
}

// handleBufferLoaded points the watcher at the newly opened file.
func (a *App) handleBufferLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.BufferLoadedData); ok {
		a.filePath = data.FilePath
		a.watch(data.FilePath)
	}
	return false
}

// handleBufferSaved starts the watcher's grace period and follows the
// file to its new path after save-as or rename.
func (a *App) handleBufferSaved(e event.Event) bool {
	data, ok := e.Data.(event.BufferSavedData)
	if !ok {
		return false
	}
	if a.watcher != nil {
		a.watcher.MarkSaved()
	}
	if data.FilePath != a.filePath {
		a.filePath = data.FilePath
		a.watch(data.FilePath)
	}
	return false
}

func (a *App) watch(path string) {
	if a.watcher == nil {
		return
	}
	if err := a.watcher.Watch(path); err != nil {
		logger.Warnf("App: cannot watch '%s': %v", path, err)
	}
}

func (a *App) handleLanguageChanged(e event.Event) bool {
	if data, ok := e.Data.(event.LanguageChangedData); ok {
		a.statusBar.SetLanguage(data.Name)
	}
	return false
}

func (a *App) handleFileChangedOnDisk(e event.Event) bool {
	if data, ok := e.Data.(event.FileChangedOnDiskData); ok {
		logger.Infof("App: '%s' changed on disk", data.FilePath)
		a.statusBar.SetTemporaryMessage("%s changed on disk", filepath.Base(data.FilePath))
	}
	return false
}

func (a *App) handleThemeChanged(e event.Event) bool {
	t := a.themeManager.Current()
	a.tuiManager.SetTheme(t)
	a.statusBar.SetConfig(statusbar.ConfigFromTheme(t))
	return false
}
