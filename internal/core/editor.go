// internal/core/editor.go
package core

import (
	"errors"

	"github.com/bethropolis/tedit/internal/buffer"
	"github.com/bethropolis/tedit/internal/config"
	"github.com/bethropolis/tedit/internal/core/clipboard"
	"github.com/bethropolis/tedit/internal/core/cursor"
	"github.com/bethropolis/tedit/internal/core/history"
	"github.com/bethropolis/tedit/internal/core/text"
	"github.com/bethropolis/tedit/internal/event"
	hl "github.com/bethropolis/tedit/internal/highlighter"
	"github.com/bethropolis/tedit/internal/highlighter/lang"
	"github.com/bethropolis/tedit/internal/logger"
	"github.com/bethropolis/tedit/internal/types"
)

var (
	// ErrNoFileName is returned when saving a document that has no path.
	ErrNoFileName = errors.New("no file name")
	// ErrSameName is returned by Rename when the target is the current path.
	ErrSameName = errors.New("same name")
	// ErrCreateFailed is returned by Rename when an unnamed document could
	// not be written to its new path.
	ErrCreateFailed = errors.New("could not create file")
	// ErrRenameFailed is returned by Rename when neither moving the file
	// nor writing a fresh copy worked.
	ErrRenameFailed = errors.New("cannot write new file")
	// ErrRenamedUnsaved is returned by Rename when the file was moved but
	// saving the current content first failed, so the new file holds the
	// old content.
	ErrRenamedUnsaved = errors.New("renamed without saving changes")
)

// Editor is one open document: its lines, cursor, undo history and
// highlight cache. It is owned by the app loop and is not safe for
// concurrent use.
type Editor struct {
	buffer    buffer.Buffer
	tabWidth  int
	scrollOff int

	eventManager     *event.Manager
	cursorManager    *cursor.Manager
	historyManager   *history.Manager
	textOps          *text.Operations
	clipboardManager *clipboard.Manager

	languages  *lang.Registry
	language   *lang.Language
	highlights *hl.Cache
}

// NewEditor creates an editor over buf. A nil events manager gets a
// private one; a nil registry means no highlighting.
func NewEditor(buf buffer.Buffer, cfg config.EditorConfig, events *event.Manager, languages *lang.Registry) *Editor {
	if events == nil {
		events = event.NewManager()
	}
	if languages == nil {
		languages = lang.NewRegistry()
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = config.DefaultTabWidth
	}
	if sb, ok := buf.(interface{ SetTabWidth(int) }); ok {
		sb.SetTabWidth(cfg.TabWidth)
	}

	e := &Editor{
		buffer:       buf,
		tabWidth:     cfg.TabWidth,
		scrollOff:    cfg.ScrollOff,
		eventManager: events,
		languages:    languages,
		highlights:   hl.NewCache(nil),
	}
	e.cursorManager = cursor.NewManager(e)
	e.historyManager = history.NewManager(e, cfg.HistoryLimit)
	e.textOps = text.NewOperations(e)
	e.clipboardManager = clipboard.NewManager(cfg.SystemClipboard)
	e.highlights.Subscribe(events)
	e.selectLanguage()
	return e
}

// GetBuffer returns the editor's buffer.
func (e *Editor) GetBuffer() buffer.Buffer {
	return e.buffer
}

// GetCursor returns the current cursor position.
func (e *Editor) GetCursor() types.Position {
	return e.cursorManager.GetPosition()
}

// SetCursor moves the cursor, clamped to the document.
func (e *Editor) SetCursor(pos types.Position) {
	e.cursorManager.SetPosition(pos)
}

func (e *Editor) GetEventManager() *event.Manager     { return e.eventManager }
func (e *Editor) GetHistoryManager() *history.Manager { return e.historyManager }
func (e *Editor) GetClipboard() *clipboard.Manager    { return e.clipboardManager }
func (e *Editor) GetCursorManager() *cursor.Manager   { return e.cursorManager }
func (e *Editor) GetLanguageRegistry() *lang.Registry { return e.languages }
func (e *Editor) ScrollOff() int                      { return e.scrollOff }
func (e *Editor) TabWidth() int                       { return e.tabWidth }

// SetViewSize updates the visible text area, excluding the status bar.
func (e *Editor) SetViewSize(width, height int) {
	e.cursorManager.SetViewSize(width, height)
}

// GetViewport returns the top line and left visual column of the view.
func (e *Editor) GetViewport() (int, int) {
	return e.cursorManager.GetViewport()
}

// FileName returns the document path, or "" when unnamed.
func (e *Editor) FileName() string {
	return e.buffer.FilePath()
}

// IsModified reports unsaved changes.
func (e *Editor) IsModified() bool {
	return e.buffer.IsModified()
}

// Language returns the active language, or nil for plain text.
func (e *Editor) Language() *lang.Language {
	return e.language
}

// HighlightLine returns the classification of line row, recomputing it
// only if an edit invalidated it.
func (e *Editor) HighlightLine(row int) []hl.Class {
	if row < 0 || row >= e.buffer.LineCount() {
		return nil
	}
	return e.highlights.Line(row, e.buffer.Line(row))
}

// selectLanguage picks the language for the current path and resets the
// highlight cache when it changes.
func (e *Editor) selectLanguage() {
	l := e.languages.ForFile(e.buffer.FilePath())
	if l == e.language && l == e.highlights.Language() {
		return
	}
	e.language = l
	e.highlights.SetLanguage(l)
	name := ""
	if l != nil {
		name = l.Name
	}
	logger.DebugTagf("core", "Editor: language set to %q", name)
	e.eventManager.Dispatch(event.TypeLanguageChanged, event.LanguageChangedData{Name: name})
}

// SetLanguageRegistry replaces the registry and reselects the language.
func (e *Editor) SetLanguageRegistry(r *lang.Registry) {
	if r == nil {
		r = lang.NewRegistry()
	}
	e.languages = r
	e.language = nil
	e.selectLanguage()
}
