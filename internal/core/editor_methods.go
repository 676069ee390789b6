package core

import (
	"errors"
	"fmt"
	"os"

	"github.com/bethropolis/tedit/internal/event"
	"github.com/bethropolis/tedit/internal/logger"
	"github.com/bethropolis/tedit/internal/types"
)

// Text operations delegated to textOps.

func (e *Editor) InsertRune(r rune) error { return e.textOps.InsertRune(r) }
func (e *Editor) InsertTab() error        { return e.textOps.InsertTab() }
func (e *Editor) InsertNewLine() error    { return e.textOps.InsertNewLine() }
func (e *Editor) DeleteBackward() error   { return e.textOps.DeleteBackward() }
func (e *Editor) DeleteForward() error    { return e.textOps.DeleteForward() }
func (e *Editor) Paste() error            { return e.textOps.Paste() }

// CopyLine puts the cursor line on the clipboard.
func (e *Editor) CopyLine() error {
	return e.clipboardManager.Copy(e.buffer.Line(e.GetCursor().Line))
}

// Undo reverts the most recent action.
func (e *Editor) Undo() error {
	a, err := e.historyManager.Undo()
	if err != nil {
		return err
	}
	logger.DebugTagf("core", "Undo: %v at (%d,%d)", a.Kind, a.Row, a.Col)
	return nil
}

// Redo reapplies the most recently undone action.
func (e *Editor) Redo() error {
	a, err := e.historyManager.Redo()
	if err != nil {
		return err
	}
	logger.DebugTagf("core", "Redo: %v at (%d,%d)", a.Kind, a.Row, a.Col)
	return nil
}

// Cursor operations delegated to cursorManager.

func (e *Editor) MoveUp() {
	e.cursorManager.MoveUp()
	e.cursorMoved()
}

func (e *Editor) MoveDown() {
	e.cursorManager.MoveDown()
	e.cursorMoved()
}

func (e *Editor) MoveLeft() {
	e.cursorManager.MoveLeft()
	e.cursorMoved()
}

func (e *Editor) MoveRight() {
	e.cursorManager.MoveRight()
	e.cursorMoved()
}

func (e *Editor) Home() {
	e.cursorManager.MoveToLineStart()
	e.cursorMoved()
}

func (e *Editor) End() {
	e.cursorManager.MoveToLineEnd()
	e.cursorMoved()
}

func (e *Editor) PageMove(deltaPages int) {
	e.cursorManager.PageMove(deltaPages)
	e.cursorMoved()
}

func (e *Editor) cursorMoved() {
	pos := e.GetCursor()
	logger.DebugTagf("core", "Cursor → (%d,%d)", pos.Line, pos.Col)
	e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: pos})
}

// Open replaces the document with the contents of path. A path that does
// not exist opens an empty document bound to it. On any other error the
// current document is left untouched.
func (e *Editor) Open(path string) error {
	if err := e.buffer.Load(path); err != nil {
		return err
	}
	e.historyManager.Clear()
	e.SetCursor(types.Position{})
	e.eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{FilePath: path})
	e.selectLanguage()
	logger.Infof("Editor: opened '%s' (%d lines)", path, e.buffer.LineCount())
	return nil
}

// Save writes the document to its bound path.
func (e *Editor) Save() error {
	path := e.buffer.FilePath()
	if path == "" {
		return ErrNoFileName
	}
	if err := e.buffer.Save(path); err != nil {
		return err
	}
	e.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: path})
	return nil
}

// SaveAs writes the document to path and binds it there.
func (e *Editor) SaveAs(path string) error {
	if path == "" {
		return ErrNoFileName
	}
	if err := e.buffer.Save(path); err != nil {
		return err
	}
	e.selectLanguage()
	e.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: path})
	return nil
}

// Rename moves the document to path. An unnamed document is simply
// written there. A named one is saved first and then moved; if the move
// fails a fresh copy is written and the old file removed. If the save
// fails the move still happens and ErrRenamedUnsaved is returned.
func (e *Editor) Rename(path string) error {
	if path == "" {
		return ErrNoFileName
	}
	old := e.buffer.FilePath()
	if path == old {
		return ErrSameName
	}

	var saveErr error
	if old == "" {
		if err := e.buffer.Save(path); err != nil {
			return fmt.Errorf("%w: %w", ErrCreateFailed, err)
		}
	} else {
		if err := e.Save(); err != nil {
			logger.Warnf("Rename: saving '%s' before rename failed: %v", old, err)
			saveErr = fmt.Errorf("%w: %w", ErrRenamedUnsaved, err)
		}
		if err := os.Rename(old, path); err != nil {
			logger.Debugf("Rename: os.Rename failed (%v), copying instead", err)
			if err := e.buffer.Save(path); err != nil {
				return fmt.Errorf("%w: %w", ErrRenameFailed, err)
			}
			if err := os.Remove(old); err != nil && !errors.Is(err, os.ErrNotExist) {
				logger.Warnf("Rename: could not remove '%s': %v", old, err)
			}
		}
		e.buffer.SetFilePath(path)
	}

	e.selectLanguage()
	e.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: path})
	logger.Infof("Editor: renamed '%s' to '%s'", old, path)
	return saveErr
}

// CanUndo and CanRedo expose the history state for the status bar.
func (e *Editor) CanUndo() bool { return e.historyManager.CanUndo() }
func (e *Editor) CanRedo() bool { return e.historyManager.CanRedo() }
