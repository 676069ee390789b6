package history

import (
	"errors"
	"fmt"

	"github.com/bethropolis/tedit/internal/buffer"
	"github.com/bethropolis/tedit/internal/event"
	"github.com/bethropolis/tedit/internal/logger"
	"github.com/bethropolis/tedit/internal/types"
	"github.com/bethropolis/tedit/internal/utils"
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
	ErrEmptyAction   = errors.New("action changes nothing")
)

// EditorInterface defines what the history manager needs from the editor.
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	GetCursor() types.Position
	SetCursor(types.Position)
	GetEventManager() *event.Manager
}

// Manager holds the undo and redo stacks. It is owned by the editor loop
// and is not safe for concurrent use.
type Manager struct {
	editor EditorInterface
	undo   []Action
	redo   []Action
	limit  int // max undo entries; 0 means unbounded
}

// NewManager creates a history manager. limit <= 0 keeps every action.
func NewManager(editor EditorInterface, limit int) *Manager {
	if limit < 0 {
		limit = 0
	}
	return &Manager{editor: editor, limit: limit}
}

// RecordAndApply applies a as a fresh edit: it snapshots the cursor
// around the forward application, pushes the action onto the undo stack
// and clears the redo stack.
func (m *Manager) RecordAndApply(a Action) (Action, error) {
	if a.empty() {
		return a, ErrEmptyAction
	}
	if row := a.Row; row < 0 || row >= m.editor.GetBuffer().LineCount() {
		return a, fmt.Errorf("%v: row %d out of range", a.Kind, row)
	}

	a.CursorBefore = m.editor.GetCursor()
	m.applyForward(a)
	a.CursorAfter = m.editor.GetCursor()

	m.undo = append(m.undo, a)
	if m.limit > 0 && len(m.undo) > m.limit {
		m.undo = append([]Action(nil), m.undo[len(m.undo)-m.limit:]...)
	}
	m.redo = m.redo[:0]

	logger.DebugTagf("history", "History: Recorded %v. Undo: %d", a, len(m.undo))
	return a, nil
}

// Undo pops the newest action, applies its inverse and moves it to the
// redo stack.
func (m *Manager) Undo() (Action, error) {
	if len(m.undo) == 0 {
		logger.DebugTagf("history", "History: Nothing to undo.")
		return Action{}, ErrNothingToUndo
	}
	a := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]

	m.applyInverse(a)
	m.redo = append(m.redo, a)

	logger.DebugTagf("history", "History: Undid %v. Undo: %d, Redo: %d", a, len(m.undo), len(m.redo))
	return a, nil
}

// Redo pops the newest undone action, applies it forward and moves it
// back to the undo stack.
func (m *Manager) Redo() (Action, error) {
	if len(m.redo) == 0 {
		logger.DebugTagf("history", "History: Nothing to redo.")
		return Action{}, ErrNothingToRedo
	}
	a := m.redo[len(m.redo)-1]
	m.redo = m.redo[:len(m.redo)-1]

	m.applyForward(a)
	m.undo = append(m.undo, a)

	logger.DebugTagf("history", "History: Redid %v. Undo: %d, Redo: %d", a, len(m.undo), len(m.redo))
	return a, nil
}

// applyForward performs the action's mutation and moves the cursor to its
// post-edit position.
func (m *Manager) applyForward(a Action) {
	buf := m.editor.GetBuffer()
	var cursor types.Position

	switch a.Kind {
	case InsertText:
		m.notify(buf.InsertText(a.Row, a.Col, a.Text))
		cursor = types.Position{Line: a.Row, Col: a.Col + utils.RuneLen(a.Text)}
	case DeleteRange:
		m.notify(buf.DeleteRange(a.Row, a.Col, utils.RuneLen(a.Text)))
		cursor = types.Position{Line: a.Row, Col: a.Col}
	case SplitLine:
		m.notify(buf.SplitLineIndent(a.Row, a.Col, a.Aux))
		cursor = types.Position{Line: a.Row + 1, Col: utils.RuneLen(a.Aux)}
	case JoinLine:
		m.notify(buf.JoinLine(a.Row))
		cursor = types.Position{Line: a.Row - 1, Col: a.Col}
	}
	m.editor.SetCursor(cursor)
}

// applyInverse performs the structurally opposite mutation and restores
// the cursor captured before the forward application.
func (m *Manager) applyInverse(a Action) {
	buf := m.editor.GetBuffer()

	switch a.Kind {
	case InsertText:
		m.notify(buf.DeleteRange(a.Row, a.Col, utils.RuneLen(a.Text)))
	case DeleteRange:
		m.notify(buf.InsertText(a.Row, a.Col, a.Text))
	case SplitLine:
		if a.Row+1 < buf.LineCount() {
			m.notify(buf.RemoveLine(a.Row + 1))
			m.notify(buf.InsertText(a.Row, utils.RuneLen(buf.Line(a.Row)), a.Text))
		}
	case JoinLine:
		if a.Row-1 >= 0 && a.Row-1 < buf.LineCount() {
			m.notify(buf.SplitLineIndent(a.Row-1, a.Col, ""))
		}
	}
	m.editor.SetCursor(a.CursorBefore)
}

func (m *Manager) notify(edit types.EditInfo) {
	if edit.NoChange {
		return
	}
	if eventMgr := m.editor.GetEventManager(); eventMgr != nil {
		eventMgr.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: edit})
	}
}

// Clear drops both stacks. Called when a file replaces the buffer.
func (m *Manager) Clear() {
	m.undo = nil
	m.redo = nil
	logger.DebugTagf("history", "History: Cleared.")
}

func (m *Manager) CanUndo() bool  { return len(m.undo) > 0 }
func (m *Manager) CanRedo() bool  { return len(m.redo) > 0 }
func (m *Manager) UndoDepth() int { return len(m.undo) }
func (m *Manager) RedoDepth() int { return len(m.redo) }
