// Package text translates editing intents into history actions.
package text

import (
	"errors"
	"strings"

	"github.com/bethropolis/tedit/internal/buffer"
	"github.com/bethropolis/tedit/internal/core/clipboard"
	"github.com/bethropolis/tedit/internal/core/history"
	"github.com/bethropolis/tedit/internal/logger"
	"github.com/bethropolis/tedit/internal/types"
	"github.com/bethropolis/tedit/internal/utils"
)

// EditorInterface defines editor methods needed
type EditorInterface interface {
	GetBuffer() buffer.Buffer
	GetCursor() types.Position
	GetHistoryManager() *history.Manager
	GetClipboard() *clipboard.Manager
	TabWidth() int
}

// Operations turns each editing intent into exactly one recorded Action.
// Intents with nothing to act on return nil without recording anything.
type Operations struct {
	editor EditorInterface
}

// NewOperations creates a text operations manager
func NewOperations(editor EditorInterface) *Operations {
	return &Operations{editor: editor}
}

func (o *Operations) record(a history.Action) error {
	_, err := o.editor.GetHistoryManager().RecordAndApply(a)
	if errors.Is(err, history.ErrEmptyAction) {
		return nil
	}
	return err
}

// InsertRune inserts r at the cursor.
func (o *Operations) InsertRune(r rune) error {
	cur := o.editor.GetCursor()
	return o.record(history.NewInsert(cur.Line, cur.Col, string(r)))
}

// InsertTab inserts tab_width spaces as a single action.
func (o *Operations) InsertTab() error {
	cur := o.editor.GetCursor()
	return o.record(history.NewInsert(cur.Line, cur.Col, strings.Repeat(" ", o.editor.TabWidth())))
}

// InsertNewLine splits the current line at the cursor. The new line
// starts with the current line's indent.
func (o *Operations) InsertNewLine() error {
	buf := o.editor.GetBuffer()
	cur := o.editor.GetCursor()
	_, suffix := utils.SplitAt(buf.Line(cur.Line), cur.Col)
	return o.record(history.NewSplit(cur.Line, cur.Col, suffix, buf.Indent(cur.Line)))
}

// DeleteBackward removes the character before the cursor, or joins the
// line onto the previous one at column 0. Nothing happens at (0,0).
func (o *Operations) DeleteBackward() error {
	buf := o.editor.GetBuffer()
	cur := o.editor.GetCursor()
	switch {
	case cur.Col > 0:
		line := buf.Line(cur.Line)
		if n := utils.RuneLen(line); cur.Col > n {
			cur.Col = n
		}
		return o.record(history.NewDelete(cur.Line, cur.Col-1, utils.RuneAt(line, cur.Col-1)))
	case cur.Line > 0:
		joinCol := utils.RuneLen(buf.Line(cur.Line - 1))
		return o.record(history.NewJoin(cur.Line, joinCol, buf.Line(cur.Line)))
	}
	logger.Debugf("Operations: backspace at start of buffer ignored")
	return nil
}

// DeleteForward removes the character under the cursor, or joins the
// next line onto this one at end of line. Nothing happens at the end of
// the buffer.
func (o *Operations) DeleteForward() error {
	buf := o.editor.GetBuffer()
	cur := o.editor.GetCursor()
	line := buf.Line(cur.Line)
	n := utils.RuneLen(line)
	switch {
	case cur.Col < n:
		return o.record(history.NewDelete(cur.Line, cur.Col, utils.RuneAt(line, cur.Col)))
	case cur.Line < buf.LineCount()-1:
		return o.record(history.NewJoin(cur.Line+1, n, buf.Line(cur.Line+1)))
	}
	return nil
}

// Paste inserts the first line of the clipboard at the cursor.
func (o *Operations) Paste() error {
	text, err := o.editor.GetClipboard().Paste()
	if err != nil {
		if errors.Is(err, clipboard.ErrEmpty) {
			return nil
		}
		return err
	}
	return o.PasteText(text)
}

// PasteText inserts text up to its first line break at the cursor.
func (o *Operations) PasteText(text string) error {
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSuffix(text, "\r")
	cur := o.editor.GetCursor()
	return o.record(history.NewInsert(cur.Line, cur.Col, text))
}
