// Package history implements the undo/redo action log.
package history

import (
	"fmt"

	"github.com/bethropolis/tedit/internal/types"
)

// Kind selects which buffer primitive an Action replays.
type Kind int

const (
	InsertText Kind = iota
	DeleteRange
	SplitLine
	JoinLine
)

func (k Kind) String() string {
	switch k {
	case InsertText:
		return "InsertText"
	case DeleteRange:
		return "DeleteRange"
	case SplitLine:
		return "SplitLine"
	case JoinLine:
		return "JoinLine"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Action is one reversible edit, the unit of undo.
//
//	InsertText:  Text inserted at (Row, Col).
//	DeleteRange: Text removed from (Row, Col).
//	SplitLine:   Row split at Col; Text is the suffix moved to the new line
//	             and Aux the indent prepended to it.
//	JoinLine:    Row appended onto Row-1; Col is the join column (the
//	             original length of Row-1) and Text the joined content.
//
// CursorBefore and CursorAfter are filled in by the Manager.
type Action struct {
	Kind         Kind
	Row, Col     int
	Text         string
	Aux          string
	CursorBefore types.Position
	CursorAfter  types.Position
}

// NewInsert builds an InsertText action.
func NewInsert(row, col int, text string) Action {
	return Action{Kind: InsertText, Row: row, Col: col, Text: text}
}

// NewDelete builds a DeleteRange action removing text, which must be the
// content currently at (row, col).
func NewDelete(row, col int, text string) Action {
	return Action{Kind: DeleteRange, Row: row, Col: col, Text: text}
}

// NewSplit builds a SplitLine action.
func NewSplit(row, col int, suffix, indent string) Action {
	return Action{Kind: SplitLine, Row: row, Col: col, Text: suffix, Aux: indent}
}

// NewJoin builds a JoinLine action joining row into row-1 at joinCol.
func NewJoin(row, joinCol int, text string) Action {
	return Action{Kind: JoinLine, Row: row, Col: joinCol, Text: text}
}

// empty reports whether the action would change nothing.
func (a Action) empty() bool {
	switch a.Kind {
	case InsertText, DeleteRange:
		return a.Text == ""
	case JoinLine:
		return a.Row <= 0
	}
	return false
}

func (a Action) String() string {
	return fmt.Sprintf("%v@%d:%d %q", a.Kind, a.Row, a.Col, a.Text)
}
