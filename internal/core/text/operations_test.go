package text

import (
	"reflect"
	"testing"

	"github.com/bethropolis/tedit/internal/buffer"
	"github.com/bethropolis/tedit/internal/core/clipboard"
	"github.com/bethropolis/tedit/internal/core/history"
	"github.com/bethropolis/tedit/internal/event"
	"github.com/bethropolis/tedit/internal/types"
)

type fakeEditor struct {
	buf    *buffer.SliceBuffer
	cursor types.Position
	events *event.Manager
	hist   *history.Manager
	clip   *clipboard.Manager
}

func (f *fakeEditor) GetBuffer() buffer.Buffer            { return f.buf }
func (f *fakeEditor) GetCursor() types.Position           { return f.cursor }
func (f *fakeEditor) SetCursor(p types.Position)          { f.cursor = p }
func (f *fakeEditor) GetEventManager() *event.Manager     { return f.events }
func (f *fakeEditor) GetHistoryManager() *history.Manager { return f.hist }
func (f *fakeEditor) GetClipboard() *clipboard.Manager    { return f.clip }
func (f *fakeEditor) TabWidth() int                       { return 4 }

func newFake(cursor types.Position, lines ...string) (*fakeEditor, *Operations) {
	f := &fakeEditor{
		buf:    buffer.NewSliceBufferFromLines(lines),
		cursor: cursor,
		events: event.NewManager(),
		clip:   clipboard.NewManager(false),
	}
	f.hist = history.NewManager(f, 0)
	return f, NewOperations(f)
}

func pos(line, col int) types.Position { return types.Position{Line: line, Col: col} }

func check(t *testing.T, f *fakeEditor, lines []string, cursor types.Position) {
	t.Helper()
	if got := f.buf.Lines(); !reflect.DeepEqual(got, lines) {
		t.Fatalf("lines=%q, want %q", got, lines)
	}
	if f.cursor != cursor {
		t.Fatalf("cursor=%v, want %v", f.cursor, cursor)
	}
}

func TestTypeSplitUndo(t *testing.T) {
	f, ops := newFake(pos(0, 0), "")
	for _, r := range "ab" {
		if err := ops.InsertRune(r); err != nil {
			t.Fatal(err)
		}
	}
	if err := ops.InsertNewLine(); err != nil {
		t.Fatal(err)
	}
	ops.InsertRune('c')
	check(t, f, []string{"ab", "c"}, pos(1, 1))

	f.hist.Undo()
	f.hist.Undo()
	check(t, f, []string{"ab"}, pos(0, 2))
	if f.hist.UndoDepth() != 2 || f.hist.RedoDepth() != 2 {
		t.Fatalf("depths undo=%d redo=%d", f.hist.UndoDepth(), f.hist.RedoDepth())
	}
}

func TestNewLineCarriesIndent(t *testing.T) {
	f, ops := newFake(pos(0, 8), "    foo(bar)")
	ops.InsertNewLine()
	check(t, f, []string{"    foo(", "    bar)"}, pos(1, 4))
	f.hist.Undo()
	check(t, f, []string{"    foo(bar)"}, pos(0, 8))
}

func TestInsertTabIsOneAction(t *testing.T) {
	f, ops := newFake(pos(0, 1), "xy")
	ops.InsertTab()
	check(t, f, []string{"x    y"}, pos(0, 5))
	if f.hist.UndoDepth() != 1 {
		t.Fatalf("UndoDepth=%d, want 1", f.hist.UndoDepth())
	}
}

func TestBackspaceJoinsAndUndoSplits(t *testing.T) {
	f, ops := newFake(pos(1, 0), "foo", "bar")
	if err := ops.DeleteBackward(); err != nil {
		t.Fatal(err)
	}
	check(t, f, []string{"foobar"}, pos(0, 3))
	f.hist.Undo()
	check(t, f, []string{"foo", "bar"}, pos(1, 0))
}

func TestBackspaceDeletesPreviousRune(t *testing.T) {
	f, ops := newFake(pos(0, 2), "héllo")
	ops.DeleteBackward()
	check(t, f, []string{"hllo"}, pos(0, 1))
}

func TestBackspaceAtOriginIsNoop(t *testing.T) {
	f, ops := newFake(pos(0, 0), "abc")
	if err := ops.DeleteBackward(); err != nil {
		t.Fatal(err)
	}
	check(t, f, []string{"abc"}, pos(0, 0))
	if f.hist.CanUndo() {
		t.Fatal("no-op backspace was recorded")
	}
}

func TestDeleteForward(t *testing.T) {
	f, ops := newFake(pos(0, 1), "ab", "cd")
	ops.DeleteForward()
	check(t, f, []string{"a", "cd"}, pos(0, 1))
	ops.DeleteForward()
	check(t, f, []string{"acd"}, pos(0, 1))

	f.hist.Undo()
	check(t, f, []string{"a", "cd"}, pos(0, 1))
}

func TestDeleteForwardAtEndIsNoop(t *testing.T) {
	f, ops := newFake(pos(1, 2), "ab", "cd")
	ops.DeleteForward()
	check(t, f, []string{"ab", "cd"}, pos(1, 2))
	if f.hist.CanUndo() {
		t.Fatal("no-op delete was recorded")
	}
}

func TestPasteFirstLineOnly(t *testing.T) {
	f, ops := newFake(pos(0, 1), "ad")
	f.clip.Copy("bc\r\nignored")
	if err := ops.Paste(); err != nil {
		t.Fatal(err)
	}
	check(t, f, []string{"abcd"}, pos(0, 3))
}

func TestPasteEmptyClipboard(t *testing.T) {
	f, ops := newFake(pos(0, 0), "x")
	if err := ops.Paste(); err != nil {
		t.Fatalf("Paste: %v", err)
	}
	if err := ops.PasteText("\nrest"); err != nil {
		t.Fatalf("PasteText: %v", err)
	}
	if f.hist.CanUndo() {
		t.Fatal("empty paste was recorded")
	}
}
