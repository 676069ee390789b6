package history

import (
	"errors"
	"reflect"
	"testing"

	"github.com/bethropolis/tedit/internal/buffer"
	"github.com/bethropolis/tedit/internal/event"
	"github.com/bethropolis/tedit/internal/types"
)

type fakeEditor struct {
	buf    *buffer.SliceBuffer
	cursor types.Position
	events *event.Manager
}

func (f *fakeEditor) GetBuffer() buffer.Buffer        { return f.buf }
func (f *fakeEditor) GetCursor() types.Position       { return f.cursor }
func (f *fakeEditor) SetCursor(p types.Position)      { f.cursor = p }
func (f *fakeEditor) GetEventManager() *event.Manager { return f.events }

func newFake(lines ...string) (*fakeEditor, *Manager) {
	f := &fakeEditor{buf: buffer.NewSliceBufferFromLines(lines), events: event.NewManager()}
	return f, NewManager(f, 0)
}

func pos(line, col int) types.Position { return types.Position{Line: line, Col: col} }

func assertState(t *testing.T, f *fakeEditor, lines []string, cursor types.Position) {
	t.Helper()
	if got := f.buf.Lines(); !reflect.DeepEqual(got, lines) {
		t.Fatalf("lines=%q, want %q", got, lines)
	}
	if f.cursor != cursor {
		t.Fatalf("cursor=%v, want %v", f.cursor, cursor)
	}
}

func TestInsertUndoRedo(t *testing.T) {
	f, m := newFake("abc")
	f.cursor = pos(0, 3)

	a, err := m.RecordAndApply(NewInsert(0, 3, "d"))
	if err != nil {
		t.Fatalf("RecordAndApply: %v", err)
	}
	if a.CursorBefore != pos(0, 3) || a.CursorAfter != pos(0, 4) {
		t.Fatalf("snapshots before=%v after=%v", a.CursorBefore, a.CursorAfter)
	}
	assertState(t, f, []string{"abcd"}, pos(0, 4))

	if _, err := m.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}
	assertState(t, f, []string{"abc"}, pos(0, 3))

	if _, err := m.Redo(); err != nil {
		t.Fatalf("Redo: %v", err)
	}
	assertState(t, f, []string{"abcd"}, pos(0, 4))
}

func TestDeleteRangeUndo(t *testing.T) {
	f, m := newFake("hello")
	f.cursor = pos(0, 3)
	m.RecordAndApply(NewDelete(0, 2, "l"))
	assertState(t, f, []string{"helo"}, pos(0, 2))
	m.Undo()
	assertState(t, f, []string{"hello"}, pos(0, 3))
}

func TestSplitLineForwardAndInverse(t *testing.T) {
	f, m := newFake("    foo(bar)", "tail")
	f.cursor = pos(0, 8)
	m.RecordAndApply(NewSplit(0, 8, "bar)", "    "))
	assertState(t, f, []string{"    foo(", "    bar)", "tail"}, pos(1, 4))

	m.Undo()
	assertState(t, f, []string{"    foo(bar)", "tail"}, pos(0, 8))

	m.Redo()
	assertState(t, f, []string{"    foo(", "    bar)", "tail"}, pos(1, 4))
}

func TestJoinLineForwardAndInverse(t *testing.T) {
	f, m := newFake("ab", "cd")
	f.cursor = pos(1, 0)
	m.RecordAndApply(NewJoin(1, 2, "cd"))
	assertState(t, f, []string{"abcd"}, pos(0, 2))

	m.Undo()
	assertState(t, f, []string{"ab", "cd"}, pos(1, 0))
}

func TestInverseLawOverSequence(t *testing.T) {
	start := []string{"  func main() {", "x"}
	f, m := newFake(start...)
	f.cursor = pos(0, 15)

	steps := []Action{
		NewSplit(0, 15, "", "  "),
		NewInsert(1, 2, "return 42"),
		NewDelete(1, 9, "42"),
		NewInsert(1, 9, "7"),
		NewJoin(2, 10, "x"),
		NewSplit(0, 6, " main() {", "  "),
	}
	for _, a := range steps {
		if _, err := m.RecordAndApply(a); err != nil {
			t.Fatalf("RecordAndApply(%v): %v", a, err)
		}
	}
	for range steps {
		if _, err := m.Undo(); err != nil {
			t.Fatalf("Undo: %v", err)
		}
	}
	assertState(t, f, start, pos(0, 15))
	if _, err := m.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("extra Undo err=%v, want ErrNothingToUndo", err)
	}
}

func TestNewEditClearsRedo(t *testing.T) {
	f, m := newFake("")
	m.RecordAndApply(NewInsert(0, 0, "a"))
	m.Undo()
	if !m.CanRedo() {
		t.Fatal("redo stack empty after undo")
	}
	m.RecordAndApply(NewInsert(0, 0, "b"))
	if m.CanRedo() {
		t.Fatal("redo stack survived a fresh edit")
	}
	if _, err := m.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Fatalf("Redo err=%v, want ErrNothingToRedo", err)
	}
	assertState(t, f, []string{"b"}, pos(0, 1))
}

func TestEmptyHistoryIsNoop(t *testing.T) {
	f, m := newFake("abc")
	f.cursor = pos(0, 1)
	if _, err := m.Undo(); !errors.Is(err, ErrNothingToUndo) {
		t.Fatalf("Undo err=%v, want ErrNothingToUndo", err)
	}
	if _, err := m.Redo(); !errors.Is(err, ErrNothingToRedo) {
		t.Fatalf("Redo err=%v, want ErrNothingToRedo", err)
	}
	assertState(t, f, []string{"abc"}, pos(0, 1))
	if m.UndoDepth() != 0 || m.RedoDepth() != 0 {
		t.Fatalf("depths undo=%d redo=%d, want 0 0", m.UndoDepth(), m.RedoDepth())
	}
}

func TestEmptyActionsAreRejected(t *testing.T) {
	f, m := newFake("abc")
	for _, a := range []Action{NewInsert(0, 0, ""), NewDelete(0, 0, ""), NewJoin(0, 0, "abc")} {
		if _, err := m.RecordAndApply(a); !errors.Is(err, ErrEmptyAction) {
			t.Fatalf("RecordAndApply(%v) err=%v, want ErrEmptyAction", a, err)
		}
	}
	if m.CanUndo() {
		t.Fatal("empty action was recorded")
	}
	assertState(t, f, []string{"abc"}, pos(0, 0))
}

func TestActionOnMissingRowFails(t *testing.T) {
	_, m := newFake("abc")
	if _, err := m.RecordAndApply(NewInsert(5, 0, "x")); err == nil {
		t.Fatal("insert on a missing row succeeded")
	}
	if m.CanUndo() {
		t.Fatal("failed action was recorded")
	}
}

func TestHistoryLimitEvictsOldest(t *testing.T) {
	f := &fakeEditor{buf: buffer.NewSliceBuffer(), events: event.NewManager()}
	m := NewManager(f, 2)
	for i, s := range []string{"a", "b", "c"} {
		m.RecordAndApply(NewInsert(0, i, s))
	}
	if got := m.UndoDepth(); got != 2 {
		t.Fatalf("UndoDepth=%d, want 2", got)
	}
	m.Undo()
	m.Undo()
	assertState(t, f, []string{"a"}, pos(0, 1))
}

func TestModifiedEventsCarryEditSpans(t *testing.T) {
	f, m := newFake("ab", "cd")
	var edits []types.EditInfo
	f.events.Subscribe(event.TypeBufferModified, func(e event.Event) bool {
		edits = append(edits, e.Data.(event.BufferModifiedData).Edit)
		return false
	})
	f.cursor = pos(1, 0)
	m.RecordAndApply(NewJoin(1, 2, "cd"))
	m.Undo()

	want := []types.EditInfo{
		{StartLine: 0, OldEndLine: 1, NewEndLine: 0},
		{StartLine: 0, OldEndLine: 0, NewEndLine: 1},
	}
	if !reflect.DeepEqual(edits, want) {
		t.Fatalf("edits=%+v, want %+v", edits, want)
	}
}
