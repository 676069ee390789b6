package highlighter

import (
	"testing"

	"github.com/bethropolis/tedit/internal/buffer"
	"github.com/bethropolis/tedit/internal/event"
	"github.com/bethropolis/tedit/internal/highlighter/lang"
	"github.com/bethropolis/tedit/internal/types"
)

var testLang = &lang.Language{Name: "Test", Keywords: []string{"if"}, SingleLineComment: "//"}

func fill(c *Cache, buf buffer.Buffer) {
	for i := 0; i < buf.LineCount(); i++ {
		c.Line(i, buf.Line(i))
	}
}

func TestCacheRecomputesOnlyDirtyLines(t *testing.T) {
	buf := buffer.NewSliceBufferFromLines([]string{"if a", "b", "c"})
	c := NewCache(testLang)
	fill(c, buf)

	c.Apply(buf.InsertText(1, 0, "if "))
	if !c.Dirty(1) || c.Dirty(0) || c.Dirty(2) {
		t.Fatalf("dirty = %v %v %v, want false true false", c.Dirty(0), c.Dirty(1), c.Dirty(2))
	}
	if got, want := render(c.Line(1, buf.Line(1))), "kk.."; got != want {
		t.Fatalf("line 1=%s, want %s", got, want)
	}
}

func TestCacheShiftsOnSplitAndJoin(t *testing.T) {
	buf := buffer.NewSliceBufferFromLines([]string{"if x", "// note", "y"})
	c := NewCache(testLang)
	fill(c, buf)

	c.Apply(buf.SplitLineIndent(0, 2, ""))
	if got, want := c.Len(), 4; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	if c.Dirty(2) || c.Dirty(3) {
		t.Fatal("lines after the split were invalidated instead of shifted")
	}
	if got, want := render(c.Line(2, buf.Line(2))), "ccccccc"; got != want {
		t.Fatalf("shifted comment line=%s, want %s", got, want)
	}

	c.Apply(buf.JoinLine(1))
	if got, want := c.Len(), 3; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	for i := 0; i < buf.LineCount(); i++ {
		if got, want := render(c.Line(i, buf.Line(i))), render(Classify(buf.Line(i), testLang)); got != want {
			t.Fatalf("line %d cached=%s, fresh=%s", i, got, want)
		}
	}
}

func TestCacheIgnoresNoChange(t *testing.T) {
	c := NewCache(testLang)
	c.Line(0, "if")
	c.Apply(types.Unchanged)
	if c.Dirty(0) {
		t.Fatal("no-op edit invalidated the cache")
	}
}

func TestCacheSetLanguageResets(t *testing.T) {
	c := NewCache(nil)
	if got, want := render(c.Line(0, "if 1")), "...."; got != want {
		t.Fatalf("nil language=%s, want %s", got, want)
	}
	c.SetLanguage(testLang)
	if got, want := render(c.Line(0, "if 1")), "kk.n"; got != want {
		t.Fatalf("after SetLanguage=%s, want %s", got, want)
	}
}

func TestCacheFollowsEvents(t *testing.T) {
	events := event.NewManager()
	buf := buffer.NewSliceBufferFromLines([]string{"a", "b"})
	c := NewCache(testLang)
	c.Subscribe(events)
	fill(c, buf)

	events.Dispatch(event.TypeBufferModified, event.BufferModifiedData{Edit: buf.RemoveLine(0)})
	if got, want := c.Len(), 1; got != want {
		t.Fatalf("len=%d, want %d", got, want)
	}
	events.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{})
	if got := c.Len(); got != 0 {
		t.Fatalf("len after load=%d, want 0", got)
	}
}
