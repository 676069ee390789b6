package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
)

type chanPoster chan tcell.Event

func (c chanPoster) PostEvent(ev tcell.Event) error {
	c <- ev
	return nil
}

func newTestWatcher(t *testing.T) (*Watcher, chanPoster) {
	t.Helper()
	events := make(chanPoster, 8)
	w, err := New(events, 20*time.Millisecond, 500*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { w.Close() })
	return w, events
}

func waitEvent(t *testing.T, events chanPoster, d time.Duration) *FileChangedEvent {
	t.Helper()
	select {
	case ev := <-events:
		fc, ok := ev.(*FileChangedEvent)
		if !ok {
			t.Fatalf("unexpected event %T", ev)
		}
		return fc
	case <-time.After(d):
		return nil
	}
}

func TestExternalWriteIsReported(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.txt")
	if err := os.WriteFile(path, []byte("a\n"), 0644); err != nil {
		t.Fatal(err)
	}
	w, events := newTestWatcher(t)
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if ev := waitEvent(t, events, 200*time.Millisecond); ev != nil {
		t.Fatalf("event for unrelated file: %+v", ev)
	}

	if err := os.WriteFile(path, []byte("b\n"), 0644); err != nil {
		t.Fatal(err)
	}
	ev := waitEvent(t, events, 2*time.Second)
	if ev == nil {
		t.Fatal("no event for external write")
	}
	abs, _ := filepath.Abs(path)
	if ev.Path != abs || ev.Op&fsnotify.Write == 0 {
		t.Fatalf("event = %+v", ev)
	}
	if ev := waitEvent(t, events, 100*time.Millisecond); ev != nil {
		t.Fatalf("writes were not coalesced: extra %+v", ev)
	}
}

func TestOwnSaveIsIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	w, events := newTestWatcher(t)
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	w.MarkSaved()
	if err := os.WriteFile(path, []byte("mine\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if ev := waitEvent(t, events, 200*time.Millisecond); ev != nil {
		t.Fatalf("own save reported: %+v", ev)
	}
}

func TestWatchEmptyStops(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	w, events := newTestWatcher(t)
	if err := w.Watch(path); err != nil {
		t.Fatal(err)
	}
	if err := w.Watch(""); err != nil {
		t.Fatal(err)
	}
	os.WriteFile(path, []byte("x"), 0644)
	if ev := waitEvent(t, events, 200*time.Millisecond); ev != nil {
		t.Fatalf("event after Watch(\"\"): %+v", ev)
	}
}
