// Package watcher reports changes other programs make to the open file.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/bethropolis/tedit/internal/logger"
	"github.com/bethropolis/tedit/internal/utils"
	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
)

// Poster is where change notifications are delivered; tcell.Screen
// satisfies it.
type Poster interface {
	PostEvent(ev tcell.Event) error
}

// FileChangedEvent is posted into the tcell event queue when the watched
// file changes on disk.
type FileChangedEvent struct {
	tcell.EventTime
	Path string
	Op   fsnotify.Op
}

// Watcher watches the directory of one file, so that editors that save
// by rename are still seen. It never touches editor state; it only posts
// events.
type Watcher struct {
	fsw      *fsnotify.Watcher
	poster   Poster
	debounce time.Duration
	grace    time.Duration
	now      func() time.Time

	debouncer utils.Debouncer

	mu       sync.Mutex
	path     string
	dir      string
	lastSave time.Time
	pending  fsnotify.Op

	done chan struct{}
}

// New starts a watcher. Changes are coalesced over debounce; changes
// within grace of MarkSaved are ignored.
func New(poster Poster, debounce, grace time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{
		fsw:      fsw,
		poster:   poster,
		debounce: debounce,
		grace:    grace,
		now:      time.Now,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Watch switches the watched file to path. An empty path stops watching.
func (w *Watcher) Watch(path string) error {
	var abs, dir string
	if path != "" {
		var err error
		if abs, err = filepath.Abs(path); err != nil {
			return fmt.Errorf("watch '%s': %w", path, err)
		}
		dir = filepath.Dir(abs)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.dir != dir && w.dir != "" {
		if err := w.fsw.Remove(w.dir); err != nil {
			logger.Debugf("Watcher: remove '%s': %v", w.dir, err)
		}
	}
	if dir != "" && dir != w.dir {
		if err := w.fsw.Add(dir); err != nil {
			w.path, w.dir = "", ""
			return fmt.Errorf("watch '%s': %w", dir, err)
		}
	}
	w.path, w.dir = abs, dir
	w.pending = 0
	logger.DebugTagf("watcher", "Watcher: watching '%s'", abs)
	return nil
}

// MarkSaved records that the editor itself just wrote the file.
func (w *Watcher) MarkSaved() {
	w.mu.Lock()
	w.lastSave = w.now()
	w.mu.Unlock()
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	w.debouncer.Stop()
	err := w.fsw.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warnf("Watcher: %v", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if ev.Op == fsnotify.Chmod {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.path == "" || filepath.Clean(ev.Name) != w.path {
		return
	}
	if !w.lastSave.IsZero() && w.now().Sub(w.lastSave) < w.grace {
		logger.DebugTagf("watcher", "Watcher: ignoring %v within save grace period", ev.Op)
		return
	}
	w.pending |= ev.Op
	path := w.path
	w.debouncer.Debounce(w.debounce, func() { w.flush(path) })
}

func (w *Watcher) flush(path string) {
	w.mu.Lock()
	op := w.pending
	w.pending = 0
	current := w.path
	saved := !w.lastSave.IsZero() && w.now().Sub(w.lastSave) < w.grace
	w.mu.Unlock()
	if op == 0 || current != path || saved {
		return
	}

	ev := &FileChangedEvent{Path: path, Op: op}
	ev.SetEventNow()
	if err := w.poster.PostEvent(ev); err != nil {
		logger.Warnf("Watcher: could not post change event: %v", err)
	}
}
