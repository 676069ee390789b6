package highlighter

import (
	"github.com/bethropolis/tedit/internal/event"
	"github.com/bethropolis/tedit/internal/highlighter/lang"
	"github.com/bethropolis/tedit/internal/logger"
	"github.com/bethropolis/tedit/internal/types"
)

type cacheEntry struct {
	classes []Class
	dirty   bool
}

// Cache is a document's highlight array. Buffer edits shift and
// invalidate entries; a line is only reclassified when Line asks for it.
type Cache struct {
	lang    *lang.Language
	entries []cacheEntry
}

// NewCache creates an empty cache for l (which may be nil).
func NewCache(l *lang.Language) *Cache {
	return &Cache{lang: l}
}

// Language returns the descriptor the cache classifies with.
func (c *Cache) Language() *lang.Language {
	return c.lang
}

// SetLanguage replaces the descriptor and drops every entry.
func (c *Cache) SetLanguage(l *lang.Language) {
	c.lang = l
	c.Reset()
}

// Reset drops every entry.
func (c *Cache) Reset() {
	c.entries = nil
}

// Apply updates the cache for one buffer mutation: entries for lines
// StartLine..OldEndLine are replaced by dirty entries for lines
// StartLine..NewEndLine and later entries shift accordingly.
func (c *Cache) Apply(edit types.EditInfo) {
	if edit.NoChange || edit.StartLine < 0 || edit.StartLine >= len(c.entries) {
		// Lines beyond the cached range are computed on demand anyway.
		return
	}
	oldEnd := edit.OldEndLine + 1
	if oldEnd > len(c.entries) {
		oldEnd = len(c.entries)
	}
	fresh := make([]cacheEntry, edit.NewEndLine-edit.StartLine+1)
	for i := range fresh {
		fresh[i].dirty = true
	}
	tail := c.entries[oldEnd:]
	entries := make([]cacheEntry, 0, edit.StartLine+len(fresh)+len(tail))
	entries = append(entries, c.entries[:edit.StartLine]...)
	entries = append(entries, fresh...)
	c.entries = append(entries, tail...)
	logger.DebugTagf("highlight", "Cache: applied edit %+v (%+d lines), %d entries", edit, edit.LineDelta(), len(c.entries))
}

// Line returns the classification of line row, whose current content is
// text, recomputing it if it was invalidated.
func (c *Cache) Line(row int, text string) []Class {
	if row < 0 {
		return nil
	}
	for len(c.entries) <= row {
		c.entries = append(c.entries, cacheEntry{dirty: true})
	}
	e := &c.entries[row]
	if e.dirty || e.classes == nil {
		e.classes = Classify(text, c.lang)
		e.dirty = false
	}
	return e.classes
}

// Dirty reports whether row will be recomputed on the next Line call.
func (c *Cache) Dirty(row int) bool {
	if row < 0 || row >= len(c.entries) {
		return true
	}
	return c.entries[row].dirty || c.entries[row].classes == nil
}

// Len is the number of cached entries.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Subscribe keeps the cache in step with a document's events.
func (c *Cache) Subscribe(events *event.Manager) {
	events.Subscribe(event.TypeBufferModified, func(e event.Event) bool {
		if data, ok := e.Data.(event.BufferModifiedData); ok {
			c.Apply(data.Edit)
		}
		return false
	})
	events.Subscribe(event.TypeBufferLoaded, func(event.Event) bool {
		c.Reset()
		return false
	})
}
