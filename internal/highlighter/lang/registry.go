package lang

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bethropolis/tedit/internal/logger"
)

// Registry maps file extensions to languages. Later registrations win
// for a shared extension.
type Registry struct {
	byName map[string]*Language
	byExt  map[string]*Language
}

func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]*Language),
		byExt:  make(map[string]*Language),
	}
}

// Register adds l, replacing any language with the same name and taking
// over its extensions.
func (r *Registry) Register(l *Language) {
	if l == nil || l.Name == "" {
		return
	}
	key := strings.ToLower(l.Name)
	if old, ok := r.byName[key]; ok {
		for _, ext := range old.Extensions {
			if r.byExt[normalizeExt(ext)] == old {
				delete(r.byExt, normalizeExt(ext))
			}
		}
	}
	r.byName[key] = l
	for _, ext := range l.Extensions {
		r.byExt[normalizeExt(ext)] = l
	}
	logger.DebugTagf("lang", "Registered language %s (%d keywords, extensions %v)", l.Name, len(l.Keywords), l.Extensions)
}

// ForFile returns the language for path's extension, or nil when none
// matches.
func (r *Registry) ForFile(path string) *Language {
	ext := filepath.Ext(path)
	if ext == "" {
		return nil
	}
	return r.byExt[normalizeExt(ext)]
}

// Get looks a language up by name, ignoring case.
func (r *Registry) Get(name string) (*Language, bool) {
	l, ok := r.byName[strings.ToLower(name)]
	return l, ok
}

// All returns the registered languages sorted by name.
func (r *Registry) All() []*Language {
	all := make([]*Language, 0, len(r.byName))
	for _, l := range r.byName {
		all = append(all, l)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// LoadDir registers every descriptor file (.toml or .json) in dir.
// Files that fail to parse are logged and skipped. It returns the number
// of languages loaded.
func (r *Registry) LoadDir(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warnf("Languages: cannot read directory '%s': %v", dir, err)
		return 0
	}
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml", ".json":
		default:
			continue
		}
		l, err := LoadFile(path)
		if err != nil {
			logger.Warnf("Languages: skipping '%s': %v", path, err)
			continue
		}
		r.Register(l)
		loaded++
	}
	logger.Infof("Languages: loaded %d descriptor(s) from '%s'", loaded, dir)
	return loaded
}
