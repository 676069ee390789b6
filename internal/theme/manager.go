// internal/theme/manager.go
package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bethropolis/tedit/internal/logger"
)

// Manager holds loaded themes and the active one. It is used from the
// app loop only.
type Manager struct {
	themes      map[string]*Theme // lowercase name -> theme
	activeTheme *Theme
}

// NewManager creates a manager holding the built-in theme and, when dir
// is non-empty, the theme files found there.
func NewManager(dir string) *Manager {
	def := Default()
	mgr := &Manager{
		themes:      map[string]*Theme{DefaultName: def},
		activeTheme: def,
	}
	if dir != "" {
		if err := mgr.LoadThemesFromDir(dir); err != nil {
			logger.Warnf("Error loading themes from '%s': %v", dir, err)
		}
	}
	return mgr
}

// LoadThemesFromDir loads every .toml and .json theme in dir.
func (m *Manager) LoadThemesFromDir(dir string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read theme directory '%s': %w", dir, err)
	}

	loadedCount := 0
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Name()))
		if file.IsDir() || (ext != ".toml" && ext != ".json") {
			continue
		}
		filePath := filepath.Join(dir, file.Name())
		t, err := LoadThemeFromFile(filePath)
		if err != nil {
			logger.Warnf("Failed to load theme from '%s': %v", filePath, err)
			continue
		}
		key := strings.ToLower(t.Name)
		if existing, ok := m.themes[key]; ok {
			logger.Debugf("Theme '%s' from '%s' overrides '%s'", t.Name, filePath, existing.Name)
		}
		m.themes[key] = t
		loadedCount++
	}
	logger.Infof("Loaded %d theme(s) from '%s'.", loadedCount, dir)
	return nil
}

// Current returns the currently active theme.
func (m *Manager) Current() *Theme {
	return m.activeTheme
}

// SetTheme activates a loaded theme by name, falling back to a chroma
// style of that name. An unknown name leaves the active theme unchanged.
func (m *Manager) SetTheme(name string) error {
	key := strings.ToLower(name)
	t, ok := m.themes[key]
	if !ok {
		if t, ok = FromChroma(key); ok {
			m.themes[key] = t
			logger.Debugf("Theme '%s' built from chroma style", name)
		}
	}
	if !ok {
		return fmt.Errorf("theme '%s' not found", name)
	}
	if m.activeTheme != t {
		m.activeTheme = t
		logger.Infof("Active theme set to: %s", t.Name)
	}
	return nil
}

// ListThemes returns the names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	names := make([]string, 0, len(m.themes))
	for _, t := range m.themes {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

// GetTheme returns a loaded theme by name (case-insensitive).
func (m *Manager) GetTheme(name string) (*Theme, bool) {
	t, ok := m.themes[strings.ToLower(name)]
	return t, ok
}
