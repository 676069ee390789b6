// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tedit/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	TabWidth        int    `toml:"tab_width"`
	ScrollOff       int    `toml:"scroll_off"`
	SystemClipboard bool   `toml:"system_clipboard"`
	Theme           string `toml:"theme"`
	HistoryLimit    int    `toml:"history_limit"`
	DataDir         string `toml:"data_dir"`
	WatchFile       bool   `toml:"watch_file"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.Config{
			LogLevel: "info",
		},
		Editor: EditorConfig{
			TabWidth:        DefaultTabWidth,
			ScrollOff:       DefaultScrollOff,
			SystemClipboard: SystemClipboard,
			Theme:           DefaultTheme,
			HistoryLimit:    DefaultHistoryLimit,
			WatchFile:       true,
		},
	}
}

// DefaultConfigPath returns ~/.config/tedit/config.toml (per platform).
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// loadFromFile decodes filePath over cfg. A missing file is not an error.
// It returns the keys the file set that no field matched.
func loadFromFile(filePath string, cfg *Config) ([]string, error) {
	if _, err := os.Stat(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	var undecoded []string
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate resets out-of-range values to their defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.TabWidth <= 0 {
		c.Editor.TabWidth = defaults.Editor.TabWidth
	}
	if c.Editor.ScrollOff < 0 {
		c.Editor.ScrollOff = defaults.Editor.ScrollOff
	}
	if c.Editor.HistoryLimit < 0 {
		c.Editor.HistoryLimit = defaults.Editor.HistoryLimit
	}
	if c.Editor.Theme == "" {
		c.Editor.Theme = defaults.Editor.Theme
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Result carries what LoadConfig found besides the config itself, so the
// caller can log it once the logger is up.
type Result struct {
	Path      string
	Undecoded []string
}

// LoadConfig layers defaults, the config file and flag overrides, then
// validates. An empty configFilePath means DefaultConfigPath. A parse
// error returns the defaults (with flags applied) alongside the error.
func LoadConfig(configFilePath string, flags *Flags) (*Config, Result, error) {
	cfg := NewDefaultConfig()
	res := Result{Path: configFilePath}
	if res.Path == "" {
		res.Path = DefaultConfigPath()
	}

	var loadErr error
	if res.Path != "" {
		fileCfg := NewDefaultConfig()
		undecoded, err := loadFromFile(res.Path, fileCfg)
		if err != nil {
			loadErr = err
		} else {
			cfg = fileCfg
			res.Undecoded = undecoded
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	cfg.validate()
	return cfg, res, loadErr
}
