package config

import "time"

// Base application details
const AppName = "tedit"
const Version = "0.1.0"
const DefaultConfigFileName = "config.toml"
const DataDirEnv = "TEDIT_DATA_DIR"

// Data subdirectories
const LanguagesDirName = "languages"
const ThemesDirName = "themes"

// Status Bar
const StatusBarHeight = 1
const MessageTimeout = 2 * time.Second

const DefaultTabWidth = 4
const DefaultScrollOff = 3
const SystemClipboard = true
const DefaultTheme = "default"
const DefaultHistoryLimit = 0 // unbounded

// Watcher
const WatchDebounce = 150 * time.Millisecond
const SaveGracePeriod = time.Second
