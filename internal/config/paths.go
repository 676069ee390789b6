package config

import (
	"os"
	"path/filepath"
)

// DataDirCandidates lists the base directories searched for languages/
// and themes/, in priority order: $TEDIT_DATA_DIR, the configured data
// dir, the executable's directory, its parent, <exe>/../share/tedit, the
// user config dir, and the working directory.
func DataDirCandidates(configured string) []string {
	var bases []string
	if env := os.Getenv(DataDirEnv); env != "" {
		bases = append(bases, env)
	}
	if configured != "" {
		bases = append(bases, configured)
	}
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dir := filepath.Dir(exe)
		bases = append(bases, dir, filepath.Dir(dir), filepath.Join(filepath.Dir(dir), "share", AppName))
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		bases = append(bases, filepath.Join(configDir, AppName))
	}
	if cwd, err := os.Getwd(); err == nil {
		bases = append(bases, cwd)
	}
	return bases
}

// FindDataSubdir returns the first existing <base>/<name> directory among
// DataDirCandidates, or "" when none exists.
func FindDataSubdir(name, configured string) string {
	for _, base := range DataDirCandidates(configured) {
		candidate := filepath.Join(base, name)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate
		}
	}
	return ""
}
