package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
	"github.com/bethropolis/tedit/internal/logger"
)

// Manager stores copied text in an internal register and, when enabled,
// mirrors it to the system clipboard.
type Manager struct {
	useSystem bool
	register  string

	readSystem  func() (string, error)
	writeSystem func(string) error
}

// NewManager creates a clipboard manager. useSystem is ignored when the
// platform has no clipboard utility.
func NewManager(useSystem bool) *Manager {
	if useSystem && clipboard.Unsupported {
		logger.Warnf("Clipboard: system clipboard unsupported, using internal register")
		useSystem = false
	}
	return &Manager{
		useSystem:   useSystem,
		readSystem:  clipboard.ReadAll,
		writeSystem: clipboard.WriteAll,
	}
}

// Copy stores text. The register always keeps a copy; a failure to reach
// the system clipboard is logged and returned but does not lose the text.
func (m *Manager) Copy(text string) error {
	m.register = text
	if !m.useSystem {
		return nil
	}
	if err := m.writeSystem(text); err != nil {
		logger.Warnf("Clipboard: write to system clipboard failed: %v", err)
		return err
	}
	logger.Debugf("Clipboard: copied %d bytes", len(text))
	return nil
}

// Paste returns the current clipboard text, preferring the system
// clipboard and falling back to the register.
func (m *Manager) Paste() (string, error) {
	if m.useSystem {
		text, err := m.readSystem()
		if err == nil {
			return text, nil
		}
		logger.Warnf("Clipboard: read from system clipboard failed: %v", err)
		if m.register == "" {
			return "", errors.Join(ErrEmpty, err)
		}
	}
	if m.register == "" {
		return "", ErrEmpty
	}
	return m.register, nil
}

// ErrEmpty is returned by Paste when nothing has been copied.
var ErrEmpty = errors.New("clipboard is empty")
