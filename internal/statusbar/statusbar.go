// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/bethropolis/tedit/internal/config"
	"github.com/bethropolis/tedit/internal/theme"
	"github.com/bethropolis/tedit/internal/types"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleModified  tcell.Style // modified indicator
	StyleMessage   tcell.Style // transient messages
	StylePrompt    tcell.Style // filename prompt
	MessageTimeout time.Duration
}

// DefaultConfig takes its styles from the built-in theme.
func DefaultConfig() Config {
	return ConfigFromTheme(theme.Default())
}

// ConfigFromTheme builds a status bar config from a theme's UI styles.
func ConfigFromTheme(t *theme.Theme) Config {
	return Config{
		StyleDefault:   t.GetStyle("StatusBar"),
		StyleModified:  t.GetStyle("StatusBarModified"),
		StyleMessage:   t.GetStyle("StatusBarMessage"),
		StylePrompt:    t.GetStyle("Prompt"),
		MessageTimeout: config.MessageTimeout,
	}
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	filePath   string
	cursorPos  types.Position
	isModified bool
	language   string

	prompt      string
	promptInput string
	prompting   bool

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetConfig replaces styles and timeout, e.g. after a theme change.
func (sb *StatusBar) SetConfig(config Config) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.config = config
}

// Timeout returns how long transient messages stay visible.
func (sb *StatusBar) Timeout() time.Duration {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.config.MessageTimeout
}

// SetFileInfo updates the file path shown in the status bar.
func (sb *StatusBar) SetFileInfo(path string, modified bool) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
	sb.isModified = modified
}

// SetCursorInfo updates the cursor position shown.
func (sb *StatusBar) SetCursorInfo(pos types.Position) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.cursorPos = pos
}

// SetLanguage updates the language name shown; "" hides it.
func (sb *StatusBar) SetLanguage(name string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.language = name
}

// SetTemporaryMessage displays a message for the configured timeout.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Message returns the active transient message, expiring it if its time
// is up.
func (sb *StatusBar) Message() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.activeMessage()
}

func (sb *StatusBar) activeMessage() string {
	if sb.tempMessageTime.IsZero() {
		return ""
	}
	if sb.now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	return sb.tempMessage
}

// SetPrompt shows label followed by the text typed so far.
func (sb *StatusBar) SetPrompt(label, input string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.prompting = true
	sb.prompt = label
	sb.promptInput = input
}

// ClearPrompt returns the bar to its normal content.
func (sb *StatusBar) ClearPrompt() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.prompting = false
	sb.prompt = ""
	sb.promptInput = ""
}

// PromptCursor reports whether a prompt is showing and the screen column
// just after its input.
func (sb *StatusBar) PromptCursor() (int, bool) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	if !sb.prompting {
		return 0, false
	}
	return uniseg.StringWidth(sb.prompt + sb.promptInput), true
}

// defaultText builds the normal status line: name, modified flag,
// 1-based row:col and language.
func (sb *StatusBar) defaultText() (string, string) {
	name := sb.filePath
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if sb.isModified {
		modified = " [Modified]"
	}
	rest := fmt.Sprintf(" | %d:%d", sb.cursorPos.Line+1, sb.cursorPos.Col+1)
	if sb.language != "" {
		rest += " | " + sb.language
	}
	return name + modified, rest
}

// Text returns what Draw would show, without styling.
func (sb *StatusBar) Text() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	switch {
	case sb.prompting:
		return sb.prompt + sb.promptInput
	case sb.activeMessage() != "":
		return sb.tempMessage
	}
	head, rest := sb.defaultText()
	return head + rest
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	cfg := sb.config
	var segments []segment
	switch {
	case sb.prompting:
		segments = []segment{{sb.prompt + sb.promptInput, cfg.StylePrompt}}
	case sb.activeMessage() != "":
		segments = []segment{{sb.tempMessage, cfg.StyleMessage}}
	default:
		head, rest := sb.defaultText()
		headStyle := cfg.StyleDefault
		if sb.isModified {
			headStyle = cfg.StyleModified
		}
		segments = []segment{{head, headStyle}, {rest, cfg.StyleDefault}}
	}
	sb.mu.Unlock()

	fill := segments[0].style
	if len(segments) > 1 {
		fill = cfg.StyleDefault
	}
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, fill)
	}
	x := 0
	for _, seg := range segments {
		x = drawString(screen, x, y, width, seg.text, seg.style)
	}
}

type segment struct {
	text  string
	style tcell.Style
}

// drawString draws text from column x by grapheme cluster and returns the
// column after the last cluster that fit.
func drawString(screen tcell.Screen, x, y, width int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if x+w > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			screen.SetContent(x, y, runes[0], runes[1:], style)
		}
		x += w
	}
	return x
}
