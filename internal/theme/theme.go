// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/bethropolis/tedit/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Theme maps style names to tcell styles. Highlight classes use the
// names plain, keyword, number, string and comment; UI elements use
// capitalized names such as StatusBar.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle looks up name, falling back to the part before the first dot,
// then to "Default", then to tcell's default style.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// DefaultName is the name of the built-in theme.
const DefaultName = "default"

// Default builds the built-in theme.
func Default() *Theme {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	blue := tcell.NewHexColor(0x61afef)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)
	bar := tcell.StyleDefault.Background(background).Foreground(foreground)

	return &Theme{
		Name:   DefaultName,
		IsDark: true,
		Styles: map[string]tcell.Style{
			"Default":           base,
			"LineNumber":        base.Foreground(muted),
			"Tilde":             base.Foreground(muted),
			"StatusBar":         bar,
			"StatusBarModified": bar.Foreground(yellow),
			"StatusBarMessage":  bar.Bold(true),
			"Prompt":            bar.Foreground(green).Bold(true),

			"plain":   base,
			"keyword": base.Foreground(blue).Bold(true),
			"number":  base.Foreground(orange),
			"string":  base.Foreground(green),
			"comment": base.Foreground(muted).Italic(true),
		},
	}
}

// fillUI copies UI styles a loaded theme did not define from the
// built-in theme, deriving them from the loaded theme's Default style.
func (t *Theme) fillUI() {
	def := t.GetStyle("Default")
	if _, ok := t.Styles["plain"]; !ok {
		t.Styles["plain"] = def
	}
	for _, name := range []string{"LineNumber", "Tilde"} {
		if _, ok := t.Styles[name]; !ok {
			t.Styles[name] = def.Dim(true)
		}
	}
	bar, ok := t.Styles["StatusBar"]
	if !ok {
		bar = def.Reverse(true)
		t.Styles["StatusBar"] = bar
	}
	for name, style := range map[string]tcell.Style{
		"StatusBarModified": bar.Bold(true),
		"StatusBarMessage":  bar.Bold(true),
		"Prompt":            bar.Bold(true),
	} {
		if _, ok := t.Styles[name]; !ok {
			t.Styles[name] = style
		}
	}
}
