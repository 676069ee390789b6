// internal/theme/loader.go
package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tedit/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// TomlStyleDef represents a single style definition in the TOML file
type TomlStyleDef struct {
	Fg        *string `toml:"fg"` // pointers tell unset from false/empty
	Bg        *string `toml:"bg"`
	Bold      *bool   `toml:"bold"`
	Italic    *bool   `toml:"italic"`
	Underline *bool   `toml:"underline"`
	Reverse   *bool   `toml:"reverse"`
}

// TomlTheme represents the structure of a theme file
type TomlTheme struct {
	Name   string                  `toml:"name"`
	IsDark bool                    `toml:"is_dark"`
	Styles map[string]TomlStyleDef `toml:"styles"`
}

// JSONTheme is the legacy JSON theme format: style name to SGR parameters,
// e.g. {"keyword": "1;34"}.
type JSONTheme struct {
	Name   string            `json:"name"`
	Colors map[string]string `json:"colors"`
}

// LoadThemeFromFile parses a .toml or .json theme file.
func LoadThemeFromFile(filePath string) (*Theme, error) {
	var (
		t   *Theme
		err error
	)
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".toml":
		t, err = loadTOML(filePath)
	case ".json":
		t, err = loadJSON(filePath)
	default:
		return nil, fmt.Errorf("unsupported theme file type '%s'", filePath)
	}
	if err != nil {
		return nil, err
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		logger.Debugf("Theme file '%s' missing 'name', using filename '%s'", filePath, t.Name)
	}
	t.fillUI()
	logger.Debugf("Successfully loaded theme '%s' from '%s'", t.Name, filePath)
	return t, nil
}

func loadTOML(filePath string) (*Theme, error) {
	var tomlTheme TomlTheme
	metadata, err := toml.DecodeFile(filePath, &tomlTheme)
	if err != nil {
		return nil, fmt.Errorf("failed to parse TOML theme file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Theme '%s': Unrecognized keys in file '%s': %v", tomlTheme.Name, filePath, metadata.Undecoded())
	}

	t := &Theme{
		Name:   tomlTheme.Name,
		IsDark: tomlTheme.IsDark,
		Styles: make(map[string]tcell.Style),
	}

	baseStyle := tcell.StyleDefault
	if def, ok := tomlTheme.Styles["Default"]; ok {
		if baseStyle, err = convertTomlStyle(def, tcell.StyleDefault); err != nil {
			logger.Warnf("Theme '%s': Failed to parse 'Default' style, using tcell default as base: %v", t.Name, err)
			baseStyle = tcell.StyleDefault
		}
	}
	t.Styles["Default"] = baseStyle

	for name, def := range tomlTheme.Styles {
		if name == "Default" {
			continue
		}
		style, err := convertTomlStyle(def, baseStyle)
		if err != nil {
			logger.Warnf("Theme '%s': Failed to parse style '%s', skipping: %v", t.Name, name, err)
			continue
		}
		t.Styles[name] = style
	}
	return t, nil
}

func loadJSON(filePath string) (*Theme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file '%s': %w", filePath, err)
	}
	var jsonTheme JSONTheme
	if err := json.Unmarshal(data, &jsonTheme); err != nil {
		return nil, fmt.Errorf("failed to parse JSON theme file '%s': %w", filePath, err)
	}

	t := &Theme{
		Name:   jsonTheme.Name,
		IsDark: true,
		Styles: map[string]tcell.Style{"Default": tcell.StyleDefault},
	}
	for name, codes := range jsonTheme.Colors {
		style, err := ParseSGR(codes, tcell.StyleDefault)
		if err != nil {
			logger.Warnf("Theme '%s': Failed to parse style '%s', skipping: %v", t.Name, name, err)
			continue
		}
		if name == "default" || name == "Default" {
			t.Styles["Default"] = style
			continue
		}
		t.Styles[name] = style
	}
	return t, nil
}

// convertTomlStyle converts the TOML definition to a tcell.Style, inheriting from a base
func convertTomlStyle(def TomlStyleDef, baseStyle tcell.Style) (tcell.Style, error) {
	style := baseStyle

	if def.Fg != nil {
		color, err := parseColorString(*def.Fg)
		if err != nil {
			return style, fmt.Errorf("invalid foreground color '%s': %w", *def.Fg, err)
		}
		style = style.Foreground(color)
	}
	if def.Bg != nil {
		color, err := parseColorString(*def.Bg)
		if err != nil {
			return style, fmt.Errorf("invalid background color '%s': %w", *def.Bg, err)
		}
		style = style.Background(color)
	}

	if def.Bold != nil {
		style = style.Bold(*def.Bold)
	}
	if def.Italic != nil {
		style = style.Italic(*def.Italic)
	}
	if def.Underline != nil {
		style = style.Underline(*def.Underline)
	}
	if def.Reverse != nil {
		style = style.Reverse(*def.Reverse)
	}
	return style, nil
}

// parseColorString accepts #RRGGBB, a tcell color name, or the keywords
// reset and default.
func parseColorString(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "reset":
		return tcell.ColorReset, nil
	case s == "default":
		return tcell.ColorDefault, nil
	case strings.HasPrefix(s, "#"):
		if len(s) != 7 {
			return tcell.ColorDefault, fmt.Errorf("invalid hex color format '%s', must be #RRGGBB", s)
		}
		val, err := strconv.ParseInt(s[1:], 16, 32)
		if err != nil {
			return tcell.ColorDefault, fmt.Errorf("invalid hex value '%s': %w", s, err)
		}
		return tcell.NewHexColor(int32(val)), nil
	}
	if c, ok := tcell.ColorNames[s]; ok {
		return c, nil
	}
	return tcell.ColorDefault, fmt.Errorf("unknown color format or name '%s'", s)
}

// ParseSGR applies a semicolon-separated list of SGR parameters (the
// payload of an ESC[...m sequence) on top of base.
func ParseSGR(codes string, base tcell.Style) (tcell.Style, error) {
	style := base
	codes = strings.TrimSpace(codes)
	if codes == "" {
		return style, nil
	}
	parts := strings.Split(codes, ";")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return base, fmt.Errorf("invalid SGR parameter %q in %q", p, codes)
		}
		nums[i] = n
	}

	for i := 0; i < len(nums); i++ {
		n := nums[i]
		switch {
		case n == 0:
			style = tcell.StyleDefault
		case n == 1:
			style = style.Bold(true)
		case n == 2:
			style = style.Dim(true)
		case n == 3:
			style = style.Italic(true)
		case n == 4:
			style = style.Underline(true)
		case n == 5:
			style = style.Blink(true)
		case n == 7:
			style = style.Reverse(true)
		case n == 9:
			style = style.StrikeThrough(true)
		case n == 22:
			style = style.Bold(false).Dim(false)
		case n == 23:
			style = style.Italic(false)
		case n == 24:
			style = style.Underline(false)
		case n == 27:
			style = style.Reverse(false)
		case n >= 30 && n <= 37:
			style = style.Foreground(tcell.PaletteColor(n - 30))
		case n == 39:
			style = style.Foreground(tcell.ColorDefault)
		case n >= 40 && n <= 47:
			style = style.Background(tcell.PaletteColor(n - 40))
		case n == 49:
			style = style.Background(tcell.ColorDefault)
		case n >= 90 && n <= 97:
			style = style.Foreground(tcell.PaletteColor(n - 90 + 8))
		case n >= 100 && n <= 107:
			style = style.Background(tcell.PaletteColor(n - 100 + 8))
		case n == 38 || n == 48:
			color, used, err := extendedColor(nums[i+1:])
			if err != nil {
				return base, fmt.Errorf("%w in %q", err, codes)
			}
			if n == 38 {
				style = style.Foreground(color)
			} else {
				style = style.Background(color)
			}
			i += used
		default:
			logger.Debugf("Theme: ignoring unsupported SGR parameter %d", n)
		}
	}
	return style, nil
}

// extendedColor decodes the arguments following 38 or 48: either 5;n or
// 2;r;g;b. It returns how many parameters it consumed.
func extendedColor(args []int) (tcell.Color, int, error) {
	if len(args) == 0 {
		return tcell.ColorDefault, 0, fmt.Errorf("truncated extended color")
	}
	switch args[0] {
	case 5:
		if len(args) < 2 || args[1] > 255 {
			return tcell.ColorDefault, 0, fmt.Errorf("invalid 256-color parameter")
		}
		return tcell.PaletteColor(args[1]), 2, nil
	case 2:
		if len(args) < 4 || args[1] > 255 || args[2] > 255 || args[3] > 255 {
			return tcell.ColorDefault, 0, fmt.Errorf("invalid RGB color parameter")
		}
		return tcell.NewRGBColor(int32(args[1]), int32(args[2]), int32(args[3])), 4, nil
	}
	return tcell.ColorDefault, 0, fmt.Errorf("unknown extended color mode %d", args[0])
}
