package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseSGR(t *testing.T) {
	tests := []struct {
		codes     string
		fg, bg    tcell.Color
		bold      bool
		underline bool
	}{
		{"1;34", tcell.PaletteColor(4), tcell.ColorDefault, true, false},
		{"32", tcell.PaletteColor(2), tcell.ColorDefault, false, false},
		{"91;4", tcell.PaletteColor(9), tcell.ColorDefault, false, true},
		{"38;5;208", tcell.PaletteColor(208), tcell.ColorDefault, false, false},
		{"38;2;10;20;30;48;5;17", tcell.NewRGBColor(10, 20, 30), tcell.PaletteColor(17), false, false},
		{"1;0;33", tcell.PaletteColor(3), tcell.ColorDefault, false, false},
		{"", tcell.ColorDefault, tcell.ColorDefault, false, false},
	}
	for _, tt := range tests {
		style, err := ParseSGR(tt.codes, tcell.StyleDefault)
		if err != nil {
			t.Fatalf("ParseSGR(%q): %v", tt.codes, err)
		}
		fg, bg, attrs := style.Decompose()
		if fg != tt.fg || bg != tt.bg {
			t.Errorf("ParseSGR(%q) fg=%v bg=%v, want %v %v", tt.codes, fg, bg, tt.fg, tt.bg)
		}
		if got := attrs&tcell.AttrBold != 0; got != tt.bold {
			t.Errorf("ParseSGR(%q) bold=%v, want %v", tt.codes, got, tt.bold)
		}
		if got := attrs&tcell.AttrUnderline != 0; got != tt.underline {
			t.Errorf("ParseSGR(%q) underline=%v, want %v", tt.codes, got, tt.underline)
		}
	}
}

func TestParseSGRErrors(t *testing.T) {
	for _, codes := range []string{"1;x", "38;5", "38;2;1;2", "48;9;1", "38;5;300"} {
		if _, err := ParseSGR(codes, tcell.StyleDefault); err == nil {
			t.Errorf("ParseSGR(%q) succeeded, want error", codes)
		}
	}
}

func TestLoadJSONTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classic.json")
	content := `{"name": "Classic", "colors": {"keyword": "1;34", "number": "35", "string": "32", "comment": "90"}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile: %v", err)
	}
	if th.Name != "Classic" {
		t.Fatalf("name=%q, want Classic", th.Name)
	}
	fg, _, attrs := th.GetStyle("keyword").Decompose()
	if fg != tcell.PaletteColor(4) || attrs&tcell.AttrBold == 0 {
		t.Fatalf("keyword fg=%v attrs=%v, want bold blue", fg, attrs)
	}
	if _, ok := th.Styles["StatusBar"]; !ok {
		t.Fatal("UI styles were not filled in")
	}
}

func TestLoadTOMLTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.toml")
	content := `
is_dark = false

[styles.Default]
fg = "#101010"
bg = "#fafafa"

[styles.keyword]
fg = "navy"
bold = true

[styles.comment]
fg = "nonsense"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile: %v", err)
	}
	if th.Name != "mine" {
		t.Fatalf("name=%q, want file name fallback", th.Name)
	}
	fg, bg, attrs := th.GetStyle("keyword").Decompose()
	if fg != tcell.ColorNavy || bg != tcell.NewHexColor(0xfafafa) || attrs&tcell.AttrBold == 0 {
		t.Fatalf("keyword fg=%v bg=%v attrs=%v", fg, bg, attrs)
	}
	if got, want := th.GetStyle("comment"), th.GetStyle("Default"); got != want {
		t.Fatal("invalid style was not skipped in favour of Default")
	}
}

func TestGetStyleFallbacks(t *testing.T) {
	th := Default()
	if got, want := th.GetStyle("keyword.control"), th.Styles["keyword"]; got != want {
		t.Fatal("dotted name did not fall back to its base")
	}
	if got, want := th.GetStyle("missing"), th.Styles["Default"]; got != want {
		t.Fatal("unknown name did not fall back to Default")
	}
	empty := &Theme{Name: "empty", Styles: map[string]tcell.Style{}}
	if got := empty.GetStyle("x"); got != tcell.StyleDefault {
		t.Fatal("empty theme did not fall back to tcell default")
	}
}

func TestManagerSetTheme(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "plain.json"), []byte(`{"name": "Plain", "colors": {}}`), 0644); err != nil {
		t.Fatal(err)
	}
	m := NewManager(dir)
	if got := m.Current().Name; got != DefaultName {
		t.Fatalf("initial theme=%q, want %q", got, DefaultName)
	}
	if err := m.SetTheme("PLAIN"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	if got := m.Current().Name; got != "Plain" {
		t.Fatalf("theme=%q, want Plain", got)
	}
	if err := m.SetTheme("does-not-exist"); err == nil {
		t.Fatal("SetTheme of an unknown theme succeeded")
	}
	if got := m.Current().Name; got != "Plain" {
		t.Fatalf("failed SetTheme changed theme to %q", got)
	}
}

func TestManagerChromaFallback(t *testing.T) {
	m := NewManager("")
	if err := m.SetTheme("monokai"); err != nil {
		t.Fatalf("SetTheme(monokai): %v", err)
	}
	th := m.Current()
	for _, name := range []string{"plain", "keyword", "number", "string", "comment", "StatusBar"} {
		if _, ok := th.Styles[name]; !ok {
			t.Errorf("chroma theme missing style %q", name)
		}
	}
	if _, ok := m.GetTheme("monokai"); !ok {
		t.Fatal("chroma theme was not cached")
	}
}
