package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/bethropolis/tedit/internal/buffer"
	"github.com/bethropolis/tedit/internal/config"
	"github.com/bethropolis/tedit/internal/core"
	hl "github.com/bethropolis/tedit/internal/highlighter"
	"github.com/bethropolis/tedit/internal/statusbar"
	"github.com/bethropolis/tedit/internal/theme"
	"github.com/bethropolis/tedit/internal/types"
	"github.com/gdamore/tcell/v2"
)

func newTestTUI(t *testing.T, w, h int) *TUI {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	ui, err := NewWithScreen(s, theme.Default())
	if err != nil {
		t.Fatal(err)
	}
	s.SetSize(w, h)
	t.Cleanup(ui.Close)
	return ui
}

func newTestEditor(t *testing.T, ui *TUI, name string, lines ...string) *core.Editor {
	t.Helper()
	ed := core.NewEditor(buffer.NewSliceBufferFromLines(lines), config.EditorConfig{TabWidth: 4}, nil, hl.NewRegistry(""))
	if name != "" {
		if err := ed.SaveAs(filepath.Join(t.TempDir(), name)); err != nil {
			t.Fatal(err)
		}
	}
	w, h := ui.Size()
	ed.SetViewSize(TextArea(ed, w, h))
	return ed
}

func rowText(ui *TUI, y int) string {
	w, _ := ui.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := ui.GetScreen().GetContent(x, y)
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func TestGutterWidth(t *testing.T) {
	tests := []struct{ lines, width, want int }{
		{1, 80, 2},
		{9, 80, 2},
		{10, 80, 3},
		{1200, 80, 5},
		{1200, 5, 0},
		{0, 80, 2},
	}
	for _, tt := range tests {
		if got := GutterWidth(tt.lines, tt.width); got != tt.want {
			t.Errorf("GutterWidth(%d, %d) = %d, want %d", tt.lines, tt.width, got, tt.want)
		}
	}
}

func TestDrawBufferText(t *testing.T) {
	ui := newTestTUI(t, 20, 5)
	ed := newTestEditor(t, ui, "", "a\tb", "世界")
	DrawBuffer(ui, ed, theme.Default())

	if got, want := rowText(ui, 0), "1 a   b"; got != want {
		t.Errorf("row 0 = %q, want %q", got, want)
	}
	r, _, _, _ := ui.GetScreen().GetContent(2, 1)
	r2, _, _, _ := ui.GetScreen().GetContent(4, 1)
	if r != '世' || r2 != '界' {
		t.Errorf("wide runes at 2,4 = %q %q", r, r2)
	}
	if got := rowText(ui, 2); got != "~" {
		t.Errorf("row 2 = %q, want tilde", got)
	}
}

func TestDrawBufferStyles(t *testing.T) {
	ui := newTestTUI(t, 30, 4)
	ed := newTestEditor(t, ui, "x.go", `return 5 // "c"`)
	th := theme.Default()
	DrawBuffer(ui, ed, th)

	styleAt := func(x int) tcell.Style {
		_, _, s, _ := ui.GetScreen().GetContent(x, 0)
		return s
	}
	// gutter is 2 wide
	if got := styleAt(2); got != th.GetStyle("keyword") {
		t.Errorf("keyword style = %v", got)
	}
	if got := styleAt(2 + 7); got != th.GetStyle("number") {
		t.Errorf("number style = %v", got)
	}
	if got := styleAt(2 + 9); got != th.GetStyle("comment") {
		t.Errorf("comment style = %v", got)
	}
	if got := styleAt(2 + 6); got != th.GetStyle("plain") {
		t.Errorf("plain style = %v", got)
	}
}

func TestDrawBufferHorizontalScroll(t *testing.T) {
	ui := newTestTUI(t, 8, 3)
	ed := newTestEditor(t, ui, "", "abcdefghijkl")
	ed.SetCursor(types.Position{Line: 0, Col: 10})
	DrawBuffer(ui, ed, theme.Default())

	if _, left := ed.GetViewport(); left != 5 {
		t.Fatalf("viewport left = %d, want 5", left)
	}
	if got, want := rowText(ui, 0), "1 fghijk"; got != want {
		t.Errorf("row 0 = %q, want %q", got, want)
	}
}

func TestDrawCursor(t *testing.T) {
	ui := newTestTUI(t, 20, 5)
	ed := newTestEditor(t, ui, "", "\tx")
	ed.SetCursor(types.Position{Line: 0, Col: 1})
	bar := statusbar.New(statusbar.DefaultConfig())

	DrawCursor(ui, ed, bar)
	ui.Show()
	x, y, visible := ui.GetScreen().(tcell.SimulationScreen).GetCursor()
	if !visible || x != 2+4 || y != 0 {
		t.Fatalf("cursor = (%d,%d,%v), want (6,0,true)", x, y, visible)
	}

	bar.SetPrompt("Save as: ", "ab")
	DrawCursor(ui, ed, bar)
	ui.Show()
	x, y, visible = ui.GetScreen().(tcell.SimulationScreen).GetCursor()
	if !visible || x != 11 || y != 4 {
		t.Fatalf("prompt cursor = (%d,%d,%v), want (11,4,true)", x, y, visible)
	}
}
