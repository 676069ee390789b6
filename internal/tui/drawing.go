// internal/tui/drawing.go
package tui

import (
	"fmt"

	"github.com/bethropolis/tedit/internal/config"
	"github.com/bethropolis/tedit/internal/core"
	"github.com/bethropolis/tedit/internal/core/cursor"
	hl "github.com/bethropolis/tedit/internal/highlighter"
	"github.com/bethropolis/tedit/internal/logger"
	"github.com/bethropolis/tedit/internal/statusbar"
	"github.com/bethropolis/tedit/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

const lineNumberPadding = 1

// GutterWidth returns the width of the line number column for a document
// of lineCount lines, or 0 if the screen is too narrow for one.
func GutterWidth(lineCount, screenWidth int) int {
	digits := len(fmt.Sprint(max(lineCount, 1)))
	w := digits + lineNumberPadding
	if w >= screenWidth {
		return 0
	}
	return w
}

// TextArea returns the size of the region available for document text.
func TextArea(editor *core.Editor, width, height int) (int, int) {
	gutter := GutterWidth(editor.GetBuffer().LineCount(), width)
	return width - gutter, max(height-config.StatusBarHeight, 0)
}

// DrawBuffer draws the visible portion of the document with the theme's
// classification styles.
func DrawBuffer(tuiManager *TUI, editor *core.Editor, activeTheme *theme.Theme) {
	if activeTheme == nil {
		logger.Warnf("DrawBuffer called with nil theme, using built-in default.")
		activeTheme = theme.Default()
	}
	screen := tuiManager.screen

	defaultStyle := activeTheme.GetStyle("Default")
	lineNumberStyle := activeTheme.GetStyle("LineNumber")
	tildeStyle := activeTheme.GetStyle("Tilde")
	classStyles := make([]tcell.Style, hl.Comment+1)
	for c := hl.Plain; c <= hl.Comment; c++ {
		classStyles[c] = activeTheme.GetStyle(c.String())
	}

	width, height := tuiManager.Size()
	viewHeight := height - config.StatusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	buf := editor.GetBuffer()
	lineCount := buf.LineCount()
	gutterWidth := GutterWidth(lineCount, width)
	digits := gutterWidth - lineNumberPadding
	textAreaWidth := width - gutterWidth
	viewY, viewX := editor.GetViewport()
	tabWidth := editor.TabWidth()
	cursorLine := editor.GetCursor().Line

	for screenY := 0; screenY < viewHeight; screenY++ {
		row := screenY + viewY

		for x := 0; x < width; x++ {
			screen.SetContent(x, screenY, ' ', nil, defaultStyle)
		}

		if row >= lineCount {
			screen.SetContent(0, screenY, '~', nil, tildeStyle)
			continue
		}

		if gutterWidth > 0 {
			style := lineNumberStyle
			if row == cursorLine {
				style = style.Bold(true)
			}
			for i, r := range fmt.Sprintf("%*d", digits, row+1) {
				screen.SetContent(i, screenY, r, nil, style)
			}
		}

		drawLine(screen, buf.Line(row), editor.HighlightLine(row), classStyles,
			gutterWidth, screenY, viewX, textAreaWidth, tabWidth)
	}
}

// drawLine draws one document line starting at visual column viewX.
// classes holds one classification per rune of line.
func drawLine(screen tcell.Screen, line string, classes []hl.Class, classStyles []tcell.Style,
	left, y, viewX, areaWidth, tabWidth int) {
	if tabWidth < 1 {
		tabWidth = 1
	}
	visual, runeIndex := 0, 0
	state := -1
	rest := line
	for len(rest) > 0 && visual < viewX+areaWidth {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		runes := []rune(cluster)

		style := classStyles[hl.Plain]
		if runeIndex < len(classes) {
			style = classStyles[classes[runeIndex]]
		}

		if cluster == "\t" {
			width = tabWidth - visual%tabWidth
			for i := 0; i < width; i++ {
				if col := visual + i; col >= viewX && col < viewX+areaWidth {
					screen.SetContent(left+col-viewX, y, ' ', nil, style)
				}
			}
		} else if visual >= viewX && visual+width <= viewX+areaWidth {
			screen.SetContent(left+visual-viewX, y, runes[0], runes[1:], style)
		}

		visual += width
		runeIndex += len(runes)
	}
}

// DrawCursor places the terminal cursor: on the prompt when one is open,
// otherwise at the document cursor.
func DrawCursor(tuiManager *TUI, editor *core.Editor, bar *statusbar.StatusBar) {
	screen := tuiManager.screen
	width, height := tuiManager.Size()

	if x, ok := bar.PromptCursor(); ok {
		if x < width && height > 0 {
			screen.ShowCursor(x, height-1)
		} else {
			screen.HideCursor()
		}
		return
	}

	pos := editor.GetCursor()
	viewY, viewX := editor.GetViewport()
	gutterWidth := GutterWidth(editor.GetBuffer().LineCount(), width)
	visual := cursor.GetVisualCol(editor.GetBuffer().Line(pos.Line), pos.Col, editor.TabWidth())

	screenX := visual - viewX + gutterWidth
	screenY := pos.Line - viewY
	viewHeight := height - config.StatusBarHeight
	if screenX < gutterWidth || screenX >= width || screenY < 0 || screenY >= viewHeight {
		screen.HideCursor()
		return
	}
	screen.ShowCursor(screenX, screenY)
}
