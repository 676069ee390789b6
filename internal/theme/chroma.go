package theme

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

// classTokens maps highlight class names to the chroma token whose
// style entry they borrow.
var classTokens = map[string]chroma.TokenType{
	"plain":   chroma.Text,
	"keyword": chroma.Keyword,
	"number":  chroma.LiteralNumber,
	"string":  chroma.LiteralString,
	"comment": chroma.Comment,
}

// FromChroma builds a theme from the chroma style registered under name.
func FromChroma(name string) (*Theme, bool) {
	sty, ok := styles.Registry[strings.ToLower(name)]
	if !ok || sty == nil {
		return nil, false
	}

	bg := sty.Get(chroma.Background)
	base := tcell.StyleDefault.Foreground(chromaColor(bg.Colour)).Background(chromaColor(bg.Background))

	t := &Theme{
		Name:   sty.Name,
		IsDark: isDark(bg.Background),
		Styles: map[string]tcell.Style{"Default": base},
	}
	for class, token := range classTokens {
		t.Styles[class] = entryStyle(sty.Get(token), base)
	}
	t.fillUI()
	return t, true
}

func entryStyle(e chroma.StyleEntry, base tcell.Style) tcell.Style {
	style := base
	if e.Colour.IsSet() {
		style = style.Foreground(chromaColor(e.Colour))
	}
	if e.Background.IsSet() {
		style = style.Background(chromaColor(e.Background))
	}
	if e.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if e.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if e.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style
}

func chromaColor(c chroma.Colour) tcell.Color {
	if !c.IsSet() {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}

func isDark(c chroma.Colour) bool {
	if !c.IsSet() {
		return true
	}
	return c.Brightness() < 0.5
}
