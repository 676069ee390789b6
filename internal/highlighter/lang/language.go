// Package lang holds language descriptors and the registry that selects
// one by file extension.
package lang

import (
	"sort"
	"strings"
	"unicode"

	sitter "github.com/smacker/go-tree-sitter"
)

// Language describes how to highlight one language.
type Language struct {
	Name              string
	Extensions        []string // with leading dot, e.g. ".go"
	Keywords          []string
	SingleLineComment string
}

// HasExtension reports whether ext (with or without the leading dot)
// belongs to the language. Matching ignores case.
func (l *Language) HasExtension(ext string) bool {
	ext = normalizeExt(ext)
	for _, e := range l.Extensions {
		if normalizeExt(e) == ext {
			return true
		}
	}
	return false
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// KeywordsFromGrammar returns the identifier-like anonymous symbols of a
// tree-sitter grammar, sorted. Those are the literal tokens the grammar
// matches by name, which is what a keyword list holds.
func KeywordsFromGrammar(g *sitter.Language) []string {
	if g == nil {
		return nil
	}
	seen := make(map[string]struct{})
	for i := uint32(0); i < g.SymbolCount(); i++ {
		sym := sitter.Symbol(i)
		if g.SymbolType(sym) != sitter.SymbolTypeAnonymous {
			continue
		}
		name := g.SymbolName(sym)
		if isWord(name) {
			seen[name] = struct{}{}
		}
	}
	keywords := make([]string, 0, len(seen))
	for k := range seen {
		keywords = append(keywords, k)
	}
	sort.Strings(keywords)
	return keywords
}

func isWord(s string) bool {
	if len(s) < 2 {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && unicode.IsDigit(r):
		default:
			return false
		}
	}
	return true
}
