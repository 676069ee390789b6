// Package highlighter classifies each character of a line for display.
package highlighter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bethropolis/tedit/internal/highlighter/lang"
)

// Class is the highlight classification of one character.
type Class uint8

const (
	Plain Class = iota
	Keyword
	Number
	String
	Comment
)

var classNames = [...]string{
	Plain:   "plain",
	Keyword: "keyword",
	Number:  "number",
	String:  "string",
	Comment: "comment",
}

// String returns the theme style name for c.
func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "plain"
}

// Classify returns one Class per rune of line. Rules run in order, each
// overwriting the previous ones where they overlap: keywords, ASCII
// digits, double-quoted strings, then the single-line comment. A nil
// language leaves every character Plain.
func Classify(line string, l *lang.Language) []Class {
	runes := []rune(line)
	classes := make([]Class, len(runes))
	if l == nil || len(runes) == 0 {
		return classes
	}

	for _, kw := range l.Keywords {
		markKeyword(runes, classes, []rune(kw))
	}

	for i, r := range runes {
		if r >= '0' && r <= '9' {
			classes[i] = Number
		}
	}

	inString := false
	for i, r := range runes {
		if r == '"' {
			classes[i] = String
			inString = !inString
		} else if inString {
			classes[i] = String
		}
	}

	if marker := l.SingleLineComment; marker != "" {
		if at := strings.Index(line, marker); at >= 0 {
			for i := utf8.RuneCountInString(line[:at]); i < len(classes); i++ {
				classes[i] = Comment
			}
		}
	}

	return classes
}

// markKeyword marks every occurrence of kw bounded by non-alphanumeric
// characters or the line edges.
func markKeyword(runes []rune, classes []Class, kw []rune) {
	n := len(kw)
	if n == 0 {
		return
	}
	for pos := 0; pos+n <= len(runes); pos++ {
		if !matchAt(runes, pos, kw) {
			continue
		}
		if pos > 0 && isAlnum(runes[pos-1]) {
			continue
		}
		if end := pos + n; end < len(runes) && isAlnum(runes[end]) {
			continue
		}
		for i := pos; i < pos+n; i++ {
			classes[i] = Keyword
		}
	}
}

func matchAt(runes []rune, pos int, kw []rune) bool {
	for i, r := range kw {
		if runes[pos+i] != r {
			return false
		}
	}
	return true
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
