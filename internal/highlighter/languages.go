// internal/highlighter/languages.go
package highlighter

import (
	"github.com/bethropolis/tedit/internal/highlighter/lang"
	"github.com/bethropolis/tedit/internal/logger"
	sitter "github.com/smacker/go-tree-sitter"

	gosrc "github.com/smacker/go-tree-sitter/golang"
	jssrc "github.com/smacker/go-tree-sitter/javascript"
	pythonsrc "github.com/smacker/go-tree-sitter/python"
	rustsrc "github.com/smacker/go-tree-sitter/rust"
)

type builtin struct {
	name       string
	grammar    func() *sitter.Language
	extensions []string
	comment    string
}

var builtins = []builtin{
	{"Go", gosrc.GetLanguage, []string{".go"}, "//"},
	{"Python", pythonsrc.GetLanguage, []string{".py", ".pyw"}, "#"},
	{"JavaScript", jssrc.GetLanguage, []string{".js", ".mjs", ".cjs"}, "//"},
	{"Rust", rustsrc.GetLanguage, []string{".rs"}, "//"},
}

// RegisterLanguages adds the built-in languages to r. Their keyword sets
// come from the tree-sitter grammars.
func RegisterLanguages(r *lang.Registry) {
	for _, b := range builtins {
		r.Register(&lang.Language{
			Name:              b.name,
			Extensions:        b.extensions,
			Keywords:          lang.KeywordsFromGrammar(b.grammar()),
			SingleLineComment: b.comment,
		})
	}
	logger.Debugf("Registered %d built-in languages.", len(builtins))
}

// NewRegistry returns a registry holding the built-in languages plus the
// descriptor files found in dir (skipped when dir is empty).
func NewRegistry(dir string) *lang.Registry {
	r := lang.NewRegistry()
	RegisterLanguages(r)
	if dir != "" {
		r.LoadDir(dir)
	}
	for _, l := range r.All() {
		logger.DebugTagf("highlight", "Language %s: %v", l.Name, l.Extensions)
	}
	return r
}
