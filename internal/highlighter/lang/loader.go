package lang

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/tedit/internal/logger"
)

// descriptorFile is the on-disk shape of a language descriptor. TOML
// files use single_line_comment; JSON files keep the singleLineComments
// key of the legacy format.
type descriptorFile struct {
	Name               string   `toml:"name" json:"name"`
	Extensions         []string `toml:"extensions" json:"extensions"`
	Keywords           []string `toml:"keywords" json:"keywords"`
	SingleLineComment  string   `toml:"single_line_comment" json:"-"`
	SingleLineComments string   `toml:"-" json:"singleLineComments"`
}

// LoadFile reads a language descriptor from a .toml or .json file.
func LoadFile(path string) (*Language, error) {
	var d descriptorFile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		md, err := toml.DecodeFile(path, &d)
		if err != nil {
			return nil, fmt.Errorf("failed to decode TOML language '%s': %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			logger.Warnf("Languages: unknown keys in '%s': %v", path, undecoded)
		}
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read language '%s': %w", path, err)
		}
		if err := json.Unmarshal(data, &d); err != nil {
			return nil, fmt.Errorf("failed to decode JSON language '%s': %w", path, err)
		}
		d.SingleLineComment = d.SingleLineComments
	default:
		return nil, fmt.Errorf("unsupported language file type '%s'", path)
	}

	if d.Name == "" {
		return nil, errors.New("language has no name")
	}
	if len(d.Extensions) == 0 {
		return nil, fmt.Errorf("language %s has no extensions", d.Name)
	}
	for i, ext := range d.Extensions {
		d.Extensions[i] = normalizeExt(ext)
	}
	return &Language{
		Name:              d.Name,
		Extensions:        d.Extensions,
		Keywords:          d.Keywords,
		SingleLineComment: d.SingleLineComment,
	}, nil
}
