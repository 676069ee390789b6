// internal/buffer/buffer.go
package buffer

import "github.com/bethropolis/tedit/internal/types"

// Buffer defines the line store operations the editor core builds on.
// Columns are rune indexes. Mutators never record history and never move
// the cursor; they report the touched line span through EditInfo.
type Buffer interface {
	Load(filePath string) error
	Save(filePath string) error
	Lines() []string
	Line(index int) string
	LineCount() int
	Bytes() []byte
	FilePath() string
	SetFilePath(path string)
	IsModified() bool
	SetModified(modified bool)

	InsertText(row, col int, text string) types.EditInfo
	DeleteRange(row, col, length int) types.EditInfo
	SplitLine(row, col int) (string, types.EditInfo)
	SplitLineIndent(row, col int, indent string) types.EditInfo
	JoinLine(row int) types.EditInfo
	InsertLine(row int, text string) types.EditInfo
	RemoveLine(row int) types.EditInfo
	Indent(row int) string
}
