// internal/buffer/slice_buffer.go
package buffer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bethropolis/tedit/internal/logger"
	"github.com/bethropolis/tedit/internal/types"
	"github.com/bethropolis/tedit/internal/utils"
)

// DefaultTabWidth is the number of columns a leading tab counts for when
// computing auto-indent.
const DefaultTabWidth = 4

// SliceBuffer stores the document as a slice of lines.
type SliceBuffer struct {
	lines    []string
	filePath string
	modified bool
	tabWidth int
}

// NewSliceBuffer creates a buffer holding a single empty line.
func NewSliceBuffer() *SliceBuffer {
	return &SliceBuffer{
		lines:    []string{""},
		tabWidth: DefaultTabWidth,
	}
}

// NewSliceBufferFromLines creates a buffer holding a copy of lines.
func NewSliceBufferFromLines(lines []string) *SliceBuffer {
	sb := NewSliceBuffer()
	if len(lines) > 0 {
		sb.lines = append([]string(nil), lines...)
	}
	return sb
}

// SetTabWidth sets how many columns a tab counts for in Indent.
func (sb *SliceBuffer) SetTabWidth(width int) {
	if width < 1 {
		width = DefaultTabWidth
	}
	sb.tabWidth = width
}

// Load reads a file into the buffer, replacing existing content. At most
// one trailing carriage return is stripped from every line. A file that does
// not exist yields an empty buffer bound to filePath.
func (sb *SliceBuffer) Load(filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			sb.lines = []string{""}
			sb.filePath = filePath
			sb.modified = false
			return nil
		}
		return fmt.Errorf("failed to open file '%s': %w", filePath, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	newLines := []string{}
	for {
		line, err := reader.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			newLines = append(newLines, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("error reading file '%s': %w", filePath, err)
		}
	}
	if len(newLines) == 0 {
		newLines = append(newLines, "")
	}
	sb.lines = newLines
	sb.filePath = filePath
	sb.modified = false
	logger.Debugf("Buffer: loaded %d lines from '%s'", len(newLines), filePath)
	return nil
}

// Save writes every line as a newline-terminated record. An empty
// filePath writes to the bound path.
func (sb *SliceBuffer) Save(filePath string) error {
	path := sb.filePath
	if filePath != "" {
		path = filePath
	}
	if path == "" {
		return errors.New("no file path specified for saving")
	}

	if err := os.WriteFile(path, sb.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write file '%s': %w", path, err)
	}

	sb.filePath = path
	sb.modified = false
	return nil
}

// Bytes serializes the buffer with a trailing newline after every line.
func (sb *SliceBuffer) Bytes() []byte {
	var buf bytes.Buffer
	for _, line := range sb.lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Lines returns a copy of the document lines.
func (sb *SliceBuffer) Lines() []string {
	return append([]string(nil), sb.lines...)
}

func (sb *SliceBuffer) LineCount() int {
	return len(sb.lines)
}

// Line returns the line at index, or "" when index is out of range.
func (sb *SliceBuffer) Line(index int) string {
	if index < 0 || index >= len(sb.lines) {
		return ""
	}
	return sb.lines[index]
}

func (sb *SliceBuffer) FilePath() string        { return sb.filePath }
func (sb *SliceBuffer) SetFilePath(path string) { sb.filePath = path }
func (sb *SliceBuffer) IsModified() bool        { return sb.modified }
func (sb *SliceBuffer) SetModified(m bool)      { sb.modified = m }

func (sb *SliceBuffer) validRow(row int) bool {
	return row >= 0 && row < len(sb.lines)
}

// --- Buffer Modification Methods ---

// InsertText inserts text into line row at col, clamping col to the line.
func (sb *SliceBuffer) InsertText(row, col int, text string) types.EditInfo {
	if !sb.validRow(row) || text == "" {
		return types.Unchanged
	}
	left, right := utils.SplitAt(sb.lines[row], col)
	sb.lines[row] = left + text + right
	sb.modified = true
	return types.SingleLine(row)
}

// DeleteRange removes up to length runes starting at col on line row.
func (sb *SliceBuffer) DeleteRange(row, col, length int) types.EditInfo {
	if !sb.validRow(row) || length <= 0 {
		return types.Unchanged
	}
	left, rest := utils.SplitAt(sb.lines[row], col)
	_, right := utils.SplitAt(rest, length)
	if len(right) == len(rest) {
		return types.Unchanged
	}
	sb.lines[row] = left + right
	sb.modified = true
	return types.SingleLine(row)
}

// Indent returns the auto-indent for line row: its leading spaces and
// tabs re-expressed as spaces, with each tab counting tabWidth columns.
func (sb *SliceBuffer) Indent(row int) string {
	width := 0
	for _, r := range sb.Line(row) {
		switch r {
		case ' ':
			width++
		case '\t':
			width += sb.tabWidth
		default:
			return strings.Repeat(" ", width)
		}
	}
	return strings.Repeat(" ", width)
}

// SplitLine truncates line row at col and inserts a new line after it
// holding the auto-indent followed by the truncated suffix. It returns the
// indent that was used.
func (sb *SliceBuffer) SplitLine(row, col int) (string, types.EditInfo) {
	if !sb.validRow(row) {
		return "", types.Unchanged
	}
	indent := sb.Indent(row)
	return indent, sb.SplitLineIndent(row, col, indent)
}

// SplitLineIndent is SplitLine with an explicit indent for the new line.
func (sb *SliceBuffer) SplitLineIndent(row, col int, indent string) types.EditInfo {
	if !sb.validRow(row) {
		return types.Unchanged
	}
	prefix, suffix := utils.SplitAt(sb.lines[row], col)
	sb.lines[row] = prefix
	sb.insertAt(row+1, indent+suffix)
	sb.modified = true
	return types.EditInfo{StartLine: row, OldEndLine: row, NewEndLine: row + 1}
}

// JoinLine appends line row onto line row-1 and removes line row.
func (sb *SliceBuffer) JoinLine(row int) types.EditInfo {
	if row <= 0 || row >= len(sb.lines) {
		return types.Unchanged
	}
	sb.lines[row-1] += sb.lines[row]
	sb.lines = append(sb.lines[:row], sb.lines[row+1:]...)
	sb.modified = true
	return types.EditInfo{StartLine: row - 1, OldEndLine: row, NewEndLine: row - 1}
}

// InsertLine inserts text as a new line at index row. row may equal
// LineCount to append.
func (sb *SliceBuffer) InsertLine(row int, text string) types.EditInfo {
	if row < 0 || row > len(sb.lines) {
		return types.Unchanged
	}
	sb.insertAt(row, text)
	sb.modified = true
	if row == 0 {
		return types.EditInfo{StartLine: 0, OldEndLine: 0, NewEndLine: 1}
	}
	return types.EditInfo{StartLine: row - 1, OldEndLine: row - 1, NewEndLine: row}
}

// RemoveLine deletes line row. The last remaining line is never removed.
func (sb *SliceBuffer) RemoveLine(row int) types.EditInfo {
	if !sb.validRow(row) || len(sb.lines) == 1 {
		return types.Unchanged
	}
	sb.lines = append(sb.lines[:row], sb.lines[row+1:]...)
	sb.modified = true
	if row == 0 {
		return types.EditInfo{StartLine: 0, OldEndLine: 1, NewEndLine: 0}
	}
	return types.EditInfo{StartLine: row - 1, OldEndLine: row, NewEndLine: row - 1}
}

func (sb *SliceBuffer) insertAt(row int, text string) {
	sb.lines = append(sb.lines, "")
	copy(sb.lines[row+1:], sb.lines[row:])
	sb.lines[row] = text
}

// Ensure SliceBuffer satisfies the Buffer interface
var _ Buffer = (*SliceBuffer)(nil)
