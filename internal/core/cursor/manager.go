package cursor

import (
	"github.com/bethropolis/tedit/internal/buffer"
	"github.com/bethropolis/tedit/internal/types"
	"github.com/bethropolis/tedit/internal/utils"
	"github.com/rivo/uniseg"
)

// Editor is the interface the cursor manager expects from the editor.
type Editor interface {
	GetBuffer() buffer.Buffer
	ScrollOff() int
	TabWidth() int
}

// Manager handles cursor positioning and viewport management.
// Columns are rune indexes into the line.
type Manager struct {
	editor       Editor
	position     types.Position
	viewportTop  int
	viewportLeft int // first visible visual column
	viewWidth    int
	viewHeight   int
}

// NewManager creates a new cursor manager
func NewManager(editor Editor) *Manager {
	return &Manager{editor: editor}
}

// SetViewSize updates the view dimensions
func (m *Manager) SetViewSize(width, height int) {
	m.viewWidth = width
	m.viewHeight = height
	m.ScrollToCursor()
}

// GetViewport returns the top line and left visual column of the view.
func (m *Manager) GetViewport() (top, left int) {
	return m.viewportTop, m.viewportLeft
}

// ViewSize returns the width and height last set with SetViewSize.
func (m *Manager) ViewSize() (int, int) {
	return m.viewWidth, m.viewHeight
}

func (m *Manager) GetPosition() types.Position {
	return m.position
}

// SetPosition moves the cursor, clamping the line to the buffer and the
// column to the target line's length.
func (m *Manager) SetPosition(pos types.Position) {
	m.position = m.Clamp(pos)
	m.ScrollToCursor()
}

// Clamp returns pos limited to valid buffer bounds.
func (m *Manager) Clamp(pos types.Position) types.Position {
	buf := m.editor.GetBuffer()
	pos.Line = utils.Clamp(pos.Line, 0, buf.LineCount()-1)
	pos.Col = utils.Clamp(pos.Col, 0, utils.RuneLen(buf.Line(pos.Line)))
	return pos
}

// MoveUp keeps the column, clamped to the previous line.
func (m *Manager) MoveUp() {
	m.SetPosition(types.Position{Line: m.position.Line - 1, Col: m.position.Col})
}

// MoveDown keeps the column, clamped to the next line.
func (m *Manager) MoveDown() {
	m.SetPosition(types.Position{Line: m.position.Line + 1, Col: m.position.Col})
}

// MoveLeft wraps to the end of the previous line at column 0.
func (m *Manager) MoveLeft() {
	p := m.position
	switch {
	case p.Col > 0:
		p.Col--
	case p.Line > 0:
		p.Line--
		p.Col = utils.RuneLen(m.editor.GetBuffer().Line(p.Line))
	}
	m.SetPosition(p)
}

// MoveRight wraps to the start of the next line at end of line.
func (m *Manager) MoveRight() {
	buf := m.editor.GetBuffer()
	p := m.position
	switch {
	case p.Col < utils.RuneLen(buf.Line(p.Line)):
		p.Col++
	case p.Line < buf.LineCount()-1:
		p.Line++
		p.Col = 0
	}
	m.SetPosition(p)
}

func (m *Manager) MoveToLineStart() {
	m.SetPosition(types.Position{Line: m.position.Line, Col: 0})
}

func (m *Manager) MoveToLineEnd() {
	line := m.editor.GetBuffer().Line(m.position.Line)
	m.SetPosition(types.Position{Line: m.position.Line, Col: utils.RuneLen(line)})
}

// PageMove moves the cursor by deltaPages view heights.
func (m *Manager) PageMove(deltaPages int) {
	if m.viewHeight <= 0 {
		return
	}
	m.SetPosition(types.Position{Line: m.position.Line + deltaPages*m.viewHeight, Col: m.position.Col})
}

// ScrollToCursor adjusts the viewport so the cursor stays visible with
// ScrollOff lines of context above and below.
func (m *Manager) ScrollToCursor() {
	if m.viewHeight <= 0 {
		return
	}

	scrollOff := m.editor.ScrollOff()
	if scrollOff*2 >= m.viewHeight {
		scrollOff = (m.viewHeight - 1) / 2
	}

	if m.position.Line < m.viewportTop+scrollOff {
		m.viewportTop = m.position.Line - scrollOff
	} else if m.position.Line >= m.viewportTop+m.viewHeight-scrollOff {
		m.viewportTop = m.position.Line - m.viewHeight + scrollOff + 1
	}
	if m.viewportTop < 0 {
		m.viewportTop = 0
	}

	if m.viewWidth <= 0 {
		return
	}
	line := m.editor.GetBuffer().Line(m.position.Line)
	visual := GetVisualCol(line, m.position.Col, m.editor.TabWidth())
	if visual < m.viewportLeft {
		m.viewportLeft = visual
	} else if visual >= m.viewportLeft+m.viewWidth {
		m.viewportLeft = visual - m.viewWidth + 1
	}
}

// GetVisualCol translates a rune column to a screen column, expanding
// tabs to the next tab stop and measuring wide graphemes.
func GetVisualCol(line string, col int, tabWidth int) int {
	if tabWidth < 1 {
		tabWidth = 1
	}
	visual, runes := 0, 0
	state := -1
	rest := line
	for len(rest) > 0 && runes < col {
		var cluster string
		var width int
		cluster, rest, width, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" {
			visual = (visual/tabWidth + 1) * tabWidth
		} else {
			visual += width
		}
		runes += utils.RuneLen(cluster)
	}
	return visual
}
