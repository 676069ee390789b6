package types

// EditInfo describes the span of lines a single buffer mutation touched.
// Lines StartLine..OldEndLine (inclusive) before the edit were replaced by
// lines StartLine..NewEndLine after it. A zero-value EditInfo with
// NoChange set means the mutation was rejected.
type EditInfo struct {
	StartLine  int
	OldEndLine int
	NewEndLine int
	NoChange   bool
}

// LineDelta is the change in line count caused by the edit.
func (e EditInfo) LineDelta() int {
	return e.NewEndLine - e.OldEndLine
}

// SingleLine returns the EditInfo for an in-place change of one line.
func SingleLine(line int) EditInfo {
	return EditInfo{StartLine: line, OldEndLine: line, NewEndLine: line}
}

// Unchanged is returned by mutators that were a no-op.
var Unchanged = EditInfo{NoChange: true}
