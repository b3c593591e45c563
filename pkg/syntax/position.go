package syntax

import "fmt"

// Position is a zero-based line and column in a source.
// Column counts runes, not bytes.
type Position struct {
	Line   int
	Column int
}

// Pos is shorthand for constructing a Position.
func Pos(line, column int) Position {
	return Position{Line: line, Column: column}
}

// Before reports whether p comes strictly before other in reading order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// String formats the position as line:column.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Range spans Start through End. End is inclusive: it is the position of
// the last rune that belongs to the span.
type Range struct {
	Start Position
	End   Position
}

// IsSingleLine returns true if start and end are on the same line.
func (r Range) IsSingleLine() bool {
	return r.Start.Line == r.End.Line
}

// Width returns the number of columns covered by a single-line range.
// Multi-line ranges report 0.
func (r Range) Width() int {
	if !r.IsSingleLine() {
		return 0
	}
	return r.End.Column - r.Start.Column + 1
}

// String formats the range as start-end.
func (r Range) String() string {
	return r.Start.String() + "-" + r.End.String()
}
