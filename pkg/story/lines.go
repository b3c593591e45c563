package story

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/stlap/pkg/syntax"
)

// ErrLineOutOfRange is returned by LineAt for line numbers outside the source.
var ErrLineOutOfRange = errors.New("line number out of range")

// buildLineTable returns the rune offset at which every line starts, plus a
// sentinel one past the end of the last line's terminator.
func buildLineTable(source string) []int {
	lines := strings.Split(source, "\n")
	table := make([]int, len(lines)+1)
	for i, line := range lines {
		table[i+1] = table[i] + len([]rune(line)) + 1
	}
	return table
}

// LineCount returns the number of lines in the source. A trailing '\n'
// starts a final empty line.
func (d *Document) LineCount() int {
	return len(d.lineTable) - 1
}

// Offset converts a position to an absolute rune offset into the source.
// It returns false if the line is outside the source; columns are not
// checked.
func (d *Document) Offset(p syntax.Position) (int, bool) {
	if p.Line < 0 || p.Line >= len(d.lineTable) {
		return 0, false
	}
	return d.lineTable[p.Line] + p.Column, true
}

// TextAt returns the source text covered by r, End inclusive.
// Offsets are clamped to the source, so out-of-range requests shrink
// rather than fail.
func (d *Document) TextAt(r syntax.Range) string {
	start, ok := d.Offset(r.Start)
	if !ok {
		start = d.clampLine(r.Start.Line)
	}
	end, ok := d.Offset(r.End)
	if !ok {
		end = d.clampLine(r.End.Line)
	} else {
		end++
	}

	start = clamp(start, 0, len(d.runes))
	end = clamp(end, 0, len(d.runes))
	if start >= end {
		return ""
	}
	return string(d.runes[start:end])
}

// LineAt returns the content of a zero-based line without its terminator.
func (d *Document) LineAt(line int) (string, error) {
	if line < 0 || line >= d.LineCount() {
		return "", fmt.Errorf("%w: %d (document has %d lines)", ErrLineOutOfRange, line, d.LineCount())
	}

	start := d.lineTable[line]
	end := clamp(d.lineTable[line+1]-1, start, len(d.runes))
	return string(d.runes[start:end]), nil
}

func (d *Document) clampLine(line int) int {
	if line < 0 {
		return 0
	}
	return len(d.runes)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
