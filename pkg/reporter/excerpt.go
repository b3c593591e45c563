package reporter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/stlap/pkg/story"
)

// DefaultLimit is the number of diagnostics RenderDiagnostics prints when
// no positive limit is given.
const DefaultLimit = 5

// Styler decorates the parts of a rendered diagnostic block. Implementations
// must not change the visible width of the text they are given.
type Styler interface {
	Header(sev story.Severity, text string) string
	Gutter(text string) string
	Source(text string) string
	Caret(text string) string
}

type plainStyler struct{}

func (plainStyler) Header(_ story.Severity, text string) string { return text }
func (plainStyler) Gutter(text string) string                  { return text }
func (plainStyler) Source(text string) string                  { return text }
func (plainStyler) Caret(text string) string                   { return text }

// RenderDiagnostic formats d as a plain caret excerpt of doc:
//
//	error: MESSAGE
//	 |
//	6| @flag toBeDuplicated
//	 |       ^^^^^^^^^^^^^^
//	 |
//
// Line numbers are zero-based like the positions they come from, and the
// gutter is as wide as the end line's number. Ranges spanning several lines
// render the header and a single gutter line only.
func RenderDiagnostic(d story.Diagnostic, doc *story.Document) (string, error) {
	return RenderDiagnosticWith(d, doc, Options{})
}

// RenderDiagnosticWith is RenderDiagnostic honoring the DisplayWidth,
// OneBasedLines and Styler fields of opts.
func RenderDiagnosticWith(d story.Diagnostic, doc *story.Document, opts Options) (string, error) {
	styler := opts.styler()

	base := 0
	if opts.OneBasedLines {
		base = 1
	}
	gutterWidth := len(strconv.Itoa(d.Range.End.Line + base))
	blank := styler.Gutter(strings.Repeat(" ", gutterWidth) + "|")

	var builder strings.Builder
	builder.WriteString(styler.Header(d.Severity, fmt.Sprintf("%s: %s", d.Severity, d.Message)))
	builder.WriteString("\n")
	builder.WriteString(blank)

	if !d.Range.IsSingleLine() {
		return builder.String(), nil
	}

	line, err := doc.LineAt(d.Range.Start.Line)
	if err != nil {
		return "", fmt.Errorf("render diagnostic %q: %w", d.Message, err)
	}

	pad, carets := caretSpan([]rune(line), d.Range.Start.Column, d.Range.End.Column, opts.DisplayWidth)

	number := fmt.Sprintf("%*d|", gutterWidth, d.Range.Start.Line+base)
	builder.WriteString("\n")
	builder.WriteString(styler.Gutter(number) + " " + styler.Source(line))
	builder.WriteString("\n")
	builder.WriteString(blank + " " + strings.Repeat(" ", pad) + styler.Caret(strings.Repeat("^", carets)))
	builder.WriteString("\n")
	builder.WriteString(blank)

	return builder.String(), nil
}

// RenderDiagnostics renders up to limit of doc's diagnostics as plain
// blocks separated by a blank line. A limit of zero or less means
// DefaultLimit.
func RenderDiagnostics(doc *story.Document, limit int) (string, error) {
	return RenderDiagnosticsWith(doc, limit, Options{})
}

// RenderDiagnosticsWith is RenderDiagnostics with rendering options.
func RenderDiagnosticsWith(doc *story.Document, limit int, opts Options) (string, error) {
	diags := doc.Diagnostics()
	if limit <= 0 {
		limit = DefaultLimit
	}
	if len(diags) > limit {
		diags = diags[:limit]
	}

	blocks := make([]string, 0, len(diags))
	for _, diag := range diags {
		block, err := RenderDiagnosticWith(diag, doc, opts)
		if err != nil {
			return "", err
		}
		blocks = append(blocks, block)
	}
	return strings.Join(blocks, "\n\n"), nil
}

// caretSpan returns the padding before the caret run and the run length
// for the inclusive column range [start, end]. Columns count runes unless
// displayWidth is set, in which case they count terminal cells. Columns
// past the end of the line count one cell each.
func caretSpan(line []rune, start, end int, displayWidth bool) (int, int) {
	count := max(end-start+1, 1)
	if !displayWidth {
		return start, count
	}

	return cells(line, 0, start), max(cells(line, start, start+count), 1)
}

func cells(line []rune, from, to int) int {
	width := 0
	for col := from; col < to; col++ {
		if col < len(line) {
			width += runewidth.RuneWidth(line[col])
			continue
		}
		width++
	}
	return width
}
