package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/stlap/internal/ui/pretty"
	"github.com/yaklabco/stlap/pkg/story"
)

// Compile-time check that the CLI styles can decorate excerpts.
var _ Styler = (*pretty.Styles)(nil)

// TextReporter formats diagnostics as caret excerpts for the terminal.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter. Without an explicit Styler
// the excerpts use the same styles as the summary line.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	styles := pretty.NewStyles(colorEnabled)
	if opts.Styler == nil {
		opts.Styler = styles
	}
	return &TextReporter{
		opts:   opts,
		styles: styles,
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. It returns the number of diagnostics in doc,
// including any beyond the display limit.
func (r *TextReporter) Report(_ context.Context, doc *story.Document) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	diags := doc.Diagnostics()
	if len(diags) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(story.Summary{}))
		}
		return 0, nil
	}

	if r.opts.Path != "" {
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(r.opts.displayPath(), len(diags)))
	}

	limit := r.opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	blocks, err := RenderDiagnosticsWith(doc, limit, r.opts)
	if err != nil {
		return 0, err
	}
	fmt.Fprintln(r.bw, blocks)

	if hidden := len(diags) - limit; hidden > 0 {
		fmt.Fprintln(r.bw)
		fmt.Fprintln(r.bw, r.styles.Dim.Render(fmt.Sprintf("... and %d more (raise --limit to see them)", hidden)))
	}

	if r.opts.ShowSummary {
		fmt.Fprintln(r.bw)
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(doc.Summary()))
	}

	return len(diags), nil
}
