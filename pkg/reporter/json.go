package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/stlap/pkg/story"
	"github.com/yaklabco/stlap/pkg/syntax"
)

// jsonVersion is the schema version of JSONOutput.
const jsonVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version     string           `json:"version"`
	Path        string           `json:"path"`
	Valid       bool             `json:"valid"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Markers     []string         `json:"markers"`
	Summary     JSONSummary      `json:"summary"`
}

// JSONDiagnostic represents a single diagnostic.
type JSONDiagnostic struct {
	Severity story.Severity `json:"severity"`
	Message  string         `json:"message"`
	Range    JSONRange      `json:"range"`
}

// JSONRange is a Language Server Protocol range: zero-based, with an
// exclusive end.
type JSONRange struct {
	Start JSONPosition `json:"start"`
	End   JSONPosition `json:"end"`
}

// JSONPosition is a zero-based line and character offset.
type JSONPosition struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// JSONSummary contains aggregate counts.
type JSONSummary struct {
	Total       int `json:"total"`
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
	Information int `json:"information"`
	Hints       int `json:"hints"`
}

// JSONReporter formats diagnostics as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, doc *story.Document) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(doc)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.Total, nil
}

func (r *JSONReporter) buildOutput(doc *story.Document) *JSONOutput {
	diags := doc.Diagnostics()
	sum := story.Summarize(diags)

	output := &JSONOutput{
		Version:     jsonVersion,
		Path:        r.opts.displayPath(),
		Valid:       doc.IsValid(),
		Diagnostics: make([]JSONDiagnostic, 0, len(diags)),
		Markers:     doc.Markers(),
		Summary: JSONSummary{
			Total:       sum.Total(),
			Errors:      sum.Errors,
			Warnings:    sum.Warnings,
			Information: sum.Information,
			Hints:       sum.Hints,
		},
	}
	if output.Markers == nil {
		output.Markers = []string{}
	}

	for _, diag := range diags {
		output.Diagnostics = append(output.Diagnostics, JSONDiagnostic{
			Severity: diag.Severity,
			Message:  diag.Message,
			Range:    lspRange(diag.Range),
		})
	}

	return output
}

func lspRange(r syntax.Range) JSONRange {
	return JSONRange{
		Start: JSONPosition{Line: r.Start.Line, Character: r.Start.Column},
		End:   JSONPosition{Line: r.End.Line, Character: r.End.Column + 1},
	}
}
