// Package reporter renders stlap diagnostics for people and tools.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/stlap/pkg/story"
)

// Reporter formats and writes the diagnostics of a document.
type Reporter interface {
	// Report writes formatted output for doc.
	// It returns the number of diagnostics reported and any write errors.
	Report(ctx context.Context, doc *story.Document) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
