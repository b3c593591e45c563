package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for output (typically os.Stderr).
	Writer io.Writer

	// Format specifies the output format.
	Format Format

	// Path names the checked input in reports. Empty means standard input.
	Path string

	// Color controls colorized output.
	// Values: "auto" (default), "always", "never"
	Color string

	// Limit caps the number of diagnostic blocks in text output.
	// Zero or less means DefaultLimit.
	Limit int

	// DisplayWidth aligns carets by terminal cell width instead of rune
	// count, so wide characters line up.
	DisplayWidth bool

	// OneBasedLines numbers excerpt lines from one, as editors do, instead
	// of from zero.
	OneBasedLines bool

	// Styler decorates text output. Nil means plain text, or styles chosen
	// from Color when the reporter is built through New.
	Styler Styler

	// ShowSummary appends a one-line count of errors and warnings.
	ShowSummary bool

	// Compact uses minified output where applicable.
	Compact bool
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:       os.Stderr,
		Format:       FormatText,
		Color:        "auto",
		Limit:        DefaultLimit,
		DisplayWidth: true,
		ShowSummary:  true,
	}
}

func (o Options) styler() Styler {
	if o.Styler == nil {
		return plainStyler{}
	}
	return o.Styler
}

func (o Options) displayPath() string {
	if o.Path == "" || o.Path == "-" {
		return "<stdin>"
	}
	return o.Path
}
