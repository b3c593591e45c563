package story

import (
	"fmt"
	"strings"

	"github.com/yaklabco/stlap/pkg/syntax"
)

// Severity indicates the importance of a diagnostic. Values follow the
// Language Server Protocol numbering.
type Severity int

const (
	SeverityError       Severity = 1
	SeverityWarning     Severity = 2
	SeverityInformation Severity = 3
	SeverityHint        Severity = 4
)

// String returns the lower-case severity name.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInformation:
		return "information"
	case SeverityHint:
		return "hint"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// ParseSeverity parses a severity name.
func ParseSeverity(name string) (Severity, error) {
	switch strings.ToLower(name) {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "information", "info":
		return SeverityInformation, nil
	case "hint":
		return SeverityHint, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Diagnostic is a problem found in a document.
type Diagnostic struct {
	Range    syntax.Range
	Severity Severity
	Message  string
}

// IsError reports whether the diagnostic has Error severity.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}

// NewDiagnostic returns a diagnostic over r.
func NewDiagnostic(r syntax.Range, severity Severity, message string) Diagnostic {
	return Diagnostic{Range: r, Severity: severity, Message: message}
}

// NewDiagnosticAt returns an Error diagnostic anchored at a token's full
// range.
func NewDiagnosticAt(tok syntax.Token, message string) Diagnostic {
	return NewDiagnostic(tok.FullRange(), SeverityError, message)
}
