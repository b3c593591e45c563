package pretty

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/stlap/pkg/story"
)

// render applies style only when color is enabled, so plain output keeps
// tabs and spacing byte for byte.
func (s *Styles) render(style lipgloss.Style, text string) string {
	if !s.enabled {
		return text
	}
	return style.Render(text)
}

// Header styles a diagnostic header line by severity.
func (s *Styles) Header(sev story.Severity, text string) string {
	return s.render(s.severityStyle(sev), text)
}

// Gutter styles the line-number gutter of an excerpt.
func (s *Styles) Gutter(text string) string {
	return s.render(s.LineNumber, text)
}

// Source styles the quoted source line.
func (s *Styles) Source(text string) string {
	return s.render(s.SourceLine, text)
}

// Caret styles the caret underline.
func (s *Styles) Caret(text string) string {
	return s.render(s.Underline, text)
}

// FormatSeverity returns a styled severity name.
func (s *Styles) FormatSeverity(sev story.Severity) string {
	return s.render(s.severityStyle(sev), sev.String())
}

func (s *Styles) severityStyle(sev story.Severity) lipgloss.Style {
	switch sev {
	case story.SeverityError:
		return s.Error
	case story.SeverityWarning:
		return s.Warning
	case story.SeverityInformation:
		return s.Info
	case story.SeverityHint:
		return s.Hint
	default:
		return s.Message
	}
}

// FormatFileHeader formats the header printed above a file's diagnostics.
func (s *Styles) FormatFileHeader(path string, issueCount int) string {
	header := s.render(s.FilePath, path)
	if issueCount > 0 {
		header += s.render(s.Dim, fmt.Sprintf(" (%d issues)", issueCount))
	}
	return header
}
