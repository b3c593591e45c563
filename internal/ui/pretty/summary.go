package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/stlap/pkg/story"
)

// FormatSummaryOneLine formats diagnostic counts as a single line.
// Example: "3 issues (2 errors, 1 warning)".
func (s *Styles) FormatSummaryOneLine(sum story.Summary) string {
	total := sum.Total()
	if total == 0 {
		return s.render(s.Success, "No issues found") + "\n"
	}

	var parts []string
	if sum.Errors > 0 {
		parts = append(parts, s.render(s.Error, plural(sum.Errors, "error", "errors")))
	}
	if sum.Warnings > 0 {
		parts = append(parts, s.render(s.Warning, plural(sum.Warnings, "warning", "warnings")))
	}
	if sum.Information > 0 {
		parts = append(parts, s.render(s.Info, fmt.Sprintf("%d info", sum.Information)))
	}
	if sum.Hints > 0 {
		parts = append(parts, s.render(s.Hint, plural(sum.Hints, "hint", "hints")))
	}

	return fmt.Sprintf("%s (%s)\n", plural(total, "issue", "issues"), strings.Join(parts, ", "))
}

func plural(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
