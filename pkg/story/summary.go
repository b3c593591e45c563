package story

// Summary counts diagnostics by severity.
type Summary struct {
	Errors      int
	Warnings    int
	Information int
	Hints       int
}

// Summarize tallies diags.
func Summarize(diags []Diagnostic) Summary {
	var sum Summary
	for _, diag := range diags {
		switch diag.Severity {
		case SeverityError:
			sum.Errors++
		case SeverityWarning:
			sum.Warnings++
		case SeverityInformation:
			sum.Information++
		case SeverityHint:
			sum.Hints++
		}
	}
	return sum
}

// Total returns the number of diagnostics counted.
func (s Summary) Total() int {
	return s.Errors + s.Warnings + s.Information + s.Hints
}

// Summary tallies the document's diagnostics.
func (d *Document) Summary() Summary {
	return Summarize(d.diagnostics)
}
