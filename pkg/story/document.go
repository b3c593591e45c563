// Package story builds validated stlap documents and renders their text.
package story

import (
	"slices"
	"strings"

	"github.com/yaklabco/stlap/pkg/syntax"
)

// Document is an immutable, parsed stlap source. Diagnostics and marker
// bookkeeping are computed once, when the document is built.
type Document struct {
	root        *syntax.Node
	source      string
	runes       []rune
	lineTable   []int
	diagnostics []Diagnostic
	markers     []string
}

// Parse builds a Document from source. CRLF line endings are normalised to
// LF first; the document's Source is the normalised text.
//
// Malformed content never fails: it is reported through Diagnostics. An
// error is returned only when the tokenizer or tree builder hit a contract
// violation (syntax.ErrTokenize, syntax.ErrParse).
func Parse(source string) (*Document, error) {
	source = strings.ReplaceAll(source, "\r\n", "\n")

	root, err := syntax.Parse(source)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		root:      root,
		source:    source,
		runes:     []rune(source),
		lineTable: buildLineTable(source),
	}

	result := validate(doc)
	doc.diagnostics = result.diagnostics
	doc.markers = result.markers

	return doc, nil
}

// Root returns the Story node. Callers must not modify the tree.
func (d *Document) Root() *syntax.Node {
	return d.root
}

// Source returns the (normalised) source text.
func (d *Document) Source() string {
	return d.source
}

// Diagnostics returns the diagnostics in document order, with unclosed
// markers last.
func (d *Document) Diagnostics() []Diagnostic {
	return slices.Clone(d.diagnostics)
}

// Markers returns every marker name that was flagged, in the order it was
// first flagged.
func (d *Document) Markers() []string {
	return slices.Clone(d.markers)
}

// ErrorCount returns the number of Error-severity diagnostics.
func (d *Document) ErrorCount() int {
	count := 0
	for _, diag := range d.diagnostics {
		if diag.IsError() {
			count++
		}
	}
	return count
}

// IsValid reports whether the document has no Error-severity diagnostics.
func (d *Document) IsValid() bool {
	return d.ErrorCount() == 0
}
