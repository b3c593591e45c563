package story

import (
	"strings"

	"github.com/yaklabco/stlap/pkg/syntax"
)

// DefaultSeparator is placed between rendered paragraphs.
const DefaultSeparator = "\n\n"

// RenderText reconstructs the output text using DefaultSeparator.
func (d *Document) RenderText() string {
	return d.RenderTextWith(DefaultSeparator)
}

// RenderTextWith reconstructs the output text. Comments and commands
// contribute nothing; paragraphs without text are dropped before joining,
// so runs of blank or comment-only paragraphs collapse to one separator.
// The result always ends with exactly one '\n'.
func (d *Document) RenderTextWith(separator string) string {
	return strings.Join(d.textUnits(d.root), separator) + "\n"
}

// Paragraphs returns the rendered text of each non-empty paragraph.
func (d *Document) Paragraphs() []string {
	return d.textUnits(d.root)
}

// textUnits maps an element to the strings it contributes.
func (d *Document) textUnits(elem syntax.Element) []string {
	switch e := elem.(type) {
	case syntax.Token:
		if e.Kind == syntax.Words {
			return []string{d.TextAt(e.Range())}
		}
		return nil

	case *syntax.Node:
		switch e.Kind {
		case syntax.Story:
			var units []string
			for _, child := range e.Children {
				units = append(units, d.textUnits(child)...)
			}
			return units

		case syntax.Paragraph:
			var builder strings.Builder
			for _, child := range e.Children {
				for _, unit := range d.textUnits(child) {
					builder.WriteString(unit)
				}
			}
			if builder.Len() == 0 {
				return nil
			}
			return []string{builder.String()}

		case syntax.Sentence:
			var units []string
			for _, child := range e.Children {
				units = append(units, d.textUnits(child)...)
			}
			return units

		case syntax.Command, syntax.Comment, syntax.ParagraphSeparator, syntax.End:
			return nil
		}
	}

	return nil
}
