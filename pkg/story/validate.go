package story

import (
	"fmt"

	"github.com/yaklabco/stlap/pkg/syntax"
)

// Validate walks the document tree in document order and returns fresh
// diagnostics. It is the same check Parse performs eagerly, and returns an
// identical result on every call.
func Validate(doc *Document) []Diagnostic {
	return validate(doc).diagnostics
}

type validation struct {
	diagnostics []Diagnostic
	markers     []string
}

// markerState tracks flag/collect pairing. A name moves from open to
// completed exactly once and may never be flagged again.
type markerState struct {
	completed map[string]struct{}
	open      map[string]syntax.Token
	order     []string // flagged names in document order
}

func validate(doc *Document) validation {
	state := &markerState{
		completed: make(map[string]struct{}),
		open:      make(map[string]syntax.Token),
	}

	var diags []Diagnostic

	//nolint:errcheck // the callback never fails
	syntax.WalkTokens(doc.root, func(tok syntax.Token) error {
		if diag, ok := state.visit(doc, tok); ok {
			diags = append(diags, diag)
		}
		return nil
	})

	for _, name := range state.order {
		tok, open := state.open[name]
		if !open {
			continue
		}
		diags = append(diags, NewDiagnosticAt(tok,
			fmt.Sprintf("%s is not collected: add @collect %s", name, name)))
	}

	return validation{diagnostics: diags, markers: state.order}
}

// visit applies one token to the state and returns a diagnostic if the
// token is an error.
func (s *markerState) visit(doc *Document, tok syntax.Token) (Diagnostic, bool) {
	switch tok.Kind {
	case syntax.MissingToken, syntax.SkippedToken:
		return NewDiagnosticAt(tok, tok.Message), true

	case syntax.FlagArg:
		name := doc.TextAt(tok.Range())
		_, isOpen := s.open[name]
		_, isDone := s.completed[name]
		if isOpen || isDone {
			return NewDiagnosticAt(tok,
				fmt.Sprintf("%s is already used: a marker may be flagged only once", name)), true
		}
		s.open[name] = tok
		s.order = append(s.order, name)

	case syntax.CollectArg:
		name := doc.TextAt(tok.Range())
		if _, isOpen := s.open[name]; isOpen {
			delete(s.open, name)
			s.completed[name] = struct{}{}
			return Diagnostic{}, false
		}
		if _, isDone := s.completed[name]; isDone {
			return NewDiagnosticAt(tok,
				fmt.Sprintf("%s is already completed: remove the extra @collect %s or the corresponding @flag %s",
					name, name, name)), true
		}
		return NewDiagnosticAt(tok,
			fmt.Sprintf("%s is not flagged: add @flag %s before this @collect", name, name)), true

	case syntax.Newline, syntax.Space, syntax.CommandPrefix, syntax.CommentPrefix,
		syntax.CommentBody, syntax.Flag, syntax.Collect, syntax.CommandArg, syntax.Words:
	}

	return Diagnostic{}, false
}
