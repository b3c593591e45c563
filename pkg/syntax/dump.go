package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented outline of the tree to w, one line per node and
// token. It is meant for debugging and the CLI's --tree output.
func Dump(w io.Writer, root *Node) error {
	depth := 0

	return WalkWithContext(root, func(n *Node) error {
		if _, err := fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), n.Kind); err != nil {
			return err
		}
		depth++
		for _, child := range n.Children {
			tok, ok := child.(Token)
			if !ok {
				continue
			}
			if err := dumpToken(w, depth, tok); err != nil {
				return err
			}
		}
		return nil
	}, func(*Node) error {
		depth--
		return nil
	})
}

func dumpToken(w io.Writer, depth int, tok Token) error {
	line := fmt.Sprintf("%s%s %s..%s", strings.Repeat("  ", depth), tok.Kind, tok.FullStart, tok.End)
	if tok.Message != "" {
		line += fmt.Sprintf(" %q", tok.Message)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
