package syntax

// WalkFunc is called for each node during Walk.
// Return a non-nil error to stop the walk.
type WalkFunc func(n *Node) error

// TokenFunc is called for each token during WalkTokens.
type TokenFunc func(t Token) error

// Walk performs a pre-order traversal of the tree starting at root.
func Walk(root *Node, fn WalkFunc) error {
	if root == nil {
		return nil
	}
	if err := fn(root); err != nil {
		return err
	}
	for _, child := range root.Children {
		if node, ok := child.(*Node); ok {
			if err := Walk(node, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// WalkContextFunc is the function signature for WalkWithContext callbacks.
type WalkContextFunc func(n *Node) error

// WalkWithContext performs a traversal with enter and leave callbacks.
// Enter is called before visiting children, leave is called after.
// Either callback may be nil.
func WalkWithContext(root *Node, enter, leave WalkContextFunc) error {
	if root == nil {
		return nil
	}

	if enter != nil {
		if err := enter(root); err != nil {
			return err
		}
	}

	for _, child := range root.ChildNodes() {
		if err := WalkWithContext(child, enter, leave); err != nil {
			return err
		}
	}

	if leave != nil {
		if err := leave(root); err != nil {
			return err
		}
	}

	return nil
}

// WalkElements visits every node and token in document order: depth
// first, left to right. enter is called for nodes before their children.
func WalkElements(root *Node, enter WalkFunc, visit TokenFunc) error {
	if root == nil {
		return nil
	}
	if enter != nil {
		if err := enter(root); err != nil {
			return err
		}
	}
	for _, child := range root.Children {
		switch c := child.(type) {
		case *Node:
			if err := WalkElements(c, enter, visit); err != nil {
				return err
			}
		case Token:
			if visit != nil {
				if err := visit(c); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// WalkTokens visits every token under root in document order.
func WalkTokens(root *Node, fn TokenFunc) error {
	return WalkElements(root, nil, fn)
}

// FindByKind returns all nodes of the specified kind in document order.
func FindByKind(root *Node, kind NodeKind) []*Node {
	var result []*Node

	//nolint:errcheck // the callback never fails
	Walk(root, func(n *Node) error {
		if n.Kind == kind {
			result = append(result, n)
		}
		return nil
	})

	return result
}
