package syntax

// NodeKind classifies a vertex of the document tree.
type NodeKind uint8

// Node kinds.
const (
	Story NodeKind = iota
	ParagraphSeparator
	Paragraph
	Sentence
	Command
	Comment
	End
)

var nodeKindNames = [...]string{
	Story:              "Story",
	ParagraphSeparator: "ParagraphSeparator",
	Paragraph:          "Paragraph",
	Sentence:           "Sentence",
	Command:            "Command",
	Comment:            "Comment",
	End:                "End",
}

// String returns the kind name.
func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// Element is a child of a Node: either a *Node or a Token.
// The set is closed; type switches over Element must handle both.
type Element interface {
	element()
}

// Node is a vertex of the document tree. A node owns its children.
type Node struct {
	// Kind identifies what type of node this is.
	Kind NodeKind

	// Parent is a navigation-only back reference; nil for the root.
	Parent *Node

	// Children holds nested nodes and tokens in source order.
	Children []Element
}

func (*Node) element() {}

// NewNode creates a node of the given kind attached to parent.
func NewNode(kind NodeKind, parent *Node) *Node {
	return &Node{Kind: kind, Parent: parent}
}

// AppendChild appends a node or token. Appending a node reparents it.
func (n *Node) AppendChild(child Element) {
	if child == nil {
		return
	}
	if node, ok := child.(*Node); ok {
		node.Parent = n
	}
	n.Children = append(n.Children, child)
}

// ChildNodes returns the direct children that are nodes.
func (n *Node) ChildNodes() []*Node {
	var nodes []*Node
	for _, child := range n.Children {
		if node, ok := child.(*Node); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

// LastChild returns the last direct child node, or nil.
func (n *Node) LastChild() *Node {
	for i := len(n.Children) - 1; i >= 0; i-- {
		if node, ok := n.Children[i].(*Node); ok {
			return node
		}
	}
	return nil
}

// Tokens returns every token under n in document order.
func (n *Node) Tokens() []Token {
	var tokens []Token
	//nolint:errcheck // the callback never fails
	WalkTokens(n, func(t Token) error {
		tokens = append(tokens, t)
		return nil
	})
	return tokens
}

// FullRange spans the first token's trivia through the last token's end.
// The second result is false for nodes without tokens, such as a
// synthesized End.
func (n *Node) FullRange() (Range, bool) {
	tokens := n.Tokens()
	if len(tokens) == 0 {
		return Range{}, false
	}
	return Range{Start: tokens[0].FullStart, End: tokens[len(tokens)-1].End}, true
}
