package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/stlap/pkg/syntax"
)

func kinds(nodes []*syntax.Node) []syntax.NodeKind {
	out := make([]syntax.NodeKind, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Kind)
	}
	return out
}

func TestParse_OneParagraph(t *testing.T) {
	t.Parallel()

	root, err := syntax.Parse("Hello World\nHave a good day\n")
	require.NoError(t, err)

	require.Equal(t, syntax.Story, root.Kind)
	assert.Nil(t, root.Parent)
	assert.Equal(t, []syntax.NodeKind{syntax.Paragraph, syntax.End}, kinds(root.ChildNodes()))

	paragraph := root.ChildNodes()[0]
	assert.Same(t, root, paragraph.Parent)

	sentences := paragraph.ChildNodes()
	require.Len(t, sentences, 2)
	assert.Equal(t, []syntax.Element{
		syntax.Token{Kind: syntax.Words, FullStart: syntax.Pos(0, 0), Start: syntax.Pos(0, 0), End: syntax.Pos(0, 10)},
		syntax.Token{Kind: syntax.Newline, FullStart: syntax.Pos(0, 11), Start: syntax.Pos(0, 11), End: syntax.Pos(0, 11)},
	}, sentences[0].Children)
	assert.Equal(t, syntax.Sentence, sentences[1].Kind)
	assert.Same(t, paragraph, sentences[1].Parent)

	end := root.ChildNodes()[1]
	assert.Empty(t, end.Children, "synthesized End has no tokens")
}

func TestParse_LineKinds(t *testing.T) {
	t.Parallel()

	root, err := syntax.Parse("//comment\n@flag a\ntext\n@bogus\n")
	require.NoError(t, err)

	paragraphs := syntax.FindByKind(root, syntax.Paragraph)
	require.Len(t, paragraphs, 1)
	assert.Equal(t,
		[]syntax.NodeKind{syntax.Comment, syntax.Command, syntax.Sentence, syntax.Command},
		kinds(paragraphs[0].ChildNodes()))
}

func TestParse_SeparatorsAndEnd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		source   string
		expected []syntax.NodeKind
	}{
		{
			name:     "empty source",
			source:   "",
			expected: []syntax.NodeKind{syntax.End},
		},
		{
			name:     "single blank line",
			source:   "\n",
			expected: []syntax.NodeKind{syntax.End},
		},
		{
			name:     "leading blank lines",
			source:   "\n\n\nA",
			expected: []syntax.NodeKind{syntax.ParagraphSeparator, syntax.Paragraph, syntax.End},
		},
		{
			name:     "trailing blank lines become End",
			source:   "A\n\n\n",
			expected: []syntax.NodeKind{syntax.Paragraph, syntax.End},
		},
		{
			name:   "three paragraphs",
			source: "A\n\nB\n\n\nC",
			expected: []syntax.NodeKind{
				syntax.Paragraph, syntax.ParagraphSeparator,
				syntax.Paragraph, syntax.ParagraphSeparator,
				syntax.Paragraph, syntax.End,
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			root, err := syntax.Parse(testCase.source)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, kinds(root.ChildNodes()))
		})
	}
}

func TestParse_SeparatorHoldsOnlyNewlines(t *testing.T) {
	t.Parallel()

	root, err := syntax.Parse("A\n  \n\t\nB")
	require.NoError(t, err)

	separators := syntax.FindByKind(root, syntax.ParagraphSeparator)
	require.Len(t, separators, 1)
	require.Len(t, separators[0].Children, 2)
	for _, child := range separators[0].Children {
		token, ok := child.(syntax.Token)
		require.True(t, ok)
		assert.Equal(t, syntax.Newline, token.Kind)
	}
}

func TestParse_FlattenedTreeEqualsTokenStream(t *testing.T) {
	t.Parallel()

	sources := []string{
		"",
		"//c\nA\nB\n\n\n\nC\n\nD\n//c2",
		"@flag a\n@ collect\n\n@collect a trailing\n",
		"  indented words\n\n\n",
	}

	for _, src := range sources {
		tokens, err := syntax.Tokenize(src)
		require.NoError(t, err)

		root, err := syntax.Parse(src)
		require.NoError(t, err)

		assert.Equal(t, tokens, root.Tokens(), "source %q", src)
		assert.Equal(t, syntax.End, root.LastChild().Kind, "source %q", src)
	}
}

func TestBuild_RejectsBrokenStream(t *testing.T) {
	t.Parallel()

	_, err := syntax.Build([]syntax.Token{
		{Kind: syntax.FlagArg},
		{Kind: syntax.Newline},
	})
	require.ErrorIs(t, err, syntax.ErrParse)
}

func TestNode_FullRange(t *testing.T) {
	t.Parallel()

	root, err := syntax.Parse("ab\ncd  ")
	require.NoError(t, err)

	paragraph := syntax.FindByKind(root, syntax.Paragraph)[0]
	r, ok := paragraph.FullRange()
	require.True(t, ok)
	assert.Equal(t, syntax.Range{Start: syntax.Pos(0, 0), End: syntax.Pos(1, 4)}, r)

	_, ok = root.LastChild().FullRange()
	assert.False(t, ok)
}

func TestNode_ParentReachesParagraph(t *testing.T) {
	t.Parallel()

	root, err := syntax.Parse("A\n@flag x\n")
	require.NoError(t, err)

	commands := syntax.FindByKind(root, syntax.Command)
	require.Len(t, commands, 1)

	paragraph := commands[0].Parent
	require.NotNil(t, paragraph)
	assert.Equal(t, syntax.Paragraph, paragraph.Kind)
	assert.Same(t, root, paragraph.Parent)
}
