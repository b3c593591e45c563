package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/stlap/pkg/syntax"
)

func tok(kind syntax.TokenKind, fullStart, start, end int) syntax.Token {
	return syntax.Token{
		Kind:      kind,
		FullStart: syntax.Pos(0, fullStart),
		Start:     syntax.Pos(0, start),
		End:       syntax.Pos(0, end),
	}
}

func withMessage(t syntax.Token, message string) syntax.Token {
	t.Message = message
	return t
}

func TestTokenizeBlankLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"half-width spaces", "  "},
		{"ideographic and ascii spaces", "　　  　　   "},
		{"tab", "\t"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			width := len([]rune(testCase.input))
			got, err := syntax.TokenizeBlankLine(testCase.input, 0)
			require.NoError(t, err)
			assert.Equal(t, []syntax.Token{tok(syntax.Newline, 0, width, width)}, got)
		})
	}
}

func TestTokenizeBlankLine_RejectsContent(t *testing.T) {
	t.Parallel()

	_, err := syntax.TokenizeBlankLine("text", 0)
	require.ErrorIs(t, err, syntax.ErrTokenize)
}

func TestTokenizeCommentLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []syntax.Token
	}{
		{
			name:  "empty comment",
			input: "//",
			expected: []syntax.Token{
				tok(syntax.CommentPrefix, 0, 0, 1),
				tok(syntax.Newline, 2, 2, 2),
			},
		},
		{
			name:  "basic comment",
			input: "//これはコメントです",
			expected: []syntax.Token{
				tok(syntax.CommentPrefix, 0, 0, 1),
				tok(syntax.CommentBody, 2, 2, 10),
				tok(syntax.Newline, 11, 11, 11),
			},
		},
		{
			name:  "whitespace only comment",
			input: "//　　　  ",
			expected: []syntax.Token{
				tok(syntax.CommentPrefix, 0, 0, 1),
				tok(syntax.Newline, 2, 7, 7),
			},
		},
		{
			name:  "comment followed by spaces",
			input: "//これはコメントです　　　",
			expected: []syntax.Token{
				tok(syntax.CommentPrefix, 0, 0, 1),
				tok(syntax.CommentBody, 2, 2, 10),
				tok(syntax.Newline, 11, 14, 14),
			},
		},
		{
			name:  "extra words are trivia of the newline",
			input: "//one two",
			expected: []syntax.Token{
				tok(syntax.CommentPrefix, 0, 0, 1),
				tok(syntax.CommentBody, 2, 2, 4),
				tok(syntax.Newline, 5, 9, 9),
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := syntax.TokenizeCommentLine(testCase.input, 0)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestTokenizeSentenceLine(t *testing.T) {
	t.Parallel()

	t.Run("japanese", func(t *testing.T) {
		t.Parallel()

		got, err := syntax.TokenizeSentenceLine("サンプル文章", 0)
		require.NoError(t, err)
		assert.Equal(t, []syntax.Token{
			tok(syntax.Words, 0, 0, 5),
			tok(syntax.Newline, 6, 6, 6),
		}, got)
	})

	t.Run("trailing space is newline trivia", func(t *testing.T) {
		t.Parallel()

		input := "A SAMPLE SENTENCE "
		got, err := syntax.TokenizeSentenceLine(input, 0)
		require.NoError(t, err)
		assert.Equal(t, []syntax.Token{
			tok(syntax.Words, 0, 0, len(input)-2),
			tok(syntax.Newline, len(input)-1, len(input), len(input)),
		}, got)
	})

	for _, input := range []string{"", "    ", "@command name", "// comment line"} {
		_, err := syntax.TokenizeSentenceLine(input, 0)
		assert.ErrorIs(t, err, syntax.ErrTokenize, "input %q", input)
	}
}

func TestTokenizeCommandLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []syntax.Token
	}{
		{
			name:  "simple flag",
			input: "@flag flagname",
			expected: []syntax.Token{
				tok(syntax.CommandPrefix, 0, 0, 0),
				tok(syntax.Flag, 1, 1, 4),
				tok(syntax.Space, 5, 5, 5),
				tok(syntax.FlagArg, 6, 6, 13),
				tok(syntax.Newline, 14, 14, 14),
			},
		},
		{
			name:  "simple collect",
			input: "@collect flagname",
			expected: []syntax.Token{
				tok(syntax.CommandPrefix, 0, 0, 0),
				tok(syntax.Collect, 1, 1, 7),
				tok(syntax.Space, 8, 8, 8),
				tok(syntax.CollectArg, 9, 9, 16),
				tok(syntax.Newline, 17, 17, 17),
			},
		},
		{
			name:  "flag with extra spaces",
			input: "@flag  flagname  　　",
			expected: []syntax.Token{
				tok(syntax.CommandPrefix, 0, 0, 0),
				tok(syntax.Flag, 1, 1, 4),
				tok(syntax.Space, 5, 6, 6),
				tok(syntax.FlagArg, 7, 7, 14),
				tok(syntax.Newline, 15, 19, 19),
			},
		},
		{
			name:  "missing command name",
			input: "@ collect flagname",
			expected: []syntax.Token{
				tok(syntax.CommandPrefix, 0, 0, 0),
				withMessage(tok(syntax.MissingToken, 0, 0, 0), syntax.MsgExpectedCommandName),
				tok(syntax.Space, 1, 1, 1),
				tok(syntax.CommandArg, 2, 2, 8),
				withMessage(tok(syntax.SkippedToken, 9, 10, 17), syntax.MsgUnexpectedContent),
				tok(syntax.Newline, 18, 18, 18),
			},
		},
		{
			name:  "unknown command name",
			input: "@jump target",
			expected: []syntax.Token{
				tok(syntax.CommandPrefix, 0, 0, 0),
				withMessage(tok(syntax.SkippedToken, 1, 1, 4), syntax.MsgUnexpectedCommand),
				tok(syntax.Space, 5, 5, 5),
				tok(syntax.CommandArg, 6, 6, 11),
				tok(syntax.Newline, 12, 12, 12),
			},
		},
		{
			name:  "collect with trailing content",
			input: "@collect flagname this is unused part ",
			expected: []syntax.Token{
				tok(syntax.CommandPrefix, 0, 0, 0),
				tok(syntax.Collect, 1, 1, 7),
				tok(syntax.Space, 8, 8, 8),
				tok(syntax.CollectArg, 9, 9, 16),
				withMessage(tok(syntax.SkippedToken, 17, 18, 36), syntax.MsgUnexpectedContent),
				tok(syntax.Newline, 37, 38, 38),
			},
		},
		{
			name:  "keyword without space and argument",
			input: "@flag",
			expected: []syntax.Token{
				tok(syntax.CommandPrefix, 0, 0, 0),
				tok(syntax.Flag, 1, 1, 4),
				withMessage(tok(syntax.MissingToken, 5, 5, 5), syntax.MsgExpectedSpace),
				withMessage(tok(syntax.MissingToken, 5, 5, 5), syntax.MsgExpectedArgument),
				tok(syntax.Newline, 5, 5, 5),
			},
		},
		{
			name:  "keyword without argument",
			input: "@collect ",
			expected: []syntax.Token{
				tok(syntax.CommandPrefix, 0, 0, 0),
				tok(syntax.Collect, 1, 1, 7),
				tok(syntax.Space, 8, 8, 8),
				withMessage(tok(syntax.MissingToken, 9, 9, 9), syntax.MsgExpectedArgument),
				tok(syntax.Newline, 9, 9, 9),
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := syntax.TokenizeCommandLine(testCase.input, 0)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestTokenizeCommandLine_CapturesText(t *testing.T) {
	t.Parallel()

	input := []rune("@flag flagname")
	got, err := syntax.TokenizeCommandLine(string(input), 0)
	require.NoError(t, err)

	texts := map[syntax.TokenKind]string{}
	for _, token := range got {
		if token.Kind == syntax.Newline {
			// The newline sits one past the last rune of the line.
			assert.Equal(t, len(input), token.Start.Column)
			continue
		}
		texts[token.Kind] = string(input[token.FullStart.Column : token.End.Column+1])
	}

	assert.Equal(t, "flag", texts[syntax.Flag])
	assert.Equal(t, "flagname", texts[syntax.FlagArg])
}

func TestTokenizeCommandLine_RejectsNonCommands(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "// comment like", "just like a sentence"} {
		_, err := syntax.TokenizeCommandLine(input, 0)
		assert.ErrorIs(t, err, syntax.ErrTokenize, "input %q", input)
	}
}

func TestTokenize_LinesAndTerminators(t *testing.T) {
	t.Parallel()

	t.Run("trailing terminator adds no line", func(t *testing.T) {
		t.Parallel()

		withNewline, err := syntax.Tokenize("hello\n")
		require.NoError(t, err)
		without, err := syntax.Tokenize("hello")
		require.NoError(t, err)

		assert.Equal(t, without, withNewline)
		assert.Len(t, without, 2)
	})

	t.Run("empty source is one blank line", func(t *testing.T) {
		t.Parallel()

		got, err := syntax.Tokenize("")
		require.NoError(t, err)
		assert.Equal(t, []syntax.Token{tok(syntax.Newline, 0, 0, 0)}, got)
	})

	t.Run("line numbers follow the source", func(t *testing.T) {
		t.Parallel()

		got, err := syntax.Tokenize("a\n\n//c\n@flag x")
		require.NoError(t, err)

		var lines []int
		for _, token := range got {
			if token.Kind == syntax.Newline {
				lines = append(lines, token.Start.Line)
			}
		}
		assert.Equal(t, []int{0, 1, 2, 3}, lines)
	})
}

func TestTokenize_PositionsNonDecreasing(t *testing.T) {
	t.Parallel()

	src := "//c\nHello world  \n@flag a b\n\n@ collect\n@collect a\nend"
	tokens, err := syntax.Tokenize(src)
	require.NoError(t, err)

	for i := 1; i < len(tokens); i++ {
		prev, cur := tokens[i-1], tokens[i]
		assert.False(t, cur.FullStart.Before(prev.FullStart),
			"token %d (%s at %s) starts before token %d (%s at %s)",
			i, cur.Kind, cur.FullStart, i-1, prev.Kind, prev.FullStart)
		assert.False(t, cur.Start.Before(cur.FullStart), "token %d start before full start", i)
	}
}
