package reporter_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/stlap/pkg/reporter"
	"github.com/yaklabco/stlap/pkg/story"
	"github.com/yaklabco/stlap/pkg/syntax"
)

const duplicatedFlagStory = `//登場人物
昔々あるところに
@flag toBeDuplicated
おじいさんとおばあさんが住んでいました。

@collect toBeDuplicated
ある日、おじいさんは山へ

@flag toBeDuplicated
おばあさんは川へ洗濯に行きました。
`

func mustParse(t *testing.T, src string) *story.Document {
	t.Helper()

	doc, err := story.Parse(src)
	require.NoError(t, err)
	return doc
}

func TestRenderDiagnostic_DuplicatedFlag(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, duplicatedFlagStory)
	diags := doc.Diagnostics()
	require.Len(t, diags, 1)

	got, err := reporter.RenderDiagnostic(diags[0], doc)
	require.NoError(t, err)

	expected := "error: toBeDuplicated is already used: a marker may be flagged only once\n" +
		" |\n" +
		"8| @flag toBeDuplicated\n" +
		" |       ^^^^^^^^^^^^^^\n" +
		" |"
	assert.Equal(t, expected, got)
}

func TestRenderDiagnostic_GutterWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		before int
		opts   reporter.Options
		number string
		gutter string
	}{
		{name: "zero-based single digit", before: 9, number: "9| @collect late", gutter: " |"},
		{name: "zero-based two digits", before: 11, number: "11| @collect late", gutter: "  |"},
		{name: "one-based crosses to two digits", before: 9, opts: reporter.Options{OneBasedLines: true}, number: "10| @collect late", gutter: "  |"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc := mustParse(t, strings.Repeat("line\n", tt.before)+"@collect late\n")
			diags := doc.Diagnostics()
			require.Len(t, diags, 1)

			got, err := reporter.RenderDiagnosticWith(diags[0], doc, tt.opts)
			require.NoError(t, err)

			lines := strings.Split(got, "\n")
			require.Len(t, lines, 5)
			assert.Equal(t, tt.gutter, lines[1])
			assert.Equal(t, tt.number, lines[2])
			assert.Equal(t, tt.gutter+"          ^^^^", lines[3])
			assert.Equal(t, tt.gutter, lines[4])
		})
	}
}

func TestRenderDiagnostic_CaretMatchesRange(t *testing.T) {
	t.Parallel()

	src := "@flag\n@flg typo\n@flag a b\n@collect a\n@collect zz\n@flag   spaced   trailing  \n"
	doc := mustParse(t, src)
	diags := doc.Diagnostics()
	require.NotEmpty(t, diags)

	for _, diag := range diags {
		if !diag.Range.IsSingleLine() {
			continue
		}

		got, err := reporter.RenderDiagnostic(diag, doc)
		require.NoError(t, err)

		lines := strings.Split(got, "\n")
		require.Len(t, lines, 5, diag.Message)

		caretLine := strings.TrimPrefix(lines[3], " | ")
		underline := strings.TrimLeft(caretLine, " ")
		pad := len(caretLine) - len(underline)

		assert.Equal(t, diag.Range.Start.Column, pad, diag.Message)
		assert.Equal(t, strings.Repeat("^", diag.Range.End.Column-diag.Range.Start.Column+1), underline, diag.Message)
	}
}

func TestRenderDiagnostic_MultiLine(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "first\nsecond\n")
	diag := story.NewDiagnostic(syntax.Range{Start: syntax.Pos(0, 2), End: syntax.Pos(1, 3)}, story.SeverityWarning, "spans lines")

	got, err := reporter.RenderDiagnostic(diag, doc)
	require.NoError(t, err)
	assert.Equal(t, "warning: spans lines\n |", got)
}

func TestRenderDiagnostic_LineOutOfRange(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "only line")
	diag := story.NewDiagnostic(syntax.Range{Start: syntax.Pos(7, 0), End: syntax.Pos(7, 1)}, story.SeverityError, "stale")

	_, err := reporter.RenderDiagnostic(diag, doc)
	require.ErrorIs(t, err, story.ErrLineOutOfRange)
}

func TestRenderDiagnostic_ZeroWidthCaret(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "x")
	diag := story.NewDiagnostic(syntax.Range{Start: syntax.Pos(0, 0), End: syntax.Pos(0, 0)}, story.SeverityError, "here")

	got, err := reporter.RenderDiagnostic(diag, doc)
	require.NoError(t, err)
	assert.Contains(t, got, "\n | ^\n")
}

func TestRenderDiagnosticWith_DisplayWidth(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "@flag 名前 余分\n@collect 名前")
	diags := doc.Diagnostics()
	require.Len(t, diags, 1)
	require.Equal(t, syntax.MsgUnexpectedContent, diags[0].Message)

	plain, err := reporter.RenderDiagnostic(diags[0], doc)
	require.NoError(t, err)
	assert.Contains(t, plain, "\n |         ^^^\n")

	wide, err := reporter.RenderDiagnosticWith(diags[0], doc, reporter.Options{DisplayWidth: true})
	require.NoError(t, err)
	assert.Contains(t, wide, "\n |           ^^^^^\n")
}

type bracketStyler struct{}

func (bracketStyler) Header(sev story.Severity, text string) string { return "<" + sev.String() + ">" + text }
func (bracketStyler) Gutter(text string) string                    { return "[" + text + "]" }
func (bracketStyler) Source(text string) string                    { return "{" + text + "}" }
func (bracketStyler) Caret(text string) string                     { return "(" + text + ")" }

func TestRenderDiagnosticWith_Styler(t *testing.T) {
	t.Parallel()

	doc := mustParse(t, "@collect x")
	diags := doc.Diagnostics()
	require.Len(t, diags, 1)

	got, err := reporter.RenderDiagnosticWith(diags[0], doc, reporter.Options{Styler: bracketStyler{}})
	require.NoError(t, err)

	assert.Equal(t,
		"<error>error: x is not flagged: add @flag x before this @collect\n"+
			"[ |]\n"+
			"[0|] {@collect x}\n"+
			"[ |]          (^)\n"+
			"[ |]",
		got)
}

func TestRenderDiagnostics_Limit(t *testing.T) {
	t.Parallel()

	var builder strings.Builder
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		builder.WriteString("@collect " + name + "\n")
	}
	doc := mustParse(t, builder.String())
	require.Len(t, doc.Diagnostics(), 7)

	tests := []struct {
		name   string
		limit  int
		blocks int
	}{
		{name: "default", limit: 0, blocks: reporter.DefaultLimit},
		{name: "negative means default", limit: -3, blocks: reporter.DefaultLimit},
		{name: "explicit", limit: 2, blocks: 2},
		{name: "above count", limit: 50, blocks: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.RenderDiagnostics(doc, tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.blocks, strings.Count(got, "error: "))
			assert.Equal(t, tt.blocks-1, strings.Count(got, " |\n\nerror: "))
		})
	}
}

func TestRenderDiagnostics_Empty(t *testing.T) {
	t.Parallel()

	got, err := reporter.RenderDiagnostics(mustParse(t, "fine\n"), 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}
