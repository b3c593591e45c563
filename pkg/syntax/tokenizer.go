package syntax

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrTokenize is returned when a line cannot be classified by any of the
// line tokenizers. It indicates a contract violation, not bad user input.
var ErrTokenize = errors.New("tokenize")

// Markers recognised at the start of a line.
const (
	CommentMarker = "//"
	CommandMarker = '@'

	KeywordFlag    = "flag"
	KeywordCollect = "collect"
)

// Messages attached to MissingToken and SkippedToken.
const (
	MsgExpectedCommandName = "expected command name (flag or collect)"
	MsgUnexpectedCommand   = "unexpected command name (expected flag or collect)"
	MsgExpectedSpace       = "expected space after command name"
	MsgExpectedArgument    = "expected argument (marker name)"
	MsgUnexpectedContent   = "unexpected content after argument"
)

// LineTokenizer tokenizes a single line. The line never contains '\n'.
type LineTokenizer func(line string, lineNumber int) ([]Token, error)

// Tokenize splits src into lines and tokenizes each one.
// A trailing empty line produced by a final '\n' is dropped, so every
// remaining line ends in exactly one Newline token.
func Tokenize(src string) ([]Token, error) {
	lines := strings.Split(src, "\n")
	if len(lines) > 1 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	tokens := make([]Token, 0, len(lines)*2)
	for lineNumber, line := range lines {
		lineTokens, err := classify(line)(line, lineNumber)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, lineTokens...)
	}

	return tokens, nil
}

// classify picks the tokenizer for a line, in priority order.
func classify(line string) LineTokenizer {
	switch {
	case isBlankLine(line):
		return TokenizeBlankLine
	case strings.HasPrefix(line, CommentMarker):
		return TokenizeCommentLine
	case strings.HasPrefix(line, string(CommandMarker)):
		return TokenizeCommandLine
	default:
		return TokenizeSentenceLine
	}
}

func isBlankLine(line string) bool {
	return strings.TrimFunc(line, unicode.IsSpace) == ""
}

// TokenizeBlankLine emits a single Newline token whose trivia is the whole line.
func TokenizeBlankLine(line string, lineNumber int) ([]Token, error) {
	if !isBlankLine(line) {
		return nil, fmt.Errorf("%w: line %d: not a blank line", ErrTokenize, lineNumber)
	}

	width := runeLen(line)
	return []Token{
		newlineToken(lineNumber, 0, width),
	}, nil
}

// TokenizeCommentLine emits CommentPrefix, an optional CommentBody covering
// the first run of non-space runes, and a Newline absorbing the rest.
func TokenizeCommentLine(line string, lineNumber int) ([]Token, error) {
	if !strings.HasPrefix(line, CommentMarker) {
		return nil, fmt.Errorf("%w: line %d: not a comment line", ErrTokenize, lineNumber)
	}

	runes := []rune(line)
	prefixLen := runeLen(CommentMarker)

	tokens := []Token{{
		Kind:      CommentPrefix,
		FullStart: Pos(lineNumber, 0),
		Start:     Pos(lineNumber, 0),
		End:       Pos(lineNumber, prefixLen-1),
	}}

	bodyLen := scan(runes, prefixLen, notSpace)
	if bodyLen > 0 {
		tokens = append(tokens, Token{
			Kind:      CommentBody,
			FullStart: Pos(lineNumber, prefixLen),
			Start:     Pos(lineNumber, prefixLen),
			End:       Pos(lineNumber, prefixLen+bodyLen-1),
		})
	}

	tokens = append(tokens, newlineToken(lineNumber, prefixLen+bodyLen, len(runes)))
	return tokens, nil
}

// TokenizeCommandLine tokenizes "@keyword argument" lines. Missing or
// unexpected parts become MissingToken/SkippedToken so parsing continues.
func TokenizeCommandLine(line string, lineNumber int) ([]Token, error) {
	runes := []rune(line)
	if len(runes) == 0 || runes[0] != CommandMarker {
		return nil, fmt.Errorf("%w: line %d: not a command line", ErrTokenize, lineNumber)
	}

	// Layout: '@' name space arg rest trailing, all lengths in runes.
	nameLen := scan(runes, 1, notSpace)
	spaceLen := scan(runes, 1+nameLen, unicode.IsSpace)
	argLen := scan(runes, 1+nameLen+spaceLen, notSpace)
	restStart := 1 + nameLen + spaceLen + argLen
	skipLen := runeLen(strings.TrimRightFunc(string(runes[restStart:]), unicode.IsSpace))

	at := func(col int) Position { return Pos(lineNumber, col) }
	name := string(runes[1 : 1+nameLen])

	tokens := []Token{{Kind: CommandPrefix, FullStart: at(0), Start: at(0), End: at(0)}}

	// The command name already carries the error, so an argument under a
	// missing or unknown name stays neutral.
	argKind := CommandArg
	switch name {
	case "":
		tokens = append(tokens, Token{
			Kind: MissingToken, FullStart: at(0), Start: at(0), End: at(0),
			Message: MsgExpectedCommandName,
		})
	case KeywordFlag:
		tokens = append(tokens, Token{Kind: Flag, FullStart: at(1), Start: at(1), End: at(nameLen)})
		argKind = FlagArg
	case KeywordCollect:
		tokens = append(tokens, Token{Kind: Collect, FullStart: at(1), Start: at(1), End: at(nameLen)})
		argKind = CollectArg
	default:
		tokens = append(tokens, Token{
			Kind: SkippedToken, FullStart: at(1), Start: at(1), End: at(nameLen),
			Message: MsgUnexpectedCommand,
		})
	}

	if spaceLen > 0 {
		tokens = append(tokens, Token{
			Kind:      Space,
			FullStart: at(nameLen + 1),
			Start:     at(nameLen + spaceLen),
			End:       at(nameLen + spaceLen),
		})
	} else {
		tokens = append(tokens, Token{
			Kind: MissingToken, FullStart: at(nameLen + 1), Start: at(nameLen + 1), End: at(nameLen + 1),
			Message: MsgExpectedSpace,
		})
	}

	base := nameLen + spaceLen
	if argLen > 0 {
		tokens = append(tokens, Token{
			Kind:      argKind,
			FullStart: at(base + 1),
			Start:     at(base + 1),
			End:       at(base + argLen),
		})
	} else {
		tokens = append(tokens, Token{
			Kind: MissingToken, FullStart: at(base + 1), Start: at(base + 1), End: at(base + 1),
			Message: MsgExpectedArgument,
		})
	}

	if skipLen > 0 {
		leading := scan(runes, restStart, unicode.IsSpace)
		tokens = append(tokens, Token{
			Kind:      SkippedToken,
			FullStart: at(restStart),
			Start:     at(restStart + leading),
			End:       at(restStart + skipLen - 1),
			Message:   MsgUnexpectedContent,
		})
	}

	tokens = append(tokens, newlineToken(lineNumber, restStart+skipLen, len(runes)))
	return tokens, nil
}

// TokenizeSentenceLine emits a Words token for everything but trailing
// whitespace, followed by a Newline.
func TokenizeSentenceLine(line string, lineNumber int) ([]Token, error) {
	words := strings.TrimRightFunc(line, unicode.IsSpace)
	switch {
	case words == "":
		return nil, fmt.Errorf("%w: line %d: empty sentence", ErrTokenize, lineNumber)
	case strings.HasPrefix(words, CommentMarker), strings.HasPrefix(words, string(CommandMarker)):
		return nil, fmt.Errorf("%w: line %d: sentence starts with a marker", ErrTokenize, lineNumber)
	}

	wordsLen := runeLen(words)
	return []Token{
		{
			Kind:      Words,
			FullStart: Pos(lineNumber, 0),
			Start:     Pos(lineNumber, 0),
			End:       Pos(lineNumber, wordsLen-1),
		},
		newlineToken(lineNumber, wordsLen, runeLen(line)),
	}, nil
}

// newlineToken builds the terminating token of a line. Its trivia runs
// from fullStart to the end of the line.
func newlineToken(lineNumber, fullStart, width int) Token {
	return Token{
		Kind:      Newline,
		FullStart: Pos(lineNumber, fullStart),
		Start:     Pos(lineNumber, width),
		End:       Pos(lineNumber, width),
	}
}

// scan counts consecutive runes from start that satisfy pred.
func scan(runes []rune, start int, pred func(rune) bool) int {
	n := 0
	for i := start; i < len(runes) && pred(runes[i]); i++ {
		n++
	}
	return n
}

func notSpace(r rune) bool {
	return !unicode.IsSpace(r)
}

func runeLen(s string) int {
	return len([]rune(s))
}
