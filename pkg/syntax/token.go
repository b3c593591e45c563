package syntax

// TokenKind classifies a token in a stlap source.
type TokenKind uint8

// Token kinds. MissingToken and SkippedToken are error placeholders.
const (
	Newline TokenKind = iota
	Space
	CommandPrefix // '@'
	CommentPrefix // '//'
	CommentBody
	Flag    // 'flag' keyword
	Collect // 'collect' keyword
	FlagArg
	CollectArg
	CommandArg // argument of a missing or unknown command name
	Words
	MissingToken
	SkippedToken
)

var tokenKindNames = [...]string{
	Newline:       "Newline",
	Space:         "Space",
	CommandPrefix: "CommandPrefix",
	CommentPrefix: "CommentPrefix",
	CommentBody:   "CommentBody",
	Flag:          "Flag",
	Collect:       "Collect",
	FlagArg:       "FlagArg",
	CollectArg:    "CollectArg",
	CommandArg:    "CommandArg",
	Words:         "Words",
	MissingToken:  "MissingToken",
	SkippedToken:  "SkippedToken",
}

// String returns the kind name.
func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "TokenKind(?)"
}

// IsError reports whether the kind is a syntax error placeholder.
func (k TokenKind) IsError() bool {
	return k == MissingToken || k == SkippedToken
}

// Token is a classified span of a single source line.
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// FullStart is where the leading trivia begins.
	FullStart Position

	// Start is the first rune of significant content.
	Start Position

	// End is the last rune of significant content (inclusive).
	End Position

	// Message describes the problem for MissingToken and SkippedToken.
	Message string
}

// Range returns the significant span of the token.
func (t Token) Range() Range {
	return Range{Start: t.Start, End: t.End}
}

// FullRange returns the span including leading trivia.
func (t Token) FullRange() Range {
	return Range{Start: t.FullStart, End: t.End}
}

func (Token) element() {}
