package syntax

import (
	"errors"
	"fmt"
)

// ErrParse is returned when the token stream violates the tokenizer contract.
var ErrParse = errors.New("parse")

// Parse tokenizes src and builds its document tree.
//
// Grammar:
//
//	story     = (separator? paragraph)* separator? end
//	separator = newline+
//	paragraph = (sentence | command | comment)+
//	sentence  = words newline
//	command   = '@' keyword space argument skipped? newline
//	comment   = '//' body? newline
func Parse(src string) (*Node, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	return Build(tokens)
}

// Build groups a token stream into a Story tree. The last child of the
// returned root is always an End node.
func Build(tokens []Token) (*Node, error) {
	story := NewNode(Story, nil)

	i := 0
	for i < len(tokens) {
		if tokens[i].Kind == Newline {
			separator := NewNode(ParagraphSeparator, story)
			for i < len(tokens) && tokens[i].Kind == Newline {
				separator.AppendChild(tokens[i])
				i++
			}
			story.AppendChild(separator)
			continue
		}

		paragraph := NewNode(Paragraph, story)
		for i < len(tokens) && tokens[i].Kind != Newline {
			kind, err := lineKind(tokens[i])
			if err != nil {
				return nil, err
			}

			line := NewNode(kind, paragraph)
			for i < len(tokens) && tokens[i].Kind != Newline {
				line.AppendChild(tokens[i])
				i++
			}
			if i < len(tokens) {
				line.AppendChild(tokens[i])
				i++
			}
			paragraph.AppendChild(line)
		}
		story.AppendChild(paragraph)
	}

	if last := story.LastChild(); last != nil && last.Kind == ParagraphSeparator {
		last.Kind = End
	} else {
		story.AppendChild(NewNode(End, story))
	}

	return story, nil
}

// lineKind chooses the node kind for a line from its leading token.
func lineKind(first Token) (NodeKind, error) {
	switch first.Kind {
	case Words:
		return Sentence, nil
	case CommentPrefix:
		return Comment, nil
	case CommandPrefix:
		return Command, nil
	case Newline, Space, CommentBody, Flag, Collect, FlagArg, CollectArg, CommandArg, MissingToken, SkippedToken:
		return 0, fmt.Errorf("%w: line %d starts with %s", ErrParse, first.Start.Line, first.Kind)
	default:
		return 0, fmt.Errorf("%w: unknown token kind %d", ErrParse, first.Kind)
	}
}
