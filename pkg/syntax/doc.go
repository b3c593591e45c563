// Package syntax provides the lossless token stream and document tree for
// stlap sources.
//
// Every rune of a source is covered by exactly one token, either as leading
// trivia (FullStart up to Start) or as significant content (Start through End).
// Malformed commands never abort tokenizing; they surface as MissingToken and
// SkippedToken placeholders carrying a message.
package syntax
