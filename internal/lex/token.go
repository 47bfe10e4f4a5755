package lex

import "fmt"

// Token is a lexeme read from source text, combined with its Class and the
// positional information needed to build useful diagnostics. Modelled on
// ictiobus's types.Token interface.
type Token struct {
	class    Class
	lexeme   string
	line     int
	linePos  int
	fullLine string
}

// Class returns the Class of the token.
func (t Token) Class() Class { return t.class }

// Lexeme returns the literal text that was lexed.
func (t Token) Lexeme() string { return t.lexeme }

// Line returns the 1-indexed line number the token starts on.
func (t Token) Line() int { return t.line }

// LinePos returns the 1-indexed column the token starts at.
func (t Token) LinePos() int { return t.linePos }

// FullLine returns the complete source line the token appears on.
func (t Token) FullLine() string { return t.fullLine }

// String gives a debug representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("(%s %q @%d:%d)", t.class.ID(), t.lexeme, t.line, t.linePos)
}

// IsEndOfText returns whether this token is the sentinel marking the end of
// the token stream.
func (t Token) IsEndOfText() bool {
	return t.class == EndOfText
}
