// Package lex tokenizes SOL25 source text into a stream of classified
// lexemes, tracking line and column position for diagnostics.
package lex

import "strings"

// Class identifies the lexical category of a Token. It is modelled on the
// ictiobus TokenClass interface: a class carries both a stable ID usable in
// grammar rules and a human-readable name usable in diagnostics.
type Class interface {
	// ID returns the class's identifier, unique among all classes a Lexer
	// knows about.
	ID() string

	// Human returns a human-readable name for the class, for use in error
	// messages.
	Human() string
}

type simpleClass string

func (c simpleClass) ID() string    { return strings.ToLower(string(c)) }
func (c simpleClass) Human() string { return string(c) }

// Fixed token classes for the SOL25 grammar (spec.md §4.1).
const (
	CID      = simpleClass("CID")
	ID       = simpleClass("ID")
	IDColon  = simpleClass("ID_COLON")
	ColonID  = simpleClass("COLON_ID")
	Int      = simpleClass("INT")
	Str      = simpleClass("STR")
	Comment  = simpleClass("COMMENT")
	LBrace   = simpleClass("LBRACE")
	RBrace   = simpleClass("RBRACE")
	LBracket = simpleClass("LBRACKET")
	RBracket = simpleClass("RBRACKET")
	LParen   = simpleClass("LPAREN")
	RParen   = simpleClass("RPAREN")
	Pipe     = simpleClass("PIPE")
	Assign   = simpleClass("ASSIGN")
	Dot      = simpleClass("DOT")
	Colon    = simpleClass("COLON")

	// EndOfText is the sentinel class returned once the lexer has consumed
	// all input.
	EndOfText = simpleClass("$")
)
