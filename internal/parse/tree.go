// Package parse builds a concrete parse tree from a SOL25 token stream
// according to the fixed grammar of spec.md §4.2.
package parse

import (
	"fmt"
	"strings"

	"github.com/dekarrin/solc25/internal/lex"
)

const (
	levelEmpty      = "        "
	levelOngoing    = "  |     "
	levelPrefix     = "  |%s: "
	levelPrefixLast = `  \%s: `
)

// Tree is a concrete parse tree node: either a terminal, carrying the Token
// that produced it, or a non-terminal, carrying the grammar symbol it
// represents and its ordered children. Modelled on the teacher's
// ictiobus types.ParseTree.
type Tree struct {
	Terminal bool
	Symbol   string
	Source   lex.Token
	Children []*Tree
}

func terminalNode(symbol string, tok lex.Token) *Tree {
	return &Tree{Terminal: true, Symbol: symbol, Source: tok}
}

func nonTerminalNode(symbol string, children ...*Tree) *Tree {
	return &Tree{Symbol: symbol, Children: children}
}

// String renders a line-per-node, indentation-prefixed view of the tree
// suitable for test comparisons.
func (t *Tree) String() string {
	return t.leveledStr("", "")
}

func (t *Tree) leveledStr(firstPrefix, contPrefix string) string {
	var sb strings.Builder
	sb.WriteString(firstPrefix)
	if t.Terminal {
		sb.WriteString(fmt.Sprintf("(TERM %q)", t.Source.Lexeme()))
	} else {
		sb.WriteString(fmt.Sprintf("( %s )", t.Symbol))
	}

	for i, c := range t.Children {
		sb.WriteRune('\n')
		var nextFirst, nextCont string
		if i+1 < len(t.Children) {
			nextFirst = contPrefix + fmt.Sprintf(levelPrefix, "")
			nextCont = contPrefix + levelOngoing
		} else {
			nextFirst = contPrefix + fmt.Sprintf(levelPrefixLast, "")
			nextCont = contPrefix + levelEmpty
		}
		sb.WriteString(c.leveledStr(nextFirst, nextCont))
	}
	return sb.String()
}
