package parse

import (
	"fmt"

	"github.com/dekarrin/solc25/internal/lex"
)

// Error reports a grammar violation or premature end of input. Both map to
// exit code 22 (spec.md §6); the driver never needs to distinguish them
// further.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func errf(tok lex.Token, format string, a ...interface{}) error {
	msg := fmt.Sprintf(format, a...)
	if tok.IsEndOfText() {
		return &Error{msg: fmt.Sprintf("unexpected end of input: %s", msg)}
	}
	return &Error{msg: fmt.Sprintf("line %d:%d: %s (got %q)", tok.Line(), tok.LinePos(), msg, tok.Lexeme())}
}

type parser struct {
	toks []lex.Token
	pos  int
}

// Parse builds the concrete parse tree for a complete SOL25 program from its
// token stream (spec.md §4.2). The grammar is small and fixed enough that a
// hand-written recursive descent parser with one token of lookahead suffices
// in place of the teacher's general LALR engine (see DESIGN.md).
func Parse(toks []lex.Token) (*Tree, error) {
	p := &parser{toks: toks}
	prog, err := p.program()
	if err != nil {
		return nil, err
	}
	if !p.cur().IsEndOfText() {
		return nil, errf(p.cur(), "expected end of input")
	}
	return prog, nil
}

func (p *parser) cur() lex.Token {
	return p.toks[p.pos]
}

func (p *parser) advance() lex.Token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(class lex.Class) (lex.Token, error) {
	if p.cur().Class() != class {
		return lex.Token{}, errf(p.cur(), "expected %s", class.Human())
	}
	return p.advance(), nil
}

// isClassKeyword returns whether the current token is the ID lexeme "class",
// the grammar's sole reserved-word literal (spec.md §4.2: class_def starts
// with the literal 'class', which lexes as an ordinary ID token).
func (p *parser) isClassKeyword() bool {
	return p.cur().Class() == lex.ID && p.cur().Lexeme() == "class"
}

// program := class_def*
func (p *parser) program() (*Tree, error) {
	var children []*Tree
	for p.isClassKeyword() {
		cd, err := p.classDef()
		if err != nil {
			return nil, err
		}
		children = append(children, cd)
	}
	return nonTerminalNode("program", children...), nil
}

// class_def := 'class' CID ':' CID '{' method* '}'
func (p *parser) classDef() (*Tree, error) {
	classTok, err := p.expect(lex.ID)
	if err != nil {
		return nil, err
	}
	nameTok, err := p.expect(lex.CID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.Colon); err != nil {
		return nil, err
	}
	parentTok, err := p.expect(lex.CID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.LBrace); err != nil {
		return nil, err
	}

	var methods []*Tree
	for p.cur().Class() == lex.ID || p.cur().Class() == lex.IDColon {
		m, err := p.method()
		if err != nil {
			return nil, err
		}
		methods = append(methods, m)
	}

	if _, err := p.expect(lex.RBrace); err != nil {
		return nil, err
	}

	children := []*Tree{
		terminalNode("class", classTok),
		terminalNode("name", nameTok),
		terminalNode("parent", parentTok),
	}
	children = append(children, methods...)
	return nonTerminalNode("class_def", children...), nil
}

// method := selector block
func (p *parser) method() (*Tree, error) {
	sel, err := p.selector()
	if err != nil {
		return nil, err
	}
	blk, err := p.block()
	if err != nil {
		return nil, err
	}
	return nonTerminalNode("method", sel, blk), nil
}

// selector := ID | ID_COLON+
func (p *parser) selector() (*Tree, error) {
	if p.cur().Class() == lex.ID {
		tok := p.advance()
		return nonTerminalNode("selector", terminalNode("unary", tok)), nil
	}
	if p.cur().Class() != lex.IDColon {
		return nil, errf(p.cur(), "expected a selector")
	}
	var frags []*Tree
	for p.cur().Class() == lex.IDColon {
		frags = append(frags, terminalNode("frag", p.advance()))
	}
	return nonTerminalNode("selector", frags...), nil
}

// block := '[' block_par* '|' block_stat* ']'
func (p *parser) block() (*Tree, error) {
	if _, err := p.expect(lex.LBracket); err != nil {
		return nil, err
	}

	var params []*Tree
	for p.cur().Class() == lex.ColonID {
		params = append(params, terminalNode("param", p.advance()))
	}

	if _, err := p.expect(lex.Pipe); err != nil {
		return nil, err
	}

	var stats []*Tree
	for p.cur().Class() == lex.ID {
		st, err := p.blockStat()
		if err != nil {
			return nil, err
		}
		stats = append(stats, st)
	}

	if _, err := p.expect(lex.RBracket); err != nil {
		return nil, err
	}

	children := append([]*Tree{nonTerminalNode("params", params...)}, stats...)
	return nonTerminalNode("block", children...), nil
}

// block_stat := ID ':=' expr '.'
func (p *parser) blockStat() (*Tree, error) {
	target, err := p.expect(lex.ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.Assign); err != nil {
		return nil, err
	}
	ex, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lex.Dot); err != nil {
		return nil, err
	}
	return nonTerminalNode("assign", terminalNode("target", target), ex), nil
}

// expr := expr_atom expr_tail
func (p *parser) expr() (*Tree, error) {
	atom, err := p.exprAtom()
	if err != nil {
		return nil, err
	}
	tail, err := p.exprTail()
	if err != nil {
		return nil, err
	}
	children := []*Tree{atom}
	if tail != nil {
		children = append(children, tail)
	}
	return nonTerminalNode("expr", children...), nil
}

// expr_tail := ε | ID | ( ID_COLON expr_atom )+
//
// Greedy: once a keyword-message fragment is seen, the tail consumes the
// longest run of (ID_COLON expr_atom) pairs available (spec.md §4.2 tie-break
// rule).
func (p *parser) exprTail() (*Tree, error) {
	if p.cur().Class() == lex.ID {
		tok := p.advance()
		return nonTerminalNode("unary_msg", terminalNode("sel", tok)), nil
	}
	if p.cur().Class() != lex.IDColon {
		return nil, nil
	}

	var parts []*Tree
	for p.cur().Class() == lex.IDColon {
		fragTok := p.advance()
		arg, err := p.exprAtom()
		if err != nil {
			return nil, err
		}
		parts = append(parts, nonTerminalNode("kwpart", terminalNode("frag", fragTok), arg))
	}
	return nonTerminalNode("keyword_msg", parts...), nil
}

// expr_atom := '(' expr ')' | block | ID | CID | INT | STR
func (p *parser) exprAtom() (*Tree, error) {
	switch p.cur().Class() {
	case lex.LParen:
		p.advance()
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lex.RParen); err != nil {
			return nil, err
		}
		return nonTerminalNode("nested", inner), nil
	case lex.LBracket:
		blk, err := p.block()
		if err != nil {
			return nil, err
		}
		return nonTerminalNode("block_atom", blk), nil
	case lex.ID:
		return nonTerminalNode("var_atom", terminalNode("name", p.advance())), nil
	case lex.CID:
		return nonTerminalNode("class_atom", terminalNode("name", p.advance())), nil
	case lex.Int:
		return nonTerminalNode("int_atom", terminalNode("digits", p.advance())), nil
	case lex.Str:
		return nonTerminalNode("str_atom", terminalNode("raw", p.advance())), nil
	default:
		return nil, errf(p.cur(), "expected an expression")
	}
}
