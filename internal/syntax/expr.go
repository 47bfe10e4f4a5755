package syntax

import "fmt"

// AtomKind tags the variant of an Atom. An explicit enum with exhaustive
// dispatch at every walk site is used throughout this package in preference
// to a stringly-typed representation (spec.md §9).
type AtomKind int

const (
	AtomInt AtomKind = iota
	AtomStr
	AtomVar
	AtomClass
	AtomNested
	AtomBlock
)

// Atom is a leaf expression form (spec.md §3): a literal, a variable or
// class reference, a parenthesised expression, or a block literal.
type Atom interface {
	Kind() AtomKind
	String() string
	Copy() Atom
	equal(Atom) bool
}

// IntLiteral is an integer literal, text preserved verbatim including any
// sign (spec.md §4.3).
type IntLiteral struct{ Digits string }

func (a IntLiteral) Kind() AtomKind { return AtomInt }
func (a IntLiteral) String() string { return fmt.Sprintf("[LIT INT %s]", a.Digits) }
func (a IntLiteral) Copy() Atom     { return IntLiteral{Digits: a.Digits} }
func (a IntLiteral) equal(o Atom) bool {
	other, ok := o.(IntLiteral)
	return ok && other.Digits == a.Digits
}

// StrLiteral is a string literal with delimiting quotes stripped but raw
// escape sequences retained (spec.md §4.3).
type StrLiteral struct{ Raw string }

func (a StrLiteral) Kind() AtomKind { return AtomStr }
func (a StrLiteral) String() string { return fmt.Sprintf("[LIT STR %q]", a.Raw) }
func (a StrLiteral) Copy() Atom     { return StrLiteral{Raw: a.Raw} }
func (a StrLiteral) equal(o Atom) bool {
	other, ok := o.(StrLiteral)
	return ok && other.Raw == a.Raw
}

// VarRef is a lowercase-identifier reference: a global literal (nil, true,
// false), a pseudo-variable (self, super), a block parameter, or a
// previously-assigned local (spec.md §3, §4.4).
type VarRef struct{ Name string }

func (a VarRef) Kind() AtomKind { return AtomVar }
func (a VarRef) String() string { return fmt.Sprintf("[VAR %s]", a.Name) }
func (a VarRef) Copy() Atom     { return VarRef{Name: a.Name} }
func (a VarRef) equal(o Atom) bool {
	other, ok := o.(VarRef)
	return ok && other.Name == a.Name
}

// ClassRef is a capitalised class-name reference, the receiver of a
// class-side message send (spec.md §3, §4.4).
type ClassRef struct{ Name string }

func (a ClassRef) Kind() AtomKind { return AtomClass }
func (a ClassRef) String() string { return fmt.Sprintf("[CLASSREF %s]", a.Name) }
func (a ClassRef) Copy() Atom     { return ClassRef{Name: a.Name} }
func (a ClassRef) equal(o Atom) bool {
	other, ok := o.(ClassRef)
	return ok && other.Name == a.Name
}

// NestedExpr is a parenthesised expression.
type NestedExpr struct{ Inner *Expression }

func (a NestedExpr) Kind() AtomKind { return AtomNested }
func (a NestedExpr) String() string { return fmt.Sprintf("[NESTED %s]", a.Inner.String()) }
func (a NestedExpr) Copy() Atom     { return NestedExpr{Inner: a.Inner.Copy()} }
func (a NestedExpr) equal(o Atom) bool {
	other, ok := o.(NestedExpr)
	return ok && other.Inner.Equal(a.Inner)
}

// BlockExpr is a block literal used as an expression atom.
type BlockExpr struct{ Block *Block }

func (a BlockExpr) Kind() AtomKind { return AtomBlock }
func (a BlockExpr) String() string { return fmt.Sprintf("[BLOCKLIT %s]", a.Block.String()) }
func (a BlockExpr) Copy() Atom     { return BlockExpr{Block: a.Block.Copy()} }
func (a BlockExpr) equal(o Atom) bool {
	other, ok := o.(BlockExpr)
	return ok && other.Block.Equal(a.Block)
}

// MessageKind tags the variant of a Message.
type MessageKind int

const (
	MsgNone MessageKind = iota
	MsgUnary
	MsgKeyword
)

// Message is the (possibly absent) message part of an Expression (spec.md
// §3): either nothing, a single unary selector, or an ordered, non-empty
// list of keyword-selector fragments each paired with an argument.
type Message interface {
	Kind() MessageKind
	String() string
	Copy() Message
	equal(Message) bool
}

// NoMessage represents an expression that is just its receiver.
type NoMessage struct{}

func (m NoMessage) Kind() MessageKind    { return MsgNone }
func (m NoMessage) String() string       { return "" }
func (m NoMessage) Copy() Message        { return NoMessage{} }
func (m NoMessage) equal(o Message) bool { _, ok := o.(NoMessage); return ok }

// UnaryMessage is a single unary-selector send.
type UnaryMessage struct{ Selector string }

func (m UnaryMessage) Kind() MessageKind { return MsgUnary }
func (m UnaryMessage) String() string    { return fmt.Sprintf(" %s", m.Selector) }
func (m UnaryMessage) Copy() Message     { return UnaryMessage{Selector: m.Selector} }
func (m UnaryMessage) equal(o Message) bool {
	other, ok := o.(UnaryMessage)
	return ok && other.Selector == m.Selector
}

// KeywordMessage is a keyword-selector send: Fragments holds each
// "name:"-style piece in order, Args holds the corresponding argument
// expressions.
type KeywordMessage struct {
	Fragments []string
	Args      []*Expression
}

// Selector returns the concatenated keyword selector, e.g. "add:and:".
func (m KeywordMessage) Selector() string {
	s := ""
	for _, f := range m.Fragments {
		s += f
	}
	return s
}

func (m KeywordMessage) Kind() MessageKind { return MsgKeyword }
func (m KeywordMessage) String() string {
	s := ""
	for i, f := range m.Fragments {
		s += fmt.Sprintf(" %s %s", f, m.Args[i].String())
	}
	return s
}
func (m KeywordMessage) Copy() Message {
	nm := KeywordMessage{}
	nm.Fragments = append(nm.Fragments, m.Fragments...)
	nm.Args = make([]*Expression, len(m.Args))
	for i, a := range m.Args {
		nm.Args[i] = a.Copy()
	}
	return nm
}
func (m KeywordMessage) equal(o Message) bool {
	other, ok := o.(KeywordMessage)
	if !ok || len(m.Fragments) != len(other.Fragments) {
		return false
	}
	for i := range m.Fragments {
		if m.Fragments[i] != other.Fragments[i] {
			return false
		}
		if !m.Args[i].Equal(other.Args[i]) {
			return false
		}
	}
	return true
}

// Expression is a receiver atom plus a possibly-empty message (spec.md §3).
type Expression struct {
	Receiver Atom
	Msg      Message
}

func (e *Expression) String() string {
	return fmt.Sprintf("(%s%s)", e.Receiver.String(), e.Msg.String())
}

// Copy returns a deep copy of the expression.
func (e *Expression) Copy() *Expression {
	return &Expression{Receiver: e.Receiver.Copy(), Msg: e.Msg.Copy()}
}

// Equal reports whether two expressions have identical structure.
func (e *Expression) Equal(o *Expression) bool {
	if o == nil {
		return false
	}
	return e.Receiver.equal(o.Receiver) && e.Msg.equal(o.Msg)
}
