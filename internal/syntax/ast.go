// Package syntax defines the SOL25 abstract syntax tree (spec.md §3) and
// folds a concrete parse tree (internal/parse) into it.
package syntax

import (
	"fmt"
	"strings"
)

// Program is the root of the AST: an ordered list of class declarations,
// plus the doc string extracted from the source by the doc-comment
// extractor (C5). Doc is only meaningful when HasDoc is true.
type Program struct {
	Classes []*ClassDecl
	Doc     string
	HasDoc  bool
}

// SetDoc attaches the result of the doc-comment extractor to the program.
// The sentinel value "none" (spec.md §4.5) means no comment was found and is
// never stored as a doc string.
func (p *Program) SetDoc(doc string) {
	if doc == "none" {
		p.HasDoc = false
		p.Doc = ""
		return
	}
	p.HasDoc = true
	p.Doc = doc
}

// String renders a line-per-node debug view of the whole program.
func (p *Program) String() string {
	var sb strings.Builder
	sb.WriteString("Program\n")
	for i, c := range p.Classes {
		sb.WriteString(indentBlock(c.String(), " C: "))
		if i+1 < len(p.Classes) {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// Copy returns a deep copy of the program.
func (p *Program) Copy() *Program {
	np := &Program{Doc: p.Doc, HasDoc: p.HasDoc}
	np.Classes = make([]*ClassDecl, len(p.Classes))
	for i, c := range p.Classes {
		np.Classes[i] = c.Copy()
	}
	return np
}

// Equal reports whether two programs have identical structure (spec.md §8:
// round-trip equivalence after XML re-parsing).
func (p *Program) Equal(o *Program) bool {
	if o == nil {
		return false
	}
	if p.HasDoc != o.HasDoc || p.Doc != o.Doc {
		return false
	}
	if len(p.Classes) != len(o.Classes) {
		return false
	}
	for i := range p.Classes {
		if !p.Classes[i].Equal(o.Classes[i]) {
			return false
		}
	}
	return true
}

// ClassDecl is a single class declaration (spec.md §3).
type ClassDecl struct {
	Name    string
	Parent  string
	Methods []*MethodDecl
}

func (c *ClassDecl) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[CLASS %s : %s]", c.Name, c.Parent)
	for _, m := range c.Methods {
		sb.WriteRune('\n')
		sb.WriteString(indentBlock(m.String(), " M: "))
	}
	return sb.String()
}

// Copy returns a deep copy of the class declaration.
func (c *ClassDecl) Copy() *ClassDecl {
	nc := &ClassDecl{Name: c.Name, Parent: c.Parent}
	nc.Methods = make([]*MethodDecl, len(c.Methods))
	for i, m := range c.Methods {
		nc.Methods[i] = m.Copy()
	}
	return nc
}

// Equal reports whether two class declarations have identical structure.
func (c *ClassDecl) Equal(o *ClassDecl) bool {
	if o == nil || c.Name != o.Name || c.Parent != o.Parent {
		return false
	}
	if len(c.Methods) != len(o.Methods) {
		return false
	}
	for i := range c.Methods {
		if !c.Methods[i].Equal(o.Methods[i]) {
			return false
		}
	}
	return true
}

// MethodDecl is a method declaration (spec.md §3): a selector and its body
// block. Arity is the number of ':' fragments in Selector (0 for a unary
// selector).
type MethodDecl struct {
	Selector string
	Arity    int
	Body     *Block
}

func (m *MethodDecl) String() string {
	return fmt.Sprintf("[METHOD %s]\n", m.Selector) + indentBlock(m.Body.String(), " B: ")
}

// Copy returns a deep copy of the method declaration.
func (m *MethodDecl) Copy() *MethodDecl {
	return &MethodDecl{Selector: m.Selector, Arity: m.Arity, Body: m.Body.Copy()}
}

// Equal reports whether two method declarations have identical structure.
func (m *MethodDecl) Equal(o *MethodDecl) bool {
	if o == nil || m.Selector != o.Selector || m.Arity != o.Arity {
		return false
	}
	return m.Body.Equal(o.Body)
}

// Block is an ordered list of parameter names followed by an ordered list of
// assignments (spec.md §3). Arity is len(Params).
type Block struct {
	Params []string
	Stats  []*Assignment
}

func (b *Block) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[BLOCK arity=%d params=%s]", len(b.Params), strings.Join(b.Params, ","))
	for _, a := range b.Stats {
		sb.WriteRune('\n')
		sb.WriteString(indentBlock(a.String(), " S: "))
	}
	return sb.String()
}

// Copy returns a deep copy of the block.
func (b *Block) Copy() *Block {
	nb := &Block{}
	nb.Params = append(nb.Params, b.Params...)
	nb.Stats = make([]*Assignment, len(b.Stats))
	for i, a := range b.Stats {
		nb.Stats[i] = a.Copy()
	}
	return nb
}

// Equal reports whether two blocks have identical structure.
func (b *Block) Equal(o *Block) bool {
	if o == nil || len(b.Params) != len(o.Params) {
		return false
	}
	for i := range b.Params {
		if b.Params[i] != o.Params[i] {
			return false
		}
	}
	if len(b.Stats) != len(o.Stats) {
		return false
	}
	for i := range b.Stats {
		if !b.Stats[i].Equal(o.Stats[i]) {
			return false
		}
	}
	return true
}

// Assignment binds the value of an Expression to a variable (spec.md §3).
type Assignment struct {
	Target string
	Expr   *Expression
}

func (a *Assignment) String() string {
	return fmt.Sprintf("[ASSIGN %s := %s]", a.Target, a.Expr.String())
}

// Copy returns a deep copy of the assignment.
func (a *Assignment) Copy() *Assignment {
	return &Assignment{Target: a.Target, Expr: a.Expr.Copy()}
}

// Equal reports whether two assignments have identical structure.
func (a *Assignment) Equal(o *Assignment) bool {
	if o == nil || a.Target != o.Target {
		return false
	}
	return a.Expr.Equal(o.Expr)
}

func indentBlock(s, prefix string) string {
	pad := strings.Repeat(" ", len(prefix))
	lines := strings.Split(s, "\n")
	var sb strings.Builder
	for i, l := range lines {
		if i == 0 {
			sb.WriteString(prefix)
		} else {
			sb.WriteRune('\n')
			sb.WriteString(pad)
		}
		sb.WriteString(l)
	}
	return sb.String()
}
