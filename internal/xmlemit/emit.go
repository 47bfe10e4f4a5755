// Package xmlemit walks a validated SOL25 AST and renders the canonical XML
// serialization of spec.md §4.6 (component C6).
package xmlemit

import (
	"strconv"

	"github.com/dekarrin/solc25/internal/syntax"
	"github.com/dekarrin/solc25/internal/xmlnode"
)

// Emit renders prog as the canonical pretty-indented XML document,
// including the leading XML declaration.
func Emit(prog *syntax.Program) string {
	root := xmlnode.New("program").WithAttr("language", "SOL25")
	if prog.HasDoc {
		root.WithAttr("description", prog.Doc)
	}
	for _, c := range prog.Classes {
		root.Append(emitClass(c))
	}
	return xmlnode.Render(root)
}

func emitClass(c *syntax.ClassDecl) *xmlnode.Element {
	el := xmlnode.New("class").WithAttr("name", c.Name).WithAttr("parent", c.Parent)
	for _, m := range c.Methods {
		el.Append(emitMethod(m))
	}
	return el
}

func emitMethod(m *syntax.MethodDecl) *xmlnode.Element {
	el := xmlnode.New("method").WithAttr("selector", m.Selector)
	el.Append(emitBlock(m.Body))
	return el
}

func emitBlock(b *syntax.Block) *xmlnode.Element {
	el := xmlnode.New("block").WithAttr("arity", strconv.Itoa(len(b.Params)))
	for i, p := range b.Params {
		el.Append(xmlnode.New("parameter").WithAttr("name", p).WithAttr("order", strconv.Itoa(i+1)))
	}
	for i, a := range b.Stats {
		el.Append(emitAssign(a, i+1))
	}
	return el
}

func emitAssign(a *syntax.Assignment, order int) *xmlnode.Element {
	el := xmlnode.New("assign").WithAttr("order", strconv.Itoa(order))
	el.Append(xmlnode.New("var").WithAttr("name", a.Target))
	el.Append(xmlnode.New("expr").Append(emitExprChildren(a.Expr)...))
	return el
}

// emitExprChildren returns the node(s) that belong directly inside an <expr>
// element for e: either the receiver atom's content (empty message) or a
// single <send> (non-empty message), per spec.md §4.6's schema table.
func emitExprChildren(e *syntax.Expression) []xmlnode.Node {
	switch msg := e.Msg.(type) {
	case syntax.NoMessage:
		return emitAtomAsExprChild(e.Receiver)
	case syntax.UnaryMessage:
		return []xmlnode.Node{emitSend(e.Receiver, msg.Selector, nil)}
	case syntax.KeywordMessage:
		return []xmlnode.Node{emitSend(e.Receiver, msg.Selector(), msg.Args)}
	default:
		panic("unreachable: unknown message variant")
	}
}

func emitSend(receiver syntax.Atom, selector string, args []*syntax.Expression) *xmlnode.Element {
	send := xmlnode.New("send").WithAttr("selector", selector)
	send.Append(xmlnode.New("expr").Append(emitAtomAsExprChild(receiver)...))
	for i, arg := range args {
		argEl := xmlnode.New("arg").WithAttr("order", strconv.Itoa(i+1))
		argEl.Append(xmlnode.New("expr").Append(emitExprChildren(arg)...))
		send.Append(argEl)
	}
	return send
}

// emitAtomAsExprChild returns the node(s) an atom contributes directly
// inside an <expr> (or <send> receiver slot). NestedExpr unwraps into its
// containing expr rather than introducing a nested <expr> wrapper, per
// spec.md §4.6.
func emitAtomAsExprChild(atom syntax.Atom) []xmlnode.Node {
	switch v := atom.(type) {
	case syntax.IntLiteral:
		return []xmlnode.Node{xmlnode.New("literal").WithAttr("class", "Integer").WithAttr("value", v.Digits)}
	case syntax.StrLiteral:
		return []xmlnode.Node{xmlnode.New("literal").WithAttr("class", "String").WithAttr("value", v.Raw)}
	case syntax.VarRef:
		switch v.Name {
		case "nil":
			return []xmlnode.Node{xmlnode.New("literal").WithAttr("class", "Nil").WithAttr("value", "nil")}
		case "true":
			return []xmlnode.Node{xmlnode.New("literal").WithAttr("class", "True").WithAttr("value", "true")}
		case "false":
			return []xmlnode.Node{xmlnode.New("literal").WithAttr("class", "False").WithAttr("value", "false")}
		default:
			return []xmlnode.Node{xmlnode.New("var").WithAttr("name", v.Name)}
		}
	case syntax.ClassRef:
		return []xmlnode.Node{xmlnode.New("literal").WithAttr("class", "class").WithAttr("value", v.Name)}
	case syntax.NestedExpr:
		return emitExprChildren(v.Inner)
	case syntax.BlockExpr:
		return []xmlnode.Node{emitBlock(v.Block)}
	default:
		panic("unreachable: unknown atom variant")
	}
}
