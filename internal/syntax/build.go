package syntax

import (
	"fmt"
	"strings"

	"github.com/dekarrin/solc25/internal/parse"
)

// Build folds a concrete parse tree produced by internal/parse into the
// typed AST of this package, one function per grammar rule (spec.md §4.3).
// The resulting Program has no doc string attached; call SetDoc with the
// output of the doc-comment extractor (C5) separately.
func Build(tree *parse.Tree) (*Program, error) {
	prog := &Program{}
	for _, c := range tree.Children {
		cd, err := buildClassDef(c)
		if err != nil {
			return nil, err
		}
		prog.Classes = append(prog.Classes, cd)
	}
	return prog, nil
}

func buildClassDef(t *parse.Tree) (*ClassDecl, error) {
	cd := &ClassDecl{
		Name:   t.Children[1].Source.Lexeme(),
		Parent: t.Children[2].Source.Lexeme(),
	}
	for _, c := range t.Children[3:] {
		m, err := buildMethod(c)
		if err != nil {
			return nil, err
		}
		cd.Methods = append(cd.Methods, m)
	}
	return cd, nil
}

func buildMethod(t *parse.Tree) (*MethodDecl, error) {
	selector, arity := buildSelector(t.Children[0])
	body, err := buildBlock(t.Children[1])
	if err != nil {
		return nil, err
	}
	return &MethodDecl{Selector: selector, Arity: arity, Body: body}, nil
}

func buildSelector(t *parse.Tree) (selector string, arity int) {
	if t.Children[0].Symbol == "unary" {
		return t.Children[0].Source.Lexeme(), 0
	}
	var sb strings.Builder
	for _, frag := range t.Children {
		sb.WriteString(frag.Source.Lexeme())
	}
	return sb.String(), len(t.Children)
}

func buildBlock(t *parse.Tree) (*Block, error) {
	b := &Block{}
	paramsNode := t.Children[0]
	for _, p := range paramsNode.Children {
		// block_par strips the leading ':' (spec.md §4.3).
		b.Params = append(b.Params, p.Source.Lexeme()[1:])
	}
	for _, s := range t.Children[1:] {
		a, err := buildAssignment(s)
		if err != nil {
			return nil, err
		}
		b.Stats = append(b.Stats, a)
	}
	return b, nil
}

func buildAssignment(t *parse.Tree) (*Assignment, error) {
	target := t.Children[0].Source.Lexeme()
	ex, err := buildExpr(t.Children[1])
	if err != nil {
		return nil, err
	}
	return &Assignment{Target: target, Expr: ex}, nil
}

func buildExpr(t *parse.Tree) (*Expression, error) {
	atom, err := buildExprAtom(t.Children[0])
	if err != nil {
		return nil, err
	}
	msg := Message(NoMessage{})
	if len(t.Children) > 1 {
		msg, err = buildMessage(t.Children[1])
		if err != nil {
			return nil, err
		}
	}
	return &Expression{Receiver: atom, Msg: msg}, nil
}

func buildMessage(t *parse.Tree) (Message, error) {
	switch t.Symbol {
	case "unary_msg":
		return UnaryMessage{Selector: t.Children[0].Source.Lexeme()}, nil
	case "keyword_msg":
		km := KeywordMessage{}
		for _, part := range t.Children {
			km.Fragments = append(km.Fragments, part.Children[0].Source.Lexeme())
			arg, err := buildExprAtom(part.Children[1])
			if err != nil {
				return nil, err
			}
			km.Args = append(km.Args, &Expression{Receiver: arg, Msg: NoMessage{}})
		}
		return km, nil
	default:
		return nil, fmt.Errorf("internal error: unknown message node %q", t.Symbol)
	}
}

func buildExprAtom(t *parse.Tree) (Atom, error) {
	switch t.Symbol {
	case "nested":
		inner, err := buildExpr(t.Children[0])
		if err != nil {
			return nil, err
		}
		return NestedExpr{Inner: inner}, nil
	case "block_atom":
		blk, err := buildBlock(t.Children[0])
		if err != nil {
			return nil, err
		}
		return BlockExpr{Block: blk}, nil
	case "var_atom":
		return VarRef{Name: t.Children[0].Source.Lexeme()}, nil
	case "class_atom":
		return ClassRef{Name: t.Children[0].Source.Lexeme()}, nil
	case "int_atom":
		return IntLiteral{Digits: t.Children[0].Source.Lexeme()}, nil
	case "str_atom":
		raw := t.Children[0].Source.Lexeme()
		return StrLiteral{Raw: raw[1 : len(raw)-1]}, nil
	default:
		return nil, fmt.Errorf("internal error: unknown expr_atom node %q", t.Symbol)
	}
}
