package syntax

import (
	"testing"

	"github.com/dekarrin/solc25/internal/lex"
	"github.com/dekarrin/solc25/internal/parse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildFrom(t *testing.T, src string) *Program {
	t.Helper()
	toks, err := lex.New().Scan([]byte(src))
	require.NoError(t, err)
	tree, err := parse.Parse(toks)
	require.NoError(t, err)
	prog, err := Build(tree)
	require.NoError(t, err)
	return prog
}

func Test_Build_classAndMethodShape(t *testing.T) {
	prog := buildFrom(t, "class Main : Object { run [ | ] }")

	require.Len(t, prog.Classes, 1)
	c := prog.Classes[0]
	assert.Equal(t, "Main", c.Name)
	assert.Equal(t, "Object", c.Parent)

	require.Len(t, c.Methods, 1)
	m := c.Methods[0]
	assert.Equal(t, "run", m.Selector)
	assert.Equal(t, 0, m.Arity)
	assert.Empty(t, m.Body.Params)
	assert.Empty(t, m.Body.Stats)
}

func Test_Build_keywordSelectorArity(t *testing.T) {
	prog := buildFrom(t, "class Main : Object { add:and: [ :a :b | ] }")

	m := prog.Classes[0].Methods[0]
	assert.Equal(t, "add:and:", m.Selector)
	assert.Equal(t, 2, m.Arity)
	assert.Equal(t, []string{"a", "b"}, m.Body.Params)
}

func Test_Build_assignmentAndAtoms(t *testing.T) {
	prog := buildFrom(t, `class Main : Object { run [ | x := 1. y := 'hi'. z := x. c := Integer. ] }`)

	stats := prog.Classes[0].Methods[0].Body.Stats
	require.Len(t, stats, 4)

	assert.Equal(t, "x", stats[0].Target)
	require.Equal(t, AtomInt, stats[0].Expr.Receiver.Kind())
	assert.Equal(t, IntLiteral{Digits: "1"}, stats[0].Expr.Receiver)

	assert.Equal(t, "y", stats[1].Target)
	assert.Equal(t, StrLiteral{Raw: "hi"}, stats[1].Expr.Receiver)

	assert.Equal(t, "z", stats[2].Target)
	assert.Equal(t, VarRef{Name: "x"}, stats[2].Expr.Receiver)

	assert.Equal(t, "c", stats[3].Target)
	assert.Equal(t, ClassRef{Name: "Integer"}, stats[3].Expr.Receiver)
}

func Test_Build_unaryAndKeywordMessages(t *testing.T) {
	prog := buildFrom(t, `class Main : Object { run [ | x := 1 negate. y := 1 add: 2 and: 3. ] }`)

	stats := prog.Classes[0].Methods[0].Body.Stats

	unary, ok := stats[0].Expr.Msg.(UnaryMessage)
	require.True(t, ok)
	assert.Equal(t, "negate", unary.Selector)

	kw, ok := stats[1].Expr.Msg.(KeywordMessage)
	require.True(t, ok)
	assert.Equal(t, "add:and:", kw.Selector())
	require.Len(t, kw.Args, 2)
	assert.Equal(t, IntLiteral{Digits: "2"}, kw.Args[0].Receiver)
	assert.Equal(t, IntLiteral{Digits: "3"}, kw.Args[1].Receiver)
}

func Test_Build_nestedAndBlockAtoms(t *testing.T) {
	prog := buildFrom(t, `class Main : Object { run [ | x := (1 negate). y := [ :a | z := a. ]. ] }`)

	stats := prog.Classes[0].Methods[0].Body.Stats

	nested, ok := stats[0].Expr.Receiver.(NestedExpr)
	require.True(t, ok)
	assert.Equal(t, IntLiteral{Digits: "1"}, nested.Inner.Receiver)

	blk, ok := stats[1].Expr.Receiver.(BlockExpr)
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, blk.Block.Params)
	require.Len(t, blk.Block.Stats, 1)
	assert.Equal(t, "z", blk.Block.Stats[0].Target)
}

func Test_Program_SetDoc(t *testing.T) {
	p := &Program{}

	p.SetDoc("none")
	assert.False(t, p.HasDoc)
	assert.Empty(t, p.Doc)

	p.SetDoc("a class that does things")
	assert.True(t, p.HasDoc)
	assert.Equal(t, "a class that does things", p.Doc)
}

func Test_Program_Equal(t *testing.T) {
	a := buildFrom(t, "class Main : Object { run [ | x := 1. ] }")
	b := buildFrom(t, "class Main : Object { run [ | x := 1. ] }")
	c := buildFrom(t, "class Main : Object { run [ | x := 2. ] }")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func Test_Program_Copy_isIndependent(t *testing.T) {
	a := buildFrom(t, "class Main : Object { run [ | x := 1. ] }")
	b := a.Copy()

	require.True(t, a.Equal(b))
	b.Classes[0].Methods[0].Body.Stats[0].Target = "y"
	assert.False(t, a.Equal(b))
}
