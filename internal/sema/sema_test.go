package sema

import (
	"testing"

	"github.com/dekarrin/solc25/internal/lex"
	"github.com/dekarrin/solc25/internal/parse"
	"github.com/dekarrin/solc25/internal/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func analyze(t *testing.T, src string) error {
	t.Helper()
	toks, err := lex.New().Scan([]byte(src))
	require.NoError(t, err)
	tree, err := parse.Parse(toks)
	require.NoError(t, err)
	prog, err := syntax.Build(tree)
	require.NoError(t, err)
	return Analyze(prog)
}

func codeOf(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	var semaErr *Error
	require.ErrorAs(t, err, &semaErr)
	return semaErr.Code
}

func Test_Analyze(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		expectCode int // 0 means Analyze must return nil
	}{
		{
			name:       "minimal valid program",
			input:      "class Main : Object { run [ | ] }",
			expectCode: 0,
		},
		{
			name:       "empty program has no Main",
			input:      "",
			expectCode: CodeNoMainOrRun,
		},
		{
			name:       "Main present but run takes parameters",
			input:      "class Main : Object { run [ :x | ] }",
			expectCode: CodeBadArity,
		},
		{
			name:       "Main inherits from undefined class",
			input:      "class Main : Ghost { run [ | ] }",
			expectCode: CodeNoDefinition,
		},
		{
			name:       "cyclic inheritance",
			input:      "class A : B { } class B : A { } class Main : Object { run [ | ] }",
			expectCode: CodeOtherSem,
		},
		{
			name:       "arity mismatch between selector and block",
			input:      "class Main : Object { add:and: [ :a | ] run [ | ] }",
			expectCode: CodeBadArity,
		},
		{
			name:       "undefined variable",
			input:      "class Main : Object { run [ | x := y. ] }",
			expectCode: CodeNoDefinition,
		},
		{
			name:       "assignment to block parameter",
			input:      "class Main : Object { run [ | ] foo: [ :x | x := 1. ] }",
			expectCode: CodeCollision,
		},
		{
			name:       "class-side read on String subclass is valid",
			input:      "class Main : Object { run [ | s := String read. ] }",
			expectCode: 0,
		},
		{
			name:       "class-side read on non-String class",
			input:      "class Main : Object { run [ | s := Integer read. ] }",
			expectCode: CodeNoDefinition,
		},
		{
			name:       "class-side message other than new/from:/read",
			input:      "class Main : Object { run [ | s := Integer frobnicate. ] }",
			expectCode: CodeNoDefinition,
		},
		{
			name:       "duplicate method selector in a class",
			input:      "class Main : Object { run [ | ] run [ | ] }",
			expectCode: CodeOtherSem,
		},
		{
			name:       "class collides with builtin name",
			input:      "class Integer : Object { } class Main : Object { run [ | ] }",
			expectCode: CodeOtherSem,
		},
		{
			name:       "class redefined",
			input:      "class A : Object { } class A : Object { } class Main : Object { run [ | ] }",
			expectCode: CodeOtherSem,
		},
		{
			name:       "duplicate block parameters",
			input:      "class Main : Object { run [ | ] foo:bar: [ :z :z | ] }",
			expectCode: CodeOtherSem,
		},
		{
			name:       "reserved keyword as method selector",
			input:      "class Main : Object { run [ | ] self [ | ] }",
			expectCode: CodeSyntactic,
		},
		{
			name:       "reserved keyword as block parameter",
			input:      "class Main : Object { run [ | ] foo: [ :self | ] }",
			expectCode: CodeSyntactic,
		},
		{
			name:       "reserved keyword as assignment target",
			input:      "class Main : Object { run [ | self := 1. ] }",
			expectCode: CodeSyntactic,
		},
		{
			name:       "self and super are always visible",
			input:      "class Main : Object { run [ | x := self. y := super. ] }",
			expectCode: 0,
		},
		{
			name:       "global literals are always visible",
			input:      "class Main : Object { run [ | x := nil. y := true. z := false. ] }",
			expectCode: 0,
		},
		{
			name:       "variable visible after assignment, in same block",
			input:      "class Main : Object { run [ | x := 1. y := x. ] }",
			expectCode: 0,
		},
		{
			name:       "outer local visible inside nested block",
			input:      "class Main : Object { run [ | x := 1. b := [ | y := x. ]. ] }",
			expectCode: 0,
		},
		{
			name:       "undefined class reference",
			input:      "class Main : Object { run [ | x := Ghost new. ] }",
			expectCode: CodeNoDefinition,
		},
		{
			name:       "reserved selector on undefined receiver reports the selector, not the receiver",
			input:      "class Main : Object { run [ | y := x self. ] }",
			expectCode: CodeSyntactic,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := analyze(t, tc.input)
			if tc.expectCode == 0 {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tc.expectCode, codeOf(t, err))
		})
	}
}
