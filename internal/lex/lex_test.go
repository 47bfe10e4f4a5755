package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classesOf(toks []Token) []Class {
	var cs []Class
	for _, t := range toks {
		cs = append(cs, t.Class())
	}
	return cs
}

func Test_Scan(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []Class
	}{
		{
			name:   "empty input",
			input:  "",
			expect: []Class{EndOfText},
		},
		{
			name:   "class name",
			input:  "Main",
			expect: []Class{CID, EndOfText},
		},
		{
			name:   "unary identifier",
			input:  "run",
			expect: []Class{ID, EndOfText},
		},
		{
			name:   "keyword selector fragment",
			input:  "add:",
			expect: []Class{IDColon, EndOfText},
		},
		{
			name:   "block parameter",
			input:  ":x",
			expect: []Class{ColonID, EndOfText},
		},
		{
			name:   "assignment disambiguated from keyword fragment",
			input:  "x:=5",
			expect: []Class{ID, Assign, Int, EndOfText},
		},
		{
			name:   "keyword selector followed by space is not reclassified",
			input:  "add: 1",
			expect: []Class{IDColon, Int, EndOfText},
		},
		{
			name:   "positive and negative integers",
			input:  "0 -3 +4 10",
			expect: []Class{Int, Int, Int, Int, EndOfText},
		},
		{
			name:   "string literal with escaped quote",
			input:  `'it\'s here'`,
			expect: []Class{Str, EndOfText},
		},
		{
			name:   "comment discarded from stream",
			input:  `"a comment" Main`,
			expect: []Class{CID, EndOfText},
		},
		{
			name:   "full method skeleton",
			input:  "class Main : Object { run [ | x := 1. ] }",
			expect: []Class{
				ID, CID, Colon, CID, LBrace,
				ID, LBracket, Pipe, ID, Assign, Int, Dot, RBracket,
				RBrace, EndOfText,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			toks, err := New().Scan([]byte(tc.input))
			require.NoError(t, err)
			assert.Equal(t, tc.expect, classesOf(toks))
		})
	}
}

func Test_Scan_lexicalError(t *testing.T) {
	_, err := New().Scan([]byte("Main $ run"))
	require.Error(t, err)

	var lexErr *Error
	require.ErrorAs(t, err, &lexErr)
	assert.Equal(t, byte('$'), lexErr.Byte)
	assert.Equal(t, 1, lexErr.Line)
}

func Test_Scan_positionTracking(t *testing.T) {
	toks, err := New().Scan([]byte("Main\nrun"))
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, 1, toks[0].Line())
	assert.Equal(t, 2, toks[1].Line())
	assert.Equal(t, 1, toks[1].LinePos())
}
