package doccomment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Extract(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{
			name:   "no comment present",
			input:  "class Main : Object { run [ | ] }",
			expect: "none",
		},
		{
			name:   "leading comment",
			input:  `"a tiny program" class Main : Object { run [ | ] }`,
			expect: "a tiny program",
		},
		{
			name:   "only the first comment counts",
			input:  `"first" class Main : Object { run [ "second" | ] }`,
			expect: "first",
		},
		{
			name:   "unterminated comment yields none",
			input:  `"unterminated class Main : Object { run [ | ] }`,
			expect: "none",
		},
		{
			name:   "empty comment",
			input:  `"" class Main : Object { run [ | ] }`,
			expect: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expect, Extract([]byte(tc.input)))
		})
	}
}
