// Package doccomment extracts the first comment payload from raw SOL25
// source text (spec.md §4.5, component C5). It runs independently of
// lexing/parsing, directly against the source bytes.
package doccomment

import "strings"

// Extract scans src for the first substring delimited by double quotes and
// returns its contents with the delimiters stripped. Multi-line comments are
// preserved verbatim. If no comment is present, Extract returns the
// sentinel "none".
func Extract(src []byte) string {
	text := string(src)
	start := strings.IndexByte(text, '"')
	if start == -1 {
		return "none"
	}
	end := strings.IndexByte(text[start+1:], '"')
	if end == -1 {
		return "none"
	}
	return text[start+1 : start+1+end]
}
