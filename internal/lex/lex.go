package lex

import (
	"fmt"
	"regexp"
	"strings"
)

// Error is returned by Scan when a byte in the input cannot start any known
// token class. It carries the position for use in the diagnostic the driver
// prints.
type Error struct {
	Line     int
	LinePos  int
	FullLine string
	Byte     byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("line %d:%d: unrecognized character %q", e.Line, e.LinePos, e.Byte)
}

type patAct struct {
	class Class
	pat   *regexp.Regexp
}

// Scanner holds the ordered table of (pattern, class) pairs tried at each
// position of the input, longest match wins, ties broken by registration
// order. Whitespace and comments are recognized but not retained in the
// returned token stream; the caller that needs the first comment's contents
// (the doc-comment extractor, C5) scans the raw source independently, as
// specified in spec.md §4.5.
type Scanner struct {
	table []patAct
}

// New builds the fixed Scanner for SOL25 source (spec.md §4.1). Patterns are
// registered in the same declarative, longest-match style as the teacher's
// ictiobus-generated lexer tables (tunascript/fe/lexer.ict.go), collapsed
// into a single eager pass since SOL25 has no lexer states.
func New() *Scanner {
	s := &Scanner{}
	s.register(CID, `[A-Z][A-Za-z0-9]*`)
	s.register(IDColon, `[a-z_][A-Za-z0-9_]*:`)
	s.register(ID, `[a-z_][A-Za-z0-9_]*`)
	s.register(ColonID, `:[a-z_][A-Za-z0-9_]*`)
	s.register(Int, `0|[+-]?[1-9][0-9]*`)
	s.register(Str, `'(?:[^'\\\n]|\\['\\n])*'`)
	s.register(Comment, `"[^"]*"`)
	s.register(Assign, `:=`)
	s.register(LBrace, `\{`)
	s.register(RBrace, `\}`)
	s.register(LBracket, `\[`)
	s.register(RBracket, `\]`)
	s.register(LParen, `\(`)
	s.register(RParen, `\)`)
	s.register(Pipe, `\|`)
	s.register(Dot, `\.`)
	s.register(Colon, `:`)
	return s
}

func (s *Scanner) register(class Class, pat string) {
	compiled := regexp.MustCompile(`^(?:` + pat + `)`)
	s.table = append(s.table, patAct{class: class, pat: compiled})
}

// Scan tokenizes the entirety of src, returning the token stream in order
// (whitespace and comments discarded) or the first lexical error encountered.
// Input is consumed eagerly in one pass, per spec.md §5.
func (s *Scanner) Scan(src []byte) ([]Token, error) {
	text := string(src)
	lines := strings.Split(text, "\n")

	var toks []Token
	line, col := 1, 1
	i := 0
	for i < len(text) {
		remaining := text[i:]

		if r := remaining[0]; r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			if r == '\n' {
				line++
				col = 1
			} else {
				col++
			}
			i++
			continue
		}

		class, matched := s.longestMatch(remaining)
		if matched == "" {
			return nil, &Error{Line: line, LinePos: col, FullLine: currentLine(lines, line), Byte: remaining[0]}
		}

		// Disambiguate "ID immediately followed by ':='" from a keyword
		// selector fragment: ID_COLON is never followed by '=' in valid
		// SOL25, so if the match is ID_COLON and
		// the next byte is '=', the colon belongs to the assignment operator
		// instead.
		if class == IDColon && len(remaining) > len(matched) && remaining[len(matched)] == '=' {
			matched = matched[:len(matched)-1]
			class = ID
		}

		if class != Comment {
			toks = append(toks, Token{
				class:    class,
				lexeme:   matched,
				line:     line,
				linePos:  col,
				fullLine: currentLine(lines, line),
			})
		}

		for _, r := range matched {
			if r == '\n' {
				line++
				col = 1
			} else {
				col++
			}
		}
		i += len(matched)
	}

	toks = append(toks, Token{class: EndOfText, line: line, linePos: col, fullLine: currentLine(lines, line)})
	return toks, nil
}

func (s *Scanner) longestMatch(remaining string) (Class, string) {
	var bestClass Class
	var best string
	for _, pa := range s.table {
		m := pa.pat.FindString(remaining)
		if m == "" {
			continue
		}
		if len(m) > len(best) {
			best = m
			bestClass = pa.class
		}
	}
	return bestClass, best
}

func currentLine(lines []string, line int) string {
	idx := line - 1
	if idx < 0 || idx >= len(lines) {
		return ""
	}
	return lines[idx]
}
