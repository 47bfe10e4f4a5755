// Package frontend wires the lex/parse/syntax/sema/xmlemit stages into a
// single pipeline and maps each stage's failure to the exit code table of
// spec.md §6 (component C7, the "driver / error router").
package frontend

import (
	"fmt"
	"io"

	"github.com/dekarrin/solc25/internal/doccomment"
	"github.com/dekarrin/solc25/internal/lex"
	"github.com/dekarrin/solc25/internal/parse"
	"github.com/dekarrin/solc25/internal/sema"
	"github.com/dekarrin/solc25/internal/syntax"
	"github.com/dekarrin/solc25/internal/xmlemit"
)

// Exit codes, spec.md §6. The semantic codes are carried by sema.Error
// values; these are the codes this package itself assigns, by the stage that
// failed (lex.Error and parse.Error carry no code of their own).
const (
	ExitSuccess   = 0
	ExitBadArgs   = 10
	ExitInputIO   = 11
	ExitLexical   = 21
	ExitSyntactic = 22
	ExitInternal  = 99
)

// Run executes the full pipeline: read all of in, lex, parse, build the AST,
// extract the doc comment, analyze, emit XML, and write it to out. It writes
// exactly one diagnostic line to errOut on failure and never writes partial
// output to out (spec.md §5's single-pass, short-circuit ordering). The
// return value is the process exit code.
func Run(in io.Reader, out, errOut io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(errOut, "internal error: %v\n", r)
			code = ExitInternal
		}
	}()

	src, err := io.ReadAll(in)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return ExitInputIO
	}

	toks, err := lex.New().Scan(src)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return ExitLexical
	}

	tree, err := parse.Parse(toks)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return ExitSyntactic
	}

	prog, err := syntax.Build(tree)
	if err != nil {
		// Build only fails on a parse tree shape it doesn't recognize, which
		// a conforming parser never produces; treat it as an internal error
		// rather than attributing it to the source text.
		fmt.Fprintf(errOut, "error: %s\n", err)
		return ExitInternal
	}
	prog.SetDoc(doccomment.Extract(src))

	if err := sema.Analyze(prog); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitCodeOf(err)
	}

	doc := xmlemit.Emit(prog)
	if _, err := io.WriteString(out, doc); err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return ExitInputIO
	}

	return ExitSuccess
}

func exitCodeOf(err error) int {
	if semaErr, ok := err.(*sema.Error); ok {
		return semaErr.Code
	}
	return ExitInternal
}
