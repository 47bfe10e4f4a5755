/*
Solc25 reads SOL25 source from standard input and writes its XML AST
serialization to standard output.

Usage:

	solc25 [-h | --help]

With no flags, solc25 reads all of standard input, compiles it through the
lexer, parser, AST builder, and static semantic analyzer, and writes the
resulting XML document to standard output. On the first failure, a single
diagnostic line is written to standard error and the process exits with the
code identifying the failing stage.

The flags are:

	-h, --help
		Print this usage message to standard output and exit 0.

No other flags or operands are recognised, and at most one argument is
accepted; anything else causes an immediate exit with code 10.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/solc25/internal/frontend"
	"github.com/spf13/pflag"
)

var returnCode int = frontend.ExitSuccess

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	flags := pflag.NewFlagSet("solc25", pflag.ContinueOnError)
	flags.Usage = func() {}
	flagHelp := flags.BoolP("help", "h", false, "Print usage information and exit")

	// Any unrecognised flag, or any operand, is a bad-CLI-arguments failure
	// (spec.md §5): no operands are ever valid, --help/-h are the only
	// recognised flags, and more than one argument is rejected.
	if len(os.Args) > 2 {
		fmt.Fprintln(os.Stderr, "error: solc25 takes at most one argument")
		returnCode = frontend.ExitBadArgs
		return
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		returnCode = frontend.ExitBadArgs
		return
	}
	if flags.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "error: solc25 takes no operands")
		returnCode = frontend.ExitBadArgs
		return
	}

	if *flagHelp {
		printUsage()
		return
	}

	returnCode = frontend.Run(os.Stdin, os.Stdout, os.Stderr)
}

func printUsage() {
	fmt.Fprintln(os.Stdout, "Usage: solc25 [-h | --help]")
	fmt.Fprintln(os.Stdout, "Reads SOL25 source from standard input, writes its XML AST to standard output.")
}
