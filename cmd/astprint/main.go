/*
File    : msl/cmd/astprint/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command astprint is a debug-only tool that lexes and parses its argument
// (or stdin) and prints the resulting AST with ast.Print — the "pretty-
// printing of the AST for debug" collaborator named as explicitly out of
// core scope. Adapted from the teacher's main.go/print_visitor.go, which
// drove the same PrintingVisitor over a handful of hardcoded expressions.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/msl/ast"
	"github.com/akashmaji946/msl/lexer"
	"github.com/akashmaji946/msl/parser"
	"github.com/akashmaji946/msl/token"
)

func main() {
	var src []byte
	var err error

	if len(os.Args) > 1 {
		src, err = os.ReadFile(os.Args[1])
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "astprint: %v\n", err)
		os.Exit(1)
	}

	diags := &token.Diagnostics{}
	toks := lexer.New(string(src), diags).Lex()
	prog, err := parser.New(toks, diags).Parse()
	for _, d := range diags.Errors() {
		fmt.Fprintln(os.Stderr, d)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Print(ast.Print(prog))
}
