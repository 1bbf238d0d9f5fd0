/*
File    : msl/cmd/msl/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command msl is the interpreter's entry point: no arguments starts a REPL,
// one positional argument runs that file, core spec §6's exit codes (0, 64,
// 65, 74) replace the teacher's uniform 0/1.
package main

import (
	"os"
	"strings"

	"github.com/akashmaji946/msl/eval"
	"github.com/akashmaji946/msl/lexer"
	"github.com/akashmaji946/msl/parser"
	"github.com/akashmaji946/msl/repl"
	"github.com/akashmaji946/msl/token"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	exitOK          = 0
	exitUsage       = 64
	exitCompileTime = 65
	exitFileOpen    = 74
)

var (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	license = "MIT"
	prompt  = "> "
	line    = "----------------------------------------------------------------"
	banner  = `
    ▄▄▄▄                ▄▄▄  ▄▄▄
  ██▀▀▀▀█               ███  ███
 ██         ▄████▄      ████████  ▄▄▄▄▄
 ██  ▄▄▄▄  ██▀  ▀██     ██ ██ ██  ██ ██
 ██  ▀▀██  ██    ██     ██ ▀▀ ██  ██ ██
  ██▄▄▄██  ▀██▄▄██▀     ██    ██  ██ ██
    ▀▀▀▀     ▀▀▀▀       ▀▀    ▀▀  ▀▀ ▀▀
`
)

var redColor = color.New(color.FgRed)

func main() {
	root := &cobra.Command{
		Use:           "msl [path]",
		Short:         "msl is the MSL scripting language interpreter",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				r := repl.NewRepl(banner, version, author, line, license, prompt)
				return r.Start(os.Stdin, os.Stdout)
			}
			return runFile(args[0])
		},
	}

	if err := root.Execute(); err != nil {
		if strings.Contains(err.Error(), "accepts at most") {
			redColor.Fprintf(os.Stderr, "[USAGE ERROR] %s\n", err)
			os.Exit(exitUsage)
		}
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

// runFile reads path, lexes and parses it, and if that succeeds, runs it
// against a fresh Evaluator — a single pass, no REPL-style line loop.
func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not open '%s': %v\n", path, err)
		os.Exit(exitFileOpen)
	}

	diags := &token.Diagnostics{}
	toks := lexer.New(string(src), diags).Lex()
	prog, err := parser.New(toks, diags).Parse()
	if err != nil || diags.HadError() {
		for _, d := range diags.Errors() {
			redColor.Fprintf(os.Stderr, "%s\n", d)
		}
		if err != nil {
			redColor.Fprintf(os.Stderr, "%s\n", err)
		}
		os.Exit(exitCompileTime)
	}

	e := eval.New()
	e.SetWriter(os.Stdout)
	if runErr := e.Run(prog); runErr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", runErr)
		os.Exit(1)
	}
	os.Exit(exitOK)
	return nil
}
