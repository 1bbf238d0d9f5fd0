/*
File    : msl/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the interpreter. The
REPL reads one line at a time, lexes/parses/evaluates it against a single
long-lived Evaluator so declarations from earlier lines stay visible, and
prints diagnostics in place rather than aborting the session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/msl/eval"
	"github.com/akashmaji946/msl/lexer"
	"github.com/akashmaji946/msl/parser"
	"github.com/akashmaji946/msl/token"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the static banner/prompt text shown at session start; all
// mutable interpreter state lives in the eval.Evaluator created by Start.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given banner/version/prompt text.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to msl!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop until '.exit', EOF, or Ctrl-C, returning nil on
// any of those three. It returns a non-nil error only when rl.Readline()
// fails for some other reason — a genuine stdin read failure — so the
// caller can tell that apart from an ordinary session end and exit non-zero
// (core spec §6: "exit code 0 normally, 1 on stdin read failure"). The
// reader parameter is accepted for interface symmetry with file-mode
// execution, matching the teacher's signature; readline reads from the
// controlling terminal directly.
func (r *Repl) Start(reader io.Reader, writer io.Writer) error {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		return err
	}
	defer rl.Close()

	evaluator := eval.New()
	evaluator.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == io.EOF || err == readline.ErrInterrupt {
				writer.Write([]byte("Good Bye!\n"))
				return nil
			}
			return err
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return nil
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line, evaluator)
	}
}

// executeWithRecovery lexes, parses, and evaluates line against evaluator,
// printing diagnostics or the RuntimeError message in red and otherwise
// staying silent on success — print/Print statements already produced
// whatever output the line has.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	diags := &token.Diagnostics{}
	toks := lexer.New(line, diags).Lex()
	prog, err := parser.New(toks, diags).Parse()
	if err != nil {
		redColor.Fprintf(writer, "[SYNTAX ERROR] %s\n", err)
		return
	}
	for _, d := range diags.Errors() {
		redColor.Fprintf(writer, "%s\n", d)
	}

	if err := evaluator.Run(prog); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
	}
}
