/*
File    : msl/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks an *ast.Program against a variable Stack, allocating
// heap entities via object.Heap and raising Signal/RuntimeError control
// flow. Grounded on original_source/src/interpreter.hpp/cpp and adapted
// from the teacher's eval package, swapping its scope.Scope chain and
// std.GoMixObject result union for a flat Stack and the typed Signal
// result core spec §9 calls for.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/akashmaji946/msl/ast"
	"github.com/akashmaji946/msl/object"
)

// Evaluator holds the heap and the variable stack; it is the interpreter's
// single piece of mutable state (core spec §4.6).
type Evaluator struct {
	Heap   *object.Heap
	Stack  []Environment
	Writer io.Writer
	Reader *bufio.Reader
}

// New creates an Evaluator with stdout/stdin as its default streams.
func New() *Evaluator {
	e := &Evaluator{
		Heap:   object.New(),
		Writer: os.Stdout,
		Reader: bufio.NewReader(os.Stdin),
	}
	e.Heap.Roots = e.roots
	return e
}

// SetWriter redirects the Print builtin and print-statement output; used by
// tests to capture stdout into a buffer.
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// SetReader redirects the Read builtin's input source.
func (e *Evaluator) SetReader(r io.Reader) { e.Reader = bufio.NewReader(r) }

// Run executes prog against the evaluator's existing state, creating and
// installing the globals frame the first time it is called (core spec
// §4.6: "creates a globals Environment, installs built-in functions under
// their bare names"). A REPL calls Run once per input line, reusing the
// same Evaluator so globals persist across lines.
func (e *Evaluator) Run(prog *ast.Program) error {
	if len(e.Stack) == 0 {
		e.Stack = append(e.Stack, Environment{})
		e.installBuiltins()
	}

	for _, stmt := range prog.Statements {
		sig, err := e.execStatement(stmt)
		if err != nil {
			return err
		}
		if sig.Kind != SignalNone {
			return e.runtimeErrorf(stmt.Pos(), "%s outside of an enclosing loop or function", sig.Kind)
		}
	}
	return nil
}

func (e *Evaluator) pushFrame(env Environment) {
	e.Stack = append(e.Stack, env)
}

func (e *Evaluator) popFrame() {
	e.Stack = e.Stack[:len(e.Stack)-1]
}

// lookup searches the Stack from top to bottom (core spec §3).
func (e *Evaluator) lookup(name string) (object.Value, bool) {
	for i := len(e.Stack) - 1; i >= 0; i-- {
		if v, ok := e.Stack[i][name]; ok {
			return v, true
		}
	}
	return object.Null, false
}

// declare inserts name into the top frame; a duplicate name in that same
// frame fails (core spec §4.5's VariableDeclaration contract).
func (e *Evaluator) declare(name string, val object.Value) bool {
	top := e.Stack[len(e.Stack)-1]
	if _, exists := top[name]; exists {
		return false
	}
	top[name] = val
	return true
}

// assignIdentifier walks the Stack to the frame defining name and updates
// it in place; a missing name fails.
func (e *Evaluator) assignIdentifier(name string, val object.Value) bool {
	for i := len(e.Stack) - 1; i >= 0; i-- {
		if _, ok := e.Stack[i][name]; ok {
			e.Stack[i][name] = val
			return true
		}
	}
	return false
}

// roots is installed as the Heap's root-set provider: every heap-kind
// Value reachable from any Environment on the Stack (core spec §4.4 step
// 1). It is a method value, not a direct field reference, so it can be
// assigned to object.Heap.Roots without object importing eval.
func (e *Evaluator) roots() []object.Value {
	var out []object.Value
	for _, frame := range e.Stack {
		for _, v := range frame {
			out = append(out, v)
		}
	}
	return out
}
