/*
File    : msl/eval/eval_controls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/msl/ast"
	"github.com/akashmaji946/msl/object"
	"github.com/akashmaji946/msl/token"
)

// evalFunctionExpression allocates a user Function on every evaluation; it
// carries no captured environment (core spec §3's "Note on closures",
// DESIGN.md Open Question #5).
func (e *Evaluator) evalFunctionExpression(n *ast.FunctionExpression) object.Value {
	fn := e.Heap.NewFunction("", n.Params, n.Body)
	return object.FunctionValue(fn)
}

func (e *Evaluator) evalCall(n *ast.CallExpression) (object.Value, error) {
	callee, err := e.evalExpr(n.Callee)
	if err != nil {
		return object.Null, err
	}
	if !callee.IsFunction() {
		return object.Null, e.runtimeErrorf(n.Paren, "attempt to call a non-function")
	}

	args := make([]object.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.evalExpr(a)
		if err != nil {
			return object.Null, err
		}
		args[i] = v
	}
	return e.callFunction(callee.AsFunction(), args, n.Paren)
}

// callFunction implements core spec §4.7. A non-variadic callee whose
// argument count mismatches its parameter count fails before either native
// or user bodies run.
func (e *Evaluator) callFunction(fn *object.Fn, args []object.Value, paren token.Token) (object.Value, error) {
	if !fn.Variadic && len(args) != len(fn.Params) {
		return object.Null, e.runtimeErrorf(paren, "wrong number of arguments: expected %d, got %d", len(fn.Params), len(args))
	}

	if fn.IsNative() {
		return fn.Native(args), nil
	}

	env := Environment{}
	for i, p := range fn.Params {
		env[p] = args[i]
	}
	sig, err := e.execBlockWith(fn.Body, env)
	if err != nil {
		return object.Null, err
	}
	if sig.Kind == SignalReturn {
		return sig.Value, nil
	}
	if sig.Kind == SignalBreak || sig.Kind == SignalContinue {
		return object.Null, e.runtimeErrorf(paren, "%s outside of an enclosing loop", sig.Kind)
	}
	return object.Null, nil
}
