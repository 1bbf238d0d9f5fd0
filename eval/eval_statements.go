/*
File    : msl/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/msl/ast"
	"github.com/akashmaji946/msl/object"
)

// execStatement dispatches on the concrete node type — a tagged variant
// matched by switch, per core spec §9, rather than a virtual Execute
// method on the node.
func (e *Evaluator) execStatement(s ast.Statement) (Signal, error) {
	switch n := s.(type) {
	case *ast.BlockStatement:
		return e.execBlock(n)
	case *ast.ExpressionStatement:
		return e.execExpressionStatement(n)
	case *ast.VariableDeclaration:
		return e.execVariableDeclaration(n)
	case *ast.IfElseStatement:
		return e.execIfElse(n)
	case *ast.ForLoopStatement:
		return e.execForLoop(n)
	case *ast.WhileLoopStatement:
		return e.execWhileLoop(n)
	case *ast.DoWhileLoopStatement:
		return e.execDoWhileLoop(n)
	case *ast.BreakStatement:
		return Signal{Kind: SignalBreak}, nil
	case *ast.ContinueStatement:
		return Signal{Kind: SignalContinue}, nil
	case *ast.ReturnStatement:
		return e.execReturn(n)
	case *ast.PrintStatement:
		return e.execPrint(n)
	default:
		return Signal{}, e.runtimeErrorf(s.Pos(), "unhandled statement type %T", s)
	}
}

// execBlock pushes a fresh Environment, runs the block's statements in
// order, and pops on every exit path via defer (core spec §4.5, §5's
// scoped-acquisition requirement).
func (e *Evaluator) execBlock(b *ast.BlockStatement) (Signal, error) {
	return e.execBlockWith(b, Environment{})
}

// execBlockWith runs b's statements inside env as the pushed frame. A
// function call binds its parameters into env and passes it here directly
// rather than pushing an empty frame first (core spec §4.7 step 2: the
// callee's own block-execute protocol is what pushes the parameter frame).
func (e *Evaluator) execBlockWith(b *ast.BlockStatement, env Environment) (Signal, error) {
	e.pushFrame(env)
	defer e.popFrame()

	for _, stmt := range b.Statements {
		sig, err := e.execStatement(stmt)
		if err != nil || sig.Kind != SignalNone {
			return sig, err
		}
	}
	return Signal{}, nil
}

func (e *Evaluator) execExpressionStatement(s *ast.ExpressionStatement) (Signal, error) {
	_, err := e.evalExpr(s.Expr)
	return Signal{}, err
}

func (e *Evaluator) execVariableDeclaration(s *ast.VariableDeclaration) (Signal, error) {
	for _, d := range s.Declarators {
		val := object.Null
		if d.Initializer != nil {
			v, err := e.evalExpr(d.Initializer)
			if err != nil {
				return Signal{}, err
			}
			val = v
		}
		if !e.declare(d.Name, val) {
			return Signal{}, e.runtimeErrorf(d.NameTok, "identifier already declared in this scope: %s", d.Name)
		}
	}
	return Signal{}, nil
}

func (e *Evaluator) execIfElse(s *ast.IfElseStatement) (Signal, error) {
	cond, err := e.evalExpr(s.Condition)
	if err != nil {
		return Signal{}, err
	}
	if cond.ToBoolean() {
		return e.execStatement(s.Then)
	}
	if s.Else != nil {
		return e.execStatement(s.Else)
	}
	return Signal{}, nil
}

func (e *Evaluator) execReturn(s *ast.ReturnStatement) (Signal, error) {
	val := object.Null
	if s.Argument != nil {
		v, err := e.evalExpr(s.Argument)
		if err != nil {
			return Signal{}, err
		}
		val = v
	}
	return Signal{Kind: SignalReturn, Value: val}, nil
}

func (e *Evaluator) execPrint(s *ast.PrintStatement) (Signal, error) {
	v, err := e.evalExpr(s.Argument)
	if err != nil {
		return Signal{}, err
	}
	fmt.Fprintln(e.Writer, v.ToString())
	return Signal{}, nil
}
