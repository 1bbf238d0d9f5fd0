/*
File    : msl/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/msl/ast"
	"github.com/akashmaji946/msl/object"
	"github.com/akashmaji946/msl/token"
)

// evalExpr dispatches on concrete expression type (core spec §9).
func (e *Evaluator) evalExpr(expr ast.Expression) (object.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return e.evalLiteral(n), nil
	case *ast.Identifier:
		return e.evalIdentifier(n)
	case *ast.BinaryExpression:
		return e.evalBinary(n)
	case *ast.UnaryExpression:
		return e.evalUnary(n)
	case *ast.LogicalExpression:
		return e.evalLogical(n)
	case *ast.UpdateExpression:
		return e.evalUpdate(n)
	case *ast.AssignmentExpression:
		return e.evalAssignment(n)
	case *ast.FunctionExpression:
		return e.evalFunctionExpression(n), nil
	case *ast.CallExpression:
		return e.evalCall(n)
	case *ast.MemberExpression:
		return e.evalMember(n)
	case *ast.ArrayMemberExpression:
		return e.evalArrayMember(n)
	case *ast.ObjectExpression:
		return e.evalObjectExpression(n)
	case *ast.ArrayExpression:
		return e.evalArrayExpression(n)
	case *ast.ParenthesizedExpression:
		return e.evalExpr(n.Inner)
	default:
		return object.Null, e.runtimeErrorf(expr.Pos(), "unhandled expression type %T", expr)
	}
}

func (e *Evaluator) evalLiteral(n *ast.Literal) object.Value {
	switch n.Kind {
	case ast.LiteralNull:
		return object.Null
	case ast.LiteralBool:
		return object.Bool(n.Bool)
	case ast.LiteralNumber:
		return object.Number(n.Number)
	case ast.LiteralString:
		return object.String(n.Str)
	default:
		return object.Null
	}
}

func (e *Evaluator) evalIdentifier(n *ast.Identifier) (object.Value, error) {
	v, ok := e.lookup(n.Name)
	if !ok {
		return object.Null, e.runtimeErrorf(n.Tok, "identifier not found: %s", n.Name)
	}
	return v, nil
}

func (e *Evaluator) evalBinary(n *ast.BinaryExpression) (object.Value, error) {
	left, err := e.evalExpr(n.Left)
	if err != nil {
		return object.Null, err
	}
	right, err := e.evalExpr(n.Right)
	if err != nil {
		return object.Null, err
	}

	switch n.Op {
	case token.Plus:
		return object.Add(left, right), nil
	case token.Minus:
		return object.Sub(left, right), nil
	case token.Star:
		return object.Mul(left, right), nil
	case token.Slash:
		return object.Div(left, right), nil
	case token.Percent:
		return object.Mod(left, right), nil
	case token.EqualEqual:
		return object.Bool(object.Equal(left, right)), nil
	case token.BangEqual:
		return object.Bool(!object.Equal(left, right)), nil
	case token.Greater:
		return object.Bool(object.Greater(left, right)), nil
	case token.GreaterEqual:
		return object.Bool(object.GreaterEqual(left, right)), nil
	case token.Less:
		return object.Bool(object.Less(left, right)), nil
	case token.LessEqual:
		return object.Bool(object.LessEqual(left, right)), nil
	default:
		return object.Null, e.runtimeErrorf(n.OpTok, "unhandled binary operator %s", n.Op)
	}
}

func (e *Evaluator) evalUnary(n *ast.UnaryExpression) (object.Value, error) {
	v, err := e.evalExpr(n.Right)
	if err != nil {
		return object.Null, err
	}
	switch n.Op {
	case token.Bang:
		return object.Not(v), nil
	case token.Minus:
		return object.Negate(v), nil
	case token.Plus:
		return object.Positive(v), nil
	default:
		return object.Null, e.runtimeErrorf(n.OpTok, "unhandled unary operator %s", n.Op)
	}
}

// evalLogical short-circuits and yields the actual operand Value, never a
// coerced Boolean (core spec §4.5).
func (e *Evaluator) evalLogical(n *ast.LogicalExpression) (object.Value, error) {
	left, err := e.evalExpr(n.Left)
	if err != nil {
		return object.Null, err
	}

	if n.Op == token.AmpAmp {
		if !left.ToBoolean() {
			return left, nil
		}
		return e.evalExpr(n.Right)
	}

	if left.ToBoolean() {
		return left, nil
	}
	return e.evalExpr(n.Right)
}
