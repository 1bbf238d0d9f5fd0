/*
File    : msl/eval/eval_assignments.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/msl/ast"
	"github.com/akashmaji946/msl/object"
	"github.com/akashmaji946/msl/token"
)

// assignTo writes val to an assignable expression: Identifier, Member, or
// ArrayMember (core spec §4.2's assignment-target set, validated already
// by the parser).
func (e *Evaluator) assignTo(target ast.Expression, val object.Value) error {
	switch t := target.(type) {
	case *ast.Identifier:
		if !e.assignIdentifier(t.Name, val) {
			return e.runtimeErrorf(t.Tok, "identifier not found: %s", t.Name)
		}
		return nil

	case *ast.MemberExpression:
		obj, err := e.evalExpr(t.Object)
		if err != nil {
			return err
		}
		if !obj.IsObject() {
			return e.runtimeErrorf(t.Dot, "cannot assign property '%s' on a non-object", t.Name)
		}
		obj.AsObject().Set(t.Name, val)
		return nil

	case *ast.ArrayMemberExpression:
		arrVal, err := e.evalExpr(t.Array)
		if err != nil {
			return err
		}
		if !arrVal.IsArray() {
			return e.runtimeErrorf(t.Bracket, "cannot index-assign a non-array")
		}
		idxVal, err := e.evalExpr(t.Index)
		if err != nil {
			return err
		}
		if !idxVal.IsNumber() {
			return e.runtimeErrorf(t.Bracket, "array index must be a number")
		}
		if !arrVal.AsArray().Set(int(idxVal.AsNumber()), val) {
			return e.runtimeErrorf(t.Bracket, "array index out of range: %g", idxVal.AsNumber())
		}
		return nil

	default:
		return e.runtimeErrorf(target.Pos(), "invalid assignment target")
	}
}

func (e *Evaluator) evalAssignment(n *ast.AssignmentExpression) (object.Value, error) {
	rhs, err := e.evalExpr(n.Value)
	if err != nil {
		return object.Null, err
	}

	result := rhs
	if n.Op != token.Equal {
		cur, err := e.evalExpr(n.Target)
		if err != nil {
			return object.Null, err
		}
		switch n.Op {
		case token.PlusEqual:
			result = object.Add(cur, rhs)
		case token.MinusEqual:
			result = object.Sub(cur, rhs)
		case token.StarEqual:
			result = object.Mul(cur, rhs)
		case token.SlashEqual:
			result = object.Div(cur, rhs)
		case token.PercentEqual:
			result = object.Mod(cur, rhs)
		default:
			return object.Null, e.runtimeErrorf(n.OpTok, "unhandled assignment operator %s", n.Op)
		}
	}

	if err := e.assignTo(n.Target, result); err != nil {
		return object.Null, err
	}
	return result, nil
}

// evalUpdate implements `++`/`--`. The operand must read as a Number; the
// Open Question #4 inverted isNumber() check from the source is not
// reproduced here — see DESIGN.md.
func (e *Evaluator) evalUpdate(n *ast.UpdateExpression) (object.Value, error) {
	cur, err := e.evalExpr(n.Operand)
	if err != nil {
		return object.Null, err
	}
	if !cur.IsNumber() {
		return object.Null, e.runtimeErrorf(n.OpTok, "'%s' requires a numeric operand", n.Op)
	}

	delta := 1.0
	if n.Op == token.MinusMinus {
		delta = -1.0
	}
	updated := object.Number(cur.AsNumber() + delta)

	if err := e.assignTo(n.Operand, updated); err != nil {
		return object.Null, err
	}
	if n.Prefix {
		return updated, nil
	}
	return cur, nil
}
