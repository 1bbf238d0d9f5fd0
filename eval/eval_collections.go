/*
File    : msl/eval/eval_collections.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/msl/ast"
	"github.com/akashmaji946/msl/object"
)

// evalObjectExpression disables GC for the whole construction so a
// partially built Object can never be collected mid-literal, re-enabling
// on every exit path including an error from a property's initializer
// (core spec §4.5, §5).
func (e *Evaluator) evalObjectExpression(n *ast.ObjectExpression) (object.Value, error) {
	wasEnabled := e.Heap.GCEnabled()
	e.Heap.DisableGC()
	defer func() {
		if wasEnabled {
			e.Heap.EnableGC()
		}
	}()

	obj := e.Heap.NewObject()
	for i, key := range n.Keys {
		v, err := e.evalExpr(n.Values[i])
		if err != nil {
			return object.Null, err
		}
		obj.Set(key, v)
	}
	return object.ObjectValue(obj), nil
}

// evalArrayExpression applies the same GC-disable discipline as
// evalObjectExpression, for the same reason (core spec §4.5).
func (e *Evaluator) evalArrayExpression(n *ast.ArrayExpression) (object.Value, error) {
	wasEnabled := e.Heap.GCEnabled()
	e.Heap.DisableGC()
	defer func() {
		if wasEnabled {
			e.Heap.EnableGC()
		}
	}()

	arr := e.Heap.NewArray()
	for _, elem := range n.Elements {
		v, err := e.evalExpr(elem)
		if err != nil {
			return object.Null, err
		}
		arr.Append(v)
	}
	return object.ArrayValue(arr), nil
}

// evalMember is lenient: a non-Object receiver yields Null rather than a
// runtime error (core spec §4.5).
func (e *Evaluator) evalMember(n *ast.MemberExpression) (object.Value, error) {
	obj, err := e.evalExpr(n.Object)
	if err != nil {
		return object.Null, err
	}
	if !obj.IsObject() {
		return object.Null, nil
	}
	return obj.AsObject().Get(n.Name), nil
}

// evalArrayMember is strict: the receiver must be an Array and the index a
// Number, and an out-of-range index fails (core spec §4.5).
func (e *Evaluator) evalArrayMember(n *ast.ArrayMemberExpression) (object.Value, error) {
	arrVal, err := e.evalExpr(n.Array)
	if err != nil {
		return object.Null, err
	}
	if !arrVal.IsArray() {
		return object.Null, e.runtimeErrorf(n.Bracket, "indexing target is not an array")
	}

	idxVal, err := e.evalExpr(n.Index)
	if err != nil {
		return object.Null, err
	}
	if !idxVal.IsNumber() {
		return object.Null, e.runtimeErrorf(n.Bracket, "array index must be a number")
	}

	v, ok := arrVal.AsArray().At(int(idxVal.AsNumber()))
	if !ok {
		return object.Null, e.runtimeErrorf(n.Bracket, "array index out of range: %g", idxVal.AsNumber())
	}
	return v, nil
}
