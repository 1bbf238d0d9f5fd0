/*
File    : msl/object/entities.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import (
	"strings"

	"github.com/akashmaji946/msl/ast"
)

// entity is implemented by every heap-tracked kind (Obj, Arr, Fn). It lets
// the Heap's mark phase traverse a mixed live set polymorphically without
// the virtual-dispatch hierarchy the source uses (original_source's
// heap.cpp does this with dynamic_cast<Array*>; here it's a closed set of
// three concrete types behind one small interface).
type entity interface {
	isMarked() bool
	setMarked(bool)
	// children returns every heap-kind Value directly reachable from this
	// entity, for the mark phase's gray-queue expansion.
	children() []Value
}

// Obj is the heap Object entity: a string-to-Value mapping. Missing key on
// read yields Null; insertion order is irrelevant to storage (core spec
// §3), but toString()'s key order must be deterministic across runs (core
// spec §8) even though Go's map iteration order is randomized — so
// toString sorts keys, a deliberate adaptation.
type Obj struct {
	props  map[string]Value
	marked bool
}

func newObj() *Obj { return &Obj{props: make(map[string]Value)} }

// Get returns the Value at key, or Null if absent.
func (o *Obj) Get(key string) Value {
	if v, ok := o.props[key]; ok {
		return v
	}
	return Null
}

// Set stores value under key, overwriting any existing entry.
func (o *Obj) Set(key string, value Value) {
	o.props[key] = value
}

// Len reports the number of properties, used by ToBoolean's non-empty check.
func (o *Obj) Len() int { return len(o.props) }

func (o *Obj) isMarked() bool    { return o.marked }
func (o *Obj) setMarked(m bool)  { o.marked = m }
func (o *Obj) children() []Value {
	out := make([]Value, 0, len(o.props))
	for _, v := range o.props {
		out = append(out, v)
	}
	return out
}

func (o *Obj) toString() string {
	keys := make([]string, 0, len(o.props))
	for k := range o.props {
		keys = append(keys, k)
	}
	sortStrings(keys)
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(o.props[k].ToString())
	}
	b.WriteByte('}')
	return b.String()
}

// sortStrings is a tiny insertion sort; avoids pulling in "sort" for a
// handful of property keys.
func sortStrings(xs []string) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1] > xs[j]; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}

// Arr is the heap Array entity: an ordered, index-addressed sequence.
type Arr struct {
	elems  []Value
	marked bool
}

func newArr() *Arr { return &Arr{} }

// Len reports the array's length.
func (a *Arr) Len() int { return len(a.elems) }

// At returns the element at i and whether i was in range.
func (a *Arr) At(i int) (Value, bool) {
	if i < 0 || i >= len(a.elems) {
		return Null, false
	}
	return a.elems[i], true
}

// Set overwrites the element at i; reports whether i was in range.
func (a *Arr) Set(i int, v Value) bool {
	if i < 0 || i >= len(a.elems) {
		return false
	}
	a.elems[i] = v
	return true
}

// Append grows the array by one element.
func (a *Arr) Append(v Value) { a.elems = append(a.elems, v) }

func (a *Arr) isMarked() bool   { return a.marked }
func (a *Arr) setMarked(m bool) { a.marked = m }
func (a *Arr) children() []Value {
	out := make([]Value, len(a.elems))
	copy(out, a.elems)
	return out
}

func (a *Arr) toString() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(v.ToString())
	}
	b.WriteByte(']')
	return b.String()
}

// Fn is the heap Function entity: either a user function holding a
// captured body (owned by the parent Program tree, not by the Fn) and an
// ordered parameter-name list, or a built-in. Per core spec §3's "Note on
// closures", Fn carries no captured environment — see DESIGN.md Open
// Question #5.
type Fn struct {
	Name     string
	Params   []string
	Body     *ast.BlockStatement // nil for built-ins
	Native   func(args []Value) Value
	Variadic bool

	marked bool
}

func (f *Fn) IsNative() bool { return f.Native != nil }

func (f *Fn) isMarked() bool   { return f.marked }
func (f *Fn) setMarked(m bool) { f.marked = m }

// children returns nothing: Function bodies contain AST only, which is not
// on the heap and contributes nothing to the mark phase (core spec §4.4).
func (f *Fn) children() []Value { return nil }
