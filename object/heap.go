/*
File    : msl/object/heap.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package object

import "github.com/akashmaji946/msl/ast"

// defaultThreshold is the live-set size above which Allocate runs a full
// collection before constructing the next entity (core spec §4.4: "initial
// threshold = 20 entities; a simple constant is acceptable").
const defaultThreshold = 20

// Heap owns every Object, Array, and Function; it is the single source of
// truth for heap-entity lifetime, grounded on original_source's heap.cpp.
type Heap struct {
	live      map[entity]struct{}
	gcEnabled bool
	threshold int

	// Roots is injected by the eval package after construction: it returns
	// every heap-kind Value reachable from the evaluator's variable Stack,
	// the GC's root set (core spec §4.4 step 1). Heap cannot import eval
	// (eval imports object), so this functional field replaces the C++
	// original's direct Heap -> Interpreter& back-reference.
	Roots func() []Value
}

// New creates an empty Heap with GC enabled and the default threshold.
func New() *Heap {
	return &Heap{
		live:      make(map[entity]struct{}),
		gcEnabled: true,
		threshold: defaultThreshold,
	}
}

// SetThreshold overrides the allocation-time collection trigger; used by
// tests that force a collection (core spec §8: "GC triggered mid-array-
// literal (force threshold to 1)").
func (h *Heap) SetThreshold(n int) { h.threshold = n }

// EnableGC / DisableGC toggle a single boolean; while disabled, Allocate
// skips collection. Used around multi-step construction of an aggregate
// literal so partially constructed objects cannot be reclaimed mid-
// expression (core spec §4.4).
func (h *Heap) EnableGC()  { h.gcEnabled = true }
func (h *Heap) DisableGC() { h.gcEnabled = false }

// GCEnabled reports the current toggle state.
func (h *Heap) GCEnabled() bool { return h.gcEnabled }

// LiveCount reports the number of entities currently in the live set.
func (h *Heap) LiveCount() int { return len(h.live) }

func (h *Heap) maybeCollect() {
	if h.gcEnabled && len(h.live) > h.threshold {
		h.Collect()
	}
}

func (h *Heap) track(e entity) {
	h.live[e] = struct{}{}
}

// NewObject allocates a fresh, empty Object on the heap.
func (h *Heap) NewObject() *Obj {
	h.maybeCollect()
	o := newObj()
	h.track(o)
	return o
}

// NewArray allocates a fresh, empty Array on the heap.
func (h *Heap) NewArray() *Arr {
	h.maybeCollect()
	a := newArr()
	h.track(a)
	return a
}

// NewFunction allocates a user function from its parameter names and body.
func (h *Heap) NewFunction(name string, params []string, body *ast.BlockStatement) *Fn {
	h.maybeCollect()
	f := &Fn{Name: name, Params: params, Body: body}
	h.track(f)
	return f
}

// NewNativeFunction allocates a built-in; its argument-count check is
// waived when variadic is true (core spec §4.7).
func (h *Heap) NewNativeFunction(name string, variadic bool, native func(args []Value) Value) *Fn {
	h.maybeCollect()
	f := &Fn{Name: name, Variadic: variadic, Native: native}
	h.track(f)
	return f
}

// Collect runs one explicit full mark-and-sweep cycle.
func (h *Heap) Collect() {
	h.mark()
	h.sweep()
}

// mark paints every entity reachable from the roots; the side effect is
// each reachable entity's marked flag being set.
func (h *Heap) mark() {
	var queue []entity
	seen := make(map[entity]bool)

	push := func(v Value) {
		e := entityOf(v)
		if e == nil || seen[e] {
			return
		}
		seen[e] = true
		queue = append(queue, e)
	}

	if h.Roots != nil {
		for _, v := range h.Roots() {
			push(v)
		}
	}

	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if e.isMarked() {
			continue
		}
		e.setMarked(true)
		for _, child := range e.children() {
			push(child)
		}
	}
}

// sweep destroys every unmarked entity and unmarks every survivor.
func (h *Heap) sweep() {
	for e := range h.live {
		if !e.isMarked() {
			delete(h.live, e)
			continue
		}
		e.setMarked(false)
	}
}

// entityOf returns the heap entity a Value refers to, or nil for non-heap
// kinds (Null/Boolean/Number/String).
func entityOf(v Value) entity {
	switch v.kind {
	case KindObject:
		return v.object
	case KindArray:
		return v.array
	case KindFunction:
		return v.fn
	default:
		return nil
	}
}
