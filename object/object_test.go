package object

import (
	"testing"

	"github.com/akashmaji946/msl/ast"
	"github.com/stretchr/testify/assert"
)

func TestObjGetSetAndToString(t *testing.T) {
	h := New()
	o := h.NewObject()
	o.Set("b", Number(2))
	o.Set("a", Number(1))
	assert.Equal(t, Number(1), o.Get("a"))
	assert.Equal(t, Null, o.Get("missing"))
	assert.Equal(t, "{a: 1.000000, b: 2.000000}", o.toString())
}

func TestArrAppendAtSet(t *testing.T) {
	h := New()
	a := h.NewArray()
	a.Append(Number(1))
	a.Append(Number(2))
	v, ok := a.At(0)
	assert.True(t, ok)
	assert.Equal(t, Number(1), v)
	assert.True(t, a.Set(1, Number(9)))
	assert.False(t, a.Set(5, Number(9)))
	_, ok = a.At(5)
	assert.False(t, ok)
}

func TestToBooleanOpenQuestion2(t *testing.T) {
	h := New()
	empty := h.NewObject()
	full := h.NewObject()
	full.Set("k", Null)
	assert.False(t, ObjectValue(empty).ToBoolean())
	assert.True(t, ObjectValue(full).ToBoolean())
}

func TestEqualStringsOpenQuestion1(t *testing.T) {
	assert.True(t, Equal(String("abc"), String("abc")))
	assert.False(t, Equal(String("abc"), String("xyz")))
}

func TestEqualHandleIdentity(t *testing.T) {
	h := New()
	a := h.NewObject()
	b := h.NewObject()
	assert.True(t, Equal(ObjectValue(a), ObjectValue(a)))
	assert.False(t, Equal(ObjectValue(a), ObjectValue(b)))
}

func TestCompareStringsLexicographic(t *testing.T) {
	assert.True(t, Less(String("a"), String("b")))
	assert.True(t, Greater(String("b"), String("a")))
	assert.True(t, LessEqual(String("a"), String("a")) && GreaterEqual(String("a"), String("a")))
	assert.False(t, Less(String("a"), String("a")))
}

func TestAddConcatenatesWhenEitherIsString(t *testing.T) {
	assert.Equal(t, String("1.000000true"), Add(Number(1), String("true")))
	assert.Equal(t, Number(3), Add(Number(1), Number(2)))
}

func TestNumberToStringSixDecimals(t *testing.T) {
	assert.Equal(t, "7.000000", Number(7).ToString())
}

func TestHeapAllocateTracksLiveCount(t *testing.T) {
	h := New()
	h.NewObject()
	h.NewArray()
	assert.Equal(t, 2, h.LiveCount())
}

func TestHeapCollectSweepsUnreachable(t *testing.T) {
	h := New()
	kept := h.NewObject()
	h.NewArray() // unreachable

	h.Roots = func() []Value { return []Value{ObjectValue(kept)} }
	h.Collect()

	assert.Equal(t, 1, h.LiveCount())
}

func TestHeapCollectFollowsChildren(t *testing.T) {
	h := New()
	inner := h.NewArray()
	outer := h.NewObject()
	outer.Set("child", ArrayValue(inner))

	h.Roots = func() []Value { return []Value{ObjectValue(outer)} }
	h.Collect()

	assert.Equal(t, 2, h.LiveCount())
}

func TestHeapAllocateTriggersCollectionPastThreshold(t *testing.T) {
	h := New()
	h.SetThreshold(1)
	h.Roots = func() []Value { return nil }

	h.NewObject()
	h.NewObject() // live set of 1 does not exceed threshold of 1: no collection
	h.NewObject() // live set of 2 exceeds threshold of 1, should collect first

	assert.Equal(t, 1, h.LiveCount())
}

func TestDisableGCSkipsCollection(t *testing.T) {
	h := New()
	h.SetThreshold(1)
	h.DisableGC()
	h.Roots = func() []Value { return nil }

	h.NewObject()
	h.NewObject()
	h.NewObject()

	assert.Equal(t, 3, h.LiveCount())
}

func TestNativeFunctionHasNoChildrenAndIsMarkedNative(t *testing.T) {
	h := New()
	f := h.NewNativeFunction("print", true, func(args []Value) Value { return Null })
	assert.True(t, f.IsNative())
	assert.Nil(t, f.children())
}

func TestUserFunctionChildrenIsNilEvenWithBody(t *testing.T) {
	h := New()
	f := h.NewFunction("f", []string{"x"}, &ast.BlockStatement{})
	assert.Nil(t, f.children())
}
