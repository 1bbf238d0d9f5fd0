/*
File    : msl/object/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package object holds the Value tagged union together with the three heap
// entity kinds (Object, Array, Function) and the mark-and-sweep Heap that
// owns them. All four live in one package — unlike C++, Go has no forward
// declarations, and Value/Heap/Object/Array/Function form one mutually
// referential cluster, so splitting them across packages would force an
// import cycle (see DESIGN.md).
package object

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind identifies which variant of the tagged union a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindFunction
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a cheaply-copyable tagged union. Handles to heap entities
// (Function/Object/Array) are non-owning: the Heap owns lifetime, Values
// merely observe (core spec §3).
type Value struct {
	kind   Kind
	bval   bool
	nval   float64
	sval   string
	object *Obj
	array  *Arr
	fn     *Fn
}

// Null is the singleton null value.
var Null = Value{kind: KindNull}

func Bool(b bool) Value   { return Value{kind: KindBoolean, bval: b} }
func Number(n float64) Value { return Value{kind: KindNumber, nval: n} }
func String(s string) Value  { return Value{kind: KindString, sval: s} }

func ObjectValue(o *Obj) Value   { return Value{kind: KindObject, object: o} }
func ArrayValue(a *Arr) Value    { return Value{kind: KindArray, array: a} }
func FunctionValue(f *Fn) Value  { return Value{kind: KindFunction, fn: f} }

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool     { return v.kind == KindNull }
func (v Value) IsBoolean() bool  { return v.kind == KindBoolean }
func (v Value) IsNumber() bool   { return v.kind == KindNumber }
func (v Value) IsString() bool   { return v.kind == KindString }
func (v Value) IsFunction() bool { return v.kind == KindFunction }
func (v Value) IsObject() bool   { return v.kind == KindObject }
func (v Value) IsArray() bool    { return v.kind == KindArray }

func (v Value) AsBool() bool       { return v.bval }
func (v Value) AsNumber() float64  { return v.nval }
func (v Value) AsString() string   { return v.sval }
func (v Value) AsObject() *Obj     { return v.object }
func (v Value) AsArray() *Arr      { return v.array }
func (v Value) AsFunction() *Fn    { return v.fn }

// ToBoolean implements the core spec §4.3 Boolean coercion table.
func (v Value) ToBoolean() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBoolean:
		return v.bval
	case KindNumber:
		return v.nval != 0
	case KindString:
		return len(v.sval) > 0
	case KindObject:
		// Open Question #2 (DESIGN.md): behaviorally "true when non-empty",
		// the source's isEmpty() naming inverted, kept correct here.
		return v.object != nil && len(v.object.props) > 0
	case KindFunction:
		return true
	case KindArray:
		return v.array != nil && len(v.array.elems) > 0
	default:
		return false
	}
}

// ToNumber implements the core spec §4.3 Numeric coercion table.
func (v Value) ToNumber() float64 {
	switch v.kind {
	case KindNull:
		return 0
	case KindBoolean:
		if v.bval {
			return 1
		}
		return 0
	case KindNumber:
		return v.nval
	case KindString:
		return parseNumberPrefix(v.sval)
	default:
		return math.NaN()
	}
}

// ToString implements the core spec §4.3 String coercion table.
func (v Value) ToString() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBoolean:
		if v.bval {
			return "true"
		}
		return "false"
	case KindNumber:
		return strconv.FormatFloat(v.nval, 'f', 6, 64)
	case KindString:
		return v.sval
	case KindFunction:
		return "Function"
	case KindObject:
		return v.object.toString()
	case KindArray:
		return v.array.toString()
	default:
		return ""
	}
}

// parseNumberPrefix mirrors std::stod's behavior (original_source's
// value.cpp numeric coercion): skip leading whitespace, then parse the
// longest leading substring that forms a valid float, ignoring whatever
// trailing text follows ("3.14abc" -> 3.14, "42 people" -> 42). Returns NaN
// if no such prefix exists.
func parseNumberPrefix(s string) float64 {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r' || s[i] == '\v' || s[i] == '\f') {
		i++
	}
	start := i

	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digitsStart := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	hasIntDigits := i > digitsStart

	hasFracDigits := false
	if i < len(s) && s[i] == '.' {
		dotPos := i
		i++
		fracStart := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		hasFracDigits = i > fracStart
		if !hasFracDigits {
			i = dotPos
		}
	}

	if !hasIntDigits && !hasFracDigits {
		return math.NaN()
	}
	end := i

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		expPos := i
		i++
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expDigitsStart := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i > expDigitsStart {
			end = i
		} else {
			i = expPos
		}
	}

	n, err := strconv.ParseFloat(s[start:end], 64)
	if err != nil {
		return math.NaN()
	}
	return n
}

// Add implements `+`: string concatenation if either operand is a String,
// numeric addition otherwise (core spec §4.3).
func Add(a, b Value) Value {
	if a.kind == KindString || b.kind == KindString {
		return String(a.ToString() + b.ToString())
	}
	return Number(a.ToNumber() + b.ToNumber())
}

// Sub/Mul/Div/Mod coerce both operands to number; Mod is IEEE remainder
// (fmod), Div follows IEEE division-by-zero rules.
func Sub(a, b Value) Value { return Number(a.ToNumber() - b.ToNumber()) }
func Mul(a, b Value) Value { return Number(a.ToNumber() * b.ToNumber()) }
func Div(a, b Value) Value { return Number(a.ToNumber() / b.ToNumber()) }
func Mod(a, b Value) Value { return Number(math.Mod(a.ToNumber(), b.ToNumber())) }

// Equal implements `==`. Two Objects/Arrays/Functions compare by handle
// identity, two Strings compare lexicographically (correctly — Open Question
// #1 in DESIGN.md, the source has this inverted), two Nulls are equal, two
// Booleans compare by value, everything else numerically.
func Equal(a, b Value) bool {
	if a.kind == KindString && b.kind == KindString {
		return a.sval == b.sval
	}
	if a.kind == KindObject && b.kind == KindObject {
		return a.object == b.object
	}
	if a.kind == KindArray && b.kind == KindArray {
		return a.array == b.array
	}
	if a.kind == KindFunction && b.kind == KindFunction {
		return a.fn == b.fn
	}
	if a.kind == KindNull && b.kind == KindNull {
		return true
	}
	if a.kind == KindBoolean && b.kind == KindBoolean {
		return a.bval == b.bval
	}
	return a.ToNumber() == b.ToNumber()
}

// Less, LessEqual, Greater, and GreaterEqual implement `<`,`<=`,`>`,`>=`:
// lexicographic when both operands are strings, a direct numeric comparison
// otherwise. Each is independent rather than routed through a 3-way compare,
// matching original_source/src/value.cpp's per-operator `toNumber() < / <= /
// > / >= right.toNumber()` structure — IEEE-754 defines a numeric comparison
// against NaN (e.g. a non-numeric String, or a Function/Object/Array operand)
// as false on every one of the four operators, which a collapsed -1/0/1
// result cannot represent.
func Less(a, b Value) bool {
	if a.kind == KindString && b.kind == KindString {
		return strings.Compare(a.sval, b.sval) < 0
	}
	return a.ToNumber() < b.ToNumber()
}

func LessEqual(a, b Value) bool {
	if a.kind == KindString && b.kind == KindString {
		return strings.Compare(a.sval, b.sval) <= 0
	}
	return a.ToNumber() <= b.ToNumber()
}

func Greater(a, b Value) bool {
	if a.kind == KindString && b.kind == KindString {
		return strings.Compare(a.sval, b.sval) > 0
	}
	return a.ToNumber() > b.ToNumber()
}

func GreaterEqual(a, b Value) bool {
	if a.kind == KindString && b.kind == KindString {
		return strings.Compare(a.sval, b.sval) >= 0
	}
	return a.ToNumber() >= b.ToNumber()
}

// Not implements unary `!`.
func Not(v Value) Value { return Bool(!v.ToBoolean()) }

// Negate implements unary `-`.
func Negate(v Value) Value { return Number(-v.ToNumber()) }

// Positive implements unary `+`.
func Positive(v Value) Value { return Number(v.ToNumber()) }

func (v Value) GoString() string {
	return fmt.Sprintf("Value{%s %q}", v.kind, v.ToString())
}
