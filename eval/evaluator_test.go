/*
File    : msl/eval/evaluator_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/msl/lexer"
	"github.com/akashmaji946/msl/object"
	"github.com/akashmaji946/msl/parser"
	"github.com/akashmaji946/msl/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run lexes, parses, and evaluates src against a fresh Evaluator, returning
// whatever its Print/print output produced.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	diags := &token.Diagnostics{}
	toks := lexer.New(src, diags).Lex()
	prog, err := parser.New(toks, diags).Parse()
	require.NoError(t, err)

	var buf bytes.Buffer
	e := New()
	e.SetWriter(&buf)
	runErr := e.Run(prog)
	return buf.String(), runErr
}

func TestEvalArithmeticPrecedence(t *testing.T) {
	out, err := run(t, `print 1 + 2 * 3;`)
	require.NoError(t, err)
	assert.Equal(t, "7.000000\n", out)
}

func TestEvalStringConcatCoercesNumber(t *testing.T) {
	out, err := run(t, `let a = "foo"; let b = 3; print a + b;`)
	require.NoError(t, err)
	assert.Equal(t, "foo3.000000\n", out)
}

func TestEvalArrayIndexCompoundAssignment(t *testing.T) {
	out, err := run(t, `let xs = [10, 20, 30]; xs[1] += 5; print xs[1]; print xs;`)
	require.NoError(t, err)
	assert.Equal(t, "25.000000\n[10.000000, 25.000000, 30.000000]\n", out)
}

func TestEvalObjectPropertyIncrement(t *testing.T) {
	out, err := run(t, `let o = {x: 1}; o.x++; print o.x;`)
	require.NoError(t, err)
	assert.Equal(t, "2.000000\n", out)
}

func TestEvalRecursiveFunctionCall(t *testing.T) {
	out, err := run(t, `let f = (n) { if (n <= 1) return 1; return n * f(n-1); }; print f(5);`)
	require.NoError(t, err)
	assert.Equal(t, "120.000000\n", out)
}

func TestEvalForLoopContinueSkipsBody(t *testing.T) {
	out, err := run(t, `for (let i = 0; i < 3; i = i + 1) { if (i == 1) continue; print i; }`)
	require.NoError(t, err)
	assert.Equal(t, "0.000000\n2.000000\n", out)
}

func TestEvalUndeclaredIdentifierIsRuntimeError(t *testing.T) {
	_, err := run(t, `print missing;`)
	require.Error(t, err)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
	assert.Contains(t, rerr.Msg, "missing")
}

func TestEvalDuplicateDeclarationInSameScopeFails(t *testing.T) {
	_, err := run(t, `let a = 1; let a = 2;`)
	require.Error(t, err)
}

func TestEvalBreakOutsideLoopIsRuntimeError(t *testing.T) {
	_, err := run(t, `break;`)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "break"))
}

func TestEvalArrayOutOfRangeIndexFails(t *testing.T) {
	_, err := run(t, `let xs = [1]; print xs[5];`)
	require.Error(t, err)
}

func TestEvalMemberAccessOnNonObjectIsLenientNull(t *testing.T) {
	out, err := run(t, `let n = 1; print n.anything;`)
	require.NoError(t, err)
	assert.Equal(t, "null\n", out)
}

func TestEvalCallWrongArgumentCountFails(t *testing.T) {
	_, err := run(t, `let f = (a, b) { return a + b; }; f(1);`)
	require.Error(t, err)
}

func TestEvalWhileLoopPushesFreshScopePerRun(t *testing.T) {
	out, err := run(t, `let i = 0; while (i < 2) { let j = i; print j; i = i + 1; }`)
	require.NoError(t, err)
	assert.Equal(t, "0.000000\n1.000000\n", out)
}

func TestEvalDoWhileRunsBodyAtLeastOnce(t *testing.T) {
	out, err := run(t, `let i = 0; do { print i; i = i + 1; } while (i < 0);`)
	require.NoError(t, err)
	assert.Equal(t, "0.000000\n", out)
}

func TestEvalLogicalAndReturnsOperandNotBoolean(t *testing.T) {
	out, err := run(t, `print "" && "x"; print "a" && "b";`)
	require.NoError(t, err)
	assert.Equal(t, "\nb\n", out)
}

func TestEvalGCSurvivesAggregateLiteralConstruction(t *testing.T) {
	e := New()
	e.Heap.SetThreshold(1)
	var buf bytes.Buffer
	e.SetWriter(&buf)

	diags := &token.Diagnostics{}
	toks := lexer.New(`let xs = [1, 2, 3, 4, 5]; print xs;`, diags).Lex()
	prog, err := parser.New(toks, diags).Parse()
	require.NoError(t, err)

	require.NoError(t, e.Run(prog))
	assert.Equal(t, "[1.000000, 2.000000, 3.000000, 4.000000, 5.000000]\n", buf.String())
}

func TestEvalBuiltinPrintJoinsArgsWithSpace(t *testing.T) {
	out, err := run(t, `Print("a", 1, true);`)
	require.NoError(t, err)
	assert.Equal(t, "a 1.000000 true\n", out)
}

func TestEvalNativeFunctionValueIsCallable(t *testing.T) {
	e := New()
	var buf bytes.Buffer
	e.SetWriter(&buf)
	if len(e.Stack) == 0 {
		e.Stack = append(e.Stack, Environment{})
		e.installBuiltins()
	}
	printVal, ok := e.lookup("Print")
	require.True(t, ok)
	assert.True(t, printVal.IsFunction())
	assert.True(t, printVal.AsFunction().IsNative())
	ret, err := e.callFunction(printVal.AsFunction(), []object.Value{object.String("hi")}, token.Token{})
	require.NoError(t, err)
	assert.Equal(t, object.Null, ret)
	assert.Equal(t, "hi\n", buf.String())
}
