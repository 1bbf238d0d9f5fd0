package parser

import (
	"testing"

	"github.com/akashmaji946/msl/ast"
	"github.com/akashmaji946/msl/lexer"
	"github.com/akashmaji946/msl/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *ast.Program {
	diags := &token.Diagnostics{}
	toks := lexer.New(src, diags).Lex()
	prog, err := New(toks, diags).Parse()
	require.NoError(t, err)
	require.False(t, diags.HadError())
	return prog
}

func TestParsePrecedenceClimbsMulOverAdd(t *testing.T) {
	prog := parse(t, "print 1 + 2 * 3;")
	stmt := prog.Statements[0].(*ast.PrintStatement)
	bin := stmt.Argument.(*ast.BinaryExpression)
	assert.Equal(t, token.Plus, bin.Op)
	right := bin.Right.(*ast.BinaryExpression)
	assert.Equal(t, token.Star, right.Op)
}

func TestParseVariableDeclarationMultipleDeclarators(t *testing.T) {
	prog := parse(t, "let a = 1, b = 2;")
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	assert.Len(t, decl.Declarators, 2)
	assert.Equal(t, "a", decl.Declarators[0].Name)
	assert.Equal(t, "b", decl.Declarators[1].Name)
}

func TestParseAssignmentRequiresValidTarget(t *testing.T) {
	diags := &token.Diagnostics{}
	toks := lexer.New("1 + 2 = 3;", diags).Lex()
	_, err := New(toks, diags).Parse()
	assert.Error(t, err)
}

func TestParseZeroArgFunctionExpression(t *testing.T) {
	prog := parse(t, "let f = () { return 1; };")
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	fn := decl.Declarators[0].Initializer.(*ast.FunctionExpression)
	assert.Len(t, fn.Params, 0)
}

func TestParseOneArgFunctionExpression(t *testing.T) {
	prog := parse(t, "let f = (n) { return n; };")
	decl := prog.Statements[0].(*ast.VariableDeclaration)
	fn := decl.Declarators[0].Initializer.(*ast.FunctionExpression)
	assert.Equal(t, []string{"n"}, fn.Params)
}

func TestParseParenthesizedExpressionIsNotMisreadAsFunction(t *testing.T) {
	prog := parse(t, "print (1 + 2);")
	stmt := prog.Statements[0].(*ast.PrintStatement)
	_, ok := stmt.Argument.(*ast.ParenthesizedExpression)
	assert.True(t, ok)
}

func TestParseArrayAndIndexAssignment(t *testing.T) {
	prog := parse(t, "let xs = [10, 20, 30]; xs[1] += 5;")
	exprStmt := prog.Statements[1].(*ast.ExpressionStatement)
	assign := exprStmt.Expr.(*ast.AssignmentExpression)
	_, ok := assign.Target.(*ast.ArrayMemberExpression)
	assert.True(t, ok)
	assert.Equal(t, token.PlusEqual, assign.Op)
}

func TestParseObjectExpressionAndMemberUpdate(t *testing.T) {
	prog := parse(t, "let o = {x: 1}; o.x++;")
	exprStmt := prog.Statements[1].(*ast.ExpressionStatement)
	update := exprStmt.Expr.(*ast.UpdateExpression)
	assert.False(t, update.Prefix)
	_, ok := update.Operand.(*ast.MemberExpression)
	assert.True(t, ok)
}

func TestParseForLoopAllClausesOptional(t *testing.T) {
	prog := parse(t, "for (;;) { break; }")
	loop := prog.Statements[0].(*ast.ForLoopStatement)
	assert.Nil(t, loop.Init)
	assert.Nil(t, loop.Condition)
	assert.Nil(t, loop.Increment)
}

func TestParseDoWhileStatement(t *testing.T) {
	prog := parse(t, "do { print 1; } while (true);")
	loop := prog.Statements[0].(*ast.DoWhileLoopStatement)
	_, ok := loop.Body.(*ast.BlockStatement)
	assert.True(t, ok)
}

func TestParseSyntaxErrorIsReported(t *testing.T) {
	diags := &token.Diagnostics{}
	toks := lexer.New("let x = ;", diags).Lex()
	_, err := New(toks, diags).Parse()
	assert.Error(t, err)
	assert.True(t, diags.HadError())
}

func TestParseMissingSemicolonAbortsParse(t *testing.T) {
	diags := &token.Diagnostics{}
	toks := lexer.New("let x = 1 print x;", diags).Lex()
	_, err := New(toks, diags).Parse()
	assert.Error(t, err)
}
