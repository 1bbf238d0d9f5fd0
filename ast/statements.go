/*
File    : msl/ast/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/msl/token"

// BlockStatement is an ordered list of statements executed inside a fresh
// pushed Environment, popped on every exit path (core spec §4.5, §5).
type BlockStatement struct {
	Brace      token.Token
	Statements []Statement
}

func (b *BlockStatement) Pos() token.Token { return b.Brace }
func (b *BlockStatement) Accept(v Visitor) { v.VisitBlockStatement(b) }
func (b *BlockStatement) statementNode()   {}

// ExpressionStatement evaluates its expression and discards the value.
type ExpressionStatement struct {
	Expr Expression
}

func (e *ExpressionStatement) Pos() token.Token { return e.Expr.Pos() }
func (e *ExpressionStatement) Accept(v Visitor) { v.VisitExpressionStatement(e) }
func (e *ExpressionStatement) statementNode()   {}

// VariableDeclarator is one `name (= initializer)?` pair inside a VariableDeclaration.
type VariableDeclarator struct {
	Name        string
	NameTok     token.Token
	Initializer Expression // nil when omitted; defaults to Null at eval time
}

// VariableDeclaration is a `let` statement: one or more declarators,
// inserted into the top frame. A duplicate name in the same frame fails.
type VariableDeclaration struct {
	Let         token.Token
	Declarators []*VariableDeclarator
}

func (d *VariableDeclaration) Pos() token.Token { return d.Let }
func (d *VariableDeclaration) Accept(v Visitor) { v.VisitVariableDeclaration(d) }
func (d *VariableDeclaration) statementNode()   {}

// IfElseStatement: condition coerces to Boolean; Else may be nil.
type IfElseStatement struct {
	If        token.Token
	Condition Expression
	Then      Statement
	Else      Statement
}

func (s *IfElseStatement) Pos() token.Token { return s.If }
func (s *IfElseStatement) Accept(v Visitor) { v.VisitIfElseStatement(s) }
func (s *IfElseStatement) statementNode()   {}

// ForLoopStatement pushes one frame for its whole lifetime; Init/Condition/
// Increment may each be nil.
type ForLoopStatement struct {
	For       token.Token
	Init      Statement // VariableDeclaration or ExpressionStatement, or nil
	Condition Expression
	Increment Expression
	Body      Statement
}

func (s *ForLoopStatement) Pos() token.Token { return s.For }
func (s *ForLoopStatement) Accept(v Visitor) { v.VisitForLoopStatement(s) }
func (s *ForLoopStatement) statementNode()   {}

// WhileLoopStatement pushes one frame for the loop's lifetime (see
// DESIGN.md's note on the preserved while/do-while frame asymmetry).
type WhileLoopStatement struct {
	While     token.Token
	Condition Expression
	Body      Statement
}

func (s *WhileLoopStatement) Pos() token.Token { return s.While }
func (s *WhileLoopStatement) Accept(v Visitor) { v.VisitWhileLoopStatement(s) }
func (s *WhileLoopStatement) statementNode()   {}

// DoWhileLoopStatement executes Body at least once, then repeats while
// Condition is truthy. Unlike WhileLoopStatement it pushes no frame of its
// own — preserved intentionally, see DESIGN.md.
type DoWhileLoopStatement struct {
	Do        token.Token
	Body      Statement
	Condition Expression
}

func (s *DoWhileLoopStatement) Pos() token.Token { return s.Do }
func (s *DoWhileLoopStatement) Accept(v Visitor) { v.VisitDoWhileLoopStatement(s) }
func (s *DoWhileLoopStatement) statementNode()   {}

// BreakStatement signals a non-local exit to the nearest enclosing loop.
type BreakStatement struct {
	Break token.Token
}

func (s *BreakStatement) Pos() token.Token { return s.Break }
func (s *BreakStatement) Accept(v Visitor) { v.VisitBreakStatement(s) }
func (s *BreakStatement) statementNode()   {}

// ContinueStatement signals a skip-to-next-iteration in the nearest loop.
type ContinueStatement struct {
	Continue token.Token
}

func (s *ContinueStatement) Pos() token.Token { return s.Continue }
func (s *ContinueStatement) Accept(v Visitor) { v.VisitContinueStatement(s) }
func (s *ContinueStatement) statementNode()   {}

// ReturnStatement signals a non-local exit back to the enclosing call.
// Argument is nil when omitted, defaulting to Null.
type ReturnStatement struct {
	Return   token.Token
	Argument Expression
}

func (s *ReturnStatement) Pos() token.Token { return s.Return }
func (s *ReturnStatement) Accept(v Visitor) { v.VisitReturnStatement(s) }
func (s *ReturnStatement) statementNode()   {}

// PrintStatement evaluates Argument and writes its toString() + newline to
// the standard output sink. Unlike the Print builtin, this is not variadic.
type PrintStatement struct {
	Print    token.Token
	Argument Expression
}

func (s *PrintStatement) Pos() token.Token { return s.Print }
func (s *PrintStatement) Accept(v Visitor) { v.VisitPrintStatement(s) }
func (s *PrintStatement) statementNode()   {}
