/*
File    : msl/ast/visitor.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

// Visitor is implemented by anything that walks the AST node-by-node — the
// evaluator does not use this (it switches on concrete type instead, per
// §9), but debug tooling like the Printer in printer.go does, following
// the teacher's own PrintingVisitor shape in main.go/print_visitor.go.
type Visitor interface {
	VisitProgram(n *Program)
	VisitBlockStatement(n *BlockStatement)
	VisitExpressionStatement(n *ExpressionStatement)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitIfElseStatement(n *IfElseStatement)
	VisitForLoopStatement(n *ForLoopStatement)
	VisitWhileLoopStatement(n *WhileLoopStatement)
	VisitDoWhileLoopStatement(n *DoWhileLoopStatement)
	VisitBreakStatement(n *BreakStatement)
	VisitContinueStatement(n *ContinueStatement)
	VisitReturnStatement(n *ReturnStatement)
	VisitPrintStatement(n *PrintStatement)

	VisitLiteral(n *Literal)
	VisitIdentifier(n *Identifier)
	VisitBinaryExpression(n *BinaryExpression)
	VisitUnaryExpression(n *UnaryExpression)
	VisitLogicalExpression(n *LogicalExpression)
	VisitUpdateExpression(n *UpdateExpression)
	VisitAssignmentExpression(n *AssignmentExpression)
	VisitFunctionExpression(n *FunctionExpression)
	VisitCallExpression(n *CallExpression)
	VisitMemberExpression(n *MemberExpression)
	VisitArrayMemberExpression(n *ArrayMemberExpression)
	VisitObjectExpression(n *ObjectExpression)
	VisitArrayExpression(n *ArrayExpression)
	VisitParenthesizedExpression(n *ParenthesizedExpression)
}
