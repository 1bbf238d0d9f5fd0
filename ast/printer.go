/*
File    : msl/ast/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"bytes"
	"fmt"
)

const indentSize = 2

// Printer is a debug-only indented tree dump of an AST, the explicitly
// out-of-core "pretty-printing of the AST for debug" collaborator named in
// the core spec's Purpose & Scope. Adapted from the teacher's
// PrintingVisitor (main.go/print_visitor.go), generalized to this
// package's node set.
type Printer struct {
	indent int
	buf    bytes.Buffer
}

// Print renders a Program to its indented textual form.
func Print(p *Program) string {
	pr := &Printer{}
	p.Accept(pr)
	return pr.buf.String()
}

func (p *Printer) line(format string, args ...interface{}) {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteByte(' ')
	}
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *Printer) nested(f func()) {
	p.indent += indentSize
	f()
	p.indent -= indentSize
}

func (p *Printer) VisitProgram(n *Program) {
	p.line("Program")
	p.nested(func() {
		for _, s := range n.Statements {
			s.Accept(p)
		}
	})
}

func (p *Printer) VisitBlockStatement(n *BlockStatement) {
	p.line("Block")
	p.nested(func() {
		for _, s := range n.Statements {
			s.Accept(p)
		}
	})
}

func (p *Printer) VisitExpressionStatement(n *ExpressionStatement) {
	p.line("ExpressionStatement")
	p.nested(func() { n.Expr.Accept(p) })
}

func (p *Printer) VisitVariableDeclaration(n *VariableDeclaration) {
	p.line("VariableDeclaration")
	p.nested(func() {
		for _, d := range n.Declarators {
			p.line("Declarator %s", d.Name)
			if d.Initializer != nil {
				p.nested(func() { d.Initializer.Accept(p) })
			}
		}
	})
}

func (p *Printer) VisitIfElseStatement(n *IfElseStatement) {
	p.line("If")
	p.nested(func() {
		n.Condition.Accept(p)
		n.Then.Accept(p)
		if n.Else != nil {
			n.Else.Accept(p)
		}
	})
}

func (p *Printer) VisitForLoopStatement(n *ForLoopStatement) {
	p.line("For")
	p.nested(func() {
		if n.Init != nil {
			n.Init.Accept(p)
		}
		if n.Condition != nil {
			n.Condition.Accept(p)
		}
		if n.Increment != nil {
			n.Increment.Accept(p)
		}
		n.Body.Accept(p)
	})
}

func (p *Printer) VisitWhileLoopStatement(n *WhileLoopStatement) {
	p.line("While")
	p.nested(func() {
		if n.Condition != nil {
			n.Condition.Accept(p)
		}
		n.Body.Accept(p)
	})
}

func (p *Printer) VisitDoWhileLoopStatement(n *DoWhileLoopStatement) {
	p.line("DoWhile")
	p.nested(func() {
		n.Body.Accept(p)
		n.Condition.Accept(p)
	})
}

func (p *Printer) VisitBreakStatement(n *BreakStatement)       { p.line("Break") }
func (p *Printer) VisitContinueStatement(n *ContinueStatement) { p.line("Continue") }

func (p *Printer) VisitReturnStatement(n *ReturnStatement) {
	p.line("Return")
	if n.Argument != nil {
		p.nested(func() { n.Argument.Accept(p) })
	}
}

func (p *Printer) VisitPrintStatement(n *PrintStatement) {
	p.line("Print")
	p.nested(func() { n.Argument.Accept(p) })
}

func (p *Printer) VisitLiteral(n *Literal) {
	switch n.Kind {
	case LiteralNull:
		p.line("Literal null")
	case LiteralBool:
		p.line("Literal %t", n.Bool)
	case LiteralNumber:
		p.line("Literal %g", n.Number)
	case LiteralString:
		p.line("Literal %q", n.Str)
	}
}

func (p *Printer) VisitIdentifier(n *Identifier) { p.line("Identifier %s", n.Name) }

func (p *Printer) VisitBinaryExpression(n *BinaryExpression) {
	p.line("Binary %s", n.Op)
	p.nested(func() {
		n.Left.Accept(p)
		n.Right.Accept(p)
	})
}

func (p *Printer) VisitUnaryExpression(n *UnaryExpression) {
	p.line("Unary %s", n.Op)
	p.nested(func() { n.Right.Accept(p) })
}

func (p *Printer) VisitLogicalExpression(n *LogicalExpression) {
	p.line("Logical %s", n.Op)
	p.nested(func() {
		n.Left.Accept(p)
		n.Right.Accept(p)
	})
}

func (p *Printer) VisitUpdateExpression(n *UpdateExpression) {
	p.line("Update %s prefix=%t", n.Op, n.Prefix)
	p.nested(func() { n.Operand.Accept(p) })
}

func (p *Printer) VisitAssignmentExpression(n *AssignmentExpression) {
	p.line("Assignment %s", n.Op)
	p.nested(func() {
		n.Target.Accept(p)
		n.Value.Accept(p)
	})
}

func (p *Printer) VisitFunctionExpression(n *FunctionExpression) {
	p.line("Function (%v)", n.Params)
	p.nested(func() { n.Body.Accept(p) })
}

func (p *Printer) VisitCallExpression(n *CallExpression) {
	p.line("Call")
	p.nested(func() {
		n.Callee.Accept(p)
		for _, a := range n.Args {
			a.Accept(p)
		}
	})
}

func (p *Printer) VisitMemberExpression(n *MemberExpression) {
	p.line("Member .%s", n.Name)
	p.nested(func() { n.Object.Accept(p) })
}

func (p *Printer) VisitArrayMemberExpression(n *ArrayMemberExpression) {
	p.line("ArrayMember")
	p.nested(func() {
		n.Array.Accept(p)
		n.Index.Accept(p)
	})
}

func (p *Printer) VisitObjectExpression(n *ObjectExpression) {
	p.line("Object")
	p.nested(func() {
		for i, k := range n.Keys {
			p.line("%s:", k)
			p.nested(func() { n.Values[i].Accept(p) })
		}
	})
}

func (p *Printer) VisitArrayExpression(n *ArrayExpression) {
	p.line("Array")
	p.nested(func() {
		for _, e := range n.Elements {
			e.Accept(p)
		}
	})
}

func (p *Printer) VisitParenthesizedExpression(n *ParenthesizedExpression) {
	p.line("Paren")
	p.nested(func() { n.Inner.Accept(p) })
}
