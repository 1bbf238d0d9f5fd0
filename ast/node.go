/*
File    : msl/ast/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines the sum-type of statement and expression shapes the
// parser produces. Nodes are plain structs, not a virtual-dispatch
// hierarchy (core spec §9: "a tagged variant ... with a single execute
// function matched on the tag"); the evaluator switches on the concrete Go
// type instead of calling an Execute method on the node, which keeps this
// package free of any dependency on the evaluator or the object model.
package ast

import "github.com/akashmaji946/msl/token"

// Node is implemented by every statement and expression. Pos returns the
// node's leading token, used for runtime-error position reporting.
type Node interface {
	Pos() token.Token
	Accept(v Visitor)
}

// Statement is implemented by every statement-shaped node.
type Statement interface {
	Node
	statementNode()
}

// Expression is implemented by every expression-shaped node.
type Expression interface {
	Node
	expressionNode()
}

// Program is the root of every parse: an ordered list of top-level
// statements, executed in order inside the globals frame.
type Program struct {
	Statements []Statement
}

func (p *Program) Pos() token.Token {
	if len(p.Statements) == 0 {
		return token.Token{}
	}
	return p.Statements[0].Pos()
}
func (p *Program) Accept(v Visitor) { v.VisitProgram(p) }
