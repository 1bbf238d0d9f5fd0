/*
File    : msl/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/msl/ast"
	"github.com/akashmaji946/msl/token"
)

// parseDeclaration is the grammar's `declaration` rule. A syntax error
// anywhere below synchronizes the token stream here and then re-panics, so
// the caller (Parse, or an enclosing block) still aborts the run: parsing
// stops at the first syntax error, and no later construct is scanned for
// further diagnostics (core spec §4.2).
func (p *Parser) parseDeclaration() (stmt ast.Statement) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(parseError); ok {
				p.synchronize()
			}
			panic(r)
		}
	}()

	if p.match(token.Let) {
		return p.parseVariableDeclaration()
	}
	return p.parseStatement()
}

func (p *Parser) parseVariableDeclaration() ast.Statement {
	let := p.previous()
	var declarators []*ast.VariableDeclarator
	for {
		nameTok := p.consume(token.Identifier, "expected variable name")
		var init ast.Expression
		if p.match(token.Equal) {
			init = p.parseExpression()
		}
		declarators = append(declarators, &ast.VariableDeclarator{
			Name: nameTok.Lexeme, NameTok: nameTok, Initializer: init,
		})
		if !p.match(token.Comma) {
			break
		}
	}
	p.consume(token.Semicolon, "expected ';' after declaration")
	return &ast.VariableDeclaration{Let: let, Declarators: declarators}
}

func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.match(token.Continue):
		tok := p.previous()
		p.consume(token.Semicolon, "expected ';' after continue statement")
		return &ast.ContinueStatement{Continue: tok}
	case p.match(token.Break):
		tok := p.previous()
		p.consume(token.Semicolon, "expected ';' after break statement")
		return &ast.BreakStatement{Break: tok}
	case p.match(token.Do):
		return p.parseDoWhileStatement()
	case p.match(token.For):
		return p.parseForStatement()
	case p.match(token.If):
		return p.parseIfStatement()
	case p.match(token.Print):
		return p.parsePrintStatement()
	case p.match(token.Return):
		return p.parseReturnStatement()
	case p.match(token.While):
		return p.parseWhileStatement()
	case p.match(token.LeftBrace):
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseReturnStatement() ast.Statement {
	ret := p.previous()
	var arg ast.Expression
	if !p.check(token.Semicolon) {
		arg = p.parseExpression()
	}
	p.consume(token.Semicolon, "expected ';' after return statement")
	return &ast.ReturnStatement{Return: ret, Argument: arg}
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	do := p.previous()
	body := p.parseStatement()
	p.consume(token.While, "expected 'while' after do-while block")
	p.consume(token.LeftParen, "expected '(' after while")
	condition := p.parseExpression()
	p.consume(token.RightParen, "expected ')' after do-while condition")
	p.consume(token.Semicolon, "expected ';' after do-while loop")
	return &ast.DoWhileLoopStatement{Do: do, Body: body, Condition: condition}
}

func (p *Parser) parseWhileStatement() ast.Statement {
	while := p.previous()
	p.consume(token.LeftParen, "expected '(' after while")
	condition := p.parseExpression()
	p.consume(token.RightParen, "expected ')' after while condition")
	body := p.parseStatement()
	return &ast.WhileLoopStatement{While: while, Condition: condition, Body: body}
}

func (p *Parser) parseForStatement() ast.Statement {
	forTok := p.previous()
	p.consume(token.LeftParen, "expected '(' after for")

	var init ast.Statement
	switch {
	case p.match(token.Semicolon):
		init = nil
	case p.match(token.Let):
		init = p.parseVariableDeclaration()
	default:
		init = p.parseExpressionStatement()
	}

	var condition ast.Expression
	if !p.check(token.Semicolon) {
		condition = p.parseExpression()
	}
	p.consume(token.Semicolon, "expected ';' in for loop condition")

	var increment ast.Expression
	if !p.check(token.RightParen) {
		increment = p.parseExpression()
	}
	p.consume(token.RightParen, "expected ')' after for loop clauses")

	body := p.parseStatement()
	return &ast.ForLoopStatement{For: forTok, Init: init, Condition: condition, Increment: increment, Body: body}
}

func (p *Parser) parseIfStatement() ast.Statement {
	ifTok := p.previous()
	p.consume(token.LeftParen, "expected '(' after if")
	condition := p.parseExpression()
	p.consume(token.RightParen, "expected ')' after if condition")

	then := p.parseStatement()
	var elseBranch ast.Statement
	if p.match(token.Else) {
		elseBranch = p.parseStatement()
	}
	return &ast.IfElseStatement{If: ifTok, Condition: condition, Then: then, Else: elseBranch}
}

func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	brace := p.previous()
	var statements []ast.Statement
	for !p.check(token.RightBrace) && !p.atEnd() {
		statements = append(statements, p.parseDeclaration())
	}
	p.consume(token.RightBrace, "expected '}' after block")
	return &ast.BlockStatement{Brace: brace, Statements: statements}
}

func (p *Parser) parsePrintStatement() ast.Statement {
	print := p.previous()
	arg := p.parseExpression()
	p.consume(token.Semicolon, "expected ';' after print argument")
	return &ast.PrintStatement{Print: print, Argument: arg}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	expr := p.parseExpression()
	p.consume(token.Semicolon, "expected ';' after expression")
	return &ast.ExpressionStatement{Expr: expr}
}
