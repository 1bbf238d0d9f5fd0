/*
File    : msl/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/msl/ast"
	"github.com/akashmaji946/msl/lexer"
	"github.com/akashmaji946/msl/token"
)

func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignment()
}

// parseAssignment validates its left-hand side after the fact: only an
// Identifier, MemberExpression, or ArrayMemberExpression may be an
// assignment target (core spec §4.2's "Assignment target validation").
func (p *Parser) parseAssignment() ast.Expression {
	expr := p.parseLogicOr()

	if p.match(token.Equal, token.PlusEqual, token.MinusEqual, token.StarEqual, token.SlashEqual, token.PercentEqual) {
		opTok := p.previous()
		value := p.parseAssignment()

		switch expr.(type) {
		case *ast.Identifier, *ast.MemberExpression, *ast.ArrayMemberExpression:
			return &ast.AssignmentExpression{Target: expr, Op: opTok.Type, OpTok: opTok, Value: value}
		default:
			panic(p.errorf(opTok, "invalid assignment target"))
		}
	}
	return expr
}

func (p *Parser) parseLogicOr() ast.Expression {
	expr := p.parseLogicAnd()
	for p.match(token.PipePipe) {
		opTok := p.previous()
		right := p.parseLogicAnd()
		expr = &ast.LogicalExpression{Left: expr, Op: opTok.Type, OpTok: opTok, Right: right}
	}
	return expr
}

func (p *Parser) parseLogicAnd() ast.Expression {
	expr := p.parseEquality()
	for p.match(token.AmpAmp) {
		opTok := p.previous()
		right := p.parseEquality()
		expr = &ast.LogicalExpression{Left: expr, Op: opTok.Type, OpTok: opTok, Right: right}
	}
	return expr
}

func (p *Parser) parseEquality() ast.Expression {
	expr := p.parseComparison()
	for p.match(token.EqualEqual, token.BangEqual) {
		opTok := p.previous()
		right := p.parseComparison()
		expr = &ast.BinaryExpression{Left: expr, Op: opTok.Type, OpTok: opTok, Right: right}
	}
	return expr
}

func (p *Parser) parseComparison() ast.Expression {
	expr := p.parseTerm()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		opTok := p.previous()
		right := p.parseTerm()
		expr = &ast.BinaryExpression{Left: expr, Op: opTok.Type, OpTok: opTok, Right: right}
	}
	return expr
}

func (p *Parser) parseTerm() ast.Expression {
	expr := p.parseFactor()
	for p.match(token.Plus, token.Minus) {
		opTok := p.previous()
		right := p.parseFactor()
		expr = &ast.BinaryExpression{Left: expr, Op: opTok.Type, OpTok: opTok, Right: right}
	}
	return expr
}

func (p *Parser) parseFactor() ast.Expression {
	expr := p.parseUnary()
	for p.match(token.Star, token.Slash, token.Percent) {
		opTok := p.previous()
		right := p.parseUnary()
		expr = &ast.BinaryExpression{Left: expr, Op: opTok.Type, OpTok: opTok, Right: right}
	}
	return expr
}

func (p *Parser) parseUnary() ast.Expression {
	switch {
	case p.match(token.Bang, token.Minus, token.Plus):
		opTok := p.previous()
		right := p.parseUnary()
		return &ast.UnaryExpression{Op: opTok.Type, OpTok: opTok, Right: right}
	case p.match(token.PlusPlus, token.MinusMinus):
		opTok := p.previous()
		operand := p.parseUnary()
		return &ast.UpdateExpression{Op: opTok.Type, OpTok: opTok, Operand: operand, Prefix: true}
	default:
		return p.parsePostfix()
	}
}

// parsePostfix implements the grammar's `postfix` rule: calls, member
// access, indexing, and postfix ++/-- all chain left-associatively off one
// primary.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()

	for {
		switch {
		case p.match(token.LeftParen):
			expr = p.parseCall(expr)
		case p.match(token.Dot):
			expr = p.parseMember(expr)
		case p.match(token.LeftBrack):
			expr = p.parseArrayMember(expr)
		case p.match(token.PlusPlus, token.MinusMinus):
			opTok := p.previous()
			expr = &ast.UpdateExpression{Op: opTok.Type, OpTok: opTok, Operand: expr, Prefix: false}
		default:
			return expr
		}
	}
}

func (p *Parser) parseCall(callee ast.Expression) ast.Expression {
	paren := p.previous()
	var args []ast.Expression
	if !p.check(token.RightParen) {
		for {
			args = append(args, p.parseExpression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "expected ')' after call arguments")
	return &ast.CallExpression{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) parseMember(object ast.Expression) ast.Expression {
	dot := p.previous()
	name := p.consume(token.Identifier, "expected identifier after '.'")
	return &ast.MemberExpression{Object: object, Dot: dot, Name: name.Lexeme}
}

func (p *Parser) parseArrayMember(arr ast.Expression) ast.Expression {
	bracket := p.previous()
	index := p.parseExpression()
	p.consume(token.RightBrack, "expected ']' after array index")
	return &ast.ArrayMemberExpression{Array: arr, Bracket: bracket, Index: index}
}

// parsePrimary implements the grammar's `primary` rule, including the
// three-token lookahead that disambiguates a function expression from a
// parenthesized expression after consuming '(' (core spec §4.2).
func (p *Parser) parsePrimary() ast.Expression {
	switch {
	case p.match(token.Null):
		return &ast.Literal{Tok: p.previous(), Kind: ast.LiteralNull}
	case p.match(token.False):
		return &ast.Literal{Tok: p.previous(), Kind: ast.LiteralBool, Bool: false}
	case p.match(token.True):
		return &ast.Literal{Tok: p.previous(), Kind: ast.LiteralBool, Bool: true}
	case p.match(token.Number):
		tok := p.previous()
		n, _ := strconv.ParseFloat(tok.Lexeme, 64)
		return &ast.Literal{Tok: tok, Kind: ast.LiteralNumber, Number: n}
	case p.match(token.String):
		tok := p.previous()
		return &ast.Literal{Tok: tok, Kind: ast.LiteralString, Str: lexer.Unquote(tok.Lexeme)}
	case p.match(token.Identifier):
		tok := p.previous()
		return &ast.Identifier{Tok: tok, Name: tok.Lexeme}
	case p.match(token.LeftParen):
		return p.parseParenOrFunction()
	case p.match(token.LeftBrace):
		return p.parseObjectExpression()
	case p.match(token.LeftBrack):
		return p.parseArrayExpression()
	}
	panic(p.errorf(p.peek(), "expected expression"))
}

func (p *Parser) looksLikeFunctionHeader() bool {
	if p.peekAt(0).Type == token.RightParen {
		return true
	}
	if p.peekAt(0).Type == token.Identifier && p.peekAt(1).Type == token.Comma {
		return true
	}
	if p.peekAt(0).Type == token.Identifier && p.peekAt(1).Type == token.RightParen && p.peekAt(2).Type == token.LeftBrace {
		return true
	}
	return false
}

func (p *Parser) parseParenOrFunction() ast.Expression {
	paren := p.previous()
	if p.looksLikeFunctionHeader() {
		return p.parseFunctionExpression(paren)
	}
	inner := p.parseExpression()
	p.consume(token.RightParen, "expected ')' after expression")
	return &ast.ParenthesizedExpression{Paren: paren, Inner: inner}
}

func (p *Parser) parseFunctionExpression(paren token.Token) ast.Expression {
	var params []string
	if !p.check(token.RightParen) {
		for {
			name := p.consume(token.Identifier, "expected parameter name")
			params = append(params, name.Lexeme)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "expected ')' after function parameters")
	p.consume(token.LeftBrace, "expected '{' to begin function body")
	body := p.parseBlockStatement()
	return &ast.FunctionExpression{Paren: paren, Params: params, Body: body}
}

func (p *Parser) parseArrayExpression() ast.Expression {
	bracket := p.previous()
	var elements []ast.Expression
	if !p.check(token.RightBrack) {
		for {
			elements = append(elements, p.parseExpression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightBrack, "expected ']' after array elements")
	return &ast.ArrayExpression{Bracket: bracket, Elements: elements}
}

func (p *Parser) parseObjectExpression() ast.Expression {
	brace := p.previous()
	var keys []string
	var values []ast.Expression
	if !p.check(token.RightBrace) {
		for {
			name := p.consume(token.Identifier, "expected property name in object expression")
			p.consume(token.Colon, "expected ':' after property name")
			values = append(values, p.parseExpression())
			keys = append(keys, name.Lexeme)
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightBrace, "expected '}' after object expression")
	return &ast.ObjectExpression{Brace: brace, Keys: keys, Values: values}
}
