/*
File    : msl/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a classic recursive-descent parser with
// panic-mode recovery, grounded on original_source/src/parser.cpp. It turns
// an Eof-terminated token stream into an *ast.Program.
package parser

import (
	"fmt"

	"github.com/akashmaji946/msl/ast"
	"github.com/akashmaji946/msl/token"
)

// Parser walks a fixed token slice with a cursor rather than the lexer's
// own advance (the whole stream is already materialized — see lexer.Lex).
// Most rules look one token ahead; the '(' disambiguation looks up to three.
type Parser struct {
	tokens []token.Token
	pos    int
	diags  *token.Diagnostics
}

// New creates a Parser over tokens, reporting syntax errors into diags.
func New(tokens []token.Token, diags *token.Diagnostics) *Parser {
	return &Parser{tokens: tokens, diags: diags}
}

// parseError is panicked by consume/errorf and recovered at parseDeclaration
// (to synchronize) and again at Parse (to return to the caller), mirroring
// the source's ParsingException thrown by consume() and rethrown after
// synchronize() in parseDeclaration's catch block.
type parseError struct {
	tok token.Token
	msg string
}

func (e parseError) Error() string {
	return fmt.Sprintf("[line %d, col %d] %s", e.tok.Line, e.tok.Column, e.msg)
}

// Parse consumes the whole token stream and returns the resulting Program,
// or the first syntax error encountered (synchronization has already run by
// then, but parsing stops at that error — see parseDeclaration).
func (p *Parser) Parse() (prog *ast.Program, err error) {
	defer func() {
		if r := recover(); r != nil {
			pe, ok := r.(parseError)
			if !ok {
				panic(r)
			}
			err = pe
		}
	}()

	var statements []ast.Statement
	for !p.atEnd() {
		statements = append(statements, p.parseDeclaration())
	}
	return &ast.Program{Statements: statements}, nil
}

func (p *Parser) peek() token.Token { return p.tokens[p.pos] }

func (p *Parser) peekAt(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[idx]
}

func (p *Parser) previous() token.Token { return p.tokens[p.pos-1] }

func (p *Parser) atEnd() bool { return p.peek().Type == token.Eof }

func (p *Parser) advance() token.Token {
	if !p.atEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) check(typ token.Type) bool {
	return !p.atEnd() && p.peek().Type == typ
}

func (p *Parser) match(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) consume(typ token.Type, msg string) token.Token {
	if p.check(typ) {
		return p.advance()
	}
	panic(p.errorf(p.peek(), msg))
}

// errorf records a diagnostic at tok and returns the parseError for the
// caller to panic with; it never returns a usable value on its own, only a
// thing to throw, mirroring ParsingException's constructor in the source.
func (p *Parser) errorf(tok token.Token, format string, args ...interface{}) parseError {
	msg := fmt.Sprintf(format, args...)
	if p.diags != nil {
		p.diags.Report(tok.Line, tok.Column, msg)
	}
	return parseError{tok: tok, msg: msg}
}

// synchronize discards the current token, then further tokens up to and
// including the next ';' or up to one of the statement-leading keywords.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.previous().Type == token.Semicolon {
			return
		}
		switch p.peek().Type {
		case token.Let, token.For, token.If, token.While, token.Do, token.Print:
			return
		}
		p.advance()
	}
}
