/*
File    : msl/lexer/lexer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package lexer turns MSL source text into a flat, Eof-terminated token
// stream. Scanning is single-pass, left to right; the lexer never stops on
// an unrecognized character, it reports and keeps going.
package lexer

import (
	"strings"

	"github.com/akashmaji946/msl/token"
)

// Lexer scans one source string into tokens.
type Lexer struct {
	src       string
	start     int
	pos       int
	line      int
	lineBegin int

	diags *token.Diagnostics
}

// New creates a Lexer over src, reporting lexical errors into diags.
func New(src string, diags *token.Diagnostics) *Lexer {
	return &Lexer{src: src, line: 1, lineBegin: 0, diags: diags}
}

// Lex scans the whole source and returns its tokens, Eof-terminated.
func (l *Lexer) Lex() []token.Token {
	var tokens []token.Token
	for {
		l.skipInsignificant()
		l.start = l.pos
		if l.atEnd() {
			tokens = append(tokens, token.New(token.Eof, "", l.line, l.column()))
			return tokens
		}
		tok, ok := l.next()
		if ok {
			tokens = append(tokens, tok)
		}
	}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) peekAt(offset int) byte {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *Lexer) advance() byte {
	c := l.src[l.pos]
	l.pos++
	return c
}

func (l *Lexer) match(expected byte) bool {
	if l.atEnd() || l.src[l.pos] != expected {
		return false
	}
	l.pos++
	return true
}

// column reports the 1-based column of the current scan position.
func (l *Lexer) column() int {
	return l.pos - l.lineBegin + 1
}

func (l *Lexer) startColumn() int {
	return l.start - l.lineBegin + 1
}

func (l *Lexer) lexeme() string {
	return l.src[l.start:l.pos]
}

func (l *Lexer) make(typ token.Type) token.Token {
	return token.New(typ, l.lexeme(), l.line, l.startColumn())
}

// skipInsignificant discards whitespace and line comments, tracking line
// and column bookkeeping as it goes.
func (l *Lexer) skipInsignificant() {
	for !l.atEnd() {
		switch c := l.peek(); c {
		case ' ', '\t', '\v', '\f', '\r':
			l.pos++
		case '\n':
			l.pos++
			l.line++
			l.lineBegin = l.pos
		case '/':
			if l.peekAt(1) == '/' {
				for !l.atEnd() && l.peek() != '\n' {
					l.pos++
				}
			} else {
				return
			}
		default:
			return
		}
	}
}

// next scans exactly one token starting at l.start == l.pos.
func (l *Lexer) next() (token.Token, bool) {
	c := l.advance()
	switch c {
	case '(':
		return l.make(token.LeftParen), true
	case ')':
		return l.make(token.RightParen), true
	case '{':
		return l.make(token.LeftBrace), true
	case '}':
		return l.make(token.RightBrace), true
	case '[':
		return l.make(token.LeftBrack), true
	case ']':
		return l.make(token.RightBrack), true
	case ',':
		return l.make(token.Comma), true
	case '.':
		return l.make(token.Dot), true
	case ':':
		return l.make(token.Colon), true
	case ';':
		return l.make(token.Semicolon), true
	case '+':
		if l.match('=') {
			return l.make(token.PlusEqual), true
		}
		if l.match('+') {
			return l.make(token.PlusPlus), true
		}
		return l.make(token.Plus), true
	case '-':
		if l.match('=') {
			return l.make(token.MinusEqual), true
		}
		if l.match('-') {
			return l.make(token.MinusMinus), true
		}
		return l.make(token.Minus), true
	case '*':
		if l.match('=') {
			return l.make(token.StarEqual), true
		}
		return l.make(token.Star), true
	case '/':
		if l.match('=') {
			return l.make(token.SlashEqual), true
		}
		return l.make(token.Slash), true
	case '%':
		if l.match('=') {
			return l.make(token.PercentEqual), true
		}
		return l.make(token.Percent), true
	case '=':
		if l.match('=') {
			return l.make(token.EqualEqual), true
		}
		return l.make(token.Equal), true
	case '!':
		if l.match('=') {
			return l.make(token.BangEqual), true
		}
		return l.make(token.Bang), true
	case '>':
		if l.match('=') {
			return l.make(token.GreaterEqual), true
		}
		return l.make(token.Greater), true
	case '<':
		if l.match('=') {
			return l.make(token.LessEqual), true
		}
		return l.make(token.Less), true
	case '&':
		if l.match('&') {
			return l.make(token.AmpAmp), true
		}
		l.errorf("unexpected character '&' (did you mean '&&'?)")
		return l.make(token.Illegal), true
	case '|':
		if l.match('|') {
			return l.make(token.PipePipe), true
		}
		l.errorf("unexpected character '|' (did you mean '||'?)")
		return l.make(token.Illegal), true
	case '"':
		return l.lexString()
	default:
		if isDigit(c) {
			return l.lexNumber(), true
		}
		if isAlpha(c) {
			return l.lexIdentifier(), true
		}
		l.errorf("unexpected character '%c'", c)
		return l.make(token.Illegal), true
	}
}

// lexString scans a string literal. Its raw lexeme includes the surrounding
// quotes; the parser strips them when building the Literal Value (see
// original_source's lexer.cpp/parser.cpp split). The token, and the error
// for an unterminated string, carry the position of the opening quote.
func (l *Lexer) lexString() (token.Token, bool) {
	startLine, startCol := l.line, l.startColumn()
	for !l.atEnd() && l.peek() != '"' {
		if l.peek() == '\n' {
			l.line++
			l.pos++
			l.lineBegin = l.pos
			continue
		}
		l.pos++
	}
	if l.atEnd() {
		l.errorfAt(startLine, startCol, "unterminated string literal")
		return token.New(token.Illegal, l.lexeme(), startLine, startCol), true
	}
	l.pos++ // consume closing quote
	return token.New(token.String, l.lexeme(), startLine, startCol), true
}

func (l *Lexer) lexNumber() token.Token {
	for isDigit(l.peek()) {
		l.pos++
	}
	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		l.pos++
		for isDigit(l.peek()) {
			l.pos++
		}
	}
	return l.make(token.Number)
}

func (l *Lexer) lexIdentifier() token.Token {
	for isAlnum(l.peek()) {
		l.pos++
	}
	word := l.lexeme()
	if kw, ok := token.Keywords[word]; ok {
		return l.make(kw)
	}
	return l.make(token.Identifier)
}

func (l *Lexer) errorf(format string, args ...interface{}) {
	l.errorfAt(l.line, l.startColumn(), format, args...)
}

func (l *Lexer) errorfAt(line, column int, format string, args ...interface{}) {
	if l.diags != nil {
		l.diags.Report(line, column, format, args...)
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlnum(c byte) bool { return isAlpha(c) || isDigit(c) }

// Unquote strips the surrounding double quotes from a raw string lexeme.
// Exported so the parser can build String literal Values from the raw
// lexeme without duplicating the quote-stripping rule.
func Unquote(lexeme string) string {
	if len(lexeme) >= 2 && strings.HasPrefix(lexeme, `"`) && strings.HasSuffix(lexeme, `"`) {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}
