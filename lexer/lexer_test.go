package lexer

import (
	"testing"

	"github.com/akashmaji946/msl/token"
	"github.com/stretchr/testify/assert"
)

func types(tokens []token.Token) []token.Type {
	out := make([]token.Type, len(tokens))
	for i, t := range tokens {
		out[i] = t.Type
	}
	return out
}

func TestLexPunctuationAndOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected []token.Type
	}{
		{"(", []token.Type{token.LeftParen, token.Eof}},
		{"+ - * / %", []token.Type{token.Plus, token.Minus, token.Star, token.Slash, token.Percent, token.Eof}},
		{"+= -= *= /= %=", []token.Type{token.PlusEqual, token.MinusEqual, token.StarEqual, token.SlashEqual, token.PercentEqual, token.Eof}},
		{"++ --", []token.Type{token.PlusPlus, token.MinusMinus, token.Eof}},
		{"== != <= >= < >", []token.Type{token.EqualEqual, token.BangEqual, token.LessEqual, token.GreaterEqual, token.Less, token.Greater, token.Eof}},
		{"&& ||", []token.Type{token.AmpAmp, token.PipePipe, token.Eof}},
	}
	for _, tt := range tests {
		var diags token.Diagnostics
		tokens := New(tt.input, &diags).Lex()
		assert.Equal(t, tt.expected, types(tokens), tt.input)
		assert.False(t, diags.HadError())
	}
}

func TestLexKeywordsAndIdentifiers(t *testing.T) {
	var diags token.Diagnostics
	tokens := New("let x = foo123; if else for while do continue break return print null true false", &diags).Lex()
	expected := []token.Type{
		token.Let, token.Identifier, token.Equal, token.Identifier, token.Semicolon,
		token.If, token.Else, token.For, token.While, token.Do, token.Continue, token.Break,
		token.Return, token.Print, token.Null, token.True, token.False, token.Eof,
	}
	assert.Equal(t, expected, types(tokens))
}

func TestLexNumbers(t *testing.T) {
	var diags token.Diagnostics
	tokens := New("42 3.14 0.5", &diags).Lex()
	assert.Equal(t, []token.Type{token.Number, token.Number, token.Number, token.Eof}, types(tokens))
	assert.Equal(t, "42", tokens[0].Lexeme)
	assert.Equal(t, "3.14", tokens[1].Lexeme)
}

func TestLexTrailingDotIsNotPartOfNumber(t *testing.T) {
	var diags token.Diagnostics
	tokens := New("1.", &diags).Lex()
	assert.Equal(t, []token.Type{token.Number, token.Dot, token.Eof}, types(tokens))
}

func TestLexStringLiteralKeepsQuotesInLexeme(t *testing.T) {
	var diags token.Diagnostics
	tokens := New(`"hello world"`, &diags).Lex()
	assert.Equal(t, token.String, tokens[0].Type)
	assert.Equal(t, `"hello world"`, tokens[0].Lexeme)
	assert.Equal(t, "hello world", Unquote(tokens[0].Lexeme))
}

func TestLexMultilineStringAdvancesLine(t *testing.T) {
	var diags token.Diagnostics
	tokens := New("\"line1\nline2\"\nx", &diags).Lex()
	assert.Equal(t, token.String, tokens[0].Type)
	assert.Equal(t, 3, tokens[1].Line)
}

func TestLexUnterminatedStringReportsAtOpeningQuote(t *testing.T) {
	var diags token.Diagnostics
	New(`"unterminated`, &diags).Lex()
	assert.True(t, diags.HadError())
	errs := diags.Errors()
	assert.Equal(t, 1, errs[0].Column)
}

func TestLexLoneAmpOrPipeIsError(t *testing.T) {
	var diags token.Diagnostics
	tokens := New("& |", &diags).Lex()
	assert.True(t, diags.HadError())
	assert.Equal(t, []token.Type{token.Illegal, token.Illegal, token.Eof}, types(tokens))
}

func TestLexCommentsAreDiscarded(t *testing.T) {
	var diags token.Diagnostics
	tokens := New("1 // this is a comment\n2", &diags).Lex()
	assert.Equal(t, []token.Type{token.Number, token.Number, token.Eof}, types(tokens))
}

func TestLexLineAndColumnTracking(t *testing.T) {
	var diags token.Diagnostics
	tokens := New("let x\n  = 1;", &diags).Lex()
	// "=" is on line 2, at column 3 (two leading spaces then '=').
	var eq token.Token
	for _, tk := range tokens {
		if tk.Type == token.Equal {
			eq = tk
		}
	}
	assert.Equal(t, 2, eq.Line)
	assert.Equal(t, 3, eq.Column)
}

func TestLexEmptySourceYieldsOnlyEof(t *testing.T) {
	var diags token.Diagnostics
	tokens := New("", &diags).Lex()
	assert.Equal(t, []token.Type{token.Eof}, types(tokens))
}
