package ast

import (
	"strings"
	"testing"

	"github.com/akashmaji946/msl/token"
	"github.com/stretchr/testify/assert"
)

func TestPrinterRendersNestedStructure(t *testing.T) {
	prog := &Program{
		Statements: []Statement{
			&PrintStatement{
				Print: token.New(token.Print, "print", 1, 1),
				Argument: &BinaryExpression{
					Left:  &Literal{Kind: LiteralNumber, Number: 1},
					Op:    token.Plus,
					OpTok: token.New(token.Plus, "+", 1, 9),
					Right: &Literal{Kind: LiteralNumber, Number: 2},
				},
			},
		},
	}
	out := Print(prog)
	assert.True(t, strings.Contains(out, "Program"))
	assert.True(t, strings.Contains(out, "Print"))
	assert.True(t, strings.Contains(out, "Binary +"))
	assert.True(t, strings.Contains(out, "Literal 1"))
}

func TestProgramPosUsesFirstStatement(t *testing.T) {
	tok := token.New(token.Print, "print", 3, 4)
	prog := &Program{Statements: []Statement{&PrintStatement{Print: tok, Argument: &Literal{Kind: LiteralNull}}}}
	assert.Equal(t, tok, prog.Pos())
}

func TestEmptyProgramPosIsZeroValue(t *testing.T) {
	prog := &Program{}
	assert.Equal(t, token.Token{}, prog.Pos())
}
