/*
File    : msl/eval/scenario_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/akashmaji946/msl/lexer"
	"github.com/akashmaji946/msl/parser"
	"github.com/akashmaji946/msl/token"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

// TestScenarios snapshots the literal-input/expected-stdout pairs core spec
// §8 calls out, covering precedence, coercion, compound array assignment,
// object-property update, recursion, and loop control all at once.
func TestScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"arithmetic_precedence", `print 1 + 2 * 3;`},
		{"string_number_concat", `let a = "foo"; let b = 3; print a + b;`},
		{"array_compound_assign", `let xs = [10, 20, 30]; xs[1] += 5; print xs[1]; print xs;`},
		{"object_property_increment", `let o = {x: 1}; o.x++; print o.x;`},
		{"recursive_factorial", `let f = (n) { if (n <= 1) return 1; return n * f(n-1); }; print f(5);`},
		{"for_loop_continue", `for (let i = 0; i < 3; i = i + 1) { if (i == 1) continue; print i; }`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			diags := &token.Diagnostics{}
			toks := lexer.New(c.src, diags).Lex()
			prog, err := parser.New(toks, diags).Parse()
			require.NoError(t, err)

			var buf bytes.Buffer
			e := New()
			e.SetWriter(&buf)
			require.NoError(t, e.Run(prog))

			snaps.MatchSnapshot(t, fmt.Sprintf("%s_stdout", c.name), buf.String())
		})
	}
}
