/*
File    : msl/eval/eval_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/msl/token"
)

func (e *Evaluator) runtimeErrorf(tok token.Token, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Tok: tok, Msg: fmt.Sprintf(format, args...)}
}
