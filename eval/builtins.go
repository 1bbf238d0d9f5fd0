/*
File    : msl/eval/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/msl/object"
)

// installBuiltins populates the globals frame with the fixed surface core
// spec §4.6 names: Print and Read. Both are heap-allocated native Functions,
// not special forms, so they travel through the same call path as any user
// function (core spec §4.7).
func (e *Evaluator) installBuiltins() {
	globals := e.Stack[0]

	printFn := e.Heap.NewNativeFunction("Print", true, func(args []object.Value) object.Value {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = a.ToString()
		}
		fmt.Fprintln(e.Writer, strings.Join(parts, " "))
		return object.Null
	})
	globals["Print"] = object.FunctionValue(printFn)

	readFn := e.Heap.NewNativeFunction("Read", false, func(args []object.Value) object.Value {
		line, err := e.Reader.ReadString('\n')
		if err != nil && line == "" {
			return object.String("")
		}
		line = strings.TrimRight(line, "\r\n")
		return object.String(line)
	})
	globals["Read"] = object.FunctionValue(readFn)
}
