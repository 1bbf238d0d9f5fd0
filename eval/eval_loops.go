/*
File    : msl/eval/eval_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import "github.com/akashmaji946/msl/ast"

// execForLoop pushes one frame for the loop's whole lifetime, runs the
// optional init inside it, then repeats condition/body/increment. Break
// stops the loop; continue falls through to the increment step; return
// propagates outward (core spec §4.5).
func (e *Evaluator) execForLoop(s *ast.ForLoopStatement) (Signal, error) {
	e.pushFrame(Environment{})
	defer e.popFrame()

	if s.Init != nil {
		if _, err := e.execStatement(s.Init); err != nil {
			return Signal{}, err
		}
	}

	for {
		if s.Condition != nil {
			cond, err := e.evalExpr(s.Condition)
			if err != nil {
				return Signal{}, err
			}
			if !cond.ToBoolean() {
				break
			}
		}

		sig, err := e.execStatement(s.Body)
		if err != nil {
			return Signal{}, err
		}
		if sig.Kind == SignalBreak {
			break
		}
		if sig.Kind == SignalReturn {
			return sig, nil
		}

		if s.Increment != nil {
			if _, err := e.evalExpr(s.Increment); err != nil {
				return Signal{}, err
			}
		}
	}
	return Signal{}, nil
}

// execWhileLoop pushes a fresh frame for the loop's lifetime, preserving
// the asymmetry with do-while noted in DESIGN.md (core spec §4.5, §9).
func (e *Evaluator) execWhileLoop(s *ast.WhileLoopStatement) (Signal, error) {
	e.pushFrame(Environment{})
	defer e.popFrame()

	for {
		if s.Condition != nil {
			cond, err := e.evalExpr(s.Condition)
			if err != nil {
				return Signal{}, err
			}
			if !cond.ToBoolean() {
				break
			}
		}

		sig, err := e.execStatement(s.Body)
		if err != nil {
			return Signal{}, err
		}
		if sig.Kind == SignalBreak {
			break
		}
		if sig.Kind == SignalReturn {
			return sig, nil
		}
	}
	return Signal{}, nil
}

// execDoWhileLoop runs the body at least once, then repeats while the
// condition is truthy. Unlike execWhileLoop it pushes no frame of its own.
func (e *Evaluator) execDoWhileLoop(s *ast.DoWhileLoopStatement) (Signal, error) {
	for {
		sig, err := e.execStatement(s.Body)
		if err != nil {
			return Signal{}, err
		}
		if sig.Kind == SignalBreak {
			break
		}
		if sig.Kind == SignalReturn {
			return sig, nil
		}

		cond, err := e.evalExpr(s.Condition)
		if err != nil {
			return Signal{}, err
		}
		if !cond.ToBoolean() {
			break
		}
	}
	return Signal{}, nil
}
