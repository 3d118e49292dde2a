/*
Copyright (C) 2025  Carl-Philip Hänsch

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import (
	"errors"
	"testing"
)

func run(t *testing.T, en *Env, source string) Scmer {
	t.Helper()
	result, err := EvalString(source, en)
	if err != nil {
		t.Fatalf("eval %q: %v", source, err)
	}
	return result
}

func evalErr(t *testing.T, en *Env, source string) error {
	t.Helper()
	_, err := EvalString(source, en)
	if err == nil {
		t.Fatalf("eval %q: expected an error", source)
	}
	return err
}

func TestEvalArithmeticExpressions(t *testing.T) {
	en := NewEnv(&Globalenv)
	if v := run(t, en, "(+ 3 7 2)"); v != int64(12) {
		t.Fatalf("expected 12, got %v", v)
	}
	if v := run(t, en, "(+ 3 (- 7 5))"); v != int64(5) {
		t.Fatalf("expected 5, got %v", v)
	}
}

func TestDefineReturnsValue(t *testing.T) {
	en := NewEnv(&Globalenv)
	if v := run(t, en, "(define x 42)"); v != int64(42) {
		t.Fatalf("define should return the bound value, got %v", v)
	}
	if v := run(t, en, "x"); v != int64(42) {
		t.Fatalf("x should be 42, got %v", v)
	}
}

func TestDefineFunctionShorthand(t *testing.T) {
	en := NewEnv(&Globalenv)
	run(t, en, "(define (square x) (* x x))")
	if v := run(t, en, "(square 7)"); v != int64(49) {
		t.Fatalf("expected 49, got %v", v)
	}
}

func TestLexicalScoping(t *testing.T) {
	// f captures the frame where it was defined, so the x bound in g's
	// frame must be invisible to it
	en := NewEnv(&Globalenv)
	run(t, en, "(define x 1)")
	run(t, en, "(define (f) x)")
	run(t, en, "(define (g x) (f))")
	if v := run(t, en, "(g 99)"); v != int64(1) {
		t.Fatalf("lexical scoping violated: expected 1, got %v", v)
	}
}

func TestClosureKeepsFrameAlive(t *testing.T) {
	en := NewEnv(&Globalenv)
	run(t, en, "(define make-counter (lambda (n) (lambda () (begin (set! n (+ n 1)) n))))")
	run(t, en, "(define c (make-counter 10))")
	if v := run(t, en, "(c)"); v != int64(11) {
		t.Fatalf("expected 11, got %v", v)
	}
	if v := run(t, en, "(c)"); v != int64(12) {
		t.Fatalf("expected 12, got %v", v)
	}
	// a second counter has its own frame
	run(t, en, "(define c2 (make-counter 0))")
	if v := run(t, en, "(c2)"); v != int64(1) {
		t.Fatalf("expected 1, got %v", v)
	}
	if v := run(t, en, "(c)"); v != int64(13) {
		t.Fatalf("expected 13, got %v", v)
	}
}

func TestLetBindsSequentially(t *testing.T) {
	en := NewEnv(&Globalenv)
	if v := run(t, en, "(let ((x 2) (y (+ x 1))) y)"); v != int64(3) {
		t.Fatalf("later let inits must see earlier bindings, got %v", v)
	}
	// the let frame must not leak
	evalErr(t, en, "x")
}

func TestSetMutatesNearestEnclosingBinding(t *testing.T) {
	en := NewEnv(&Globalenv)
	run(t, en, "(define x 1)")
	run(t, en, "(define (bump) (set! x (+ x 1)))")
	run(t, en, "(bump)")
	if v := run(t, en, "x"); v != int64(2) {
		t.Fatalf("set! should have mutated the defining frame, got %v", v)
	}
}

func TestSetNeverCreatesOrTouchesRoot(t *testing.T) {
	en := NewEnv(&Globalenv)
	err := evalErr(t, en, "(set! unbound-name 1)")
	var ne NameError
	if !errors.As(err, &ne) || ne.Name != "unbound-name" {
		t.Fatalf("expected NameError for unbound-name, got %v", err)
	}
	// builtins live in the root frame and the root is immutable to set!
	err = evalErr(t, en, "(set! + 1)")
	if !errors.As(err, &ne) {
		t.Fatalf("expected NameError for set! on a builtin, got %v", err)
	}
	if Globalenv.Vars[Symbol("+")] == nil {
		t.Fatalf("root binding for + was touched")
	}
}

func TestShortCircuitAndOr(t *testing.T) {
	en := NewEnv(&Globalenv)
	// the undefined symbol after the deciding operand must never be evaluated
	if v := run(t, en, "(and 1 0 undefined-symbol)"); v != false {
		t.Fatalf("expected #f, got %v", v)
	}
	if v := run(t, en, "(or 0 1 undefined-symbol)"); v != true {
		t.Fatalf("expected #t, got %v", v)
	}
	if v := run(t, en, "(and)"); v != true {
		t.Fatalf("(and) should be #t, got %v", v)
	}
	if v := run(t, en, "(or)"); v != false {
		t.Fatalf("(or) should be #f, got %v", v)
	}
	err := evalErr(t, en, "(and 1 undefined-symbol 2)")
	var ne NameError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NameError, got %v", err)
	}
}

func TestIfEvaluatesExactlyOneBranch(t *testing.T) {
	en := NewEnv(&Globalenv)
	if v := run(t, en, "(if #t 1 undefined-symbol)"); v != int64(1) {
		t.Fatalf("expected 1, got %v", v)
	}
	if v := run(t, en, "(if 0 undefined-symbol 2)"); v != int64(2) {
		t.Fatalf("0 must be falsy, got %v", v)
	}
}

func TestClosureArityIsExact(t *testing.T) {
	en := NewEnv(&Globalenv)
	err := evalErr(t, en, "((lambda (x) x) 1 2)")
	var ee EvaluationError
	if !errors.As(err, &ee) {
		t.Fatalf("expected EvaluationError, got %v", err)
	}
	err = evalErr(t, en, "((lambda (x y) x) 1)")
	if !errors.As(err, &ee) {
		t.Fatalf("expected EvaluationError, got %v", err)
	}
}

func TestBuiltinArityIsChecked(t *testing.T) {
	en := NewEnv(&Globalenv)
	err := evalErr(t, en, "(not 1 2)")
	var ee EvaluationError
	if !errors.As(err, &ee) {
		t.Fatalf("expected EvaluationError, got %v", err)
	}
	err = evalErr(t, en, "(cons 1)")
	if !errors.As(err, &ee) {
		t.Fatalf("expected EvaluationError, got %v", err)
	}
}

func TestUnboundLookup(t *testing.T) {
	en := NewEnv(&Globalenv)
	err := evalErr(t, en, "no-such-binding")
	var ne NameError
	if !errors.As(err, &ne) || ne.Name != "no-such-binding" {
		t.Fatalf("expected NameError for no-such-binding, got %v", err)
	}
}

func TestDelRemovesLocalBindingOnly(t *testing.T) {
	en := NewEnv(&Globalenv)
	run(t, en, "(define x 1)")
	if v := run(t, en, "(del x)"); v != int64(1) {
		t.Fatalf("del should return the removed value, got %v", v)
	}
	evalErr(t, en, "x")
	// del does not search outer frames
	run(t, en, "(define y 5)")
	err := evalErr(t, en, "((lambda () (del y)))")
	var ne NameError
	if !errors.As(err, &ne) {
		t.Fatalf("expected NameError, got %v", err)
	}
	if v := run(t, en, "y"); v != int64(5) {
		t.Fatalf("outer binding must survive, got %v", v)
	}
}

func TestEmptyExpressionFails(t *testing.T) {
	en := NewEnv(&Globalenv)
	err := evalErr(t, en, "()")
	var ee EvaluationError
	if !errors.As(err, &ee) {
		t.Fatalf("expected EvaluationError, got %v", err)
	}
}

func TestApplyNonCallableFails(t *testing.T) {
	en := NewEnv(&Globalenv)
	err := evalErr(t, en, "(1 2 3)")
	var ee EvaluationError
	if !errors.As(err, &ee) {
		t.Fatalf("expected EvaluationError, got %v", err)
	}
}

func TestNilLiteralIsUnshadowable(t *testing.T) {
	en := NewEnv(&Globalenv)
	if v := run(t, en, "nil"); v != nil {
		t.Fatalf("nil should evaluate to the empty list, got %v", v)
	}
	run(t, en, "(define nil 5)")
	if v := run(t, en, "nil"); v != nil {
		t.Fatalf("nil must stay the empty list even after define, got %v", v)
	}
}

func TestSpecialFormsAreUnshadowable(t *testing.T) {
	en := NewEnv(&Globalenv)
	run(t, en, "(define if 42)")
	if v := run(t, en, "(if #t 1 2)"); v != int64(1) {
		t.Fatalf("if must stay a special form, got %v", v)
	}
}

func TestMalformedSpecialForms(t *testing.T) {
	en := NewEnv(&Globalenv)
	var ee EvaluationError
	for _, source := range []string{
		"(define)",
		"(define x)",
		"(define x 1 2)",
		"(define 5 1)",
		"(define ())",
		"(lambda (x))",
		"(lambda 5 x)",
		"(lambda (1) x)",
		"(if #t 1)",
		"(let ((x)) x)",
		"(let 5 x)",
		"(set! 5 1)",
		"(del 5)",
	} {
		err := evalErr(t, en, source)
		if !errors.As(err, &ee) {
			t.Fatalf("eval %q: expected EvaluationError, got %v", source, err)
		}
	}
}

func TestEvalAllRunsEveryExpression(t *testing.T) {
	en := NewEnv(&Globalenv)
	result, err := EvalAll("(define a 1)\n(define b 2)\n(+ a b)", en)
	if err != nil {
		t.Fatalf("EvalAll: %v", err)
	}
	if result != int64(3) {
		t.Fatalf("expected the last value 3, got %v", result)
	}
	// definitions before a failure survive
	_, err = EvalAll("(define c 7) (oops)", en)
	if err == nil {
		t.Fatalf("expected an error")
	}
	if v := run(t, en, "c"); v != int64(7) {
		t.Fatalf("expected c to survive the failed run, got %v", v)
	}
}
