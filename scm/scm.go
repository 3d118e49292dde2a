/*
Copyright (C) 2025  Carl-Philip Hänsch
Copyright (C) 2013  Pieter Kelchtermans (originally licensed unter WTFPL 2.0)

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
/*
 * A minimal Scheme interpreter, as seen in lis.py and SICP
 * http://norvig.com/lispy.html
 * http://mitpress.mit.edu/sicp/full-text/sicp/book/node77.html
 *
 * Pieter Kelchtermans 2013
 * LICENSE: WTFPL 2.0
 */
package scm

import (
	"fmt"
)

/*
 Eval / Apply
*/

// Eval interprets an expression tree against a frame. Special forms are
// dispatched on a fixed keyword set before ordinary application, so a
// user-level binding can never shadow their special handling. No tail-call
// optimization is performed: each nested evaluation takes one host stack
// frame and the driver raises the stack cap accordingly.
func Eval(expression Scmer, en *Env) Scmer {
	switch e := expression.(type) {
	case int64, float64, bool:
		return e
	case Symbol:
		if e == "nil" {
			return nil // the empty list, not subject to lookup or shadowing
		}
		return en.Lookup(e)
	case []Scmer:
		if len(e) == 0 {
			panic(EvaluationError{"cannot evaluate an empty expression"})
		}
		if head, ok := e[0].(Symbol); ok {
			switch head {
			case "define":
				if len(e) != 3 {
					panic(EvaluationError{"define expects a target and a value"})
				}
				switch target := e[1].(type) {
				case Symbol:
					value := Eval(e[2], en)
					en.Vars[target] = value
					return value
				case []Scmer:
					// (define (name p1 p2 ...) body) sugar
					if len(target) == 0 {
						panic(EvaluationError{"define expects a function name"})
					}
					name := mustSymbol(target[0], "define")
					proc := &Proc{paramList(target[1:], "define"), e[2], en}
					en.Vars[name] = proc
					return proc
				}
				panic(EvaluationError{"define target must be a symbol or a (name params...) list"})
			case "lambda":
				if len(e) != 3 {
					panic(EvaluationError{"lambda expects a parameter list and a body"})
				}
				params, ok := e[1].([]Scmer)
				if !ok {
					panic(EvaluationError{"lambda parameters must be a list"})
				}
				return &Proc{paramList(params, "lambda"), e[2], en}
			case "if":
				if len(e) != 4 {
					panic(EvaluationError{"if expects a condition and two branches"})
				}
				if ToBool(Eval(e[1], en)) {
					return Eval(e[2], en)
				}
				return Eval(e[3], en)
			case "and":
				for _, x := range e[1:] {
					if !ToBool(Eval(x, en)) {
						return false // remaining operands are never evaluated
					}
				}
				return true
			case "or":
				for _, x := range e[1:] {
					if ToBool(Eval(x, en)) {
						return true
					}
				}
				return false
			case "let":
				if len(e) != 3 {
					panic(EvaluationError{"let expects a binding list and a body"})
				}
				bindings, ok := e[1].([]Scmer)
				if !ok {
					panic(EvaluationError{"let bindings must be a list"})
				}
				en2 := NewEnv(en)
				for _, b := range bindings {
					bind, ok := b.([]Scmer)
					if !ok || len(bind) != 2 {
						panic(EvaluationError{"let binding must be a (name value) pair"})
					}
					// sequential: each init already sees the earlier bindings
					en2.Vars[mustSymbol(bind[0], "let")] = Eval(bind[1], en2)
				}
				return Eval(e[2], en2)
			case "set!":
				if len(e) != 3 {
					panic(EvaluationError{"set! expects a name and a value"})
				}
				name := mustSymbol(e[1], "set!")
				value := Eval(e[2], en)
				target := en.FindWrite(name)
				if target == nil {
					panic(NameError{name})
				}
				target.Vars[name] = value
				return value
			case "del":
				if len(e) != 2 {
					panic(EvaluationError{"del expects a name"})
				}
				name := mustSymbol(e[1], "del")
				value, ok := en.Vars[name]
				if !ok {
					panic(NameError{name})
				}
				delete(en.Vars, name)
				return value
			}
		}
		// apply
		procedure := Eval(e[0], en)
		args := make([]Scmer, len(e)-1)
		for i, x := range e[1:] {
			args[i] = Eval(x, en)
		}
		return Apply(procedure, args...)
	}
	panic(EvaluationError{"cannot evaluate " + String(expression)})
}

// Apply invokes a native procedure or a closure with already-evaluated
// arguments. Declared natives get their argument count checked against the
// declaration bounds; closures demand an exact argument count and chain
// their frame to the captured environment, never the caller's.
func Apply(procedure Scmer, args ...Scmer) Scmer {
	switch p := procedure.(type) {
	case func(...Scmer) Scmer:
		if def := DeclarationForValue(p); def != nil {
			if len(args) < def.MinParameter || len(args) > def.MaxParameter {
				panic(EvaluationError{fmt.Sprintf("%s expects %d to %d arguments, got %d", def.Name, def.MinParameter, def.MaxParameter, len(args))})
			}
		}
		return p(args...)
	case *Proc:
		if len(args) != len(p.Params) {
			panic(EvaluationError{fmt.Sprintf("closure with %d parameters was called with %d arguments", len(p.Params), len(args))})
		}
		en := &Env{make(Vars, len(p.Params)), p.En}
		for i, param := range p.Params {
			en.Vars[param] = args[i]
		}
		return Eval(p.Body, en)
	}
	panic(EvaluationError{"not a callable value: " + String(procedure)})
}

/*
 Environments
*/

type Vars map[Symbol]Scmer

// Env is one binding frame with a single parent reference. The root frame
// is Globalenv (Outer == nil); it holds all builtins. Closures keep their
// defining Env alive across arbitrary lifetimes and a closure may be stored
// in the very frame it captured, so frames and closures form reference
// cycles; Go's tracing collector reclaims those.
type Env struct {
	Vars  Vars
	Outer *Env
}

func NewEnv(outer *Env) *Env {
	return &Env{make(Vars), outer}
}

// Lookup walks the parent chain up to and including the root.
func (e *Env) Lookup(s Symbol) Scmer {
	if v, ok := e.Vars[s]; ok {
		return v
	}
	if e.Outer == nil {
		panic(NameError{s})
	}
	return e.Outer.Lookup(s)
}

// FindWrite returns the nearest enclosing frame that already binds s, for
// set!. The root is never returned: builtins are immutable.
func (e *Env) FindWrite(s Symbol) *Env {
	if e.Outer == nil {
		return nil
	}
	if _, ok := e.Vars[s]; ok {
		return e
	}
	return e.Outer.FindWrite(s)
}

/*
 Primitives
*/

var Globalenv Env

func init() {
	Globalenv = Env{
		Vars{
			Symbol("#t"): true,
			Symbol("#f"): false,
		},
		nil,
	}

	DeclareTitle("Special forms")
	Declare(&Globalenv, &Declaration{
		"define", "binds a value in the local frame and returns it; with a (name params...) target it binds a closure over the current frame",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"target", "symbol|list", "variable name, or (name params...) for the function shorthand"},
			DeclarationParameter{"value", "any", "expression evaluated in the current frame"},
		}, "any", nil,
	})
	Declare(&Globalenv, &Declaration{
		"lambda", "returns a closure capturing the current frame; the body is not evaluated until the closure is called",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"parameters", "list", "list of parameter names"},
			DeclarationParameter{"body", "any", "expression evaluated on invocation"},
		}, "func", nil,
	})
	Declare(&Globalenv, &Declaration{
		"if", "evaluates the condition, then exactly one of the two branches",
		3, 3,
		[]DeclarationParameter{
			DeclarationParameter{"condition", "any", "condition to evaluate"},
			DeclarationParameter{"true-branch", "any", "evaluated if the condition is truthy"},
			DeclarationParameter{"false-branch", "any", "evaluated otherwise"},
		}, "any", nil,
	})
	Declare(&Globalenv, &Declaration{
		"and", "evaluates operands left to right and returns false at the first falsy one without touching the rest",
		0, 10000,
		[]DeclarationParameter{
			DeclarationParameter{"condition...", "any", "operands"},
		}, "bool", nil,
	})
	Declare(&Globalenv, &Declaration{
		"or", "evaluates operands left to right and returns true at the first truthy one without touching the rest",
		0, 10000,
		[]DeclarationParameter{
			DeclarationParameter{"condition...", "any", "operands"},
		}, "bool", nil,
	})
	Declare(&Globalenv, &Declaration{
		"let", "creates a child frame, binds each (name value) in order so later inits see earlier ones, then evaluates the body there",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"bindings", "list", "list of (name value) pairs, bound sequentially"},
			DeclarationParameter{"body", "any", "expression evaluated in the new frame"},
		}, "any", nil,
	})
	Declare(&Globalenv, &Declaration{
		"set!", "mutates the nearest enclosing binding of the name; never creates one and never touches the root",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"name", "symbol", "already-bound variable"},
			DeclarationParameter{"value", "any", "expression evaluated in the current frame"},
		}, "any", nil,
	})
	Declare(&Globalenv, &Declaration{
		"del", "removes and returns the local binding for the name",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"name", "symbol", "locally bound variable"},
		}, "any", nil,
	})

	init_alu()
	init_list()
}
