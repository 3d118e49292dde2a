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
	"reflect"
)

// addAll accumulates in int64 and promotes to float64 at the first float
// operand.
func addAll(a []Scmer, op string) Scmer {
	var sumInt int64
	var sumFloat float64
	isFloat := false
	for _, v := range a {
		switch n := v.(type) {
		case int64:
			if isFloat {
				sumFloat += float64(n)
			} else {
				sumInt += n
			}
		case float64:
			if !isFloat {
				isFloat = true
				sumFloat = float64(sumInt)
			}
			sumFloat += n
		default:
			panic(EvaluationError{op + " expects numbers, got " + String(v)})
		}
	}
	if isFloat {
		return sumFloat
	}
	return sumInt
}

func requireNumber(v Scmer, op string) float64 {
	if f, ok := numericValue(v); ok {
		return f
	}
	panic(EvaluationError{op + " expects numbers, got " + String(v)})
}

// Equal is the equal? primitive on two values: numbers compare by value
// across int64/float64, pairs and closures by identity, native procedures by
// code pointer.
func Equal(a, b Scmer) bool {
	if x, ok := numericValue(a); ok {
		y, ok := numericValue(b)
		return ok && x == y
	}
	switch x := a.(type) {
	case nil:
		return b == nil
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x == y
	case *Pair:
		y, ok := b.(*Pair)
		return ok && x == y
	case *Proc:
		y, ok := b.(*Proc)
		return ok && x == y
	case func(...Scmer) Scmer:
		y, ok := b.(func(...Scmer) Scmer)
		return ok && reflect.ValueOf(x).Pointer() == reflect.ValueOf(y).Pointer()
	}
	return false
}

// compareChain implements >, >=, <, <=: true iff every adjacent operand
// pair satisfies the ordering. Each operator keeps its own function literal
// so the declaration registry can tell them apart by code pointer.
func compareChain(name string, a []Scmer, ok func(x, y float64) bool) Scmer {
	for i := 0; i+1 < len(a); i++ {
		if !ok(requireNumber(a[i], name), requireNumber(a[i+1], name)) {
			return false
		}
	}
	return true
}

func init_alu() {
	DeclareTitle("Arithmetic / Logic")

	Declare(&Globalenv, &Declaration{
		"+", "adds zero or more numbers; (+) is 0",
		0, 10000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "values to add"},
		}, "number",
		func(a ...Scmer) Scmer {
			return addAll(a, "+")
		},
	})
	Declare(&Globalenv, &Declaration{
		"-", "negates a single number, otherwise subtracts the sum of the rest from the first",
		1, 10000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "minuend followed by subtrahends"},
		}, "number",
		func(a ...Scmer) Scmer {
			if len(a) == 1 {
				switch n := a[0].(type) {
				case int64:
					return -n
				case float64:
					return -n
				}
				panic(EvaluationError{"- expects numbers, got " + String(a[0])})
			}
			rest := addAll(a[1:], "-")
			switch x := a[0].(type) {
			case int64:
				if y, ok := rest.(int64); ok {
					return x - y
				}
				return float64(x) - rest.(float64)
			case float64:
				if y, ok := rest.(int64); ok {
					return x - float64(y)
				}
				return x - rest.(float64)
			}
			panic(EvaluationError{"- expects numbers, got " + String(a[0])})
		},
	})
	Declare(&Globalenv, &Declaration{
		"*", "multiplies zero or more numbers; (*) is 1",
		0, 10000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "values to multiply"},
		}, "number",
		func(a ...Scmer) Scmer {
			var prodInt int64 = 1
			var prodFloat float64
			isFloat := false
			for _, v := range a {
				switch n := v.(type) {
				case int64:
					if isFloat {
						prodFloat *= float64(n)
					} else {
						prodInt *= n
					}
				case float64:
					if !isFloat {
						isFloat = true
						prodFloat = float64(prodInt)
					}
					prodFloat *= n
				default:
					panic(EvaluationError{"* expects numbers, got " + String(v)})
				}
			}
			if isFloat {
				return prodFloat
			}
			return prodInt
		},
	})
	Declare(&Globalenv, &Declaration{
		"/", "reciprocates a single number, otherwise divides the first by the rest; the result is floating-point and a zero divisor is an error",
		1, 10000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "dividend followed by divisors"},
		}, "number",
		func(a ...Scmer) Scmer {
			if len(a) == 1 {
				x := requireNumber(a[0], "/")
				if x == 0 {
					panic(EvaluationError{"division by zero"})
				}
				return 1 / x
			}
			result := requireNumber(a[0], "/")
			for _, v := range a[1:] {
				d := requireNumber(v, "/")
				if d == 0 {
					panic(EvaluationError{"division by zero"})
				}
				result /= d
			}
			return result
		},
	})
	Declare(&Globalenv, &Declaration{
		"equal?", "returns true iff all arguments are pairwise equal",
		1, 10000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "any", "values to compare"},
		}, "bool",
		func(a ...Scmer) Scmer {
			for _, v := range a[1:] {
				if !Equal(a[0], v) {
					return false
				}
			}
			return true
		},
	})
	Declare(&Globalenv, &Declaration{
		">", "returns true iff the arguments are strictly decreasing",
		1, 10000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "values to compare"},
		}, "bool",
		func(a ...Scmer) Scmer {
			return compareChain(">", a, func(x, y float64) bool { return x > y })
		},
	})
	Declare(&Globalenv, &Declaration{
		">=", "returns true iff the arguments are nonincreasing",
		1, 10000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "values to compare"},
		}, "bool",
		func(a ...Scmer) Scmer {
			return compareChain(">=", a, func(x, y float64) bool { return x >= y })
		},
	})
	Declare(&Globalenv, &Declaration{
		"<", "returns true iff the arguments are strictly increasing",
		1, 10000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "values to compare"},
		}, "bool",
		func(a ...Scmer) Scmer {
			return compareChain("<", a, func(x, y float64) bool { return x < y })
		},
	})
	Declare(&Globalenv, &Declaration{
		"<=", "returns true iff the arguments are nondecreasing",
		1, 10000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "number", "values to compare"},
		}, "bool",
		func(a ...Scmer) Scmer {
			return compareChain("<=", a, func(x, y float64) bool { return x <= y })
		},
	})
	Declare(&Globalenv, &Declaration{
		"not", "logical negation of exactly one value",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "any", "value to negate"},
		}, "bool",
		func(a ...Scmer) Scmer {
			return !ToBool(a[0])
		},
	})
	Declare(&Globalenv, &Declaration{
		"begin", "returns its last already-evaluated argument",
		1, 10000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "any", "expressions, evaluated left to right as arguments"},
		}, "any",
		func(a ...Scmer) Scmer {
			return a[len(a)-1]
		},
	})
}
