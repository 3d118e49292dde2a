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
package scm

// Scmer is any interpreter value:
//   - int64 / float64 (numbers; literals canonicalize to int64 when exactly representable)
//   - Symbol
//   - bool (the source literals #t and #f are root-frame bindings)
//   - nil (the empty list)
//   - *Pair (a mutable cons cell)
//   - *Proc (a closure)
//   - func(...Scmer) Scmer (a native procedure)
//   - []Scmer (unevaluated code, as produced by the parser)
type Scmer any

type Symbol string // symbols are represented by strings

// Pair is a mutable two-field cons cell. A proper list is nil or a pair
// whose Cdr is a proper list; either field may hold any value.
type Pair struct {
	Car Scmer
	Cdr Scmer
}

// Proc is a closure: an unevaluated body, the parameter names and the frame
// captured at definition time. Invocation chains a new frame to En, never to
// the caller's frame, which is what makes scoping lexical.
type Proc struct {
	Params []Symbol
	Body   Scmer
	En     *Env
}

// ToBool implements the language's truthiness: nil, #f and numeric zero are
// falsy, every other value is truthy.
func ToBool(v Scmer) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case int64:
		return v != 0
	case float64:
		return v != 0
	}
	return true
}

func isCallable(v Scmer) bool {
	switch v.(type) {
	case func(...Scmer) Scmer, *Proc:
		return true
	}
	return false
}

// numericValue widens either number representation to float64.
func numericValue(v Scmer) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func mustSymbol(v Scmer, form string) Symbol {
	if s, ok := v.(Symbol); ok {
		return s
	}
	panic(EvaluationError{form + " expects a symbol, got " + String(v)})
}

func paramList(params []Scmer, form string) []Symbol {
	names := make([]Symbol, len(params))
	for i, p := range params {
		names[i] = mustSymbol(p, form)
	}
	return names
}
