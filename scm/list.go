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

func isProperList(v Scmer) bool {
	for v != nil {
		p, ok := v.(*Pair)
		if !ok {
			return false
		}
		v = p.Cdr
	}
	return true
}

func properLength(v Scmer, op string) int64 {
	var n int64
	for v != nil {
		p, ok := v.(*Pair)
		if !ok {
			panic(EvaluationError{op + " expects a proper list, got " + String(v)})
		}
		n++
		v = p.Cdr
	}
	return n
}

// listRef walks idx rest-links and returns the car. A bare pair that is not
// a proper list answers index 0 with its car; any other index on it fails.
func listRef(v Scmer, idx int64, op string) Scmer {
	if p, ok := v.(*Pair); ok && !isProperList(v) {
		if idx != 0 {
			panic(EvaluationError{op + ": only index 0 is valid on a bare pair"})
		}
		return p.Car
	}
	if idx < 0 || idx >= properLength(v, op) {
		panic(EvaluationError{op + ": index out of range"})
	}
	cur := v.(*Pair)
	for ; idx > 0; idx-- {
		cur = cur.Cdr.(*Pair)
	}
	return cur.Car
}

// appendLists concatenates copies of proper lists; the inputs are never
// mutated. No arguments yields the empty list.
func appendLists(a ...Scmer) Scmer {
	var head, tail *Pair
	for _, arg := range a {
		if !isProperList(arg) {
			panic(EvaluationError{"append expects proper lists, got " + String(arg)})
		}
		for cur := arg; cur != nil; {
			p := cur.(*Pair)
			cell := &Pair{p.Car, nil}
			if head == nil {
				head = cell
			} else {
				tail.Cdr = cell
			}
			tail = cell
			cur = p.Cdr
		}
	}
	if head == nil {
		return nil
	}
	return head
}

func init_list() {
	DeclareTitle("Lists")

	Declare(&Globalenv, &Declaration{
		"cons", "constructs a mutable pair from two values",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"car", "any", "first field"},
			DeclarationParameter{"cdr", "any", "rest field"},
		}, "list",
		func(a ...Scmer) Scmer {
			return &Pair{a[0], a[1]}
		},
	})
	Declare(&Globalenv, &Declaration{
		"car", "extracts the first field of a pair",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"pair", "list", "pair to read"},
		}, "any",
		func(a ...Scmer) Scmer {
			p, ok := a[0].(*Pair)
			if !ok {
				panic(EvaluationError{"car expects a pair, got " + String(a[0])})
			}
			return p.Car
		},
	})
	Declare(&Globalenv, &Declaration{
		"cdr", "extracts the rest field of a pair",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"pair", "list", "pair to read"},
		}, "any",
		func(a ...Scmer) Scmer {
			p, ok := a[0].(*Pair)
			if !ok {
				panic(EvaluationError{"cdr expects a pair, got " + String(a[0])})
			}
			return p.Cdr
		},
	})
	Declare(&Globalenv, &Declaration{
		"list", "builds a right-nested pair chain terminated by nil; no arguments yields nil",
		0, 10000,
		[]DeclarationParameter{
			DeclarationParameter{"value...", "any", "elements of the list"},
		}, "list",
		func(a ...Scmer) Scmer {
			var result Scmer
			for i := len(a) - 1; i >= 0; i-- {
				result = &Pair{a[i], result}
			}
			return result
		},
	})
	Declare(&Globalenv, &Declaration{
		"list?", "tells whether the value is a proper list: nil, or a pair whose rest is a proper list",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"value", "any", "value to examine"},
		}, "bool",
		func(a ...Scmer) Scmer {
			return isProperList(a[0])
		},
	})
	Declare(&Globalenv, &Declaration{
		"length", "counts the elements of a proper list",
		1, 1,
		[]DeclarationParameter{
			DeclarationParameter{"list", "list", "proper list"},
		}, "int",
		func(a ...Scmer) Scmer {
			return properLength(a[0], "length")
		},
	})
	Declare(&Globalenv, &Declaration{
		"list-ref", "returns the element at the given index; on a bare pair only index 0 is valid and returns its car",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"list", "list", "proper list or bare pair"},
			DeclarationParameter{"index", "int", "index beginning from 0"},
		}, "any",
		func(a ...Scmer) Scmer {
			idx, ok := a[1].(int64)
			if !ok {
				panic(EvaluationError{"list-ref expects an integer index, got " + String(a[1])})
			}
			return listRef(a[0], idx, "list-ref")
		},
	})
	Declare(&Globalenv, &Declaration{
		"append", "concatenates copies of the given lists without mutating them.\nNo arguments yields nil; a single list yields a structurally equal copy.",
		0, 10000,
		[]DeclarationParameter{
			DeclarationParameter{"list...", "list", "lists to concatenate"},
		}, "list",
		appendLists,
	})
	Declare(&Globalenv, &Declaration{
		"map", "applies the function to each element in list order and collects the results in a new list",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"function", "func", "callable of one argument"},
			DeclarationParameter{"list", "list", "proper list to walk"},
		}, "list",
		func(a ...Scmer) Scmer {
			fn, lst := a[0], a[1]
			if !isCallable(fn) || !isProperList(lst) {
				panic(EvaluationError{"map expects a callable and a proper list"})
			}
			var head, tail *Pair
			n := properLength(lst, "map")
			for i := int64(0); i < n; i++ {
				cell := &Pair{Apply(fn, listRef(lst, i, "map")), nil}
				if head == nil {
					head = cell
				} else {
					tail.Cdr = cell
				}
				tail = cell
			}
			if head == nil {
				return nil
			}
			return head
		},
	})
	Declare(&Globalenv, &Declaration{
		"filter", "collects the elements, in list order, for which the function returns a truthy value",
		2, 2,
		[]DeclarationParameter{
			DeclarationParameter{"function", "func", "predicate of one argument"},
			DeclarationParameter{"list", "list", "proper list to walk"},
		}, "list",
		func(a ...Scmer) Scmer {
			fn, lst := a[0], a[1]
			if !isCallable(fn) || !isProperList(lst) {
				panic(EvaluationError{"filter expects a callable and a proper list"})
			}
			var head, tail *Pair
			n := properLength(lst, "filter")
			for i := int64(0); i < n; i++ {
				v := listRef(lst, i, "filter")
				if !ToBool(Apply(fn, v)) {
					continue
				}
				cell := &Pair{v, nil}
				if head == nil {
					head = cell
				} else {
					tail.Cdr = cell
				}
				tail = cell
			}
			if head == nil {
				return nil
			}
			return head
		},
	})
	Declare(&Globalenv, &Declaration{
		"reduce", "folds the list in order into the seed: (reduce f lst x) computes f(...f(f(x, e0), e1)..., eN)",
		3, 3,
		[]DeclarationParameter{
			DeclarationParameter{"function", "func", "callable of two arguments (accumulator, element)"},
			DeclarationParameter{"list", "list", "proper list to walk"},
			DeclarationParameter{"seed", "any", "initial accumulator"},
		}, "any",
		func(a ...Scmer) Scmer {
			fn, lst := a[0], a[1]
			if !isCallable(fn) || !isProperList(lst) {
				panic(EvaluationError{"reduce expects a callable and a proper list"})
			}
			acc := a[2]
			n := properLength(lst, "reduce")
			for i := int64(0); i < n; i++ {
				acc = Apply(fn, acc, listRef(lst, i, "reduce"))
			}
			return acc
		},
	})
}
