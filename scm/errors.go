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

// The tokenizer, parser and evaluator never recover from their own errors:
// they panic with one of the concrete kinds below and the panic unwinds to
// the driver (REPL or file loader), which is the sole recovery boundary.
// SchemeError itself is never raised directly.
type SchemeError interface {
	error
	scheme()
}

// SyntaxError reports unmatched parentheses or trailing tokens after a
// complete top-level expression. Unbalanced marks input that might become
// valid with more text; the REPL uses it for its continuation prompt.
type SyntaxError struct {
	Msg        string
	Unbalanced bool
}

func (e SyntaxError) Error() string { return "SyntaxError: " + e.Msg }
func (SyntaxError) scheme()         {}

// NameError reports a lookup that exhausted the frame chain, or a set! that
// found no existing binding outside the immutable root.
type NameError struct {
	Name Symbol
}

func (e NameError) Error() string { return "NameError: " + string(e.Name) + " is not bound" }
func (NameError) scheme()         {}

// EvaluationError covers everything else: wrong argument counts, applying a
// non-callable value, malformed special forms, pair/list misuse, division
// by zero.
type EvaluationError struct {
	Msg string
}

func (e EvaluationError) Error() string { return "EvaluationError: " + e.Msg }
func (EvaluationError) scheme()         {}
