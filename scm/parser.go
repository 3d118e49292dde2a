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
	"strconv"
	"strings"
)

var parenReplacer = strings.NewReplacer("(", " ( ", ")", " ) ")

// Lexical Analysis

// Tokenize splits source text into lexical tokens: "(" and ")" are always
// standalone, everything else is a maximal run of non-whitespace characters.
// Per line, text after the first ";" is a comment; if the comment contains a
// ")", a single ")" is re-appended to the code part so a trailing comment
// cannot swallow a closing parenthesis. Pure function, no side effects.
func Tokenize(source string) []string {
	result := make([]string, 0)
	for _, line := range strings.Split(source, "\n") {
		code, comment, _ := strings.Cut(line, ";")
		if strings.Contains(comment, ")") {
			code += ")"
		}
		result = append(result, strings.Fields(parenReplacer.Replace(code))...)
	}
	return result
}

// Syntactic Analysis

// Parse consumes the token sequence as exactly one top-level expression;
// trailing tokens are a SyntaxError.
func Parse(tokens []string) Scmer {
	expression, next := parseExpression(tokens, 0)
	if next < len(tokens) {
		panic(SyntaxError{Msg: "unexpected tokens after expression: " + strings.Join(tokens[next:], " ")})
	}
	return expression
}

func parseExpression(tokens []string, index int) (Scmer, int) {
	if index >= len(tokens) {
		panic(SyntaxError{Msg: "expecting matching )", Unbalanced: true})
	}
	switch tokens[index] {
	case "(":
		list := make([]Scmer, 0)
		index++
		for {
			if index >= len(tokens) {
				panic(SyntaxError{Msg: "expecting matching )", Unbalanced: true})
			}
			if tokens[index] == ")" {
				return list, index + 1
			}
			var sub Scmer
			sub, index = parseExpression(tokens, index)
			list = append(list, sub)
		}
	case ")":
		panic(SyntaxError{Msg: "unexpected )"})
	}
	return numberOrSymbol(tokens[index]), index + 1
}

// numberOrSymbol canonicalizes an atom token: an integer when exactly
// representable, then a floating-point literal, otherwise a symbol.
func numberOrSymbol(token string) Scmer {
	if i, err := strconv.ParseInt(token, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(token, 64); err == nil {
		return f
	}
	return Symbol(token)
}

// Read parses source text into a single expression tree.
func Read(source string) Scmer {
	return Parse(Tokenize(source))
}

// EvalString tokenizes, parses and evaluates exactly one top-level
// expression against en (a fresh child of Globalenv when nil), converting a
// panicking SchemeError into a returned error. This is the primitive the
// file loader and command-line driver paths consume; the interactive REPL
// recovers on its own instead.
func EvalString(source string, en *Env) (result Scmer, err error) {
	defer func() {
		if r := recover(); r != nil {
			if se, ok := r.(SchemeError); ok {
				err = se
				return
			}
			panic(r)
		}
	}()
	if en == nil {
		en = NewEnv(&Globalenv)
	}
	result = Eval(Read(source), en)
	return
}

// EvalAll evaluates every top-level expression in source in order against en
// and returns the value of the last one. Like EvalString it converts a
// panicking SchemeError into a returned error; earlier definitions stay in en
// even when a later expression fails.
func EvalAll(source string, en *Env) (result Scmer, err error) {
	defer func() {
		if r := recover(); r != nil {
			if se, ok := r.(SchemeError); ok {
				err = se
				return
			}
			panic(r)
		}
	}()
	if en == nil {
		en = NewEnv(&Globalenv)
	}
	tokens := Tokenize(source)
	for index := 0; index < len(tokens); {
		var expression Scmer
		expression, index = parseExpression(tokens, index)
		result = Eval(expression, en)
	}
	return
}
