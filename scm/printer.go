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

import (
	"strconv"
	"strings"
)

// String renders a value back into source-like notation. Proper lists print
// as (a b c), an improper chain prints dotted as (a . b).
func String(v Scmer) string {
	var b strings.Builder
	serialize(&b, v)
	return b.String()
}

func serialize(b *strings.Builder, v Scmer) {
	switch v := v.(type) {
	case nil:
		b.WriteString("nil")
	case bool:
		if v {
			b.WriteString("#t")
		} else {
			b.WriteString("#f")
		}
	case int64:
		b.WriteString(strconv.FormatInt(v, 10))
	case float64:
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	case Symbol:
		b.WriteString(string(v))
	case []Scmer:
		b.WriteByte('(')
		for i, x := range v {
			if i > 0 {
				b.WriteByte(' ')
			}
			serialize(b, x)
		}
		b.WriteByte(')')
	case *Pair:
		b.WriteByte('(')
		for {
			serialize(b, v.Car)
			switch rest := v.Cdr.(type) {
			case nil:
				b.WriteByte(')')
				return
			case *Pair:
				b.WriteByte(' ')
				v = rest
			default:
				b.WriteString(" . ")
				serialize(b, rest)
				b.WriteByte(')')
				return
			}
		}
	case *Proc:
		b.WriteString("(lambda (")
		for i, p := range v.Params {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(string(p))
		}
		b.WriteString(") ")
		serialize(b, v.Body)
		b.WriteByte(')')
	case func(...Scmer) Scmer:
		if def := DeclarationForValue(v); def != nil {
			b.WriteString("[native " + def.Name + "]")
		} else {
			b.WriteString("[native func]")
		}
	case string:
		b.WriteString(v)
	default:
		b.WriteString("[unknown value]")
	}
}
