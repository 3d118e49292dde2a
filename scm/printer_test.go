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
	"testing"
)

func TestStringAtoms(t *testing.T) {
	cases := map[string]Scmer{
		"nil":   nil,
		"#t":    true,
		"#f":    false,
		"42":    int64(42),
		"-7":    int64(-7),
		"3.5":   float64(3.5),
		"2":     float64(2), // whole floats print without the fraction
		"foo":   Symbol("foo"),
		"1e+20": float64(1e20),
	}
	for want, v := range cases {
		if got := String(v); got != want {
			t.Fatalf("String(%v): expected %q, got %q", v, want, got)
		}
	}
}

func TestStringPairChains(t *testing.T) {
	en := NewEnv(&Globalenv)
	if got := String(run(t, en, "(list 1 2 3)")); got != "(1 2 3)" {
		t.Fatalf("expected (1 2 3), got %q", got)
	}
	if got := String(run(t, en, "(cons 1 2)")); got != "(1 . 2)" {
		t.Fatalf("expected (1 . 2), got %q", got)
	}
	if got := String(run(t, en, "(cons 1 (cons 2 3))")); got != "(1 2 . 3)" {
		t.Fatalf("expected (1 2 . 3), got %q", got)
	}
	if got := String(run(t, en, "(list (list 1) nil)")); got != "((1) nil)" {
		t.Fatalf("expected ((1) nil), got %q", got)
	}
}

func TestStringClosureAndCode(t *testing.T) {
	en := NewEnv(&Globalenv)
	if got := String(run(t, en, "(lambda (x y) (+ x y))")); got != "(lambda (x y) (+ x y))" {
		t.Fatalf("closure rendering mismatch: %q", got)
	}
	if got := String(Read("(if a b c)")); got != "(if a b c)" {
		t.Fatalf("code rendering mismatch: %q", got)
	}
}

func TestStringNativeNamesItself(t *testing.T) {
	en := NewEnv(&Globalenv)
	if got := String(run(t, en, "car")); got != "[native car]" {
		t.Fatalf("expected [native car], got %q", got)
	}
}
