/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package printer

import (
	"errors"
	"testing"

	"github.com/dburkart/js2py/pkg/estree"
)

func TestSharedLiteral(t *testing.T) {
	var tests = []struct {
		raw  string
		want bool
	}{
		{"0", true},
		{"42", true},
		{"3.14", true},
		{"1e10", true},
		{"2.5E-3", true},
		{"0x1F", true},
		{"0o17", true},
		{"0b101", true},
		{`"hello"`, true},
		{`'hello'`, true},
		{`"tab\tnewline\n"`, true},
		{`"\0"`, true},
		{`'\\01'`, true},
		{`'\\'`, true},
		{`'it\'s'`, true},
		{`"\x41\u00e9"`, true},
		{`'\8'`, false},
		{`'\9'`, false},
		{`'\a'`, false},
		{`'\q'`, false},
		{`"\U0001F600"`, false},
		{`"\N{DASH}"`, false},
		{`"\x4"`, false},
		{"true", false},
		{"false", false},
		{"null", false},
		{"017", false},
		{"08", false},
		{".5", false},
		{"5.", false},
		{"1_000", false},
		{"10n", false},
		{"/ab+c/g", false},
		{`"\u{1F600}"`, false},
		{`"\01"`, false},
		{"\"line\\\ncontinued\"", false},
		{`"unterminated`, false},
		{`"`, false},
		{"`template`", false},
	}

	for _, test := range tests {
		if got := SharedLiteral(test.raw); got != test.want {
			t.Errorf("SharedLiteral(%s): wanted %t, got %t", test.raw, test.want, got)
		}
	}
}

func TestStrictLiterals(t *testing.T) {
	strict := New(WithStrict(true))
	lenient := New()

	for _, raw := range []string{"true", "null", "017", "/re/"} {
		n := lit(raw)

		out, err := lenient.Print(n)
		if err != nil || out != raw {
			t.Errorf("wanted %s forwarded verbatim, got %q (%v)", raw, out, err)
		}

		_, err = strict.Print(n)
		var unsupported *UnsupportedConstructError
		if !errors.As(err, &unsupported) || unsupported.Kind != "Literal" {
			t.Errorf("wanted strict printer to reject %s, got %v", raw, err)
		}
	}

	if out, err := strict.Print(lit("42")); err != nil || out != "42" {
		t.Errorf("wanted strict printer to accept 42, got %q (%v)", out, err)
	}
	if _, err := strict.Print(lit(`'\8'`)); err == nil {
		t.Errorf("wanted strict printer to reject an escaped 8")
	}
	if out, err := strict.Print(lit(`'\\01'`)); err != nil || out != `'\\01'` {
		t.Errorf("wanted strict printer to accept an escaped backslash, got %q (%v)", out, err)
	}
}

func TestStrictOperators(t *testing.T) {
	strict := New(WithStrict(true))

	var tests = []struct {
		node estree.Node
		ok   bool
	}{
		{bin("+", id("a"), id("b")), true},
		{bin("**", id("a"), id("b")), true},
		{bin("==", id("a"), id("b")), true},
		{bin("===", id("a"), id("b")), false},
		{bin("!==", id("a"), id("b")), false},
		{bin(">>>", id("a"), id("b")), false},
		{bin("instanceof", id("a"), id("b")), false},
		{bin("in", id("a"), id("b")), false},
		{&estree.AssignmentExpression{Operator: "=", Left: id("a"), Right: id("b")}, true},
		{&estree.AssignmentExpression{Operator: "<<=", Left: id("a"), Right: id("b")}, true},
		{&estree.AssignmentExpression{Operator: "**=", Left: id("a"), Right: id("b")}, true},
		{&estree.AssignmentExpression{Operator: ">>>=", Left: id("a"), Right: id("b")}, false},
		{&estree.AssignmentExpression{Operator: "&&=", Left: id("a"), Right: id("b")}, false},
		{&estree.AssignmentExpression{Operator: "==", Left: id("a"), Right: id("b")}, false},
	}

	for _, test := range tests {
		_, err := strict.Print(test.node)
		if test.ok && err != nil {
			t.Errorf("wanted %v to be accepted, got %s", test.node, err)
		}
		if !test.ok {
			var unsupported *UnsupportedConstructError
			if !errors.As(err, &unsupported) {
				t.Errorf("wanted %v to be rejected, got %v", test.node, err)
			}
		}
	}
}

func TestStrictChecksNestedOperands(t *testing.T) {
	n := bin("+", id("a"), bin("===", id("b"), id("c")))
	if _, err := New(WithStrict(true)).Print(n); err == nil {
		t.Errorf("wanted nested === to be rejected")
	}
}
