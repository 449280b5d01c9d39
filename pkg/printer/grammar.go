/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package printer

import "regexp"

// Literal spellings that mean the same thing in ECMAScript and Python.
var (
	decimalLiteral = regexp.MustCompile(`^(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)
	prefixLiteral  = regexp.MustCompile(`^0([xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

var binaryOperators = map[string]bool{
	"+": true, "-": true, "*": true, "/": true, "%": true, "**": true,
	"==": true, "!=": true, "<": true, "<=": true, ">": true, ">=": true,
	"<<": true, ">>": true, "&": true, "|": true, "^": true,
}

var assignmentOperators = func() map[string]bool {
	m := map[string]bool{"=": true}
	for op := range binaryOperators {
		switch op {
		case "==", "!=", "<", "<=", ">", ">=":
			continue
		}
		m[op+"="] = true
	}
	return m
}()

// SharedLiteral reports whether raw is spelled the same way, with the same
// meaning, in both languages.
func SharedLiteral(raw string) bool {
	if decimalLiteral.MatchString(raw) || prefixLiteral.MatchString(raw) {
		return true
	}
	return sharedString(raw)
}

// sharedString walks the escape sequences of a quoted string. Only escapes
// both languages decode to the same character are accepted; anything else
// (\a, \N, \U, \8, legacy octals, line continuations) differs somewhere.
func sharedString(raw string) bool {
	if len(raw) < 2 {
		return false
	}
	quote := raw[0]
	if (quote != '"' && quote != '\'') || raw[len(raw)-1] != quote {
		return false
	}

	body := raw[1 : len(raw)-1]
	for i := 0; i < len(body); i++ {
		if body[i] != '\\' {
			continue
		}
		i++
		if i == len(body) {
			return false
		}

		switch body[i] {
		case '\\', '\'', '"', 'b', 'f', 'n', 'r', 't', 'v':
		case '0':
			if i+1 < len(body) && isDigit(body[i+1]) {
				return false
			}
		case 'x':
			if !hexDigits(body[i+1:], 2) {
				return false
			}
			i += 2
		case 'u':
			if !hexDigits(body[i+1:], 4) {
				return false
			}
			i += 4
		default:
			return false
		}
	}
	return true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func hexDigits(s string, n int) bool {
	if len(s) < n {
		return false
	}
	for i := 0; i < n; i++ {
		c := s[i]
		if !isDigit(c) && (c < 'a' || c > 'f') && (c < 'A' || c > 'F') {
			return false
		}
	}
	return true
}
