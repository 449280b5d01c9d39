/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import "strings"

// Location is a half-open byte range into the source text. A zero Location
// means the position is not known.
type Location struct {
	Start int
	End   int
}

func (l Location) Known() bool {
	return l.End > l.Start
}

// Position is a 1-based line and column.
type Position struct {
	Line   int
	Column int
}

// PositionOf converts a byte offset in input to a line and column. Offsets past
// the end of input are clamped.
func PositionOf(input string, offset int) Position {
	if offset > len(input) {
		offset = len(input)
	}
	if offset < 0 {
		offset = 0
	}

	before := input[:offset]
	line := strings.Count(before, "\n") + 1
	col := offset - strings.LastIndex(before, "\n")

	return Position{Line: line, Column: col}
}

// LineAt returns the text of the given 1-based line, without its terminator.
func LineAt(input string, line int) string {
	lines := strings.Split(input, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[line-1], "\r")
}
