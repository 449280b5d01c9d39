/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package printer

import "strings"

const DefaultIndent = "  "

// Margin is the left margin of the line being rendered. It is a value: rules
// hand a deeper Margin to the children that sit inside a block and keep
// their own untouched.
type Margin struct {
	unit  string
	depth int
}

func NewMargin(unit string) Margin {
	return Margin{unit: unit}
}

// Indent enters a block.
func (m Margin) Indent() Margin {
	return Margin{unit: m.unit, depth: m.depth + 1}
}

// Outdent leaves a block.
func (m Margin) Outdent() Margin {
	if m.depth == 0 {
		return m
	}
	return Margin{unit: m.unit, depth: m.depth - 1}
}

func (m Margin) Depth() int {
	return m.depth
}

func (m Margin) String() string {
	return strings.Repeat(m.unit, m.depth)
}

// Next is the margin a line one level deeper would have.
func (m Margin) Next() string {
	return m.String() + m.unit
}
