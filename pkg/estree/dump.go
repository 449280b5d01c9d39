/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package estree

import (
	"strings"
)

type Dumper struct {
	Output string
	indent int
}

func (d *Dumper) Visit(node Node) Visitor {
	if node == nil {
		d.indent -= 1
		return nil
	}

	level := strings.Repeat("    ", d.indent)

	var value string
	switch t := node.(type) {
	case *Identifier:
		value = t.Name
	case *Literal:
		value = t.Raw
	case *BinaryExpression:
		value = t.Operator
	case *AssignmentExpression:
		value = t.Operator
	case *UpdateExpression:
		value = t.Operator
		if !t.Prefix {
			value = "postfix " + value
		}
	case *MemberExpression:
		if t.Computed {
			value = "computed"
		}
	case *VariableDeclaration:
		value = t.DeclKind
	case *Unknown:
		value = t.Tag()
	}

	output := level + node.Kind().String()
	if node.Kind() == KindUnknown {
		output = level + "Unknown"
	}
	if value != "" {
		output += "[" + value + "]"
	}

	d.Output += output + "\n"
	d.indent += 1

	return d
}

// Dump returns an indented outline of the tree rooted at node.
func Dump(node Node) string {
	if node == nil {
		return ""
	}
	d := &Dumper{}
	Walk(d, node)
	return d.Output
}
