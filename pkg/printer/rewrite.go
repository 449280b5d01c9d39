/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package printer

import "github.com/dburkart/js2py/pkg/estree"

var comparisonOperators = map[string]bool{
	"<": true, "<=": true, ">": true, ">=": true,
	"==": true, "!=": true, "===": true, "!==": true,
}

// counting holds the pieces of a loop that can be written as a range.
type counting struct {
	declarator *estree.VariableDeclarator
	variable   *estree.Identifier
	test       *estree.BinaryExpression
}

// countingLoop matches `for (let i = lo; i <cmp> hi; i++)`. The match is on
// the shape of the three clauses only: the update need not name the declared
// variable and the body is not inspected.
func countingLoop(n *estree.ForStatement) (counting, bool) {
	decl, ok := n.Init.(*estree.VariableDeclaration)
	if !ok || len(decl.Declarations) != 1 {
		return counting{}, false
	}

	declarator, ok := decl.Declarations[0].(*estree.VariableDeclarator)
	if !ok || declarator.Init == nil {
		return counting{}, false
	}

	variable, ok := declarator.ID.(*estree.Identifier)
	if !ok {
		return counting{}, false
	}

	test, ok := n.Test.(*estree.BinaryExpression)
	if !ok || !comparisonOperators[test.Operator] {
		return counting{}, false
	}

	update, ok := n.Update.(*estree.UpdateExpression)
	if !ok || update.Operator != "++" {
		return counting{}, false
	}

	return counting{declarator: declarator, variable: variable, test: test}, true
}
