/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package estree

// Walk traverses the tree depth-first. v.Visit is called for node; if it
// returns a non-nil visitor w, Walk visits each non-nil child with w and then
// calls w.Visit(nil).
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		walkList(v, n.Body)

	case *Identifier, *Literal, *Unknown:
		// Skip, leaf nodes

	case *ArrayExpression:
		walkList(v, n.Elements)

	case *ArrayPattern:
		walkList(v, n.Elements)

	case *BinaryExpression:
		walkOptional(v, n.Left)
		walkOptional(v, n.Right)

	case *MemberExpression:
		walkOptional(v, n.Object)
		walkOptional(v, n.Property)

	case *CallExpression:
		walkOptional(v, n.Callee)
		walkList(v, n.Arguments)

	case *AssignmentExpression:
		walkOptional(v, n.Left)
		walkOptional(v, n.Right)

	case *UpdateExpression:
		walkOptional(v, n.Argument)

	case *ExpressionStatement:
		walkOptional(v, n.Expression)

	case *BlockStatement:
		walkList(v, n.Body)

	case *ClassDeclaration:
		walkOptional(v, n.ID)
		walkOptional(v, n.SuperClass)
		walkOptional(v, n.Body)

	case *ClassBody:
		walkList(v, n.Body)

	case *IfStatement:
		walkOptional(v, n.Test)
		walkOptional(v, n.Consequent)
		walkOptional(v, n.Alternate)

	case *ForStatement:
		walkOptional(v, n.Init)
		walkOptional(v, n.Test)
		walkOptional(v, n.Update)
		walkOptional(v, n.Body)

	case *VariableDeclaration:
		walkList(v, n.Declarations)

	case *VariableDeclarator:
		walkOptional(v, n.ID)
		walkOptional(v, n.Init)

	default:
		panic("Unexpected Node passed to Walk")
	}

	v.Visit(nil)
}

func walkOptional(v Visitor, n Node) {
	if n != nil {
		Walk(v, n)
	}
}

func walkList(v Visitor, list []Node) {
	for _, n := range list {
		walkOptional(v, n)
	}
}
