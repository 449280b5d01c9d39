/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package estree models the subset of the ESTree syntax tree that js2py knows
// how to print. The set of node types is closed: Node can only be implemented
// inside this package.
package estree

import "github.com/dburkart/js2py/pkg/common/parse"

type Node interface {
	Kind() Kind
	Span() parse.Location
	node()
}

type Visitor interface {
	Visit(Node) Visitor
}

type (
	BaseNode struct {
		Location parse.Location
	}

	Program struct {
		BaseNode
		Body []Node
	}

	Identifier struct {
		BaseNode
		Name string
	}

	// Literal keeps the literal exactly as it was spelled in the source.
	Literal struct {
		BaseNode
		Raw string
	}

	ArrayExpression struct {
		BaseNode
		Elements []Node
	}

	ArrayPattern struct {
		BaseNode
		Elements []Node
	}

	BinaryExpression struct {
		BaseNode
		Operator string
		Left     Node
		Right    Node
	}

	MemberExpression struct {
		BaseNode
		Object   Node
		Property Node
		Computed bool
	}

	CallExpression struct {
		BaseNode
		Callee    Node
		Arguments []Node
	}

	AssignmentExpression struct {
		BaseNode
		Operator string
		Left     Node
		Right    Node
	}

	UpdateExpression struct {
		BaseNode
		Operator string
		Prefix   bool
		Argument Node
	}

	ExpressionStatement struct {
		BaseNode
		Expression Node
	}

	BlockStatement struct {
		BaseNode
		Body []Node
	}

	ClassDeclaration struct {
		BaseNode
		ID         Node
		SuperClass Node
		Body       Node
	}

	ClassBody struct {
		BaseNode
		Body []Node
	}

	IfStatement struct {
		BaseNode
		Test       Node
		Consequent Node
		Alternate  Node
	}

	ForStatement struct {
		BaseNode
		Init   Node
		Test   Node
		Update Node
		Body   Node
	}

	VariableDeclaration struct {
		BaseNode
		// DeclKind is one of "var", "let" or "const".
		DeclKind     string
		Declarations []Node
	}

	VariableDeclarator struct {
		BaseNode
		ID   Node
		Init Node
	}

	// Unknown stands in for a node whose tag has no node type in this
	// package. Type is empty when the node carried no tag at all.
	Unknown struct {
		BaseNode
		Type   string
		Fields []string
	}
)

// -- BaseNode

func (b *BaseNode) Span() parse.Location {
	return b.Location
}

func (*BaseNode) node() {}

func (*Program) Kind() Kind              { return KindProgram }
func (*Identifier) Kind() Kind           { return KindIdentifier }
func (*Literal) Kind() Kind              { return KindLiteral }
func (*ArrayExpression) Kind() Kind      { return KindArrayExpression }
func (*ArrayPattern) Kind() Kind         { return KindArrayPattern }
func (*BinaryExpression) Kind() Kind     { return KindBinaryExpression }
func (*MemberExpression) Kind() Kind     { return KindMemberExpression }
func (*CallExpression) Kind() Kind       { return KindCallExpression }
func (*AssignmentExpression) Kind() Kind { return KindAssignmentExpression }
func (*UpdateExpression) Kind() Kind     { return KindUpdateExpression }
func (*ExpressionStatement) Kind() Kind  { return KindExpressionStatement }
func (*BlockStatement) Kind() Kind       { return KindBlockStatement }
func (*ClassDeclaration) Kind() Kind     { return KindClassDeclaration }
func (*ClassBody) Kind() Kind            { return KindClassBody }
func (*IfStatement) Kind() Kind          { return KindIfStatement }
func (*ForStatement) Kind() Kind         { return KindForStatement }
func (*VariableDeclaration) Kind() Kind  { return KindVariableDeclaration }
func (*VariableDeclarator) Kind() Kind   { return KindVariableDeclarator }
func (*Unknown) Kind() Kind              { return KindUnknown }

//-- Unknown

// Tag returns the tag as it should appear in diagnostics.
func (u *Unknown) Tag() string {
	if u.Type == "" {
		return "<untagged>"
	}
	return u.Type
}
