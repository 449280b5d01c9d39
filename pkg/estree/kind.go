/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package estree

// Kind is the discriminant carried by every node. Its string form is the
// ESTree "type" tag.
type Kind int

const (
	KindUnknown Kind = iota
	KindProgram
	KindIdentifier
	KindLiteral
	KindArrayExpression
	KindArrayPattern
	KindBinaryExpression
	KindMemberExpression
	KindCallExpression
	KindAssignmentExpression
	KindUpdateExpression
	KindExpressionStatement
	KindBlockStatement
	KindClassDeclaration
	KindClassBody
	KindIfStatement
	KindForStatement
	KindVariableDeclaration
	KindVariableDeclarator

	kindCount
)

var kindNames = [kindCount]string{
	KindUnknown:              "",
	KindProgram:              "Program",
	KindIdentifier:           "Identifier",
	KindLiteral:              "Literal",
	KindArrayExpression:      "ArrayExpression",
	KindArrayPattern:         "ArrayPattern",
	KindBinaryExpression:     "BinaryExpression",
	KindMemberExpression:     "MemberExpression",
	KindCallExpression:       "CallExpression",
	KindAssignmentExpression: "AssignmentExpression",
	KindUpdateExpression:     "UpdateExpression",
	KindExpressionStatement:  "ExpressionStatement",
	KindBlockStatement:       "BlockStatement",
	KindClassDeclaration:     "ClassDeclaration",
	KindClassBody:            "ClassBody",
	KindIfStatement:          "IfStatement",
	KindForStatement:         "ForStatement",
	KindVariableDeclaration:  "VariableDeclaration",
	KindVariableDeclarator:   "VariableDeclarator",
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, kindCount)
	for k := KindProgram; k < kindCount; k++ {
		m[kindNames[k]] = k
	}
	return m
}()

func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return "Kind(?)"
	}
	return kindNames[k]
}

// ParseKind looks up a kind by its ESTree tag.
func ParseKind(tag string) (Kind, bool) {
	k, ok := kindsByName[tag]
	return k, ok
}

// Kinds returns every kind that has a node type, in declaration order.
func Kinds() []Kind {
	ret := make([]Kind, 0, kindCount-1)
	for k := KindProgram; k < kindCount; k++ {
		ret = append(ret, k)
	}
	return ret
}
