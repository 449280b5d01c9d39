/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package jsparse

import (
	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/token"
)

// nodeName returns the ESTree type name of a goja node.
func nodeName(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Program:
		return "Program"

	case *ast.BlockStatement, *ast.EmptyStatement:
		return "BlockStatement"
	case *ast.ExpressionStatement:
		return "ExpressionStatement"
	case *ast.IfStatement:
		return "IfStatement"
	case *ast.ForStatement:
		return "ForStatement"
	case *ast.ForInStatement:
		return "ForInStatement"
	case *ast.ForOfStatement:
		return "ForOfStatement"
	case *ast.WhileStatement:
		return "WhileStatement"
	case *ast.DoWhileStatement:
		return "DoWhileStatement"
	case *ast.VariableStatement, *ast.LexicalDeclaration, *ast.ForLoopInitializerVarDeclList,
		*ast.ForLoopInitializerLexicalDecl, *ast.ForDeclaration:
		return "VariableDeclaration"
	case *ast.Binding:
		return "VariableDeclarator"
	case *ast.FunctionDeclaration:
		return "FunctionDeclaration"
	case *ast.ClassDeclaration:
		return "ClassDeclaration"
	case *ast.ReturnStatement:
		return "ReturnStatement"
	case *ast.ThrowStatement:
		return "ThrowStatement"
	case *ast.TryStatement:
		return "TryStatement"
	case *ast.CatchStatement:
		return "CatchClause"
	case *ast.SwitchStatement:
		return "SwitchStatement"
	case *ast.CaseStatement:
		return "SwitchCase"
	case *ast.BranchStatement:
		if n.Token == token.CONTINUE {
			return "ContinueStatement"
		}
		return "BreakStatement"
	case *ast.LabelledStatement:
		return "LabeledStatement"
	case *ast.WithStatement:
		return "WithStatement"
	case *ast.DebuggerStatement:
		return "DebuggerStatement"

	case *ast.MethodDefinition:
		return "MethodDefinition"
	case *ast.FieldDefinition:
		return "PropertyDefinition"
	case *ast.ClassStaticBlock:
		return "StaticBlock"

	case *ast.Identifier:
		return "Identifier"
	case *ast.PrivateIdentifier:
		return "PrivateIdentifier"
	case *ast.NumberLiteral, *ast.StringLiteral, *ast.BooleanLiteral, *ast.NullLiteral, *ast.RegExpLiteral:
		return "Literal"
	case *ast.ArrayLiteral:
		return "ArrayExpression"
	case *ast.ArrayPattern:
		return "ArrayPattern"
	case *ast.ObjectLiteral:
		return "ObjectExpression"
	case *ast.ObjectPattern:
		return "ObjectPattern"
	case *ast.PropertyShort, *ast.PropertyKeyed:
		return "Property"
	case *ast.SpreadElement:
		return "SpreadElement"
	case *ast.BinaryExpression:
		switch n.Operator {
		case token.LOGICAL_AND, token.LOGICAL_OR, token.COALESCE:
			return "LogicalExpression"
		}
		return "BinaryExpression"
	case *ast.AssignExpression:
		return "AssignmentExpression"
	case *ast.UnaryExpression:
		if n.Operator == token.INCREMENT || n.Operator == token.DECREMENT {
			return "UpdateExpression"
		}
		return "UnaryExpression"
	case *ast.ConditionalExpression:
		return "ConditionalExpression"
	case *ast.SequenceExpression:
		return "SequenceExpression"
	case *ast.DotExpression, *ast.BracketExpression:
		return "MemberExpression"
	case *ast.PrivateDotExpression:
		return "PrivateMemberExpression"
	case *ast.OptionalChain, *ast.Optional:
		return "ChainExpression"
	case *ast.CallExpression:
		return "CallExpression"
	case *ast.NewExpression:
		return "NewExpression"
	case *ast.FunctionLiteral:
		return "FunctionExpression"
	case *ast.ArrowFunctionLiteral:
		return "ArrowFunctionExpression"
	case *ast.ClassLiteral:
		return "ClassExpression"
	case *ast.TemplateLiteral:
		if n.Tag != nil {
			return "TaggedTemplateExpression"
		}
		return "TemplateLiteral"
	case *ast.TemplateElement:
		return "TemplateElement"
	case *ast.ThisExpression:
		return "ThisExpression"
	case *ast.SuperExpression:
		return "Super"
	case *ast.MetaProperty:
		return "MetaProperty"
	case *ast.YieldExpression:
		return "YieldExpression"
	case *ast.AwaitExpression:
		return "AwaitExpression"
	}

	// only reachable for goja's error-recovery nodes
	return "Unknown"
}
