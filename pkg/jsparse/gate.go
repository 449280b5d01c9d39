/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package jsparse

import (
	"fmt"
	"strings"

	"github.com/dburkart/js2py/pkg/common/parse"
	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/token"
)

// goja always parses the latest language, so syntax newer than the requested
// edition is rejected here. The whole tree is visited, including constructs
// the converter does not support, so a version error always wins over an
// unsupported construct.

// requireVersion aborts the walk when a construct is newer than the
// requested language version.
func (p *Parser) requireVersion(n ast.Node, min int, what string) {
	if p.EcmaVersion < min {
		panic(parse.NewSyntaxError(p.Input, p.span(n),
			fmt.Sprintf("%s requires ecmaVersion %d or later", what, min)))
	}
}

func (p *Parser) checkStatements(list []ast.Statement) {
	for _, s := range list {
		p.checkVersion(s)
	}
}

func (p *Parser) checkExpressions(list []ast.Expression) {
	for _, e := range list {
		p.checkVersion(e)
	}
}

func (p *Parser) checkBindings(list []*ast.Binding) {
	for _, b := range list {
		p.checkVersion(b.Target)
		p.checkVersion(b.Initializer)
	}
}

func declarationKind(isConst bool) string {
	if isConst {
		return "'const' declaration"
	}
	return "'let' declaration"
}

func (p *Parser) checkVersion(n ast.Node) {
	switch n := n.(type) {
	case nil:

	// statements
	case *ast.Program:
		p.checkStatements(n.Body)
	case *ast.BlockStatement:
		p.checkStatements(n.List)
	case *ast.ExpressionStatement:
		p.checkVersion(n.Expression)
	case *ast.IfStatement:
		p.checkVersion(n.Test)
		p.checkVersion(n.Consequent)
		p.checkVersion(n.Alternate)
	case *ast.ForStatement:
		p.checkVersion(n.Initializer)
		p.checkVersion(n.Test)
		p.checkVersion(n.Update)
		p.checkVersion(n.Body)
	case *ast.ForInStatement:
		p.checkVersion(n.Into)
		p.checkVersion(n.Source)
		p.checkVersion(n.Body)
	case *ast.ForOfStatement:
		p.requireVersion(n, 6, "for-of loop")
		p.checkVersion(n.Into)
		p.checkVersion(n.Source)
		p.checkVersion(n.Body)
	case *ast.WhileStatement:
		p.checkVersion(n.Test)
		p.checkVersion(n.Body)
	case *ast.DoWhileStatement:
		p.checkVersion(n.Body)
		p.checkVersion(n.Test)
	case *ast.VariableStatement:
		p.checkBindings(n.List)
	case *ast.LexicalDeclaration:
		p.requireVersion(n, 6, declarationKind(n.Token == token.CONST))
		p.checkBindings(n.List)
	case *ast.FunctionDeclaration:
		p.checkVersion(n.Function)
	case *ast.ClassDeclaration:
		p.requireVersion(n, 6, "class declaration")
		p.checkClass(n.Class)
	case *ast.ReturnStatement:
		p.checkVersion(n.Argument)
	case *ast.ThrowStatement:
		p.checkVersion(n.Argument)
	case *ast.LabelledStatement:
		p.checkVersion(n.Statement)
	case *ast.WithStatement:
		p.checkVersion(n.Object)
		p.checkVersion(n.Body)
	case *ast.SwitchStatement:
		p.checkVersion(n.Discriminant)
		for _, c := range n.Body {
			p.checkVersion(c.Test)
			p.checkStatements(c.Consequent)
		}
	case *ast.TryStatement:
		p.checkVersion(n.Body)
		if n.Catch != nil {
			if n.Catch.Parameter == nil {
				p.requireVersion(n.Catch, 10, "optional catch binding")
			}
			p.checkVersion(n.Catch.Parameter)
			p.checkVersion(n.Catch.Body)
		}
		if n.Finally != nil {
			p.checkVersion(n.Finally)
		}

	// loop heads
	case *ast.ForLoopInitializerExpression:
		p.checkVersion(n.Expression)
	case *ast.ForLoopInitializerVarDeclList:
		p.checkBindings(n.List)
	case *ast.ForLoopInitializerLexicalDecl:
		p.checkVersion(&n.LexicalDeclaration)
	case *ast.ForIntoVar:
		p.checkBindings([]*ast.Binding{n.Binding})
	case *ast.ForDeclaration:
		p.requireVersion(n, 6, declarationKind(n.IsConst))
		p.checkVersion(n.Target)
	case *ast.ForIntoExpression:
		p.checkVersion(n.Expression)

	// expressions
	case *ast.NumberLiteral:
		p.checkNumber(n)
	case *ast.RegExpLiteral:
		p.checkRegExpFlags(n)
	case *ast.ArrayLiteral:
		p.checkExpressions(n.Value)
	case *ast.ArrayPattern:
		p.requireVersion(n, 6, "destructuring pattern")
		p.checkExpressions(n.Elements)
		p.checkVersion(n.Rest)
	case *ast.ObjectLiteral:
		for _, prop := range n.Value {
			if _, ok := prop.(*ast.SpreadElement); ok {
				p.requireVersion(prop, 9, "object spread property")
			}
			p.checkVersion(prop)
		}
	case *ast.ObjectPattern:
		p.requireVersion(n, 6, "destructuring pattern")
		if n.Rest != nil {
			p.requireVersion(n.Rest, 9, "object rest property")
		}
		for _, prop := range n.Properties {
			p.checkVersion(prop)
		}
		p.checkVersion(n.Rest)
	case *ast.PropertyShort:
		p.requireVersion(n, 6, "shorthand property")
		p.checkVersion(n.Initializer)
	case *ast.PropertyKeyed:
		switch {
		case n.Computed:
			p.requireVersion(n, 6, "computed property name")
		case n.Kind == ast.PropertyKindMethod:
			p.requireVersion(n, 6, "method shorthand")
		case n.Kind == ast.PropertyKindGet || n.Kind == ast.PropertyKindSet:
			p.requireVersion(n, 5, "getter or setter")
		}
		p.checkVersion(n.Key)
		p.checkVersion(n.Value)
	case *ast.SpreadElement:
		p.requireVersion(n, 6, "spread element")
		p.checkVersion(n.Expression)
	case *ast.TemplateLiteral:
		p.requireVersion(n, 6, "template literal")
		p.checkVersion(n.Tag)
		p.checkExpressions(n.Expressions)
	case *ast.BinaryExpression:
		switch n.Operator {
		case token.EXPONENT:
			p.requireVersion(n, 7, "exponent operator")
		case token.COALESCE:
			p.requireVersion(n, 11, "nullish coalescing operator")
		}
		p.checkVersion(n.Left)
		p.checkVersion(n.Right)
	case *ast.AssignExpression:
		if n.Operator == token.EXPONENT {
			p.requireVersion(n, 7, "exponent assignment")
		}
		p.checkVersion(n.Left)
		p.checkVersion(n.Right)
	case *ast.UnaryExpression:
		p.checkVersion(n.Operand)
	case *ast.ConditionalExpression:
		p.checkVersion(n.Test)
		p.checkVersion(n.Consequent)
		p.checkVersion(n.Alternate)
	case *ast.SequenceExpression:
		p.checkExpressions(n.Sequence)
	case *ast.DotExpression:
		p.checkVersion(n.Left)
	case *ast.BracketExpression:
		p.checkVersion(n.Left)
		p.checkVersion(n.Member)
	case *ast.PrivateDotExpression:
		p.requireVersion(n, 13, "private member access")
		p.checkVersion(n.Left)
	case *ast.PrivateIdentifier:
		p.requireVersion(n, 13, "private name")
	case *ast.OptionalChain:
		p.requireVersion(n, 11, "optional chaining")
		p.checkVersion(n.Expression)
	case *ast.Optional:
		p.checkVersion(n.Expression)
	case *ast.CallExpression:
		p.checkVersion(n.Callee)
		p.checkExpressions(n.ArgumentList)
	case *ast.NewExpression:
		p.checkVersion(n.Callee)
		p.checkExpressions(n.ArgumentList)
	case *ast.MetaProperty:
		p.requireVersion(n, 6, "new.target")
	case *ast.YieldExpression:
		p.checkVersion(n.Argument)
	case *ast.AwaitExpression:
		p.requireVersion(n, 8, "await expression")
		p.checkVersion(n.Argument)
	case *ast.FunctionLiteral:
		if n.Generator {
			p.requireVersion(n, 6, "generator function")
		}
		if n.Async {
			p.requireVersion(n, 8, "async function")
		}
		p.checkParameters(n.ParameterList)
		if n.Body != nil {
			p.checkVersion(n.Body)
		}
	case *ast.ArrowFunctionLiteral:
		p.requireVersion(n, 6, "arrow function")
		if n.Async {
			p.requireVersion(n, 8, "async function")
		}
		p.checkParameters(n.ParameterList)
		p.checkVersion(n.Body)
	case *ast.ExpressionBody:
		p.checkVersion(n.Expression)
	case *ast.ClassLiteral:
		p.requireVersion(n, 6, "class expression")
		p.checkClass(n)
	}
}

func (p *Parser) checkParameters(params *ast.ParameterList) {
	if params == nil {
		return
	}
	for _, b := range params.List {
		if b.Initializer != nil {
			p.requireVersion(b, 6, "default parameter")
		}
	}
	p.checkBindings(params.List)
	if params.Rest != nil {
		p.requireVersion(params.Rest, 6, "rest parameter")
		p.checkVersion(params.Rest)
	}
}

func (p *Parser) checkClass(c *ast.ClassLiteral) {
	p.checkVersion(c.SuperClass)
	for _, el := range c.Body {
		switch e := el.(type) {
		case *ast.MethodDefinition:
			p.checkVersion(e.Key)
			if e.Body != nil {
				p.checkVersion(e.Body)
			}
		case *ast.FieldDefinition:
			p.requireVersion(e, 13, "class field")
			p.checkVersion(e.Key)
			p.checkVersion(e.Initializer)
		case *ast.ClassStaticBlock:
			p.requireVersion(e, 13, "class static block")
			if e.Block != nil {
				p.checkVersion(e.Block)
			}
		}
	}
}

func (p *Parser) checkNumber(n *ast.NumberLiteral) {
	lit := strings.ToLower(n.Literal)
	if strings.HasPrefix(lit, "0b") || strings.HasPrefix(lit, "0o") {
		p.requireVersion(n, 6, "binary or octal literal")
	}
}

// regexpFlags maps each flag to the edition that introduced it.
var regexpFlags = map[rune]int{
	'y': 6,
	'u': 6,
	's': 9,
	'd': 13,
	'v': 15,
}

func (p *Parser) checkRegExpFlags(n *ast.RegExpLiteral) {
	for _, f := range n.Flags {
		if min, ok := regexpFlags[f]; ok {
			p.requireVersion(n, min, fmt.Sprintf("regular expression flag '%c'", f))
		}
	}
}
