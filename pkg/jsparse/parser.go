/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package jsparse turns ECMAScript source into the estree node model. Parsing
// is delegated to goja's parser; this package only adapts its tree.
package jsparse

import (
	"github.com/dburkart/js2py/pkg/common/parse"
	"github.com/dburkart/js2py/pkg/estree"
	"github.com/dop251/goja/ast"
	"github.com/dop251/goja/file"
	"github.com/dop251/goja/parser"
	"github.com/dop251/goja/token"
)

type Parser struct {
	Input       string
	EcmaVersion int
	Filename    string
}

// Parse parses source with the given language version and returns the
// Program node.
func Parse(source string, ecmaVersion int) (estree.Node, error) {
	p := Parser{Input: source, EcmaVersion: ecmaVersion}
	return p.Parse()
}

func (p *Parser) Parse() (root estree.Node, err error) {
	version, err := NormalizeEcmaVersion(p.EcmaVersion)
	if err != nil {
		return nil, err
	}
	p.EcmaVersion = version

	filename := p.Filename
	if filename == "" {
		filename = "<input>"
	}

	program, err := parser.ParseFile(nil, filename, p.Input, 0)
	if err != nil {
		return nil, p.syntaxError(err)
	}

	defer func() {
		if e := recover(); e != nil {
			syntaxError, ok := e.(*parse.SyntaxError)
			if !ok {
				panic(e)
			}
			root, err = nil, syntaxError
		}
	}()

	p.checkVersion(program)
	return p.program(program), nil
}

func (p *Parser) syntaxError(err error) error {
	var first *parser.Error
	switch e := err.(type) {
	case parser.ErrorList:
		if len(e) > 0 {
			first = e[0]
		}
	case *parser.Error:
		first = e
	}
	if first == nil {
		return &parse.SyntaxError{Message: err.Error()}
	}

	return &parse.SyntaxError{
		Position: parse.Position{Line: first.Position.Line, Column: first.Position.Column},
		Message:  first.Message,
	}
}

func (p *Parser) span(n ast.Node) parse.Location {
	return spanOf(n.Idx0(), n.Idx1())
}

// goja indexes are 1-based
func spanOf(from, to file.Idx) parse.Location {
	if from <= 0 {
		return parse.Location{}
	}
	return parse.Location{Start: int(from) - 1, End: int(to) - 1}
}

func (p *Parser) base(n ast.Node) estree.BaseNode {
	return estree.BaseNode{Location: p.span(n)}
}

func (p *Parser) unknown(n ast.Node, tag string) estree.Node {
	return &estree.Unknown{BaseNode: p.base(n), Type: tag}
}

func (p *Parser) program(n *ast.Program) estree.Node {
	prog := &estree.Program{Body: p.statements(n.Body)}
	if len(n.Body) > 0 {
		prog.Location = parse.Location{Start: 0, End: len(p.Input)}
	}
	return prog
}

func (p *Parser) statements(list []ast.Statement) []estree.Node {
	ret := make([]estree.Node, 0, len(list))
	for _, s := range list {
		if _, ok := s.(*ast.EmptyStatement); ok {
			continue
		}
		ret = append(ret, p.statement(s))
	}
	return ret
}

func (p *Parser) statement(s ast.Statement) estree.Node {
	if s == nil {
		return nil
	}

	switch n := s.(type) {
	case *ast.ExpressionStatement:
		return &estree.ExpressionStatement{BaseNode: p.base(n), Expression: p.expression(n.Expression)}

	case *ast.BlockStatement:
		return &estree.BlockStatement{BaseNode: p.base(n), Body: p.statements(n.List)}

	case *ast.EmptyStatement:
		return &estree.BlockStatement{BaseNode: p.base(n)}

	case *ast.IfStatement:
		return &estree.IfStatement{
			BaseNode:   p.base(n),
			Test:       p.expression(n.Test),
			Consequent: p.statement(n.Consequent),
			Alternate:  p.statement(n.Alternate),
		}

	case *ast.ForStatement:
		return &estree.ForStatement{
			BaseNode: p.base(n),
			Init:     p.forInit(n.Initializer),
			Test:     p.expression(n.Test),
			Update:   p.expression(n.Update),
			Body:     p.statement(n.Body),
		}

	case *ast.VariableStatement:
		return p.declaration(n, "var", n.List)

	case *ast.LexicalDeclaration:
		return p.lexical(n)

	case *ast.ClassDeclaration:
		return p.class(n)
	}

	return p.unknown(s, nodeName(s))
}

func (p *Parser) lexical(n *ast.LexicalDeclaration) estree.Node {
	kind := "let"
	if n.Token == token.CONST {
		kind = "const"
	}
	return p.declaration(n, kind, n.List)
}

func (p *Parser) declaration(n ast.Node, kind string, list []*ast.Binding) estree.Node {
	decl := &estree.VariableDeclaration{BaseNode: p.base(n), DeclKind: kind}
	for _, b := range list {
		decl.Declarations = append(decl.Declarations, &estree.VariableDeclarator{
			BaseNode: p.base(b),
			ID:       p.expression(b.Target),
			Init:     p.expression(b.Initializer),
		})
	}
	return decl
}

func (p *Parser) forInit(init ast.ForLoopInitializer) estree.Node {
	switch n := init.(type) {
	case nil:
		return nil
	case *ast.ForLoopInitializerExpression:
		return p.expression(n.Expression)
	case *ast.ForLoopInitializerVarDeclList:
		decl := p.declaration(n.List[0], "var", n.List).(*estree.VariableDeclaration)
		decl.Location = parse.Location{
			Start: decl.Location.Start,
			End:   p.span(n.List[len(n.List)-1]).End,
		}
		return decl
	case *ast.ForLoopInitializerLexicalDecl:
		return p.lexical(&n.LexicalDeclaration)
	}
	return &estree.Unknown{Type: nodeName(init)}
}

func (p *Parser) class(n *ast.ClassDeclaration) estree.Node {
	lit := n.Class
	body := &estree.ClassBody{BaseNode: p.base(lit)}
	for _, el := range lit.Body {
		// class members have no rule
		body.Body = append(body.Body, p.unknown(el, nodeName(el)))
	}

	decl := &estree.ClassDeclaration{
		BaseNode:   p.base(n),
		SuperClass: p.expression(lit.SuperClass),
		Body:       body,
	}
	if lit.Name != nil {
		decl.ID = p.expression(lit.Name)
	}
	return decl
}

func (p *Parser) expressions(list []ast.Expression) []estree.Node {
	ret := make([]estree.Node, 0, len(list))
	for _, e := range list {
		ret = append(ret, p.expression(e))
	}
	return ret
}

func (p *Parser) expression(e ast.Expression) estree.Node {
	if e == nil {
		return nil
	}

	switch n := e.(type) {
	case *ast.Identifier:
		return &estree.Identifier{BaseNode: p.base(n), Name: string(n.Name)}

	case *ast.NumberLiteral:
		return &estree.Literal{BaseNode: p.base(n), Raw: n.Literal}
	case *ast.StringLiteral:
		return &estree.Literal{BaseNode: p.base(n), Raw: n.Literal}
	case *ast.BooleanLiteral:
		return &estree.Literal{BaseNode: p.base(n), Raw: n.Literal}
	case *ast.NullLiteral:
		return &estree.Literal{BaseNode: p.base(n), Raw: n.Literal}
	case *ast.RegExpLiteral:
		return &estree.Literal{BaseNode: p.base(n), Raw: n.Literal}

	case *ast.ArrayLiteral:
		return &estree.ArrayExpression{BaseNode: p.base(n), Elements: p.expressions(n.Value)}

	case *ast.ArrayPattern:
		if n.Rest != nil {
			return p.unknown(n, "RestElement")
		}
		return &estree.ArrayPattern{BaseNode: p.base(n), Elements: p.expressions(n.Elements)}

	case *ast.BinaryExpression:
		switch n.Operator {
		case token.LOGICAL_AND, token.LOGICAL_OR, token.COALESCE:
			return p.unknown(n, "LogicalExpression")
		}
		return &estree.BinaryExpression{
			BaseNode: p.base(n),
			Operator: n.Operator.String(),
			Left:     p.expression(n.Left),
			Right:    p.expression(n.Right),
		}

	case *ast.DotExpression:
		return &estree.MemberExpression{
			BaseNode: p.base(n),
			Object:   p.expression(n.Left),
			Property: p.expression(&n.Identifier),
		}

	case *ast.BracketExpression:
		return &estree.MemberExpression{
			BaseNode: p.base(n),
			Object:   p.expression(n.Left),
			Property: p.expression(n.Member),
			Computed: true,
		}

	case *ast.CallExpression:
		return &estree.CallExpression{
			BaseNode:  p.base(n),
			Callee:    p.expression(n.Callee),
			Arguments: p.expressions(n.ArgumentList),
		}

	case *ast.AssignExpression:
		// compound assignments carry the bare binary operator
		op := n.Operator.String()
		if n.Operator != token.ASSIGN {
			op += "="
		}
		return &estree.AssignmentExpression{
			BaseNode: p.base(n),
			Operator: op,
			Left:     p.expression(n.Left),
			Right:    p.expression(n.Right),
		}

	case *ast.UnaryExpression:
		if n.Operator == token.INCREMENT || n.Operator == token.DECREMENT {
			return &estree.UpdateExpression{
				BaseNode: p.base(n),
				Operator: n.Operator.String(),
				Prefix:   !n.Postfix,
				Argument: p.expression(n.Operand),
			}
		}
	}

	return p.unknown(e, nodeName(e))
}
