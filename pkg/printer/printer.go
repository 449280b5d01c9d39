/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package printer renders an estree syntax tree as Python source text.
//
// Expressions render to a single fragment without a newline. Statements
// render to one or more lines, each prefixed with the margin they were
// rendered at, joined by "\n" and without a trailing newline.
//
// A Printer holds configuration only; every call to Print threads its own
// Margin values through the descent, so a Printer can be shared between
// goroutines.
package printer

import (
	"github.com/dburkart/js2py/pkg/estree"
)

type Printer struct {
	indent string
	strict bool
}

type Option func(*Printer)

// WithIndent sets the indentation unit. The default is two spaces.
func WithIndent(unit string) Option {
	return func(p *Printer) {
		p.indent = unit
	}
}

// WithStrict rejects literals and operators that do not have the same
// spelling in both languages instead of forwarding them verbatim.
func WithStrict(strict bool) Option {
	return func(p *Printer) {
		p.strict = strict
	}
}

func New(opts ...Option) *Printer {
	p := &Printer{indent: DefaultIndent}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Print renders the tree rooted at root.
func (p *Printer) Print(root estree.Node) (string, error) {
	return p.render(root, NewMargin(p.indent))
}

// render dispatches on the node kind. An absent node renders to nothing.
func (p *Printer) render(node estree.Node, m Margin) (string, error) {
	if node == nil {
		return "", nil
	}

	switch n := node.(type) {
	// statements
	case *estree.Program:
		return p.program(n, m)
	case *estree.BlockStatement:
		return p.block(n.Body, m)
	case *estree.ClassDeclaration:
		return p.classDeclaration(n, m)
	case *estree.ClassBody:
		return p.block(n.Body, m)
	case *estree.IfStatement:
		return p.ifStatement(n, m)
	case *estree.ForStatement:
		return p.forStatement(n, m)
	case *estree.VariableDeclaration:
		return p.variableDeclaration(n, m)
	case *estree.VariableDeclarator:
		return p.variableDeclarator(n, m)
	case *estree.ExpressionStatement:
		return p.expressionStatement(n, m)

	// expressions
	case *estree.Identifier:
		return n.Name, nil
	case *estree.Literal:
		return p.literal(n)
	case *estree.ArrayExpression:
		return p.array(n.Elements, "None", m)
	case *estree.ArrayPattern:
		return p.array(n.Elements, "_", m)
	case *estree.BinaryExpression:
		return p.binary(n, m)
	case *estree.MemberExpression:
		return p.member(n, m)
	case *estree.CallExpression:
		return p.call(n, m)
	case *estree.AssignmentExpression:
		return p.assignment(n, m)
	case *estree.UpdateExpression:
		return p.update(n, m)

	case *estree.Unknown:
		if n.Type == "" {
			return "", &MalformedNodeError{Fields: n.Fields, Location: n.Location}
		}
		return "", unsupported(n, n.Type, "")
	}

	return "", unsupported(node, node.Kind().String(), "no rendering rule")
}

// renderAll renders each node in list with the same margin.
func (p *Printer) renderAll(list []estree.Node, m Margin) ([]string, error) {
	ret := make([]string, 0, len(list))
	for _, n := range list {
		s, err := p.render(n, m)
		if err != nil {
			return nil, err
		}
		ret = append(ret, s)
	}
	return ret, nil
}
