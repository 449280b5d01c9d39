/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package printer

import (
	"strings"

	"github.com/dburkart/js2py/pkg/estree"
)

func (p *Printer) literal(n *estree.Literal) (string, error) {
	if p.strict && !SharedLiteral(n.Raw) {
		return "", &UnsupportedConstructError{Kind: "Literal", Detail: n.Raw + " has no identical spelling in Python", Location: n.Location}
	}
	return n.Raw, nil
}

// array renders array literals and array patterns alike. Holes render as
// hole.
func (p *Printer) array(elements []estree.Node, hole string, m Margin) (string, error) {
	elems := make([]string, 0, len(elements))
	for _, e := range elements {
		if e == nil {
			elems = append(elems, hole)
			continue
		}
		s, err := p.render(e, m)
		if err != nil {
			return "", err
		}
		elems = append(elems, s)
	}
	return "[ " + strings.Join(elems, ", ") + " ]", nil
}

// binary parenthesizes any operand that is itself a binary expression,
// whatever the precedence of the two operators.
func (p *Printer) binary(n *estree.BinaryExpression, m Margin) (string, error) {
	if err := p.checkOperator(n, n.Operator, binaryOperators); err != nil {
		return "", err
	}

	left, err := p.operand(n.Left, m)
	if err != nil {
		return "", err
	}

	right, err := p.operand(n.Right, m)
	if err != nil {
		return "", err
	}

	return left + " " + n.Operator + " " + right, nil
}

func (p *Printer) operand(n estree.Node, m Margin) (string, error) {
	s, err := p.render(n, m)
	if err != nil {
		return "", err
	}
	if _, ok := n.(*estree.BinaryExpression); ok {
		return "(" + s + ")", nil
	}
	return s, nil
}

func (p *Printer) member(n *estree.MemberExpression, m Margin) (string, error) {
	if n.Computed {
		return "", unsupported(n, "MemberExpression[computed]", "bracket member access")
	}

	object, err := p.render(n.Object, m)
	if err != nil {
		return "", err
	}

	property, err := p.render(n.Property, m)
	if err != nil {
		return "", err
	}

	return object + "." + property, nil
}

func (p *Printer) call(n *estree.CallExpression, m Margin) (string, error) {
	callee, err := p.render(n.Callee, m)
	if err != nil {
		return "", err
	}

	args, err := p.renderAll(n.Arguments, m)
	if err != nil {
		return "", err
	}

	return callee + "(" + strings.Join(args, ", ") + ")", nil
}

func (p *Printer) assignment(n *estree.AssignmentExpression, m Margin) (string, error) {
	if err := p.checkOperator(n, n.Operator, assignmentOperators); err != nil {
		return "", err
	}

	left, err := p.render(n.Left, m)
	if err != nil {
		return "", err
	}

	right, err := p.render(n.Right, m)
	if err != nil {
		return "", err
	}

	return left + " " + n.Operator + " " + right, nil
}

// update writes ++ and -- as augmented assignments.
func (p *Printer) update(n *estree.UpdateExpression, m Margin) (string, error) {
	var op string
	switch n.Operator {
	case "++":
		op = " += 1"
	case "--":
		op = " -= 1"
	default:
		return "", unsupported(n, "UpdateExpression", "operator "+n.Operator)
	}

	arg, err := p.render(n.Argument, m)
	if err != nil {
		return "", err
	}
	return arg + op, nil
}

func (p *Printer) checkOperator(n estree.Node, op string, allowed map[string]bool) error {
	if !p.strict || allowed[op] {
		return nil
	}
	return &UnsupportedConstructError{
		Kind:     n.Kind().String(),
		Detail:   "operator " + op + " has no identical spelling in Python",
		Location: n.Span(),
	}
}
