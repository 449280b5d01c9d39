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

func (p *Printer) program(n *estree.Program, m Margin) (string, error) {
	stmts, err := p.renderAll(n.Body, m)
	if err != nil {
		return "", err
	}
	return joinLines(stmts), nil
}

// block renders a statement list at m. Python does not allow an empty
// suite, so an empty list becomes a single pass.
func (p *Printer) block(body []estree.Node, m Margin) (string, error) {
	stmts, err := p.renderAll(body, m)
	if err != nil {
		return "", err
	}

	out := joinLines(stmts)
	if out == "" {
		return m.String() + "pass", nil
	}
	return out, nil
}

// suite renders the body of a compound statement. Callers pass the margin
// of the body, one level deeper than their own.
func (p *Printer) suite(n estree.Node, m Margin) (string, error) {
	out, err := p.render(n, m)
	if err != nil {
		return "", err
	}
	if out == "" {
		return m.String() + "pass", nil
	}
	return out, nil
}

func (p *Printer) classDeclaration(n *estree.ClassDeclaration, m Margin) (string, error) {
	if n.ID == nil {
		return "", unsupported(n, "ClassDeclaration", "anonymous class")
	}

	name, err := p.render(n.ID, m)
	if err != nil {
		return "", err
	}

	superClass := ""
	if n.SuperClass != nil {
		base, err := p.render(n.SuperClass, m)
		if err != nil {
			return "", err
		}
		superClass = "(" + base + ")"
	}

	body, err := p.suite(n.Body, m.Indent())
	if err != nil {
		return "", err
	}

	return m.String() + "class " + name + superClass + ":\n" + body, nil
}

func (p *Printer) ifStatement(n *estree.IfStatement, m Margin) (string, error) {
	test, err := p.render(n.Test, m)
	if err != nil {
		return "", err
	}

	consequent, err := p.suite(n.Consequent, m.Indent())
	if err != nil {
		return "", err
	}

	out := m.String() + "if " + test + ":\n" + consequent
	if n.Alternate == nil {
		return out, nil
	}

	alternate, err := p.suite(n.Alternate, m.Indent())
	if err != nil {
		return "", err
	}

	return out + "\n" + m.String() + "else:\n" + alternate, nil
}

func (p *Printer) forStatement(n *estree.ForStatement, m Margin) (string, error) {
	if loop, ok := countingLoop(n); ok {
		return p.rangeLoop(n, loop, m)
	}
	return p.whileLoop(n, m)
}

func (p *Printer) rangeLoop(n *estree.ForStatement, loop counting, m Margin) (string, error) {
	low, err := p.render(loop.declarator.Init, m)
	if err != nil {
		return "", err
	}

	high, err := p.render(loop.test.Right, m)
	if err != nil {
		return "", err
	}

	body, err := p.suite(n.Body, m.Indent())
	if err != nil {
		return "", err
	}

	return m.String() + "for " + loop.variable.Name + " in range(" + low + ", " + high + "):\n" + body, nil
}

// whileLoop is the general rendering of a three-clause loop: the initializer
// as its own statement, then a while loop whose body ends with the update.
func (p *Printer) whileLoop(n *estree.ForStatement, m Margin) (string, error) {
	var lines []string

	switch init := n.Init.(type) {
	case nil:
	case *estree.VariableDeclaration:
		s, err := p.render(init, m)
		if err != nil {
			return "", err
		}
		lines = append(lines, s)
	default:
		s, err := p.render(init, m)
		if err != nil {
			return "", err
		}
		lines = append(lines, m.String()+s)
	}

	test := "True"
	if n.Test != nil {
		s, err := p.render(n.Test, m)
		if err != nil {
			return "", err
		}
		test = s
	}
	lines = append(lines, m.String()+"while "+test+":")

	body, err := p.suite(n.Body, m.Indent())
	if err != nil {
		return "", err
	}
	lines = append(lines, body)

	if n.Update != nil {
		update, err := p.render(n.Update, m)
		if err != nil {
			return "", err
		}
		lines = append(lines, m.Next()+update)
	}

	return joinLines(lines), nil
}

func (p *Printer) variableDeclaration(n *estree.VariableDeclaration, m Margin) (string, error) {
	decls, err := p.renderAll(n.Declarations, m)
	if err != nil {
		return "", err
	}
	return joinLines(decls), nil
}

func (p *Printer) variableDeclarator(n *estree.VariableDeclarator, m Margin) (string, error) {
	id, err := p.render(n.ID, m)
	if err != nil {
		return "", err
	}

	init := "None"
	if n.Init != nil {
		init, err = p.render(n.Init, m)
		if err != nil {
			return "", err
		}
	}

	return m.String() + id + " = " + init, nil
}

func (p *Printer) expressionStatement(n *estree.ExpressionStatement, m Margin) (string, error) {
	expr, err := p.render(n.Expression, m)
	if err != nil {
		return "", err
	}
	return m.String() + expr, nil
}

// joinLines joins rendered statements, dropping the ones that rendered to
// nothing.
func joinLines(stmts []string) string {
	kept := make([]string, 0, len(stmts))
	for _, s := range stmts {
		if s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, "\n")
}
