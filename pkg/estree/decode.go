/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package estree

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/dburkart/js2py/pkg/common/parse"
	"github.com/pkg/errors"
)

// Decode reads an ESTree document, as produced by espree or acorn, into the
// node model. Objects whose "type" is missing or has no node type decode to
// *Unknown; their children are not decoded.
func Decode(data []byte) (Node, error) {
	n, err := decodeNode(json.RawMessage(bytes.TrimSpace(data)))
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, errors.New("estree: document is null")
	}
	return n, nil
}

type object map[string]json.RawMessage

type decoder struct {
	obj object
	err error
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func decodeNode(raw json.RawMessage) (Node, error) {
	if isNull(raw) {
		return nil, nil
	}

	var obj object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, errors.Wrap(err, "estree: expected a node object")
	}

	d := &decoder{obj: obj}
	typ := d.str("type")
	base := BaseNode{Location: parse.Location{Start: d.integer("start"), End: d.integer("end")}}
	if d.err != nil {
		return nil, d.err
	}

	kind, ok := ParseKind(typ)
	if !ok {
		return &Unknown{BaseNode: base, Type: typ, Fields: obj.keys()}, nil
	}

	var n Node
	switch kind {
	case KindProgram:
		n = &Program{BaseNode: base, Body: d.nodes("body")}
	case KindIdentifier:
		n = &Identifier{BaseNode: base, Name: d.str("name")}
	case KindLiteral:
		n = &Literal{BaseNode: base, Raw: d.str("raw")}
	case KindArrayExpression:
		n = &ArrayExpression{BaseNode: base, Elements: d.nodes("elements")}
	case KindArrayPattern:
		n = &ArrayPattern{BaseNode: base, Elements: d.nodes("elements")}
	case KindBinaryExpression:
		n = &BinaryExpression{BaseNode: base, Operator: d.str("operator"), Left: d.node("left"), Right: d.node("right")}
	case KindMemberExpression:
		n = &MemberExpression{BaseNode: base, Object: d.node("object"), Property: d.node("property"), Computed: d.boolean("computed")}
	case KindCallExpression:
		n = &CallExpression{BaseNode: base, Callee: d.node("callee"), Arguments: d.nodes("arguments")}
	case KindAssignmentExpression:
		n = &AssignmentExpression{BaseNode: base, Operator: d.str("operator"), Left: d.node("left"), Right: d.node("right")}
	case KindUpdateExpression:
		n = &UpdateExpression{BaseNode: base, Operator: d.str("operator"), Prefix: d.boolean("prefix"), Argument: d.node("argument")}
	case KindExpressionStatement:
		n = &ExpressionStatement{BaseNode: base, Expression: d.node("expression")}
	case KindBlockStatement:
		n = &BlockStatement{BaseNode: base, Body: d.nodes("body")}
	case KindClassDeclaration:
		n = &ClassDeclaration{BaseNode: base, ID: d.node("id"), SuperClass: d.node("superClass"), Body: d.node("body")}
	case KindClassBody:
		n = &ClassBody{BaseNode: base, Body: d.nodes("body")}
	case KindIfStatement:
		n = &IfStatement{BaseNode: base, Test: d.node("test"), Consequent: d.node("consequent"), Alternate: d.node("alternate")}
	case KindForStatement:
		n = &ForStatement{BaseNode: base, Init: d.node("init"), Test: d.node("test"), Update: d.node("update"), Body: d.node("body")}
	case KindVariableDeclaration:
		n = &VariableDeclaration{BaseNode: base, DeclKind: d.str("kind"), Declarations: d.nodes("declarations")}
	case KindVariableDeclarator:
		n = &VariableDeclarator{BaseNode: base, ID: d.node("id"), Init: d.node("init")}
	}

	if d.err != nil {
		return nil, errors.Wrapf(d.err, "estree: decoding %s", typ)
	}
	return n, nil
}

func (o object) keys() []string {
	keys := make([]string, 0, len(o))
	for k := range o {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (d *decoder) field(name string, v interface{}) {
	raw, ok := d.obj[name]
	if d.err != nil || !ok || isNull(raw) {
		return
	}
	if err := json.Unmarshal(raw, v); err != nil {
		d.err = errors.Wrapf(err, "field %q", name)
	}
}

func (d *decoder) str(name string) string {
	var s string
	d.field(name, &s)
	return s
}

func (d *decoder) integer(name string) int {
	var i int
	d.field(name, &i)
	return i
}

func (d *decoder) boolean(name string) bool {
	var b bool
	d.field(name, &b)
	return b
}

func (d *decoder) node(name string) Node {
	if d.err != nil {
		return nil
	}
	n, err := decodeNode(d.obj[name])
	if err != nil {
		d.err = errors.Wrapf(err, "field %q", name)
	}
	return n
}

func (d *decoder) nodes(name string) []Node {
	var raws []json.RawMessage
	d.field(name, &raws)
	if d.err != nil {
		return nil
	}

	ret := make([]Node, 0, len(raws))
	for i, raw := range raws {
		n, err := decodeNode(raw)
		if err != nil {
			d.err = errors.Wrapf(err, "field %q[%d]", name, i)
			return nil
		}
		ret = append(ret, n)
	}
	return ret
}
