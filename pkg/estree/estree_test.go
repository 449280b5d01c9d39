/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package estree

import (
	"reflect"
	"testing"
)

func TestKindNames(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != int(kindCount)-1 {
		t.Errorf("wanted %d kinds, got %d", kindCount-1, len(kinds))
	}

	for _, k := range kinds {
		if k == KindUnknown {
			t.Errorf("Kinds must not include KindUnknown")
		}
		name := k.String()
		if name == "" {
			t.Errorf("kind %d has no name", k)
			continue
		}
		back, ok := ParseKind(name)
		if !ok || back != k {
			t.Errorf("ParseKind(%s) = %v, %t", name, back, ok)
		}
	}

	if _, ok := ParseKind("WhileStatement"); ok {
		t.Errorf("wanted WhileStatement to have no kind")
	}
	if _, ok := ParseKind(""); ok {
		t.Errorf("wanted the empty tag to have no kind")
	}
	if s := Kind(99).String(); s != "Kind(?)" {
		t.Errorf("wanted out of range kind to print Kind(?), got %s", s)
	}
}

func TestUnknownTag(t *testing.T) {
	if tag := (&Unknown{}).Tag(); tag != "<untagged>" {
		t.Errorf("wanted <untagged>, got %s", tag)
	}
	if tag := (&Unknown{Type: "WhileStatement"}).Tag(); tag != "WhileStatement" {
		t.Errorf("wanted WhileStatement, got %s", tag)
	}
}

const forLoopJSON = `{
  "type": "Program", "start": 0, "end": 40,
  "body": [{
    "type": "ForStatement", "start": 0, "end": 40,
    "init": {
      "type": "VariableDeclaration", "kind": "let",
      "declarations": [{
        "type": "VariableDeclarator",
        "id": {"type": "Identifier", "name": "i"},
        "init": {"type": "Literal", "value": 0, "raw": "0"}
      }]
    },
    "test": {
      "type": "BinaryExpression", "operator": "<",
      "left": {"type": "Identifier", "name": "i"},
      "right": {"type": "Literal", "value": 3, "raw": "3"}
    },
    "update": {"type": "UpdateExpression", "operator": "++", "prefix": false, "argument": {"type": "Identifier", "name": "i"}},
    "body": {"type": "BlockStatement", "body": []}
  }],
  "sourceType": "script"
}`

func TestDecode(t *testing.T) {
	root, err := Decode([]byte(forLoopJSON))
	if err != nil {
		t.Fatal(err)
	}

	prog, ok := root.(*Program)
	if !ok {
		t.Fatalf("wanted *Program, got %T", root)
	}
	if prog.Span().End != 40 {
		t.Errorf("wanted span end 40, got %d", prog.Span().End)
	}

	loop, ok := prog.Body[0].(*ForStatement)
	if !ok {
		t.Fatalf("wanted *ForStatement, got %T", prog.Body[0])
	}

	decl := loop.Init.(*VariableDeclaration)
	if decl.DeclKind != "let" || len(decl.Declarations) != 1 {
		t.Errorf("unexpected declaration %+v", decl)
	}
	if raw := decl.Declarations[0].(*VariableDeclarator).Init.(*Literal).Raw; raw != "0" {
		t.Errorf("wanted raw literal 0, got %s", raw)
	}

	update := loop.Update.(*UpdateExpression)
	if update.Operator != "++" || update.Prefix {
		t.Errorf("unexpected update %+v", update)
	}

	if body := loop.Body.(*BlockStatement); len(body.Body) != 0 {
		t.Errorf("wanted empty body, got %d statements", len(body.Body))
	}
}

func TestDecodeUnknownAndUntagged(t *testing.T) {
	root, err := Decode([]byte(`{"type": "Program", "body": [
		{"type": "WhileStatement", "test": {"type": "Identifier", "name": "x"}, "body": null},
		{"name": "x", "value": 1},
		null
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	body := root.(*Program).Body
	if len(body) != 3 {
		t.Fatalf("wanted 3 statements, got %d", len(body))
	}

	while, ok := body[0].(*Unknown)
	if !ok || while.Type != "WhileStatement" {
		t.Errorf("wanted Unknown WhileStatement, got %#v", body[0])
	}
	if !reflect.DeepEqual(while.Fields, []string{"body", "test", "type"}) {
		t.Errorf("wanted sorted field names, got %v", while.Fields)
	}

	untagged, ok := body[1].(*Unknown)
	if !ok || untagged.Type != "" {
		t.Errorf("wanted untagged Unknown, got %#v", body[1])
	}

	if body[2] != nil {
		t.Errorf("wanted null to decode to a nil node, got %#v", body[2])
	}
}

func TestDecodeErrors(t *testing.T) {
	var tests = []string{
		``,
		`null`,
		`[1, 2]`,
		`{"type": "Identifier", "name": 42}`,
		`{"type": "Program", "body": {"type": "Identifier"}}`,
		`{"type": "BinaryExpression", "left": "a"}`,
	}

	for _, test := range tests {
		if _, err := Decode([]byte(test)); err == nil {
			t.Errorf("wanted %q to fail to decode", test)
		}
	}
}

func TestDump(t *testing.T) {
	root, err := Decode([]byte(forLoopJSON))
	if err != nil {
		t.Fatal(err)
	}

	want := `Program
    ForStatement
        VariableDeclaration[let]
            VariableDeclarator
                Identifier[i]
                Literal[0]
        BinaryExpression[<]
            Identifier[i]
            Literal[3]
        UpdateExpression[postfix ++]
            Identifier[i]
        BlockStatement
`
	if got := Dump(root); got != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, got)
	}
}

func TestDumpUnknown(t *testing.T) {
	root := &Program{Body: []Node{
		&Unknown{Type: "WhileStatement"},
		&Unknown{},
		&ExpressionStatement{Expression: &MemberExpression{Object: &Identifier{Name: "a"}, Property: &Identifier{Name: "i"}, Computed: true}},
	}}

	want := `Program
    Unknown[WhileStatement]
    Unknown[<untagged>]
    ExpressionStatement
        MemberExpression[computed]
            Identifier[a]
            Identifier[i]
`
	if got := Dump(root); got != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, got)
	}

	if Dump(nil) != "" {
		t.Errorf("wanted empty dump for nil")
	}
}

type counter struct {
	kinds map[Kind]int
}

func (c *counter) Visit(n Node) Visitor {
	if n != nil {
		c.kinds[n.Kind()]++
	}
	return c
}

func TestWalkSkipsHoles(t *testing.T) {
	root := &ArrayExpression{Elements: []Node{&Literal{Raw: "1"}, nil, &Literal{Raw: "3"}}}
	c := &counter{kinds: map[Kind]int{}}
	Walk(c, root)

	if c.kinds[KindLiteral] != 2 || c.kinds[KindArrayExpression] != 1 {
		t.Errorf("unexpected visit counts %v", c.kinds)
	}
}
