/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package convert

import (
	"strings"
	"testing"

	js2py "github.com/dburkart/js2py/api"
	"github.com/dburkart/js2py/pkg/proto"
	"github.com/pkg/errors"
)

func TestConvertAllKeepsOrder(t *testing.T) {
	opts := js2py.DefaultOptions()
	client, err := js2py.NewClient("local", opts)
	if err != nil {
		t.Fatal(err)
	}

	sources := []Source{
		{Name: "a.js", Text: "a();"},
		{Name: "b.js", Text: "while (x) {}"},
		{Name: "c.js", Text: "for (let i = 0; i < 2; i++) { c(i); }"},
	}

	results := ConvertAll(client, opts, sources)
	if len(results) != len(sources) {
		t.Fatalf("wanted %d results, got %d", len(sources), len(results))
	}

	for i, r := range results {
		if r.Source.Name != sources[i].Name {
			t.Errorf("result %d: wanted %s, got %s", i, sources[i].Name, r.Source.Name)
		}
		if r.ID == "" {
			t.Errorf("result %d: wanted an id", i)
		}
	}

	if results[0].Output != "a()" || results[0].Err != nil {
		t.Errorf("unexpected result %+v", results[0])
	}
	if results[1].Err == nil {
		t.Errorf("wanted b.js to fail")
	}
	if results[2].Output != "for i in range(0, 2):\n  c(i)" {
		t.Errorf("unexpected output %q", results[2].Output)
	}

	values := Report(results).Values()
	if values[0][1] != "ok" || values[1][1] != proto.KindUnsupported {
		t.Errorf("unexpected statuses %s, %s", values[0][1], values[1][1])
	}
	if values[1][3] != "-" {
		t.Errorf("wanted no output size for a failure, got %s", values[1][3])
	}
}

func TestFormatError(t *testing.T) {
	source := "x;\nlet y = ;\n"

	_, err := js2py.Convert(source)
	out := FormatError(err, source)
	if !strings.HasPrefix(out, "Syntax error found on line 2:\nlet y = ;\n") {
		t.Errorf("unexpected formatted error:\n%s", out)
	}

	remote := &proto.ErrResponse{Kind: proto.KindParseError, Message: "Unexpected token", Line: 2, Column: 9}
	out = FormatError(remote, source)
	if !strings.Contains(out, "        ^ Unexpected token") {
		t.Errorf("wanted caret under column 9:\n%s", out)
	}

	plain := errors.New("connection refused")
	if out := FormatError(plain, source); out != "connection refused\n" {
		t.Errorf("unexpected formatted error %q", out)
	}
}

func TestOutputPath(t *testing.T) {
	var tests = []struct {
		name string
		want string
	}{
		{"src/app.js", "out/app.py"},
		{"lib.mjs", "out/lib.py"},
		{"noext", "out/noext.py"},
		{"<stdin>", "out/stdin.py"},
	}

	for _, test := range tests {
		if got := OutputPath("out", test.name); got != test.want {
			t.Errorf("OutputPath(%s): wanted %s, got %s", test.name, test.want, got)
		}
	}
}

func TestCheckOutputPaths(t *testing.T) {
	distinct := []Source{{Name: "a/x.js"}, {Name: "a/y.js"}, {Name: "<stdin>"}}
	if err := CheckOutputPaths("out", distinct); err != nil {
		t.Errorf("unexpected error %s", err)
	}

	clashing := []Source{{Name: "a/x.js"}, {Name: "b/y.js"}, {Name: "b/x.mjs"}}
	err := CheckOutputPaths("out", clashing)
	if err == nil {
		t.Fatalf("wanted a collision between a/x.js and b/x.mjs")
	}
	for _, s := range []string{"a/x.js", "b/x.mjs", "out/x.py"} {
		if !strings.Contains(err.Error(), s) {
			t.Errorf("wanted error to mention %s, got %s", s, err)
		}
	}
}
