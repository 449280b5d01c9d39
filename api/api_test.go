/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package js2py

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dburkart/js2py/pkg/common/parse"
	"github.com/dburkart/js2py/pkg/printer"
	"github.com/dburkart/js2py/pkg/proto"
	"github.com/pkg/errors"
)

func TestConvert(t *testing.T) {
	source := `class Point extends Base {}
for (let i = 0; i < 3; i++) {
  print(i * 2);
}
`
	want := "class Point(Base):\n  pass\nfor i in range(0, 3):\n  print(i * 2)"

	got, err := Convert(source)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("wanted:\n%s\ngot:\n%s", want, got)
	}
}

func TestConvertPropagatesParseErrors(t *testing.T) {
	_, err := Convert("let x = ;")

	var syntaxErr *parse.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("wanted *parse.SyntaxError, got %v", err)
	}
}

func TestConvertPropagatesPrinterErrors(t *testing.T) {
	_, err := Convert("while (x) { x--; }")

	var unsupported *printer.UnsupportedConstructError
	if !errors.As(err, &unsupported) {
		t.Fatalf("wanted *printer.UnsupportedConstructError, got %v", err)
	}
	if unsupported.Kind != "WhileStatement" {
		t.Errorf("wanted WhileStatement, got %s", unsupported.Kind)
	}
	if !unsupported.Location.Known() {
		t.Errorf("wanted a source location")
	}
}

func TestConvertESTree(t *testing.T) {
	opts := DefaultOptions()
	opts.Input = proto.InputESTree

	out, err := NewConverter(opts).Convert(`{"type": "Program", "body": [
		{"type": "ExpressionStatement", "expression": {"type": "Identifier", "name": "x"}}
	]}`)
	if err != nil {
		t.Fatal(err)
	}
	if out != "x" {
		t.Errorf("wanted x, got %q", out)
	}

	_, err = NewConverter(opts).Convert(`{"type": "Program", "body": [{"expression": null}]}`)
	var malformed *printer.MalformedNodeError
	if !errors.As(err, &malformed) {
		t.Errorf("wanted *printer.MalformedNodeError, got %v", err)
	}
}

func TestConvertOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.Indent = 4

	out, err := NewConverter(opts).Convert("if (x) { y(); }")
	if err != nil {
		t.Fatal(err)
	}
	if out != "if x:\n    y()" {
		t.Errorf("wanted four space indent, got %q", out)
	}

	var tests = []struct {
		name   string
		modify func(*Options)
		option string
	}{
		{"indent", func(o *Options) { o.Indent = 40 }, "indent"},
		{"ecmaVersion", func(o *Options) { o.EcmaVersion = 4 }, "ecmaVersion"},
		{"input", func(o *Options) { o.Input = "typescript" }, "input"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			opts := DefaultOptions()
			test.modify(&opts)

			_, err := NewConverter(opts).Convert("x;")
			var optionErr *InvalidOptionError
			if !errors.As(err, &optionErr) {
				t.Fatalf("wanted *InvalidOptionError, got %v", err)
			}
			if optionErr.Option != test.option {
				t.Errorf("wanted option %s, got %s", test.option, optionErr.Option)
			}
		})
	}
}

func TestConvertStrict(t *testing.T) {
	opts := DefaultOptions()
	opts.Strict = true

	if _, err := NewConverter(opts).Convert("x = true;"); err == nil {
		t.Errorf("wanted strict mode to reject true")
	}
	if _, err := NewConverter(DefaultOptions()).Convert("x = true;"); err != nil {
		t.Errorf("wanted default mode to forward true, got %s", err)
	}
}

func TestErrResponse(t *testing.T) {
	_, parseErr := Convert("let x = ;")
	_, unsupportedErr := Convert("a[0];")

	var tests = []struct {
		name string
		err  error
		code int
		kind string
	}{
		{"parse", parseErr, http.StatusUnprocessableEntity, proto.KindParseError},
		{"unsupported", unsupportedErr, http.StatusUnprocessableEntity, proto.KindUnsupported},
		{"malformed", errors.Wrap(&printer.MalformedNodeError{}, "printing"), http.StatusUnprocessableEntity, proto.KindMalformedNode},
		{"option", &InvalidOptionError{Option: "indent"}, http.StatusBadRequest, proto.KindInvalidOption},
		{"internal", errors.New("boom"), http.StatusInternalServerError, proto.KindInternal},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			resp := ErrResponse(test.err)
			if resp.Code != test.code || resp.Kind != test.kind {
				t.Errorf("wanted %d %s, got %d %s", test.code, test.kind, resp.Code, resp.Kind)
			}
		})
	}

	if resp := ErrResponse(parseErr); resp.Line != 1 || resp.Column == 0 {
		t.Errorf("wanted parse error position to be forwarded, got %d:%d", resp.Line, resp.Column)
	}
}

func TestRespondLayersRequestOverBase(t *testing.T) {
	base := DefaultOptions()
	base.Strict = true

	// requests without a strict setting inherit the base
	if _, err := Respond(proto.ConvertRequest{Source: "x = null;"}, base); err == nil {
		t.Errorf("wanted base strictness to apply")
	}

	resp, err := Respond(proto.ConvertRequest{Source: "x = a === b", Strict: proto.Bool(false)}, base)
	if err != nil || resp.Output != "x = a === b" {
		t.Errorf("wanted an explicit strict=false to override the base, got %q (%v)", resp.Output, err)
	}

	if _, err := Respond(proto.ConvertRequest{Source: "x = a === b", Strict: proto.Bool(true)}, DefaultOptions()); err == nil {
		t.Errorf("wanted an explicit strict=true to override the base")
	}

	_, err = Respond(proto.ConvertRequest{Source: "let x = 1;", EcmaVersion: 5}, DefaultOptions())
	var syntaxErr *parse.SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Errorf("wanted request ecmaVersion to apply, got %v", err)
	}

	resp, err = Respond(proto.ConvertRequest{Source: "x;"}, DefaultOptions())
	if err != nil || resp.Output != "x" {
		t.Errorf("unexpected response %+v (%v)", resp, err)
	}
}

func TestLocalClient(t *testing.T) {
	client, err := NewClient("local", DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	if _, ok := client.(*LocalClient); !ok {
		t.Fatalf("wanted *LocalClient, got %T", client)
	}

	resp, err := client.Convert(proto.ConvertRequest{Source: "f(1, 2);"})
	if err != nil || resp.Output != "f(1, 2)" {
		t.Errorf("unexpected response %+v (%v)", resp, err)
	}

	kinds, err := client.Kinds()
	if err != nil || len(kinds) != len(printer.KnownKinds()) {
		t.Errorf("unexpected kinds %v (%v)", kinds, err)
	}
}

func TestNewClientRejectsBadConnectionStrings(t *testing.T) {
	if _, err := NewClient("ftp://somewhere", DefaultOptions()); err == nil {
		t.Errorf("wanted an error for an unknown scheme")
	}
}

func TestRemoteClient(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(proto.RouteConvert, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("wanted POST, got %s", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(string(body), "while") {
			w.WriteHeader(http.StatusUnprocessableEntity)
			w.Write([]byte(`{"code": 422, "kind": "UnsupportedConstruct", "message": "unsupported construct WhileStatement"}`))
			return
		}
		w.Write([]byte(`{"id": "abc", "output": "x", "elapsed": 10}`))
	})
	mux.HandleFunc(proto.RouteKinds, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"kinds": ["Identifier", "Literal"]}`))
	})
	mux.HandleFunc("/broken"+proto.RouteConvert, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	address := strings.TrimPrefix(srv.URL, "http://")
	client, err := NewClient("js2py://"+address, DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	defer client.Close()

	resp, err := client.Convert(proto.ConvertRequest{Source: "x;"})
	if err != nil || resp.Output != "x" || resp.ID != "abc" {
		t.Errorf("unexpected response %+v (%v)", resp, err)
	}

	_, err = client.Convert(proto.ConvertRequest{Source: "while (x) {}"})
	var remoteErr *proto.ErrResponse
	if !errors.As(err, &remoteErr) || remoteErr.Kind != proto.KindUnsupported {
		t.Errorf("wanted a remote UnsupportedConstruct error, got %v", err)
	}
	if kind := ErrResponse(err).Kind; kind != proto.KindUnsupported {
		t.Errorf("wanted remote errors to keep their kind, got %s", kind)
	}

	kinds, err := client.Kinds()
	if err != nil || len(kinds) != 2 {
		t.Errorf("unexpected kinds %v (%v)", kinds, err)
	}

	broken := NewRemoteClient(proto.ConnectionString{Address: address + "/broken"})
	if _, err := broken.Convert(proto.ConvertRequest{Source: "x;"}); err == nil {
		t.Errorf("wanted an error for a bare 502")
	}
}
