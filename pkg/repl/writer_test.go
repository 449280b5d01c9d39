/*
 * Copyright (c) 2023, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dburkart/js2py/pkg/proto"
)

func TestCSVWriter(t *testing.T) {
	var b bytes.Buffer
	w := NewOutputWriter(&b, "csv")

	if err := w.Write(proto.KindsResponse{Kinds: []string{"Identifier", "Literal"}}); err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "kind\nIdentifier\nLiteral\n"; got != want {
		t.Errorf("wanted %q, got %q", want, got)
	}
}

func TestJSONWriter(t *testing.T) {
	var b bytes.Buffer
	w := NewOutputWriter(&b, "json")

	if err := w.Write(proto.ConvertResponse{Output: "x = 1"}); err != nil {
		t.Fatal(err)
	}

	ret := proto.ConvertResponse{}
	if err := json.Unmarshal(b.Bytes(), &ret); err != nil {
		t.Fatal(err)
	}
	if ret.Output != "x = 1" {
		t.Errorf("unexpected output %q", ret.Output)
	}
}

func TestTextWriter(t *testing.T) {
	var b bytes.Buffer
	w := NewOutputWriter(&b, "text")

	err := w.Write(proto.ErrResponse{Code: 422, Kind: proto.KindParseError, Message: "Unexpected token", Line: 1, Column: 9})
	if err != nil {
		t.Fatal(err)
	}

	out := b.String()
	for _, s := range []string{"422", proto.KindParseError, "1:9", "Unexpected token"} {
		if !strings.Contains(out, s) {
			t.Errorf("wanted table to contain %q:\n%s", s, out)
		}
	}
}

func TestUnknownFormatFallsBackToText(t *testing.T) {
	if _, ok := NewOutputWriter(&bytes.Buffer{}, "yaml").(TextWriter); !ok {
		t.Errorf("wanted unknown formats to use the text writer")
	}
}
