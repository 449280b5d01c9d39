/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"testing"

	"github.com/dburkart/js2py/pkg/proto"
)

func TestParseREPLCommand(t *testing.T) {
	tt := []struct {
		test    string
		line    string
		cmdType CommandType
		arg     string
	}{
		{"help", "help", CommandHelp, ""},
		{"help colon", ":help", CommandHelp, ""},
		{"exit upper", "EXIT", CommandExit, ""},
		{"quit", ":quit", CommandExit, ""},
		{"ast", ":ast", CommandAST, ""},
		{"strict toggle", ":strict", CommandStrict, ""},
		{"strict on", ":strict on", CommandStrict, "on"},
		{"version", ":version 2020", CommandVersion, "2020"},
		{"input", ":input estree", CommandInput, proto.InputESTree},
		{"source", "let x = 1;", CommandSource, ""},
		{"source with leading space", "  f(x);", CommandSource, ""},
	}

	for _, tc := range tt {
		t.Run(tc.test, func(t *testing.T) {
			cmd, err := ParseREPLCommand([]byte(tc.line))
			if err != nil {
				t.Fatal(err)
			}
			if cmd.Type != tc.cmdType {
				t.Errorf("wanted command type %d, got %d", tc.cmdType, cmd.Type)
			}
			if cmd.Arg != tc.arg {
				t.Errorf("wanted arg %q, got %q", tc.arg, cmd.Arg)
			}
		})
	}
}

func TestParseREPLCommandSourceKeepsLine(t *testing.T) {
	cmd, err := ParseREPLCommand([]byte("  f(x);"))
	if err != nil {
		t.Fatal(err)
	}
	if cmd.Line != "  f(x);" {
		t.Errorf("wanted the source line untouched, got %q", cmd.Line)
	}
}

func TestParseREPLCommandErrors(t *testing.T) {
	for _, line := range []string{":", ":bogus", ":strict maybe", ":version next", ":input ts"} {
		if _, err := ParseREPLCommand([]byte(line)); err == nil {
			t.Errorf("%q should have caused an error", line)
		}
	}
}
