/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dburkart/js2py/pkg/proto"
)

type CommandType int

const (
	CommandSource CommandType = iota
	CommandHelp
	CommandExit
	CommandAST
	CommandStrict
	CommandVersion
	CommandInput
)

type Command struct {
	Type CommandType
	Arg  string
	Line string
}

// ParseREPLCommand parses one line of REPL input. Lines starting with ':'
// and the bare words help and exit are commands; anything else is source.
//
// This function assumes there is no '\n'
func ParseREPLCommand(b []byte) (Command, error) {
	line := strings.TrimSpace(string(b))

	switch strings.ToUpper(line) {
	case "HELP", ":HELP":
		return Command{Type: CommandHelp, Line: line}, nil
	case "EXIT", "QUIT", ":EXIT", ":QUIT":
		return Command{Type: CommandExit, Line: line}, nil
	}

	if !strings.HasPrefix(line, ":") {
		return Command{Type: CommandSource, Line: string(b)}, nil
	}

	fields := strings.Fields(line[1:])
	if len(fields) == 0 {
		return Command{}, fmt.Errorf("empty command")
	}

	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	cmd := Command{Arg: arg, Line: line}
	switch strings.ToLower(fields[0]) {
	case "ast":
		cmd.Type = CommandAST
	case "strict":
		if arg != "" && arg != "on" && arg != "off" {
			return Command{}, fmt.Errorf("usage: :strict [on|off]")
		}
		cmd.Type = CommandStrict
	case "version":
		if _, err := strconv.Atoi(arg); err != nil {
			return Command{}, fmt.Errorf("usage: :version <ecmaVersion>")
		}
		cmd.Type = CommandVersion
	case "input":
		if arg != proto.InputJavaScript && arg != proto.InputESTree {
			return Command{}, fmt.Errorf("usage: :input [%s|%s]", proto.InputJavaScript, proto.InputESTree)
		}
		cmd.Type = CommandInput
	default:
		return Command{}, fmt.Errorf("unknown command :%s", fields[0])
	}

	return cmd, nil
}
