/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"strconv"
	"strings"

	"github.com/dburkart/js2py/pkg/proto"
)

// Session holds the REPL settings and the source typed so far.
type Session struct {
	Input       string
	EcmaVersion int
	Strict      bool
	DumpAST     bool

	buffer []string
	depth  int
	open   brackets
}

func NewSession(input string, ecmaVersion int, strict bool) *Session {
	return &Session{Input: input, EcmaVersion: ecmaVersion, Strict: strict}
}

// Apply updates the settings for a non-source command.
func (s *Session) Apply(cmd Command) {
	switch cmd.Type {
	case CommandAST:
		s.DumpAST = !s.DumpAST
	case CommandStrict:
		if cmd.Arg == "" {
			s.Strict = !s.Strict
		} else {
			s.Strict = cmd.Arg == "on"
		}
	case CommandVersion:
		s.EcmaVersion, _ = strconv.Atoi(cmd.Arg)
	case CommandInput:
		s.Input = cmd.Arg
	}
}

// Pending reports whether source lines are buffered waiting for their
// closing brackets.
func (s *Session) Pending() bool {
	return len(s.buffer) > 0
}

// Feed adds a line of source. Once every bracket opened in the buffer is
// closed it returns the buffered source and true.
func (s *Session) Feed(line string) (string, bool) {
	if strings.TrimSpace(line) == "" && !s.Pending() {
		return "", false
	}

	s.buffer = append(s.buffer, line)
	s.depth += s.open.scan(line)
	if s.depth > 0 || s.open.spanning() {
		return "", false
	}

	source := strings.Join(s.buffer, "\n")
	s.Reset()
	return source, true
}

func (s *Session) Reset() {
	s.buffer = nil
	s.depth = 0
	s.open = brackets{}
}

func (s *Session) Request(source string) proto.ConvertRequest {
	return proto.ConvertRequest{
		Source:      source,
		Input:       s.Input,
		EcmaVersion: s.EcmaVersion,
		Strict:      proto.Bool(s.Strict),
	}
}

// brackets tracks the lexical state that can carry over from one line to the
// next, such as an open template literal or block comment.
type brackets struct {
	quote   rune
	escaped bool
	comment bool
}

// spanning reports whether the last line ended inside a literal or comment.
func (b *brackets) spanning() bool {
	return b.quote != 0 || b.comment
}

// scan counts opening minus closing brackets in line, skipping string
// literals and comments.
func (b *brackets) scan(line string) int {
	depth := 0

	for i := 0; i < len(line); i++ {
		c := line[i]

		if b.comment {
			if strings.HasPrefix(line[i:], "*/") {
				b.comment = false
				i++
			}
			continue
		}

		if b.quote != 0 {
			switch {
			case b.escaped:
				b.escaped = false
			case c == '\\':
				b.escaped = true
			case rune(c) == b.quote:
				b.quote = 0
			}
			continue
		}

		switch c {
		case '"', '\'', '`':
			b.quote = rune(c)
		case '/':
			if strings.HasPrefix(line[i:], "//") {
				return depth
			}
			if strings.HasPrefix(line[i:], "/*") {
				b.comment = true
				i++
			}
		case '{', '[', '(':
			depth++
		case '}', ']', ')':
			depth--
		}
	}

	// the newline itself ends an ordinary string unless it was escaped
	switch {
	case b.escaped:
		b.escaped = false
	case b.quote == '"' || b.quote == '\'':
		b.quote = 0
	}
	return depth
}

func bracketDepth(line string) int {
	var b brackets
	return b.scan(line)
}
