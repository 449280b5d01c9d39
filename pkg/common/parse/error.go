/*
 * Copyright (c) 2022, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"fmt"
	"strings"
)

type SyntaxError struct {
	Position Position
	Location Location
	Message  string
}

func NewSyntaxError(input string, l Location, m string) *SyntaxError {
	return &SyntaxError{Position: PositionOf(input, l.Start), Location: l, Message: m}
}

func (s *SyntaxError) Error() string {
	if s.Position.Line == 0 {
		return fmt.Sprintf("syntax error: %s", s.Message)
	}
	return fmt.Sprintf("syntax error at %d:%d: %s", s.Position.Line, s.Position.Column, s.Message)
}

// FormatError renders the offending source line with a caret under the
// column the error was reported at.
func (s *SyntaxError) FormatError(input string) string {
	if s.Position.Line == 0 {
		return s.Error() + "\n"
	}

	repeat := s.Location.End - s.Location.Start - 1
	if repeat < 0 {
		repeat = 0
	}

	line := LineAt(input, s.Position.Line)
	if s.Position.Column-1+repeat > len(line) {
		repeat = 0
	}

	errorString := fmt.Sprintf("Syntax error found on line %d:\n", s.Position.Line)
	errorString += line
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", s.Position.Column-1), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", s.Message)
	return errorString
}
