/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package proto

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Printable is implemented by values the REPL and CLI writers can render as a
// table.
type Printable interface {
	Headers() []string
	Values() [][]string
}

type (
	ConvertRequest struct {
		Source      string `json:"source"`
		Input       string `json:"input,omitempty"`
		EcmaVersion int    `json:"ecmaVersion,omitempty"`
		Strict      *bool  `json:"strict,omitempty"`
	}

	ConvertResponse struct {
		ID      string        `json:"id,omitempty"`
		Output  string        `json:"output"`
		Elapsed time.Duration `json:"elapsed"`
	}

	ErrResponse struct {
		Code    int    `json:"code"`
		Kind    string `json:"kind"`
		Message string `json:"message"`
		Line    int    `json:"line,omitempty"`
		Column  int    `json:"column,omitempty"`
	}

	KindsResponse struct {
		Kinds []string `json:"kinds"`
	}
)

// ConvertRequest
// --------------------------

// Bool returns a pointer to b, for the optional request settings.
func Bool(b bool) *bool {
	return &b
}

func (rq ConvertRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("input", rq.Input).Int("ecmaVersion", rq.EcmaVersion).Int("bytes", len(rq.Source))
	if rq.Strict != nil {
		e.Bool("strict", *rq.Strict)
	}
}

// ConvertResponse
// --------------------------

func (rs ConvertResponse) Headers() []string {
	return []string{"output"}
}

func (rs ConvertResponse) Values() [][]string {
	return [][]string{{rs.Output}}
}

// ErrResponse
// --------------------------

func (e *ErrResponse) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Column, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e ErrResponse) Headers() []string {
	return []string{"code", "kind", "position", "message"}
}

func (e ErrResponse) Values() [][]string {
	pos := ""
	if e.Line > 0 {
		pos = fmt.Sprintf("%d:%d", e.Line, e.Column)
	}
	return [][]string{{strconv.Itoa(e.Code), e.Kind, pos, e.Message}}
}

// KindsResponse
// --------------------------

func (k KindsResponse) Headers() []string {
	return []string{"kind"}
}

func (k KindsResponse) Values() [][]string {
	ret := make([][]string, 0, len(k.Kinds))
	for _, kind := range k.Kinds {
		ret = append(ret, []string{kind})
	}
	return ret
}
