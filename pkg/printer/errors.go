/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package printer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dburkart/js2py/pkg/common/parse"
	"github.com/dburkart/js2py/pkg/estree"
)

// MalformedNodeError is returned when a node without a kind tag reaches the
// printer. It means the parser broke its contract.
type MalformedNodeError struct {
	Fields   []string
	Location parse.Location
}

func (e *MalformedNodeError) Error() string {
	return fmt.Sprintf("not a node: object without a type tag (fields: %s)", strings.Join(e.Fields, ", "))
}

// UnsupportedConstructError names a construct the printer has no rule for.
type UnsupportedConstructError struct {
	Kind     string
	Detail   string
	Location parse.Location
	Known    []string
}

func (e *UnsupportedConstructError) Error() string {
	msg := "unsupported construct " + e.Kind
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if len(e.Known) > 0 {
		msg += "; supported kinds: " + strings.Join(e.Known, ", ")
	}
	return msg
}

// KnownKinds returns the tags of every kind the printer renders, sorted.
func KnownKinds() []string {
	kinds := estree.Kinds()
	ret := make([]string, 0, len(kinds))
	for _, k := range kinds {
		ret = append(ret, k.String())
	}
	sort.Strings(ret)
	return ret
}

func unsupported(n estree.Node, kind, detail string) error {
	return &UnsupportedConstructError{
		Kind:     kind,
		Detail:   detail,
		Location: n.Span(),
		Known:    KnownKinds(),
	}
}
