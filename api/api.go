/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package js2py converts ECMAScript source to Python source.
package js2py

import (
	"strings"
	"time"

	"github.com/dburkart/js2py/pkg/estree"
	"github.com/dburkart/js2py/pkg/jsparse"
	"github.com/dburkart/js2py/pkg/printer"
	"github.com/dburkart/js2py/pkg/proto"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Options struct {
	// Input is proto.InputJavaScript or proto.InputESTree.
	Input       string
	EcmaVersion int
	// Indent is the number of spaces per indentation level.
	Indent int
	Strict bool
	Logger zerolog.Logger
}

func DefaultOptions() Options {
	return Options{
		Input:       proto.InputJavaScript,
		EcmaVersion: jsparse.DefaultEcmaVersion,
		Indent:      2,
		Logger:      zerolog.Nop(),
	}
}

// InvalidOptionError reports a conversion option that cannot be honored.
type InvalidOptionError struct {
	Option string
	Reason string
}

func (e *InvalidOptionError) Error() string {
	return "invalid option " + e.Option + ": " + e.Reason
}

type Converter struct {
	opts Options
}

func NewConverter(opts Options) *Converter {
	return &Converter{opts: opts}
}

// Convert converts source with the default options.
func Convert(source string) (string, error) {
	return NewConverter(DefaultOptions()).Convert(source)
}

func (c *Converter) Options() Options {
	return c.opts
}

// Parse runs the front end selected by the options and returns the root node.
func (c *Converter) Parse(source string) (estree.Node, error) {
	switch c.opts.Input {
	case proto.InputJavaScript, "":
		version, err := jsparse.NormalizeEcmaVersion(c.opts.EcmaVersion)
		if err != nil {
			return nil, &InvalidOptionError{Option: "ecmaVersion", Reason: err.Error()}
		}
		return jsparse.Parse(source, version)
	case proto.InputESTree:
		return estree.Decode([]byte(source))
	}
	return nil, &InvalidOptionError{Option: "input", Reason: "unknown input format " + c.opts.Input}
}

// Convert parses source and prints it. Errors from the parser and the
// printer are returned unchanged.
func (c *Converter) Convert(source string) (string, error) {
	log := c.opts.Logger

	start := time.Now()
	root, err := c.Parse(source)
	if err != nil {
		log.Debug().Err(err).Msg("parse failed")
		return "", err
	}
	parsed := time.Since(start)

	p, err := c.printer()
	if err != nil {
		return "", err
	}

	out, err := p.Print(root)
	if err != nil {
		log.Debug().Err(err).Msg("print failed")
		return "", err
	}

	log.Trace().
		Dur("parse", parsed).
		Dur("total", time.Since(start)).
		Int("bytes", len(source)).
		Msg("converted")

	return out, nil
}

func (c *Converter) printer() (*printer.Printer, error) {
	indent := c.opts.Indent
	if indent == 0 {
		indent = 2
	}
	if indent < 0 || indent > 16 {
		return nil, errors.WithStack(&InvalidOptionError{Option: "indent", Reason: "must be between 1 and 16"})
	}
	return printer.New(
		printer.WithIndent(strings.Repeat(" ", indent)),
		printer.WithStrict(c.opts.Strict),
	), nil
}
