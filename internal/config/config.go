/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

// Package config binds the conversion settings shared by the js2py commands
// to viper.
package config

import (
	js2py "github.com/dburkart/js2py/api"
	"github.com/dburkart/js2py/pkg/jsparse"
	"github.com/dburkart/js2py/pkg/proto"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyInput       = "convert.input"
	KeyEcmaVersion = "convert.ecma-version"
	KeyStrict      = "convert.strict"
	KeyIndent      = "convert.indent"
)

// BindConversionFlags registers the conversion flags on fs and binds them to
// their viper keys.
func BindConversionFlags(fs *pflag.FlagSet) {
	fs.String("input", proto.InputJavaScript, "Input format [js, estree]")
	fs.Int("ecma-version", jsparse.DefaultEcmaVersion, "ECMAScript version of the input (3, 5, 6-15 or 2015-2024)")
	fs.Bool("strict", false, "Reject literals and operators Python spells differently")
	fs.Int("indent", 2, "Spaces per indentation level")

	viper.BindPFlag(KeyInput, fs.Lookup("input"))
	viper.BindPFlag(KeyEcmaVersion, fs.Lookup("ecma-version"))
	viper.BindPFlag(KeyStrict, fs.Lookup("strict"))
	viper.BindPFlag(KeyIndent, fs.Lookup("indent"))
}

// ConversionOptions reads the conversion settings from viper.
func ConversionOptions(log zerolog.Logger) js2py.Options {
	opts := js2py.DefaultOptions()
	opts.Input = viper.GetString(KeyInput)
	opts.EcmaVersion = viper.GetInt(KeyEcmaVersion)
	opts.Strict = viper.GetBool(KeyStrict)
	opts.Indent = viper.GetInt(KeyIndent)
	opts.Logger = log
	return opts
}

// Logger returns the logger the root command stored in viper.
func Logger() zerolog.Logger {
	if log, ok := viper.Get("logger").(zerolog.Logger); ok {
		return log
	}
	return zerolog.Nop()
}
