/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package js2py

import (
	"net/http"
	"time"

	"github.com/dburkart/js2py/pkg/common/parse"
	"github.com/dburkart/js2py/pkg/printer"
	"github.com/dburkart/js2py/pkg/proto"
	"github.com/pkg/errors"
)

// Respond serves a ConvertRequest, layering the request's settings over base.
func Respond(req proto.ConvertRequest, base Options) (proto.ConvertResponse, error) {
	opts := base
	if req.Input != "" {
		opts.Input = req.Input
	}
	if req.EcmaVersion != 0 {
		opts.EcmaVersion = req.EcmaVersion
	}
	if req.Strict != nil {
		opts.Strict = *req.Strict
	}

	start := time.Now()
	out, err := NewConverter(opts).Convert(req.Source)
	if err != nil {
		return proto.ConvertResponse{}, err
	}

	return proto.ConvertResponse{Output: out, Elapsed: time.Since(start)}, nil
}

// ErrResponse classifies a conversion error for the wire.
func ErrResponse(err error) *proto.ErrResponse {
	var (
		syntaxErr    *parse.SyntaxError
		malformedErr *printer.MalformedNodeError
		unsupported  *printer.UnsupportedConstructError
		optionErr    *InvalidOptionError
		remoteErr    *proto.ErrResponse
	)

	resp := &proto.ErrResponse{Code: http.StatusUnprocessableEntity, Message: err.Error()}
	switch {
	case errors.As(err, &remoteErr):
		return remoteErr
	case errors.As(err, &syntaxErr):
		resp.Kind = proto.KindParseError
		resp.Message = syntaxErr.Message
		resp.Line = syntaxErr.Position.Line
		resp.Column = syntaxErr.Position.Column
	case errors.As(err, &malformedErr):
		resp.Kind = proto.KindMalformedNode
	case errors.As(err, &unsupported):
		resp.Kind = proto.KindUnsupported
	case errors.As(err, &optionErr):
		resp.Code = http.StatusBadRequest
		resp.Kind = proto.KindInvalidOption
	default:
		resp.Code = http.StatusInternalServerError
		resp.Kind = proto.KindInternal
	}
	return resp
}
