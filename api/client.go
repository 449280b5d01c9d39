/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package js2py

import (
	"github.com/dburkart/js2py/pkg/proto"
)

type Client interface {
	Convert(proto.ConvertRequest) (proto.ConvertResponse, error)
	Kinds() ([]string, error)
	Close() error
}

// NewClient returns a Client for the converter named by connstr. Local
// clients convert in-process with base as their default options; remote
// clients send requests to a js2py server, which applies its own defaults.
// The client is safe for concurrent use.
func NewClient(connstr string, base Options) (Client, error) {
	target, err := proto.ParseConnectionString(connstr)
	if err != nil {
		return nil, err
	}

	if target.Local {
		return &LocalClient{base: base}, nil
	}
	return NewRemoteClient(target), nil
}
