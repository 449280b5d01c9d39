/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package js2py

import (
	"github.com/dburkart/js2py/pkg/printer"
	"github.com/dburkart/js2py/pkg/proto"
)

type LocalClient struct {
	base Options
}

func (client *LocalClient) Convert(req proto.ConvertRequest) (proto.ConvertResponse, error) {
	return Respond(req, client.base)
}

func (client *LocalClient) Kinds() ([]string, error) {
	return printer.KnownKinds(), nil
}

func (client *LocalClient) Close() error {
	return nil
}
