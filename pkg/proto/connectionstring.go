/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package proto

import (
	"fmt"
	"net/url"
)

var Protocol = "js2py"

type ConnectionString struct {
	Local   bool
	Address string
}

// ParseConnectionString takes a connection string and parses it into the parts
// the application needs to reach a converter. It will only return an error if
// the string does not parse as a URL or the scheme is not recognized.
//
// Formats:
//
//	local
//	file:
//	js2py://<host:port>
//	http://<host:port>
func ParseConnectionString(connStr string) (ConnectionString, error) {
	ret := ConnectionString{
		Local:   true,
		Address: "local",
	}

	if connStr == "" || connStr == "local" {
		return ret, nil
	}

	u, err := url.Parse(connStr)
	if err != nil {
		return ConnectionString{}, err
	}

	switch u.Scheme {
	case "", "file":
		return ret, nil
	case Protocol, "http":
		if u.Host == "" {
			return ConnectionString{}, fmt.Errorf("missing host in %s", connStr)
		}
		ret.Local = false
		ret.Address = u.Host
		return ret, nil
	}

	return ConnectionString{}, fmt.Errorf("unrecognized scheme: %s", u.Scheme)
}

// URL returns the base URL of a remote converter.
func (c ConnectionString) URL() string {
	return "http://" + c.Address
}
