/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package proto

var (
	// RouteConvert converts one source document
	RouteConvert = "/convert"
	// RouteKinds lists the node kinds the printer renders
	RouteKinds = "/kinds"
	// RouteMetrics serves prometheus metrics
	RouteMetrics = "/metrics"

	// HeaderRequestID carries the id the server assigned to a request
	HeaderRequestID = "X-Request-Id"
)

// Input formats accepted by a ConvertRequest
const (
	InputJavaScript = "js"
	InputESTree     = "estree"
)

// Error kinds carried by ErrResponse
const (
	KindParseError    = "ParseError"
	KindMalformedNode = "MalformedNode"
	KindUnsupported   = "UnsupportedConstruct"
	KindInvalidOption = "InvalidOption"
	KindInternal      = "Internal"
)
