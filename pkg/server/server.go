/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	js2py "github.com/dburkart/js2py/api"
	"github.com/dburkart/js2py/pkg/printer"
	"github.com/dburkart/js2py/pkg/proto"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MaxRequestBytes bounds the size of a conversion request body.
const MaxRequestBytes = 4 << 20

type Server struct {
	log     zerolog.Logger
	metrics MetricsStore

	defaults    js2py.Options
	port        int
	metricsPort int
}

func New(log zerolog.Logger, defaults js2py.Options, port, metricsPort int) Server {
	defaults.Logger = log
	return Server{
		log,
		NewMetricsStore(),
		defaults,
		port,
		metricsPort,
	}
}

func (s *Server) Metrics() MetricsStore {
	return s.metrics
}

// Handler routes the conversion API.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(proto.RouteConvert, s.handleConvert)
	mux.HandleFunc(proto.RouteKinds, s.handleKinds)
	return s.withRequestID(mux)
}

func (s *Server) ServeConversions() error {
	s.log.Info().Int("port", s.port).Msg("listening for conversion requests")
	return http.ListenAndServe(fmt.Sprintf(":%d", s.port), s.Handler())
}

func (s *Server) ServeMetrics() error {
	s.log.Info().Int("port", s.metricsPort).Msg("/metrics endpoint started")
	mux := http.NewServeMux()
	mux.Handle(proto.RouteMetrics, s.metrics.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", s.metricsPort), mux)
}

func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(proto.HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(proto.HeaderRequestID, id)
		r.Header.Set(proto.HeaderRequestID, id)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleConvert(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		s.writeJSON(w, http.StatusMethodNotAllowed, proto.ErrResponse{
			Code: http.StatusMethodNotAllowed, Kind: proto.KindInvalidOption, Message: "use POST",
		})
		return
	}

	id := r.Header.Get(proto.HeaderRequestID)
	log := s.log.With().Str("id", id).Logger()

	req := proto.ConvertRequest{}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxRequestBytes))
	if err := dec.Decode(&req); err != nil {
		log.Debug().Err(err).Msg("unable to decode request")
		s.writeJSON(w, http.StatusBadRequest, proto.ErrResponse{
			Code: http.StatusBadRequest, Kind: proto.KindInvalidOption, Message: "malformed request: " + err.Error(),
		})
		return
	}
	log.Debug().Object("req", req).Msg("convert request")

	input := req.Input
	if input == "" {
		input = s.defaults.Input
	}
	s.metrics.ObserveSourceBytes(len(req.Source))

	start := time.Now()
	resp, err := js2py.Respond(req, s.defaults)
	outcome := "ok"
	if err != nil {
		errResp := js2py.ErrResponse(err)
		outcome = errResp.Kind
		log.Info().Err(err).Str("kind", errResp.Kind).Msg("conversion failed")
		s.writeJSON(w, errResp.Code, errResp)
	} else {
		resp.ID = id
		s.writeJSON(w, http.StatusOK, resp)
	}

	s.metrics.IncRequests(input, outcome)
	s.metrics.ObserveResponseNS(input, outcome, time.Since(start).Nanoseconds())
}

func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, proto.KindsResponse{Kinds: printer.KnownKinds()})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("unable to write response")
	}
}
