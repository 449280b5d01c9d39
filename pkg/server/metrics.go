/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler

	// Collection
	IncRequests(input, outcome string)
	ObserveResponseNS(input, outcome string, t int64)
	ObserveSourceBytes(n int)
}

type metricsStore struct {
	registry    *prometheus.Registry
	Requests    *prometheus.CounterVec
	ResponseNS  *prometheus.HistogramVec
	SourceBytes prometheus.Histogram
}

var (
	InputLabel   = "input"
	OutcomeLabel = "outcome"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(i*i*int(100*time.Microsecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "js2py_requests",
			Help: "Conversion requests by input format and outcome",
		}, []string{InputLabel, OutcomeLabel}),
		ResponseNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "js2py_response_ns",
			Help:    "Time spent converting a request",
			Buckets: buckets,
		}, []string{InputLabel, OutcomeLabel}),
		SourceBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "js2py_source_bytes",
			Help:    "Size of the source documents submitted for conversion",
			Buckets: prometheus.ExponentialBuckets(64, 4, 8),
		}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) IncRequests(input, outcome string) {
	ms.Requests.With(prometheus.Labels{InputLabel: input, OutcomeLabel: outcome}).Inc()
}

func (ms *metricsStore) ObserveResponseNS(input, outcome string, t int64) {
	ms.ResponseNS.
		With(prometheus.Labels{InputLabel: input, OutcomeLabel: outcome}).
		Observe(float64(t))
}

func (ms *metricsStore) ObserveSourceBytes(n int) {
	ms.SourceBytes.Observe(float64(n))
}
