// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"github.com/diffeo/go-wprest/wprpc"
	"github.com/prometheus/client_golang/prometheus"
)

var httpRequests = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "wprest",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests by status code and method",
	},
	[]string{"code", "method"},
)

// newRegistry creates the registry behind /metrics.
func newRegistry(rpc *wprpc.Metrics) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		httpRequests,
	)
	registry.MustRegister(rpc.Collectors()...)
	return registry
}
