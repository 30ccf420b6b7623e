// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package wprpc

import (
	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-wprest/wordpress"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the collectors updated by an instrumented Caller.
// Register them with Collectors.
type Metrics struct {
	Calls   *prometheus.CounterVec
	Latency *prometheus.HistogramVec
}

// NewMetrics creates unregistered call metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		Calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "wprest",
				Subsystem: "xmlrpc",
				Name:      "calls_total",
				Help:      "Backend XML-RPC calls by method and outcome",
			},
			[]string{"method", "outcome"},
		),
		Latency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "wprest",
				Subsystem: "xmlrpc",
				Name:      "call_seconds",
				Help:      "Backend XML-RPC call latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// Collectors returns every collector in m.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{m.Calls, m.Latency}
}

type instrumented struct {
	caller  wordpress.Caller
	metrics *Metrics
	clock   clock.Clock
}

// Instrument wraps caller so that every call is counted and timed.
// clk is normally clock.New().
func Instrument(caller wordpress.Caller, metrics *Metrics, clk clock.Clock) wordpress.Caller {
	return &instrumented{caller: caller, metrics: metrics, clock: clk}
}

func (i *instrumented) Call(method string, params []interface{}, reply interface{}) error {
	start := i.clock.Now()
	err := i.caller.Call(method, params, reply)
	i.metrics.Latency.WithLabelValues(method).Observe(i.clock.Now().Sub(start).Seconds())
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	i.metrics.Calls.WithLabelValues(method, outcome).Inc()
	return err
}
