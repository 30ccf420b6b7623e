// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package wprpc

import (
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

// slowCaller advances a mock clock while "waiting" for the backend.
type slowCaller struct {
	clock *clock.Mock
	delay time.Duration
	err   error
}

func (s *slowCaller) Call(method string, params []interface{}, reply interface{}) error {
	s.clock.Add(s.delay)
	return s.err
}

func TestInstrument(t *testing.T) {
	clk := clock.NewMock()
	metrics := NewMetrics()
	backend := &slowCaller{clock: clk, delay: 250 * time.Millisecond}
	caller := Instrument(backend, metrics, clk)

	var reply interface{}
	assert.NoError(t, caller.Call("wp.getPost", nil, &reply))
	assert.NoError(t, caller.Call("wp.getPost", nil, &reply))
	backend.err = errors.New("boom")
	assert.Error(t, caller.Call("wp.getPost", nil, &reply))

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Calls.WithLabelValues("wp.getPost", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Calls.WithLabelValues("wp.getPost", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.Latency))
}
