// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/diffeo/go-wprest/memory"
	"github.com/diffeo/go-wprest/restserver"
	"github.com/diffeo/go-wprest/wprpc"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newTestHandler(reqLogger *logrus.Logger, gzip bool) http.Handler {
	blog := memory.New()
	blog.SetOption("blog_title", "Test Blog")
	return newHandler(blog, restserver.DefaultConfig(), newRegistry(wprpc.NewMetrics()), reqLogger, gzip)
}

func TestHandlerRoutes(t *testing.T) {
	h := newTestHandler(nil, false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Test Blog")

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "wprest_http_requests_total")
}

func TestRequestLogging(t *testing.T) {
	var out bytes.Buffer
	logger := &logrus.Logger{
		Out:       &out,
		Formatter: &logrus.JSONFormatter{},
		Hooks:     make(logrus.LevelHooks),
		Level:     logrus.InfoLevel,
	}
	h := newTestHandler(logger, false)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/wporg/v1/users/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	id := rec.Header().Get("X-Request-Id")
	assert.NotEmpty(t, id)
	assert.Contains(t, out.String(), id)
	assert.Contains(t, out.String(), `"status":200`)
	assert.Contains(t, out.String(), `"path":"/wporg/v1/users/"`)
}

func TestGzip(t *testing.T) {
	h := newTestHandler(nil, true)

	req := httptest.NewRequest(http.MethodGet, "/wporg/v1/swagger.json", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	req = httptest.NewRequest(http.MethodGet, "/wporg/v1/swagger.json", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "{"))
}
