// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-wprest/restserver"
	"github.com/diffeo/go-wprest/wordpress"
	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	uuid "github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// requestLogger is negroni middleware that tags each request with an
// id and logs it when it completes.
type requestLogger struct {
	Logger *logrus.Logger
	Clock  clock.Clock
}

func (l *requestLogger) ServeHTTP(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	start := l.Clock.Now()
	id := uuid.NewV4().String()
	rw.Header().Set("X-Request-Id", id)

	next(rw, req)

	fields := logrus.Fields{
		"id":       id,
		"remote":   req.RemoteAddr,
		"method":   req.Method,
		"path":     req.URL.RequestURI(),
		"duration": l.Clock.Since(start),
	}
	if res, ok := rw.(negroni.ResponseWriter); ok {
		fields["status"] = res.Status()
		fields["size"] = res.Size()
	}
	l.Logger.WithFields(fields).Info("Request")
}

// newHandler builds the complete HTTP stack: the REST routes and
// /metrics, wrapped in panic recovery, optional request logging, and
// optional gzip.
func newHandler(blog wordpress.Blog, config restserver.Config, registry *prometheus.Registry, reqLogger *logrus.Logger, gzip bool) http.Handler {
	r := mux.NewRouter().StrictSlash(true)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	restserver.PopulateRouter(r, blog, config)

	var h http.Handler = promhttp.InstrumentHandlerCounter(httpRequests, r)
	if gzip {
		h = gzhttp.GzipHandler(h)
	}

	n := negroni.New(negroni.NewRecovery())
	if reqLogger != nil {
		n.Use(&requestLogger{Logger: reqLogger, Clock: clock.New()})
	}
	n.UseHandler(h)
	return n
}
