// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains reverse URL generation.  Every link in every
// representation goes through a urlBuilder, so it always names a
// route the router will match.

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gorilla/mux"
)

type urlBuilder struct {
	Router *mux.Router
	Base   *url.URL
	Params []string
	Error  error
}

// buildURLs creates a builder producing absolute URLs relative to
// base.  params are alternating route variable names and values.
func buildURLs(router *mux.Router, base *url.URL, params ...string) *urlBuilder {
	return &urlBuilder{Router: router, Base: base, Params: params}
}

func (u *urlBuilder) Route(route string) *mux.Route {
	if u.Error != nil {
		return nil
	}
	r := u.Router.Get(route)
	if r == nil {
		u.Error = fmt.Errorf("No such route %q", route)
	}
	return r
}

// URL stores the absolute URL of route in out.
func (u *urlBuilder) URL(out *string, route string) *urlBuilder {
	return u.Query(out, route, nil)
}

// Query stores the absolute URL of route, with a query string built
// from query, in out.
func (u *urlBuilder) Query(out *string, route string, query url.Values) *urlBuilder {
	var r *mux.Route
	var path *url.URL
	if u.Error == nil {
		r = u.Route(route)
	}
	if u.Error == nil {
		path, u.Error = r.URL(u.Params...)
	}
	if u.Error == nil {
		if len(query) > 0 {
			path.RawQuery = query.Encode()
		}
		if u.Base != nil {
			path = u.Base.ResolveReference(path)
		}
		*out = path.String()
	}
	return u
}

// requestBase returns the scheme and host a client used to reach
// this service.
func requestBase(req *http.Request) *url.URL {
	scheme := "http"
	if req.TLS != nil {
		scheme = "https"
	}
	if proto := req.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return &url.URL{Scheme: scheme, Host: req.Host}
}
