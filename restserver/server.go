// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"
	"time"

	"github.com/diffeo/go-wprest/restdata"
	"github.com/diffeo/go-wprest/wordpress"
	"github.com/gorilla/mux"
)

// Config controls the URL layout and representation details of the
// REST API.
type Config struct {
	// APIRoot is the first path segment of every resource URL.
	APIRoot string

	// Version is the API version label, the second path segment
	// of every resource URL.
	Version string

	// PageSize is the fixed number of records per collection page.
	PageSize int

	// UTCOffset is added to stored UTC times to produce the local
	// variant of every timestamp.
	UTCOffset time.Duration
}

// DefaultConfig returns the configuration with the stock URL layout.
func DefaultConfig() Config {
	return Config{
		APIRoot:  "wporg",
		Version:  "v1",
		PageSize: 10,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.APIRoot == "" {
		c.APIRoot = d.APIRoot
	}
	if c.Version == "" {
		c.Version = d.Version
	}
	if c.PageSize <= 0 {
		c.PageSize = d.PageSize
	}
	return c
}

// NewRouter creates a new HTTP handler that serves blog.  All
// resources are under /{APIRoot}/{Version}, with the discovery
// document at /.  For more control over this setup, create a
// mux.Router and call PopulateRouter instead.
func NewRouter(blog wordpress.Blog, config Config) http.Handler {
	r := mux.NewRouter().StrictSlash(true)
	PopulateRouter(r, blog, config)
	return r
}

// PopulateRouter adds the blog's routes to an existing
// github.com/gorilla/mux router object.  This can be used, for
// instance, to place the API under a subpath:
//
//     r := mux.NewRouter()
//     s := r.PathPrefix("/blog").Subrouter()
//     PopulateRouter(s, memory.New(), DefaultConfig())
func PopulateRouter(r *mux.Router, blog wordpress.Blog, config Config) {
	api := &restAPI{Blog: blog, Config: config.withDefaults(), Router: r}
	api.PopulateRouter(r)
}

// restAPI holds the persistent state for the REST API.
type restAPI struct {
	Blog   wordpress.Blog
	Config Config
	Router *mux.Router
	routes []registeredRoute
}

// PopulateRouter adds all URL paths to a router.
func (api *restAPI) PopulateRouter(r *mux.Router) {
	api.registerCollection(PostKind, api.PostList, api.PostGet)
	api.registerCollection(CommentKind, api.CommentList, api.CommentGet)
	api.registerCollection(UserKind, api.UserList, api.UserGet)
	for _, kind := range []*ResourceKind{FileKind, ImageKind, VideoKind, AudioKind} {
		api.registerCollection(kind, api.mediaList(kind), api.mediaGet(kind))
	}
	api.registerCollection(TaxonomyKind, api.TaxonomyList, api.TaxonomyGet)
	api.registerNestedCollection(TaxonomyKind, TermKind, api.TermList, api.TermGet)
	r.Path(api.prefix() + "/swagger.json").Name("swagger").Handler(&resourceHandler{
		Context: api.Context,
		Get:     api.SwaggerDocument,
	})
	r.Path("/").Name("root").Handler(&resourceHandler{
		Supports: rootVerbs,
		Context:  api.Context,
		Get:      api.RootDocument,
	})
}

// prefix is the common path of all resource routes.
func (api *restAPI) prefix() string {
	return "/" + api.Config.APIRoot + "/" + api.Config.Version
}

// urls starts building absolute links for the request in ctx.
func (api *restAPI) urls(ctx *context, params ...string) *urlBuilder {
	return buildURLs(api.Router, ctx.Base, params...)
}

// gmtTime formats a stored timestamp as UTC.
func gmtTime(t time.Time) string {
	return t.UTC().Format(restdata.TimeLayout)
}

// localTime formats a stored timestamp in the blog's local time.
func (api *restAPI) localTime(t time.Time) string {
	return t.UTC().Add(api.Config.UTCOffset).Format(restdata.TimeLayout)
}
