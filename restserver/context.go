// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/http"
	"net/url"

	"github.com/diffeo/go-wprest/restdata"
	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
)

var queryDecoder = newQueryDecoder()

func newQueryDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}

// context holds all of the information that can be extracted from
// the request URL.
type context struct {
	Base        *url.URL
	Vars        map[string]string
	QueryParams url.Values
}

func (api *restAPI) Context(req *http.Request) (*context, error) {
	return &context{
		Base:        requestBase(req),
		Vars:        mux.Vars(req),
		QueryParams: req.URL.Query(),
	}, nil
}

// Decode fills the schema-tagged struct dst from the query string.
func (ctx *context) Decode(dst interface{}) error {
	if err := queryDecoder.Decode(dst, ctx.QueryParams); err != nil {
		return restdata.ErrBadRequest{Err: err}
	}
	return nil
}

// The query strings of the collection routes.

type pageQuery struct {
	Page int `schema:"page"`
}

type postQuery struct {
	PostType string `schema:"post_type"`
}

type commentQuery struct {
	PostID string `schema:"post_id"`
	Status string `schema:"status"`
}

type userQuery struct {
	Role string `schema:"role"`
}

type termQuery struct {
	Search string `schema:"search"`
}

type mediaQuery struct {
	ParentID string `schema:"parent_id"`
}
