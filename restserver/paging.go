// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/url"
	"strconv"

	"github.com/diffeo/go-wprest/restdata"
	"github.com/diffeo/go-wprest/wordpress"
)

// pageRequest is the paging state of one collection request.
type pageRequest struct {
	// Page is the 1-based page number.
	Page int

	// Size is the fixed number of records per page.
	Size int

	// Filters holds the filtering query parameters present on
	// the request, to be repeated on paging links.
	Filters url.Values
}

func (api *restAPI) pageRequest(ctx *context, kind *ResourceKind) (pageRequest, error) {
	var q pageQuery
	if err := ctx.Decode(&q); err != nil {
		return pageRequest{}, err
	}
	p := pageRequest{Page: q.Page, Size: api.Config.PageSize, Filters: url.Values{}}
	if p.Page < 1 {
		p.Page = 1
	}
	for _, name := range kind.Filters {
		if values, present := ctx.QueryParams[name]; present {
			p.Filters[name] = values
		}
	}
	return p, nil
}

// Window is the backend's view of this page.
func (p pageRequest) Window() wordpress.Page {
	return wordpress.Page{Number: p.Size, Offset: (p.Page - 1) * p.Size}
}

// query returns the query string for page n.  Page 1 is the bare
// collection.
func (p pageRequest) query(n int) url.Values {
	q := url.Values{}
	for name, values := range p.Filters {
		q[name] = values
	}
	if n > 1 {
		q.Set("page", strconv.Itoa(n))
	}
	return q
}

// pagingLinks computes the next and prev links of a page that
// returned the given number of records.  A full page is assumed to
// have a successor.
func pagingLinks(u *urlBuilder, route string, p pageRequest, returned int) (restdata.PageLinks, error) {
	var links restdata.PageLinks
	if returned >= p.Size {
		u.Query(&links.Next, route, p.query(p.Page+1))
	}
	if p.Page > 1 {
		u.Query(&links.Prev, route, p.query(p.Page-1))
	}
	return links, u.Error
}

// collectionMeta builds the _meta block of one page of kind's
// collection.
func (api *restAPI) collectionMeta(ctx *context, kind *ResourceKind, p pageRequest, returned int) (restdata.CollectionMeta, error) {
	var params []string
	if kind.Parent != nil {
		params = []string{"parent_id", ctx.Vars["parent_id"]}
	}
	links, err := pagingLinks(api.urls(ctx, params...), kind.PluralName, p, returned)
	return restdata.CollectionMeta{Supports: kind.CollectionSupports, Links: links}, err
}
