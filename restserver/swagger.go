// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-wprest/restdata"
	"github.com/go-openapi/spec"
)

// SwaggerDocument describes every registered resource route as a
// Swagger 2.0 document.  Only GET is described, since it is the only
// verb any route performs.
func (api *restAPI) SwaggerDocument(ctx *context) (interface{}, error) {
	doc := &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger: "2.0",
			Info: &spec.Info{
				InfoProps: spec.InfoProps{
					Title:   "WordPress REST gateway",
					Version: api.Config.Version,
				},
			},
			Host:     ctx.Base.Host,
			Schemes:  []string{ctx.Base.Scheme},
			Produces: []string{defaultMediaType, restdata.JSONMediaType},
			Paths:    &spec.Paths{Paths: make(map[string]spec.PathItem)},
		},
	}
	for _, route := range api.routes {
		doc.Paths.Paths[route.Path] = spec.PathItem{
			PathItemProps: spec.PathItemProps{Get: api.swaggerOperation(route)},
		}
	}
	return doc, nil
}

func (api *restAPI) swaggerOperation(route registeredRoute) *spec.Operation {
	kind := route.Kind
	op := spec.NewOperation(route.Name).WithTags(kind.PluralName)
	for _, name := range route.Params {
		op.AddParam(spec.PathParam(name).Typed("string", ""))
	}
	if route.Collection {
		op.WithSummary("List " + kind.PluralName).WithProduces(defaultMediaType, restdata.JSONMediaType)
		if !kind.Unpaged {
			op.AddParam(spec.QueryParam("page").Typed("integer", "int32").
				WithDescription("1-based page number"))
		}
		for _, name := range kind.Filters {
			op.AddParam(spec.QueryParam(name).Typed("string", ""))
		}
		op.RespondsWith(200, spec.NewResponse().WithDescription("one page of "+kind.PluralName))
	} else {
		op.WithSummary("Get one " + kind.Name).WithProduces(kind.MediaType, defaultMediaType, restdata.JSONMediaType)
		op.RespondsWith(200, spec.NewResponse().WithDescription("the "+kind.Name))
	}
	op.RespondsWith(500, spec.NewResponse().WithDescription("backend failure"))
	return op
}
