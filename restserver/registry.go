// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"fmt"
)

// registeredRoute records one installed route.  The list of these is
// the source of the swagger document.
type registeredRoute struct {
	Name       string
	Kind       *ResourceKind
	Collection bool
	Path       string
	Params     []string
}

// handlerFunc produces the representation for one request.
type handlerFunc func(*context) (interface{}, error)

// collectionPath returns the URL pattern of a top-level collection.
func (api *restAPI) collectionPath(kind *ResourceKind) string {
	return api.prefix() + "/" + kind.PluralName + "/"
}

// nestedCollectionPath returns the URL pattern of a collection nested
// under a single parent resource.
func (api *restAPI) nestedCollectionPath(parent, kind *ResourceKind) string {
	return api.prefix() + "/" + parent.PluralName + "/{parent_id}/" + kind.PluralName + "/"
}

// registerCollection installs the collection and item routes of a
// top-level kind.
func (api *restAPI) registerCollection(kind *ResourceKind, list, get handlerFunc) {
	if kind.Parent != nil {
		panic(fmt.Errorf("resource kind %q is nested under %q", kind.Name, kind.Parent.Name))
	}
	api.register(kind, api.collectionPath(kind), nil, list, get)
}

// registerNestedCollection installs the collection and item routes of
// a kind nested under parent.
func (api *restAPI) registerNestedCollection(parent, kind *ResourceKind, list, get handlerFunc) {
	if kind.Parent != parent {
		panic(fmt.Errorf("resource kind %q is not nested under %q", kind.Name, parent.Name))
	}
	api.register(kind, api.nestedCollectionPath(parent, kind), []string{"parent_id"}, list, get)
}

func (api *restAPI) register(kind *ResourceKind, pattern string, params []string, list, get handlerFunc) {
	for _, name := range []string{kind.PluralName, kind.Name} {
		if api.Router.Get(name) != nil {
			panic(fmt.Errorf("duplicate route name %q", name))
		}
	}
	api.Router.Path(pattern).Name(kind.PluralName).Handler(&resourceHandler{
		Supports: kind.CollectionSupports,
		Context:  api.Context,
		Get:      list,
	})
	api.Router.Path(pattern + "{id}/").Name(kind.Name).Handler(&resourceHandler{
		Supports:  kind.Supports,
		MediaType: kind.MediaType,
		Context:   api.Context,
		Get:       get,
	})
	api.routes = append(api.routes,
		registeredRoute{
			Name:       kind.PluralName,
			Kind:       kind,
			Collection: true,
			Path:       pattern,
			Params:     params,
		},
		registeredRoute{
			Name:   kind.Name,
			Kind:   kind,
			Path:   pattern + "{id}/",
			Params: append(append([]string(nil), params...), "id"),
		},
	)
}
