// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/url"

	"github.com/diffeo/go-wprest/restdata"
)

// hiddenPostType is never listed in the root document; its records
// are reachable through the media kinds instead.
const hiddenPostType = "attachment"

// Site options shown in the root document.
const (
	optionTitle   = "blog_title"
	optionTagline = "blog_tagline"
	optionHome    = "home_url"
)

func (api *restAPI) rootResource(endpoint string) restdata.RootResource {
	return restdata.RootResource{
		Versions: map[string]string{
			api.Config.Version: endpoint,
			"latest":           endpoint,
		},
		Supports: rootVerbs,
	}
}

func (api *restAPI) RootDocument(ctx *context) (interface{}, error) {
	options, err := api.Blog.Options(optionTitle, optionTagline, optionHome)
	if err != nil {
		return nil, err
	}
	postTypes, err := api.Blog.PostTypes()
	if err != nil {
		return nil, err
	}

	resp := restdata.RootData{
		Name:        options[optionTitle].Value,
		Description: options[optionTagline].Value,
		URL:         options[optionHome].Value,
		Resources:   make(map[string]restdata.RootResource),
	}
	u := api.urls(ctx)
	for name := range postTypes {
		if name == hiddenPostType {
			continue
		}
		query := url.Values{}
		if name != "post" {
			query.Set("post_type", name)
		}
		var endpoint string
		u.Query(&endpoint, PostKind.PluralName, query)
		resp.Resources[name] = api.rootResource(endpoint)
	}
	for _, kind := range discoverableKinds {
		var endpoint string
		u.URL(&endpoint, kind.PluralName)
		resp.Resources[kind.Name] = api.rootResource(endpoint)
	}
	if u.Error != nil {
		return nil, u.Error
	}
	return resp, nil
}
