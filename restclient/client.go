// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restclient provides an HTTP client for the REST service in
// the restserver package.
//
// The client only knows the service's base URL.  Every other URL
// comes from the root document or from links in representations;
// collections are read by following their "next" links.
//
//     c, err := restclient.New("http://localhost:5980/")
//     posts, err := c.Posts("post")
package restclient

import (
	"fmt"
	"net/url"

	"github.com/diffeo/go-wprest/restdata"
)

// itemTemplate turns a collection URL into one of its items.
const itemTemplate = "{+collection}{id}/"

// Client reads a blog through the REST service.
type Client struct {
	resource
	Root restdata.RootData
}

// New creates a client for the service at baseURL and fetches its
// root document.
func New(baseURL string) (*Client, error) {
	var (
		err error
		u   *url.URL
		c   *Client
	)
	u, err = url.Parse(baseURL)
	if err == nil && !u.IsAbs() {
		err = fmt.Errorf("base URL %q is not absolute", baseURL)
	}
	if err == nil {
		c = &Client{resource: resource{URL: u}}
		err = c.Refresh()
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Refresh re-reads the root document.
func (c *Client) Refresh() error {
	c.Root = restdata.RootData{}
	return c.Get(&c.Root)
}

// Collection returns the latest endpoint of a discovered resource,
// such as "post", "page", or "comment".
func (c *Client) Collection(name string) (*url.URL, error) {
	resource, present := c.Root.Resources[name]
	if !present {
		return nil, fmt.Errorf("no resource %q in root document", name)
	}
	return c.URL.Parse(resource.Versions["latest"])
}

// Follow fetches a link found in some representation into out.
func (c *Client) Follow(link string, out interface{}) error {
	u, err := c.URL.Parse(link)
	if err == nil {
		err = c.Do("GET", u, out)
	}
	return err
}

// walk fetches pages starting at start until one has no next link.
// fetch decodes one page and returns its links.
func (c *Client) walk(start *url.URL, fetch func(*url.URL) (restdata.PageLinks, error)) error {
	for u := start; u != nil; {
		links, err := fetch(u)
		if err != nil {
			return err
		}
		if links.Next == "" {
			return nil
		}
		if u, err = u.Parse(links.Next); err != nil {
			return err
		}
	}
	return nil
}

// item fetches id from the collection whose URL is collection.  Any
// query string on the collection URL is dropped.
func (c *Client) item(collection *url.URL, id string, out interface{}) error {
	base := *collection
	base.RawQuery = ""
	return c.GetFrom(itemTemplate, map[string]interface{}{
		"collection": base.String(),
		"id":         id,
	}, out)
}

// discoveredItem fetches id from the collection of a discovered
// resource.
func (c *Client) discoveredItem(name, id string, out interface{}) error {
	collection, err := c.Collection(name)
	if err == nil {
		err = c.item(collection, id, out)
	}
	return err
}
