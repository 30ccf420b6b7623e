// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package wprpc

import (
	"net/http"
	"time"

	"github.com/diffeo/go-wprest/wordpress"
	"github.com/kolo/xmlrpc"
)

// caller sends XML-RPC requests over HTTP.
type caller struct {
	client *xmlrpc.Client
}

// NewCaller creates a wordpress.Caller that posts XML-RPC requests to
// endpoint, typically a site's xmlrpc.php.  timeout bounds how long
// to wait for the response headers of a single call; zero means no
// limit.
func NewCaller(endpoint string, timeout time.Duration) (wordpress.Caller, error) {
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		ResponseHeaderTimeout: timeout,
	}
	client, err := xmlrpc.NewClient(endpoint, transport)
	if err != nil {
		return nil, err
	}
	return &caller{client: client}, nil
}

func (c *caller) Call(method string, params []interface{}, reply interface{}) error {
	return c.client.Call(method, params, reply)
}
