// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package backend provides a standard way to construct a blog
// interface based on command-line flags.
package backend

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/diffeo/go-wprest/memory"
	"github.com/diffeo/go-wprest/wordpress"
	"github.com/diffeo/go-wprest/wprpc"
)

// Backend describes where blog data comes from.  This implements the
// flag.Value interface, and so a typical use is
//
//     func main() {
//         backend := backend.Backend{"memory", ""}
//         flag.Var(&backend, "backend", "impl:address of the blog")
//         flag.Parse()
//         blog, err := backend.Blog(backend.Credentials{}, nil)
//     }
type Backend struct {
	// Implementation holds the name of the implementation:
	// "memory" or "xmlrpc".
	Implementation string

	// Address holds some backend-specific address, such as the
	// URL of a site's xmlrpc.php.
	Address string
}

// Credentials are passed with every XML-RPC call.
type Credentials struct {
	BlogID   int
	Username string
	Password string

	// Timeout bounds a single call; zero means no limit.
	Timeout time.Duration
}

// Blog creates a new blog interface.  If b.Implementation is
// "memory", each call creates a new, empty blog.  If metrics is
// non-nil, XML-RPC calls are counted and timed in it.
func (b *Backend) Blog(creds Credentials, metrics *wprpc.Metrics) (wordpress.Blog, error) {
	switch b.Implementation {
	case "memory":
		return memory.New(), nil
	case "xmlrpc":
		caller, err := wprpc.NewCaller(b.Address, creds.Timeout)
		if err != nil {
			return nil, err
		}
		if metrics != nil {
			caller = wprpc.Instrument(caller, metrics, clock.New())
		}
		return &wprpc.Blog{
			Caller:   caller,
			BlogID:   creds.BlogID,
			Username: creds.Username,
			Password: creds.Password,
		}, nil
	default:
		return nil, fmt.Errorf("unknown blog backend %q", b.Implementation)
	}
}

// String renders a backend description as a string.
func (b *Backend) String() string {
	if b.Address == "" {
		return b.Implementation
	}
	return b.Implementation + ":" + b.Address
}

// Set parses a string into an existing backend description.  The
// string should be of the form "implementation:address".  The
// "xmlrpc" implementation requires an absolute http or https URL as
// its address.
//
// This is part of the flag.Value interface.  If Set returns a nil
// error then Blog() will not fail on the description itself, though
// it does not try to contact the server.
func (b *Backend) Set(param string) error {
	parts := strings.SplitN(param, ":", 2)
	impl, address := parts[0], ""
	if len(parts) == 2 {
		address = parts[1]
	}
	switch impl {
	case "":
		return errors.New("must specify a backend type")
	case "memory":
	case "xmlrpc":
		u, err := url.Parse(address)
		if err != nil {
			return err
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("xmlrpc backend needs an http(s) URL, not %q", address)
		}
	default:
		return fmt.Errorf("unknown blog backend %q", impl)
	}
	b.Implementation = impl
	b.Address = address
	return nil
}
