// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package backend

import (
	"flag"
	"testing"

	"github.com/diffeo/go-wprest/memory"
	"github.com/diffeo/go-wprest/wprpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ flag.Value = &Backend{}

func TestSet(t *testing.T) {
	for _, test := range []struct {
		Param string
		Impl  string
		Addr  string
		OK    bool
	}{
		{"memory", "memory", "", true},
		{"xmlrpc:https://example.com/xmlrpc.php", "xmlrpc", "https://example.com/xmlrpc.php", true},
		{"xmlrpc:http://localhost:8080/xmlrpc.php", "xmlrpc", "http://localhost:8080/xmlrpc.php", true},
		{"xmlrpc", "", "", false},
		{"xmlrpc:ftp://example.com/", "", "", false},
		{"postgres:dbname=blog", "", "", false},
		{"", "", "", false},
	} {
		var b Backend
		err := b.Set(test.Param)
		if test.OK {
			if assert.NoError(t, err, test.Param) {
				assert.Equal(t, test.Impl, b.Implementation)
				assert.Equal(t, test.Addr, b.Address)
				assert.Equal(t, test.Param, b.String())
			}
		} else {
			assert.Error(t, err, test.Param)
		}
	}
}

func TestMemoryBlog(t *testing.T) {
	b := Backend{Implementation: "memory"}
	blog, err := b.Blog(Credentials{}, nil)
	require.NoError(t, err)
	assert.IsType(t, &memory.Blog{}, blog)
}

func TestXMLRPCBlog(t *testing.T) {
	var b Backend
	require.NoError(t, b.Set("xmlrpc:https://example.com/xmlrpc.php"))
	blog, err := b.Blog(Credentials{BlogID: 1, Username: "admin", Password: "secret"}, wprpc.NewMetrics())
	require.NoError(t, err)
	if assert.IsType(t, &wprpc.Blog{}, blog) {
		rpc := blog.(*wprpc.Blog)
		assert.Equal(t, 1, rpc.BlogID)
		assert.Equal(t, "admin", rpc.Username)
		assert.NotNil(t, rpc.Caller)
	}
}

func TestUnknownBlog(t *testing.T) {
	b := Backend{Implementation: "sqlite"}
	_, err := b.Blog(Credentials{}, nil)
	assert.Error(t, err)
}
