// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsJSON(t *testing.T) {
	assert.True(t, IsJSON("application/json"))
	assert.True(t, IsJSON("text/json"))
	assert.True(t, IsJSON(JSONMediaType))
	assert.True(t, IsJSON(MediaType("term", "v1")))
	assert.False(t, IsJSON("text/html"))
	assert.False(t, IsJSON("application/vnd.wordpress.post.v1+xml"))
}

func TestDecode(t *testing.T) {
	var root RootData
	body := `{"name":"Blog","URL":"http://example.com","resources":{"post":{"versions":{"v1":"a","latest":"a"},"supports":["GET"]}}}`
	err := Decode("application/json; charset=utf-8", strings.NewReader(body), &root)
	if assert.NoError(t, err) {
		assert.Equal(t, "Blog", root.Name)
		assert.Equal(t, "http://example.com", root.URL)
		assert.Equal(t, "a", root.Resources["post"].Versions["latest"])
	}

	err = Decode("text/html", strings.NewReader(body), &root)
	assert.Equal(t, ErrUnsupportedMediaType{Type: "text/html"}, err)

	err = Decode("", strings.NewReader(body), &root)
	assert.Equal(t, ErrUnsupportedMediaType{Type: "application/octet-stream"}, err)
}
