// Regression tests for rest.go: content negotiation, verb dispatch,
// and failure handling.
//
// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/diffeo/go-wprest/restdata"
	"github.com/diffeo/go-wprest/wordpress"
	"github.com/stretchr/testify/assert"
)

type failResponseWriter struct {
	Headers    http.Header
	StatusCode int
}

func (rw *failResponseWriter) Header() http.Header {
	if rw.Headers == nil {
		rw.Headers = make(http.Header)
	}
	return rw.Headers
}

func (rw *failResponseWriter) Write([]byte) (int, error) {
	return 0, errors.New("foo")
}

func (rw *failResponseWriter) WriteHeader(code int) {
	rw.StatusCode = code
}

// TestDoubleFault checks that, if there is an error serializing a JSON
// response, it doesn't actually panic the process.
func TestDoubleFault(t *testing.T) {
	blog := newBlog()
	blog.AddPost(wordpress.Post{ID: "1", Title: "Hello"})

	router := NewRouter(blog, DefaultConfig())
	req := &http.Request{
		Method: http.MethodGet,
		URL: &url.URL{
			Path: "/wporg/v1/posts/1/",
		},
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     http.Header{},
		Close:      true,
		Host:       "localhost",
	}
	resp := &failResponseWriter{}
	assert.NotPanics(t, func() { router.ServeHTTP(resp, req) })
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPanicRecovery(t *testing.T) {
	h := &resourceHandler{
		Context: (&restAPI{}).Context,
		Get: func(*context) (interface{}, error) {
			panic("boom")
		},
	}
	rec := get(t, h, "/")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var errResp restdata.ErrorResponse
	decode(t, rec, &errResp)
	assert.Equal(t, "panic", errResp.Error)
	assert.Equal(t, "boom", errResp.Message)
	assert.NotEmpty(t, errResp.Stack)
}

func TestNegotiation(t *testing.T) {
	blog := newBlog()
	blog.AddPost(wordpress.Post{ID: "1"})
	router := NewRouter(blog, DefaultConfig())

	for _, test := range []struct {
		Path        string
		Accept      string
		Status      int
		ContentType string
	}{
		{"/wporg/v1/posts/1/", "", http.StatusOK, PostKind.MediaType},
		{"/wporg/v1/posts/1/", "*/*", http.StatusOK, PostKind.MediaType},
		{"/wporg/v1/posts/1/", "application/*", http.StatusOK, PostKind.MediaType},
		{"/wporg/v1/posts/1/", "text/*", http.StatusOK, "text/json"},
		{"/wporg/v1/posts/1/", "application/json", http.StatusOK, "application/json"},
		{"/wporg/v1/posts/1/", PostKind.MediaType, http.StatusOK, PostKind.MediaType},
		{"/wporg/v1/posts/1/", "text/html, application/json;q=0.5", http.StatusOK, "application/json"},
		{"/wporg/v1/posts/1/", "*/*;q=0.1, " + restdata.JSONMediaType, http.StatusOK, restdata.JSONMediaType},
		{"/wporg/v1/posts/1/", CommentKind.MediaType, http.StatusNotAcceptable, "application/json"},
		{"/wporg/v1/posts/1/", "image/png", http.StatusNotAcceptable, "application/json"},
		{"/wporg/v1/posts/1/", "application/json;q=2", http.StatusBadRequest, "application/json"},
		{"/wporg/v1/posts/", "", http.StatusOK, "application/json"},
		{"/wporg/v1/posts/", PostKind.MediaType, http.StatusNotAcceptable, "application/json"},
	} {
		rec := get(t, router, test.Path, "Accept", test.Accept)
		assert.Equal(t, test.Status, rec.Code, "%v %v", test.Path, test.Accept)
		assert.Equal(t, test.ContentType, rec.Header().Get("Content-Type"), "%v %v", test.Path, test.Accept)
	}
}

func TestVerbs(t *testing.T) {
	blog := newBlog()
	blog.AddPost(wordpress.Post{ID: "1"})
	router := NewRouter(blog, DefaultConfig())

	for _, test := range []struct {
		Method string
		Path   string
		Status int
	}{
		{http.MethodPut, "/wporg/v1/posts/1/", http.StatusNotImplemented},
		{http.MethodDelete, "/wporg/v1/posts/1/", http.StatusNotImplemented},
		{http.MethodPost, "/wporg/v1/posts/1/", http.StatusMethodNotAllowed},
		{http.MethodPatch, "/wporg/v1/posts/1/", http.StatusMethodNotAllowed},
		{http.MethodPost, "/wporg/v1/posts/", http.StatusNotImplemented},
		{http.MethodDelete, "/wporg/v1/posts/", http.StatusMethodNotAllowed},
		{http.MethodPost, "/", http.StatusNotImplemented},
		{http.MethodPut, "/", http.StatusMethodNotAllowed},
		{http.MethodPost, "/wporg/v1/swagger.json", http.StatusMethodNotAllowed},
	} {
		rec := do(t, router, test.Method, test.Path)
		assert.Equal(t, test.Status, rec.Code, "%v %v", test.Method, test.Path)
	}

	rec := do(t, router, http.MethodPatch, "/wporg/v1/posts/1/")
	assert.Equal(t, "GET, HEAD", rec.Header().Get("Allow"))
}

func TestHead(t *testing.T) {
	blog := newBlog()
	blog.AddPost(wordpress.Post{ID: "1"})
	router := NewRouter(blog, DefaultConfig())

	rec := do(t, router, http.MethodHead, "/wporg/v1/posts/1/")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.Bytes())
}
