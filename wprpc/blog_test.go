// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package wprpc

import (
	"errors"
	"testing"
	"time"

	"github.com/diffeo/go-wprest/wordpress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCaller records the last call and replies with a canned value,
// shaped the way the XML-RPC decoder would produce it.
type fakeCaller struct {
	Method string
	Params []interface{}
	Result interface{}
	Err    error
}

func (f *fakeCaller) Call(method string, params []interface{}, reply interface{}) error {
	f.Method = method
	f.Params = params
	if f.Err != nil {
		return f.Err
	}
	*(reply.(*interface{})) = f.Result
	return nil
}

func newBlog(result interface{}) (*Blog, *fakeCaller) {
	caller := &fakeCaller{Result: result}
	return &Blog{Caller: caller, BlogID: 1, Username: "admin", Password: "secret"}, caller
}

var _ wordpress.Blog = &Blog{}

func TestGetPost(t *testing.T) {
	date := time.Date(2012, 3, 4, 5, 6, 7, 0, time.UTC)
	blog, caller := newBlog(map[string]interface{}{
		"post_id":           "12",
		"post_title":        "Hello",
		"post_date_gmt":     date,
		"post_modified_gmt": "20120305T01:02:03",
		"post_author":       "3",
		"post_parent":       "0",
		"menu_order":        int64(2),
		"sticky":            true,
		"post_thumbnail":    []interface{}{},
		"terms": []interface{}{
			map[string]interface{}{
				"term_id":  "4",
				"name":     "News",
				"taxonomy": "category",
				"parent":   "0",
				"count":    int64(9),
			},
		},
		"custom_fields": []interface{}{
			map[string]interface{}{"id": "1", "key": "mood", "value": "happy"},
		},
	})

	post, err := blog.Post("12")
	require.NoError(t, err)
	assert.Equal(t, "wp.getPost", caller.Method)
	assert.Equal(t, []interface{}{1, "admin", "secret", "12"}, caller.Params)

	assert.Equal(t, "12", post.ID)
	assert.Equal(t, "Hello", post.Title)
	assert.Equal(t, date, post.Date)
	assert.Equal(t, time.Date(2012, 3, 5, 1, 2, 3, 0, time.UTC), post.Modified)
	assert.Equal(t, "3", post.AuthorID)
	assert.Equal(t, 2, post.MenuOrder)
	assert.True(t, post.Sticky)
	if assert.Len(t, post.Terms, 1) {
		assert.Equal(t, "News", post.Terms[0].Name)
		assert.Equal(t, 9, post.Terms[0].Count)
	}
	if assert.Len(t, post.CustomFields, 1) {
		assert.Equal(t, "happy", post.CustomFields[0].Value)
	}
}

func TestGetPostsFilter(t *testing.T) {
	blog, caller := newBlog([]interface{}{
		map[string]interface{}{"post_id": "1"},
		map[string]interface{}{"post_id": "2"},
	})
	posts, err := blog.Posts(wordpress.PostFilter{
		Page:     wordpress.Page{Number: 10, Offset: 20},
		PostType: "page",
	})
	require.NoError(t, err)
	assert.Len(t, posts, 2)
	assert.Equal(t, "wp.getPosts", caller.Method)
	require.Len(t, caller.Params, 4)
	assert.Equal(t, map[string]interface{}{
		"number":    10,
		"offset":    20,
		"post_type": "page",
	}, caller.Params[3])
}

func TestGetTerms(t *testing.T) {
	blog, caller := newBlog([]interface{}{
		map[string]interface{}{"term_id": "5", "taxonomy": "post_tag", "parent": int64(0)},
	})
	terms, err := blog.Terms("post_tag", wordpress.TermFilter{Page: wordpress.Page{Number: 10}})
	require.NoError(t, err)
	assert.Equal(t, "wp.getTerms", caller.Method)
	assert.Equal(t, []interface{}{1, "admin", "secret", "post_tag", map[string]interface{}{"number": 10}}, caller.Params)
	if assert.Len(t, terms, 1) {
		assert.Equal(t, "0", terms[0].ParentID)
	}
}

func TestGetMediaItemFalseMetadata(t *testing.T) {
	blog, _ := newBlog(map[string]interface{}{
		"attachment_id": "30",
		"parent":        int64(12),
		"metadata":      false,
	})
	item, err := blog.MediaItem("30")
	require.NoError(t, err)
	assert.Equal(t, "12", item.ParentID)
	assert.Empty(t, item.Metadata)
}

func TestGetOptions(t *testing.T) {
	blog, caller := newBlog(map[string]interface{}{
		"blog_title": map[string]interface{}{
			"desc":     "Site Title",
			"readonly": false,
			"value":    "My Blog",
		},
		"time_zone": map[string]interface{}{
			"desc":     "Time Zone",
			"readonly": true,
			"value":    "-5",
		},
	})
	options, err := blog.Options("blog_title", "time_zone")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, "admin", "secret", []string{"blog_title", "time_zone"}}, caller.Params)
	assert.Equal(t, wordpress.Option{
		Name:        "blog_title",
		Description: "Site Title",
		Value:       "My Blog",
	}, options["blog_title"])
	assert.True(t, options["time_zone"].ReadOnly)
}

func TestCallError(t *testing.T) {
	blog, caller := newBlog(nil)
	caller.Err = errors.New("403: Incorrect username or password.")
	_, err := blog.User("1")
	var callErr wordpress.ErrCall
	if assert.True(t, errors.As(err, &callErr)) {
		assert.Equal(t, "wp.getUser", callErr.Method)
	}
	assert.Equal(t, caller.Err, errors.Unwrap(err))
}

func TestDecodeError(t *testing.T) {
	blog, _ := newBlog("not a struct")
	_, err := blog.Comment("1")
	assert.Error(t, err)
}
