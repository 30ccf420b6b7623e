// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"strconv"
	"testing"

	"github.com/diffeo/go-wprest/wordpress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ wordpress.Blog = New()

func TestPostsPaging(t *testing.T) {
	b := New()
	for i := 1; i <= 25; i++ {
		b.AddPost(wordpress.Post{ID: strconv.Itoa(i)})
	}
	b.AddPost(wordpress.Post{ID: "100", Type: "page"})

	posts, err := b.Posts(wordpress.PostFilter{Page: wordpress.Page{Number: 10, Offset: 20}})
	require.NoError(t, err)
	if assert.Len(t, posts, 5) {
		assert.Equal(t, "21", posts[0].ID)
		assert.Equal(t, "25", posts[4].ID)
	}

	posts, err = b.Posts(wordpress.PostFilter{Page: wordpress.Page{Number: 10, Offset: 30}})
	require.NoError(t, err)
	assert.Empty(t, posts)

	posts, err = b.Posts(wordpress.PostFilter{PostType: "page"})
	require.NoError(t, err)
	if assert.Len(t, posts, 1) {
		assert.Equal(t, "100", posts[0].ID)
	}
}

func TestNoSuchRecord(t *testing.T) {
	b := New()
	_, err := b.Post("7")
	assert.Equal(t, wordpress.ErrNoSuchRecord{Kind: "post", ID: "7"}, err)

	_, err = b.Term("category", "7")
	assert.Error(t, err)
}

func TestBuiltins(t *testing.T) {
	b := New()
	types, err := b.PostTypes()
	require.NoError(t, err)
	assert.Contains(t, types, "post")
	assert.Contains(t, types, "attachment")

	taxonomy, err := b.Taxonomy("category")
	require.NoError(t, err)
	assert.True(t, taxonomy.Hierarchical)
}

func TestFilters(t *testing.T) {
	b := New()
	b.AddComment(wordpress.Comment{ID: "1", PostID: "5", Status: "approve"})
	b.AddComment(wordpress.Comment{ID: "2", PostID: "6", Status: "approve"})
	b.AddComment(wordpress.Comment{ID: "3", PostID: "5", Status: "hold"})
	comments, err := b.Comments(wordpress.CommentFilter{PostID: "5"})
	require.NoError(t, err)
	assert.Len(t, comments, 2)

	b.AddMediaItem(wordpress.MediaItem{ID: "8", Type: "image/png"})
	b.AddMediaItem(wordpress.MediaItem{ID: "9", Type: "video/mp4"})
	items, err := b.MediaItems(wordpress.MediaFilter{MimeType: "image"})
	require.NoError(t, err)
	if assert.Len(t, items, 1) {
		assert.Equal(t, "8", items[0].ID)
	}

	b.SetOption("blog_title", "Test")
	options, err := b.Options("blog_title", "blog_tagline")
	require.NoError(t, err)
	assert.Equal(t, map[string]wordpress.Option{
		"blog_title": {Name: "blog_title", Value: "Test"},
	}, options)
}
