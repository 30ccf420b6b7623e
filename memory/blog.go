// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package memory provides an in-process, in-memory implementation of
// wordpress.Blog.  There is no persistence, and the entire blog is
// behind a single lock.
//
// This is mostly intended as a reference implementation that can be
// used for testing higher-level components without a WordPress
// install.  A new blog looks like a fresh WordPress site: it has the
// built-in post types and taxonomies, and nothing else.
package memory

import (
	"strings"
	"sync"

	"github.com/diffeo/go-wprest/wordpress"
)

// Blog is an in-memory WordPress site.  Lists are returned in the
// order records were added.
type Blog struct {
	sem        sync.Mutex
	options    map[string]wordpress.Option
	postTypes  map[string]wordpress.PostType
	posts      []wordpress.Post
	comments   []wordpress.Comment
	users      []wordpress.User
	taxonomies []wordpress.Taxonomy
	terms      []wordpress.Term
	media      []wordpress.MediaItem
}

// New creates a new empty blog.
func New() *Blog {
	b := &Blog{
		options:   make(map[string]wordpress.Option),
		postTypes: make(map[string]wordpress.PostType),
	}
	for _, name := range []string{"post", "page", "attachment"} {
		b.postTypes[name] = wordpress.PostType{
			Name:    name,
			Label:   strings.Title(name) + "s",
			Public:  true,
			ShowUI:  true,
			Builtin: true,
		}
	}
	b.taxonomies = []wordpress.Taxonomy{
		{
			Name:         "category",
			Label:        "Categories",
			Hierarchical: true,
			Public:       true,
			ShowUI:       true,
			Builtin:      true,
			ObjectTypes:  []string{"post"},
		},
		{
			Name:        "post_tag",
			Label:       "Tags",
			Public:      true,
			ShowUI:      true,
			Builtin:     true,
			ObjectTypes: []string{"post"},
		},
	}
	return b
}

// SetOption sets a site option.
func (b *Blog) SetOption(name, value string) {
	b.sem.Lock()
	defer b.sem.Unlock()
	b.options[name] = wordpress.Option{Name: name, Value: value}
}

// AddPostType registers a post type, replacing any existing one with
// the same name.
func (b *Blog) AddPostType(postType wordpress.PostType) {
	b.sem.Lock()
	defer b.sem.Unlock()
	b.postTypes[postType.Name] = postType
}

// AddPost adds a post.  An empty Type is stored as "post".
func (b *Blog) AddPost(post wordpress.Post) {
	b.sem.Lock()
	defer b.sem.Unlock()
	if post.Type == "" {
		post.Type = "post"
	}
	b.posts = append(b.posts, post)
}

// AddComment adds a comment.
func (b *Blog) AddComment(comment wordpress.Comment) {
	b.sem.Lock()
	defer b.sem.Unlock()
	b.comments = append(b.comments, comment)
}

// AddUser adds a user.
func (b *Blog) AddUser(user wordpress.User) {
	b.sem.Lock()
	defer b.sem.Unlock()
	b.users = append(b.users, user)
}

// AddTaxonomy adds a taxonomy.
func (b *Blog) AddTaxonomy(taxonomy wordpress.Taxonomy) {
	b.sem.Lock()
	defer b.sem.Unlock()
	b.taxonomies = append(b.taxonomies, taxonomy)
}

// AddTerm adds a term.  Its Taxonomy field names the taxonomy it
// belongs to.
func (b *Blog) AddTerm(term wordpress.Term) {
	b.sem.Lock()
	defer b.sem.Unlock()
	b.terms = append(b.terms, term)
}

// AddMediaItem adds an attachment to the media library.
func (b *Blog) AddMediaItem(item wordpress.MediaItem) {
	b.sem.Lock()
	defer b.sem.Unlock()
	b.media = append(b.media, item)
}

// window returns the start and end indexes of page within a list of
// length n.
func window(page wordpress.Page, n int) (int, int) {
	start := page.Offset
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := n
	if page.Number > 0 && start+page.Number < n {
		end = start + page.Number
	}
	return start, end
}
