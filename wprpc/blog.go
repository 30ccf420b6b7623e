// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package wprpc implements wordpress.Blog on top of the WordPress
// XML-RPC API (the "wp.*" methods served by xmlrpc.php).
//
// Responses are decoded into the typed records of the wordpress
// package here, at the boundary, so that nothing downstream has to
// inspect generic XML-RPC values.
package wprpc

import (
	"github.com/diffeo/go-wprest/wordpress"
)

// Blog is a wordpress.Blog that issues one XML-RPC call per method.
// Every wp.* method takes the blog id, user name, and password as
// its first three parameters; Blog supplies these.
type Blog struct {
	Caller   wordpress.Caller
	BlogID   int
	Username string
	Password string
}

// call invokes method with the credential prefix and params, and
// decodes the result into reply.
func (b *Blog) call(method string, reply interface{}, params ...interface{}) error {
	args := append([]interface{}{b.BlogID, b.Username, b.Password}, params...)
	var raw interface{}
	err := b.Caller.Call(method, args, &raw)
	if err == nil {
		err = decode(raw, reply)
	}
	if err != nil {
		return wordpress.ErrCall{Method: method, Err: err}
	}
	return nil
}

// pageParams adds the number and offset filter members to params.
func pageParams(page wordpress.Page, params map[string]interface{}) map[string]interface{} {
	if page.Number > 0 {
		params["number"] = page.Number
	}
	if page.Offset > 0 {
		params["offset"] = page.Offset
	}
	return params
}

func (b *Blog) Options(names ...string) (map[string]wordpress.Option, error) {
	var options map[string]wordpress.Option
	if err := b.call("wp.getOptions", &options, names); err != nil {
		return nil, err
	}
	for name, option := range options {
		option.Name = name
		options[name] = option
	}
	return options, nil
}

func (b *Blog) PostTypes() (map[string]wordpress.PostType, error) {
	var postTypes map[string]wordpress.PostType
	err := b.call("wp.getPostTypes", &postTypes)
	return postTypes, err
}

func (b *Blog) Posts(filter wordpress.PostFilter) ([]wordpress.Post, error) {
	params := map[string]interface{}{}
	if filter.PostType != "" {
		params["post_type"] = filter.PostType
	}
	if filter.PostStatus != "" {
		params["post_status"] = filter.PostStatus
	}
	var posts []wordpress.Post
	err := b.call("wp.getPosts", &posts, pageParams(filter.Page, params))
	return posts, err
}

func (b *Blog) Post(id string) (wordpress.Post, error) {
	var post wordpress.Post
	err := b.call("wp.getPost", &post, id)
	return post, err
}

func (b *Blog) Comments(filter wordpress.CommentFilter) ([]wordpress.Comment, error) {
	params := map[string]interface{}{}
	if filter.PostID != "" {
		params["post_id"] = filter.PostID
	}
	if filter.Status != "" {
		params["status"] = filter.Status
	}
	var comments []wordpress.Comment
	err := b.call("wp.getComments", &comments, pageParams(filter.Page, params))
	return comments, err
}

func (b *Blog) Comment(id string) (wordpress.Comment, error) {
	var comment wordpress.Comment
	err := b.call("wp.getComment", &comment, id)
	return comment, err
}

func (b *Blog) Users(filter wordpress.UserFilter) ([]wordpress.User, error) {
	params := map[string]interface{}{}
	if filter.Role != "" {
		params["role"] = filter.Role
	}
	var users []wordpress.User
	err := b.call("wp.getUsers", &users, pageParams(filter.Page, params))
	return users, err
}

func (b *Blog) User(id string) (wordpress.User, error) {
	var user wordpress.User
	err := b.call("wp.getUser", &user, id)
	return user, err
}

func (b *Blog) Taxonomies() ([]wordpress.Taxonomy, error) {
	var taxonomies []wordpress.Taxonomy
	err := b.call("wp.getTaxonomies", &taxonomies)
	return taxonomies, err
}

func (b *Blog) Taxonomy(name string) (wordpress.Taxonomy, error) {
	var taxonomy wordpress.Taxonomy
	err := b.call("wp.getTaxonomy", &taxonomy, name)
	return taxonomy, err
}

func (b *Blog) Terms(taxonomy string, filter wordpress.TermFilter) ([]wordpress.Term, error) {
	params := map[string]interface{}{}
	if filter.Search != "" {
		params["search"] = filter.Search
	}
	var terms []wordpress.Term
	err := b.call("wp.getTerms", &terms, taxonomy, pageParams(filter.Page, params))
	return terms, err
}

func (b *Blog) Term(taxonomy, id string) (wordpress.Term, error) {
	var term wordpress.Term
	err := b.call("wp.getTerm", &term, taxonomy, id)
	return term, err
}

func (b *Blog) MediaItems(filter wordpress.MediaFilter) ([]wordpress.MediaItem, error) {
	params := map[string]interface{}{}
	if filter.MimeType != "" {
		params["mime_type"] = filter.MimeType
	}
	if filter.ParentID != "" {
		params["parent_id"] = filter.ParentID
	}
	var items []wordpress.MediaItem
	err := b.call("wp.getMediaLibrary", &items, pageParams(filter.Page, params))
	return items, err
}

func (b *Blog) MediaItem(id string) (wordpress.MediaItem, error) {
	var item wordpress.MediaItem
	err := b.call("wp.getMediaItem", &item, id)
	return item, err
}
