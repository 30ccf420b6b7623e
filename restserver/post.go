// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"net/url"

	"github.com/diffeo/go-wprest/restdata"
	"github.com/diffeo/go-wprest/wordpress"
)

// defaultPostType is listed when a post collection request names no
// post type.
const defaultPostType = "post"

func (api *restAPI) fillPost(ctx *context, post wordpress.Post, repr *restdata.Post) error {
	*repr = restdata.Post{
		ID:            post.ID,
		Title:         post.Title,
		Status:        post.Status,
		Type:          post.Type,
		Link:          post.Link,
		Date:          api.localTime(post.Date),
		DateGMT:       gmtTime(post.Date),
		Modified:      api.localTime(post.Modified),
		ModifiedGMT:   gmtTime(post.Modified),
		Format:        post.Format,
		Slug:          post.Slug,
		GUID:          post.GUID,
		Excerpt:       restdata.Text{Raw: post.Excerpt},
		Content:       restdata.Text{Raw: post.Content},
		CommentStatus: post.CommentStatus,
		PingStatus:    post.PingStatus,
		Sticky:        post.Sticky,
		Terms:         make([]restdata.Term, len(post.Terms)),
		Metadata:      make([]restdata.CustomField, len(post.CustomFields)),
		Meta: restdata.Meta{
			Supports:  PostKind.Supports,
			MediaType: PostKind.MediaType,
		},
	}
	for i, field := range post.CustomFields {
		repr.Metadata[i] = restdata.CustomField{ID: field.ID, Key: field.Key, Value: field.Value}
	}
	for i, term := range post.Terms {
		if err := api.fillTerm(ctx, term, &repr.Terms[i]); err != nil {
			return err
		}
	}

	if wordpress.HasID(post.AuthorID) {
		author, err := api.Blog.User(post.AuthorID)
		if err != nil {
			return err
		}
		repr.Author = &restdata.User{}
		if err := api.fillUser(ctx, author, repr.Author); err != nil {
			return err
		}
		repr.Meta.Links.Author = repr.Author.Meta.Links.Self
	}

	return api.urls(ctx, "id", post.ID).
		URL(&repr.Meta.Links.Self, PostKind.Name).
		Query(&repr.Meta.Links.Comments, CommentKind.PluralName, url.Values{"post_id": {post.ID}}).
		Error
}

func (api *restAPI) PostList(ctx *context) (interface{}, error) {
	var (
		paging pageRequest
		q      postQuery
		posts  []wordpress.Post
		err    error
	)
	paging, err = api.pageRequest(ctx, PostKind)
	if err == nil {
		err = ctx.Decode(&q)
	}
	if err == nil {
		if q.PostType == "" {
			q.PostType = defaultPostType
		}
		posts, err = api.Blog.Posts(wordpress.PostFilter{
			Page:     paging.Window(),
			PostType: q.PostType,
		})
	}
	if err != nil {
		return nil, err
	}

	resp := restdata.PostList{Items: make([]restdata.Post, len(posts))}
	for i, post := range posts {
		if err = api.fillPost(ctx, post, &resp.Items[i]); err != nil {
			return nil, err
		}
	}
	resp.Meta, err = api.collectionMeta(ctx, PostKind, paging, len(posts))
	return resp, err
}

func (api *restAPI) PostGet(ctx *context) (interface{}, error) {
	post, err := api.Blog.Post(ctx.Vars["id"])
	if err != nil {
		return nil, err
	}
	resp := restdata.Post{}
	err = api.fillPost(ctx, post, &resp)
	return resp, err
}
