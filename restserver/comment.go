// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-wprest/restdata"
	"github.com/diffeo/go-wprest/wordpress"
)

func (api *restAPI) fillComment(ctx *context, comment wordpress.Comment, repr *restdata.Comment) error {
	*repr = restdata.Comment{
		ID:        comment.ID,
		Content:   comment.Content,
		Status:    comment.Status,
		Type:      comment.Type,
		Link:      comment.Link,
		Date:      api.localTime(comment.Date),
		DateGMT:   gmtTime(comment.Date),
		PostTitle: comment.PostTitle,
		Author: restdata.CommentAuthor{
			Name:  comment.Author,
			URL:   comment.AuthorURL,
			Email: comment.AuthorEmail,
		},
		Meta: restdata.Meta{
			Supports:  CommentKind.Supports,
			MediaType: CommentKind.MediaType,
		},
	}
	links := &repr.Meta.Links
	err := api.urls(ctx, "id", comment.ID).URL(&links.Self, CommentKind.Name).Error
	if err == nil && wordpress.HasID(comment.PostID) {
		err = api.urls(ctx, "id", comment.PostID).URL(&links.Post, PostKind.Name).Error
	}
	if err == nil && wordpress.HasID(comment.ParentID) {
		err = api.urls(ctx, "id", comment.ParentID).URL(&links.Parent, CommentKind.Name).Error
	}
	if err == nil && wordpress.HasID(comment.UserID) {
		err = api.urls(ctx, "id", comment.UserID).URL(&links.Author, UserKind.Name).Error
	}
	return err
}

func (api *restAPI) CommentList(ctx *context) (interface{}, error) {
	var (
		paging   pageRequest
		q        commentQuery
		comments []wordpress.Comment
		err      error
	)
	paging, err = api.pageRequest(ctx, CommentKind)
	if err == nil {
		err = ctx.Decode(&q)
	}
	if err == nil {
		comments, err = api.Blog.Comments(wordpress.CommentFilter{
			Page:   paging.Window(),
			PostID: q.PostID,
			Status: q.Status,
		})
	}
	if err != nil {
		return nil, err
	}

	resp := restdata.CommentList{Items: make([]restdata.Comment, len(comments))}
	for i, comment := range comments {
		if err = api.fillComment(ctx, comment, &resp.Items[i]); err != nil {
			return nil, err
		}
	}
	resp.Meta, err = api.collectionMeta(ctx, CommentKind, paging, len(comments))
	return resp, err
}

func (api *restAPI) CommentGet(ctx *context) (interface{}, error) {
	comment, err := api.Blog.Comment(ctx.Vars["id"])
	if err != nil {
		return nil, err
	}
	resp := restdata.Comment{}
	err = api.fillComment(ctx, comment, &resp)
	return resp, err
}
