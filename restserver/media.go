// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-wprest/restdata"
	"github.com/diffeo/go-wprest/wordpress"
)

// The media kinds share one backend collection, the media library,
// and differ only in the MIME type prefix they select.  An item's
// links point back into the kind it was fetched through.

func (api *restAPI) fillMediaItem(ctx *context, kind *ResourceKind, item wordpress.MediaItem, repr *restdata.MediaItem) error {
	*repr = restdata.MediaItem{
		ID:          item.ID,
		Title:       item.Title,
		Caption:     item.Caption,
		Description: item.Description,
		Link:        item.Link,
		Type:        item.Type,
		Thumbnail:   item.Thumbnail,
		Date:        api.localTime(item.Date),
		DateGMT:     gmtTime(item.Date),
		Metadata:    item.Metadata,
		Meta: restdata.Meta{
			Supports:  kind.Supports,
			MediaType: kind.MediaType,
		},
	}
	err := api.urls(ctx, "id", item.ID).URL(&repr.Meta.Links.Self, kind.Name).Error
	if err == nil && wordpress.HasID(item.ParentID) {
		err = api.urls(ctx, "id", item.ParentID).URL(&repr.Meta.Links.Post, PostKind.Name).Error
	}
	return err
}

func (api *restAPI) mediaList(kind *ResourceKind) handlerFunc {
	return func(ctx *context) (interface{}, error) {
		var (
			paging pageRequest
			q      mediaQuery
			items  []wordpress.MediaItem
			err    error
		)
		paging, err = api.pageRequest(ctx, kind)
		if err == nil {
			err = ctx.Decode(&q)
		}
		if err == nil {
			items, err = api.Blog.MediaItems(wordpress.MediaFilter{
				Page:     paging.Window(),
				MimeType: mimePrefixes[kind],
				ParentID: q.ParentID,
			})
		}
		if err != nil {
			return nil, err
		}

		resp := restdata.MediaList{Items: make([]restdata.MediaItem, len(items))}
		for i, item := range items {
			if err = api.fillMediaItem(ctx, kind, item, &resp.Items[i]); err != nil {
				return nil, err
			}
		}
		resp.Meta, err = api.collectionMeta(ctx, kind, paging, len(items))
		return resp, err
	}
}

func (api *restAPI) mediaGet(kind *ResourceKind) handlerFunc {
	return func(ctx *context) (interface{}, error) {
		item, err := api.Blog.MediaItem(ctx.Vars["id"])
		if err != nil {
			return nil, err
		}
		resp := restdata.MediaItem{}
		err = api.fillMediaItem(ctx, kind, item, &resp)
		return resp, err
	}
}
