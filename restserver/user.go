// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-wprest/restdata"
	"github.com/diffeo/go-wprest/wordpress"
)

func (api *restAPI) fillUser(ctx *context, user wordpress.User, repr *restdata.User) error {
	*repr = restdata.User{
		ID:            user.ID,
		Username:      user.Username,
		Name:          user.DisplayName,
		FirstName:     user.FirstName,
		LastName:      user.LastName,
		Nickname:      user.Nickname,
		Slug:          user.Nicename,
		URL:           user.URL,
		Description:   user.Bio,
		Registered:    api.localTime(user.Registered),
		RegisteredGMT: gmtTime(user.Registered),
		Roles:         user.Roles,
		Meta: restdata.Meta{
			Supports:  UserKind.Supports,
			MediaType: UserKind.MediaType,
		},
	}
	if repr.Roles == nil {
		repr.Roles = []string{}
	}
	return api.urls(ctx, "id", user.ID).URL(&repr.Meta.Links.Self, UserKind.Name).Error
}

func (api *restAPI) UserList(ctx *context) (interface{}, error) {
	var (
		paging pageRequest
		q      userQuery
		users  []wordpress.User
		err    error
	)
	paging, err = api.pageRequest(ctx, UserKind)
	if err == nil {
		err = ctx.Decode(&q)
	}
	if err == nil {
		users, err = api.Blog.Users(wordpress.UserFilter{
			Page: paging.Window(),
			Role: q.Role,
		})
	}
	if err != nil {
		return nil, err
	}

	resp := restdata.UserList{Items: make([]restdata.User, len(users))}
	for i, user := range users {
		if err = api.fillUser(ctx, user, &resp.Items[i]); err != nil {
			return nil, err
		}
	}
	resp.Meta, err = api.collectionMeta(ctx, UserKind, paging, len(users))
	return resp, err
}

func (api *restAPI) UserGet(ctx *context) (interface{}, error) {
	user, err := api.Blog.User(ctx.Vars["id"])
	if err != nil {
		return nil, err
	}
	resp := restdata.User{}
	err = api.fillUser(ctx, user, &resp)
	return resp, err
}
