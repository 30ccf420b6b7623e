// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restclient

import (
	"net/url"

	"github.com/diffeo/go-wprest/restdata"
)

// Posts returns every post of a discovered post type.
func (c *Client) Posts(postType string) ([]restdata.Post, error) {
	start, err := c.Collection(postType)
	if err != nil {
		return nil, err
	}
	var posts []restdata.Post
	err = c.walk(start, func(u *url.URL) (restdata.PageLinks, error) {
		var page restdata.PostList
		err := c.Do("GET", u, &page)
		posts = append(posts, page.Items...)
		return page.Meta.Links, err
	})
	return posts, err
}

// Post fetches a single post.
func (c *Client) Post(id string) (restdata.Post, error) {
	var post restdata.Post
	err := c.discoveredItem("post", id, &post)
	return post, err
}

// Comments returns every comment reachable from link, which is
// either a comments collection URL such as a post's comments link,
// or empty for all comments.
func (c *Client) Comments(link string) ([]restdata.Comment, error) {
	var (
		start *url.URL
		err   error
	)
	if link == "" {
		start, err = c.Collection("comment")
	} else {
		start, err = c.URL.Parse(link)
	}
	if err != nil {
		return nil, err
	}
	var comments []restdata.Comment
	err = c.walk(start, func(u *url.URL) (restdata.PageLinks, error) {
		var page restdata.CommentList
		err := c.Do("GET", u, &page)
		comments = append(comments, page.Items...)
		return page.Meta.Links, err
	})
	return comments, err
}

// Comment fetches a single comment.
func (c *Client) Comment(id string) (restdata.Comment, error) {
	var comment restdata.Comment
	err := c.discoveredItem("comment", id, &comment)
	return comment, err
}

// Users returns every user.
func (c *Client) Users() ([]restdata.User, error) {
	start, err := c.Collection("user")
	if err != nil {
		return nil, err
	}
	var users []restdata.User
	err = c.walk(start, func(u *url.URL) (restdata.PageLinks, error) {
		var page restdata.UserList
		err := c.Do("GET", u, &page)
		users = append(users, page.Items...)
		return page.Meta.Links, err
	})
	return users, err
}

// User fetches a single user.
func (c *Client) User(id string) (restdata.User, error) {
	var user restdata.User
	err := c.discoveredItem("user", id, &user)
	return user, err
}

// Media returns every item of a media kind: "file", "image",
// "video", or "audio_item".
func (c *Client) Media(kind string) ([]restdata.MediaItem, error) {
	start, err := c.Collection(kind)
	if err != nil {
		return nil, err
	}
	var items []restdata.MediaItem
	err = c.walk(start, func(u *url.URL) (restdata.PageLinks, error) {
		var page restdata.MediaList
		err := c.Do("GET", u, &page)
		items = append(items, page.Items...)
		return page.Meta.Links, err
	})
	return items, err
}

// MediaItem fetches a single item of a media kind.
func (c *Client) MediaItem(kind, id string) (restdata.MediaItem, error) {
	var item restdata.MediaItem
	err := c.discoveredItem(kind, id, &item)
	return item, err
}

// Taxonomies returns every taxonomy.
func (c *Client) Taxonomies() ([]restdata.Taxonomy, error) {
	start, err := c.Collection("taxonomy")
	if err != nil {
		return nil, err
	}
	var taxonomies []restdata.Taxonomy
	err = c.walk(start, func(u *url.URL) (restdata.PageLinks, error) {
		var page restdata.TaxonomyList
		err := c.Do("GET", u, &page)
		taxonomies = append(taxonomies, page.Items...)
		return page.Meta.Links, err
	})
	return taxonomies, err
}

// Taxonomy fetches a single taxonomy by name.
func (c *Client) Taxonomy(name string) (restdata.Taxonomy, error) {
	var taxonomy restdata.Taxonomy
	err := c.discoveredItem("taxonomy", name, &taxonomy)
	return taxonomy, err
}

// Terms returns every term of a taxonomy.
func (c *Client) Terms(taxonomy restdata.Taxonomy) ([]restdata.Term, error) {
	start, err := c.URL.Parse(taxonomy.Meta.Links.Terms)
	if err != nil {
		return nil, err
	}
	var terms []restdata.Term
	err = c.walk(start, func(u *url.URL) (restdata.PageLinks, error) {
		var page restdata.TermList
		err := c.Do("GET", u, &page)
		terms = append(terms, page.Items...)
		return page.Meta.Links, err
	})
	return terms, err
}

// Term fetches a single term of a taxonomy.
func (c *Client) Term(taxonomy restdata.Taxonomy, id string) (restdata.Term, error) {
	var term restdata.Term
	collection, err := c.URL.Parse(taxonomy.Meta.Links.Terms)
	if err == nil {
		err = c.item(collection, id, &term)
	}
	return term, err
}
