// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package memory

import (
	"strings"

	"github.com/diffeo/go-wprest/wordpress"
)

// Options returns the named options that have been set.
func (b *Blog) Options(names ...string) (map[string]wordpress.Option, error) {
	b.sem.Lock()
	defer b.sem.Unlock()
	result := make(map[string]wordpress.Option)
	for _, name := range names {
		if option, present := b.options[name]; present {
			result[name] = option
		}
	}
	return result, nil
}

// PostTypes returns every registered post type.
func (b *Blog) PostTypes() (map[string]wordpress.PostType, error) {
	b.sem.Lock()
	defer b.sem.Unlock()
	result := make(map[string]wordpress.PostType, len(b.postTypes))
	for name, postType := range b.postTypes {
		result[name] = postType
	}
	return result, nil
}

// Posts returns one page of posts of the selected type.
func (b *Blog) Posts(filter wordpress.PostFilter) ([]wordpress.Post, error) {
	b.sem.Lock()
	defer b.sem.Unlock()
	postType := filter.PostType
	if postType == "" {
		postType = "post"
	}
	var matched []wordpress.Post
	for _, post := range b.posts {
		if post.Type != postType {
			continue
		}
		if filter.PostStatus != "" && post.Status != filter.PostStatus {
			continue
		}
		matched = append(matched, post)
	}
	start, end := window(filter.Page, len(matched))
	return matched[start:end], nil
}

// Post finds a post by identifier.
func (b *Blog) Post(id string) (wordpress.Post, error) {
	b.sem.Lock()
	defer b.sem.Unlock()
	for _, post := range b.posts {
		if post.ID == id {
			return post, nil
		}
	}
	return wordpress.Post{}, wordpress.ErrNoSuchRecord{Kind: "post", ID: id}
}

// Comments returns one page of comments.
func (b *Blog) Comments(filter wordpress.CommentFilter) ([]wordpress.Comment, error) {
	b.sem.Lock()
	defer b.sem.Unlock()
	var matched []wordpress.Comment
	for _, comment := range b.comments {
		if filter.PostID != "" && comment.PostID != filter.PostID {
			continue
		}
		if filter.Status != "" && comment.Status != filter.Status {
			continue
		}
		matched = append(matched, comment)
	}
	start, end := window(filter.Page, len(matched))
	return matched[start:end], nil
}

// Comment finds a comment by identifier.
func (b *Blog) Comment(id string) (wordpress.Comment, error) {
	b.sem.Lock()
	defer b.sem.Unlock()
	for _, comment := range b.comments {
		if comment.ID == id {
			return comment, nil
		}
	}
	return wordpress.Comment{}, wordpress.ErrNoSuchRecord{Kind: "comment", ID: id}
}

// Users returns one page of users.
func (b *Blog) Users(filter wordpress.UserFilter) ([]wordpress.User, error) {
	b.sem.Lock()
	defer b.sem.Unlock()
	var matched []wordpress.User
	for _, user := range b.users {
		if filter.Role != "" && !hasRole(user, filter.Role) {
			continue
		}
		matched = append(matched, user)
	}
	start, end := window(filter.Page, len(matched))
	return matched[start:end], nil
}

func hasRole(user wordpress.User, role string) bool {
	for _, r := range user.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User finds a user by identifier.
func (b *Blog) User(id string) (wordpress.User, error) {
	b.sem.Lock()
	defer b.sem.Unlock()
	for _, user := range b.users {
		if user.ID == id {
			return user, nil
		}
	}
	return wordpress.User{}, wordpress.ErrNoSuchRecord{Kind: "user", ID: id}
}

// Taxonomies returns every taxonomy.
func (b *Blog) Taxonomies() ([]wordpress.Taxonomy, error) {
	b.sem.Lock()
	defer b.sem.Unlock()
	return append([]wordpress.Taxonomy(nil), b.taxonomies...), nil
}

// Taxonomy finds a taxonomy by name.
func (b *Blog) Taxonomy(name string) (wordpress.Taxonomy, error) {
	b.sem.Lock()
	defer b.sem.Unlock()
	for _, taxonomy := range b.taxonomies {
		if taxonomy.Name == name {
			return taxonomy, nil
		}
	}
	return wordpress.Taxonomy{}, wordpress.ErrNoSuchRecord{Kind: "taxonomy", ID: name}
}

// Terms returns one page of terms in a taxonomy.
func (b *Blog) Terms(taxonomy string, filter wordpress.TermFilter) ([]wordpress.Term, error) {
	b.sem.Lock()
	defer b.sem.Unlock()
	var matched []wordpress.Term
	for _, term := range b.terms {
		if term.Taxonomy != taxonomy {
			continue
		}
		if filter.Search != "" && !strings.Contains(term.Name, filter.Search) {
			continue
		}
		matched = append(matched, term)
	}
	start, end := window(filter.Page, len(matched))
	return matched[start:end], nil
}

// Term finds a term by taxonomy and identifier.
func (b *Blog) Term(taxonomy, id string) (wordpress.Term, error) {
	b.sem.Lock()
	defer b.sem.Unlock()
	for _, term := range b.terms {
		if term.Taxonomy == taxonomy && term.ID == id {
			return term, nil
		}
	}
	return wordpress.Term{}, wordpress.ErrNoSuchRecord{Kind: "term", ID: id}
}

// MediaItems returns one page of the media library.
func (b *Blog) MediaItems(filter wordpress.MediaFilter) ([]wordpress.MediaItem, error) {
	b.sem.Lock()
	defer b.sem.Unlock()
	var matched []wordpress.MediaItem
	for _, item := range b.media {
		if filter.MimeType != "" && !strings.HasPrefix(item.Type, filter.MimeType) {
			continue
		}
		if filter.ParentID != "" && item.ParentID != filter.ParentID {
			continue
		}
		matched = append(matched, item)
	}
	start, end := window(filter.Page, len(matched))
	return matched[start:end], nil
}

// MediaItem finds an attachment by identifier.
func (b *Blog) MediaItem(id string) (wordpress.MediaItem, error) {
	b.sem.Lock()
	defer b.sem.Unlock()
	for _, item := range b.media {
		if item.ID == id {
			return item, nil
		}
	}
	return wordpress.MediaItem{}, wordpress.ErrNoSuchRecord{Kind: "media item", ID: id}
}
