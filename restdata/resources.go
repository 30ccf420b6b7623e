// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

// Text holds a block of content.  Only the raw (unfiltered) form is
// available through the backend.
type Text struct {
	Raw string `json:"raw"`
}

// CustomField is one entry in a post's metadata.
type CustomField struct {
	ID    string      `json:"id"`
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// Post is the representation of a post of any type.
type Post struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Status        string        `json:"status"`
	Type          string        `json:"type"`
	Link          string        `json:"link"`
	Date          string        `json:"date"`
	Modified      string        `json:"modified"`
	Format        string        `json:"format"`
	Slug          string        `json:"slug"`
	GUID          string        `json:"guid"`
	Excerpt       Text          `json:"excerpt"`
	Content       Text          `json:"content"`
	CommentStatus string        `json:"comment_status"`
	PingStatus    string        `json:"ping_status"`
	Sticky        bool          `json:"sticky"`
	DateGMT       string        `json:"date_gmt"`
	ModifiedGMT   string        `json:"modified_gmt"`
	Author        *User         `json:"author,omitempty"`
	Terms         []Term        `json:"terms"`
	Metadata      []CustomField `json:"metadata"`
	Meta          Meta          `json:"_meta"`
}

// PostList is one page of posts.
type PostList struct {
	Items []Post         `json:"items"`
	Meta  CollectionMeta `json:"_meta"`
}

// CommentAuthor identifies whoever wrote a comment, registered or
// not.
type CommentAuthor struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Email string `json:"email"`
}

// Comment is the representation of a comment.
type Comment struct {
	ID        string        `json:"id"`
	Content   string        `json:"content"`
	Status    string        `json:"status"`
	Type      string        `json:"type"`
	Link      string        `json:"link"`
	Date      string        `json:"date"`
	DateGMT   string        `json:"date_gmt"`
	PostTitle string        `json:"post_title"`
	Author    CommentAuthor `json:"author"`
	Meta      Meta          `json:"_meta"`
}

// CommentList is one page of comments.
type CommentList struct {
	Items []Comment      `json:"items"`
	Meta  CollectionMeta `json:"_meta"`
}

// User is the representation of a registered user.
type User struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	Name          string   `json:"name"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Nickname      string   `json:"nickname"`
	Slug          string   `json:"slug"`
	URL           string   `json:"URL"`
	Description   string   `json:"description"`
	Registered    string   `json:"registered"`
	RegisteredGMT string   `json:"registered_gmt"`
	Roles         []string `json:"roles"`
	Meta          Meta     `json:"_meta"`
}

// UserList is one page of users.
type UserList struct {
	Items []User         `json:"items"`
	Meta  CollectionMeta `json:"_meta"`
}

// Taxonomy is the representation of a taxonomy.  Its id is its name.
type Taxonomy struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Label        string            `json:"label"`
	Labels       map[string]string `json:"labels"`
	Hierarchical bool              `json:"hierarchical"`
	Public       bool              `json:"public"`
	ShowUI       bool              `json:"show_ui"`
	Builtin      bool              `json:"builtin"`
	ObjectTypes  []string          `json:"object_types"`
	Meta         Meta              `json:"_meta"`
}

// TaxonomyList holds every taxonomy.
type TaxonomyList struct {
	Items []Taxonomy     `json:"items"`
	Meta  CollectionMeta `json:"_meta"`
}

// TaxonomySummary is the reduced form of a taxonomy embedded in a
// term.
type TaxonomySummary struct {
	Name string `json:"name"`
	Self string `json:"self"`
}

// TermParent points at a term's parent term.
type TermParent struct {
	ID   string `json:"id"`
	Self string `json:"self"`
}

// Term is the representation of a term.  Parent is absent for a
// top-level term.
type Term struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	Count       int             `json:"count"`
	Taxonomy    TaxonomySummary `json:"taxonomy"`
	Parent      *TermParent     `json:"parent,omitempty"`
	Meta        Meta            `json:"_meta"`
}

// TermList is one page of terms in a taxonomy.
type TermList struct {
	Items []Term         `json:"items"`
	Meta  CollectionMeta `json:"_meta"`
}

// MediaItem is the representation of an attachment.  The same shape
// serves files, images, videos, and audio.
type MediaItem struct {
	ID          string                 `json:"id"`
	Title       string                 `json:"title"`
	Caption     string                 `json:"caption"`
	Description string                 `json:"description"`
	Link        string                 `json:"link"`
	Type        string                 `json:"type"`
	Thumbnail   string                 `json:"thumbnail"`
	Date        string                 `json:"date"`
	DateGMT     string                 `json:"date_gmt"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Meta        Meta                   `json:"_meta"`
}

// MediaList is one page of attachments.
type MediaList struct {
	Items []MediaItem    `json:"items"`
	Meta  CollectionMeta `json:"_meta"`
}
