// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package wordpress

import "time"

// The mapstructure tags on these records name the XML-RPC struct
// members WordPress uses.  Dates are always the "_gmt" variants.

// Option is a single site option.
type Option struct {
	Name        string `mapstructure:"-"`
	Description string `mapstructure:"desc"`
	Value       string `mapstructure:"value"`
	ReadOnly    bool   `mapstructure:"readonly"`
}

// PostType describes a registered post type.
type PostType struct {
	Name         string          `mapstructure:"name"`
	Label        string          `mapstructure:"label"`
	Hierarchical bool            `mapstructure:"hierarchical"`
	Public       bool            `mapstructure:"public"`
	ShowUI       bool            `mapstructure:"show_ui"`
	Builtin      bool            `mapstructure:"_builtin"`
	Supports     map[string]bool `mapstructure:"supports"`
	Taxonomies   []string        `mapstructure:"taxonomies"`
}

// CustomField is one entry of a post's custom metadata.
type CustomField struct {
	ID    string      `mapstructure:"id"`
	Key   string      `mapstructure:"key"`
	Value interface{} `mapstructure:"value"`
}

// Post is a post of any post type.
type Post struct {
	ID            string        `mapstructure:"post_id"`
	Title         string        `mapstructure:"post_title"`
	Date          time.Time     `mapstructure:"post_date_gmt"`
	Modified      time.Time     `mapstructure:"post_modified_gmt"`
	Status        string        `mapstructure:"post_status"`
	Type          string        `mapstructure:"post_type"`
	Format        string        `mapstructure:"post_format"`
	Slug          string        `mapstructure:"post_name"`
	AuthorID      string        `mapstructure:"post_author"`
	Password      string        `mapstructure:"post_password"`
	Excerpt       string        `mapstructure:"post_excerpt"`
	Content       string        `mapstructure:"post_content"`
	ParentID      string        `mapstructure:"post_parent"`
	MimeType      string        `mapstructure:"post_mime_type"`
	Link          string        `mapstructure:"link"`
	GUID          string        `mapstructure:"guid"`
	MenuOrder     int           `mapstructure:"menu_order"`
	CommentStatus string        `mapstructure:"comment_status"`
	PingStatus    string        `mapstructure:"ping_status"`
	Sticky        bool          `mapstructure:"sticky"`
	Terms         []Term        `mapstructure:"terms"`
	CustomFields  []CustomField `mapstructure:"custom_fields"`
}

// Comment is a single comment on a post.
type Comment struct {
	ID          string    `mapstructure:"comment_id"`
	ParentID    string    `mapstructure:"parent"`
	UserID      string    `mapstructure:"user_id"`
	Date        time.Time `mapstructure:"date_created_gmt"`
	Status      string    `mapstructure:"status"`
	Content     string    `mapstructure:"content"`
	Link        string    `mapstructure:"link"`
	PostID      string    `mapstructure:"post_id"`
	PostTitle   string    `mapstructure:"post_title"`
	Author      string    `mapstructure:"author"`
	AuthorURL   string    `mapstructure:"author_url"`
	AuthorEmail string    `mapstructure:"author_email"`
	AuthorIP    string    `mapstructure:"author_ip"`
	Type        string    `mapstructure:"type"`
}

// User is a registered user of the blog.
type User struct {
	ID          string    `mapstructure:"user_id"`
	Username    string    `mapstructure:"username"`
	FirstName   string    `mapstructure:"first_name"`
	LastName    string    `mapstructure:"last_name"`
	Bio         string    `mapstructure:"bio"`
	Email       string    `mapstructure:"email"`
	Nickname    string    `mapstructure:"nickname"`
	Nicename    string    `mapstructure:"nicename"`
	URL         string    `mapstructure:"url"`
	DisplayName string    `mapstructure:"display_name"`
	Registered  time.Time `mapstructure:"registered"`
	Roles       []string  `mapstructure:"roles"`
}

// Taxonomy describes a classification scheme such as categories or
// tags.  A taxonomy is identified by its name.
type Taxonomy struct {
	Name         string            `mapstructure:"name"`
	Label        string            `mapstructure:"label"`
	Hierarchical bool              `mapstructure:"hierarchical"`
	Public       bool              `mapstructure:"public"`
	ShowUI       bool              `mapstructure:"show_ui"`
	Builtin      bool              `mapstructure:"_builtin"`
	Labels       map[string]string `mapstructure:"labels"`
	ObjectTypes  []string          `mapstructure:"object_type"`
}

// Term is a single entry in a taxonomy.  ParentID is "0" or empty for
// a term with no parent.
type Term struct {
	ID          string `mapstructure:"term_id"`
	Name        string `mapstructure:"name"`
	Slug        string `mapstructure:"slug"`
	Group       string `mapstructure:"term_group"`
	TaxonomyID  string `mapstructure:"term_taxonomy_id"`
	Taxonomy    string `mapstructure:"taxonomy"`
	Description string `mapstructure:"description"`
	ParentID    string `mapstructure:"parent"`
	Count       int    `mapstructure:"count"`
}

// MediaItem is an attachment in the media library.
type MediaItem struct {
	ID          string                 `mapstructure:"attachment_id"`
	Date        time.Time              `mapstructure:"date_created_gmt"`
	ParentID    string                 `mapstructure:"parent"`
	Link        string                 `mapstructure:"link"`
	Title       string                 `mapstructure:"title"`
	Caption     string                 `mapstructure:"caption"`
	Description string                 `mapstructure:"description"`
	Type        string                 `mapstructure:"type"`
	Thumbnail   string                 `mapstructure:"thumbnail"`
	Metadata    map[string]interface{} `mapstructure:"metadata"`
}

// Page selects a window of a backend list.  A zero Number means the
// backend default.
type Page struct {
	Number int
	Offset int
}

// PostFilter selects posts.  An empty PostType means "post".
type PostFilter struct {
	Page
	PostType   string
	PostStatus string
}

// CommentFilter selects comments, optionally on a single post.
type CommentFilter struct {
	Page
	PostID string
	Status string
}

// UserFilter selects users, optionally by role.
type UserFilter struct {
	Page
	Role string
}

// TermFilter selects terms within a taxonomy.
type TermFilter struct {
	Page
	Search string
}

// MediaFilter selects media library items.  MimeType may be a prefix
// such as "image".
type MediaFilter struct {
	Page
	MimeType string
	ParentID string
}
