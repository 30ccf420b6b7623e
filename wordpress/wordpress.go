// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package wordpress defines an abstract API to a WordPress blog, as
// seen through its remote procedure call interface.
//
// Records here are plain structures with typed fields.  They are
// produced by an implementation of Blog, which is responsible for
// turning whatever its transport returns into these shapes; code that
// consumes records can assume the fields are populated as the backend
// reported them.
//
// Identifiers are strings throughout.  WordPress reports most of its
// identifiers as decimal strings, and taxonomies are identified by
// name, so callers should treat them as opaque.
package wordpress

// Caller is the single operation the XML-RPC transport provides:
// invoke a named method with positional parameters, decoding the
// response into reply.
type Caller interface {
	Call(method string, params []interface{}, reply interface{}) error
}

// Blog is the principal interface to a WordPress site.  Each method
// corresponds to one backend call.  Implementations do not cache.
type Blog interface {
	// Options retrieves named site options.  Options that do not
	// exist are absent from the result map.
	Options(names ...string) (map[string]Option, error)

	// PostTypes retrieves every registered post type, keyed by
	// name.
	PostTypes() (map[string]PostType, error)

	// Posts retrieves one page of posts.
	Posts(filter PostFilter) ([]Post, error)

	// Post retrieves a single post by identifier.
	Post(id string) (Post, error)

	// Comments retrieves one page of comments.
	Comments(filter CommentFilter) ([]Comment, error)

	// Comment retrieves a single comment by identifier.
	Comment(id string) (Comment, error)

	// Users retrieves one page of users.
	Users(filter UserFilter) ([]User, error)

	// User retrieves a single user by identifier.
	User(id string) (User, error)

	// Taxonomies retrieves every taxonomy.  The backend does not
	// page this list.
	Taxonomies() ([]Taxonomy, error)

	// Taxonomy retrieves a single taxonomy by name.
	Taxonomy(name string) (Taxonomy, error)

	// Terms retrieves one page of terms within a taxonomy.
	Terms(taxonomy string, filter TermFilter) ([]Term, error)

	// Term retrieves a single term within a taxonomy.
	Term(taxonomy, id string) (Term, error)

	// MediaItems retrieves one page of the media library.
	MediaItems(filter MediaFilter) ([]MediaItem, error)

	// MediaItem retrieves a single attachment by identifier.
	MediaItem(id string) (MediaItem, error)
}
