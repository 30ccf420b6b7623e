// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

import (
	"github.com/diffeo/go-wprest/restdata"
)

// ResourceKind is the static description of one kind of resource.
// Kinds are defined once and never modified.
type ResourceKind struct {
	// Name is the singular name, used as the item route name and
	// as the key in the root document.
	Name string

	// PluralName is the collection route name and path segment.
	PluralName string

	// MediaType is the versioned MIME type of an item.
	MediaType string

	// Parent, if non-nil, is the kind this kind's collections are
	// nested under.
	Parent *ResourceKind

	// Supports lists the HTTP verbs an item advertises.
	Supports []string

	// CollectionSupports lists the HTTP verbs a collection
	// advertises.
	CollectionSupports []string

	// Filters names the query parameters a collection request
	// passes to the backend.  Paging links preserve these.
	Filters []string

	// Unpaged collections always return every record.
	Unpaged bool
}

var (
	itemVerbs       = []string{"GET", "PUT", "DELETE"}
	collectionVerbs = []string{"GET", "POST"}
	rootVerbs       = []string{"GET", "POST", "DELETE"}
)

const mediaVersion = "v1"

// The resource kinds this service publishes.
var (
	PostKind = &ResourceKind{
		Name:               "post",
		PluralName:         "posts",
		MediaType:          restdata.MediaType("post", mediaVersion),
		Supports:           itemVerbs,
		CollectionSupports: collectionVerbs,
		Filters:            []string{"post_type"},
	}
	CommentKind = &ResourceKind{
		Name:               "comment",
		PluralName:         "comments",
		MediaType:          restdata.MediaType("comment", mediaVersion),
		Supports:           itemVerbs,
		CollectionSupports: collectionVerbs,
		Filters:            []string{"post_id", "status"},
	}
	UserKind = &ResourceKind{
		Name:               "user",
		PluralName:         "users",
		MediaType:          restdata.MediaType("user", mediaVersion),
		Supports:           itemVerbs,
		CollectionSupports: collectionVerbs,
		Filters:            []string{"role"},
	}
	FileKind = &ResourceKind{
		Name:               "file",
		PluralName:         "files",
		MediaType:          restdata.MediaType("file", mediaVersion),
		Supports:           itemVerbs,
		CollectionSupports: collectionVerbs,
		Filters:            []string{"parent_id"},
	}
	ImageKind = &ResourceKind{
		Name:               "image",
		PluralName:         "images",
		MediaType:          restdata.MediaType("image", mediaVersion),
		Supports:           itemVerbs,
		CollectionSupports: collectionVerbs,
		Filters:            []string{"parent_id"},
	}
	VideoKind = &ResourceKind{
		Name:               "video",
		PluralName:         "videos",
		MediaType:          restdata.MediaType("video", mediaVersion),
		Supports:           itemVerbs,
		CollectionSupports: collectionVerbs,
		Filters:            []string{"parent_id"},
	}
	AudioKind = &ResourceKind{
		Name:               "audio_item",
		PluralName:         "audio",
		MediaType:          restdata.MediaType("audio", mediaVersion),
		Supports:           itemVerbs,
		CollectionSupports: collectionVerbs,
		Filters:            []string{"parent_id"},
	}
	TaxonomyKind = &ResourceKind{
		Name:               "taxonomy",
		PluralName:         "taxonomies",
		MediaType:          restdata.MediaType("taxonomy", mediaVersion),
		Supports:           itemVerbs,
		CollectionSupports: collectionVerbs,
		Unpaged:            true,
	}
	TermKind = &ResourceKind{
		Name:               "term",
		PluralName:         "terms",
		MediaType:          restdata.MediaType("term", mediaVersion),
		Parent:             TaxonomyKind,
		Supports:           itemVerbs,
		CollectionSupports: collectionVerbs,
		Filters:            []string{"search"},
	}
)

// discoverableKinds are listed in the root document after the post
// types, in this order.  Posts are discovered through post types;
// terms only through their taxonomy.
var discoverableKinds = []*ResourceKind{
	CommentKind,
	UserKind,
	FileKind,
	ImageKind,
	VideoKind,
	AudioKind,
	TaxonomyKind,
}

// mimePrefixes selects the media library subset for each media kind.
// Files are the whole library.
var mimePrefixes = map[*ResourceKind]string{
	FileKind:  "",
	ImageKind: "image",
	VideoKind: "video",
	AudioKind: "audio",
}
