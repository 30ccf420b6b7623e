// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restdata defines the data structures shared between the
// restserver and restclient packages.  These are passed across the
// wire as JSON.
//
// API Usage
//
// HTTP GET the root document at /.  This returns a serialization of
// RootData, which names every resource the service offers and the
// URL of its collection.  Follow those links; every representation
// carries a "_meta" block whose "links" point at related resources.
//
// A single resource looks like
//
//     {
//         "id": "12",
//         "title": "Hello world",
//         ...
//         "_meta": {
//             "links": {"self": "http://host/wporg/v1/posts/12/"},
//             "supports": ["GET", "PUT", "DELETE"],
//             "media_type": "application/vnd.wordpress.post.v1+json"
//         }
//     }
//
// and a collection looks like
//
//     {
//         "items": [...],
//         "_meta": {
//             "supports": ["GET", "POST"],
//             "links": {"next": "http://host/wporg/v1/posts/?page=2"}
//         }
//     }
//
// "next" is present only if the page was full, and "prev" only past
// the first page.  A "next" link may lead to an empty page.
//
// Encoding Considerations
//
// Identifiers are the backend's own, passed through as strings.
// Every date appears twice: "date_gmt" is the backend's GMT value
// and "date" is the same instant shifted to the blog's fixed UTC
// offset.  Both use the layout "2006-01-02T15:04:05" with no zone
// designator.
//
// HTTP Considerations
//
// The "supports" lists advertise the verbs of the full API.  Only GET
// (and HEAD) are implemented; other advertised verbs return 501 Not
// Implemented, and anything else 405 Method Not Allowed.
package restdata

// JSONMediaType is the MIME type of any representation in this
// interface.  Each resource kind also has a more specific type; see
// MediaType.
const JSONMediaType = "application/vnd.wordpress+json"

// MediaType returns the versioned MIME type of a resource kind, for
// instance "application/vnd.wordpress.post.v1+json".
func MediaType(kind, version string) string {
	return "application/vnd.wordpress." + kind + "." + version + "+json"
}

// TimeLayout is the format of every date in a representation.
const TimeLayout = "2006-01-02T15:04:05"

// Links maps relation names to absolute URLs.  Self is always
// present; the others only where the relation exists.
type Links struct {
	Self     string `json:"self"`
	Parent   string `json:"parent,omitempty"`
	Post     string `json:"post,omitempty"`
	Author   string `json:"author,omitempty"`
	Comments string `json:"comments,omitempty"`
	Terms    string `json:"terms,omitempty"`
}

// Meta is the "_meta" block of a single resource.
type Meta struct {
	Links     Links    `json:"links"`
	Supports  []string `json:"supports"`
	MediaType string   `json:"media_type"`
}

// PageLinks holds the navigation links of a collection page.
type PageLinks struct {
	Next string `json:"next,omitempty"`
	Prev string `json:"prev,omitempty"`
}

// CollectionMeta is the "_meta" block of a collection page.
type CollectionMeta struct {
	Supports []string  `json:"supports"`
	Links    PageLinks `json:"links"`
}

// RootResource describes one resource kind in the root document.
type RootResource struct {
	// Versions maps an API version label ("v1", "latest") to the
	// absolute URL of the collection.
	Versions map[string]string `json:"versions"`
	Supports []string          `json:"supports"`
}

// RootData is the discovery document served at the root URL.
type RootData struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	URL         string                  `json:"URL"`
	Resources   map[string]RootResource `json:"resources"`
}
