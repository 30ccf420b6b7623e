// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Package restserver publishes a wordpress.Blog as a REST service.
// The restclient package is a matching client.
//
// The representations are defined in the restdata package.  The URLs
// described here are not part of the API: clients should start from
// the root document and follow links.
//
// Resource Kinds
//
// Each kind of resource has a singular name, used for its item route
// and in the root document, and a plural name, used for its
// collection route.  Routes are registered by name and every link in
// every representation is produced by reverse lookup on those names.
//
// URL Scheme
//
// With the default configuration the following URLs are defined:
//
//     /
//     /wporg/v1/swagger.json
//     /wporg/v1/posts/{?page,post_type}
//     /wporg/v1/posts/{id}/
//     /wporg/v1/comments/{?page,post_id,status}
//     /wporg/v1/comments/{id}/
//     /wporg/v1/users/{?page,role}
//     /wporg/v1/users/{id}/
//     /wporg/v1/files/{?page,parent_id}
//     /wporg/v1/files/{id}/
//     /wporg/v1/images/{?page,parent_id}
//     /wporg/v1/images/{id}/
//     /wporg/v1/videos/{?page,parent_id}
//     /wporg/v1/videos/{id}/
//     /wporg/v1/audio/{?page,parent_id}
//     /wporg/v1/audio/{id}/
//     /wporg/v1/taxonomies/
//     /wporg/v1/taxonomies/{id}/
//     /wporg/v1/taxonomies/{parent_id}/terms/{?page,search}
//     /wporg/v1/taxonomies/{parent_id}/terms/{id}/
//
// Paging
//
// The backend only returns fixed-size pages, and cannot say how many
// records there are in total.  A collection page carries a "next"
// link whenever it is full and a "prev" link whenever it is not the
// first page.  Query parameters that filter the collection are copied
// onto both links.
//
// Errors
//
// Backend failures, including requests for identifiers the backend
// does not know, are reported as 500 Internal Server Error with a
// restdata.ErrorResponse body.  A malformed page parameter is 400.
package restserver
