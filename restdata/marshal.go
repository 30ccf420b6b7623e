// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"io"
	"mime"
	"strings"

	"github.com/ugorji/go/codec"
)

// IsJSON reports whether mediaType is one of the JSON types this
// interface speaks: plain JSON, the generic vendor type, or any
// per-kind vendor type.
func IsJSON(mediaType string) bool {
	switch mediaType {
	case "text/json", "application/json", JSONMediaType:
		return true
	}
	return strings.HasPrefix(mediaType, "application/vnd.wordpress.") &&
		strings.HasSuffix(mediaType, "+json")
}

// Decode tries to decode a restdata object from a reader, such as an
// HTTP response.  out must be a pointer type.
func Decode(contentType string, r io.Reader, out interface{}) error {
	if contentType == "" {
		// RFC 7231 section 3.1.1.5
		contentType = "application/octet-stream"
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return err
	}
	if !IsJSON(mediaType) {
		return ErrUnsupportedMediaType{Type: mediaType}
	}
	decoder := codec.NewDecoder(r, &codec.JsonHandle{})
	return decoder.Decode(out)
}
