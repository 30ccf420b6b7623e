// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package wordpress

import "strconv"

// HasID reports whether id names a real record.  WordPress uses "0"
// (and sometimes an empty string) for "none" in reference fields such
// as a term's parent or a comment's user.
func HasID(id string) bool {
	n, err := strconv.ParseInt(id, 10, 64)
	return err == nil && n > 0
}
