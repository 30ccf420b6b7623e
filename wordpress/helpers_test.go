// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package wordpress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"", false},
		{"0", false},
		{"-3", false},
		{"4", true},
		{"17", true},
		{"category", false},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, HasID(test.id), "HasID(%q)", test.id)
	}
}
