// SPDX-License-Identifier: MIT

package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSafeID(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Cube", "Cube"},
		{"cube.001", "cube.001"},
		{"left arm", "left_arm"},
		{"ärm", "ärm"},
		{"a/b:c", "a_b_c"},
		{"1cube", "n1cube"},
		{"-dash", "n-dash"},
		{".dot", "n.dot"},
		{"", "unnamed"},
		{"///", "___"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, safeID(tt.in), "safeID(%q)", tt.in)
	}
}

func TestLayerID(t *testing.T) {
	// the reference time renders as the layout itself
	ref := time.Date(2006, 1, 2, 15, 4, 5, 0, time.UTC)
	assert.Equal(t, "Mon_Jan_02_15-04-05_2006", layerID(ref))
}
