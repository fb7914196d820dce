// SPDX-License-Identifier: MIT

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseString(t *testing.T) {
	t.Setenv("VSVG_TEST_STR", "value")
	assert.Equal(t, "value", ParseString("VSVG_TEST_STR", "fallback"))

	t.Setenv("VSVG_TEST_STR", "")
	assert.Equal(t, "fallback", ParseString("VSVG_TEST_STR", "fallback"))

	assert.Equal(t, "fallback", ParseString("VSVG_TEST_STR_UNSET", "fallback"))
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   bool
		want  bool
	}{
		{name: "true", value: "true", def: false, want: true},
		{name: "one", value: "1", def: false, want: true},
		{name: "false", value: "false", def: true, want: false},
		{name: "zero", value: "0", def: true, want: false},
		{name: "empty keeps default", value: "", def: true, want: true},
		{name: "junk keeps default", value: "maybe", def: true, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VSVG_TEST_BOOL", tt.value)
			assert.Equal(t, tt.want, ParseBool("VSVG_TEST_BOOL", tt.def))
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   int
		want  int
	}{
		{name: "number", value: "42", def: 7, want: 42},
		{name: "negative", value: "-3", def: 7, want: -3},
		{name: "empty keeps default", value: "", def: 7, want: 7},
		{name: "junk keeps default", value: "4x", def: 7, want: 7},
		{name: "float keeps default", value: "4.5", def: 7, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VSVG_TEST_INT", tt.value)
			assert.Equal(t, tt.want, ParseInt("VSVG_TEST_INT", tt.def))
		})
	}
}

func TestParseInt64(t *testing.T) {
	t.Setenv("VSVG_TEST_INT64", "9001")
	assert.Equal(t, int64(9001), ParseInt64("VSVG_TEST_INT64", 5))

	t.Setenv("VSVG_TEST_INT64", "junk")
	assert.Equal(t, int64(5), ParseInt64("VSVG_TEST_INT64", 5))
}

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name  string
		value string
		def   float64
		want  float64
	}{
		{name: "number", value: "0.25", def: 1, want: 0.25},
		{name: "integer form", value: "3", def: 1, want: 3},
		{name: "empty keeps default", value: "", def: 0.5, want: 0.5},
		{name: "junk keeps default", value: "fast", def: 0.5, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VSVG_TEST_FLOAT", tt.value)
			assert.InDelta(t, tt.want, ParseFloat("VSVG_TEST_FLOAT", tt.def), 1e-12)
		})
	}
}
