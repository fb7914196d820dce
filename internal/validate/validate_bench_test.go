// SPDX-License-Identifier: MIT
package validate

import (
	"testing"
)

func BenchmarkValidatorNotEmpty(b *testing.B) {
	v := New()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		v.NotEmpty("field", "value")
		v.Clear()
	}
}

func BenchmarkValidatorRange(b *testing.B) {
	v := New()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		v.Range("precision", 4, 0, 6)
		v.Clear()
	}
}

func BenchmarkValidatorListenAddr(b *testing.B) {
	v := New()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		v.ListenAddr("listen", "127.0.0.1:8080")
		v.Clear()
	}
}

// BenchmarkValidatorFullConfig approximates a realistic validation pass.
func BenchmarkValidatorFullConfig(b *testing.B) {
	v := New()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		v.NotEmpty("scene", "scene.yaml")
		v.Range("precision", 4, 0, 6)
		v.RangeFloat("opacity", 0.9, 0, 1)
		v.ListenAddr("listen", ":8080")
		v.OneOf("logFormat", "console", []string{"console", "json"})
		v.Clear()
	}
}
