// SPDX-License-Identifier: MIT

package paint

import (
	"math"

	"cogentcore.org/core/base/randx"
)

// Source is the seeded random stream every stylistic variation draws from.
// One Source serves a whole frame, so a fixed seed reproduces the frame
// exactly.
type Source struct {
	rnd randx.Rand
}

// NewSource returns a Source seeded deterministically.
func NewSource(seed int64) *Source {
	return &Source{rnd: randx.NewSysRand(seed)}
}

// Float64 returns a uniform sample from [0,1).
func (s *Source) Float64() float64 { return s.rnd.Float64() }

// Intn returns a uniform int from [0,n).
func (s *Source) Intn(n int) int { return s.rnd.Intn(n) }

// Noise returns a gaussian sample with the given mean and sigma, rounded to
// coordinate precision. A zero sigma returns the mean unchanged.
func (s *Source) Noise(mean, sigma float64) float64 {
	if sigma == 0 {
		return mean
	}
	return roundTo(randx.GaussianGen(mean, sigma, s.rnd), 4)
}

// Triangular returns a sample from the symmetric triangular distribution on
// [lo,hi] with the mode at the midpoint.
func (s *Source) Triangular(lo, hi float64) float64 {
	u := s.rnd.Float64()
	d := hi - lo
	if u < 0.5 {
		return lo + d*math.Sqrt(u/2)
	}
	return hi - d*math.Sqrt((1-u)/2)
}
