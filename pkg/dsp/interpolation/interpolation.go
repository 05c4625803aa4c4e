// Package interpolation provides the ramp shapes used between oscillator
// target levels.
package interpolation

import "math"

// Linear performs linear interpolation between a and b.
// t is the fractional position between them (0.0 to 1.0).
func Linear(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Cosine eases from a to b along a half cosine: f = (1 - cos(πt)) / 2.
// Both endpoints have zero slope, so chained ramps join without a corner.
// Cosine(a, b, 0) == a and Cosine(a, b, 1) == b exactly.
func Cosine(a, b, t float32) float32 {
	// float64 keeps cos(π) at exactly -1 so the endpoints land on a and b.
	f := (1 - math.Cos(math.Pi*float64(t))) / 2
	return float32(float64(a)*(1-f) + float64(b)*f)
}
