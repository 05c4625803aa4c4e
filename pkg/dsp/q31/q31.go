// Package q31 converts between normalized float samples and the signed
// Q1.31 fixed-point format used on the output bus.
package q31

import "math"

const (
	// Max is the largest representable sample, just under +1.0.
	Max int32 = math.MaxInt32
	// Min is the most negative sample, exactly -1.0.
	Min int32 = math.MinInt32

	scale = float64(math.MaxInt32)
)

// FromFloat32 converts x to Q31, saturating anything outside [-1, 1)
// instead of wrapping. NaN maps to silence.
func FromFloat32(x float32) int32 {
	switch {
	case x != x:
		return 0
	case x >= 1:
		return Max
	case x <= -1:
		return Min
	}
	return int32(float64(x) * scale)
}

// ToFloat32 converts a Q31 sample back to a float in [-1, 1].
func ToFloat32(q int32) float32 {
	if q == Min {
		return -1
	}
	return float32(float64(q) / scale)
}
