package q31

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromFloat32(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want int32
	}{
		{"Zero", 0, 0},
		{"One", 1, Max},
		{"MinusOne", -1, Min},
		{"Half", 0.5, 1073741823},
		{"MinusHalf", -0.5, -1073741823},
		{"SaturateHigh", 1.5, Max},
		{"SaturateLow", -7, Min},
		{"PlusInf", float32(math.Inf(1)), Max},
		{"MinusInf", float32(math.Inf(-1)), Min},
		{"NaN", float32(math.NaN()), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromFloat32(tt.in))
		})
	}
}

func TestFromFloat32NeverWraps(t *testing.T) {
	for x := float32(-2); x <= 2; x += 0.001 {
		q := FromFloat32(x)
		if x > 0 {
			assert.GreaterOrEqual(t, q, int32(0), "x=%v", x)
		}
		if x < 0 {
			assert.LessOrEqual(t, q, int32(0), "x=%v", x)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, x := range []float32{-1, -0.75, -0.001, 0, 0.001, 0.3, 0.999} {
		assert.InDelta(t, x, ToFloat32(FromFloat32(x)), 1e-6)
	}
	assert.Equal(t, float32(-1), ToFloat32(Min))
}
