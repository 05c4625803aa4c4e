package interpolation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var endpoints = []struct {
	a, b float32
}{
	{0, 1},
	{1, 0},
	{-1, 1},
	{0.3, -0.7},
	{-0.25, -0.25},
	{123.456, -9876.5},
	{1e-30, 3e30},
}

func TestLinear(t *testing.T) {
	for _, e := range endpoints[:5] {
		assert.Equal(t, e.a, Linear(e.a, e.b, 0))
		assert.InDelta(t, e.b, Linear(e.a, e.b, 1), 1e-6)
		assert.InDelta(t, (e.a+e.b)/2, Linear(e.a, e.b, 0.5), 1e-6)
	}
}

func TestCosineEndpoints(t *testing.T) {
	for _, e := range endpoints {
		assert.Equal(t, e.a, Cosine(e.a, e.b, 0), "a=%v b=%v", e.a, e.b)
		assert.Equal(t, e.b, Cosine(e.a, e.b, 1), "a=%v b=%v", e.a, e.b)
	}
}

func TestCosineMidpoint(t *testing.T) {
	assert.InDelta(t, 0.5, Cosine(0, 1, 0.5), 1e-6)
	assert.InDelta(t, 0.0, Cosine(-1, 1, 0.5), 1e-6)
}

func TestCosineMonotonic(t *testing.T) {
	for _, e := range endpoints {
		if e.a >= e.b {
			continue
		}
		prev := Cosine(e.a, e.b, 0)
		for i := 1; i <= 1000; i++ {
			v := Cosine(e.a, e.b, float32(i)/1000)
			require.GreaterOrEqual(t, v, prev, "a=%v b=%v step=%d", e.a, e.b, i)
			prev = v
		}
	}
}

func TestCosineFlatEnds(t *testing.T) {
	// slope near the ends is much smaller than the linear ramp's
	const h = 1e-3
	start := float64(Cosine(0, 1, h)-Cosine(0, 1, 0)) / h
	end := float64(Cosine(0, 1, 1)-Cosine(0, 1, 1-h)) / h
	mid := float64(Cosine(0, 1, 0.5+h)-Cosine(0, 1, 0.5)) / h

	assert.Less(t, math.Abs(start), 0.01)
	assert.Less(t, math.Abs(end), 0.01)
	assert.InDelta(t, math.Pi/2, mid, 0.01)
}
