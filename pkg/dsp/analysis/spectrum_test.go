package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sine(n int, freq, sampleRate, amp float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = amp * math.Sin(2*math.Pi*freq*float64(i)/sampleRate)
	}
	return out
}

func TestSpectrumBinCentredSine(t *testing.T) {
	const (
		size = 1024
		sr   = 48000.0
	)
	freq := 32 * sr / size
	bins := Spectrum(sine(size, freq, sr, 0.5), size, sr, HannWindow)

	require.Len(t, bins, size/2+1)
	assert.InDelta(t, freq, bins[32].Freq, 1e-9)
	assert.InDelta(t, 0.5, bins[32].Magnitude, 0.01)
	assert.Less(t, bins[100].Magnitude, 1e-3)
}

func TestSpectrumDC(t *testing.T) {
	samples := make([]float64, 256)
	for i := range samples {
		samples[i] = 0.25
	}
	bins := Spectrum(samples, 256, 48000, RectangularWindow)
	assert.InDelta(t, 0.25, bins[0].Magnitude, 1e-9)
	assert.InDelta(t, 0, bins[10].Magnitude, 1e-9)
}

func TestSpectrumZeroPads(t *testing.T) {
	bins := Spectrum([]float64{1}, 64, 48000, RectangularWindow)
	require.Len(t, bins, 33)
	for _, b := range bins[1:32] {
		assert.InDelta(t, 2.0/64, b.Magnitude, 1e-9)
	}
	assert.Nil(t, Spectrum(nil, 0, 48000, HannWindow))
}

func TestPeaks(t *testing.T) {
	const (
		size = 2048
		sr   = 48000.0
	)
	a := sine(size, 100*sr/size, sr, 0.5)
	b := sine(size, 300*sr/size, sr, 0.25)
	for i := range a {
		a[i] += b[i]
	}

	peaks := Peaks(Spectrum(a, size, sr, HannWindow), 2)
	require.Len(t, peaks, 2)
	assert.Equal(t, 100, peaks[0].Index)
	assert.Equal(t, 300, peaks[1].Index)
	assert.Greater(t, peaks[0].DB, peaks[1].DB)
}

func TestPeaksLimits(t *testing.T) {
	bins := []Bin{{Magnitude: 5}, {Magnitude: 1}, {Magnitude: 3}, {Magnitude: 2}, {Magnitude: 4}}
	assert.Nil(t, Peaks(bins, 0))

	peaks := Peaks(bins, 10)
	require.Len(t, peaks, 2)
	assert.Equal(t, 4.0, peaks[0].Magnitude)
	assert.Equal(t, 3.0, peaks[1].Magnitude)
}

func TestWindows(t *testing.T) {
	for _, w := range []WindowFunc{RectangularWindow, HannWindow, HammingWindow, BlackmanWindow} {
		c := w.Coefficients(65)
		require.Len(t, c, 65)
		assert.InDelta(t, 1.0, c[32], 1e-9, "%s peak", w)
		assert.InDelta(t, c[0], c[64], 1e-12, "%s symmetry", w)

		parsed, err := ParseWindow(w.String())
		require.NoError(t, err)
		assert.Equal(t, w, parsed)
	}
	assert.Equal(t, []float64{1}, HannWindow.Coefficients(1))

	_, err := ParseWindow("kaiser")
	assert.Error(t, err)
}
