package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/justyntemme/thuemorse/pkg/dsp/q31"
)

func TestAnalyzeEmpty(t *testing.T) {
	l := Analyze(nil, 48000)
	assert.Zero(t, l.Samples)
	assert.Equal(t, SilenceDB, l.PeakDB)
	assert.Equal(t, SilenceDB, l.RMSDB)
}

func TestAnalyzeSilence(t *testing.T) {
	l := Analyze(make([]int32, 256), 48000)
	assert.Equal(t, 256, l.Samples)
	assert.Zero(t, l.Peak)
	assert.Zero(t, l.ZeroCrossings)
	assert.Zero(t, l.Clipped)
	assert.Equal(t, SilenceDB, l.PeakDB)
}

func TestAnalyzeSquare(t *testing.T) {
	// 100 cycles of a half-scale square wave, 10 samples per half cycle
	samples := make([]float64, 2000)
	for i := range samples {
		if (i/10)%2 == 0 {
			samples[i] = 0.5
		} else {
			samples[i] = -0.5
		}
	}
	l := AnalyzeFloat(samples, 2000)

	assert.InDelta(t, 0.5, l.Peak, 1e-12)
	assert.InDelta(t, 0.5, l.RMS, 1e-12)
	assert.InDelta(t, 0.0, l.DC, 1e-12)
	assert.InDelta(t, -6.0206, l.PeakDB, 1e-3)
	assert.Equal(t, 199, l.ZeroCrossings)
	assert.InDelta(t, 99.5, l.CrossingRate, 1e-9)
	assert.Zero(t, l.Clipped)
}

func TestAnalyzeSine(t *testing.T) {
	const sr = 48000.0
	samples := make([]float64, 48000)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * 1000 * float64(i) / sr)
	}
	l := AnalyzeFloat(samples, sr)

	assert.InDelta(t, 1/math.Sqrt2, l.RMS, 1e-6)
	assert.InDelta(t, 1000, l.CrossingRate, 1)
	assert.InDelta(t, 0, l.DC, 1e-9)
}

func TestAnalyzeCountsClipping(t *testing.T) {
	samples := []int32{0, q31.Max, q31.Min, q31.FromFloat32(0.25), q31.Max}
	l := Analyze(samples, 48000)

	assert.Equal(t, 3, l.Clipped)
	assert.InDelta(t, 1.0, l.Peak, 1e-6)
	assert.Equal(t, 2, l.ZeroCrossings)
}

func TestToDB(t *testing.T) {
	assert.Equal(t, 0.0, ToDB(1))
	assert.InDelta(t, -20.0, ToDB(0.1), 1e-9)
	assert.Equal(t, SilenceDB, ToDB(0))
	assert.Equal(t, SilenceDB, ToDB(1e-9))
}

func TestLevelsString(t *testing.T) {
	l := AnalyzeFloat([]float64{0.5, -0.5}, 2)
	assert.Contains(t, l.String(), "samples=2")
	assert.Contains(t, l.String(), "crossings=1")
}
