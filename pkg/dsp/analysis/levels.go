package analysis

import (
	"fmt"
	"math"

	"github.com/justyntemme/thuemorse/pkg/dsp/q31"
)

// SilenceDB is reported for levels of exactly zero.
const SilenceDB = -120.0

// Levels summarizes a rendered buffer.
type Levels struct {
	Samples       int
	Peak          float64
	PeakDB        float64
	RMS           float64
	RMSDB         float64
	DC            float64
	ZeroCrossings int
	// CrossingRate is zero crossings per second divided by two, the
	// frequency a periodic signal with two crossings per cycle would have.
	CrossingRate float64
	Clipped      int
}

// Analyze measures Q31 samples rendered at sampleRate Hz.
func Analyze(samples []int32, sampleRate float64) Levels {
	floats := make([]float64, len(samples))
	clipped := 0
	for i, s := range samples {
		if s == q31.Max || s == q31.Min {
			clipped++
		}
		floats[i] = float64(q31.ToFloat32(s))
	}
	l := AnalyzeFloat(floats, sampleRate)
	l.Clipped = clipped
	return l
}

// AnalyzeFloat measures float samples in [-1, 1]. Samples at or beyond
// full scale count as clipped.
func AnalyzeFloat(samples []float64, sampleRate float64) Levels {
	l := Levels{Samples: len(samples), PeakDB: SilenceDB, RMSDB: SilenceDB}
	if len(samples) == 0 {
		return l
	}

	var sum, sumSq float64
	for i, s := range samples {
		a := math.Abs(s)
		if a > l.Peak {
			l.Peak = a
		}
		if a >= 1 {
			l.Clipped++
		}
		sum += s
		sumSq += s * s
		if i > 0 && (samples[i-1] < 0) != (s < 0) {
			l.ZeroCrossings++
		}
	}

	n := float64(len(samples))
	l.DC = sum / n
	l.RMS = math.Sqrt(sumSq / n)
	l.PeakDB = ToDB(l.Peak)
	l.RMSDB = ToDB(l.RMS)
	if sampleRate > 0 {
		l.CrossingRate = float64(l.ZeroCrossings) / 2 / (n / sampleRate)
	}
	return l
}

// ToDB converts a linear level to dBFS, flooring silence at SilenceDB.
func ToDB(level float64) float64 {
	if level <= 0 {
		return SilenceDB
	}
	return math.Max(20.0*math.Log10(level), SilenceDB)
}

func (l Levels) String() string {
	return fmt.Sprintf("samples=%d peak=%.4f (%.2f dBFS) rms=%.4f (%.2f dBFS) dc=%+.5f crossings=%d (%.1f Hz) clipped=%d",
		l.Samples, l.Peak, l.PeakDB, l.RMS, l.RMSDB, l.DC, l.ZeroCrossings, l.CrossingRate, l.Clipped)
}
