package analysis

import (
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"
)

// Bin is one frequency bin of a magnitude spectrum.
type Bin struct {
	Index     int
	Freq      float64
	Magnitude float64
	DB        float64
}

// Spectrum returns the size/2+1 magnitude bins of the first size samples
// after windowing. Shorter input is zero padded. Magnitudes are scaled by
// the window's coherent gain so a full-scale sinusoid centred on a bin
// reads close to 1.
func Spectrum(samples []float64, size int, sampleRate float64, window WindowFunc) []Bin {
	if size <= 0 {
		return nil
	}

	coeffs := window.Coefficients(size)
	frame := make([]float64, size)
	var gain float64
	for i, c := range coeffs {
		gain += c
		if i < len(samples) {
			frame[i] = samples[i] * c
		}
	}
	if gain == 0 {
		gain = 1
	}

	spectrum := fft.FFTReal(frame)
	bins := make([]Bin, size/2+1)
	for i := range bins {
		mag := cmplx.Abs(spectrum[i]) * 2 / gain
		if i == 0 || (size%2 == 0 && i == size/2) {
			mag /= 2
		}
		bins[i] = Bin{
			Index:     i,
			Freq:      float64(i) * sampleRate / float64(size),
			Magnitude: mag,
			DB:        ToDB(mag),
		}
	}
	return bins
}

// Peaks returns up to n local maxima of bins, strongest first. The DC bin
// is never reported.
func Peaks(bins []Bin, n int) []Bin {
	if n <= 0 {
		return nil
	}

	var peaks []Bin
	for i := 1; i < len(bins); i++ {
		m := bins[i].Magnitude
		if m <= 0 || m < bins[i-1].Magnitude {
			continue
		}
		if i+1 < len(bins) && m <= bins[i+1].Magnitude {
			continue
		}
		peaks = append(peaks, bins[i])
	}

	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].Magnitude > peaks[j].Magnitude
	})
	if len(peaks) > n {
		peaks = peaks[:n]
	}
	return peaks
}
