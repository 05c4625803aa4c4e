package analysis

import (
	"fmt"
	"math"
	"strings"
)

// WindowFunc represents a window function type
type WindowFunc int

const (
	RectangularWindow WindowFunc = iota
	HannWindow
	HammingWindow
	BlackmanWindow
)

func (w WindowFunc) String() string {
	switch w {
	case RectangularWindow:
		return "rectangular"
	case HannWindow:
		return "hann"
	case HammingWindow:
		return "hamming"
	case BlackmanWindow:
		return "blackman"
	default:
		return fmt.Sprintf("window(%d)", int(w))
	}
}

// ParseWindow looks a window up by name.
func ParseWindow(name string) (WindowFunc, error) {
	switch strings.ToLower(name) {
	case "rect", "rectangular", "none":
		return RectangularWindow, nil
	case "", "hann", "hanning":
		return HannWindow, nil
	case "hamming":
		return HammingWindow, nil
	case "blackman":
		return BlackmanWindow, nil
	}
	return 0, fmt.Errorf("unknown window %q", name)
}

// Coefficients returns the n window coefficients.
func (w WindowFunc) Coefficients(n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out
	}
	d := float64(n - 1)

	switch w {
	case HannWindow:
		for i := range out {
			out[i] = 0.5 * (1.0 - math.Cos(2.0*math.Pi*float64(i)/d))
		}

	case HammingWindow:
		for i := range out {
			out[i] = 0.54 - 0.46*math.Cos(2.0*math.Pi*float64(i)/d)
		}

	case BlackmanWindow:
		for i := range out {
			val := 0.42 - 0.5*math.Cos(2.0*math.Pi*float64(i)/d) +
				0.08*math.Cos(4.0*math.Pi*float64(i)/d)
			if val < 0 {
				val = 0
			}
			out[i] = val
		}

	default:
		for i := range out {
			out[i] = 1.0
		}
	}
	return out
}
