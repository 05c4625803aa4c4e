// Package analysis measures rendered oscillator output.
//
// Level metering:
//   - Peak and RMS level, linear and in dBFS
//   - DC offset
//   - Zero crossings and the rate they imply
//   - Count of samples pinned at full scale
//
// Spectral analysis:
//   - Windowed magnitude spectrum (Hann, Hamming, Blackman or rectangular)
//   - Strongest local maxima of a spectrum
//
// Everything here works on complete buffers after rendering; none of it is
// meant for the audio thread.
//
// Example usage:
//
//	levels := analysis.Analyze(samples, 48000)
//	fmt.Println(levels.PeakDB, levels.RMSDB)
//
//	bins := analysis.Spectrum(floats, 4096, 48000, analysis.HannWindow)
//	for _, b := range analysis.Peaks(bins, 8) {
//	    fmt.Printf("%8.1f Hz %6.1f dB\n", b.Freq, b.DB)
//	}
package analysis
