package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/justyntemme/thuemorse/pkg/dsp/analysis"
	"github.com/justyntemme/thuemorse/pkg/dsp/q31"
	"github.com/justyntemme/thuemorse/pkg/engine"
	"github.com/justyntemme/thuemorse/pkg/host"
	"github.com/justyntemme/thuemorse/pkg/midi"
)

func runAnalyze(args []string, stdout, stderr io.Writer) error {
	var (
		sf     sessionFlags
		size   int
		npeaks int
		window string
	)
	fs := newFlagSet("analyze", "[flags]", stderr)
	sf.register(fs)
	fs.IntVar(&size, "fft", 4096, "FFT size in samples")
	fs.IntVar(&npeaks, "peaks", 8, "number of spectral peaks to list")
	fs.StringVar(&window, "window", "hann", "FFT window: hann, hamming, blackman or rectangular")
	if err := fs.Parse(args); err != nil {
		return err
	}
	defer sf.close()

	win, err := analysis.ParseWindow(window)
	if err != nil {
		return err
	}
	if size < 2 {
		return fmt.Errorf("fft size %d too small", size)
	}

	s, err := sf.newSession(fs, stderr)
	if err != nil {
		return err
	}
	samples := s.RenderAll()
	rate := s.SampleRate()

	levels := analysis.Analyze(samples, rate)
	fmt.Fprintln(stdout, levels)

	note := uint8(s.Config().Note)
	fmt.Fprintf(stdout, "note=%s note_hz=%.2f fine=%d\n", midi.NoteNumberToName(note), host.NoteHz(note), s.Config().Fine)

	if e, ok := s.Voice().(*engine.Engine); ok {
		g := e.Glide()
		fmt.Fprintf(stdout, "ramps=%d sequence_index=%d resolution=0x%02x increment=%.6f\n",
			g.Ramps(), e.SequenceIndex(), e.Resolution(), e.Increment())
	}
	fmt.Fprintf(stdout, "load: %s\n", s.Load().Report())

	floats := make([]float64, len(samples))
	for i, q := range samples {
		floats[i] = float64(q31.ToFloat32(q))
	}
	peaks := analysis.Peaks(analysis.Spectrum(floats, size, rate, win), npeaks)
	if len(peaks) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "bin\tHz\tnote\tdBFS\t")
	for _, p := range peaks {
		fmt.Fprintf(tw, "%d\t%.1f\t%s\t%.1f\t\n",
			p.Index, p.Freq, midi.NoteNumberToName(midi.FrequencyToNote(p.Freq, 0)), p.DB)
	}
	return tw.Flush()
}
