package session

import (
	"github.com/gopxl/beep"

	"github.com/justyntemme/thuemorse/pkg/dsp/q31"
)

// Stream adapts a Session to beep.Streamer. The mono voice is copied to
// both channels.
type Stream struct {
	s   *Session
	buf []int32
}

// Stream returns a streamer over the rest of the session.
func (s *Session) Stream() *Stream {
	return &Stream{s: s, buf: make([]int32, s.cfg.BlockSize)}
}

// Stream implements beep.Streamer.
func (st *Stream) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		want := len(samples) - n
		if want > len(st.buf) {
			want = len(st.buf)
		}
		got := st.s.Next(st.buf[:want])
		if got == 0 {
			break
		}
		for _, q := range st.buf[:got] {
			v := float64(q31.ToFloat32(q))
			samples[n] = [2]float64{v, v}
			n++
		}
	}
	return n, n > 0
}

// Err implements beep.Streamer. Rendering cannot fail.
func (st *Stream) Err() error { return nil }

// Format describes the stream for encoders: mono at the session rate.
func (st *Stream) Format(precision int) beep.Format {
	return beep.Format{
		SampleRate:  beep.SampleRate(st.s.cfg.SampleRate),
		NumChannels: 1,
		Precision:   precision,
	}
}

// Len returns the number of frames left.
func (st *Stream) Len() int { return int(st.s.total - st.s.pos) }

var _ beep.Streamer = (*Stream)(nil)
