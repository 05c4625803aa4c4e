package main

import (
	"encoding/binary"
	"io"
	"math"
	"sync"

	"github.com/justyntemme/thuemorse/pkg/dsp/q31"
	"github.com/justyntemme/thuemorse/pkg/framework/debug"
	"github.com/justyntemme/thuemorse/pkg/session"
)

// audioPlayer plays a session to completion.
type audioPlayer interface {
	Play(src io.Reader) error
	Close() error
}

func runPlay(args []string, stdout, stderr io.Writer) error {
	var sf sessionFlags
	fs := newFlagSet("play", "[flags]", stderr)
	sf.register(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	defer sf.close()

	s, err := sf.newSession(fs, stderr)
	if err != nil {
		return err
	}

	p, err := newAudioPlayer(int(s.SampleRate()))
	if err != nil {
		return err
	}
	defer p.Close()

	debug.Info("playing %.2fs", float64(s.Total())/s.SampleRate())
	if err := p.Play(newSessionReader(s)); err != nil {
		return err
	}
	debug.Debug("play: %d of %d frames, %s", s.Position(), s.Total(), s.Load().Report())
	return nil
}

// sessionReader serves a session as mono float32 little-endian PCM and
// returns io.EOF once the session is done.
type sessionReader struct {
	mu    sync.Mutex
	s     *session.Session
	block []int32
	// rendered samples not yet handed out
	pending []byte
	buf     []byte
}

func newSessionReader(s *session.Session) *sessionReader {
	n := s.Config().BlockSize
	return &sessionReader{
		s:     s,
		block: make([]int32, n),
		buf:   make([]byte, 4*n),
	}
}

func (r *sessionReader) Read(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	written := 0
	for written < len(p) {
		if len(r.pending) == 0 {
			if r.s.Done() {
				break
			}
			n := r.s.Next(r.block)
			for i, q := range r.block[:n] {
				binary.LittleEndian.PutUint32(r.buf[4*i:], math.Float32bits(q31.ToFloat32(q)))
			}
			r.pending = r.buf[:4*n]
		}
		c := copy(p[written:], r.pending)
		r.pending = r.pending[c:]
		written += c
	}

	if written == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	return written, nil
}
