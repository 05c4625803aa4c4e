package session

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/gopxl/beep/wav"
)

// WAVPrecision is the byte depth of written WAV files.
const WAVPrecision = 3

// WriteWAV renders the rest of the session as a 24-bit mono WAV file.
func WriteWAV(w io.WriteSeeker, s *Session) error {
	st := s.Stream()
	if err := wav.Encode(w, st, st.Format(WAVPrecision)); err != nil {
		return fmt.Errorf("encode wav: %w", err)
	}
	s.log.Debug("wav: %s", s.load.Report())
	return nil
}

// WriteRaw renders the rest of the session as little-endian Q31 words.
func WriteRaw(w io.Writer, s *Session) error {
	block := make([]int32, s.cfg.BlockSize)
	buf := make([]byte, 4*len(block))
	for {
		n := s.Next(block)
		if n == 0 {
			return nil
		}
		for i, q := range block[:n] {
			binary.LittleEndian.PutUint32(buf[4*i:], uint32(q))
		}
		if _, err := w.Write(buf[:4*n]); err != nil {
			return fmt.Errorf("write raw samples: %w", err)
		}
	}
}
