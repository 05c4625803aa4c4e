// Package host holds the primitives an oscillator borrows from the runtime
// that loads it: pitch encoding and note tables, parameter identifiers and
// value decoding, and sample conversion to the output format.
package host

import (
	"math"

	"github.com/justyntemme/thuemorse/pkg/dsp"
	"github.com/justyntemme/thuemorse/pkg/dsp/interpolation"
	"github.com/justyntemme/thuemorse/pkg/dsp/q31"
)

// Pitch packs a note number in the high byte and a fine offset (in 1/256
// of a semitone toward the next note) in the low byte.
type Pitch uint16

// NewPitch builds a Pitch from its note and fine parts.
func NewPitch(note, fine uint8) Pitch {
	return Pitch(uint16(note)<<8 | uint16(fine))
}

// Note returns the coarse note number.
func (p Pitch) Note() uint8 { return uint8(p >> 8) }

// Fine returns the fine offset toward the next note.
func (p Pitch) Fine() uint8 { return uint8(p & 0xFF) }

// Params is the per-block parameter set handed to Render.
type Params struct {
	Pitch Pitch
	// ShapeLFO is the shape LFO output in Q31. Oscillators may ignore it.
	ShapeLFO int32
}

// Runtime is what an oscillator needs from its host while rendering.
// Implementations must not allocate or block.
type Runtime interface {
	// SampleRate returns the output rate in Hz.
	SampleRate() float32
	// PhaseIncrement converts a note and fine offset to a normalized phase
	// step per sample.
	PhaseIncrement(note, fine uint8) float32
	// ToSample converts a normalized float to the output sample format.
	ToSample(x float32) int32
	// ParamValue decodes a raw parameter value to [0, 1].
	ParamValue(raw uint16) float32
}

// noteHz holds the equal-tempered frequency of every note the tables
// cover, plus one so note+1 is always addressable.
var noteHz [dsp.MaxNote + 2]float32

func init() {
	for n := range noteHz {
		noteHz[n] = float32(dsp.TuningA4 * math.Pow(2, (float64(n)-69)/12))
	}
}

// NoteHz returns the frequency of a note, clamped to the table range.
func NoteHz(note uint8) float32 {
	if note > dsp.MaxNote {
		note = dsp.MaxNote
	}
	return noteHz[note]
}

// Logue is the Runtime of the hardware oscillator host: Q31 output, 10-bit
// parameter values, and pitch interpolated linearly between adjacent notes.
type Logue struct {
	sampleRate float32
	recip      float32
	maxHz      float32
}

// NewLogue creates a runtime rendering at sampleRate Hz.
func NewLogue(sampleRate float64) *Logue {
	if sampleRate <= 0 {
		sampleRate = dsp.SampleRate48k
	}
	maxHz := float32(dsp.MaxNoteHz)
	if nyq := float32(sampleRate / 2); nyq < maxHz {
		maxHz = nyq
	}
	return &Logue{
		sampleRate: float32(sampleRate),
		recip:      float32(1 / sampleRate),
		maxHz:      maxHz,
	}
}

// SampleRate returns the output rate in Hz.
func (l *Logue) SampleRate() float32 {
	return l.sampleRate
}

// PhaseIncrement returns frequency / sample rate for note plus fine/255 of
// the way to the next note. Frequencies above MaxNoteHz (or Nyquist, if
// lower) are clipped.
func (l *Logue) PhaseIncrement(note, fine uint8) float32 {
	if note > dsp.MaxNote {
		note = dsp.MaxNote
	}
	f := interpolation.Linear(noteHz[note], noteHz[note+1], float32(fine)/255)
	if f > l.maxHz {
		f = l.maxHz
	}
	return f * l.recip
}

// ToSample converts to Q31 with saturation.
func (l *Logue) ToSample(x float32) int32 {
	return q31.FromFloat32(x)
}

// ParamValue decodes a 10-bit parameter value.
func (l *Logue) ParamValue(raw uint16) float32 {
	return ParamToFloat(raw)
}
