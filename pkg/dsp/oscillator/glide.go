package oscillator

import (
	"github.com/justyntemme/thuemorse/pkg/dsp/interpolation"
	"github.com/justyntemme/thuemorse/pkg/dsp/sequence"
)

// GlideStep is how far a ramp progresses per sample. One ramp therefore
// lasts 100 samples whatever the note pitch; at 48 kHz that is a new
// target roughly every 2 ms.
//
// The step must stay large enough that a ramp cannot complete more than
// once per sample.
const GlideStep float32 = 0.01

// Glide eases between successive Thue–Morse target levels with a cosine
// ramp, fetching a new target each time a ramp completes.
type Glide struct {
	levels   sequence.Accumulator
	start    float32
	end      float32
	progress float32
	ramps    uint64
}

// Seed rewinds the sequence, loads the first target and clears the ramp.
// The first ramp starts from 0.
func (g *Glide) Seed() {
	g.start = 0
	g.progress = 0
	g.ramps = 0
	g.end = g.levels.Seed()
}

// Sample returns the current interpolated level and advances the ramp.
//
// When progress has passed 1 the ramp is retargeted first and the sample
// is taken from the new segment at progress GlideStep; progress is not
// advanced on that sample.
func (g *Glide) Sample() float32 {
	if g.progress <= 1 {
		v := interpolation.Cosine(g.start, g.end, g.progress)
		g.progress += GlideStep
		return v
	}

	g.start = g.end
	g.end = g.levels.Next()
	g.progress = GlideStep
	g.ramps++
	return interpolation.Cosine(g.start, g.end, g.progress)
}

// Start returns the level the current ramp leaves from.
func (g *Glide) Start() float32 { return g.start }

// End returns the level the current ramp heads to.
func (g *Glide) End() float32 { return g.end }

// Progress returns the ramp position of the next sample.
func (g *Glide) Progress() float32 { return g.progress }

// Ramps counts retargets since the last Seed.
func (g *Glide) Ramps() uint64 { return g.ramps }

// SequenceIndex returns the position of the next Thue–Morse bit.
func (g *Glide) SequenceIndex() uint64 { return g.levels.Index() }

// Resolution returns the shift register holding the last eight bits.
func (g *Glide) Resolution() uint8 { return g.levels.Register() }
