package engine

import (
	"github.com/justyntemme/thuemorse/pkg/dsp/oscillator"
	"github.com/justyntemme/thuemorse/pkg/framework/debug"
	"github.com/justyntemme/thuemorse/pkg/framework/param"
	"github.com/justyntemme/thuemorse/pkg/host"
)

// Engine is the Thue–Morse oscillator. Its amplitude comes from the glide
// between sequence-selected levels; the phase accumulator runs alongside in
// lock-step but does not touch the amplitude.
type Engine struct {
	rt     host.Runtime
	params *param.Registry
	log    *debug.Logger

	glide oscillator.Glide
	phase oscillator.Phase
	flags uint8
}

// New creates an engine bound to a host runtime. Call Init before the
// first Render.
func New(rt host.Runtime) *Engine {
	return &Engine{
		rt:     rt,
		params: param.OscillatorSlots(),
		log:    debug.Default().With("engine"),
	}
}

// SetLogger replaces the logger used by lifecycle calls.
func (e *Engine) SetLogger(l *debug.Logger) {
	e.log = l
}

// Init zeroes the voice and seeds the sequence register with the first
// eight Thue–Morse bits. The first ramp rises from 0 to the level they
// select.
func (e *Engine) Init() {
	e.flags = flagsNone
	e.phase = oscillator.Phase{}
	e.glide.Seed()
	e.params.ResetAll()
	e.log.Debug("init: resolution=0x%02x index=%d target=%.6f",
		e.glide.Resolution(), e.glide.SequenceIndex(), e.glide.End())
}

// NoteOn requests a phase reset at the start of the next block.
func (e *Engine) NoteOn() {
	e.flags |= flagReset
}

// NoteOff does nothing: the oscillator sustains until the host stops
// rendering it.
func (e *Engine) NoteOff() {}

// SetParam records the decoded value of a slot. No slot affects the sound
// yet. Unknown IDs are ignored.
func (e *Engine) SetParam(id host.ParamID, raw uint16) {
	if p := e.params.Get(uint32(id)); p != nil {
		p.SetValue(float64(e.rt.ParamValue(raw)))
	}
}

// Render fills out with one block of samples at the pitch in p.
func (e *Engine) Render(p host.Params, out []int32) {
	flags := e.flags
	e.flags = flagsNone

	e.phase.SetIncrement(e.rt.PhaseIncrement(p.Pitch.Note(), p.Pitch.Fine()))
	if flags&flagReset != 0 {
		e.phase.Reset()
	}

	for i := range out {
		out[i] = e.rt.ToSample(e.glide.Sample())
		e.phase.Step()
	}
}

// Phase returns the accumulated oscillator phase.
func (e *Engine) Phase() float32 { return e.phase.Value() }

// Increment returns the phase step set by the last Render.
func (e *Engine) Increment() float32 { return e.phase.Increment() }

// ResetPending reports whether a NoteOn is waiting for the next block.
func (e *Engine) ResetPending() bool { return e.flags&flagReset != 0 }

// SequenceIndex returns the position of the next Thue–Morse bit.
func (e *Engine) SequenceIndex() uint64 { return e.glide.SequenceIndex() }

// Resolution returns the register holding the last eight sequence bits.
func (e *Engine) Resolution() uint8 { return e.glide.Resolution() }

// Glide exposes the interpolator for inspection.
func (e *Engine) Glide() *oscillator.Glide { return &e.glide }

// Params returns the parameter slots.
func (e *Engine) Params() *param.Registry { return e.params }
