package engine

import (
	"github.com/justyntemme/thuemorse/pkg/dsp/oscillator"
	"github.com/justyntemme/thuemorse/pkg/host"
)

// TriangleVoice is a plain pitched triangle used as a reference when
// comparing against the Thue–Morse engine.
type TriangleVoice struct {
	rt    host.Runtime
	phase oscillator.Phase
	flags uint8
}

// NewTriangle creates a triangle voice bound to a host runtime.
func NewTriangle(rt host.Runtime) *TriangleVoice {
	return &TriangleVoice{rt: rt}
}

// Init implements Voice.
func (v *TriangleVoice) Init() {
	v.phase = oscillator.Phase{}
	v.flags = flagsNone
}

// NoteOn implements Voice.
func (v *TriangleVoice) NoteOn() { v.flags |= flagReset }

// NoteOff implements Voice.
func (v *TriangleVoice) NoteOff() {}

// SetParam implements Voice. The triangle has no parameters.
func (v *TriangleVoice) SetParam(host.ParamID, uint16) {}

// Render implements Voice.
func (v *TriangleVoice) Render(p host.Params, out []int32) {
	flags := v.flags
	v.flags = flagsNone

	v.phase.SetIncrement(v.rt.PhaseIncrement(p.Pitch.Note(), p.Pitch.Fine()))
	if flags&flagReset != 0 {
		v.phase.Reset()
	}
	for i := range out {
		out[i] = v.rt.ToSample(oscillator.BipolarTriangle(v.phase.Value()))
		v.phase.Step()
	}
}

// Phase returns the current phase.
func (v *TriangleVoice) Phase() float32 { return v.phase.Value() }

var (
	_ Voice = (*Engine)(nil)
	_ Voice = (*TriangleVoice)(nil)
)
