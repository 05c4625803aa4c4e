// Package engine contains the oscillator voices a host drives through the
// five lifecycle entry points.
//
// A voice is owned by one audio thread. The host serializes every call, so
// voices carry no locks, and Render never allocates or blocks.
package engine

import "github.com/justyntemme/thuemorse/pkg/host"

// Voice is the lifecycle surface a host calls.
type Voice interface {
	// Init prepares the voice on activation.
	Init()
	// NoteOn marks the start of a note.
	NoteOn()
	// NoteOff marks the end of a note.
	NoteOff()
	// SetParam receives a raw value for one parameter slot.
	SetParam(id host.ParamID, raw uint16)
	// Render writes exactly len(out) samples.
	Render(p host.Params, out []int32)
}

const (
	flagsNone uint8 = 0
	flagReset uint8 = 1 << 0
)
