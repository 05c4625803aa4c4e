// Package oscillator provides the per-sample state machines behind the
// oscillator voices: a phase accumulator, the Thue–Morse glide and the
// reference triangle shape.
package oscillator

import "maze.io/x/math32"

// Advance adds inc to phase and drops the integer part, keeping the
// result in [0, 1).
func Advance(phase, inc float32) float32 {
	p := phase + inc
	return p - math32.Floor(p)
}

// Phase tracks position within one waveform cycle.
type Phase struct {
	value float32
	inc   float32
}

// SetIncrement sets the normalized phase step per sample (frequency / sample rate).
func (p *Phase) SetIncrement(inc float32) {
	p.inc = inc
}

// Increment returns the current phase step.
func (p *Phase) Increment() float32 {
	return p.inc
}

// SetValue sets the phase (wrapped to 0-1)
func (p *Phase) SetValue(phase float32) {
	p.value = phase - math32.Floor(phase)
}

// Value returns the current phase.
func (p *Phase) Value() float32 {
	return p.value
}

// Reset resets the phase to 0
func (p *Phase) Reset() {
	p.value = 0
}

// Step advances the phase by one sample.
func (p *Phase) Step() {
	p.value = Advance(p.value, p.inc)
}
