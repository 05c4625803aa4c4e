package sequence

import (
	"maze.io/x/math32"

	"github.com/justyntemme/thuemorse/pkg/dsp"
)

// PushBit shifts reg left by one (the top bit falls off) and stores bit in
// the low position. Only the low bit of bit is used.
func PushBit(reg, bit uint8) uint8 {
	return reg<<1 | bit&1
}

// Normalize maps the unsigned register value onto [0, 1].
func Normalize(reg uint8) float32 {
	return float32(reg) / 255
}

// ToTarget shapes a normalized register value into a level in [-1, 1]
// with sin(2πv).
func ToTarget(v float32) float32 {
	return math32.Sin(float32(dsp.TwoPi) * v)
}

// Accumulator walks the sequence one bit at a time and keeps the last eight
// bits in a shift register. The index only ever grows.
type Accumulator struct {
	index    uint64
	register uint8
}

// Seed rewinds to the start of the sequence, loads the first eight bits and
// returns the level they select. Afterwards Index is 8.
func (a *Accumulator) Seed() float32 {
	a.index = 0
	a.register = 0
	var target float32
	for i := 0; i < 8; i++ {
		target = a.Next()
	}
	return target
}

// Next folds the next sequence bit into the register and returns the new
// target level.
func (a *Accumulator) Next() float32 {
	a.register = PushBit(a.register, Bit(a.index))
	a.index++
	return ToTarget(Normalize(a.register))
}

// Index returns the position of the next bit to be fetched.
func (a *Accumulator) Index() uint64 {
	return a.index
}

// Register returns the current shift register contents.
func (a *Accumulator) Register() uint8 {
	return a.register
}
