// Package sequence generates the Thue–Morse bit sequence and folds it into
// the 8-bit register that drives the oscillator's target levels.
package sequence

import "math/bits"

// Bit returns the Thue–Morse bit at position n: the parity of the number of
// one bits in n. This is the closed form of the halving recurrence
// t(0)=0, t(2k)=t(k), t(2k+1)=1-t(k), so it runs in constant stack depth
// for any index.
func Bit(n uint64) uint8 {
	return uint8(bits.OnesCount64(n) & 1)
}

// Word packs the eight bits starting at position start into a byte, oldest
// bit in the most significant position.
func Word(start uint64) uint8 {
	var w uint8
	for i := uint64(0); i < 8; i++ {
		w = PushBit(w, Bit(start+i))
	}
	return w
}
