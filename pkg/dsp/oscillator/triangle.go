package oscillator

import "maze.io/x/math32"

// Triangle looks up a unipolar triangle at phase ratio x:
// 2·|p − floor(p + ½)| with p the fractional part of x. It peaks at 1 on
// p = 0.5 and is 0 at the cycle edges.
func Triangle(x float32) float32 {
	p := x - math32.Floor(x)
	return 2 * math32.Abs(p-math32.Floor(p+0.5))
}

// BipolarTriangle maps Triangle onto [-1, 1].
func BipolarTriangle(x float32) float32 {
	return 2*Triangle(x) - 1
}
