package pga

import "math"

// Fast reciprocal estimates in the style of the classic bit-level inverse
// square root, each refined with two Newton-Raphson steps. After refinement
// the relative error is below 1.5*2^-12 across the normal float32 range.
// See https://en.wikipedia.org/wiki/Fast_inverse_square_root

// rsqrtNR estimates 1/sqrt(x). The square is grouped first in the Newton
// step so a zero input overflows it and the result is NaN, never a finite
// artifact of the seed.
func rsqrtNR(x float32) float32 {
	y := math.Float32frombits(0x5f3759df - math.Float32bits(x)>>1)
	h := 0.5 * x
	y *= 1.5 - h*(y*y)
	y *= 1.5 - h*(y*y)
	return y
}

// rcpNR estimates 1/x.
func rcpNR(x float32) float32 {
	y := math.Float32frombits(0x7ef311c3 - math.Float32bits(x))
	y *= 2 - x*y
	y *= 2 - x*y
	return y
}
