// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package softfloat implements single-precision floating-point primitives
// by direct manipulation of the IEEE-754 bit pattern, so that results are
// reproducible regardless of the hardware intrinsics available.
package softfloat

import (
	mu "github.com/avdva/softfloat/internal/mathutil"
)

const (
	two25  float32 = 1 << 25         // 0x4c000000
	twom25 float32 = 1.0 / (1 << 25) // 0x33000000
	huge   float32 = 1e30
	tiny   float32 = 1e-30

	// shifts beyond this magnitude saturate regardless of x,
	// and checking them first keeps n+k from wrapping.
	maxShift = 50000
)

// Scalbnf returns x × 2**n, computed on the exponent field of x.
// Results are rounded once, to nearest, and carry the sign of x.
//
// Special cases are:
//
//	Scalbnf(±0, n) = ±0
//	Scalbnf(±Inf, n) = ±Inf
//	Scalbnf(NaN, n) = NaN
//	Scalbnf(x, n) = ±Inf if x × 2**n overflows
//	Scalbnf(x, n) = ±0 if x × 2**n rounds to zero
func Scalbnf(x float32, n int) float32 {
	ix := mu.Word(x)
	hx := ix & mu.AbsMask
	k := mu.Exp(hx)

	if mu.IsZero(hx) {
		return x
	}
	if !mu.IsFinite(hx) {
		return x + x // NaN or Inf
	}
	if mu.IsSubnormal(hx) {
		x *= two25
		ix = mu.Word(x)
		k = mu.Exp(ix) - 25
		if n < -maxShift {
			return tiny * x // underflow
		}
	}
	k += n
	if k > mu.LargestExp {
		return huge * mu.Copysign(huge, x) // overflow
	}
	if k > 0 {
		return mu.FromWord(mu.WithExp(ix, k))
	}
	if k < mu.SmallestExp {
		if n > maxShift { // n+k wrapped around
			return huge * mu.Copysign(huge, x)
		}
		return tiny * mu.Copysign(tiny, x)
	}
	// subnormal result
	return mu.FromWord(mu.WithExp(ix, k+25)) * twom25
}
