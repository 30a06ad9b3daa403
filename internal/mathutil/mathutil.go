// Package mathutil holds the single-precision word layout and the
// classification helpers shared by the scaling code.
package mathutil

import (
	"math"

	"github.com/chewxy/math32"
)

// A single-precision value as a uint32 word:
//
//	s eeeeeeee mmmmmmmmmmmmmmmmmmmmmmm
//	31 30...23 22...................0
const (
	bitsInWord = 32
	ExpBits    = 8
	MantBits   = bitsInWord - ExpBits - 1

	SignMask = 1 << (bitsInWord - 1)
	ExpMask  = (1<<ExpBits - 1) << MantBits
	MantMask = 1<<MantBits - 1
	AbsMask  = SignMask - 1

	Bias = 1<<(ExpBits-1) - 1

	// LargestExp is the largest biased exponent of a finite value.
	LargestExp = 1<<ExpBits - 2
	// SmallestExp is the smallest biased exponent, after renormalization,
	// for which some mantissa still rounds to a nonzero subnormal.
	SmallestExp = -MantBits

	maxFiniteWord = LargestExp<<MantBits | MantMask
	minNormalWord = 1 << MantBits
)

// Word returns the bit pattern of f.
func Word(f float32) uint32 {
	return math.Float32bits(f)
}

// FromWord is the inverse of Word.
func FromWord(w uint32) float32 {
	return math.Float32frombits(w)
}

// Exp returns the biased exponent field of w.
func Exp(w uint32) int {
	return int(w & ExpMask >> MantBits)
}

// Mant returns the mantissa field of w, without the implicit bit.
func Mant(w uint32) uint32 {
	return w & MantMask
}

// Split returns sign, biased exponent and mantissa fields of w.
func Split(w uint32) (neg bool, exp int, mant uint32) {
	return w&SignMask != 0, Exp(w), Mant(w)
}

// FromParts builds a word from its fields.
// exp must be in [0, 255].
func FromParts(neg bool, exp int, mant uint32) uint32 {
	w := uint32(exp)<<MantBits | mant&MantMask
	if neg {
		w |= SignMask
	}
	return w
}

// WithExp replaces the exponent field of w, keeping sign and mantissa.
func WithExp(w uint32, exp int) uint32 {
	return w&^ExpMask | uint32(exp)<<MantBits
}

// The predicates below take the magnitude word, i.e. Word(x) & AbsMask.

// IsZero reports whether hx is ±0.
func IsZero(hx uint32) bool {
	return hx == 0
}

// IsFinite reports whether hx is neither an infinity nor a NaN.
func IsFinite(hx uint32) bool {
	return hx <= maxFiniteWord
}

// IsSubnormal reports whether the exponent field of hx is zero.
// Zero passes too, so test IsZero first.
func IsSubnormal(hx uint32) bool {
	return hx < minNormalWord
}

// Copysign returns a value with the magnitude of f and the sign of sign.
func Copysign(f, sign float32) float32 {
	return math32.Copysign(f, sign)
}
