package numeric

import (
	"cmp"

	"github.com/chewxy/math32"
)

// Clamp restricts v to the closed interval [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt is Clamp specialized for int, kept separate so hot loops
// inline it without generic instantiation overhead.
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampUint8 rounds v to the nearest integer and clamps it to [0, 255].
func ClampUint8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// ClampUnit clamps v to [0, 1]. NaN maps to 0.
func ClampUnit(v float32) float32 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// SafeReciprocal returns 1/x, treating a zero denominator as 1.
func SafeReciprocal(x float32) float32 {
	if x == 0 {
		return 1
	}
	return 1 / x
}

// FixedCoeff scales c by 2^precision and rounds it to the nearest integer.
// Used to derive integer multipliers for shift-based fixed-point arithmetic.
func FixedCoeff(c float32, precision uint) int32 {
	return int32(math32.Round(c * float32(int32(1)<<precision)))
}
