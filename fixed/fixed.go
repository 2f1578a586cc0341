// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package fixed provides a fixed-point math library that includes scalars,
// vectors, quaternions, matrices, and rotation helpers. It exists so that
// physics simulation produces bit-identical results across platforms,
// independent of each platform's floating point semantics.
//
// Package fixed is provided as part of the tinyphys physics engine.
package fixed

// Design Notes:
//
// 1) All quantities (length, time, mass, velocity, angle) share one fixed
//    point denominator F. A full turn of angle is F units, same as 1.0 of
//    any other normalized quantity.
//
// 2) This mirrors the teacher math/lin library's calling convention:
//    methods mutate and return their receiver, New* allocates, nothing
//    else does. The difference is the underlying scalar: int32 fixed point
//    instead of float64, so that results are identical on every platform.
//
// 3) Multiplying two normalized scalars divides by F; dividing multiplies
//    the numerator by F first. Both compute the intermediate product in
//    int64 and narrow only the final result, so no pre-scaling is needed.

// Scalar is a fixed-point number: the integer value N represents N/F of a
// unit (length, time, mass, velocity or angle). F itself represents 1.0.
type Scalar int32

// F is the fixed-point denominator: the integer value of 1.0 of any
// normalized quantity, including one full turn of angle.
const F Scalar = 512

// Infinity marks a body as having infinite mass (static, immovable).
const Infinity Scalar = 1<<31 - 1

// Half is F/2, used throughout as the half-turn / 0.5 constant.
const Half Scalar = F / 2

// Pi is the value of the mathematical constant pi scaled by F, used only
// by helpers (fakeSphereRotation) that relate a turn-scaled angle to a
// radian-scaled arc length.
const Pi Scalar = 1608

// Mul multiplies two normalized scalars, dividing the product by F.
func Mul(a, b Scalar) Scalar { return Scalar(int64(a) * int64(b) / int64(F)) }

// Div divides normalized scalar a by b, multiplying the numerator by F
// first. b is hardened with NonZero so division by zero never occurs.
func Div(a, b Scalar) Scalar { return Scalar(int64(a) * int64(F) / int64(NonZero(b))) }

// NonZero returns x, or 1 if x is zero. Used to harden divisions in hot
// paths where the algebra guarantees "rarely zero" but not "never zero".
func NonZero(x Scalar) Scalar {
	if x == 0 {
		return 1
	}
	return x
}

// Abs returns the absolute value of x.
func Abs(x Scalar) Scalar {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x Scalar) Scalar {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Clamp restricts v to the closed interval [lo, hi].
func Clamp(v, lo, hi Scalar) Scalar {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Min returns the smaller of a and b.
func Min(a, b Scalar) Scalar {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Scalar) Scalar {
	if a > b {
		return a
	}
	return b
}

// Lerp returns the linear interpolation of a to b by the normalized ratio t
// (0 is a, F is b).
func Lerp(a, b, t Scalar) Scalar { return a + Mul(b-a, t) }

// Wrap returns a value in [0, m) congruent to v modulo m, regardless of the
// sign of v.
func Wrap(v, m Scalar) Scalar {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// TimesAntiZero multiplies a and b like Mul, except that when the exact
// product would round to zero while both operands are non-zero, it returns
// a signed 1 instead of 0. Used to avoid silently cancelling small
// rotations/energies in hot paths.
func TimesAntiZero(a, b Scalar) Scalar {
	product := int64(a) * int64(b)
	r := Scalar(product / int64(F))
	if r == 0 && product != 0 {
		if product > 0 {
			return 1
		}
		return -1
	}
	return r
}

// Sqrt returns floor(sqrt(x)) for x >= 0 using the bit-by-bit integer
// square root of isqrt64. For x < 0 it returns -Sqrt(-x), a convenience for
// callers that have already decided the sign of the result.
func Sqrt(x Scalar) Scalar {
	if x < 0 {
		return -Sqrt(-x)
	}
	return Scalar(isqrt64(uint64(x)))
}

// isqrt64 returns floor(sqrt(v)), used both by Sqrt and by vector length
// (which needs a 64 bit intermediate sum of squares). Bit-by-bit integer
// square root: builds the result one bit at a time, from the most
// significant bit down, same approach a microcontroller without hardware
// sqrt would use.
func isqrt64(v uint64) uint64 {
	if v == 0 {
		return 0
	}
	var remainder, bit uint64
	bit = 1 << 62
	for bit > v {
		bit >>= 2
	}
	for bit != 0 {
		if v >= remainder+bit {
			v -= remainder + bit
			remainder = remainder>>1 + bit
		} else {
			remainder >>= 1
		}
		bit >>= 2
	}
	return remainder
}
