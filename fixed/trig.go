// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package fixed

// trig.go implements sin/cos/asin/acos over a 128-entry quarter-turn lookup
// table, the fixed point replacement for math.Sin/Cos/Asin/Acos. An angle
// is a Scalar where F represents one full turn (2*pi radians), so a
// quarter turn is exactly F/4 = 128 units when F is 512 - the table is
// sized to match one table entry per quarter-turn unit, needing no
// interpolation.

// quarterSine holds sin(i * (pi/2) / quarterTurn) * F for i in
// [0, quarterTurn], generated once offline (not at runtime) so the engine
// never performs floating point work.
var quarterSine = [quarterTurn + 1]Scalar{
	0, 6, 13, 19, 25, 31, 38, 44, 50, 56, 63, 69, 75, 81, 88, 94,
	100, 106, 112, 118, 124, 130, 137, 143, 149, 155, 161, 167, 172, 178, 184, 190,
	196, 202, 207, 213, 219, 225, 230, 236, 241, 247, 252, 258, 263, 269, 274, 279,
	284, 290, 295, 300, 305, 310, 315, 320, 325, 330, 334, 339, 344, 348, 353, 358,
	362, 366, 371, 375, 379, 384, 388, 392, 396, 400, 404, 407, 411, 415, 419, 422,
	426, 429, 433, 436, 439, 442, 445, 449, 452, 454, 457, 460, 463, 465, 468, 471,
	473, 475, 478, 480, 482, 484, 486, 488, 490, 492, 493, 495, 497, 498, 500, 501,
	502, 503, 504, 505, 506, 507, 508, 509, 510, 510, 511, 511, 511, 512, 512, 512,
	512,
}

// quarterTurn is F/4: the table size and the width of one quadrant.
const quarterTurn = F / 4

// Sin returns sin(angle) scaled by F, for angle in fixed-point turn units
// (F is a full turn). The result is in [-F, F].
func Sin(angle Scalar) Scalar {
	a := Wrap(angle, F)
	quadrant := a / quarterTurn
	rem := a % quarterTurn
	switch quadrant {
	case 0:
		return quarterSine[rem]
	case 1:
		return quarterSine[quarterTurn-rem]
	case 2:
		return -quarterSine[rem]
	default: // 3
		return -quarterSine[quarterTurn-rem]
	}
}

// Cos returns cos(angle) scaled by F, via the identity cos(a) = sin(a + F/4).
func Cos(angle Scalar) Scalar { return Sin(angle + quarterTurn) }

// Asin returns the angle (in fixed-point turn units, in [-F/4, F/4]) whose
// sine is y, via binary search over the monotonic first-quadrant table for
// the last entry not above y, so Asin(F) is exactly F/4.
// y is clamped to [-F, F].
func Asin(y Scalar) Scalar {
	y = Clamp(y, -F, F)
	neg := y < 0
	if neg {
		y = -y
	}
	lo, hi := Scalar(0), Scalar(quarterTurn)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if quarterSine[mid] <= y {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	if neg {
		return -lo
	}
	return lo
}

// Acos returns the angle (in fixed-point turn units, in [0, F/2]) whose
// cosine is x, via the identity acos(x) = F/4 - asin(x).
func Acos(x Scalar) Scalar { return quarterTurn - Asin(x) }

// Atan2 returns the angle (in fixed-point turn units, in (-F/2, F/2]) of
// the point (x,y), via acos of the normalized x component with the sign
// resolved from y. Returns 0 for the origin.
func Atan2(y, x Scalar) Scalar {
	r := Scalar(isqrt64(uint64(int64(x)*int64(x) + int64(y)*int64(y))))
	if r == 0 {
		return 0
	}
	angle := Acos(Div(x, r))
	if y < 0 {
		return -angle
	}
	return angle
}
