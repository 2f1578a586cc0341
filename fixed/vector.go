// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package fixed

// vector.go is the fixed-point counterpart of the teacher math/lin
// vector.go: same receiver conventions (methods mutate and return the
// receiver, New* allocates, nothing else does) over Scalar instead of
// float64.

// V3 is a 3 element fixed-point vector or point.
type V3 struct {
	X Scalar
	Y Scalar
	Z Scalar
}

// NewV3 returns a new zero vector.
func NewV3() *V3 { return &V3{} }

// NewV3S returns a new vector with the given element values.
func NewV3S(x, y, z Scalar) *V3 { return &V3{x, y, z} }

// Eq (==) returns true if v and a have identical elements.
func (v *V3) Eq(a *V3) bool { return v.X == a.X && v.Y == a.Y && v.Z == a.Z }

// SetS (=) sets the vector elements to the given values. Returns v.
func (v *V3) SetS(x, y, z Scalar) *V3 {
	v.X, v.Y, v.Z = x, y, z
	return v
}

// Set (=, copy) sets v's elements to a's. Returns v.
func (v *V3) Set(a *V3) *V3 {
	v.X, v.Y, v.Z = a.X, a.Y, a.Z
	return v
}

// Neg sets v to the negation of a. Returns v.
func (v *V3) Neg(a *V3) *V3 {
	v.X, v.Y, v.Z = -a.X, -a.Y, -a.Z
	return v
}

// Add sets v = a + b. Returns v.
func (v *V3) Add(a, b *V3) *V3 {
	v.X, v.Y, v.Z = a.X+b.X, a.Y+b.Y, a.Z+b.Z
	return v
}

// Sub sets v = a - b. Returns v.
func (v *V3) Sub(a, b *V3) *V3 {
	v.X, v.Y, v.Z = a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return v
}

// Scale sets v = a * s, where s is a normalized fixed-point scalar. Returns v.
func (v *V3) Scale(a *V3, s Scalar) *V3 {
	v.X, v.Y, v.Z = Mul(a.X, s), Mul(a.Y, s), Mul(a.Z, s)
	return v
}

// Dot returns the dot product of v and a.
func (v *V3) Dot(a *V3) Scalar {
	return Mul(v.X, a.X) + Mul(v.Y, a.Y) + Mul(v.Z, a.Z)
}

// Cross sets v = a x b. Returns v.
func (v *V3) Cross(a, b *V3) *V3 {
	x := Mul(a.Y, b.Z) - Mul(a.Z, b.Y)
	y := Mul(a.Z, b.X) - Mul(a.X, b.Z)
	z := Mul(a.X, b.Y) - Mul(a.Y, b.X)
	v.X, v.Y, v.Z = x, y, z
	return v
}

// LenSqr returns the squared Euclidean length of v, fixed-point scaled
// the same way Dot is (divided once by F).
func (v *V3) LenSqr() Scalar { return v.Dot(v) }

// Len returns the Euclidean length of v. Since each component is already
// scaled by F, the fixed-point length is the plain integer square root of
// the raw sum of squares (no additional rescaling needed): if x = X*F then
// x^2+y^2+z^2 = (X^2+Y^2+Z^2)*F^2, whose square root is length*F.
func (v *V3) Len() Scalar {
	sq := int64(v.X)*int64(v.X) + int64(v.Y)*int64(v.Y) + int64(v.Z)*int64(v.Z)
	return Scalar(isqrt64(uint64(sq)))
}

// LenTaxicab returns the Manhattan (L1) length of v.
func (v *V3) LenTaxicab() Scalar { return Abs(v.X) + Abs(v.Y) + Abs(v.Z) }

// Dist returns the Euclidean distance between v and a.
func (v *V3) Dist(a *V3) Scalar {
	var d V3
	return d.Sub(v, a).Len()
}

// DistSqr returns the squared Euclidean distance between v and a.
func (v *V3) DistSqr(a *V3) Scalar {
	var d V3
	return d.Sub(v, a).LenSqr()
}

// Normalize sets v to a unit vector in the direction of a. By convention,
// normalizing the zero vector yields (F,0,0) rather than dividing by zero.
// Returns v.
func (v *V3) Normalize(a *V3) *V3 {
	length := a.Len()
	if length == 0 {
		v.X, v.Y, v.Z = F, 0, 0
		return v
	}
	v.X = Div(a.X, length)
	v.Y = Div(a.Y, length)
	v.Z = Div(a.Z, length)
	return v
}

// Project sets v to the projection of a onto the unit vector base. Returns v.
func (v *V3) Project(a, base *V3) *V3 {
	return v.Scale(base, base.Dot(a))
}

// Lerp sets v to the linear interpolation of a to b by ratio (0 is a, F is b).
// Returns v.
func (v *V3) Lerp(a, b *V3, ratio Scalar) *V3 {
	v.X = Lerp(a.X, b.X, ratio)
	v.Y = Lerp(a.Y, b.Y, ratio)
	v.Z = Lerp(a.Z, b.Z, ratio)
	return v
}

// LineSegmentClosestPoint sets v to the closest point to p lying on the
// segment from a to b. Returns v.
func (v *V3) LineSegmentClosestPoint(a, b, p *V3) *V3 {
	var ab, ap V3
	ab.Sub(b, a)
	ap.Sub(p, a)
	denom := ab.Dot(&ab)
	var t Scalar
	if denom != 0 {
		t = Clamp(Div(ab.Dot(&ap), denom), 0, F)
	}
	return v.Add(a, v.Scale(&ab, t))
}

// MultMv sets v = m * cv, treating cv as a column vector. Returns v.
func (v *V3) MultMv(m *M3, cv *V3) *V3 {
	x := Mul(m.Xx, cv.X) + Mul(m.Xy, cv.Y) + Mul(m.Xz, cv.Z)
	y := Mul(m.Yx, cv.X) + Mul(m.Yy, cv.Y) + Mul(m.Yz, cv.Z)
	z := Mul(m.Zx, cv.X) + Mul(m.Zy, cv.Y) + Mul(m.Zz, cv.Z)
	v.X, v.Y, v.Z = x, y, z
	return v
}
