// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package fixed

// quaternion.go is the fixed-point counterpart of the teacher math/lin
// quaternion.go. Layout and receiver conventions match V3: x,y,z,w where
// w is the real part, identity is (0,0,0,F).

// Q is a fixed-point quaternion, used to represent and compose rotations.
type Q struct {
	X Scalar
	Y Scalar
	Z Scalar
	W Scalar
}

// QI is a reference identity quaternion that can be used in comparisons.
var QI = &Q{0, 0, 0, F}

// NewQ returns a new zero quaternion.
func NewQ() *Q { return &Q{} }

// NewQI returns a new identity quaternion.
func NewQI() *Q { return &Q{W: F} }

// Eq (==) returns true if q and r have identical elements.
func (q *Q) Eq(r *Q) bool { return q.X == r.X && q.Y == r.Y && q.Z == r.Z && q.W == r.W }

// SetS (=) sets the quaternion elements to the given values. Returns q.
func (q *Q) SetS(x, y, z, w Scalar) *Q {
	q.X, q.Y, q.Z, q.W = x, y, z, w
	return q
}

// Set (=, copy) sets q's elements to r's. Returns q.
func (q *Q) Set(r *Q) *Q {
	q.X, q.Y, q.Z, q.W = r.X, r.Y, r.Z, r.W
	return q
}

// Inv sets q to the inverse (conjugate, since rotation quaternions are
// unit length) of r. Returns q.
func (q *Q) Inv(r *Q) *Q {
	q.X, q.Y, q.Z, q.W = -r.X, -r.Y, -r.Z, r.W
	return q
}

// Dot returns the dot product of q and r.
func (q *Q) Dot(r *Q) Scalar {
	return Mul(q.X, r.X) + Mul(q.Y, r.Y) + Mul(q.Z, r.Z) + Mul(q.W, r.W)
}

// Len returns the length of q.
func (q *Q) Len() Scalar {
	sq := int64(q.X)*int64(q.X) + int64(q.Y)*int64(q.Y) + int64(q.Z)*int64(q.Z) + int64(q.W)*int64(q.W)
	return Scalar(isqrt64(uint64(sq)))
}

// Unit normalizes q to have length F. q is left unchanged if its length
// is zero. Returns q.
func (q *Q) Unit() *Q {
	length := q.Len()
	if length != 0 {
		q.X, q.Y, q.Z, q.W = Div(q.X, length), Div(q.Y, length), Div(q.Z, length), Div(q.W, length)
	}
	return q
}

// Mult (*) multiplies quaternions r and s, the standard Hamilton product
// with every cross term divided by F, and stores the result in q. Applied
// to a point, the result rotates by s first and then by r. It is safe to
// call q.Mult(q, s) to achieve (*=). Returns q.
func (q *Q) Mult(r, s *Q) *Q {
	x := Mul(r.W, s.X) + Mul(r.X, s.W) + Mul(r.Y, s.Z) - Mul(r.Z, s.Y)
	y := Mul(r.W, s.Y) - Mul(r.X, s.Z) + Mul(r.Y, s.W) + Mul(r.Z, s.X)
	z := Mul(r.W, s.Z) + Mul(r.X, s.Y) - Mul(r.Y, s.X) + Mul(r.Z, s.W)
	w := Mul(r.W, s.W) - Mul(r.X, s.X) - Mul(r.Y, s.Y) - Mul(r.Z, s.Z)
	q.X, q.Y, q.Z, q.W = x, y, z, w
	return q
}

// SetAxisAngle sets q to the rotation of angle (in fixed-point turn units)
// around axis. axis need not be normalized. This is rotationToQuaternion:
// normalize axis, then set q = (sin(angle/2)*axis, cos(angle/2)). Returns q.
func (q *Q) SetAxisAngle(axis *V3, angle Scalar) *Q {
	var unit V3
	unit.Normalize(axis)
	half := angle / 2
	s := Sin(half)
	c := Cos(half)
	q.X, q.Y, q.Z, q.W = Mul(unit.X, s), Mul(unit.Y, s), Mul(unit.Z, s), c
	return q
}

// RotatePoint sets v to p rotated by quaternion q, via the rotation matrix
// derived from q (the q*p*q^-1 sandwich identity is avoided: it is
// numerically worse in fixed point). Returns v.
func RotatePoint(v *V3, p *V3, q *Q) *V3 {
	var m M3
	m.SetQuaternion(q)
	return v.MultMv(&m, p)
}
