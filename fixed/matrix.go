// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package fixed

// matrix.go is the fixed-point counterpart of the teacher math/lin
// matrix.go, restricted to the 3x3 rotation matrix the engine needs to
// rotate points by a quaternion (quaternionToRotationMatrix, §4.2).

// M3 is a 3x3 matrix where the elements are individually addressable.
type M3 struct {
	Xx, Xy, Xz Scalar // indices 0, 1, 2  [00, 01, 02]  X-Axis
	Yx, Yy, Yz Scalar // indices 3, 4, 5  [10, 11, 12]  Y-Axis
	Zx, Zy, Zz Scalar // indices 6, 7, 8  [20, 21, 22]  Z-Axis
}

// M3I is the 3x3 identity matrix.
var M3I = M3{Xx: F, Yy: F, Zz: F}

// SetQuaternion updates matrix m to be the rotation matrix representing
// the rotation described by unit quaternion q. All products are divided
// by F. Returns m.
func (m *M3) SetQuaternion(q *Q) *M3 {
	xx, yy, zz := Mul(q.X, q.X), Mul(q.Y, q.Y), Mul(q.Z, q.Z)
	xy, xz, yz := Mul(q.X, q.Y), Mul(q.X, q.Z), Mul(q.Y, q.Z)
	wx, wy, wz := Mul(q.W, q.X), Mul(q.W, q.Y), Mul(q.W, q.Z)
	m.Xx, m.Xy, m.Xz = F-2*(yy+zz), 2*(xy-wz), 2*(xz+wy)
	m.Yx, m.Yy, m.Yz = 2*(xy+wz), F-2*(xx+zz), 2*(yz-wx)
	m.Zx, m.Zy, m.Zz = 2*(xz-wy), 2*(yz+wx), F-2*(xx+yy)
	return m
}
