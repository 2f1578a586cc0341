// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package fixed

// rotation.go implements the orientation-estimation helpers described by
// spec §4.2/§4.9: a joint-graph body has no stored orientation, so a
// renderable one is reconstructed from two joint-to-joint differences at
// query time (rotationFromVecs), and fakeSphereRotation gives single-joint
// bodies a plausible rolling animation from their motion alone.

// up is the reference vertical axis used to resolve roll when decomposing
// a forward/right pair into Euler angles.
var up = V3{Y: F}

// RotationFromVecs constructs the (x, y, z) Euler angle triple, in
// fixed-point turn units and applied in y, then x, then z order, for the
// orthonormal basis whose forward and right axes are the given vectors.
// Orientation estimation from a soft body uses two joint-to-joint
// differences and is therefore only meaningful when the body has three
// or more joints arranged by the caller (spec §4.2).
func RotationFromVecs(forward, right *V3) (x, y, z Scalar) {
	var f, r V3
	f.Normalize(forward)
	r.Normalize(right)

	// yaw: rotation around Y that aligns the world +Z axis with the
	// projection of forward onto the XZ plane.
	y = Atan2(f.X, f.Z)

	// pitch: rotation around X that tilts forward up or down.
	x = -Asin(Clamp(f.Y, -F, F))

	// roll: compare the right vector against the right vector implied by
	// yaw and pitch alone (no roll), via the up vector orthogonal to both.
	var impliedUp V3
	impliedUp.Cross(&r, &f)
	z = Atan2(impliedUp.Dot(&r), impliedUp.Dot(&up))
	return x, y, z
}

// FakeSphereRotation returns an Euler-angle delta (x, y, z, in fixed-point
// turn units) that would visually roll a sphere of the given radius
// moving, without slipping, from prevPos to currPos over one step. The
// roll axis is perpendicular to both the motion and the reference up
// vector; the returned delta is that unit axis scaled by the rolled angle,
// so its Y component is always 0.
func FakeSphereRotation(prevPos, currPos *V3, radius Scalar) (x, y, z Scalar) {
	var delta V3
	delta.Sub(currPos, prevPos)
	dist := delta.Len()
	if dist == 0 {
		return 0, 0, 0
	}
	var axis V3
	axis.Cross(&up, &delta)
	axis.Normalize(&axis)

	// arcAngle is the rolled angle in turn units: F * dist / (2*pi*radius).
	r := int64(NonZero(radius))
	arcAngle := Scalar(int64(F) * int64(F) * int64(dist) / (2 * r * int64(Pi)))

	x = Mul(axis.X, arcAngle)
	y = Mul(axis.Y, arcAngle)
	z = Mul(axis.Z, arcAngle)
	return x, y, z
}
