// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tpe

import "github.com/kelvinrad/tinyphys/fixed"

// body.go : physics/body.go counterpart. Body is the joint-connection graph
// representation spec §3 describes in place of the teacher's oriented,
// inertia-tensor rigid body (physics/body.go): no moment of inertia,
// bodies rotate "as if spherical", and orientation is estimated from
// joint-pair differences rather than stored (fixed.RotationFromVecs).

// Flag is a bitmask of per-body behavior switches (spec §3, "Body").
type Flag uint8

const (
	// AlwaysActive suppresses deactivation regardless of motion.
	AlwaysActive Flag = 1 << iota
	// NonRotating marks a body whose orientation should not be estimated
	// (rendered as a point or billboard rather than with joint-pair axes).
	NonRotating
	// Disabled removes a body from integration, solving and collision
	// entirely, without the implicit wake semantics DEACTIVATED has.
	Disabled
	// Soft marks a body that skips the reshape solver; its form is held
	// only dynamically, by velocities from previous collisions.
	Soft
	// SimpleConn disables self-collision between a soft body's
	// non-connected joints.
	SimpleConn
	// Deactivated suppresses integration and solver work until an
	// external force or collision wakes the body.
	Deactivated
)

// Infinity is the body mass sentinel denoting a static, immovable body.
const Infinity = fixed.Infinity

// Body is a joint graph with mass, flags, and tuning coefficients (spec
// §3, "Body"). Joints and Connections are owned and allocated by the
// caller; Body only ever mutates them in place - no operation in this
// package allocates during simulation.
type Body struct {
	Joints      []Joint
	Connections []Connection

	Mass       fixed.Scalar // Infinity means static.
	Friction   fixed.Scalar // nominally 0..F
	Elasticity fixed.Scalar // nominally 0..F
	Flags      Flag

	activityCounter int32
	boundingRadius  fixed.Scalar
}

// Init assigns joints and connections to the body, computes each
// connection's target length from the joints' current positions (the
// body is assumed to be in its canonical rest shape at construction, spec
// invariant 2), computes the bounding-sphere radius (invariant 4), and
// sets the body fully active (spec §4.4, "init").
func (b *Body) Init(joints []Joint, connections []Connection, mass fixed.Scalar) {
	b.Joints = joints
	b.Connections = connections
	b.Mass = mass
	b.activityCounter = 0
	b.Flags &^= Deactivated

	for i := range b.Connections {
		c := &b.Connections[i]
		d := b.Joints[c.J2].Position.Dist(&b.Joints[c.J1].Position)
		c.SetLength(d)
	}
	b.recomputeBoundingRadius()
}

func (b *Body) recomputeBoundingRadius() {
	center := b.GetCenterOfMass()
	radius := fixed.Scalar(0)
	for i := range b.Joints {
		d := b.Joints[i].Position.Dist(&center) + b.Joints[i].Size()
		if d > radius {
			radius = d
		}
	}
	b.boundingRadius = radius
}

// BoundingRadius returns the body's bounding-sphere radius, computed at
// Init time (spec invariant 4).
func (b *Body) BoundingRadius() fixed.Scalar { return b.boundingRadius }

// IsStatic returns true if the body has infinite mass (spec invariant 6).
func (b *Body) IsStatic() bool { return b.Mass == Infinity }

// jointMass returns the per-joint share of the body's total mass (spec
// invariant 5, "uniform per-joint mass").
func (b *Body) jointMass() fixed.Scalar {
	if b.IsStatic() || len(b.Joints) == 0 {
		return Infinity
	}
	return b.Mass / fixed.Scalar(len(b.Joints))
}

// wake resets the activity counter and clears Deactivated. MoveBy, MoveTo,
// RotateByAxis, Spin, Accelerate, Pin and Activate call it; Stop,
// MultiplyNetSpeed and ApplyGravity do not.
func (b *Body) wake() {
	b.activityCounter = 0
	b.Flags &^= Deactivated
}

// MoveBy translates every joint of the body by delta. Wakes the body.
func (b *Body) MoveBy(delta fixed.V3) {
	for i := range b.Joints {
		b.Joints[i].Position.Add(&b.Joints[i].Position, &delta)
	}
	b.wake()
}

// MoveTo translates the body so its center of mass becomes pos. Wakes the
// body.
func (b *Body) MoveTo(pos fixed.V3) {
	center := b.GetCenterOfMass()
	var delta fixed.V3
	delta.Sub(&pos, &center)
	b.MoveBy(delta)
}

// RotateByAxis rotates every joint position around the body's center of
// mass by angle (fixed-point turn units) around axis. Wakes the body.
func (b *Body) RotateByAxis(axis fixed.V3, angle fixed.Scalar) {
	center := b.GetCenterOfMass()
	var q fixed.Q
	q.SetAxisAngle(&axis, angle)
	for i := range b.Joints {
		var offset, rotated fixed.V3
		offset.Sub(&b.Joints[i].Position, &center)
		fixed.RotatePoint(&rotated, &offset, &q)
		b.Joints[i].Position.Add(&center, &rotated)
	}
	b.wake()
}

// Spin distributes the tangential velocity of angular velocity vector
// angVel (direction is the rotation axis, magnitude the angular speed) to
// every joint according to its offset from the center of mass: v +=
// angVel x offset. Wakes the body.
func (b *Body) Spin(angVel fixed.V3) {
	center := b.GetCenterOfMass()
	for i := range b.Joints {
		var offset, tangential fixed.V3
		offset.Sub(&b.Joints[i].Position, &center)
		tangential.Cross(&angVel, &offset)
		b.Joints[i].AddVelocity(tangential)
	}
	b.wake()
}

// Accelerate adds dv to every joint's velocity uniformly. Wakes the body.
func (b *Body) Accelerate(dv fixed.V3) {
	for i := range b.Joints {
		b.Joints[i].AddVelocity(dv)
	}
	b.wake()
}

// Stop zeroes the linear velocity of every joint.
func (b *Body) Stop() {
	for i := range b.Joints {
		b.Joints[i].SetVelocity(fixed.V3{})
	}
}

// Deactivate forces the body to DEACTIVATED immediately, bypassing the
// quiet-frame counter.
func (b *Body) Deactivate() {
	b.Flags |= Deactivated
	b.Stop()
}

// Activate wakes the body as if touched externally.
func (b *Body) Activate() { b.wake() }

// IsActive returns true if the body currently participates in
// integration, solving and collision (spec §4.7): ALWAYS_ACTIVE bodies
// and non-deactivated bodies are active; DISABLED and DEACTIVATED bodies
// are not.
func (b *Body) IsActive() bool {
	if b.Flags&Disabled != 0 {
		return false
	}
	if b.Flags&AlwaysActive != 0 {
		return true
	}
	return b.Flags&Deactivated == 0
}

// GetCenterOfMass returns the average of the joint positions (spec §4.4:
// uniform per-joint mass makes this a plain average).
func (b *Body) GetCenterOfMass() fixed.V3 {
	var sum fixed.V3
	for i := range b.Joints {
		sum.Add(&sum, &b.Joints[i].Position)
	}
	if len(b.Joints) == 0 {
		return sum
	}
	n := fixed.Scalar(len(b.Joints))
	return fixed.V3{X: sum.X / n, Y: sum.Y / n, Z: sum.Z / n}
}

// GetRotation returns the Euler-angle estimate of the body's orientation,
// derived from the difference of joint jForward and jOrigin (forward
// axis) and joint jRight and jOrigin (right axis). Meaningful only for
// bodies with three or more joints arranged by the caller (spec §4.2).
func (b *Body) GetRotation(jOrigin, jForward, jRight int) (x, y, z fixed.Scalar) {
	var forward, right fixed.V3
	forward.Sub(&b.Joints[jForward].Position, &b.Joints[jOrigin].Position)
	right.Sub(&b.Joints[jRight].Position, &b.Joints[jOrigin].Position)
	return fixed.RotationFromVecs(&forward, &right)
}

// GetAverageSpeed returns the sum of the per-joint velocity magnitudes
// (spec §4.4: despite the name, this is documented as a sum, not a mean).
func (b *Body) GetAverageSpeed() fixed.Scalar {
	total := fixed.Scalar(0)
	for i := range b.Joints {
		v := b.Joints[i].Velocity()
		total += v.Len()
	}
	return total
}

// MultiplyNetSpeed scales every joint's velocity by factor (fixed-point).
func (b *Body) MultiplyNetSpeed(factor fixed.Scalar) {
	for i := range b.Joints {
		v := b.Joints[i].Velocity()
		v.Scale(&v, factor)
		b.Joints[i].SetVelocity(v)
	}
}

// ApplyGravity adds -g to every joint's Y velocity, unless the body is
// static.
func (b *Body) ApplyGravity(g fixed.Scalar) {
	if b.IsStatic() {
		return
	}
	for i := range b.Joints {
		v := b.Joints[i].Velocity()
		v.Y -= g
		b.Joints[i].SetVelocity(v)
	}
}

// Pin forces joint index j to pos and zeroes its velocity, marking it
// pinned so the reshape solver gives it no correction (used for kinematic
// anchors such as pendulum tops, spec §4.4). Wakes the body.
func (b *Body) Pin(j int, pos fixed.V3) {
	b.Joints[j].Position = pos
	b.Joints[j].SetVelocity(fixed.V3{})
	b.Joints[j].pinned = true
	b.wake()
}

// Unpin releases a joint previously fixed by Pin, allowing the solver to
// move it again.
func (b *Body) Unpin(j int) { b.Joints[j].pinned = false }
