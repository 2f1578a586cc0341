// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tpe

import (
	"github.com/kelvinrad/tinyphys/env"
	"github.com/kelvinrad/tinyphys/fixed"
)

// solver.go : pbd.go counterpart, generalized from the teacher's
// Position-Based-Dynamics iterative constraint solver
// (physics/pbd.go's constraint-relaxation loop) to the simpler,
// uniform-mass equal-and-opposite distance correction spec §4.5 describes.

// reshape relaxes every connection of a non-SOFT body back toward its
// target length, run once (or ReshapeIterations times) per step. SOFT
// bodies skip this entirely (spec §4.5): their shape is held only by
// velocities from previous collisions.
func reshape(b *Body) {
	if b.Flags&Soft != 0 {
		return
	}
	for iter := 0; iter < ReshapeIterations; iter++ {
		for i := range b.Connections {
			reshapeOne(b, &b.Connections[i])
		}
	}
}

func reshapeOne(b *Body, c *Connection) {
	a, z := &b.Joints[c.J1], &b.Joints[c.J2]

	var d fixed.V3
	d.Sub(&z.Position, &a.Position)
	length := d.Len()
	if length == 0 {
		logger.Warn("zero-length connection during reshape", "j1", c.J1, "j2", c.J2)
		return
	}

	excess := (length - c.Length()) / 2
	dir := fixed.V3{
		X: fixed.Scalar(int64(d.X) * int64(excess) / int64(length)),
		Y: fixed.Scalar(int64(d.Y) * int64(excess) / int64(length)),
		Z: fixed.Scalar(int64(d.Z) * int64(excess) / int64(length)),
	}

	switch {
	case a.pinned && z.pinned:
		// Both ends anchored: nothing can move without breaking the pin.
	case a.pinned:
		z.Position.Sub(&z.Position, &dir)
		z.Position.Sub(&z.Position, &dir)
	case z.pinned:
		a.Position.Add(&a.Position, &dir)
		a.Position.Add(&a.Position, &dir)
	default:
		a.Position.Add(&a.Position, &dir)
		z.Position.Sub(&z.Position, &dir)
	}
}

// resolveEnvironment projects every joint of an active body out of the
// environment, reflecting and damping its velocity by the body's
// elasticity and friction (spec §4.5, second half).
func resolveEnvironment(b *Body, envFn env.Func) {
	for i := range b.Joints {
		j := &b.Joints[i]
		if j.pinned {
			continue
		}
		size := j.Size()
		surface := envFn(j.Position, size)
		if surface.Eq(&j.Position) {
			continue
		}

		var penetration fixed.V3
		penetration.Sub(&surface, &j.Position)
		penLen := penetration.Len()
		var normal fixed.V3
		normal.Normalize(&penetration)

		// normal points from the joint center toward the boundary, i.e. the
		// escape direction; the corrected center sits size beyond the
		// boundary point along that same direction.
		push := penLen + size
		var correction fixed.V3
		correction.Scale(&normal, push)
		j.Position.Add(&j.Position, &correction)

		v := j.Velocity()
		vn := v.Dot(&normal)
		if vn < 0 {
			var normalComponent fixed.V3
			normalComponent.Scale(&normal, vn)
			var tangential fixed.V3
			tangential.Sub(&v, &normalComponent)

			var reflected fixed.V3
			reflected.Scale(&normal, -fixed.Mul(vn, b.Elasticity))
			tangential.Scale(&tangential, F-b.Friction)

			var newVel fixed.V3
			newVel.Add(&tangential, &reflected)
			j.SetVelocity(newVel)
		}
	}
}
