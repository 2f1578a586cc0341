// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tpe

import "github.com/kelvinrad/tinyphys/fixed"

// collision.go : broad.go + collider.go counterpart, reworked from the
// teacher's GJK/EPA convex-hull pipeline (physics/broad.go, gjk.go,
// epa.go, clipping.go) down to the spec's much simpler joint-vs-joint
// sphere test (spec §4.6): the joint graph representation means every
// collision is sphere-sphere, so no separating-axis or Minkowski-sum
// machinery is needed.
//
// Pair iteration is in ascending (bodyIndex, jointIndex) order and
// impulses are applied immediately rather than accumulated to convergence
// (spec §9, "Open question: collision response ordering") - this ordering
// must be preserved exactly to reproduce the reference world hash.

// resolveCollisions detects and responds to every colliding joint pair in
// the world: between joints of distinct bodies, and, for SOFT bodies
// without SIMPLE_CONN, between non-connected joints of the same body
// (spec §4.6).
func (w *World) resolveCollisions() {
	n := len(w.Bodies)
	for i := 0; i < n; i++ {
		bi := w.Bodies[i]
		// Each pair is gated on its own two bodies, not on bi alone: an
		// inactive lower-indexed body must still be checked against an
		// active higher-indexed one (spec §4.8 step 4, "at least one
		// active"), otherwise a static or sleeping body at a low index
		// permanently hides every pair below it in the loop.
		for j := i + 1; j < n; j++ {
			bj := w.Bodies[j]
			if !bi.IsActive() && !bj.IsActive() {
				continue
			}
			w.resolveBodyPair(i, bi, j, bj)
		}
		if bi.IsActive() && bi.Flags&Soft != 0 && bi.Flags&SimpleConn == 0 {
			w.resolveSelfCollision(i, bi)
		}
	}
}

// resolveBodyPair handles one (i<j) body pair: a bounding-sphere reject,
// then an ascending joint-index scan.
func (w *World) resolveBodyPair(i int, bi *Body, j int, bj *Body) {
	ci, cj := bi.GetCenterOfMass(), bj.GetCenterOfMass()
	if ci.Dist(&cj) > bi.BoundingRadius()+bj.BoundingRadius() {
		return
	}
	for ji := range bi.Joints {
		for jj := range bj.Joints {
			w.resolveJointPair(i, bi, ji, j, bj, jj)
		}
	}
}

// resolveSelfCollision handles a single SOFT body's non-connected joints
// against each other, to prevent self-tunneling (spec §4.6). No temporary
// storage is allocated; directness is favored over an adjacency cache
// since bodies have only a handful of joints.
func (w *World) resolveSelfCollision(i int, b *Body) {
	n := len(b.Joints)
	for ja := 0; ja < n; ja++ {
		for jz := ja + 1; jz < n; jz++ {
			if isConnected(b, uint16(ja), uint16(jz)) {
				continue
			}
			w.resolveJointPair(i, b, ja, i, b, jz)
		}
	}
}

func isConnected(b *Body, ja, jz uint16) bool {
	for _, c := range b.Connections {
		if (c.J1 == ja && c.J2 == jz) || (c.J1 == jz && c.J2 == ja) {
			return true
		}
	}
	return false
}

// resolveJointPair detects and, if colliding, responds to the pair
// (bodyI, jointI) / (bodyJ, jointJ). It is the single ordered unit of
// work spec §9's ascending-index contract describes.
func (w *World) resolveJointPair(bi int, a *Body, ji int, bj int, b *Body, jj int) {
	j1, j2 := &a.Joints[ji], &b.Joints[jj]
	var diff fixed.V3
	diff.Sub(&j2.Position, &j1.Position)
	d := diff.Len()
	sizeSum := j1.Size() + j2.Size()
	if d >= sizeSum {
		return
	}

	var normal fixed.V3
	normal.Normalize(&diff)
	var contact fixed.V3
	contact.Lerp(&j1.Position, &j2.Position, fixed.Div(j1.Size(), fixed.NonZero(sizeSum)))

	if w.OnCollision != nil && !w.OnCollision(bi, ji, bj, jj, contact) {
		return
	}

	// Waking happens after detection, before response (spec §4.7): a
	// collision involving a sleeping body wakes it.
	a.wake()
	if b != a {
		b.wake()
	}

	overlap := sizeSum - d

	m1, m2 := invMass(a), invMass(b)
	totalInv := m1 + m2
	if totalInv == 0 {
		return // both bodies static; nothing can move.
	}

	// 1. Separation: push each joint along the collision normal by its
	// share of the overlap, weighted inversely by body mass.
	share1 := fixed.Div(m1, totalInv)
	share2 := fixed.Div(m2, totalInv)
	var push1, push2 fixed.V3
	push1.Scale(&normal, -fixed.Mul(overlap, share1))
	push2.Scale(&normal, fixed.Mul(overlap, share2))
	if !j1.pinned {
		j1.Position.Add(&j1.Position, &push1)
	}
	if !j2.pinned {
		j2.Position.Add(&j2.Position, &push2)
	}

	// 2. Velocity exchange along the normal.
	v1, v2 := j1.Velocity(), j2.Velocity()
	var rel fixed.V3
	rel.Sub(&v2, &v1)
	vrel := rel.Dot(&normal)
	if vrel >= 0 {
		return // already separating.
	}

	elasticity := fixed.Min(a.Elasticity, b.Elasticity)
	impulse := fixed.Div(-fixed.Mul(F+elasticity, vrel), fixed.NonZero(totalInv))

	var dv1, dv2 fixed.V3
	dv1.Scale(&normal, -fixed.Mul(impulse, m1))
	dv2.Scale(&normal, fixed.Mul(impulse, m2))
	v1.Add(&v1, &dv1)
	v2.Add(&v2, &dv2)

	// 3. Friction: damp each joint's own tangential velocity (relative to
	// the collision normal) by the minimum of the two bodies' friction
	// coefficients (spec §9, "Open question: friction model" - a uniform
	// tangential scale, not a Coulomb clamp, is the reference behavior).
	friction := fixed.Min(a.Friction, b.Friction)
	dampTangential(&v1, &normal, friction)
	dampTangential(&v2, &normal, friction)

	if !j1.pinned {
		j1.SetVelocity(v1)
	}
	if !j2.pinned {
		j2.SetVelocity(v2)
	}
}

// dampTangential scales the component of v perpendicular to normal by
// (1-friction), leaving the normal component untouched. Used to apply the
// reference friction model independently to each colliding joint.
func dampTangential(v *fixed.V3, normal *fixed.V3, friction fixed.Scalar) {
	vn := v.Dot(normal)
	var normalComponent, tangential fixed.V3
	normalComponent.Scale(normal, vn)
	tangential.Sub(v, &normalComponent)
	tangential.Scale(&tangential, F-friction)
	v.Add(&normalComponent, &tangential)
}

// invMass returns the body's inverse mass for impulse weighting (0 for a
// static body, spec §4.6 step 3: "mi is the body mass, not the joint
// mass").
func invMass(b *Body) fixed.Scalar {
	if b.IsStatic() {
		return 0
	}
	return fixed.Div(F, b.Mass)
}
