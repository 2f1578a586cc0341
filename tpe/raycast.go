// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tpe

import "github.com/kelvinrad/tinyphys/fixed"

// raycast.go : caster.go counterpart, generalized from the teacher's
// GJK-ray-vs-hull cast (physics/caster.go) down to the joint graph's
// simpler ray-vs-sphere and ray-vs-environment-function primitives (spec
// §4.8, "Ray cast").

// RayHit describes the result of a successful ray cast.
type RayHit struct {
	Body, Joint int // Joint is -1 for an environment hit.
	Point       fixed.V3
	T           fixed.Scalar
}

// CastBodyRay casts a ray from origin along direction (need not be unit
// length) against every joint of every body in the world, ray-vs-sphere,
// and returns the first hit ordered by ray parameter t. ok is false if no
// body is hit.
func (w *World) CastBodyRay(origin, direction fixed.V3) (hit RayHit, ok bool) {
	var dir fixed.V3
	dir.Normalize(&direction)

	bestT := fixed.Infinity
	for bi, b := range w.Bodies {
		for ji := range b.Joints {
			j := &b.Joints[ji]
			t, hitOK := raySphere(origin, dir, j.Position, j.Size())
			if hitOK && t < bestT {
				bestT = t
				var point fixed.V3
				var scaled fixed.V3
				scaled.Scale(&dir, t)
				point.Add(&origin, &scaled)
				hit = RayHit{Body: bi, Joint: ji, Point: point, T: t}
				ok = true
			}
		}
	}
	return hit, ok
}

// raySphere returns the smallest non-negative t at which the ray
// origin+t*dir (dir unit length) intersects the sphere (center, radius),
// and whether such a t exists.
func raySphere(origin, dir, center fixed.V3, radius fixed.Scalar) (fixed.Scalar, bool) {
	var oc fixed.V3
	oc.Sub(&origin, &center)
	b := oc.Dot(&dir)
	c := oc.Dot(&oc) - fixed.Mul(radius, radius)
	disc := fixed.Mul(b, b) - c
	if disc < 0 {
		return 0, false
	}
	sq := fixed.Sqrt(disc * fixed.F) // disc is divided by F once, like Dot.
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// CastEnvironmentRay marches a ray from origin along direction in steps
// of RayMarchStep, querying the environment function at each step; when a
// step crosses into the environment, the hit is binary-refined (spec
// §4.8). maxDist bounds the march. ok is false if the environment is
// never entered within maxDist.
func (w *World) CastEnvironmentRay(origin, direction fixed.V3, maxDist fixed.Scalar) (point fixed.V3, ok bool) {
	if w.Environment == nil {
		return fixed.V3{}, false
	}
	var dir fixed.V3
	dir.Normalize(&direction)

	var prev fixed.V3 = origin
	for traveled := fixed.Scalar(0); traveled < maxDist; traveled += RayMarchStep {
		var step fixed.V3
		step.Scale(&dir, traveled)
		var cur fixed.V3
		cur.Add(&origin, &step)

		surface := w.Environment(cur, RayMarchStep)
		if !surface.Eq(&cur) {
			return refineHit(w.Environment, prev, cur), true
		}
		prev = cur
	}
	return fixed.V3{}, false
}

// refineHit binary-searches between free point lo and occupied point hi
// for the environment boundary crossing.
func refineHit(envFn func(fixed.V3, fixed.Scalar) fixed.V3, lo, hi fixed.V3) fixed.V3 {
	for i := 0; i < 16; i++ {
		var mid fixed.V3
		mid.Lerp(&lo, &hi, fixed.Half)
		surface := envFn(mid, 1)
		if surface.Eq(&mid) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}
