// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package env implements the engine's environment API: a closest-point
// contract that stands in for mesh or BSP collision (spec §4.3). An
// environment is a pure function from a query point (and an advisory
// search radius) to the closest point on the environment surface, or the
// query point itself when it is already inside the allowed free region.
// This mirrors the "signed distance field, but only the surface point
// matters" idea the teacher's tools/sdf package sketches for 2D font
// glyphs, generalized here to 3D primitives and composed the way the
// original engine's TPE_ENV_START/NEXT/END macros do: a fold keeping
// whichever primitive's result is closest.
//
// Package env is provided as part of the tinyphys physics engine.
package env

import "github.com/kelvinrad/tinyphys/fixed"

type (
	Vec3   = fixed.V3
	Scalar = fixed.Scalar
)

// Func is a closest-point environment function: given a query point and
// an advisory maximum search distance, it returns the closest point on
// the environment surface, or point itself if point is already free.
type Func func(point Vec3, maxD Scalar) Vec3

// Reduce evaluates every fn in fns and returns whichever result lies
// closest to point. This is the Go rendering of the TPE_ENV_START/
// TPE_ENV_NEXT/TPE_ENV_END fold macros: composition of environment
// primitives is a minimum-distance reduce, not a sum or union of shapes.
func Reduce(point Vec3, maxD Scalar, fns ...Func) Vec3 {
	best := point
	bestDist := Scalar(-1)
	for _, fn := range fns {
		candidate := fn(point, maxD)
		var diff Vec3
		d := diff.Sub(&candidate, &point).Len()
		if bestDist < 0 || d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// BCubeReject returns true if point's maxD-box cannot possibly reach the
// axis-aligned cube of the given center and half side, meaning the caller
// may skip this primitive's exact closest-point computation. Grounded on
// TPE_ENV_BCUBE_TEST (original_source/programs/envaccel.c).
func BCubeReject(point Vec3, maxD Scalar, center Vec3, halfSide Scalar) bool {
	return fixed.Abs(point.X-center.X) > maxD+halfSide ||
		fixed.Abs(point.Y-center.Y) > maxD+halfSide ||
		fixed.Abs(point.Z-center.Z) > maxD+halfSide
}

// BSphereReject returns true if point's maxD-sphere cannot possibly reach
// the bounding sphere of the given center and radius. Grounded on
// TPE_ENV_BSPHERE_TEST.
func BSphereReject(point Vec3, maxD Scalar, center Vec3, radius Scalar) bool {
	var diff Vec3
	diff.Sub(&point, &center)
	return diff.Len() > maxD+radius
}
