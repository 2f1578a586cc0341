// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package env

import "github.com/kelvinrad/tinyphys/fixed"

// primitives.go implements the closest-point constructors named in spec
// §4.3: ground plane, half-space, axis-aligned box (outside/inside),
// sphere (outside/inside), finite cylinder, capsule, axis-aligned
// triangular prism, infinite cylinder, heightmap.

// GroundPlane returns the closest-point function for an infinite ground
// plane at height y0: any point above the plane is free; any point at or
// below is projected straight up onto the plane.
func GroundPlane(y0 Scalar) Func {
	return func(point Vec3, maxD Scalar) Vec3 {
		if point.Y >= y0 {
			return point
		}
		return Vec3{X: point.X, Y: y0, Z: point.Z}
	}
}

// HalfSpace returns the closest-point function for the half-space with
// boundary through planePoint, with normal (need not be unit length)
// pointing into the free region.
func HalfSpace(planePoint, normal Vec3) Func {
	var unitNormal Vec3
	unitNormal.Normalize(&normal)
	return func(point Vec3, maxD Scalar) Vec3 {
		var toPoint Vec3
		toPoint.Sub(&point, &planePoint)
		signedDist := toPoint.Dot(&unitNormal)
		if signedDist >= 0 {
			return point
		}
		var projected Vec3
		projected.Scale(&unitNormal, -signedDist)
		projected.Add(&point, &projected)
		return projected
	}
}

// AABoxOutside returns the closest-point function for the outside of an
// axis-aligned box centered at center with the given half-extents: points
// inside the box are projected to the nearest face.
func AABoxOutside(center, halfExtents Vec3) Func {
	return func(point Vec3, maxD Scalar) Vec3 {
		lo := Vec3{X: center.X - halfExtents.X, Y: center.Y - halfExtents.Y, Z: center.Z - halfExtents.Z}
		hi := Vec3{X: center.X + halfExtents.X, Y: center.Y + halfExtents.Y, Z: center.Z + halfExtents.Z}
		if point.X < lo.X || point.X > hi.X ||
			point.Y < lo.Y || point.Y > hi.Y ||
			point.Z < lo.Z || point.Z > hi.Z {
			return point
		}
		// Inside: push out through whichever face is nearest.
		dists := [6]Scalar{
			point.X - lo.X, hi.X - point.X,
			point.Y - lo.Y, hi.Y - point.Y,
			point.Z - lo.Z, hi.Z - point.Z,
		}
		minI := 0
		for i := 1; i < 6; i++ {
			if dists[i] < dists[minI] {
				minI = i
			}
		}
		out := point
		switch minI {
		case 0:
			out.X = lo.X
		case 1:
			out.X = hi.X
		case 2:
			out.Y = lo.Y
		case 3:
			out.Y = hi.Y
		case 4:
			out.Z = lo.Z
		case 5:
			out.Z = hi.Z
		}
		return out
	}
}

// AABoxInside returns the closest-point function for the inside of an
// axis-aligned box: points outside the box are clamped back onto the
// nearest point of the box surface (used for containment volumes, e.g.
// spec §8 property 8's containing room).
func AABoxInside(center, halfExtents Vec3) Func {
	return func(point Vec3, maxD Scalar) Vec3 {
		lo := Vec3{X: center.X - halfExtents.X, Y: center.Y - halfExtents.Y, Z: center.Z - halfExtents.Z}
		hi := Vec3{X: center.X + halfExtents.X, Y: center.Y + halfExtents.Y, Z: center.Z + halfExtents.Z}
		if point.X >= lo.X && point.X <= hi.X &&
			point.Y >= lo.Y && point.Y <= hi.Y &&
			point.Z >= lo.Z && point.Z <= hi.Z {
			return point
		}
		return Vec3{
			X: fixed.Clamp(point.X, lo.X, hi.X),
			Y: fixed.Clamp(point.Y, lo.Y, hi.Y),
			Z: fixed.Clamp(point.Z, lo.Z, hi.Z),
		}
	}
}

// SphereOutside returns the closest-point function for the outside of a
// sphere: points inside are pushed radially out to the surface.
func SphereOutside(center Vec3, radius Scalar) Func {
	return func(point Vec3, maxD Scalar) Vec3 {
		var diff Vec3
		diff.Sub(&point, &center)
		d := diff.Len()
		if d >= radius {
			return point
		}
		var dir Vec3
		dir.Normalize(&diff)
		var out Vec3
		out.Scale(&dir, radius)
		out.Add(&center, &out)
		return out
	}
}

// SphereInside returns the closest-point function for the inside of a
// sphere (a spherical containment volume): points outside are pulled
// radially in to the surface.
func SphereInside(center Vec3, radius Scalar) Func {
	return func(point Vec3, maxD Scalar) Vec3 {
		var diff Vec3
		diff.Sub(&point, &center)
		d := diff.Len()
		if d <= radius {
			return point
		}
		var dir Vec3
		dir.Normalize(&diff)
		var out Vec3
		out.Scale(&dir, radius)
		out.Add(&center, &out)
		return out
	}
}

// Cylinder returns the closest-point function for a finite cylinder
// capped along the Y axis, centered at center, with the given half-height
// and radius.
func Cylinder(center Vec3, halfHeight, radius Scalar) Func {
	return func(point Vec3, maxD Scalar) Vec3 {
		radial := Vec3{X: point.X - center.X, Z: point.Z - center.Z}
		radialLen := radial.Len()
		y := fixed.Clamp(point.Y, center.Y-halfHeight, center.Y+halfHeight)

		insideRadius := radialLen <= radius
		insideHeight := point.Y >= center.Y-halfHeight && point.Y <= center.Y+halfHeight
		if insideRadius && insideHeight {
			return point
		}
		if insideRadius {
			return Vec3{X: point.X, Y: y, Z: point.Z} // beyond a cap: project onto it.
		}

		var dir Vec3
		if radialLen == 0 {
			dir = Vec3{X: F1}
		} else {
			dir.Normalize(&radial)
		}
		var radialOut Vec3
		radialOut.Scale(&dir, radius)
		return Vec3{X: center.X + radialOut.X, Y: y, Z: center.Z + radialOut.Z}
	}
}

// F1 is a one-unit X offset used as a stable fallback axis when a radial
// direction degenerates to zero (point on the cylinder's central axis).
const F1 = fixed.F

// Capsule returns the closest-point function for a capsule: a line
// segment from a to b, thickened by radius.
func Capsule(a, b Vec3, radius Scalar) Func {
	return func(point Vec3, maxD Scalar) Vec3 {
		var closest Vec3
		closest.LineSegmentClosestPoint(&a, &b, &point)
		var diff Vec3
		diff.Sub(&point, &closest)
		d := diff.Len()
		if d <= radius {
			return point
		}
		var dir Vec3
		dir.Normalize(&diff)
		var out Vec3
		out.Scale(&dir, radius)
		out.Add(&closest, &out)
		return out
	}
}

// InfiniteCylinder returns the closest-point function for a cylinder of
// the given radius extending infinitely along axis (need not be unit
// length), passing through center.
func InfiniteCylinder(center, axis Vec3, radius Scalar) Func {
	var unitAxis Vec3
	unitAxis.Normalize(&axis)
	return func(point Vec3, maxD Scalar) Vec3 {
		var toPoint Vec3
		toPoint.Sub(&point, &center)
		along := toPoint.Dot(&unitAxis)
		var axial Vec3
		axial.Scale(&unitAxis, along)
		var radial Vec3
		radial.Sub(&toPoint, &axial)
		radialLen := radial.Len()
		if radialLen <= radius {
			return point
		}
		var dir Vec3
		dir.Normalize(&radial)
		var radialOut Vec3
		radialOut.Scale(&dir, radius)
		var out Vec3
		out.Add(&axial, &radialOut)
		out.Add(&center, &out)
		return out
	}
}

// TriangularPrism returns the closest-point function for a triangle
// (v0,v1,v2) in the XZ plane extruded along Y by the given half-height
// around center.Y, e.g. a wedge-shaped ramp.
func TriangularPrism(center Vec3, v0, v1, v2 Vec3, halfHeight Scalar) Func {
	edges := [3][2]Vec3{{v0, v1}, {v1, v2}, {v2, v0}}
	return func(point Vec3, maxD Scalar) Vec3 {
		y := fixed.Clamp(point.Y, center.Y-halfHeight, center.Y+halfHeight)
		flat := Vec3{X: point.X, Z: point.Z}

		if insideTriangleXZ(flat, v0, v1, v2) && point.Y >= center.Y-halfHeight && point.Y <= center.Y+halfHeight {
			return point
		}
		if insideTriangleXZ(flat, v0, v1, v2) {
			return Vec3{X: point.X, Y: y, Z: point.Z} // beyond a cap: project onto it.
		}

		best := Vec3{X: v0.X, Y: y, Z: v0.Z}
		bestDist := Scalar(-1)
		for _, e := range edges {
			a, b := e[0], e[1]
			a.Y, b.Y = 0, 0
			var c Vec3
			c.LineSegmentClosestPoint(&a, &b, &flat)
			var diff Vec3
			diff.Sub(&c, &flat)
			d := diff.Len()
			if bestDist < 0 || d < bestDist {
				bestDist = d
				best = Vec3{X: c.X, Y: y, Z: c.Z}
			}
		}
		return best
	}
}

// insideTriangleXZ returns true if p lies within the triangle (v0,v1,v2)
// projected onto the XZ plane, via the sign of the three edge cross
// products (same-sign test).
func insideTriangleXZ(p, v0, v1, v2 Vec3) bool {
	sign := func(a, b, c Vec3) Scalar {
		return fixed.Mul(b.X-a.X, c.Z-a.Z) - fixed.Mul(b.Z-a.Z, c.X-a.X)
	}
	d1 := sign(p, v0, v1)
	d2 := sign(p, v1, v2)
	d3 := sign(p, v2, v0)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// Heightmap returns the closest-point function for a regular grid of
// square cells of the given step size, anchored at origin, whose per-node
// height is given by the caller-supplied height function (indexed by
// integer grid coordinates). Mirrors TPE_envHeightmap's contract
// (original_source/programs/heightmap.c): the query's projected (x,z)
// cell is located, height is sampled at its four corners, and the closest
// point on the two corner-split triangles is found. A query on or above
// that point is free and is returned unchanged; one below it gets the
// surface point.
func Heightmap(origin Vec3, step Scalar, height func(x, z int32) Scalar) Func {
	return func(point Vec3, maxD Scalar) Vec3 {
		localX := point.X - origin.X
		localZ := point.Z - origin.Z
		cellX := int32(fixed.Div(localX, step) / fixed.F)
		cellZ := int32(fixed.Div(localZ, step) / fixed.F)
		if localX < 0 {
			cellX--
		}
		if localZ < 0 {
			cellZ--
		}

		corner := func(cx, cz int32) Vec3 {
			return Vec3{
				X: origin.X + Scalar(cx)*step,
				Y: height(cx, cz),
				Z: origin.Z + Scalar(cz)*step,
			}
		}
		c00 := corner(cellX, cellZ)
		c10 := corner(cellX+1, cellZ)
		c01 := corner(cellX, cellZ+1)
		c11 := corner(cellX+1, cellZ+1)

		best := closestOnTriangle(point, c00, c10, c11)
		alt := closestOnTriangle(point, c00, c11, c01)
		var d1, d2 Vec3
		if d1.Sub(&best, &point).Len() > d2.Sub(&alt, &point).Len() {
			best = alt
		}
		if point.Y >= best.Y {
			return point
		}
		return best
	}
}

// closestOnTriangle returns the closest point to p on triangle (a,b,c): the
// perpendicular projection of p onto the triangle's plane, if that
// projection falls within the triangle, otherwise the nearest point on one
// of its three edges.
func closestOnTriangle(p, a, b, c Vec3) Vec3 {
	var ab, ac, normal Vec3
	ab.Sub(&b, &a)
	ac.Sub(&c, &a)
	normal.Cross(&ab, &ac)
	if normLenSq := normal.Dot(&normal); normLenSq != 0 {
		var ap Vec3
		ap.Sub(&p, &a)
		t := fixed.Div(ap.Dot(&normal), normLenSq)
		var offset, projected Vec3
		offset.Scale(&normal, t)
		projected.Sub(&p, &offset)
		if insideTriangleXZ(projected, a, b, c) {
			return projected
		}
	}

	candidates := [3]Vec3{}
	var c0, c1, c2 Vec3
	c0.LineSegmentClosestPoint(&a, &b, &p)
	c1.LineSegmentClosestPoint(&b, &c, &p)
	c2.LineSegmentClosestPoint(&c, &a, &p)
	candidates[0], candidates[1], candidates[2] = c0, c1, c2

	best := candidates[0]
	var diff Vec3
	bestDist := diff.Sub(&best, &p).Len()
	for _, cand := range candidates[1:] {
		d := diff.Sub(&cand, &p).Len()
		if d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}
