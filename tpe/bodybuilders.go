// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tpe

import "github.com/kelvinrad/tinyphys/fixed"

// bodybuilders.go supplements spec §4.4/§6 ("Body builders") with the
// canonical-shape family named there but not detailed: makeBox,
// makeCenterBox, makeCenterRect, makeCenterRectFull, makeRect, make2Line,
// makeTriangle, grounded on the original engine's demo programs
// (programs/cubes.c, helper.h) which construct bodies this way. Every
// builder fills caller-supplied joint/connection slices in place - no
// allocation occurs here, matching spec §3's lifecycle paragraph - and
// returns the counts it used. The shape is built centered at the origin;
// callers reposition with Body.MoveTo after Body.Init.

// MakeBox fills joints with the 8 corners of a box of the given
// half-extents and jointSize, and connections with its 12 edges plus the
// 4 space diagonals needed for shape rigidity (without them the box can
// collapse into a parallelepiped under one-sided impulses). Returns the
// number of joints and connections used.
func MakeBox(halfExtents fixed.V3, jointSize fixed.Scalar, joints []Joint, connections []Connection) (nJ, nC int) {
	corners := boxCorners(halfExtents)
	for i, c := range corners {
		joints[i].Position = c
		joints[i].SetSize(jointSize)
	}
	nJ = 8

	edges := boxEdges()
	nC = 0
	for _, e := range edges {
		connections[nC].J1, connections[nC].J2 = uint16(e[0]), uint16(e[1])
		nC++
	}
	diagonals := [4][2]int{{0, 7}, {1, 6}, {2, 5}, {3, 4}}
	for _, d := range diagonals {
		connections[nC].J1, connections[nC].J2 = uint16(d[0]), uint16(d[1])
		nC++
	}
	return nJ, nC
}

// MakeCenterBox fills joints with a center joint (index 0, the body's
// centroid) and the 8 box corners (indices 1-8), and connections with a
// spoke from the center to each corner plus the 12 box edges; unlike
// MakeBox it adds no space diagonals. Used for bodies that need a single
// stable point of rotation (e.g. a catapult arm pivot).
func MakeCenterBox(halfExtents fixed.V3, jointSize fixed.Scalar, joints []Joint, connections []Connection) (nJ, nC int) {
	joints[0].Position = fixed.V3{}
	joints[0].SetSize(jointSize)

	corners := boxCorners(halfExtents)
	for i, c := range corners {
		joints[i+1].Position = c
		joints[i+1].SetSize(jointSize)
	}
	nJ = 9

	nC = 0
	for i := 1; i <= 8; i++ {
		connections[nC].J1, connections[nC].J2 = 0, uint16(i)
		nC++
	}
	for _, e := range boxEdges() {
		connections[nC].J1, connections[nC].J2 = uint16(e[0]+1), uint16(e[1]+1)
		nC++
	}
	return nJ, nC
}

// MakeCenterRect fills joints with a center joint (index 0) and the 4
// corners (indices 1-4) of a rectangle in the XZ plane, connections with
// 4 spokes and the 4 surrounding edges - a thin panel with a pivot.
func MakeCenterRect(halfW, halfD fixed.Scalar, jointSize fixed.Scalar, joints []Joint, connections []Connection) (nJ, nC int) {
	joints[0].Position = fixed.V3{}
	joints[0].SetSize(jointSize)

	corners := rectCorners(halfW, halfD)
	for i, c := range corners {
		joints[i+1].Position = c
		joints[i+1].SetSize(jointSize)
	}
	nJ = 5

	nC = 0
	for i := 1; i <= 4; i++ {
		connections[nC].J1, connections[nC].J2 = 0, uint16(i)
		nC++
	}
	for _, e := range rectEdges() {
		connections[nC].J1, connections[nC].J2 = uint16(e[0]+1), uint16(e[1]+1)
		nC++
	}
	return nJ, nC
}

// MakeCenterRectFull is MakeCenterRect plus the rectangle's 2 diagonals,
// for a panel that must resist shearing as well as bending.
func MakeCenterRectFull(halfW, halfD fixed.Scalar, jointSize fixed.Scalar, joints []Joint, connections []Connection) (nJ, nC int) {
	nJ, nC = MakeCenterRect(halfW, halfD, jointSize, joints, connections)
	connections[nC].J1, connections[nC].J2 = 1, 3
	nC++
	connections[nC].J1, connections[nC].J2 = 2, 4
	nC++
	return nJ, nC
}

// MakeRect fills joints with the 4 corners of a planar rectangle (no
// center joint, used for doors/thin panels that rotate about an edge
// rather than a center), connections with the 4 edges and 2 diagonals.
func MakeRect(halfW, halfD fixed.Scalar, jointSize fixed.Scalar, joints []Joint, connections []Connection) (nJ, nC int) {
	corners := rectCorners(halfW, halfD)
	for i, c := range corners {
		joints[i].Position = c
		joints[i].SetSize(jointSize)
	}
	nJ = 4

	nC = 0
	for _, e := range rectEdges() {
		connections[nC].J1, connections[nC].J2 = uint16(e[0]), uint16(e[1])
		nC++
	}
	connections[nC].J1, connections[nC].J2 = 0, 2
	nC++
	connections[nC].J1, connections[nC].J2 = 1, 3
	nC++
	return nJ, nC
}

// Make2Line fills joints with a 2 joint segment along the X axis, length
// 2*halfLength, connected by a single connection - the rope/pendulum-link
// primitive.
func Make2Line(halfLength fixed.Scalar, jointSize fixed.Scalar, joints []Joint, connections []Connection) (nJ, nC int) {
	joints[0].Position = fixed.V3{X: -halfLength}
	joints[0].SetSize(jointSize)
	joints[1].Position = fixed.V3{X: halfLength}
	joints[1].SetSize(jointSize)
	connections[0].J1, connections[0].J2 = 0, 1
	return 2, 1
}

// MakeTriangle fills joints with an equilateral triangle of the given
// circumradius in the XZ plane, connections with its 3 edges - the
// minimal body with a meaningful orientation estimate (spec §4.2, "at
// least 3 joints").
func MakeTriangle(circumradius fixed.Scalar, jointSize fixed.Scalar, joints []Joint, connections []Connection) (nJ, nC int) {
	for i := 0; i < 3; i++ {
		angle := fixed.Scalar(i) * fixed.F / 3
		joints[i].Position = fixed.V3{
			X: fixed.Mul(circumradius, fixed.Sin(angle)),
			Z: fixed.Mul(circumradius, fixed.Cos(angle)),
		}
		joints[i].SetSize(jointSize)
	}
	connections[0].J1, connections[0].J2 = 0, 1
	connections[1].J1, connections[1].J2 = 1, 2
	connections[2].J1, connections[2].J2 = 2, 0
	return 3, 3
}

func boxCorners(h fixed.V3) [8]fixed.V3 {
	return [8]fixed.V3{
		{X: -h.X, Y: -h.Y, Z: -h.Z},
		{X: h.X, Y: -h.Y, Z: -h.Z},
		{X: -h.X, Y: h.Y, Z: -h.Z},
		{X: h.X, Y: h.Y, Z: -h.Z},
		{X: -h.X, Y: -h.Y, Z: h.Z},
		{X: h.X, Y: -h.Y, Z: h.Z},
		{X: -h.X, Y: h.Y, Z: h.Z},
		{X: h.X, Y: h.Y, Z: h.Z},
	}
}

func boxEdges() [12][2]int {
	return [12][2]int{
		{0, 1}, {0, 2}, {1, 3}, {2, 3}, // Z- face
		{4, 5}, {4, 6}, {5, 7}, {6, 7}, // Z+ face
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connecting edges
	}
}

func rectCorners(halfW, halfD fixed.Scalar) [4]fixed.V3 {
	return [4]fixed.V3{
		{X: -halfW, Z: -halfD},
		{X: halfW, Z: -halfD},
		{X: halfW, Z: halfD},
		{X: -halfW, Z: halfD},
	}
}

func rectEdges() [4][2]int {
	return [4][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
}
