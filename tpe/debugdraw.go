// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tpe

import "github.com/kelvinrad/tinyphys/fixed"

// debugdraw.go implements worldDebugDraw (spec §4.8, §6): renders joint
// centers and connections via a caller-supplied pixel function, and a
// caller-supplied projection from a 3D point to a 2D screen position plus
// a visibility flag (the engine has no renderer of its own, spec §1).

// DebugDrawPixel draws a single pixel at (x,y) in colorIndex (spec §6,
// "debugDrawPixel").
type DebugDrawPixel func(x, y int32, colorIndex int)

// Project maps a world point to a screen position and whether it is in
// front of the camera (visible).
type Project func(p fixed.V3) (x, y int32, visible bool)

// DebugDraw renders every body's joint centers (as single pixels) and
// connections (as digital line segments) through project and pixel. A
// nil project leaves DebugDraw a no-op, since projection is host-supplied
// (spec §1, the renderer is out of scope).
func (w *World) DebugDraw(project Project, pixel DebugDrawPixel) {
	if project == nil || pixel == nil {
		return
	}
	const jointColor = 1
	const connectionColor = 2

	for _, b := range w.Bodies {
		for i := range b.Joints {
			if x, y, visible := project(b.Joints[i].Position); visible {
				pixel(x, y, jointColor)
			}
		}
		for _, c := range b.Connections {
			drawLine(project, pixel, b.Joints[c.J1].Position, b.Joints[c.J2].Position, connectionColor)
		}
	}
}

// drawLine rasterizes a line between two world points using a fixed
// number of interpolated samples (simpler than true Bresenham, adequate
// for a development aid rather than a renderer).
func drawLine(project Project, pixel DebugDrawPixel, a, b fixed.V3, colorIndex int) {
	const samples = 16
	for s := 0; s <= samples; s++ {
		var p fixed.V3
		ratio := fixed.Scalar(s) * fixed.F / samples
		p.Lerp(&a, &b, ratio)
		if x, y, visible := project(p); visible {
			pixel(x, y, colorIndex)
		}
	}
}
