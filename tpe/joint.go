// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tpe

import "github.com/kelvinrad/tinyphys/fixed"

// joint.go : counterpart of the entity fields of the teacher's
// physics/body.go (the point-mass atom of a body), see DESIGN.md's
// file table for why these files mirror the teacher's physics package
// layout.

// sizeUnit is the quantum a joint's size is stored in: sizeDivided = size
// / sizeUnit, chosen so that joint radii in the expected range (a few F)
// fit in a single byte (spec §3, "Joint").
const sizeUnit = fixed.F / 32

// Joint is a spherical point mass, the atomic collision and state element
// of a body (spec §3, "Joint"). Velocity is stored as three narrower
// integers to save space since realistic per-joint velocities stay well
// within int16 range at F=512.
type Joint struct {
	Position    fixed.V3
	velX        int16
	velY        int16
	velZ        int16
	sizeDivided uint8 // size / sizeUnit
	pinned      bool  // true while held by Body.Pin; solver skips it
}

// Velocity returns the joint's velocity as a fixed-point vector.
func (j *Joint) Velocity() fixed.V3 {
	return fixed.V3{X: fixed.Scalar(j.velX), Y: fixed.Scalar(j.velY), Z: fixed.Scalar(j.velZ)}
}

// SetVelocity sets the joint's velocity, saturating each component to the
// range a 16 bit integer can hold.
func (j *Joint) SetVelocity(v fixed.V3) {
	j.velX = saturate16(v.X)
	j.velY = saturate16(v.Y)
	j.velZ = saturate16(v.Z)
}

// AddVelocity adds dv to the joint's current velocity.
func (j *Joint) AddVelocity(dv fixed.V3) {
	v := j.Velocity()
	v.Add(&v, &dv)
	j.SetVelocity(v)
}

// Size returns the joint's collision radius.
func (j *Joint) Size() fixed.Scalar { return fixed.Scalar(j.sizeDivided) * sizeUnit }

// SetSize sets the joint's collision radius, quantized to sizeUnit.
func (j *Joint) SetSize(size fixed.Scalar) {
	divided := size / sizeUnit
	if divided < 0 {
		divided = 0
	}
	if divided > 255 {
		divided = 255
	}
	j.sizeDivided = uint8(divided)
}

// Pinned returns true if the joint is currently held in place by Pin.
func (j *Joint) Pinned() bool { return j.pinned }

func saturate16(v fixed.Scalar) int16 {
	switch {
	case v > 32767:
		return 32767
	case v < -32768:
		return -32768
	default:
		return int16(v)
	}
}
