// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tpe

import (
	"testing"

	"github.com/kelvinrad/tinyphys/fixed"
)

func newLine(t *testing.T) (*Body, []Joint, []Connection) {
	t.Helper()
	joints := make([]Joint, 2)
	connections := make([]Connection, 1)
	nJ, nC := Make2Line(F/2, F/8, joints, connections)
	b := &Body{}
	b.Init(joints[:nJ], connections[:nC], F)
	return b, joints, connections
}

func TestBodyInitComputesLength(t *testing.T) {
	b, _, _ := newLine(t)
	if got := b.Connections[0].Length(); got != F {
		t.Errorf("Length() = %v, want %v", got, F)
	}
}

func TestBodyMoveByTranslatesAllJoints(t *testing.T) {
	b, _, _ := newLine(t)
	before := b.GetCenterOfMass()
	b.MoveBy(fixed.V3{X: F})
	after := b.GetCenterOfMass()
	if after.X-before.X != F {
		t.Errorf("center moved by %v, want %v", after.X-before.X, F)
	}
}

func TestBodyMoveToSetsCenter(t *testing.T) {
	b, _, _ := newLine(t)
	target := fixed.V3{X: 100, Y: 200, Z: 300}
	b.MoveTo(target)
	center := b.GetCenterOfMass()
	if !center.Eq(&target) {
		t.Errorf("center = %+v, want %+v", center, target)
	}
}

func TestBodyDeactivateSetsFlag(t *testing.T) {
	b, _, _ := newLine(t)
	b.Deactivate()
	if b.Flags&Deactivated == 0 {
		t.Errorf("Deactivated flag not set")
	}
	if b.IsActive() {
		t.Errorf("IsActive() = true after Deactivate")
	}
}

func TestBodyActivateWakesFromDeactivated(t *testing.T) {
	b, _, _ := newLine(t)
	b.Deactivate()
	b.Activate()
	if !b.IsActive() {
		t.Errorf("IsActive() = false after Activate")
	}
}

func TestBodyAlwaysActiveIgnoresActivityCounter(t *testing.T) {
	b, _, _ := newLine(t)
	b.Flags |= AlwaysActive
	for i := int32(0); i < DeactivationFrames+10; i++ {
		b.activityCounter = i
	}
	if !b.IsActive() {
		t.Errorf("IsActive() = false for AlwaysActive body")
	}
}

func TestBodyPinFreezesJoint(t *testing.T) {
	b, _, _ := newLine(t)
	anchor := fixed.V3{X: 10, Y: 20, Z: 30}
	b.Pin(0, anchor)
	if !b.Joints[0].Pinned() {
		t.Errorf("joint 0 not marked pinned")
	}
	if !b.Joints[0].Position.Eq(&anchor) {
		t.Errorf("Position = %+v, want %+v", b.Joints[0].Position, anchor)
	}
	b.Unpin(0)
	if b.Joints[0].Pinned() {
		t.Errorf("joint 0 still pinned after Unpin")
	}
}

func TestBodyApplyGravitySkipsStatic(t *testing.T) {
	b, _, _ := newLine(t)
	b.Mass = Infinity
	b.ApplyGravity(5)
	if v := b.Joints[0].Velocity(); v.Y != 0 {
		t.Errorf("static body gained velocity: %+v", v)
	}
}

func TestBodyGetAverageSpeedIsSum(t *testing.T) {
	b, _, _ := newLine(t)
	b.Joints[0].SetVelocity(fixed.V3{X: F})
	b.Joints[1].SetVelocity(fixed.V3{X: F})
	got := b.GetAverageSpeed()
	if got != 2*F {
		t.Errorf("GetAverageSpeed() = %v, want %v (sum, not mean)", got, 2*F)
	}
}
