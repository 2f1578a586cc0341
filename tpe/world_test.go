// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tpe

import (
	"testing"

	"github.com/kelvinrad/tinyphys/env"
	"github.com/kelvinrad/tinyphys/fixed"
)

func TestWorldStepIntegratesBeforeReshape(t *testing.T) {
	joints := []Joint{{Position: fixed.V3{}}, {Position: fixed.V3{X: F}}}
	connections := []Connection{{J1: 0, J2: 1}}
	b := &Body{}
	b.Init(joints, connections, F)
	b.Joints[1].SetVelocity(fixed.V3{X: F})
	w := &World{Bodies: []*Body{b}}

	w.Step()

	// integrate moves joint 1 to 2F, then reshape immediately pulls it
	// back to the connection's rest length F from joint 0.
	if d := b.Joints[1].Position.X - b.Joints[0].Position.X; d != F {
		t.Errorf("connection length after Step = %v, want %v", d, F)
	}
}

func TestWorldStepSkipsDisabledBody(t *testing.T) {
	joints := []Joint{{Position: fixed.V3{}}}
	joints[0].SetVelocity(fixed.V3{X: F})
	b := &Body{Flags: Disabled}
	b.Init(joints, nil, F)
	w := &World{Bodies: []*Body{b}}

	w.Step()

	if b.Joints[0].Position.X != 0 {
		t.Errorf("disabled body integrated: X = %v", b.Joints[0].Position.X)
	}
}

func TestHashDeterministicAcrossIdenticalWorlds(t *testing.T) {
	build := func() *World {
		joints := []Joint{{Position: fixed.V3{X: 10, Y: 20, Z: 30}}}
		b := &Body{}
		b.Init(joints, nil, F)
		return &World{Bodies: []*Body{b}}
	}
	h1, h2 := build().Hash(), build().Hash()
	if h1 != h2 {
		t.Errorf("Hash() not deterministic for identical worlds: %v != %v", h1, h2)
	}
}

func TestHashChangesWithPosition(t *testing.T) {
	joints1 := []Joint{{Position: fixed.V3{X: 10}}}
	b1 := &Body{}
	b1.Init(joints1, nil, F)
	w1 := &World{Bodies: []*Body{b1}}

	joints2 := []Joint{{Position: fixed.V3{X: 20}}}
	b2 := &Body{}
	b2.Init(joints2, nil, F)
	w2 := &World{Bodies: []*Body{b2}}

	if w1.Hash() == w2.Hash() {
		t.Errorf("Hash() identical for differing worlds")
	}
}

func TestCastBodyRayHitsClosestJoint(t *testing.T) {
	near := &Body{}
	nj := []Joint{{Position: fixed.V3{X: 100}}}
	nj[0].SetSize(F / 4)
	near.Init(nj, nil, F)

	far := &Body{}
	fj := []Joint{{Position: fixed.V3{X: 500}}}
	fj[0].SetSize(F / 4)
	far.Init(fj, nil, F)

	w := &World{Bodies: []*Body{far, near}}
	hit, ok := w.CastBodyRay(fixed.V3{}, fixed.V3{X: F})
	if !ok {
		t.Fatalf("CastBodyRay found no hit")
	}
	if hit.Body != 1 {
		t.Errorf("hit.Body = %v, want 1 (the nearer body)", hit.Body)
	}
}

func TestCastEnvironmentRayFindsGroundCrossing(t *testing.T) {
	ground := env.GroundPlane(0)
	w := &World{Environment: ground}
	origin := fixed.V3{Y: 1000}
	direction := fixed.V3{Y: -F}

	point, ok := w.CastEnvironmentRay(origin, direction, 2000)
	if !ok {
		t.Fatalf("CastEnvironmentRay found no crossing")
	}
	if fixed.Abs(point.Y) > 4 {
		t.Errorf("hit point Y = %v, want close to 0", point.Y)
	}
}
