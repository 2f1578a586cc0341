// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package fixed

import "testing"

// TestIdentityRotation verifies spec property 2: rotating any vector by
// the identity quaternion returns the same vector exactly.
func TestIdentityRotation(t *testing.T) {
	p := NewV3S(123, -456, 789)
	var got V3
	RotatePoint(&got, p, NewQI())
	if !got.Eq(p) {
		t.Errorf("RotatePoint(p, identity) = %+v, want %+v", got, p)
	}
}

// TestAxisRotation verifies spec property 3: rotating (F,0,0) by a quarter
// turn around the z-axis returns a vector within epsilon of (0,F,0).
func TestAxisRotation(t *testing.T) {
	const eps = 2
	axis := NewV3S(0, 0, F)
	var q Q
	q.SetAxisAngle(axis, quarterTurn)

	p := NewV3S(F, 0, 0)
	var got V3
	RotatePoint(&got, p, &q)

	want := NewV3S(0, F, 0)
	if Abs(got.X-want.X) > eps || Abs(got.Y-want.Y) > eps || Abs(got.Z-want.Z) > eps {
		t.Errorf("RotatePoint((F,0,0), 90deg around Z) = %+v, want ~%+v", got, want)
	}
}

func TestQuaternionMultIdentity(t *testing.T) {
	axis := NewV3S(F, F, 0)
	var q, got Q
	q.SetAxisAngle(axis, F/8)
	got.Mult(&q, NewQI())
	if !got.Eq(&q) {
		t.Errorf("q*identity = %+v, want %+v", got, q)
	}
}

func TestInv(t *testing.T) {
	axis := NewV3S(0, F, 0)
	var q, inv, composed Q
	q.SetAxisAngle(axis, F/6)
	inv.Inv(&q)
	composed.Mult(&q, &inv)
	if Abs(composed.W-F) > 2 || Abs(composed.X) > 2 || Abs(composed.Y) > 2 || Abs(composed.Z) > 2 {
		t.Errorf("q*Inv(q) = %+v, want ~identity", composed)
	}
}
