// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package fixed

import "testing"

// TestLineSegmentClosestPoint verifies spec property 4.
func TestLineSegmentClosestPoint(t *testing.T) {
	a, b := NewV3S(0, 0, 0), NewV3S(100*F, 0, 0)
	var closest V3

	mid := NewV3S(50*F, 0, 0)
	closest.LineSegmentClosestPoint(a, b, mid)
	if !closest.Eq(mid) {
		t.Errorf("midpoint query: got %+v, want %+v", closest, mid)
	}

	past := NewV3S(500*F, 0, 0)
	closest.LineSegmentClosestPoint(a, b, past)
	if !closest.Eq(b) {
		t.Errorf("past-endpoint query: got %+v, want %+v", closest, b)
	}

	before := NewV3S(-500*F, 0, 0)
	closest.LineSegmentClosestPoint(a, b, before)
	if !closest.Eq(a) {
		t.Errorf("before-start query: got %+v, want %+v", closest, a)
	}
}

func TestNormalizeZero(t *testing.T) {
	var v V3
	v.Normalize(&V3{})
	want := V3{X: F}
	if !v.Eq(&want) {
		t.Errorf("Normalize(0) = %+v, want %+v", v, want)
	}
}

func TestCrossDot(t *testing.T) {
	x, y := NewV3S(F, 0, 0), NewV3S(0, F, 0)
	var z V3
	z.Cross(x, y)
	want := V3{Z: F}
	if !z.Eq(&want) {
		t.Errorf("X cross Y = %+v, want %+v", z, want)
	}
	if d := x.Dot(y); d != 0 {
		t.Errorf("X dot Y = %d, want 0", d)
	}
}

func TestLen(t *testing.T) {
	v := NewV3S(3*F, 4*F, 0)
	if got := v.Len(); got != 5*F {
		t.Errorf("Len = %d, want %d", got, 5*F)
	}
}
