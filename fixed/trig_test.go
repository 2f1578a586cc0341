// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package fixed

import "testing"

// TestTrigRoundTrip verifies spec property 1: for every sampled angle,
// sin(a)^2 + cos(a)^2 is within epsilon of F.
func TestTrigRoundTrip(t *testing.T) {
	const eps = F / 100
	for a := Scalar(0); a < F; a += 3 {
		s, c := Sin(a), Cos(a)
		sum := Mul(s, s) + Mul(c, c)
		if Abs(sum-F) > eps {
			t.Errorf("angle %d: sin^2+cos^2 = %d, want ~%d", a, sum, F)
		}
	}
}

func TestAsinAcosRoundTrip(t *testing.T) {
	const eps = 2
	for a := Scalar(-quarterTurn); a <= quarterTurn; a += 5 {
		s := Sin(a)
		got := Asin(s)
		if Abs(got-a) > eps {
			t.Errorf("Asin(Sin(%d))=%d, want ~%d", a, got, a)
		}
	}
}

func TestWrap(t *testing.T) {
	cases := []struct{ v, m, want Scalar }{
		{0, F, 0},
		{F, F, 0},
		{-1, F, F - 1},
		{F + 10, F, 10},
		{-F - 10, F, F - 10},
	}
	for _, c := range cases {
		if got := Wrap(c.v, c.m); got != c.want {
			t.Errorf("Wrap(%d,%d)=%d, want %d", c.v, c.m, got, c.want)
		}
	}
}

func TestSqrt(t *testing.T) {
	cases := []struct{ x, want Scalar }{
		{0, 0}, {1, 1}, {4, 2}, {9, 3}, {1000000, 1000},
	}
	for _, c := range cases {
		if got := Sqrt(c.x); got != c.want {
			t.Errorf("Sqrt(%d)=%d, want %d", c.x, got, c.want)
		}
	}
}
