// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package env

import (
	"fmt"

	"github.com/kelvinrad/tinyphys/fixed"
)

// Violation describes one sample point at which an environment function
// failed to satisfy the closest-point contract (spec §4.3/§7).
type Violation struct {
	Point  Vec3
	Reason string
}

func (v Violation) String() string { return fmt.Sprintf("%+v: %s", v.Point, v.Reason) }

// Verify checks fn against the contract properties described by
// spec §4.3, sampling the given points with the given maxD:
//   - if the returned point equals the input, the input is taken as free;
//     Verify makes no further check on such a point;
//   - otherwise, the returned point must itself be reported as free
//     (fn(surfacePoint, maxD) == surfacePoint, i.e. the surface is stable);
//   - the function must be a contraction: moving the query halfway toward
//     its returned point must yield a result no further from that moved
//     point than the original distance.
//
// This is development-time tooling (spec §7: "a verification routine is
// provided so implementers can test their environment functions"), not
// something the simulation itself calls.
func Verify(fn Func, points []Vec3, maxD Scalar) []Violation {
	var violations []Violation
	for _, p := range points {
		result := fn(p, maxD)

		if result.Eq(&p) {
			continue // reported free; nothing further to check here.
		}

		// Surface stability: the returned point, queried again, should
		// report itself as already on the surface (a fixed point of fn).
		restable := fn(result, maxD)
		if !restable.Eq(&result) {
			violations = append(violations, Violation{p, "returned point is not itself stable under fn"})
		}

		// Contraction: moving halfway toward the result should not move
		// the new closest point further away than the original distance.
		var toResult Vec3
		toResult.Sub(&result, &p)
		var halfway Vec3
		halfway.Scale(&toResult, fixed.Half)
		halfway.Add(&p, &halfway)

		origDist := dist(p, result)
		newResult := fn(halfway, maxD)
		newDist := dist(halfway, newResult)
		if newDist > origDist {
			violations = append(violations, Violation{p, "fn is not a contraction: moving toward the surface increased distance"})
		}
	}
	return violations
}

func dist(a, b Vec3) Scalar {
	var d Vec3
	return d.Sub(&a, &b).Len()
}
