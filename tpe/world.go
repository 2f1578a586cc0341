// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tpe

import (
	"github.com/kelvinrad/tinyphys/env"
	"github.com/kelvinrad/tinyphys/fixed"
)

// world.go : physics.go counterpart. World sequences one simulation step
// exactly as spec §4.8 orders it: integrate, reshape, resolve environment,
// resolve body-body collisions, update activity, optional debug/hash.
// Single-threaded, no allocation, no cancellation (spec §5).

// CollisionCallback is invoked once per colliding joint pair per step,
// before any response is applied. Returning false skips the response for
// that pair entirely (spec §4.6 step 5, §6).
type CollisionCallback func(body1, joint1, body2, joint2 int, contact fixed.V3) bool

// World holds borrowed references to caller-owned bodies and the
// environment/collision callbacks. It never reallocates or resizes;
// Bodies is a slice the caller continues to own (spec §5, "Shared
// resources").
type World struct {
	Bodies []*Body

	Gravity           fixed.Scalar
	Environment       env.Func
	OnCollision       CollisionCallback
	EnvironmentMargin fixed.Scalar // not read by Step, which passes each joint's size as maxD
}

// Step advances the simulation by one tick, in the exact order spec §4.8
// requires:
//  1. integrate active bodies' joint positions by their velocities;
//  2. reshape non-SOFT active bodies;
//  3. resolve each active body's joints against the environment;
//  4. detect and respond to body-body collisions, ascending (i,j) order;
//  5. update activity counters;
//  6. (debug draw / hash are separate, caller-invoked operations, not
//     part of Step itself).
func (w *World) Step() {
	for _, b := range w.Bodies {
		if !b.IsActive() {
			continue
		}
		integrate(b)
	}

	for _, b := range w.Bodies {
		if !b.IsActive() {
			continue
		}
		reshape(b)
	}

	if w.Environment != nil {
		for _, b := range w.Bodies {
			if !b.IsActive() {
				continue
			}
			resolveEnvironment(b, w.Environment)
		}
	}

	w.resolveCollisions()
	w.updateActivity()
}

// integrate advances every joint of b by its velocity (symplectic Euler,
// spec §4.8 step 1). Gravity is applied by the caller via
// Body.ApplyGravity before Step, matching the teacher physics.Simulate's
// convention of adding forces immediately before stepping.
func integrate(b *Body) {
	if b.IsStatic() {
		return
	}
	for i := range b.Joints {
		j := &b.Joints[i]
		if j.pinned {
			continue
		}
		v := j.Velocity()
		j.Position.Add(&j.Position, &v)
	}
}

// ApplyGravity applies World.Gravity to every active body, for callers
// that want the teacher's per-frame "apply forces, then step" convention
// (physics.Simulate) rather than managing gravity themselves.
func (w *World) ApplyGravity() {
	for _, b := range w.Bodies {
		if !b.IsActive() {
			continue
		}
		b.ApplyGravity(w.Gravity)
	}
}

// GetNetSpeed returns the sum of average speeds across all bodies in the
// world (spec §6, World "getNetSpeed").
func (w *World) GetNetSpeed() fixed.Scalar {
	total := fixed.Scalar(0)
	for _, b := range w.Bodies {
		total += b.GetAverageSpeed()
	}
	return total
}

// DeactivateAll forces every body in the world to DEACTIVATED.
func (w *World) DeactivateAll() {
	for _, b := range w.Bodies {
		b.Deactivate()
	}
}

// ActivateAll wakes every body in the world.
func (w *World) ActivateAll() {
	for _, b := range w.Bodies {
		b.Activate()
	}
}
