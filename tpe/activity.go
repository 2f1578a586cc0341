// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tpe

import "github.com/kelvinrad/tinyphys/fixed"

// activity.go implements the per-body quiet-frame counter that stands in
// for a sleeping-island scheduler (spec §4.7, §9 "Activity counter
// instead of sleeping scheduler"): one small integer per body, no
// constraint-graph analysis, no island detection - simpler and
// deterministic, at the accepted cost of a body briefly deactivating
// while in contact with an oscillating neighbor.

// updateActivity advances every non-ALWAYS_ACTIVE, non-DISABLED body's
// quiet-frame counter: reset to 0 on a non-quiet frame, incremented on a
// quiet one, and transitioned to DEACTIVATED once the counter reaches
// DeactivationFrames (spec §4.7).
func (w *World) updateActivity() {
	for _, b := range w.Bodies {
		if b.Flags&Disabled != 0 || b.Flags&AlwaysActive != 0 {
			continue
		}
		if b.Flags&Deactivated != 0 {
			continue // already asleep; stays asleep until externally woken.
		}
		if meanJointSpeed(b) < DeactivationSpeed {
			b.activityCounter++
			if b.activityCounter >= DeactivationFrames {
				b.Flags |= Deactivated
				logger.Debug("body deactivated", "counter", b.activityCounter)
			}
		} else {
			b.activityCounter = 0
		}
	}
}

// meanJointSpeed returns the true per-joint average speed (Body's own
// GetAverageSpeed is, per spec §4.4, a sum of magnitudes despite its
// name; the quiet-frame check needs the mean).
func meanJointSpeed(b *Body) fixed.Scalar {
	if len(b.Joints) == 0 {
		return 0
	}
	return b.GetAverageSpeed() / fixed.Scalar(len(b.Joints))
}
