// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tpe

import (
	"io"
	"log/slog"

	"github.com/kelvinrad/tinyphys/fixed"
)

// tuning.go exposes the engine's compile-time tuning knobs as package
// level vars (spec §6, "Tuning constants"), the same convention the
// teacher's physics package uses for margin/maxFriction/
// linear_SLEEPING_THRESHOLD rather than a config struct or file (the
// engine has no file formats, spec §6).

// F is the fixed-point unit shared by every quantity in the engine.
const F = fixed.F

var (
	// ReshapeIterations is the number of passes the constraint solver
	// makes over a non-SOFT body's connections each step (spec §4.5).
	ReshapeIterations = 1

	// DeactivationFrames is the number of consecutive quiet frames before
	// an ACTIVE body transitions to DEACTIVATED (spec §4.7).
	DeactivationFrames int32 = 64

	// DeactivationSpeed is the average-speed threshold below which a
	// frame is considered quiet for the activity counter (spec §4.7).
	DeactivationSpeed fixed.Scalar = F / 100

	// RayMarchStep is the default step size castEnvironmentRay advances
	// the ray by before binary-refining a hit (spec §4.8).
	RayMarchStep fixed.Scalar = 30
)

// logger is the engine's single logging hook, the Go rendering of the
// spec's TPE_LOG string callback (spec §7, §2 ambient stack): by default
// silent, since the engine must not log on any per-step hot path unless
// the host opts in.
var logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogger installs l as the engine's logging hook, used only for the
// zero-length connection warning in the reshape solver and the debug
// message when a body deactivates. Passing nil restores silence.
func SetLogger(l *slog.Logger) {
	if l == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}
	logger = l
}
