// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tpe

import (
	"fmt"
	"io"

	"github.com/kelvinrad/tinyphys/fixed"
	"gopkg.in/yaml.v3"
)

// fixture.go : load.go counterpart, rendering the teacher's YAML scene
// description (internal/load) into a YAML scenario description for the
// regression fixtures spec §8 names (two spheres head-on, dropping-
// bodies-on-ramp, heightmap, catapult, pendulum). This is test/demo
// support, not a runtime wire protocol (spec §6's "no file formats"
// non-goal is about the simulation API, not its fixtures, SPEC_FULL §8).

// Fixture describes a complete initial world as data: gravity, a step
// count for scenario-driven tests, and a list of body specifications.
type Fixture struct {
	Gravity fixed.Scalar `yaml:"gravity"`
	Steps   int          `yaml:"steps"`
	Bodies  []BodySpec   `yaml:"bodies"`
}

// BodySpec describes one body's canonical shape, placement and tuning.
// Shape is one of "box", "sphere", "line" or "triangle" (the builders in
// bodybuilders.go); Size is the shape's half-extent (box), radius
// (sphere), half-length (line) or circumradius (triangle) - all share one
// field since each shape only ever needs a single scale factor for the
// fixtures this loader targets.
type BodySpec struct {
	Shape      string        `yaml:"shape"`
	Mass       fixed.Scalar  `yaml:"mass"`
	Size       fixed.Scalar  `yaml:"size"`
	JointSize  fixed.Scalar  `yaml:"jointSize"`
	At         [3]fixed.Scalar `yaml:"at"`
	Velocity   [3]fixed.Scalar `yaml:"velocity"`
	Elasticity fixed.Scalar  `yaml:"elasticity"`
	Friction   fixed.Scalar  `yaml:"friction"`
	Pinned     bool          `yaml:"pinned"`
	Flags      []string      `yaml:"flags"`
}

var flagNames = map[string]Flag{
	"alwaysActive": AlwaysActive,
	"nonRotating":  NonRotating,
	"disabled":     Disabled,
	"soft":         Soft,
	"simpleConn":   SimpleConn,
}

// LoadFixture decodes a Fixture from YAML read from r.
func LoadFixture(r io.Reader) (*Fixture, error) {
	f := &Fixture{}
	if err := yaml.NewDecoder(r).Decode(f); err != nil {
		return nil, fmt.Errorf("tpe: decode fixture: %w", err)
	}
	return f, nil
}

// Build constructs a runnable World and the backing Body slice from the
// fixture. The returned bodies slice must outlive the World, since World
// only holds *Body pointers into it.
func (f *Fixture) Build() (*World, []Body, error) {
	bodies := make([]Body, len(f.Bodies))
	w := &World{Gravity: f.Gravity}

	for i, spec := range f.Bodies {
		b := &bodies[i]
		joints, connections, err := buildShape(spec)
		if err != nil {
			return nil, nil, fmt.Errorf("tpe: body %d: %w", i, err)
		}

		b.Elasticity = spec.Elasticity
		b.Friction = spec.Friction
		for _, name := range spec.Flags {
			flag, known := flagNames[name]
			if !known {
				return nil, nil, fmt.Errorf("tpe: body %d: unknown flag %q", i, name)
			}
			b.Flags |= flag
		}

		mass := spec.Mass
		if mass == 0 {
			mass = F
		}
		b.Init(joints, connections, mass)

		offset := fixed.V3{X: spec.At[0], Y: spec.At[1], Z: spec.At[2]}
		b.MoveBy(offset)

		vel := fixed.V3{X: spec.Velocity[0], Y: spec.Velocity[1], Z: spec.Velocity[2]}
		b.Accelerate(vel)

		if spec.Pinned {
			b.Pin(0, b.Joints[0].Position)
		}

		w.Bodies = append(w.Bodies, b)
	}
	return w, bodies, nil
}

func buildShape(spec BodySpec) ([]Joint, []Connection, error) {
	size := spec.Size
	if size == 0 {
		size = F
	}
	jointSize := spec.JointSize
	if jointSize == 0 {
		jointSize = size / 4
	}

	switch spec.Shape {
	case "box":
		joints := make([]Joint, 8)
		connections := make([]Connection, 16)
		half := fixed.V3{X: size, Y: size, Z: size}
		nJ, nC := MakeBox(half, jointSize, joints, connections)
		return joints[:nJ], connections[:nC], nil
	case "sphere":
		joints := make([]Joint, 1)
		joints[0].SetSize(size)
		return joints, nil, nil
	case "line":
		joints := make([]Joint, 2)
		connections := make([]Connection, 1)
		nJ, nC := Make2Line(size, jointSize, joints, connections)
		return joints[:nJ], connections[:nC], nil
	case "triangle":
		joints := make([]Joint, 3)
		connections := make([]Connection, 3)
		nJ, nC := MakeTriangle(size, jointSize, joints, connections)
		return joints[:nJ], connections[:nC], nil
	default:
		return nil, nil, fmt.Errorf("unknown shape %q", spec.Shape)
	}
}
