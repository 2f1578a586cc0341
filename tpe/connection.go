// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package tpe

import "github.com/kelvinrad/tinyphys/fixed"

// Connection is a distance constraint between two joints of the owning
// body, referenced by index rather than pointer (spec §9, "Back
// references as indices" - this avoids the pointer-graph problem and
// makes bodies trivially copyable). Length is stored in a narrower
// integer, same rationale as Joint.velX/Y/Z.
type Connection struct {
	J1, J2 uint16
	length int16
}

// Length returns the connection's target (rest) length.
func (c *Connection) Length() fixed.Scalar { return fixed.Scalar(c.length) }

// SetLength sets the connection's target length, saturating to what an
// int16 can hold.
func (c *Connection) SetLength(l fixed.Scalar) { c.length = saturate16(l) }
