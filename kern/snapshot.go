// seehuhn.de/go/autokern - automatic kerning from glyph outlines
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package kern determines kerning values from glyph outlines.
//
// [Solve] moves the right glyph horizontally until the smallest distance
// between the outlines of the two glyphs matches a target value.  The
// distance is measured by package mindist.  The horizontal offset is
// adjusted by repeated linear correction steps, stopping once the measured
// distance is within a tolerance of the target, after a fixed number of
// rounds, or when the offset drops below a floor which limits how far the
// right glyph may tuck under the left one.
package kern

import (
	"seehuhn.de/go/autokern/contour"
)

// Snapshot is the geometry of one glyph in one master, as needed for
// kerning.  Snapshots are treated as read-only.
type Snapshot struct {
	// Name is the glyph name, used in error messages and logs.
	Name string

	// Outlines are the closed contours of the glyph, with all components
	// resolved.
	Outlines []contour.Outline

	// Width is the advance width in font design units.
	Width float64

	// LSB is the left side bearing, i.e. the smallest x-coordinate of the
	// glyph outlines.  HasLSB is false if the glyph has no outlines.
	LSB    float64
	HasLSB bool

	Anchors []Anchor
}

// Anchor is a named attachment point on a glyph.
type Anchor struct {
	Name string
	X, Y float64
}

// Anchor returns the first anchor with the given name.
func (s *Snapshot) Anchor(name string) (Anchor, bool) {
	for _, a := range s.Anchors {
		if a.Name == name {
			return a, true
		}
	}
	return Anchor{}, false
}

// IsEmpty reports whether the glyph has no outline segments.
func (s *Snapshot) IsEmpty() bool {
	for _, o := range s.Outlines {
		if len(o) > 0 {
			return false
		}
	}
	return true
}
