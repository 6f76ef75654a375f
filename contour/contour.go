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

// Package contour represents glyph outlines as closed sequences of line and
// cubic Bézier segments.
//
// Outlines are produced by a [Builder], which accepts the usual
// move/line/quad/cube/close drawing operations and normalises them:
// quadratic segments are raised to cubics, and open contours are closed
// with a straight line.  The distance code in package mindist only ever
// sees the two segment kinds defined here.
package contour

import (
	"fmt"
	"math"

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/vec"
)

// Kind distinguishes the two segment types.
type Kind uint8

// These are the supported segment kinds.
const (
	Line  Kind = iota + 1 // straight line from P0 to P1
	Cubic                 // cubic Bézier curve with control points P0, ..., P3
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Cubic:
		return "cubic"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Segment is a single piece of an outline.
//
// For lines only P0 and P1 are used.  For cubic curves, P0 and P3 are the
// end points and P1 and P2 are the off-curve control points.
type Segment struct {
	Kind           Kind
	P0, P1, P2, P3 vec.Vec2
}

// NewLine returns a line segment from p0 to p1.
func NewLine(p0, p1 vec.Vec2) Segment {
	return Segment{Kind: Line, P0: p0, P1: p1}
}

// NewCubic returns a cubic Bézier segment.
func NewCubic(p0, p1, p2, p3 vec.Vec2) Segment {
	return Segment{Kind: Cubic, P0: p0, P1: p1, P2: p2, P3: p3}
}

// Start returns the first point of the segment.
func (s Segment) Start() vec.Vec2 {
	return s.P0
}

// End returns the last point of the segment.
func (s Segment) End() vec.Vec2 {
	if s.Kind == Cubic {
		return s.P3
	}
	return s.P1
}

// Eval returns the point at parameter t, where t ranges from 0 to 1.
func (s Segment) Eval(t float64) vec.Vec2 {
	if s.Kind != Line && s.Kind != Cubic {
		panic(fmt.Sprintf("contour: unexpected segment kind %d", s.Kind))
	}
	return FromPoint(s.Curve().Eval(t))
}

// Curve converts the segment to the representation used by the
// honnef.co/go/curve package.
func (s Segment) Curve() curve.PathSegment {
	switch s.Kind {
	case Line:
		return curve.PathSegment{
			Kind: curve.LineKind,
			P0:   ToPoint(s.P0),
			P1:   ToPoint(s.P1),
		}
	case Cubic:
		return curve.PathSegment{
			Kind: curve.CubicKind,
			P0:   ToPoint(s.P0),
			P1:   ToPoint(s.P1),
			P2:   ToPoint(s.P2),
			P3:   ToPoint(s.P3),
		}
	default:
		return curve.PathSegment{}
	}
}

// ToPoint converts a vector to a curve point.
func ToPoint(v vec.Vec2) curve.Point {
	return curve.Point{X: v.X, Y: v.Y}
}

// FromPoint converts a curve point to a vector.
func FromPoint(p curve.Point) vec.Vec2 {
	return vec.Vec2{X: p.X, Y: p.Y}
}

// Translate returns a copy of the segment, shifted by d.
func (s Segment) Translate(d vec.Vec2) Segment {
	s.P0 = s.P0.Add(d)
	s.P1 = s.P1.Add(d)
	if s.Kind == Cubic {
		s.P2 = s.P2.Add(d)
		s.P3 = s.P3.Add(d)
	}
	return s
}

// XMin returns the smallest x-coordinate of any point on the segment.
func (s Segment) XMin() float64 {
	return s.Curve().BoundingBox().MinX()
}

func (s Segment) String() string {
	switch s.Kind {
	case Line:
		return fmt.Sprintf("L(%g,%g)-(%g,%g)", s.P0.X, s.P0.Y, s.P1.X, s.P1.Y)
	case Cubic:
		return fmt.Sprintf("C(%g,%g)-(%g,%g)-(%g,%g)-(%g,%g)",
			s.P0.X, s.P0.Y, s.P1.X, s.P1.Y, s.P2.X, s.P2.Y, s.P3.X, s.P3.Y)
	default:
		return s.Kind.String()
	}
}

// Outline is a closed contour: the end point of every segment is the start
// point of the next one, and the last segment ends where the first one
// starts.
type Outline []Segment

// Translate returns a shifted copy of the outline.
// The receiver is not modified.
func (o Outline) Translate(d vec.Vec2) Outline {
	res := make(Outline, len(o))
	for i, s := range o {
		res[i] = s.Translate(d)
	}
	return res
}

// XMin returns the smallest x-coordinate on the outline.
// The second return value is false if the outline has no segments.
func (o Outline) XMin() (float64, bool) {
	if len(o) == 0 {
		return 0, false
	}
	xMin := math.Inf(1)
	for _, s := range o {
		xMin = math.Min(xMin, s.XMin())
	}
	return xMin, true
}

// IsClosed reports whether consecutive segments connect up, including the
// wrap-around from the last segment to the first one.
func (o Outline) IsClosed() bool {
	n := len(o)
	for i, s := range o {
		if s.End() != o[(i+1)%n].Start() {
			return false
		}
	}
	return true
}

// XMin returns the smallest x-coordinate over a set of outlines.
// The second return value is false if no outline has any segments.
func XMin(oo []Outline) (float64, bool) {
	xMin := math.Inf(1)
	found := false
	for _, o := range oo {
		if x, ok := o.XMin(); ok {
			xMin = math.Min(xMin, x)
			found = true
		}
	}
	return xMin, found
}
