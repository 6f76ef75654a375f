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

// Package mindist computes minimum distances between glyph outlines.
//
// The computation works in two stages.  A cheap proxy, comparing start,
// middle and end points of segments, first selects the pair of segments
// which most likely contains the closest approach of two outlines.  Only
// for this pair the distance is then computed accurately, by
// [Segments].
//
// The proxy is not guaranteed to find the global minimum, but for the
// smooth, mostly convex shapes found in glyph outlines it reliably does.
package mindist

import (
	"fmt"
	"math"

	"seehuhn.de/go/autokern/contour"
)

// Accuracy is the tolerance, in font design units, used when locating the
// point on a cubic curve which is nearest to a given point.
const Accuracy = 0.01

// Segments returns the minimum distance between two segments.
//
// Line/line distances are exact.  Distances involving a cubic curve are
// numerical approximations.  Segment kinds other than [contour.Line] and
// [contour.Cubic] indicate a bug in the caller and cause a panic.
func Segments(a, b contour.Segment) float64 {
	switch {
	case a.Kind == contour.Line && b.Kind == contour.Line:
		return lineLine(a, b)
	case a.Kind == contour.Line && b.Kind == contour.Cubic:
		return lineCurve(a, b)
	case a.Kind == contour.Cubic && b.Kind == contour.Line:
		return lineCurve(b, a)
	case a.Kind == contour.Cubic && b.Kind == contour.Cubic:
		return curveCurve(a, b)
	default:
		panic(fmt.Sprintf("mindist: unexpected segment kinds %s/%s", a.Kind, b.Kind))
	}
}

// lineLine returns the distance between two line segments, as the smallest
// distance of any of the four end points to the other line.
func lineLine(l1, l2 contour.Segment) float64 {
	c1 := l1.Curve().Line()
	c2 := l2.Curve().Line()
	a, _ := c1.Nearest(c2.P0, Accuracy)
	b, _ := c1.Nearest(c2.P1, Accuracy)
	c, _ := c2.Nearest(c1.P0, Accuracy)
	d, _ := c2.Nearest(c1.P1, Accuracy)
	return math.Sqrt(min(a, b, c, d))
}

// lineSamples are the parameter values on the line used by [lineCurve].
var lineSamples = [...]float64{0.0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9}

// lineCurve approximates the distance between a line and a cubic curve by
// the distances of ten points along the line to the curve.
func lineCurve(l, c contour.Segment) float64 {
	lc := l.Curve().Line()
	cc := c.Curve()
	best := math.Inf(1)
	for _, t := range lineSamples {
		distSq, _ := cc.Nearest(lc.Eval(t), Accuracy)
		best = min(best, distSq)
	}
	return math.Sqrt(best)
}

const (
	curveMaxRounds = 64
	curveParamEps  = 1e-9
)

// curveCurve finds a pair of mutually nearest points on two cubic curves,
// by alternately projecting onto one curve and then the other.  The
// iteration starts at the midpoint of the first curve.
func curveCurve(c1, c2 contour.Segment) float64 {
	cc1 := c1.Curve()
	cc2 := c2.Curve()

	s, t := 0.5, 0.5
	for range curveMaxRounds {
		_, tNew := cc2.Nearest(cc1.Eval(s), Accuracy)
		_, sNew := cc1.Nearest(cc2.Eval(tNew), Accuracy)
		done := math.Abs(sNew-s) < curveParamEps && math.Abs(tNew-t) < curveParamEps
		s, t = sNew, tNew
		if done {
			break
		}
	}
	return cc1.Eval(s).Distance(cc2.Eval(t))
}
