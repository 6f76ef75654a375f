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

package mindist

import (
	"context"
	"log/slog"
	"math"

	"honnef.co/go/curve"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/autokern/contour"
)

// ClosestPair returns the pair of segments, one from each outline, which
// is judged to contain the closest approach of the two outlines.
//
// Each segment is sampled at its start, middle and end point, and two
// segments are compared by the smallest of the start/start, middle/middle
// and end/end distances.  On ties the first pair found wins.  The last
// return value is false if either outline has no segments.
func ClosestPair(a, b contour.Outline) (contour.Segment, contour.Segment, bool) {
	var sa, sb contour.Segment
	if len(a) == 0 || len(b) == 0 {
		return sa, sb, false
	}

	bSamples := make([][3]curve.Point, len(b))
	for j, s := range b {
		bSamples[j] = sample(s)
	}

	found := false
	best := math.Inf(1)
	for _, s1 := range a {
		p1 := sample(s1)
		for j, p2 := range bSamples {
			d := min(
				p1[0].DistanceSquared(p2[0]),
				p1[1].DistanceSquared(p2[1]),
				p1[2].DistanceSquared(p2[2]),
			)
			if !found || d < best {
				best = d
				sa, sb = s1, b[j]
				found = true
			}
		}
	}
	return sa, sb, true
}

func sample(s contour.Segment) [3]curve.Point {
	c := s.Curve()
	return [3]curve.Point{c.Eval(0), c.Eval(0.5), c.Eval(1)}
}

// Outlines returns the minimum distance between two outlines, computed
// accurately for the segment pair selected by [ClosestPair].
// The second return value is false if either outline is empty.
func Outlines(a, b contour.Outline) (float64, bool) {
	s1, s2, ok := ClosestPair(a, b)
	if !ok {
		return 0, false
	}
	return Segments(s1, s2), true
}

// Sets returns the minimum distance between two sets of outlines, after
// the left outlines have been shifted up by dy and the right outlines have
// been shifted to the right by dx.
//
// The second return value is false if no pair of outlines yields a
// distance, in particular if either set is empty.
func Sets(left, right []contour.Outline, dx, dy float64) (float64, bool) {
	if len(left) == 0 || len(right) == 0 {
		return 0, false
	}

	movedLeft := make([]contour.Outline, len(left))
	for i, o := range left {
		movedLeft[i] = o.Translate(vec.Vec2{Y: dy})
	}
	movedRight := make([]contour.Outline, len(right))
	for j, o := range right {
		movedRight[j] = o.Translate(vec.Vec2{X: dx})
	}

	log := logger()
	trace := log.Enabled(context.Background(), slog.LevelDebug)
	best := 0.0
	found := false
	for i, l := range movedLeft {
		for j, r := range movedRight {
			d, ok := Outlines(l, r)
			if !ok {
				continue
			}
			record := !found || d < best
			if trace {
				log.Debug("outline distance", "left", i, "right", j, "d", d, "record", record)
			}
			if record {
				best = d
				found = true
			}
		}
	}
	return best, found
}
