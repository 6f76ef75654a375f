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

// Package makeglyph constructs simple synthetic glyphs for use in tests.
//
// Do not use this package in production code.
package makeglyph

import (
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/autokern/contour"
	"seehuhn.de/go/autokern/kern"
)

// kappa is the control point distance for approximating a quarter circle
// of radius 1 by a cubic Bézier curve.
const kappa = 0.5522847498307936

// Ellipse returns an axis-aligned ellipse with centre (cx, cy) and radii rx
// and ry, made from four cubic arcs.
func Ellipse(cx, cy, rx, ry float64) contour.Outline {
	kx := kappa * rx
	ky := kappa * ry

	b := &contour.Builder{}
	b.MoveTo(vec.Vec2{X: cx + rx, Y: cy})
	b.CubeTo(vec.Vec2{X: cx + rx, Y: cy + ky}, vec.Vec2{X: cx + kx, Y: cy + ry}, vec.Vec2{X: cx, Y: cy + ry})
	b.CubeTo(vec.Vec2{X: cx - kx, Y: cy + ry}, vec.Vec2{X: cx - rx, Y: cy + ky}, vec.Vec2{X: cx - rx, Y: cy})
	b.CubeTo(vec.Vec2{X: cx - rx, Y: cy - ky}, vec.Vec2{X: cx - kx, Y: cy - ry}, vec.Vec2{X: cx, Y: cy - ry})
	b.CubeTo(vec.Vec2{X: cx + kx, Y: cy - ry}, vec.Vec2{X: cx + rx, Y: cy - ky}, vec.Vec2{X: cx + rx, Y: cy})
	b.ClosePath()
	return must(b)
}

// Circle returns a circle with centre (cx, cy) and radius r.
func Circle(cx, cy, r float64) contour.Outline {
	return Ellipse(cx, cy, r, r)
}

// Rect returns an axis-aligned rectangle made from four lines.
func Rect(x0, y0, x1, y1 float64) contour.Outline {
	b := &contour.Builder{}
	b.MoveTo(vec.Vec2{X: x0, Y: y0})
	b.LineTo(vec.Vec2{X: x1, Y: y0})
	b.LineTo(vec.Vec2{X: x1, Y: y1})
	b.LineTo(vec.Vec2{X: x0, Y: y1})
	b.ClosePath()
	return must(b)
}

func must(b *contour.Builder) contour.Outline {
	oo, err := b.Outlines()
	if err != nil {
		panic(err)
	}
	return oo[0]
}

// Glyph returns a glyph snapshot with the given advance width and outlines.
// The left side bearing is set from the outlines, and is missing if there
// are no outlines.
func Glyph(name string, width float64, outlines ...contour.Outline) *kern.Snapshot {
	g := &kern.Snapshot{
		Name:     name,
		Outlines: outlines,
		Width:    width,
	}
	g.LSB, g.HasLSB = contour.XMin(outlines)
	return g
}

// WithAnchor adds an anchor to the glyph and returns the glyph.
func WithAnchor(g *kern.Snapshot, name string, x, y float64) *kern.Snapshot {
	g.Anchors = append(g.Anchors, kern.Anchor{Name: name, X: x, Y: y})
	return g
}
