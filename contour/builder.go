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

package contour

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/vec"
)

// ConversionError is returned when a sequence of drawing operations cannot
// be turned into closed outlines.
type ConversionError struct {
	Op  string // the offending drawing operation
	Err error
}

func (err *ConversionError) Error() string {
	return "contour: cannot convert " + err.Op + ": " + err.Err.Error()
}

func (err *ConversionError) Unwrap() error {
	return err.Err
}

var (
	errNoCurrentPoint = errors.New("no current point")
	errNotFinite      = errors.New("coordinate is not finite")
	errUnknownCommand = errors.New("unknown path command")
)

// Builder collects drawing operations and turns them into closed outlines.
//
// The first error encountered is kept and reported by [Builder.Outlines];
// all operations after an error are ignored.
type Builder struct {
	outlines []Outline
	cur      Outline

	start, pos vec.Vec2
	hasPos     bool

	err error
}

// MoveTo starts a new contour at p.  A contour which is still open is
// closed first.
func (b *Builder) MoveTo(p vec.Vec2) {
	if b.err != nil {
		return
	}
	if !isFinite(p) {
		b.fail("MoveTo", errNotFinite)
		return
	}
	b.finish()
	b.start = p
	b.pos = p
	b.hasPos = true
}

// LineTo appends a straight line from the current point to p.
// Lines of length zero are dropped.
func (b *Builder) LineTo(p vec.Vec2) {
	if !b.check("LineTo", p) {
		return
	}
	if p == b.pos {
		return
	}
	b.cur = append(b.cur, NewLine(b.pos, p))
	b.pos = p
}

// QuadTo appends a quadratic Bézier curve with control point c, ending at
// p.  The curve is stored as the equivalent cubic.
func (b *Builder) QuadTo(c, p vec.Vec2) {
	if !b.check("QuadTo", c, p) {
		return
	}
	p0 := b.pos
	c1 := p0.Add(c.Sub(p0).Mul(2.0 / 3))
	c2 := p.Add(c.Sub(p).Mul(2.0 / 3))
	b.cur = append(b.cur, NewCubic(p0, c1, c2, p))
	b.pos = p
}

// CubeTo appends a cubic Bézier curve with control points c1 and c2, ending
// at p.
func (b *Builder) CubeTo(c1, c2, p vec.Vec2) {
	if !b.check("CubeTo", c1, c2, p) {
		return
	}
	b.cur = append(b.cur, NewCubic(b.pos, c1, c2, p))
	b.pos = p
}

// ClosePath closes the current contour with a straight line back to its
// start point.
func (b *Builder) ClosePath() {
	if b.err != nil {
		return
	}
	if !b.hasPos {
		b.fail("ClosePath", errNoCurrentPoint)
		return
	}
	b.finish()
	b.pos = b.start
}

// Outlines closes any open contour and returns all outlines collected so
// far.  Contours without segments are omitted.
func (b *Builder) Outlines() ([]Outline, error) {
	if b.err != nil {
		return nil, b.err
	}
	b.finish()
	return b.outlines, nil
}

func (b *Builder) check(op string, pts ...vec.Vec2) bool {
	if b.err != nil {
		return false
	}
	if !b.hasPos {
		b.fail(op, errNoCurrentPoint)
		return false
	}
	for _, p := range pts {
		if !isFinite(p) {
			b.fail(op, errNotFinite)
			return false
		}
	}
	return true
}

func (b *Builder) fail(op string, err error) {
	b.err = &ConversionError{Op: op, Err: err}
}

func (b *Builder) finish() {
	if len(b.cur) == 0 {
		return
	}
	if b.pos != b.start {
		b.cur = append(b.cur, NewLine(b.pos, b.start))
	}
	b.outlines = append(b.outlines, b.cur)
	b.cur = nil
	b.pos = b.start
}

func isFinite(p vec.Vec2) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) &&
		!math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
