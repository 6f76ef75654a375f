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
	"testing"

	"github.com/google/go-cmp/cmp"
	"honnef.co/go/curve"
	"seehuhn.de/go/geom/vec"
)

func TestBuilderClosesContours(t *testing.T) {
	b := &Builder{}
	b.MoveTo(vec.Vec2{X: 0, Y: 0})
	b.LineTo(vec.Vec2{X: 100, Y: 0})
	b.LineTo(vec.Vec2{X: 100, Y: 100})
	// no ClosePath: the next MoveTo must close the triangle
	b.MoveTo(vec.Vec2{X: 200, Y: 0})
	b.LineTo(vec.Vec2{X: 300, Y: 0})
	b.LineTo(vec.Vec2{X: 300, Y: 100})
	b.LineTo(vec.Vec2{X: 200, Y: 0})
	b.ClosePath()

	oo, err := b.Outlines()
	if err != nil {
		t.Fatal(err)
	}

	want := []Outline{
		{
			NewLine(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 100, Y: 0}),
			NewLine(vec.Vec2{X: 100, Y: 0}, vec.Vec2{X: 100, Y: 100}),
			NewLine(vec.Vec2{X: 100, Y: 100}, vec.Vec2{X: 0, Y: 0}),
		},
		{
			NewLine(vec.Vec2{X: 200, Y: 0}, vec.Vec2{X: 300, Y: 0}),
			NewLine(vec.Vec2{X: 300, Y: 0}, vec.Vec2{X: 300, Y: 100}),
			NewLine(vec.Vec2{X: 300, Y: 100}, vec.Vec2{X: 200, Y: 0}),
		},
	}
	if d := cmp.Diff(want, oo); d != "" {
		t.Errorf("outlines differ (-want +got):\n%s", d)
	}
	for i, o := range oo {
		if !o.IsClosed() {
			t.Errorf("outline %d is not closed", i)
		}
	}
}

func TestBuilderDropsEmptyContours(t *testing.T) {
	b := &Builder{}
	b.MoveTo(vec.Vec2{X: 10, Y: 10})
	b.ClosePath()
	b.MoveTo(vec.Vec2{X: 20, Y: 20})
	b.LineTo(vec.Vec2{X: 20, Y: 20})

	oo, err := b.Outlines()
	if err != nil {
		t.Fatal(err)
	}
	if len(oo) != 0 {
		t.Errorf("got %d outlines, want 0", len(oo))
	}
}

func TestQuadRaisedToCubic(t *testing.T) {
	p0 := vec.Vec2{X: 0, Y: 0}
	c := vec.Vec2{X: 50, Y: 100}
	p1 := vec.Vec2{X: 100, Y: 0}

	b := &Builder{}
	b.MoveTo(p0)
	b.QuadTo(c, p1)
	b.ClosePath()
	oo, err := b.Outlines()
	if err != nil {
		t.Fatal(err)
	}
	if len(oo) != 1 || len(oo[0]) != 2 {
		t.Fatalf("unexpected outlines %v", oo)
	}
	cubic := oo[0][0]
	if cubic.Kind != Cubic {
		t.Fatalf("got %s, want cubic", cubic.Kind)
	}

	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		mt := 1 - tt
		want := vec.Vec2{
			X: mt*mt*p0.X + 2*mt*tt*c.X + tt*tt*p1.X,
			Y: mt*mt*p0.Y + 2*mt*tt*c.Y + tt*tt*p1.Y,
		}
		got := cubic.Eval(tt)
		if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Errorf("t=%g: got %v, want %v", tt, got, want)
		}
	}
}

func TestBuilderErrors(t *testing.T) {
	b := &Builder{}
	b.LineTo(vec.Vec2{X: 1, Y: 1})
	b.MoveTo(vec.Vec2{X: 0, Y: 0})
	_, err := b.Outlines()
	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected ConversionError, got %v", err)
	}
	if convErr.Op != "LineTo" || !errors.Is(err, errNoCurrentPoint) {
		t.Errorf("unexpected error %v", err)
	}

	b = &Builder{}
	b.MoveTo(vec.Vec2{X: 0, Y: 0})
	b.CubeTo(vec.Vec2{X: math.NaN()}, vec.Vec2{}, vec.Vec2{X: 1})
	if _, err := b.Outlines(); !errors.Is(err, errNotFinite) {
		t.Errorf("expected errNotFinite, got %v", err)
	}
}

func TestXMin(t *testing.T) {
	// a cubic bulging to the left of both end points
	s := NewCubic(
		vec.Vec2{X: 0, Y: 0},
		vec.Vec2{X: -40, Y: 30},
		vec.Vec2{X: -40, Y: 70},
		vec.Vec2{X: 0, Y: 100},
	)
	// x(t) = -120 t (1-t), minimal at t=1/2
	if got := s.XMin(); math.Abs(got+30) > 1e-9 {
		t.Errorf("XMin = %g, want -30", got)
	}

	o := Outline{s, NewLine(vec.Vec2{X: 0, Y: 100}, vec.Vec2{X: 0, Y: 0})}
	if x, ok := o.XMin(); !ok || math.Abs(x+30) > 1e-9 {
		t.Errorf("Outline.XMin = %g, %t", x, ok)
	}

	if _, ok := XMin(nil); ok {
		t.Error("XMin of no outlines should not be ok")
	}

	// a line running from right to left
	l := NewLine(vec.Vec2{X: 50, Y: 0}, vec.Vec2{X: -20, Y: 10})
	if got := l.XMin(); got != -20 {
		t.Errorf("line XMin = %g, want -20", got)
	}
}

func TestCurve(t *testing.T) {
	l := NewLine(vec.Vec2{X: 1, Y: 2}, vec.Vec2{X: 3, Y: 4})
	c := NewCubic(
		vec.Vec2{X: 0, Y: 0},
		vec.Vec2{X: 10, Y: 20},
		vec.Vec2{X: 30, Y: 20},
		vec.Vec2{X: 40, Y: 0},
	)

	lc := l.Curve()
	if lc.Kind != curve.LineKind || lc.P0 != curve.Pt(1, 2) || lc.P1 != curve.Pt(3, 4) {
		t.Errorf("line converted to %v", lc)
	}
	cc := c.Curve()
	if cc.Kind != curve.CubicKind || cc.P3 != curve.Pt(40, 0) {
		t.Errorf("cubic converted to %v", cc)
	}

	for _, tt := range []float64{0, 0.5, 1} {
		mt := 1 - tt
		want := vec.Vec2{
			X: 3*mt*mt*tt*10 + 3*mt*tt*tt*30 + tt*tt*tt*40,
			Y: 3*mt*mt*tt*20 + 3*mt*tt*tt*20,
		}
		got := c.Eval(tt)
		if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 {
			t.Errorf("t=%g: got %v, want %v", tt, got, want)
		}
	}
	if got := l.Eval(0.5); got != (vec.Vec2{X: 2, Y: 3}) {
		t.Errorf("line midpoint = %v", got)
	}
}

func TestTranslate(t *testing.T) {
	o := Outline{
		NewLine(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0}),
		NewCubic(vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 5}, vec.Vec2{X: 5, Y: 10}, vec.Vec2{X: 0, Y: 0}),
	}
	d := vec.Vec2{X: 3, Y: -2}
	moved := o.Translate(d)

	if o[0].P0 != (vec.Vec2{}) {
		t.Error("Translate modified the receiver")
	}
	for i := range o {
		for _, tt := range []float64{0, 0.3, 1} {
			want := o[i].Eval(tt).Add(d)
			got := moved[i].Eval(tt)
			if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 {
				t.Errorf("segment %d, t=%g: got %v, want %v", i, tt, got, want)
			}
		}
	}
	if !moved.IsClosed() {
		t.Error("translated outline is not closed")
	}
}
