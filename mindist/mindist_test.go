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

package mindist_test

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"seehuhn.de/go/autokern/contour"
	"seehuhn.de/go/autokern/internal/debug/makeglyph"
	"seehuhn.de/go/autokern/mindist"
)

func TestSetsCircles(t *testing.T) {
	left := []contour.Outline{makeglyph.Circle(0, 0, 100)}
	right := []contour.Outline{makeglyph.Circle(0, 0, 100)}

	d, ok := mindist.Sets(left, right, 300, 0)
	if !ok {
		t.Fatal("no distance")
	}
	if math.Abs(d-100) > 0.1 {
		t.Errorf("got %g, want 100", d)
	}
}

func TestSetsRectangles(t *testing.T) {
	left := []contour.Outline{makeglyph.Rect(0, 0, 100, 100)}
	right := []contour.Outline{makeglyph.Rect(0, 0, 100, 100)}

	cases := []struct {
		dx, dy, want float64
	}{
		{150, 0, 50},
		{200, 0, 100},
		{120, 30, 20},
		{0, 150, 50},
	}
	for _, c := range cases {
		d, ok := mindist.Sets(left, right, c.dx, c.dy)
		if !ok {
			t.Errorf("dx=%g dy=%g: no distance", c.dx, c.dy)
			continue
		}
		if math.Abs(d-c.want) > 1e-9 {
			t.Errorf("dx=%g dy=%g: got %g, want %g", c.dx, c.dy, d, c.want)
		}
	}
}

func TestSetsMinimumOverOutlines(t *testing.T) {
	// The second outline of each glyph is the closest one.
	left := []contour.Outline{
		makeglyph.Rect(0, 0, 50, 100),
		makeglyph.Rect(60, 0, 100, 100),
	}
	right := []contour.Outline{
		makeglyph.Rect(50, 0, 100, 100),
		makeglyph.Rect(0, 0, 40, 100),
	}

	d, ok := mindist.Sets(left, right, 110, 0)
	if !ok {
		t.Fatal("no distance")
	}
	if math.Abs(d-10) > 1e-9 {
		t.Errorf("got %g, want 10", d)
	}
}

func TestSetsEmpty(t *testing.T) {
	o := []contour.Outline{makeglyph.Rect(0, 0, 10, 10)}
	if _, ok := mindist.Sets(nil, o, 0, 0); ok {
		t.Error("distance found for empty left set")
	}
	if _, ok := mindist.Sets(o, nil, 0, 0); ok {
		t.Error("distance found for empty right set")
	}
	if _, ok := mindist.Sets([]contour.Outline{{}}, o, 0, 0); ok {
		t.Error("distance found for empty outline")
	}
}

func TestSetsTrace(t *testing.T) {
	left := []contour.Outline{
		makeglyph.Rect(0, 0, 50, 100),
		makeglyph.Rect(60, 0, 100, 100),
	}
	right := []contour.Outline{makeglyph.Rect(0, 0, 40, 100)}

	buf := &bytes.Buffer{}
	defer mindist.SetLogger(nil)

	mindist.SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	if _, ok := mindist.Sets(left, right, 110, 0); !ok {
		t.Fatal("no distance")
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output at info level: %q", buf.String())
	}

	mindist.SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	if _, ok := mindist.Sets(left, right, 110, 0); !ok {
		t.Fatal("no distance")
	}
	if n := strings.Count(buf.String(), "outline distance"); n != 2 {
		t.Errorf("got %d trace records, want 2", n)
	}
}
