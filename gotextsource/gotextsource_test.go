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

package gotextsource

import (
	"bytes"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/autokern"
	"seehuhn.de/go/autokern/contour"
	"seehuhn.de/go/autokern/gofont"
	"seehuhn.de/go/autokern/sfntsource"
)

func loadGoRegular(t *testing.T) *Font {
	t.Helper()
	f, err := Load(bytes.NewReader(goregular.TTF))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestSnapshotMatchesSfnt(t *testing.T) {
	f := loadGoRegular(t)

	info, err := gofont.Regular.Font()
	if err != nil {
		t.Fatal(err)
	}
	fam := sfntsource.New()
	if err := fam.AddMaster("Regular", info); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"A", "H", "O", "g", "uni0041"} {
		got, err := f.Snapshot(name, DefaultMaster)
		if err != nil {
			t.Fatal(err)
		}
		want, err := fam.Snapshot(name, "Regular")
		if err != nil {
			t.Fatal(err)
		}

		if got.Width != want.Width {
			t.Errorf("%s: width %g, want %g", name, got.Width, want.Width)
		}
		if len(got.Outlines) != len(want.Outlines) {
			t.Errorf("%s: %d outlines, want %d", name, len(got.Outlines), len(want.Outlines))
		}
		for i, o := range got.Outlines {
			if !o.IsClosed() {
				t.Errorf("%s: outline %d is not closed", name, i)
			}
		}
		x1, _ := contour.XMin(got.Outlines)
		x2, _ := contour.XMin(want.Outlines)
		if math.Abs(x1-x2) > 1e-6 || got.LSB != x1 {
			t.Errorf("%s: LSB %g, want %g", name, x1, x2)
		}
	}
}

func TestMasters(t *testing.T) {
	f := loadGoRegular(t)

	loc, err := ParseLocation("wght=700")
	if err != nil {
		t.Fatal(err)
	}
	f.AddMaster("Bold", loc)
	if d := cmp.Diff([]string{"Bold", DefaultMaster}, f.Masters()); d != "" {
		t.Error(d)
	}

	// Go Regular is not a variable font, so all masters agree.
	bold, err := f.Snapshot("O", "Bold")
	if err != nil {
		t.Fatal(err)
	}
	regular, err := f.Snapshot("O", DefaultMaster)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(regular, bold); d != "" {
		t.Errorf("(-regular +bold):\n%s", d)
	}
}

func TestErrors(t *testing.T) {
	f := loadGoRegular(t)

	_, err := f.Snapshot("A", "Light")
	var masterErr *autokern.MasterNotFoundError
	if !errors.As(err, &masterErr) || masterErr.Master != "Light" {
		t.Errorf("unknown master: got %v", err)
	}

	_, err = f.Snapshot("no-such-glyph", DefaultMaster)
	var glyphErr *autokern.GlyphNotFoundError
	if !errors.As(err, &glyphErr) {
		t.Errorf("unknown glyph: got %v", err)
	}

	if _, err := Load(bytes.NewReader([]byte("not a font"))); err == nil {
		t.Error("invalid font accepted")
	}
}

func TestParseLocation(t *testing.T) {
	got, err := ParseLocation(" wght=300, wdth = 87.5 ")
	if err != nil {
		t.Fatal(err)
	}
	want := []font.Variation{
		{Tag: ot.MustNewTag("wght"), Value: 300},
		{Tag: ot.MustNewTag("wdth"), Value: 87.5},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}

	got, err = ParseLocation("opsz =12")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Tag != ot.MustNewTag("opsz") || got[0].Value != 12 {
		t.Errorf("opsz: got %v", got)
	}

	if got, err := ParseLocation(""); err != nil || got != nil {
		t.Errorf("empty location: got %v, %v", got, err)
	}

	for _, bad := range []string{"wght", "wg=1", " = 1", "wght=abc", "wght=1,", "wght=Inf"} {
		if _, err := ParseLocation(bad); !errors.Is(err, errBadLocation) {
			t.Errorf("%q: got %v", bad, err)
		}
	}
}

func TestAnchorPos(t *testing.T) {
	cases := []struct {
		a    tables.Anchor
		x, y float64
		ok   bool
	}{
		{tables.AnchorFormat1{XCoordinate: 10, YCoordinate: -20}, 10, -20, true},
		{tables.AnchorFormat2{XCoordinate: 500, YCoordinate: 300}, 500, 300, true},
		{tables.AnchorFormat3{XCoordinate: -5, YCoordinate: 7}, -5, 7, true},
		{nil, 0, 0, false},
	}
	for i, c := range cases {
		x, y, ok := anchorPos(c.a)
		if x != c.x || y != c.y || ok != c.ok {
			t.Errorf("%d: got %g,%g,%t", i, x, y, ok)
		}
	}
}

func TestConcurrentSnapshots(t *testing.T) {
	f := loadGoRegular(t)
	want, err := f.Snapshot("g", DefaultMaster)
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	errs := make([]string, 8)
	for i := range errs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 20 {
				got, err := f.Snapshot("g", DefaultMaster)
				if err != nil {
					errs[i] = err.Error()
					return
				}
				if d := cmp.Diff(want, got); d != "" {
					errs[i] = d
					return
				}
			}
		}()
	}
	wg.Wait()
	for i, msg := range errs {
		if msg != "" {
			t.Errorf("goroutine %d: %s", i, msg)
		}
	}
}
