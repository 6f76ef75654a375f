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

// Package gotextsource reads glyph geometry for kerning from variable
// fonts, using the go-text font parser.
//
// Masters are locations in the design space of a single font, given as
// values for the variation axes.  Entry and exit anchors are taken from
// the cursive attachment lookups in the GPOS table.
package gotextsource

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
	"golang.org/x/exp/maps"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/autokern"
	"seehuhn.de/go/autokern/contour"
	"seehuhn.de/go/autokern/internal/glyphname"
	"seehuhn.de/go/autokern/kern"
)

// DefaultMaster is the name of the master at the default location of
// the font.  It is added by [Load].
const DefaultMaster = "Default"

// maxGlyphs bounds the glyph scan in [Load].
const maxGlyphs = 1 << 16

// Font is a variable font with a set of named masters.
// A Font is safe for concurrent use.
type Font struct {
	font    *font.Font
	names   map[string]font.GID
	anchors map[font.GID][]kern.Anchor

	mu      sync.RWMutex
	masters map[string]*instance
}

// instance is a font face at one location of the design space.
// Faces cache glyph data and are not safe for concurrent use.
type instance struct {
	mu   sync.Mutex
	face *font.Face
}

// Load reads a font file.  The returned Font has a single master,
// [DefaultMaster].
func Load(r font.Resource) (*Font, error) {
	face, err := font.ParseTTF(r)
	if err != nil {
		return nil, fmt.Errorf("gotextsource: %w", err)
	}

	f := &Font{
		font:    face.Font,
		names:   make(map[string]font.GID),
		masters: map[string]*instance{DefaultMaster: {face: face}},
	}
	numGlyphs := 0
	for numGlyphs < maxGlyphs {
		gid := font.GID(numGlyphs)
		if _, ok := face.GlyphDataOutline(tables.GlyphID(gid)); !ok {
			break
		}
		numGlyphs++
		name := f.font.GlyphName(gid)
		if _, seen := f.names[name]; name != "" && !seen {
			f.names[name] = gid
		}
	}
	f.anchors = cursiveAnchors(f.font, numGlyphs)
	return f, nil
}

// AddMaster adds a master at the given location of the design space.
// Axes not mentioned in loc use their default value.  An existing
// master with the same name is replaced.
func (f *Font) AddMaster(name string, loc []font.Variation) {
	face := font.NewFace(f.font)
	face.SetVariations(loc)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.masters[name] = &instance{face: face}
}

// Masters returns the names of all masters, in sorted order.
func (f *Font) Masters() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := maps.Keys(f.masters)
	slices.Sort(names)
	return names
}

// Snapshot implements the [autokern.Source] interface.
func (f *Font) Snapshot(glyphName, masterName string) (*kern.Snapshot, error) {
	f.mu.RLock()
	inst, ok := f.masters[masterName]
	f.mu.RUnlock()
	if !ok {
		return nil, &autokern.MasterNotFoundError{Master: masterName}
	}

	gid, ok := f.lookup(glyphName)
	if !ok {
		return nil, &autokern.GlyphNotFoundError{Glyph: glyphName, Master: masterName}
	}

	inst.mu.Lock()
	data, ok := inst.face.GlyphDataOutline(tables.GlyphID(gid))
	width := inst.face.HorizontalAdvance(gid)
	inst.mu.Unlock()
	if !ok {
		return nil, &autokern.GlyphNotFoundError{Glyph: glyphName, Master: masterName}
	}

	outlines, err := convert(data)
	if err != nil {
		return nil, fmt.Errorf("gotextsource: glyph %q in master %q: %w",
			glyphName, masterName, err)
	}

	snap := &kern.Snapshot{
		Name:     glyphName,
		Outlines: outlines,
		Width:    float64(width),
		Anchors:  slices.Clone(f.anchors[gid]),
	}
	snap.LSB, snap.HasLSB = contour.XMin(outlines)
	return snap, nil
}

func (f *Font) lookup(name string) (font.GID, bool) {
	if gid, ok := f.names[name]; ok {
		return gid, true
	}
	r, ok := glyphname.ToRune(name)
	if !ok {
		return 0, false
	}
	return f.font.NominalGlyph(r)
}

// convert turns a go-text outline into closed contours.  Contours in
// go-text outlines are implicitly closed by the next MoveTo.
func convert(data font.GlyphOutline) ([]contour.Outline, error) {
	b := &contour.Builder{}
	for _, seg := range data.Segments {
		a := seg.Args
		switch seg.Op {
		case ot.SegmentOpMoveTo:
			b.MoveTo(toVec(a[0]))
		case ot.SegmentOpLineTo:
			b.LineTo(toVec(a[0]))
		case ot.SegmentOpQuadTo:
			b.QuadTo(toVec(a[0]), toVec(a[1]))
		case ot.SegmentOpCubeTo:
			b.CubeTo(toVec(a[0]), toVec(a[1]), toVec(a[2]))
		default:
			return nil, &contour.ConversionError{
				Op:  "segment op " + strconv.Itoa(int(seg.Op)),
				Err: errUnknownOp,
			}
		}
	}
	return b.Outlines()
}

var errUnknownOp = errors.New("unknown operation")

func toVec(p ot.SegmentPoint) vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// cursiveAnchors collects the entry and exit anchors of all glyphs from
// the cursive attachment subtables of the GPOS table.  If a glyph is
// covered by more than one subtable, the first one is used.
func cursiveAnchors(fnt *font.Font, numGlyphs int) map[font.GID][]kern.Anchor {
	res := make(map[font.GID][]kern.Anchor)
	for _, lookup := range fnt.GPOS.Lookups {
		for _, sub := range lookup.Subtables {
			cursive, ok := sub.(tables.CursivePos)
			if !ok {
				continue
			}
			cov := cursive.Cov()
			if cov == nil {
				continue
			}
			for i := 0; i < numGlyphs; i++ {
				idx, ok := cov.Index(tables.GlyphID(i))
				if !ok || idx >= len(cursive.EntryExits) {
					continue
				}
				gid := font.GID(i)
				if _, seen := res[gid]; seen {
					continue
				}
				ee := cursive.EntryExits[idx]
				var aa []kern.Anchor
				if x, y, ok := anchorPos(ee.EntryAnchor); ok {
					aa = append(aa, kern.Anchor{Name: "entry", X: x, Y: y})
				}
				if x, y, ok := anchorPos(ee.ExitAnchor); ok {
					aa = append(aa, kern.Anchor{Name: kern.ExitAnchor, X: x, Y: y})
				}
				if aa != nil {
					res[gid] = aa
				}
			}
		}
	}
	return res
}

func anchorPos(a tables.Anchor) (x, y float64, ok bool) {
	switch a := a.(type) {
	case tables.AnchorFormat1:
		return float64(a.XCoordinate), float64(a.YCoordinate), true
	case tables.AnchorFormat2:
		return float64(a.XCoordinate), float64(a.YCoordinate), true
	case tables.AnchorFormat3:
		return float64(a.XCoordinate), float64(a.YCoordinate), true
	default:
		return 0, 0, false
	}
}

var errBadLocation = errors.New("malformed location")

// ParseLocation parses a design space location of the form
// "wght=300,wdth=80".  Axis tags must have four characters.
// The empty string gives the default location.
func ParseLocation(s string) ([]font.Variation, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var res []font.Variation
	for _, part := range strings.Split(s, ",") {
		tag, val, ok := strings.Cut(part, "=")
		tag = strings.TrimSpace(tag)
		if !ok || len(tag) != 4 {
			return nil, fmt.Errorf("gotextsource: %q: %w", part, errBadLocation)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(val), 32)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("gotextsource: %q: %w", part, errBadLocation)
		}
		res = append(res, font.Variation{Tag: ot.MustNewTag(tag), Value: float32(x)})
	}
	return res, nil
}
