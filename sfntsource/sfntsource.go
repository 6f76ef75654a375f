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

// Package sfntsource reads glyph geometry for kerning from OpenType and
// TrueType font files.
//
// Each master of a [Family] is a separate static font.  Anchors are not
// stored in the fonts and can be supplied using [Family.SetAnchors] or
// [Family.ReadAnchors].
package sfntsource

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"golang.org/x/exp/maps"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/autokern"
	"seehuhn.de/go/autokern/contour"
	"seehuhn.de/go/autokern/internal/glyphname"
	"seehuhn.de/go/autokern/kern"
)

// AllMasters can be used as the master name in [Family.SetAnchors] to set
// anchors for all masters.
const AllMasters = "*"

// Family is a set of masters, each given by an sfnt font.
// A Family is safe for concurrent use.
type Family struct {
	mu      sync.RWMutex
	masters map[string]*master
	anchors map[anchorKey][]kern.Anchor
}

type master struct {
	font  *sfnt.Font
	cmap  cmap.Subtable
	names map[string]glyph.ID
}

type anchorKey struct {
	master, glyph string
}

// New returns a new, empty font family.
func New() *Family {
	return &Family{
		masters: make(map[string]*master),
		anchors: make(map[anchorKey][]kern.Anchor),
	}
}

var errNoOutlines = errors.New("font has no glyph outlines")

// AddMaster adds a font to the family, under the given master name.
// An existing master with the same name is replaced.
//
// The font must not be modified after it has been added.
func (f *Family) AddMaster(name string, font *sfnt.Font) error {
	if font.Outlines == nil {
		return fmt.Errorf("sfntsource: master %q: %w", name, errNoOutlines)
	}

	font.EnsureGlyphNames()
	m := &master{
		font:  font,
		names: make(map[string]glyph.ID, font.NumGlyphs()),
	}
	for i := 0; i < font.NumGlyphs(); i++ {
		gid := glyph.ID(i)
		name := font.GlyphName(gid)
		if _, seen := m.names[name]; name != "" && !seen {
			m.names[name] = gid
		}
	}
	if subtable, err := font.CMapTable.GetBest(); err == nil {
		m.cmap = subtable
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.masters[name] = m
	return nil
}

// AddMasterFile reads a font file and adds it to the family.
func (f *Family) AddMasterFile(name, fname string) error {
	fd, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer fd.Close()

	font, err := sfnt.Read(fd)
	if err != nil {
		return fmt.Errorf("sfntsource: %s: %w", fname, err)
	}
	return f.AddMaster(name, font)
}

// Masters returns the names of all masters in the family, in sorted order.
func (f *Family) Masters() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	names := maps.Keys(f.masters)
	slices.Sort(names)
	return names
}

// SetAnchors sets the anchors of a glyph.  If master is [AllMasters], the
// anchors are used for every master which has no anchors of its own for
// this glyph.
func (f *Family) SetAnchors(master, glyphName string, anchors []kern.Anchor) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := anchorKey{master: master, glyph: glyphName}
	if len(anchors) == 0 {
		delete(f.anchors, key)
		return
	}
	f.anchors[key] = slices.Clone(anchors)
}

// Snapshot implements the [autokern.Source] interface.
func (f *Family) Snapshot(glyphName, masterName string) (*kern.Snapshot, error) {
	f.mu.RLock()
	m, ok := f.masters[masterName]
	anchors := f.anchors[anchorKey{master: masterName, glyph: glyphName}]
	if anchors == nil {
		anchors = f.anchors[anchorKey{master: AllMasters, glyph: glyphName}]
	}
	f.mu.RUnlock()

	if !ok {
		return nil, &autokern.MasterNotFoundError{Master: masterName}
	}
	gid, ok := m.lookup(glyphName)
	if !ok {
		return nil, &autokern.GlyphNotFoundError{Glyph: glyphName, Master: masterName}
	}

	outlines, err := contour.FromPath(m.font.Outlines.Path(gid))
	if err != nil {
		return nil, fmt.Errorf("sfntsource: glyph %q in master %q: %w",
			glyphName, masterName, err)
	}

	snap := &kern.Snapshot{
		Name:     glyphName,
		Outlines: outlines,
		Width:    float64(m.font.GlyphWidth(gid)),
		Anchors:  slices.Clone(anchors),
	}
	snap.LSB, snap.HasLSB = m.leftBearing(gid, outlines)
	return snap, nil
}

// lookup finds a glyph by name.  If there is no glyph of this name, the
// name is interpreted as a character and the glyph is found through the
// character map.
func (m *master) lookup(name string) (glyph.ID, bool) {
	if gid, ok := m.names[name]; ok {
		return gid, true
	}
	if m.cmap == nil {
		return 0, false
	}
	r, ok := glyphname.ToRune(name)
	if !ok {
		return 0, false
	}
	gid := m.cmap.Lookup(r)
	return gid, gid != 0
}

// leftBearing returns the left side bearing of a glyph.  For TrueType
// outlines, this is the minimum x-coordinate stored in the glyf table.
// Otherwise the bearing is computed from the outlines.
func (m *master) leftBearing(gid glyph.ID, outlines []contour.Outline) (float64, bool) {
	if len(outlines) == 0 {
		return 0, false
	}
	if g, ok := m.font.Outlines.(*glyf.Outlines); ok && int(gid) < len(g.Glyphs) {
		if gg := g.Glyphs[gid]; gg != nil {
			return rectLeft(gg.Rect16), true
		}
	}
	return contour.XMin(outlines)
}

func rectLeft(r funit.Rect16) float64 {
	return float64(r.LLx)
}
