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

// Package autokern determines kerning values for pairs of glyphs from the
// geometry of their outlines.
//
// The kern for a glyph pair is chosen so that the closest points of the two
// glyphs are a given distance apart.  Glyph outlines are obtained from a
// [Source], which maps a glyph name and a master name to a [kern.Snapshot].
// Implementations of Source are provided by the subpackages sfntsource
// (one static font file per master) and gotextsource (masters as locations
// in a variable font).
//
// A [Determiner] combines a Source with a cache of glyph snapshots:
//
//	d := autokern.New(src, nil)
//	k, err := d.DetermineKern("A", "V", "Regular", 80, 0, 0.3)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Many pairs can be kerned concurrently using [Determiner.Run].
//
// Debug traces of the solver can be enabled using [SetLogger].
package autokern
