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

package autokern

import "strconv"

// MasterNotFoundError is returned by a [Source] if the requested master
// does not exist.
type MasterNotFoundError struct {
	Master string
}

func (err *MasterNotFoundError) Error() string {
	return "autokern: master " + strconv.Quote(err.Master) + " not found"
}

// GlyphNotFoundError is returned by a [Source] if the requested glyph
// does not exist in the given master.
type GlyphNotFoundError struct {
	Glyph  string
	Master string
}

func (err *GlyphNotFoundError) Error() string {
	tail := ""
	if err.Master != "" {
		tail = " in master " + strconv.Quote(err.Master)
	}
	return "autokern: glyph " + strconv.Quote(err.Glyph) + " not found" + tail
}
