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
	"fmt"

	"seehuhn.de/go/geom/path"
)

// FromPath converts a glyph path into closed outlines.
func FromPath(p path.Path) ([]Outline, error) {
	b := &Builder{}
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			b.MoveTo(pts[0])
		case path.CmdLineTo:
			b.LineTo(pts[0])
		case path.CmdQuadTo:
			b.QuadTo(pts[0], pts[1])
		case path.CmdCubeTo:
			b.CubeTo(pts[0], pts[1], pts[2])
		case path.CmdClose:
			b.ClosePath()
		default:
			b.fail(fmt.Sprint(cmd), errUnknownCommand)
		}
		if b.err != nil {
			break
		}
	}
	return b.Outlines()
}
