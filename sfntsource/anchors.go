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

package sfntsource

import (
	"bufio"
	"io"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/autokern/kern"
)

// AnchorFileError is returned by [Family.ReadAnchors] for malformed input.
type AnchorFileError struct {
	Line int
	Msg  string
}

func (err *AnchorFileError) Error() string {
	return "sfntsource: anchors line " + strconv.Itoa(err.Line) + ": " + err.Msg
}

// ReadAnchors reads glyph anchors from a text file.
//
// Each non-empty line has the form
//
//	master glyph anchor x y
//
// where master may be "*" to apply to all masters.  Text after a "#" is
// ignored.  All anchors of a glyph in a master are replaced by the anchors
// listed in the file.  If the input is malformed, no anchors are changed.
func (f *Family) ReadAnchors(r io.Reader) error {
	read := make(map[anchorKey][]kern.Anchor)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 5 {
			return &AnchorFileError{
				Line: lineNo,
				Msg:  "expected 5 fields, got " + strconv.Itoa(len(fields)),
			}
		}

		x, err := strconv.ParseFloat(fields[3], 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return &AnchorFileError{Line: lineNo, Msg: "invalid x-coordinate " + strconv.Quote(fields[3])}
		}
		y, err := strconv.ParseFloat(fields[4], 64)
		if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
			return &AnchorFileError{Line: lineNo, Msg: "invalid y-coordinate " + strconv.Quote(fields[4])}
		}

		key := anchorKey{master: fields[0], glyph: fields[1]}
		read[key] = append(read[key], kern.Anchor{Name: fields[2], X: x, Y: y})
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for key, aa := range read {
		f.anchors[key] = aa
	}
	return nil
}
