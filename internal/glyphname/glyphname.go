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

// Package glyphname maps glyph names to characters, for fonts where a
// glyph cannot be found by its name directly.
package glyphname

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ToRune returns the character described by a glyph name.
//
// Names consisting of a single character after NFC normalisation
// represent this character.  Names of the form uniXXXX (four hex digits)
// or uXXXX to uXXXXXX (four to six hex digits) represent the character
// with the given code point.  All other names return false.
func ToRune(name string) (rune, bool) {
	if s := norm.NFC.String(name); utf8.RuneCountInString(s) == 1 {
		r, size := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError && size <= 1 {
			return 0, false
		}
		return r, true
	}

	var hex string
	switch {
	case len(name) == 7 && strings.HasPrefix(name, "uni"):
		hex = name[3:]
	case len(name) >= 5 && len(name) <= 7 && strings.HasPrefix(name, "u"):
		hex = name[1:]
	default:
		return 0, false
	}
	code, err := strconv.ParseUint(hex, 16, 32)
	if err != nil || code > utf8.MaxRune || (code >= 0xD800 && code < 0xE000) {
		return 0, false
	}
	return rune(code), true
}
