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

// Package gofont provides the Go fonts as kerning masters.
//
// The upright Go fonts Regular, Medium and Bold form one family with three
// masters, the italic fonts form another.
package gofont

import (
	"bytes"
	"fmt"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/autokern/sfntsource"
)

// Master identifies a font of the Go font family.
type Master int

// These are the available masters.
const (
	Regular      Master = iota // Go Regular
	Medium                     // Go Medium
	Bold                       // Go Bold
	Italic                     // Go Italic
	MediumItalic               // Go Medium Italic
	BoldItalic                 // Go Bold Italic
)

func (m Master) String() string {
	switch m {
	case Regular:
		return "Regular"
	case Medium:
		return "Medium"
	case Bold:
		return "Bold"
	case Italic:
		return "Italic"
	case MediumItalic:
		return "MediumItalic"
	case BoldItalic:
		return "BoldItalic"
	default:
		return fmt.Sprintf("Master(%d)", int(m))
	}
}

// Font returns the font for the given master.
func (m Master) Font() (*sfnt.Font, error) {
	data, ok := ttf[m]
	if !ok {
		return nil, fmt.Errorf("gofont: unknown master %d", m)
	}

	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gofont: %w", err)
	}
	return info, nil
}

var ttf = map[Master][]byte{
	Regular:      goregular.TTF,
	Medium:       gomedium.TTF,
	Bold:         gobold.TTF,
	Italic:       goitalic.TTF,
	MediumItalic: gomediumitalic.TTF,
	BoldItalic:   gobolditalic.TTF,
}

// Upright lists the masters of the upright family, from light to heavy.
var Upright = []Master{Regular, Medium, Bold}

// Slanted lists the masters of the italic family, from light to heavy.
var Slanted = []Master{Italic, MediumItalic, BoldItalic}

// Family returns the upright Go fonts as a family with the masters
// "Regular", "Medium" and "Bold".
func Family() (*sfntsource.Family, error) {
	return newFamily(Upright)
}

// ItalicFamily returns the italic Go fonts as a family with the masters
// "Italic", "MediumItalic" and "BoldItalic".
func ItalicFamily() (*sfntsource.Family, error) {
	return newFamily(Slanted)
}

func newFamily(masters []Master) (*sfntsource.Family, error) {
	fam := sfntsource.New()
	for _, m := range masters {
		info, err := m.Font()
		if err != nil {
			return nil, err
		}
		err = fam.AddMaster(m.String(), info)
		if err != nil {
			return nil, err
		}
	}
	return fam, nil
}
