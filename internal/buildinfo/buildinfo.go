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

// Package buildinfo reports version information for the command line
// tools of this module.
package buildinfo

import (
	"runtime/debug"
)

// Info describes the module a binary was built from.
type Info struct {
	Path     string // module path
	Version  string // module version, empty for development builds
	Revision string // VCS revision, shortened to 8 characters
	Dirty    bool   // the working tree had local modifications
}

// Read returns build information for the running binary.
// The second return value is false if no information is available.
func Read() (Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}, false
	}
	return fromBuildInfo(bi), true
}

func fromBuildInfo(bi *debug.BuildInfo) Info {
	info := Info{Path: bi.Main.Path}
	if v := bi.Main.Version; v != "(devel)" {
		info.Version = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Revision = s.Value
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	if len(info.Revision) > 8 {
		info.Revision = info.Revision[:8]
	}
	return info
}

// Label returns the version part of the tool description, either the
// module version or the VCS revision.  If neither is known, the empty
// string is returned.
func (info Info) Label() string {
	if info.Version != "" {
		return info.Version
	}
	if info.Revision == "" {
		return ""
	}
	if info.Dirty {
		return info.Revision + "+dirty"
	}
	return info.Revision
}

// Short returns a short description of a tool, for example
// "autokern (seehuhn.de/go/autokern v0.2.0)".
func Short(toolName string) string {
	info, ok := Read()
	if !ok {
		return toolName
	}
	return info.describe(toolName)
}

func (info Info) describe(toolName string) string {
	label := info.Label()
	if label == "" {
		return toolName
	}
	return toolName + " (" + info.Path + " " + label + ")"
}
