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

// Package profile writes CPU and memory profiles for the command line
// tools of this module.
package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Session is a running profiling session.
type Session struct {
	cpu     *os.File
	memPath string
}

// Start begins CPU profiling if cpuPath is non-empty.  If memPath is
// non-empty, an allocation profile is written to this file when the
// session is stopped.
func Start(cpuPath, memPath string) (*Session, error) {
	s := &Session{memPath: memPath}
	if cpuPath == "" {
		return s, nil
	}

	fd, err := os.Create(cpuPath)
	if err != nil {
		return nil, fmt.Errorf("cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(fd); err != nil {
		fd.Close()
		return nil, fmt.Errorf("cpu profile: %w", err)
	}
	s.cpu = fd
	return s, nil
}

// Stop ends CPU profiling and writes the memory profile.
// Calling Stop more than once has no effect.
func (s *Session) Stop() error {
	var errs []error
	if s.cpu != nil {
		pprof.StopCPUProfile()
		if err := s.cpu.Close(); err != nil {
			errs = append(errs, fmt.Errorf("cpu profile: %w", err))
		}
		s.cpu = nil
	}
	if s.memPath != "" {
		if err := writeAllocs(s.memPath); err != nil {
			errs = append(errs, fmt.Errorf("memory profile: %w", err))
		}
		s.memPath = ""
	}
	return errors.Join(errs...)
}

func writeAllocs(fname string) error {
	allocs := pprof.Lookup("allocs")
	if allocs == nil {
		return errors.New("allocs profile not available")
	}
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	runtime.GC()
	err = allocs.WriteTo(fd, 0)
	if cerr := fd.Close(); err == nil {
		err = cerr
	}
	return err
}
