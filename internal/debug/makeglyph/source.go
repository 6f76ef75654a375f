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

package makeglyph

import (
	"sync"

	"seehuhn.de/go/autokern"
	"seehuhn.de/go/autokern/kern"
)

// Source is an in-memory [autokern.Source].
// The zero value is an empty source without masters.
type Source struct {
	mu      sync.Mutex
	masters map[string]map[string]*kern.Snapshot
	calls   int
}

// Add stores glyph g in the given master, creating the master if needed.
func (s *Source) Add(master string, g *kern.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.masters == nil {
		s.masters = make(map[string]map[string]*kern.Snapshot)
	}
	m := s.masters[master]
	if m == nil {
		m = make(map[string]*kern.Snapshot)
		s.masters[master] = m
	}
	m[g.Name] = g
}

// Snapshot implements the [autokern.Source] interface.
func (s *Source) Snapshot(glyph, master string) (*kern.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	m, ok := s.masters[master]
	if !ok {
		return nil, &autokern.MasterNotFoundError{Master: master}
	}
	g, ok := m[glyph]
	if !ok {
		return nil, &autokern.GlyphNotFoundError{Glyph: glyph, Master: master}
	}
	return g, nil
}

// NumCalls returns the number of calls to Snapshot so far, including
// failed ones.
func (s *Source) NumCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}
