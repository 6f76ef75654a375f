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

import "seehuhn.de/go/autokern/kern"

// snapshotKey identifies a glyph in a master.
type snapshotKey struct {
	glyph, master string
}

// snapshotCache is a least-recently-used cache of glyph snapshots.
// The cache is not safe for concurrent use.
type snapshotCache struct {
	capacity    int
	entries     map[snapshotKey]*cacheEntry
	first, last *cacheEntry
}

type cacheEntry struct {
	prev, next *cacheEntry
	key        snapshotKey
	snap       *kern.Snapshot
}

// newSnapshotCache creates a new cache which holds up to capacity snapshots.
// If capacity is not positive, nothing is ever stored.
func newSnapshotCache(capacity int) *snapshotCache {
	return &snapshotCache{
		capacity: capacity,
		entries:  make(map[snapshotKey]*cacheEntry, max(capacity, 0)),
	}
}

// Put adds a snapshot to the cache, evicting the least recently used
// entry if the cache is full.
func (c *snapshotCache) Put(key snapshotKey, snap *kern.Snapshot) {
	if c.capacity <= 0 {
		return
	}

	if ent, ok := c.entries[key]; ok {
		ent.snap = snap
		c.moveToFront(ent)
		return
	}

	ent := &cacheEntry{key: key, snap: snap}
	c.entries[key] = ent
	c.moveToFront(ent)

	if len(c.entries) > c.capacity {
		c.removeLast()
	}
}

// Get returns a snapshot from the cache and marks it as recently used.
func (c *snapshotCache) Get(key snapshotKey) (*kern.Snapshot, bool) {
	ent, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.moveToFront(ent)
	return ent.snap, true
}

// Len returns the number of cached snapshots.
func (c *snapshotCache) Len() int {
	return len(c.entries)
}

func (c *snapshotCache) moveToFront(ent *cacheEntry) {
	if ent == c.first {
		return
	}

	if ent.prev != nil {
		ent.prev.next = ent.next
	}
	if ent.next != nil {
		ent.next.prev = ent.prev
	}
	if ent == c.last {
		c.last = ent.prev
	}

	ent.prev = nil
	ent.next = c.first
	if c.first != nil {
		c.first.prev = ent
	}
	c.first = ent
	if c.last == nil {
		c.last = ent
	}
}

func (c *snapshotCache) removeLast() {
	ent := c.last
	if ent == nil {
		return
	}

	delete(c.entries, ent.key)
	c.last = ent.prev
	if c.last != nil {
		c.last.next = nil
	} else {
		c.first = nil
	}
	ent.prev = nil
}
