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

import (
	"context"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"seehuhn.de/go/autokern/kern"
)

// Source provides glyph geometry for kerning.
//
// Implementations must return a *[MasterNotFoundError] if the master does
// not exist and a *[GlyphNotFoundError] if the glyph does not exist.
// Outlines in the returned snapshots must be closed and consist only of
// lines and cubic Bézier curves.  Source implementations must be safe for
// concurrent use.
type Source interface {
	Snapshot(glyph, master string) (*kern.Snapshot, error)
}

// Options control the behaviour of a [Determiner].
type Options struct {
	// CacheSize is the number of glyph snapshots kept in memory.
	// The value 0 selects DefaultCacheSize, negative values disable
	// caching.
	CacheSize int

	// Workers is the maximum number of pairs kerned concurrently by
	// [Determiner.Run].  The value 0 selects runtime.GOMAXPROCS(0).
	Workers int
}

// DefaultCacheSize is the cache size used if [Options.CacheSize] is zero.
const DefaultCacheSize = 256

// Query describes one glyph pair to kern.
type Query struct {
	Left, Right string
	Master      string
	kern.Params
}

// Outcome is the result of one query in a call to [Determiner.Run].
// Exactly one of Result and Err is non-nil.
type Outcome struct {
	Query  Query
	Result *kern.Result
	Err    error
}

// A Determiner computes kerning values for glyph pairs.
// A Determiner is safe for concurrent use.
type Determiner struct {
	src     Source
	workers int

	mu    sync.Mutex
	cache *snapshotCache
	load  singleflight.Group
}

// New returns a Determiner which reads glyphs from src.
// If opt is nil, default options are used.
func New(src Source, opt *Options) *Determiner {
	if opt == nil {
		opt = &Options{}
	}
	cacheSize := opt.CacheSize
	if cacheSize == 0 {
		cacheSize = DefaultCacheSize
	}
	workers := opt.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Determiner{
		src:     src,
		workers: workers,
		cache:   newSnapshotCache(cacheSize),
	}
}

// DetermineKern returns the kern for the glyph pair (left, right) in the
// given master.
//
// The kern places the glyphs so that their outlines are target units apart.
// If height is positive, the left glyph is measured height units above its
// exit anchor, otherwise it is shifted vertically by height.  If maxTuck is
// non-zero, the right glyph is not moved further than maxTuck times the
// advance width of the left glyph to the left of its own left side bearing.
func (d *Determiner) DetermineKern(left, right, master string, target float64, height int, maxTuck float64) (float64, error) {
	res, err := d.Solve(Query{
		Left:   left,
		Right:  right,
		Master: master,
		Params: kern.Params{
			Target:  target,
			Height:  height,
			MaxTuck: maxTuck,
		},
	})
	if err != nil {
		return 0, err
	}
	return res.Kern, nil
}

// Solve runs the kern solver for a single query.
func (d *Determiner) Solve(q Query) (*kern.Result, error) {
	left, err := d.snapshot(q.Left, q.Master)
	if err != nil {
		return nil, err
	}
	right, err := d.snapshot(q.Right, q.Master)
	if err != nil {
		return nil, err
	}
	res, err := kern.Solve(left, right, &q.Params)
	if err != nil {
		return nil, err
	}
	Logger().Debug("kern determined",
		"master", q.Master, "left", q.Left, "right", q.Right,
		"kern", res.Kern, "outcome", res.Outcome, "iterations", res.Iterations)
	return res, nil
}

// Run solves all queries, using up to [Options.Workers] goroutines.
//
// The returned slice has one entry for each query, in the same order.
// Failures of individual queries are reported in the Err field of the
// corresponding Outcome and do not stop the run.  If ctx is cancelled,
// Run stops starting new queries and returns the context's error.
func (d *Determiner) Run(ctx context.Context, qq []Query) ([]Outcome, error) {
	res := make([]Outcome, len(qq))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.workers)
	for i, q := range qq {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := d.Solve(q)
			if err != nil {
				Logger().Debug("query failed",
					"master", q.Master, "left", q.Left, "right", q.Right,
					"error", err)
			}
			res[i] = Outcome{Query: q, Result: r, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// snapshot returns the snapshot for a glyph, loading it from the source if
// it is not cached.  Concurrent requests for the same glyph share a single
// call to the source.
func (d *Determiner) snapshot(glyph, master string) (*kern.Snapshot, error) {
	key := snapshotKey{glyph: glyph, master: master}

	d.mu.Lock()
	snap, ok := d.cache.Get(key)
	d.mu.Unlock()
	if ok {
		return snap, nil
	}

	v, err, _ := d.load.Do(master+"\x00"+glyph, func() (any, error) {
		snap, err := d.src.Snapshot(glyph, master)
		if err != nil {
			return nil, err
		}
		Logger().Debug("glyph loaded", "master", master, "glyph", glyph,
			"outlines", len(snap.Outlines))
		d.mu.Lock()
		d.cache.Put(key, snap)
		d.mu.Unlock()
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*kern.Snapshot), nil
}
