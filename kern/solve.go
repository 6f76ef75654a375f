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

package kern

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"seehuhn.de/go/autokern/mindist"
)

// DefaultFloor is the kern returned for glyph pairs without measurable
// geometry when the tuck constraint is disabled.
const DefaultFloor = -1000

// Default values for the zero fields of [Params].
const (
	DefaultMaxIterations = 10
	DefaultTolerance     = 10
)

// ExitAnchor is the name of the anchor on the left glyph which shifts
// the vertical measuring position.
const ExitAnchor = "exit"

// Method selects how the kern is updated between rounds.
type Method int

// These are the supported update methods.
const (
	// Linear adds the remaining distance error to the kern in every round.
	Linear Method = iota

	// Secant divides the remaining error by the slope observed between the
	// last two rounds.  The slope is clamped to [minSlope, maxSlope].
	Secant
)

func (m Method) String() string {
	switch m {
	case Linear:
		return "linear"
	case Secant:
		return "secant"
	default:
		return "Method(" + strconv.Itoa(int(m)) + ")"
	}
}

const (
	minSlope = 0.1
	maxSlope = 10
)

// Params controls a call to [Solve].
type Params struct {
	// Target is the desired minimum distance between the two glyphs, in
	// font design units.
	Target float64

	// Height shifts the left glyph vertically before measuring.  If Height
	// is positive, the shift is Height minus the y-coordinate of the exit
	// anchor of the left glyph.  Otherwise the shift is Height.
	Height int

	// MaxTuck limits how far the right glyph may move under the left one,
	// as a fraction of the advance width of the left glyph.  The value 0
	// disables the limit.
	MaxTuck float64

	// MaxIterations is the maximum number of measuring rounds.
	// The value 0 selects DefaultMaxIterations.
	MaxIterations int

	// Tolerance is the largest acceptable difference between the measured
	// distance and Target.  The value 0 selects DefaultTolerance.
	Tolerance float64

	Method Method
}

// Outcome says why [Solve] stopped.
type Outcome int

// These are the possible outcomes of [Solve].
const (
	Converged Outcome = iota
	IterationLimit
	BelowFloor
	NoGeometry
)

func (o Outcome) String() string {
	switch o {
	case Converged:
		return "converged"
	case IterationLimit:
		return "iteration limit"
	case BelowFloor:
		return "below floor"
	case NoGeometry:
		return "no geometry"
	default:
		return "Outcome(" + strconv.Itoa(int(o)) + ")"
	}
}

// Result describes the kern found by [Solve].
type Result struct {
	// Kern is the horizontal adjustment to apply between the two glyphs.
	Kern float64

	// Distance is the last measured distance between the glyphs.
	// This is the distance for the kern of the previous round, not for
	// Kern itself.  If no distance was measured, Distance is NaN.
	Distance float64

	// Iterations is the number of completed measuring rounds.
	Iterations int

	// Floor is the smallest kern permitted by the tuck constraint, or
	// DefaultFloor if the constraint is disabled.
	Floor float64

	Outcome Outcome
}

// MissingLSBError is returned by [Solve] if the tuck constraint is enabled
// but the left side bearing of the right glyph is unknown.
type MissingLSBError struct {
	Glyph string
}

func (err *MissingLSBError) Error() string {
	return fmt.Sprintf("kern: glyph %q has no left side bearing", err.Glyph)
}

var (
	errNotFinite  = errors.New("kern: parameters must be finite")
	errNegativeIt = errors.New("kern: negative iteration limit")
)

// Solve finds the kern which places the right glyph so that the
// closest points of the two glyphs are Target units apart.
//
// The left glyph stays at the origin and the right glyph is placed at
// the advance width of the left glyph plus the kern.  If the glyphs have
// no measurable geometry, the floor is returned with outcome NoGeometry.
// If the tuck constraint is enabled and the kern drops below the floor,
// the floor is returned with outcome BelowFloor.
func Solve(left, right *Snapshot, p *Params) (*Result, error) {
	if !isFinite(p.Target) || !isFinite(p.MaxTuck) || !isFinite(p.Tolerance) ||
		!isFinite(left.Width) {
		return nil, errNotFinite
	}
	if p.MaxIterations < 0 {
		return nil, errNegativeIt
	}
	maxIter := p.MaxIterations
	if maxIter == 0 {
		maxIter = DefaultMaxIterations
	}
	tol := p.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}

	var exitY float64
	if a, ok := left.Anchor(ExitAnchor); ok {
		exitY = a.Y
	}
	dy := float64(p.Height)
	if p.Height > 0 {
		dy -= exitY
	}

	useFloor := p.MaxTuck != 0
	floor := float64(DefaultFloor)
	if useFloor {
		if !right.HasLSB {
			return nil, &MissingLSBError{Glyph: right.Name}
		}
		floor = min(-right.LSB, 0) - left.Width*p.MaxTuck
	}

	log := logger()
	res := &Result{
		Distance: math.NaN(),
		Floor:    floor,
	}

	if left.IsEmpty() || right.IsEmpty() {
		log.Debug("no measurable geometry",
			"left", left.Name, "right", right.Name)
		res.Kern = floor
		res.Outcome = NoGeometry
		return res, nil
	}

	offset := 0.0
	dist := math.Inf(-1)
	var prevOffset, prevDist float64
	havePrev := false
	for res.Iterations < maxIter && math.Abs(p.Target-dist) > tol {
		d, ok := mindist.Sets(left.Outlines, right.Outlines, offset+left.Width, dy)
		if !ok {
			log.Debug("no measurable geometry",
				"left", left.Name, "right", right.Name)
			res.Kern = floor
			res.Outcome = NoGeometry
			return res, nil
		}
		log.Debug(fmt.Sprintf("with kern %g, distance was %g", offset, d),
			"left", left.Name, "right", right.Name, "round", res.Iterations)
		dist = d
		res.Distance = d

		step := p.Target - d
		if p.Method == Secant && havePrev && offset != prevOffset {
			slope := (d - prevDist) / (offset - prevOffset)
			slope = min(max(slope, minSlope), maxSlope)
			step /= slope
		}
		prevOffset, prevDist, havePrev = offset, d, true
		offset += step

		if useFloor && offset < floor {
			log.Debug("kern below floor",
				"left", left.Name, "right", right.Name,
				"kern", offset, "floor", floor)
			res.Kern = floor
			res.Outcome = BelowFloor
			return res, nil
		}
		res.Iterations++
	}

	res.Kern = offset
	if math.Abs(p.Target-dist) > tol {
		res.Outcome = IterationLimit
	} else {
		res.Outcome = Converged
	}
	return res, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
