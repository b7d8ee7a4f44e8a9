// seehuhn.de/go/gridraster - integer grid rasterization algorithms
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

package gridraster

import (
	"iter"
	"math"
)

// StepLine rasterizes a line by sampling the parametric form
// p(t) = p1 + t·(p2-p1) at t = i/n for i = 0, ..., n, where n is the
// larger of the two absolute deltas.  Samples are rounded to the nearest
// grid point, with ties rounded up.
func StepLine(l Line) (iter.Seq[Point], error) {
	s, err := l.normaliseFloat()
	if err != nil {
		return nil, err
	}

	n := s.steps()
	dx, dy := float64(l.X2-l.X1), float64(l.Y2-l.Y1)

	seq := func(yield func(Point) bool) {
		if n == 0 {
			yield(Point{l.X1, l.Y1})
			return
		}
		for i := 0; i <= n; i++ {
			t := float64(i) / float64(n)
			p := Point{
				X: l.X1 + roundHalfUp(dx*t),
				Y: l.Y1 + roundHalfUp(dy*t),
			}
			if !yield(p) {
				return
			}
		}
	}
	return seq, nil
}

// DDALine rasterizes a line using the digital differential analyzer.
// The per-step increments dx/n and dy/n are added up repeatedly, and
// each of the n+1 accumulated offsets from the start point is rounded to
// the nearest integer, with ties rounded up.
//
// Since the samples are accumulated, floating point errors can make the
// result differ from [StepLine] for very long lines.
func DDALine(l Line) (iter.Seq[Point], error) {
	s, err := l.normaliseFloat()
	if err != nil {
		return nil, err
	}

	n := s.steps()
	seq := func(yield func(Point) bool) {
		if n == 0 {
			yield(Point{l.X1, l.Y1})
			return
		}
		xInc := float64(l.X2-l.X1) / float64(n)
		yInc := float64(l.Y2-l.Y1) / float64(n)
		// Only the offset from the start point is accumulated.  Far from
		// the origin, adding xInc to the absolute coordinate would lose
		// the increment to rounding.
		var ox, oy float64
		for i := 0; i <= n; i++ {
			p := Point{l.X1 + roundHalfUp(ox), l.Y1 + roundHalfUp(oy)}
			if !yield(p) {
				return
			}
			ox += xInc
			oy += yInc
		}
	}
	return seq, nil
}

// roundHalfUp rounds to the nearest integer.  Values exactly half-way
// between two integers are rounded towards positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}
