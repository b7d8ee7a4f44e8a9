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
	"cmp"
	"iter"
	"math"
	"slices"
)

// BresenhamLine rasterizes a line using Bresenham's algorithm.  Only
// integer arithmetic is used.  The result has exactly max(|dx|,|dy|)+1
// points and every step moves by at most one unit along each axis.
//
// A line and its reverse cover the same set of points.  To achieve this,
// lines whose start point is lexicographically larger than the end point
// (larger X, or equal X and larger Y) use non-strict comparisons when
// deciding whether to step, so that ties are broken the other way.  For
// these lines the output can differ from the classical formulation,
// which always uses strict comparisons.
func BresenhamLine(l Line) (iter.Seq[Point], error) {
	s, err := l.normaliseInt()
	if err != nil {
		return nil, err
	}

	// Lines starting at the lexicographically larger end point use
	// non-strict comparisons.  This visits the points of the reversed
	// line in reverse order.
	relaxed := l.X1 > l.X2 || (l.X1 == l.X2 && l.Y1 > l.Y2)

	seq := func(yield func(Point) bool) {
		x, y := l.X1, l.Y1
		e := s.dx - s.dy
		for {
			if !yield(Point{x, y}) {
				return
			}
			if x == l.X2 && y == l.Y2 {
				return
			}
			e2 := 2 * e
			stepX := e2 > -s.dy || relaxed && e2 == -s.dy
			stepY := e2 < s.dx || relaxed && e2 == s.dx
			// Both may be true, giving a diagonal step.
			if stepX {
				e -= s.dy
				x += s.sx
			}
			if stepY {
				e += s.dx
				y += s.sy
			}
		}
	}
	return seq, nil
}

// CircleOctants runs the midpoint circle algorithm over one octant and
// returns the eight reflections of every generated point, in generation
// order.  Where reflections coincide (on the axes and the diagonals) the
// point is repeated.
//
// Most callers will want [BresenhamCircle] instead.
func CircleOctants(c Circle) (iter.Seq[Point], error) {
	if err := c.validate(); err != nil {
		return nil, err
	}

	seq := func(yield func(Point) bool) {
		if c.R == 0 {
			yield(Point{c.CX, c.CY})
			return
		}
		x, y := 0, c.R
		d := 3 - 2*c.R
		for x <= y {
			reflections := [8]Point{
				{c.CX + x, c.CY + y},
				{c.CX + y, c.CY + x},
				{c.CX + y, c.CY - x},
				{c.CX + x, c.CY - y},
				{c.CX - x, c.CY - y},
				{c.CX - y, c.CY - x},
				{c.CX - y, c.CY + x},
				{c.CX - x, c.CY + y},
			}
			for _, p := range reflections {
				if !yield(p) {
					return
				}
			}

			if d < 0 {
				d += 4*x + 6
			} else {
				d += 4*(x-y) + 10
				y--
			}
			x++
		}
	}
	return seq, nil
}

// BresenhamCircle rasterizes a circle using the midpoint circle algorithm.
// The points generated by [CircleOctants] are de-duplicated and sorted by
// the angle atan2(y-cy, x-cx), so that connecting consecutive points
// traces the circle counter-clockwise, starting just above the angle -π.
// Points with equal angle are ordered by distance from the center.
//
// A circle of radius 0 consists of the center point only.
func BresenhamCircle(c Circle) (iter.Seq[Point], error) {
	raw, err := CircleOctants(c)
	if err != nil {
		return nil, err
	}

	seen := make(map[Point]struct{})
	var pts []Point
	for p := range raw {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		pts = append(pts, p)
	}

	type keyed struct {
		p     Point
		angle float64
		dist  int
	}
	keys := make([]keyed, len(pts))
	for i, p := range pts {
		dx, dy := p.X-c.CX, p.Y-c.CY
		keys[i] = keyed{
			p:     p,
			angle: math.Atan2(float64(dy), float64(dx)),
			dist:  max(abs(dx), abs(dy)),
		}
	}
	slices.SortFunc(keys, func(a, b keyed) int {
		return cmp.Or(
			cmp.Compare(a.angle, b.angle),
			cmp.Compare(a.dist, b.dist),
			cmp.Compare(a.p.X, b.p.X),
			cmp.Compare(a.p.Y, b.p.Y),
		)
	})
	for i := range keys {
		pts[i] = keys[i].p
	}

	return slices.Values(pts), nil
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
