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
	"fmt"

	"github.com/JohnCGriffin/overflow"
)

// Point is a cell of the integer grid.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Request describes a shape to be rasterized.
// This is either a [Line] or a [Circle].
type Request interface {
	isRequest()
}

// Line is a request for the line segment between two grid points.
// The end points can be in any relative position, and may coincide.
type Line struct {
	X1, Y1 int // start point
	X2, Y2 int // end point
}

func (Line) isRequest() {}

func (l Line) String() string {
	return fmt.Sprintf("line (%d,%d)-(%d,%d)", l.X1, l.Y1, l.X2, l.Y2)
}

// Start returns the first end point of the line.
func (l Line) Start() Point {
	return Point{l.X1, l.Y1}
}

// End returns the second end point of the line.
func (l Line) End() Point {
	return Point{l.X2, l.Y2}
}

// Circle is a request for the circle with center (CX, CY) and radius R.
// R must be non-negative.
type Circle struct {
	CX, CY int
	R      int
}

func (Circle) isRequest() {}

func (c Circle) String() string {
	return fmt.Sprintf("circle (%d,%d) r=%d", c.CX, c.CY, c.R)
}

// Center returns the center of the circle.
func (c Circle) Center() Point {
	return Point{c.CX, c.CY}
}

// lineSteps holds the octant normalisation of a line: the absolute deltas
// and the direction of travel along each axis.
type lineSteps struct {
	dx, dy int // non-negative
	sx, sy int // -1, 0 or 1
}

// steps returns max(dx, dy).
func (s lineSteps) steps() int {
	return max(s.dx, s.dy)
}

// normalise checks that the deltas of the line can be represented and
// returns the octant information.
func (l Line) normalise() (lineSteps, error) {
	dx, ok1 := overflow.Sub(l.X2, l.X1)
	dy, ok2 := overflow.Sub(l.Y2, l.Y1)
	if !ok1 || !ok2 {
		return lineSteps{}, fmt.Errorf("%s: %w", l, ErrOverflow)
	}
	adx, ok1 := absChecked(dx)
	ady, ok2 := absChecked(dy)
	if !ok1 || !ok2 {
		return lineSteps{}, fmt.Errorf("%s: %w", l, ErrOverflow)
	}
	return lineSteps{dx: adx, dy: ady, sx: sign(dx), sy: sign(dy)}, nil
}

// normaliseInt is like normalise, but additionally checks that the
// doubled deltas used by the error terms of Bresenham's algorithm fit
// into an int.
func (l Line) normaliseInt() (lineSteps, error) {
	s, err := l.normalise()
	if err != nil {
		return s, err
	}
	_, ok1 := overflow.Mul(2, s.dx)
	_, ok2 := overflow.Mul(2, s.dy)
	if !ok1 || !ok2 {
		return s, fmt.Errorf("%s: %w", l, ErrOverflow)
	}
	return s, nil
}

// normaliseFloat is like normalise, but additionally checks that all
// coordinates and deltas can be represented exactly as float64 values.
func (l Line) normaliseFloat() (lineSteps, error) {
	s, err := l.normalise()
	if err != nil {
		return s, err
	}
	for _, v := range []int{l.X1, l.Y1, l.X2, l.Y2, s.dx, s.dy} {
		if v > maxExact || v < -maxExact {
			return s, fmt.Errorf("%s: %w", l, ErrOverflow)
		}
	}
	return s, nil
}

// validate checks the radius and makes sure that the bounding box of the
// circle and the decision variable of the midpoint algorithm fit into an
// int.  The decision variable stays within ±(4r+16).
func (c Circle) validate() error {
	if c.R < 0 {
		return fmt.Errorf("%s: negative radius: %w", c, ErrInvalidInput)
	}
	_, ok1 := overflow.Add(c.CX, c.R)
	_, ok2 := overflow.Sub(c.CX, c.R)
	_, ok3 := overflow.Add(c.CY, c.R)
	_, ok4 := overflow.Sub(c.CY, c.R)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return fmt.Errorf("%s: %w", c, ErrOverflow)
	}
	d, ok := overflow.Mul(4, c.R)
	if ok {
		_, ok = overflow.Add(d, 16)
	}
	if !ok {
		return fmt.Errorf("%s: %w", c, ErrOverflow)
	}
	return nil
}
