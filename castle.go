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
	"strings"
)

// Move is one step of a Castle–Pitway move sequence.
type Move uint8

// The three possible moves.  MoveS advances along the x-axis, MoveD
// advances along the y-axis, and MoveSD advances along both axes.
const (
	MoveS Move = 1 << iota
	MoveD
	MoveSD = MoveS | MoveD
)

func (m Move) String() string {
	switch m {
	case MoveS:
		return "s"
	case MoveD:
		return "d"
	case MoveSD:
		return "sd"
	default:
		return "?"
	}
}

// FormatMoves returns the moves as a space separated string,
// e.g. "s sd s sd s".
func FormatMoves(moves []Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

// CastlePitway rasterizes a line using the algorithm of Castle and
// Pitway.  The move sequence (see [CastlePitwayMoves]) is computed first,
// and the points are then obtained by applying the moves one by one,
// starting at the first end point.  The result has exactly
// max(|dx|,|dy|)+1 points.
func CastlePitway(l Line) (iter.Seq[Point], error) {
	s, err := l.normalise()
	if err != nil {
		return nil, err
	}

	moves := castlePitwayMoves(s.dx, s.dy)
	seq := func(yield func(Point) bool) {
		x, y := l.X1, l.Y1
		if !yield(Point{x, y}) {
			return
		}
		for m := range moves {
			if m&MoveS != 0 {
				x += s.sx
			}
			if m&MoveD != 0 {
				y += s.sy
			}
			if !yield(Point{x, y}) {
				return
			}
		}
	}
	return seq, nil
}

// CastlePitwayMoves returns the move sequence used by [CastlePitway] to
// draw the line.  The sequence has max(|dx|,|dy|) entries:
// |dx-dy| axis-parallel moves and min(|dx|,|dy|) diagonal moves.
func CastlePitwayMoves(l Line) ([]Move, error) {
	s, err := l.normalise()
	if err != nil {
		return nil, err
	}
	res := make([]Move, 0, s.steps())
	for m := range castlePitwayMoves(s.dx, s.dy) {
		res = append(res, m)
	}
	return res, nil
}

// castlePitwayMoves runs Euclid's subtraction algorithm on the pair
// (a-b, b), where a is the larger and b the smaller of dx and dy.
// Two move strings m1 (initially a single axis-parallel move) and m2
// (initially a single diagonal move) are maintained.  Whenever the first
// entry of the pair is reduced, m2 is replaced by m1 followed by the
// reverse of m2; otherwise m1 is replaced by m2 followed by the reverse
// of m1.  When both entries are equal to the gcd g, the result is
// g copies of m2 followed by the reverse of m1.
//
// The strings are kept as a tree of concatenations, so that the
// construction costs O(1) per subtraction step and the moves can be
// produced lazily.
func castlePitwayMoves(dx, dy int) iter.Seq[Move] {
	axial := MoveS
	a, b := dx, dy
	if dy > dx {
		axial = MoveD
		a, b = dy, dx
	}

	switch {
	case a == 0:
		return func(yield func(Move) bool) {}
	case b == 0:
		return repeatMove(axial, a)
	case a == b:
		return repeatMove(MoveSD, a)
	}

	m1 := &moveNode{move: axial}
	m2 := &moveNode{move: MoveSD}
	x, y := a-b, b
	for x != y {
		if x > y {
			x -= y
			m2 = &moveNode{left: m1, right: m2}
		} else {
			y -= x
			m1 = &moveNode{left: m2, right: m1}
		}
	}
	unit := &moveNode{left: m2, right: m1}

	return func(yield func(Move) bool) {
		for range x {
			if !unit.walk(yield) {
				return
			}
		}
	}
}

func repeatMove(m Move, n int) iter.Seq[Move] {
	return func(yield func(Move) bool) {
		for range n {
			if !yield(m) {
				return
			}
		}
	}
}

// moveNode represents a string of moves.  A node without children is a
// single move, otherwise the node stands for the moves of left followed
// by the moves of right in reverse order.
type moveNode struct {
	move        Move
	left, right *moveNode
}

// walk calls yield for every move in the string.  An explicit stack is
// used, since the tree can be as deep as the line is long.
func (n *moveNode) walk(yield func(Move) bool) bool {
	type frame struct {
		node     *moveNode
		reversed bool
	}
	stack := []frame{{node: n}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.left == nil {
			if !yield(f.node.move) {
				return false
			}
			continue
		}

		// L·rev(R) is visited as L, then R reversed.  Reversed, this
		// becomes R, then L reversed.  Frames are pushed in reverse order.
		if !f.reversed {
			stack = append(stack,
				frame{node: f.node.right, reversed: true},
				frame{node: f.node.left, reversed: false})
		} else {
			stack = append(stack,
				frame{node: f.node.left, reversed: true},
				frame{node: f.node.right, reversed: false})
		}
	}
	return true
}
