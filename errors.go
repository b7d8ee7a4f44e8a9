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
	"errors"
	"math"
)

var (
	// ErrInvalidInput indicates a request which is outside the domain of
	// the algorithm, for example a circle with negative radius.
	ErrInvalidInput = errors.New("invalid input")

	// ErrOverflow indicates a request where intermediate values would
	// exceed the range of int.
	ErrOverflow = errors.New("integer overflow")
)

// maxExact is the largest magnitude of an integer coordinate which can be
// represented exactly as a float64.
const maxExact = 1 << 53

// absChecked returns |a|.  The absolute value of the most negative int
// cannot be represented.
func absChecked(a int) (int, bool) {
	if a >= 0 {
		return a, true
	}
	if a == math.MinInt {
		return a, false
	}
	return -a, true
}

// sign returns -1, 0 or 1.
func sign(a int) int {
	switch {
	case a > 0:
		return 1
	case a < 0:
		return -1
	default:
		return 0
	}
}
