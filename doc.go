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

// Package gridraster implements classical algorithms which convert lines
// and circles into sequences of integer grid points.
//
// Five algorithms are provided: naive parametric stepping, the digital
// differential analyzer (DDA), Bresenham's line algorithm, Bresenham's
// (midpoint) circle algorithm and the Castle–Pitway run-length line
// algorithm.  Each algorithm returns an [iter.Seq] of [Point] values in
// drawing order.  The sequences can be iterated more than once, and
// iteration can be stopped early to bound the work spent on huge inputs.
//
// Requests are validated before any point is produced.  Invalid requests
// are reported using errors wrapping [ErrInvalidInput], requests where the
// intermediate arithmetic would not fit into an int are reported using
// errors wrapping [ErrOverflow].
//
// The [Algorithm] type allows to select one of the algorithms by value.
// [Algorithm.Rasterize] collects the points and measures the time taken.
package gridraster
