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

package testcases

var lineCases = []TestCase{
	{
		Name:    "shallow",
		Request: line(2, 3, 7, 5),
		Width:   256,
		Height:  256,
		Scale:   20,
	},
	{
		Name:    "origin_5_2",
		Request: line(0, 0, 5, 2),
		Width:   256,
		Height:  256,
		Scale:   20,
	},
	{
		Name:    "steep",
		Request: line(-2, -6, 1, 6),
		Width:   256,
		Height:  320,
		Scale:   20,
	},
	{
		Name:    "diagonal",
		Request: line(0, 0, 4, 4),
		Width:   256,
		Height:  256,
		Scale:   20,
	},
	{
		Name:    "coprime_13_8",
		Request: line(-6, -4, 7, 4),
		Width:   320,
		Height:  256,
		Scale:   20,
	},
	{
		Name:    "common_factor_12_8",
		Request: line(-6, -4, 6, 4),
		Width:   320,
		Height:  256,
		Scale:   20,
	},
}

// octantCases contains one line for each of the eight octants, plus
// the four axis directions, all starting at the origin.
var octantCases = []TestCase{
	{Name: "octant_1", Request: line(0, 0, 9, 4), Width: 256, Height: 256, Scale: 12},
	{Name: "octant_2", Request: line(0, 0, 4, 9), Width: 256, Height: 256, Scale: 12},
	{Name: "octant_3", Request: line(0, 0, -4, 9), Width: 256, Height: 256, Scale: 12},
	{Name: "octant_4", Request: line(0, 0, -9, 4), Width: 256, Height: 256, Scale: 12},
	{Name: "octant_5", Request: line(0, 0, -9, -4), Width: 256, Height: 256, Scale: 12},
	{Name: "octant_6", Request: line(0, 0, -4, -9), Width: 256, Height: 256, Scale: 12},
	{Name: "octant_7", Request: line(0, 0, 4, -9), Width: 256, Height: 256, Scale: 12},
	{Name: "octant_8", Request: line(0, 0, 9, -4), Width: 256, Height: 256, Scale: 12},
	{Name: "axis_east", Request: line(0, 0, 7, 0), Width: 256, Height: 256, Scale: 12},
	{Name: "axis_north", Request: line(0, 0, 0, 7), Width: 256, Height: 256, Scale: 12},
	{Name: "axis_west", Request: line(0, 0, -7, 0), Width: 256, Height: 256, Scale: 12},
	{Name: "axis_south", Request: line(0, 0, 0, -7), Width: 256, Height: 256, Scale: 12},
}

var degenerateCases = []TestCase{
	{
		Name:    "point_origin",
		Request: line(0, 0, 0, 0),
		Width:   128,
		Height:  128,
		Scale:   20,
	},
	{
		Name:    "point_offset",
		Request: line(3, -2, 3, -2),
		Width:   128,
		Height:  128,
		Scale:   20,
	},
	{
		Name:    "unit_step",
		Request: line(-1, 1, 0, 0),
		Width:   128,
		Height:  128,
		Scale:   20,
	},
	{
		Name:    "radius_zero",
		Request: circle(1, 1, 0),
		Width:   128,
		Height:  128,
		Scale:   20,
	},
	{
		Name:    "radius_one",
		Request: circle(0, 0, 1),
		Width:   128,
		Height:  128,
		Scale:   20,
	},
}

// longCases contain lines with large deltas, where the floating point
// algorithms accumulate rounding errors.
var longCases = []TestCase{
	{
		Name:    "long_shallow",
		Request: line(-100, -37, 101, 40),
		Width:   512,
		Height:  512,
		Scale:   2.5,
	},
	{
		Name:    "long_steep",
		Request: line(17, 150, -20, -149),
		Width:   512,
		Height:  512,
		Scale:   1.5,
	},
	{
		Name:    "long_thirds",
		Request: line(0, 0, 300, 100),
		Width:   768,
		Height:  512,
		Scale:   2.5,
	},
}
