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

var circleCases = []TestCase{
	{
		Name:    "radius_2",
		Request: circle(0, 0, 2),
		Width:   128,
		Height:  128,
		Scale:   20,
	},
	{
		Name:    "radius_5",
		Request: circle(0, 0, 5),
		Width:   256,
		Height:  256,
		Scale:   20,
	},
	{
		Name:    "radius_8_offset",
		Request: circle(3, -2, 8),
		Width:   256,
		Height:  256,
		Scale:   10,
	},
	{
		Name:    "radius_20",
		Request: circle(0, 0, 20),
		Width:   512,
		Height:  512,
		Scale:   10,
	},
	{
		Name:    "radius_100",
		Request: circle(-10, 10, 100),
		Width:   512,
		Height:  512,
		Scale:   2,
	},
}
