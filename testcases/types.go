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

import "seehuhn.de/go/gridraster"

// TestCase defines a single rasterization scenario.
type TestCase struct {
	Name    string             // lowercase a-z, 0-9 and _ only
	Request gridraster.Request // a Line or a Circle
	Width   int                // canvas width in pixels
	Height  int                // canvas height in pixels
	Scale   float64            // canvas pixels per grid unit
}

// Algorithms returns the algorithms which can be applied to the test case.
func (tc TestCase) Algorithms() []gridraster.Algorithm {
	var res []gridraster.Algorithm
	for _, alg := range gridraster.Algorithms() {
		if alg.Shape() == shapeOf(tc.Request) {
			res = append(res, alg)
		}
	}
	return res
}

func shapeOf(req gridraster.Request) gridraster.Shape {
	if _, isCircle := req.(gridraster.Circle); isCircle {
		return gridraster.ShapeCircle
	}
	return gridraster.ShapeLine
}

// line is a helper to create a line request.
func line(x1, y1, x2, y2 int) gridraster.Line {
	return gridraster.Line{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// circle is a helper to create a circle request.
func circle(cx, cy, r int) gridraster.Circle {
	return gridraster.Circle{CX: cx, CY: cy, R: r}
}
