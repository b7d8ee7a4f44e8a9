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

package canvas

import (
	"image/color"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Surface is the drawing target of a [Painter].
// All coordinates are screen coordinates, in pixels.
type Surface interface {
	// Clear fills the whole surface with the given color.
	Clear(c color.Color)

	// StrokeLine draws a straight line with round caps.
	StrokeLine(from, to vec.Vec2, width float64, c color.Color)

	// FillCircle draws a filled disc.
	FillCircle(center vec.Vec2, radius float64, c color.Color)

	// Text draws a single line of text, positioned relative to the
	// given point as specified by align.
	Text(s string, at vec.Vec2, align Align, c color.Color)
}

// Align describes how text is placed relative to its anchor point.
type Align uint8

// Horizontal and vertical alignment flags can be combined,
// e.g. AlignCenter|AlignTop.
const (
	AlignLeft   Align = 0
	AlignCenter Align = 1
	AlignRight  Align = 2

	AlignBaseline Align = 0
	AlignTop      Align = 4
	AlignMiddle   Align = 8

	hMask = AlignCenter | AlignRight
	vMask = AlignTop | AlignMiddle
)

// kappa is the distance of the control points from the end points, for
// approximating a quarter circle of radius 1 with a cubic Bézier curve.
const kappa = 0.5522847498307936

// circlePath returns a closed outline of a circle, made of four cubic
// Bézier curves.
func circlePath(c vec.Vec2, r float64) *path.Data {
	k := kappa * r
	pt := func(x, y float64) vec.Vec2 { return vec.Vec2{X: c.X + x, Y: c.Y + y} }
	return (&path.Data{}).
		MoveTo(pt(r, 0)).
		CubeTo(pt(r, k), pt(k, r), pt(0, r)).
		CubeTo(pt(-k, r), pt(-r, k), pt(-r, 0)).
		CubeTo(pt(-r, -k), pt(-k, -r), pt(0, -r)).
		CubeTo(pt(k, -r), pt(r, -k), pt(r, 0)).
		Close()
}

// segmentPath returns the outline of a line segment of the given width,
// with round caps.  For coincident end points this is a disc.
func segmentPath(a, b vec.Vec2, width float64) *path.Data {
	r := width / 2
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		return circlePath(a, r)
	}
	// unit vectors along and across the segment, scaled to the radius
	u := d.Mul(r / l)
	n := vec.Vec2{X: -u.Y, Y: u.X}
	ku := u.Mul(kappa)
	kn := n.Mul(kappa)

	return (&path.Data{}).
		MoveTo(a.Add(n)).
		LineTo(b.Add(n)).
		CubeTo(b.Add(n).Add(ku), b.Add(u).Add(kn), b.Add(u)).
		CubeTo(b.Add(u).Sub(kn), b.Sub(n).Add(ku), b.Sub(n)).
		LineTo(a.Sub(n)).
		CubeTo(a.Sub(n).Sub(ku), a.Sub(u).Sub(kn), a.Sub(u)).
		CubeTo(a.Sub(u).Add(kn), a.Add(n).Sub(ku), a.Add(n)).
		Close()
}

// pathBounds returns the bounding box of all points of the path,
// including control points.
func pathBounds(p *path.Data) (xMin, yMin, xMax, yMax float64) {
	xMin, yMin = math.Inf(1), math.Inf(1)
	xMax, yMax = math.Inf(-1), math.Inf(-1)
	for _, c := range p.Coords {
		xMin = min(xMin, c.X)
		yMin = min(yMin, c.Y)
		xMax = max(xMax, c.X)
		yMax = max(yMax, c.Y)
	}
	return xMin, yMin, xMax, yMax
}
