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

// Package canvas draws the output of the gridraster algorithms onto a
// zoomable, pannable grid.
//
// A [View] maps grid coordinates to screen pixels.  A [Painter] draws
// the grid, the axes and rasterization results onto a [Surface].
// Surfaces are provided for in-memory images ([ImageSurface]) and PDF
// pages ([PDFSurface]).
package canvas

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gridraster"
)

const (
	defaultScale         = 20.0
	defaultMinScale      = 5.0
	defaultMaxScale      = 50.0
	defaultZoomIntensity = 0.05
)

// View describes which part of the grid is visible, and at which size.
// Grid coordinates have the y-axis pointing up, screen coordinates have
// the y-axis pointing down.  With zero offsets, the grid origin is in the
// middle of the screen.
type View struct {
	// Width and Height give the screen size in pixels.
	Width, Height int

	// Scale is the size of one grid unit in pixels.  SetScale and Zoom
	// keep this in the range [MinScale, MaxScale].
	Scale float64

	MinScale, MaxScale float64

	// OffsetX and OffsetY move the grid origin away from the screen
	// center, in pixels.
	OffsetX, OffsetY float64

	// ZoomIntensity is the relative change of Scale for one zoom step.
	ZoomIntensity float64
}

// NewView returns a View for a screen of the given size, with the grid
// origin in the middle of the screen.
func NewView(width, height int) *View {
	return &View{
		Width:         width,
		Height:        height,
		Scale:         defaultScale,
		MinScale:      defaultMinScale,
		MaxScale:      defaultMaxScale,
		ZoomIntensity: defaultZoomIntensity,
	}
}

// SetScale sets the scale, clamped to [MinScale, MaxScale].
func (v *View) SetScale(scale float64) {
	if math.IsNaN(scale) {
		return
	}
	v.Scale = min(max(scale, v.MinScale), v.MaxScale)
}

// Pan moves the grid by the given number of pixels.
func (v *View) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// Zoom changes the scale by one step, keeping the grid position under
// the screen point (mouseX, mouseY) in place.
func (v *View) Zoom(in bool, mouseX, mouseY float64) {
	factor := 1 - v.ZoomIntensity
	if in {
		factor = 1 + v.ZoomIntensity
	}
	v.ZoomAt(v.Scale*factor, mouseX, mouseY)
}

// ZoomAt sets the scale (clamped as for SetScale), keeping the grid
// position under the screen point (mouseX, mouseY) in place.
func (v *View) ZoomAt(scale, mouseX, mouseY float64) {
	g := v.ToGrid(vec.Vec2{X: mouseX, Y: mouseY})
	v.SetScale(scale)
	v.OffsetX = mouseX - g.X*v.Scale - float64(v.Width)/2
	v.OffsetY = mouseY + g.Y*v.Scale - float64(v.Height)/2
}

// Origin returns the screen position of the grid origin.
func (v *View) Origin() vec.Vec2 {
	return vec.Vec2{
		X: float64(v.Width)/2 + v.OffsetX,
		Y: float64(v.Height)/2 + v.OffsetY,
	}
}

// Matrix returns the transformation from grid coordinates to screen
// coordinates.
func (v *View) Matrix() matrix.Matrix {
	o := v.Origin()
	return matrix.Matrix{v.Scale, 0, 0, -v.Scale, o.X, o.Y}
}

// Apply maps a position in grid coordinates to screen coordinates.
func (v *View) Apply(g vec.Vec2) vec.Vec2 {
	m := v.Matrix()
	return vec.Vec2{
		X: m[0]*g.X + m[2]*g.Y + m[4],
		Y: m[1]*g.X + m[3]*g.Y + m[5],
	}
}

// ToScreen returns the screen position of the center of a grid point.
func (v *View) ToScreen(p gridraster.Point) vec.Vec2 {
	return v.Apply(vec.Vec2{X: float64(p.X), Y: float64(p.Y)})
}

// ToGrid maps a screen position to (fractional) grid coordinates.
func (v *View) ToGrid(s vec.Vec2) vec.Vec2 {
	o := v.Origin()
	return vec.Vec2{
		X: (s.X - o.X) / v.Scale,
		Y: (o.Y - s.Y) / v.Scale,
	}
}

// LabelStep returns the distance between axis labels, in grid units.
// Labels get sparser as the grid gets smaller.
func (v *View) LabelStep() int {
	switch {
	case v.Scale >= 20:
		return 1
	case v.Scale >= 10:
		return 2
	default:
		return 5
	}
}

// GridRange returns the range of integer grid coordinates for which
// grid lines are drawn.  This covers the screen, plus at most one grid
// unit on each side.
func (v *View) GridRange() (xMin, xMax, yMin, yMax int) {
	o := v.Origin()
	w, h := float64(v.Width), float64(v.Height)
	xMin = -int(math.Ceil(o.X / v.Scale))
	xMax = int(math.Ceil((w - o.X) / v.Scale))
	yMin = -int(math.Ceil((h - o.Y) / v.Scale))
	yMax = int(math.Ceil(o.Y / v.Scale))
	return xMin, xMax, yMin, yMax
}

// Bounds returns the screen rectangle.
func (v *View) Bounds() rect.Rect {
	return rect.Rect{URx: float64(v.Width), URy: float64(v.Height)}
}

// RandomExtent returns the largest coordinate m such that points with
// coordinates in [-m, m] are visible at zero offset.
func (v *View) RandomExtent() int {
	return int(math.Floor(float64(v.Width) / 2 / v.Scale))
}
