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
	"fmt"
	"image/color"
	"log/slog"
	"strconv"
	"time"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gridraster"
)

// Style holds the colors used by a [Painter].
type Style struct {
	Background color.Color
	Grid       color.Color
	Axis       color.Color
	Label      color.Color
	Point      color.Color

	// GridWidth and AxisWidth are line widths in pixels.
	GridWidth float64
	AxisWidth float64
}

// DefaultStyle returns a light grid with black axes and red points.
func DefaultStyle() Style {
	return Style{
		Background: color.White,
		Grid:       color.RGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff},
		Axis:       color.Black,
		Label:      color.Black,
		Point:      color.RGBA{R: 0xff, A: 0xff},
		GridWidth:  1,
		AxisWidth:  2,
	}
}

// Painter draws the grid and rasterization results for a [View].
type Painter struct {
	View  *View
	Style Style
}

// NewPainter returns a Painter using the default style.
func NewPainter(v *View) *Painter {
	return &Painter{View: v, Style: DefaultStyle()}
}

// Render clears the surface, draws the grid and then the result.
// The result may be nil.
func (p *Painter) Render(s Surface, res *gridraster.Result) {
	p.DrawGrid(s)
	if res != nil {
		p.DrawResult(s, res)
	}
}

// DrawGrid clears the surface and draws grid lines for every grid unit,
// the two axes and the axis labels.
func (p *Painter) DrawGrid(s Surface) {
	v := p.View
	st := p.Style
	s.Clear(st.Background)

	o := v.Origin()
	w, h := float64(v.Width), float64(v.Height)
	xMin, xMax, yMin, yMax := v.GridRange()

	for i := xMin; i <= xMax; i++ {
		x := o.X + float64(i)*v.Scale
		s.StrokeLine(vec.Vec2{X: x, Y: 0}, vec.Vec2{X: x, Y: h}, st.GridWidth, st.Grid)
	}
	for j := yMin; j <= yMax; j++ {
		y := o.Y - float64(j)*v.Scale
		s.StrokeLine(vec.Vec2{X: 0, Y: y}, vec.Vec2{X: w, Y: y}, st.GridWidth, st.Grid)
	}

	s.StrokeLine(vec.Vec2{X: o.X, Y: 0}, vec.Vec2{X: o.X, Y: h}, st.AxisWidth, st.Axis)
	s.StrokeLine(vec.Vec2{X: 0, Y: o.Y}, vec.Vec2{X: w, Y: o.Y}, st.AxisWidth, st.Axis)

	step := v.LabelStep()
	for i := xMin; i <= xMax; i++ {
		if i == 0 || i%step != 0 {
			continue
		}
		at := vec.Vec2{X: o.X + float64(i)*v.Scale, Y: o.Y + 5}
		s.Text(strconv.Itoa(i), at, AlignCenter|AlignTop, st.Label)
	}
	for j := yMin; j <= yMax; j++ {
		if j == 0 || j%step != 0 {
			continue
		}
		at := vec.Vec2{X: o.X - 5, Y: o.Y - float64(j)*v.Scale}
		s.Text(strconv.Itoa(j), at, AlignRight|AlignMiddle, st.Label)
	}
}

// DrawResult draws the points of a rasterization result.
// Points of a line are drawn in order, each connected to its
// predecessor.  Points of a circle are joined into a closed contour.
func (p *Painter) DrawResult(s Surface, res *gridraster.Result) {
	pl := &Plotter{View: p.View, Color: p.Style.Point}
	pts := res.Points

	if res.Algorithm.Shape() == gridraster.ShapeCircle {
		if len(pts) > 1 {
			w := p.View.lineWidth()
			for i, pt := range pts {
				next := pts[(i+1)%len(pts)]
				s.StrokeLine(p.View.ToScreen(pt), p.View.ToScreen(next), w, p.Style.Point)
			}
		}
		for _, pt := range pts {
			pl.Plot(s, pt, false)
		}
	} else {
		for _, pt := range pts {
			pl.Plot(s, pt, true)
		}
	}

	gridraster.Logger().Debug("drawn",
		slog.String("algorithm", res.Algorithm.String()),
		slog.Int("points", len(pts)),
		slog.Float64("scale", p.View.Scale))
}

// Plotter draws individual grid points, optionally connecting each point
// to the previously plotted one.  The zero value has no previous point.
type Plotter struct {
	View  *View
	Color color.Color

	prev    vec.Vec2
	hasPrev bool
}

// Plot draws a dot at the given grid point.  If connect is true and a
// point has been plotted before, a line from the previous point is drawn
// as well.  In either case, pt becomes the new previous point.
func (pl *Plotter) Plot(s Surface, pt gridraster.Point, connect bool) {
	pos := pl.View.ToScreen(pt)
	r := pl.View.dotRadius()
	if inside(pl.View.Bounds(), pos, r) {
		s.FillCircle(pos, r, pl.Color)
	}
	if connect && pl.hasPrev {
		s.StrokeLine(pl.prev, pos, pl.View.lineWidth(), pl.Color)
	}
	pl.prev = pos
	pl.hasPrev = true
}

// Reset forgets the previous point.
func (pl *Plotter) Reset() {
	pl.hasPrev = false
}

// Previous returns the screen position of the previous point,
// if there is one.
func (pl *Plotter) Previous() (vec.Vec2, bool) {
	return pl.prev, pl.hasPrev
}

// inside reports whether p is within the rectangle enlarged by margin.
func inside(r rect.Rect, p vec.Vec2, margin float64) bool {
	return p.X >= r.LLx-margin && p.X <= r.URx+margin &&
		p.Y >= r.LLy-margin && p.Y <= r.URy+margin
}

func (v *View) dotRadius() float64 {
	return max(1, v.Scale/10)
}

func (v *View) lineWidth() float64 {
	return max(1, v.Scale/20)
}

// Timing formats the time taken by an algorithm, in milliseconds.
func Timing(alg gridraster.Algorithm, elapsed time.Duration) string {
	ms := float64(elapsed) / float64(time.Millisecond)
	return fmt.Sprintf("%s: %.3f ms", alg.Title(), ms)
}
