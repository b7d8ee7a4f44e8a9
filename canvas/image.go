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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ImageSurface is a [Surface] which draws into an RGBA image.
// Shapes are anti-aliased.
type ImageSurface struct {
	Img *image.RGBA

	// Face is used for text.
	Face font.Face

	r *vector.Rasterizer
}

// NewImageSurface allocates a new image of the given size.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{
		Img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		Face: basicfont.Face7x13,
		r:    vector.NewRasterizer(0, 0),
	}
}

// Clear implements the [Surface] interface.
func (s *ImageSurface) Clear(c color.Color) {
	draw.Draw(s.Img, s.Img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// StrokeLine implements the [Surface] interface.
func (s *ImageSurface) StrokeLine(from, to vec.Vec2, width float64, c color.Color) {
	s.fill(segmentPath(from, to, width), c)
}

// FillCircle implements the [Surface] interface.
func (s *ImageSurface) FillCircle(center vec.Vec2, radius float64, c color.Color) {
	s.fill(circlePath(center, radius), c)
}

// fill fills the path using the nonzero winding rule.  Only the bounding
// box of the path is rasterized.
func (s *ImageSurface) fill(p *path.Data, c color.Color) {
	xMin, yMin, xMax, yMax := pathBounds(p)
	box := image.Rect(
		int(math.Floor(xMin)), int(math.Floor(yMin)),
		int(math.Ceil(xMax)), int(math.Ceil(yMax)),
	).Intersect(s.Img.Bounds())
	if box.Empty() {
		return
	}

	s.r.Reset(box.Dx(), box.Dy())
	dx, dy := float32(box.Min.X), float32(box.Min.Y)
	pt := func(v vec.Vec2) (float32, float32) {
		return float32(v.X) - dx, float32(v.Y) - dy
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			x, y := pt(p.Coords[coordIdx])
			s.r.MoveTo(x, y)
			coordIdx++
		case path.CmdLineTo:
			x, y := pt(p.Coords[coordIdx])
			s.r.LineTo(x, y)
			coordIdx++
		case path.CmdQuadTo:
			x1, y1 := pt(p.Coords[coordIdx])
			x2, y2 := pt(p.Coords[coordIdx+1])
			s.r.QuadTo(x1, y1, x2, y2)
			coordIdx += 2
		case path.CmdCubeTo:
			x1, y1 := pt(p.Coords[coordIdx])
			x2, y2 := pt(p.Coords[coordIdx+1])
			x3, y3 := pt(p.Coords[coordIdx+2])
			s.r.CubeTo(x1, y1, x2, y2, x3, y3)
			coordIdx += 3
		case path.CmdClose:
			s.r.ClosePath()
		}
	}

	s.r.Draw(s.Img, box, image.NewUniform(c), image.Point{})
}

// Text implements the [Surface] interface.
func (s *ImageSurface) Text(str string, at vec.Vec2, align Align, c color.Color) {
	d := &font.Drawer{
		Dst:  s.Img,
		Src:  image.NewUniform(c),
		Face: s.Face,
	}

	x := at.X
	switch align & hMask {
	case AlignCenter:
		x -= float64(d.MeasureString(str).Ceil()) / 2
	case AlignRight:
		x -= float64(d.MeasureString(str).Ceil())
	}

	y := at.Y
	m := s.Face.Metrics()
	switch align & vMask {
	case AlignTop:
		y += float64(m.Ascent.Ceil())
	case AlignMiddle:
		y += float64(m.Ascent.Ceil()-m.Descent.Ceil()) / 2
	}

	d.Dot = fixed.P(int(math.Round(x)), int(math.Round(y)))
	d.DrawString(str)
}

// WritePNG encodes the image in PNG format.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	return png.Encode(w, s.Img)
}
