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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"
)

// PDFSurface is a [Surface] which draws onto a single-page PDF document.
// One screen pixel corresponds to one PDF point.
//
// Text is not drawn, since this would require embedding a font.
type PDFSurface struct {
	Page *document.Page

	width, height float64
}

// CreatePDF creates a single-page PDF file of the given size in pixels.
// The caller must call Close to complete the file.
func CreatePDF(fileName string, width, height int) (*PDFSurface, error) {
	paper := &pdf.Rectangle{
		URx: float64(width),
		URy: float64(height),
	}
	page, err := document.CreateSinglePage(fileName, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, err
	}

	// PDF origin is bottom-left, screen coordinates have the origin
	// at the top-left.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(height)})
	page.SetLineCap(graphics.LineCapRound)
	page.SetLineJoin(graphics.LineJoinRound)

	return &PDFSurface{
		Page:   page,
		width:  float64(width),
		height: float64(height),
	}, nil
}

// Close writes the page and closes the file.
func (s *PDFSurface) Close() error {
	return s.Page.Close()
}

// Clear implements the [Surface] interface.
func (s *PDFSurface) Clear(c color.Color) {
	s.Page.SetFillColor(toPDFColor(c))
	s.Page.Rectangle(0, 0, s.width, s.height)
	s.Page.Fill()
}

// StrokeLine implements the [Surface] interface.
func (s *PDFSurface) StrokeLine(from, to vec.Vec2, width float64, c color.Color) {
	s.Page.SetStrokeColor(toPDFColor(c))
	s.Page.SetLineWidth(width)
	s.Page.MoveTo(from.X, from.Y)
	s.Page.LineTo(to.X, to.Y)
	s.Page.Stroke()
}

// FillCircle implements the [Surface] interface.
func (s *PDFSurface) FillCircle(center vec.Vec2, radius float64, c color.Color) {
	s.Page.SetFillColor(toPDFColor(c))
	s.drawPath(circlePath(center, radius))
	s.Page.Fill()
}

// Text implements the [Surface] interface.  Text is ignored.
func (s *PDFSurface) Text(string, vec.Vec2, Align, color.Color) {}

// drawPath adds the path to the content stream.  Quadratic segments are
// converted to cubic ones, since PDF has no quadratic curves.
func (s *PDFSurface) drawPath(p *path.Data) {
	var current vec.Vec2
	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			current = p.Coords[coordIdx]
			s.Page.MoveTo(current.X, current.Y)
			coordIdx++
		case path.CmdLineTo:
			current = p.Coords[coordIdx]
			s.Page.LineTo(current.X, current.Y)
			coordIdx++
		case path.CmdQuadTo:
			c, end := p.Coords[coordIdx], p.Coords[coordIdx+1]
			c1 := current.Add(c.Sub(current).Mul(2.0 / 3.0))
			c2 := end.Add(c.Sub(end).Mul(2.0 / 3.0))
			s.Page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			current = end
			coordIdx += 2
		case path.CmdCubeTo:
			c1, c2, end := p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]
			s.Page.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			current = end
			coordIdx += 3
		case path.CmdClose:
			s.Page.ClosePath()
		}
	}
}

// toPDFColor converts a color to the DeviceRGB color space.
// Transparency is ignored.
func toPDFColor(c color.Color) pdfcolor.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return pdfcolor.DeviceRGB(1, 1, 1)
	}
	// un-premultiply
	return pdfcolor.DeviceRGB(
		float64(r)/float64(a),
		float64(g)/float64(a),
		float64(b)/float64(a),
	)
}
