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

package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/gridraster/canvas"
)

// debug font cell size of ebitenutil.DebugPrintAt
const (
	charWidth  = 6
	charHeight = 16
)

// screenSurface implements canvas.Surface on top of an ebiten image.
type screenSurface struct {
	img *ebiten.Image
}

func (s screenSurface) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s screenSurface) StrokeLine(from, to vec.Vec2, width float64, c color.Color) {
	vector.StrokeLine(s.img,
		float32(from.X), float32(from.Y), float32(to.X), float32(to.Y),
		float32(width), c, true)
}

func (s screenSurface) FillCircle(center vec.Vec2, radius float64, c color.Color) {
	vector.DrawFilledCircle(s.img, float32(center.X), float32(center.Y), float32(radius), c, true)
}

// Text draws using the debug font.  The color is ignored, the debug font
// is always white.
func (s screenSurface) Text(str string, at vec.Vec2, align canvas.Align, _ color.Color) {
	x, y := int(at.X), int(at.Y)
	w := len(str) * charWidth
	switch align & (canvas.AlignCenter | canvas.AlignRight) {
	case canvas.AlignCenter:
		x -= w / 2
	case canvas.AlignRight:
		x -= w
	}
	switch align & (canvas.AlignTop | canvas.AlignMiddle) {
	case canvas.AlignMiddle:
		y -= charHeight / 2
	case canvas.AlignBaseline:
		y -= charHeight
	}
	ebitenutil.DebugPrintAt(s.img, str, x, y)
}
