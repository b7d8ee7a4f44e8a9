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

// Command rasterview shows the rasterization algorithms in an
// interactive window.
//
// Drag with the left mouse button to move the grid, use the mouse wheel
// to zoom.  Keys 1 to 5 select the algorithm, R picks random
// coordinates, + and - change the scale.
package main

import (
	"context"
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"seehuhn.de/go/gridraster"
	"seehuhn.de/go/gridraster/canvas"
)

type viewer struct {
	view    *canvas.View
	painter *canvas.Painter

	alg    gridraster.Algorithm
	line   gridraster.Line
	circle gridraster.Circle

	result *gridraster.Result
	err    error

	dragging     bool
	dragX, dragY int
}

var algorithmKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
}

func (g *viewer) Update() error {
	for i, key := range algorithmKeys {
		if inpututil.IsKeyJustPressed(key) && i < len(gridraster.Algorithms()) {
			g.alg = gridraster.Algorithms()[i]
			g.rasterize()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.randomize()
		g.rasterize()
	}

	w, h := float64(g.view.Width)/2, float64(g.view.Height)/2
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.view.ZoomAt(g.view.Scale+1, w, h)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.view.ZoomAt(g.view.Scale-1, w, h)
	}

	mx, my := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.view.Pan(float64(mx-g.dragX), float64(my-g.dragY))
		}
		g.dragging = true
		g.dragX, g.dragY = mx, my
	} else {
		g.dragging = false
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.view.Zoom(dy > 0, float64(mx), float64(my))
	}
	return nil
}

func (g *viewer) Draw(screen *ebiten.Image) {
	s := screenSurface{img: screen}
	g.painter.Render(s, g.result)

	msg := "1-5: algorithm  R: random  +/-: zoom  drag: move"
	switch {
	case g.err != nil:
		msg = g.err.Error() + "\n" + msg
	case g.result != nil:
		msg = fmt.Sprintf("%s  (%d points, scale %.1f)\n%s",
			canvas.Timing(g.alg, g.result.Elapsed), len(g.result.Points), g.view.Scale, msg)
	}
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}

func (g *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.view.Width, g.view.Height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func (g *viewer) request() gridraster.Request {
	if g.alg.Shape() == gridraster.ShapeCircle {
		return g.circle
	}
	return g.line
}

func (g *viewer) rasterize() {
	g.result, g.err = g.alg.Rasterize(context.Background(), g.request())
	if g.err != nil {
		gridraster.Logger().Warn("rasterize failed", slog.Any("error", g.err))
	}
}

func (g *viewer) randomize() {
	m := g.view.RandomExtent()
	if m <= 0 {
		return
	}
	coord := func() int { return rand.IntN(2*m) - m }
	g.line = gridraster.Line{X1: coord(), Y1: coord(), X2: coord(), Y2: coord()}
	g.circle = gridraster.Circle{R: rand.IntN(m)}
}

func main() {
	algName := flag.String("alg", "bresenham", "initial algorithm")
	x1 := flag.Int("x1", -8, "x coordinate of the line start")
	y1 := flag.Int("y1", -3, "y coordinate of the line start")
	x2 := flag.Int("x2", 9, "x coordinate of the line end")
	y2 := flag.Int("y2", 5, "y coordinate of the line end")
	r := flag.Int("r", 7, "circle radius")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	if *verbose {
		gridraster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	alg, err := gridraster.ParseAlgorithm(*algName)
	if err != nil {
		log.Fatal(err)
	}
	if *r < 0 {
		log.Fatalf("radius %d: %v", *r, gridraster.ErrInvalidInput)
	}

	const width, height = 960, 720
	view := canvas.NewView(width, height)
	painter := canvas.NewPainter(view)
	painter.Style.Background = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}
	painter.Style.Grid = color.RGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	painter.Style.Axis = color.White
	painter.Style.Label = color.White

	g := &viewer{
		view:    view,
		painter: painter,
		alg:     alg,
		line:    gridraster.Line{X1: *x1, Y1: *y1, X2: *x2, Y2: *y2},
		circle:  gridraster.Circle{R: *r},
	}
	g.rasterize()

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("gridraster")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
