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

// Command rasterplot runs one of the rasterization algorithms and draws
// the result onto a grid, either as a PNG or PDF file or as text.
//
// Usage:
//
//	rasterplot -alg bresenham -x1 0 -y1 0 -x2 5 -y2 2 -o line.png
//	rasterplot -alg circle -r 5 -ascii
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/gridraster"
	"seehuhn.de/go/gridraster/canvas"
)

type options struct {
	alg            string
	x1, y1, x2, y2 int
	cx, cy, r      int
	width, height  int
	scale          float64
	out            string
	ascii          bool
	random         bool
	verbose        bool
}

func main() {
	var opt options
	flag.StringVar(&opt.alg, "alg", "bresenham", "algorithm: step, dda, bresenham, castle-pitway or circle")
	flag.IntVar(&opt.x1, "x1", 0, "x coordinate of the line start")
	flag.IntVar(&opt.y1, "y1", 0, "y coordinate of the line start")
	flag.IntVar(&opt.x2, "x2", 10, "x coordinate of the line end")
	flag.IntVar(&opt.y2, "y2", 4, "y coordinate of the line end")
	flag.IntVar(&opt.cx, "cx", 0, "x coordinate of the circle center")
	flag.IntVar(&opt.cy, "cy", 0, "y coordinate of the circle center")
	flag.IntVar(&opt.r, "r", 5, "circle radius")
	flag.IntVar(&opt.width, "width", 800, "image width in pixels")
	flag.IntVar(&opt.height, "height", 600, "image height in pixels")
	flag.Float64Var(&opt.scale, "scale", 20, "pixels per grid unit (5 to 50)")
	flag.StringVar(&opt.out, "o", "", "output file (.png or .pdf)")
	flag.BoolVar(&opt.ascii, "ascii", false, "print a text plot to stdout")
	flag.BoolVar(&opt.random, "random", false, "use random coordinates which fit the image")
	flag.BoolVar(&opt.verbose, "v", false, "enable debug logging")
	flag.Parse()

	if opt.verbose {
		gridraster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(context.Background(), &opt); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, opt *options) error {
	alg, err := gridraster.ParseAlgorithm(opt.alg)
	if err != nil {
		return err
	}
	if opt.width <= 0 || opt.height <= 0 {
		return fmt.Errorf("image size %dx%d: %w", opt.width, opt.height, gridraster.ErrInvalidInput)
	}

	view := canvas.NewView(opt.width, opt.height)
	view.SetScale(opt.scale)

	if opt.random {
		randomize(opt, view.RandomExtent(), rand.IntN)
	}

	req, err := request(alg, opt)
	if err != nil {
		return err
	}

	res, err := alg.Rasterize(ctx, req)
	if err != nil {
		return err
	}
	fmt.Println(canvas.Timing(alg, res.Elapsed))

	if opt.ascii {
		cols := 80
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				cols = w
			}
		}
		if err := canvas.WriteASCII(os.Stdout, res.Points, cols); err != nil {
			return err
		}
	}

	if opt.out != "" {
		return writeImage(opt.out, view, res)
	}
	return nil
}

// request builds the request for the algorithm, after checking the
// values supplied on the command line.
func request(alg gridraster.Algorithm, opt *options) (gridraster.Request, error) {
	if alg.Shape() == gridraster.ShapeCircle {
		if opt.r < 0 {
			return nil, fmt.Errorf("radius %d: %w", opt.r, gridraster.ErrInvalidInput)
		}
		return gridraster.Circle{CX: opt.cx, CY: opt.cy, R: opt.r}, nil
	}
	return gridraster.Line{X1: opt.x1, Y1: opt.y1, X2: opt.x2, Y2: opt.y2}, nil
}

// randomize replaces the coordinates by random values in [-m, m) and the
// radius by a random value in [0, m).
func randomize(opt *options, m int, intN func(int) int) {
	if m <= 0 {
		opt.x1, opt.y1, opt.x2, opt.y2, opt.r = 0, 0, 0, 0, 0
		return
	}
	coord := func() int { return intN(2*m) - m }
	opt.x1, opt.y1 = coord(), coord()
	opt.x2, opt.y2 = coord(), coord()
	opt.cx, opt.cy = 0, 0
	opt.r = intN(m)
}

func writeImage(fname string, view *canvas.View, res *gridraster.Result) error {
	p := canvas.NewPainter(view)

	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".png":
		s := canvas.NewImageSurface(view.Width, view.Height)
		p.Render(s, res)
		f, err := os.Create(fname)
		if err != nil {
			return err
		}
		err = s.WritePNG(f)
		return errors.Join(err, f.Close())

	case ".pdf":
		s, err := canvas.CreatePDF(fname, view.Width, view.Height)
		if err != nil {
			return err
		}
		p.Render(s, res)
		return s.Close()

	default:
		return fmt.Errorf("%s: unsupported output format %q", fname, ext)
	}
}
