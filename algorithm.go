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

package gridraster

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"time"
)

// Algorithm selects one of the rasterization algorithms.
type Algorithm int

// The supported algorithms.  AlgCircle takes a [Circle] request,
// all other algorithms take a [Line].
const (
	AlgStep Algorithm = iota + 1
	AlgDDA
	AlgBresenham
	AlgCircle
	AlgCastlePitway
)

// Algorithms returns all supported algorithms, in the order used by the
// user interfaces.
func Algorithms() []Algorithm {
	return []Algorithm{AlgStep, AlgDDA, AlgBresenham, AlgCastlePitway, AlgCircle}
}

var algorithmNames = map[Algorithm]string{
	AlgStep:         "step",
	AlgDDA:          "dda",
	AlgBresenham:    "bresenham",
	AlgCircle:       "circle",
	AlgCastlePitway: "castle-pitway",
}

var algorithmAliases = map[string]Algorithm{
	"naive":            AlgStep,
	"bresenham-line":   AlgBresenham,
	"line":             AlgBresenham,
	"bresenham-circle": AlgCircle,
	"castle":           AlgCastlePitway,
	"pitway":           AlgCastlePitway,
	"castle-pitteway":  AlgCastlePitway,
}

// String returns the short name of the algorithm, as accepted by
// [ParseAlgorithm].
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Title returns a human readable name of the algorithm.
func (a Algorithm) Title() string {
	switch a {
	case AlgStep:
		return "Step-by-step"
	case AlgDDA:
		return "DDA"
	case AlgBresenham:
		return "Bresenham (line)"
	case AlgCircle:
		return "Bresenham (circle)"
	case AlgCastlePitway:
		return "Castle-Pitway"
	default:
		return a.String()
	}
}

// ParseAlgorithm returns the algorithm with the given name.
// Names are case-insensitive.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == key {
			return a, nil
		}
	}
	if a, ok := algorithmAliases[key]; ok {
		return a, nil
	}
	return 0, fmt.Errorf("unknown algorithm %q: %w", name, ErrInvalidInput)
}

// Shape distinguishes the two kinds of requests.
type Shape int

const (
	ShapeLine Shape = iota
	ShapeCircle
)

// Shape returns the kind of request the algorithm accepts.
func (a Algorithm) Shape() Shape {
	if a == AlgCircle {
		return ShapeCircle
	}
	return ShapeLine
}

// Points returns the points generated by the algorithm for the given
// request.  Line algorithms require a [Line] and the circle algorithm
// requires a [Circle]; other combinations are rejected with an error
// wrapping [ErrInvalidInput].
func (a Algorithm) Points(req Request) (iter.Seq[Point], error) {
	if _, known := algorithmNames[a]; !known {
		return nil, fmt.Errorf("%s: %w", a, ErrInvalidInput)
	}

	switch req := req.(type) {
	case Line:
		switch a {
		case AlgStep:
			return StepLine(req)
		case AlgDDA:
			return DDALine(req)
		case AlgBresenham:
			return BresenhamLine(req)
		case AlgCastlePitway:
			return CastlePitway(req)
		}
	case Circle:
		if a == AlgCircle {
			return BresenhamCircle(req)
		}
	}
	return nil, fmt.Errorf("%s cannot rasterize %v: %w", a, req, ErrInvalidInput)
}

// Result is the outcome of [Algorithm.Rasterize].
type Result struct {
	Algorithm Algorithm
	Request   Request

	// Points lists the generated points in drawing order.
	Points []Point

	// Elapsed is the wall-clock time spent generating the points.
	Elapsed time.Duration
}

// ctxCheckInterval is the number of points generated between two checks
// for cancellation.
const ctxCheckInterval = 1024

// Rasterize runs the algorithm and collects all points.  The context is
// checked for cancellation before the algorithm starts and then every
// 1024 points; if it is done, the context's error is returned.
//
// [BresenhamCircle] de-duplicates and sorts all points before the first
// one is returned, so for circles only the initial check applies.
func (a Algorithm) Rasterize(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s %v: %w", a, req, err)
	}

	start := time.Now()

	seq, err := a.Points(req)
	if err != nil {
		return nil, err
	}

	var pts []Point
	for p := range seq {
		pts = append(pts, p)
		if len(pts)%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("%s %v: %w", a, req, err)
			}
		}
	}

	res := &Result{
		Algorithm: a,
		Request:   req,
		Points:    pts,
		Elapsed:   time.Since(start),
	}

	Logger().LogAttrs(ctx, slog.LevelDebug, "rasterized",
		slog.String("algorithm", a.String()),
		slog.Any("request", req),
		slog.Int("points", len(pts)),
		slog.Duration("elapsed", res.Elapsed))

	return res, nil
}
