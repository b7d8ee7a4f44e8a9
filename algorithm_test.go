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


package gridraster_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/gridraster"
	"seehuhn.de/go/gridraster/testcases"
)

func TestAllCases(t *testing.T) {
	ctx := context.Background()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			for _, alg := range tc.Algorithms() {
				name := category + "_" + tc.Name + "_" + alg.String()
				t.Run(name, func(t *testing.T) {
					res, err := alg.Rasterize(ctx, tc.Request)
					if err != nil {
						t.Fatal(err)
					}
					if len(res.Points) == 0 {
						t.Fatal("no points")
					}
					if res.Algorithm != alg {
						t.Errorf("result for %s, expected %s", res.Algorithm, alg)
					}

					switch req := tc.Request.(type) {
					case gridraster.Line:
						if res.Points[0] != req.Start() {
							t.Errorf("starts at %s", res.Points[0])
						}
						if last := res.Points[len(res.Points)-1]; last != req.End() {
							t.Errorf("ends at %s", last)
						}
					case gridraster.Circle:
						if req.R == 0 {
							want := []gridraster.Point{req.Center()}
							if d := cmp.Diff(want, res.Points); d != "" {
								t.Errorf("radius 0 (-want +got):\n%s", d)
							}
						}
					}
				})
			}
		}
	}
}

func TestAlgorithmsApplicable(t *testing.T) {
	var nLine, nCircle int
	for _, alg := range gridraster.Algorithms() {
		switch alg.Shape() {
		case gridraster.ShapeLine:
			nLine++
		case gridraster.ShapeCircle:
			nCircle++
		}
	}
	if nLine != 4 || nCircle != 1 {
		t.Errorf("%d line and %d circle algorithms", nLine, nCircle)
	}
}

func TestWrongRequest(t *testing.T) {
	line := gridraster.Line{X1: 0, Y1: 0, X2: 3, Y2: 1}
	circle := gridraster.Circle{CX: 0, CY: 0, R: 3}
	for _, alg := range gridraster.Algorithms() {
		req := gridraster.Request(line)
		if alg.Shape() == gridraster.ShapeLine {
			req = circle
		}
		_, err := alg.Points(req)
		if !errors.Is(err, gridraster.ErrInvalidInput) {
			t.Errorf("%s on %v: expected ErrInvalidInput, got %v", alg, req, err)
		}
		_, err = alg.Rasterize(context.Background(), req)
		if !errors.Is(err, gridraster.ErrInvalidInput) {
			t.Errorf("%s on %v: expected ErrInvalidInput, got %v", alg, req, err)
		}
	}

	_, err := gridraster.Algorithm(0).Points(line)
	if !errors.Is(err, gridraster.ErrInvalidInput) {
		t.Errorf("unknown algorithm: expected ErrInvalidInput, got %v", err)
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, alg := range gridraster.Algorithms() {
		got, err := gridraster.ParseAlgorithm(alg.String())
		if err != nil || got != alg {
			t.Errorf("ParseAlgorithm(%q) = %v, %v", alg.String(), got, err)
		}
	}

	aliases := map[string]gridraster.Algorithm{
		"DDA":              gridraster.AlgDDA,
		" Naive ":          gridraster.AlgStep,
		"Bresenham-Circle": gridraster.AlgCircle,
		"castle":           gridraster.AlgCastlePitway,
		"line":             gridraster.AlgBresenham,
	}
	for name, want := range aliases {
		got, err := gridraster.ParseAlgorithm(name)
		if err != nil || got != want {
			t.Errorf("ParseAlgorithm(%q) = %v, %v; want %v", name, got, err, want)
		}
	}

	_, err := gridraster.ParseAlgorithm("wu")
	if !errors.Is(err, gridraster.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRasterizeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	requests := []struct {
		alg gridraster.Algorithm
		req gridraster.Request
	}{
		{gridraster.AlgBresenham, gridraster.Line{X1: 0, Y1: 0, X2: 5000, Y2: 1234}},
		{gridraster.AlgBresenham, gridraster.Line{X1: 0, Y1: 0, X2: 5, Y2: 2}},
		{gridraster.AlgCircle, gridraster.Circle{CX: 0, CY: 0, R: 3000}},
		{gridraster.AlgCircle, gridraster.Circle{CX: 0, CY: 0, R: 0}},
	}
	for _, r := range requests {
		_, err := r.alg.Rasterize(ctx, r.req)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("%s %v: expected context.Canceled, got %v", r.alg, r.req, err)
		}
	}
}

// cancelAfter is a context which reports cancellation once Err has been
// called more than n times.
type cancelAfter struct {
	context.Context
	n int
}

func (c *cancelAfter) Err() error {
	if c.n <= 0 {
		return context.Canceled
	}
	c.n--
	return nil
}

func TestRasterizeCancelledWhileRunning(t *testing.T) {
	ctx := &cancelAfter{Context: context.Background(), n: 2}
	long := gridraster.Line{X1: 0, Y1: 0, X2: 5000, Y2: 1234}
	_, err := gridraster.AlgDDA.Rasterize(ctx, long)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	ctx = &cancelAfter{Context: context.Background(), n: 1}
	short := gridraster.Line{X1: 0, Y1: 0, X2: 5, Y2: 2}
	res, err := gridraster.AlgDDA.Rasterize(ctx, short)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Points) != 6 {
		t.Errorf("got %d points", len(res.Points))
	}
}

func TestRasterizeLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	gridraster.SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	defer gridraster.SetLogger(nil)

	req := gridraster.Circle{CX: 0, CY: 0, R: 5}
	if _, err := gridraster.AlgCircle.Rasterize(context.Background(), req); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{"msg=rasterized", "algorithm=circle", "points=28"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output %q does not contain %q", out, want)
		}
	}
}

func TestDefaultLoggerSilent(t *testing.T) {
	gridraster.SetLogger(nil)
	if gridraster.Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}
