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
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collectCircle(t *testing.T, c Circle) []Point {
	t.Helper()
	seq, err := BresenhamCircle(c)
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", c, err)
	}
	return slices.Collect(seq)
}

func TestCircleSmall(t *testing.T) {
	cases := []struct {
		circle Circle
		want   []Point
	}{
		{
			circle: Circle{1, 1, 0},
			want:   []Point{{1, 1}},
		},
		{
			circle: Circle{0, 0, 1},
			want:   []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}},
		},
		{
			circle: Circle{0, 0, 2},
			want: []Point{
				{-2, -1}, {-1, -2}, {0, -2}, {1, -2}, {2, -1}, {2, 0},
				{2, 1}, {1, 2}, {0, 2}, {-1, 2}, {-2, 1}, {-2, 0},
			},
		},
	}
	for _, c := range cases {
		got := collectCircle(t, c.circle)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%s (-want +got):\n%s", c.circle, d)
		}
	}
}

func TestCircleRadiusFive(t *testing.T) {
	pts := collectCircle(t, Circle{0, 0, 5})
	if len(pts) != 28 {
		t.Errorf("got %d points, expected 28", len(pts))
	}
	for _, p := range []Point{{5, 0}, {0, 5}, {-5, 0}, {0, -5}} {
		if !slices.Contains(pts, p) {
			t.Errorf("missing %s", p)
		}
	}
	if pts[0] != (Point{-5, -1}) || pts[len(pts)-1] != (Point{-5, 0}) {
		t.Errorf("contour runs from %s to %s", pts[0], pts[len(pts)-1])
	}
}

// TestCircleProperties checks the contour of every radius up to 120 at
// two different centers.
func TestCircleProperties(t *testing.T) {
	for _, center := range []Point{{0, 0}, {7, -3}} {
		for r := 1; r <= 120; r++ {
			c := Circle{center.X, center.Y, r}
			pts := collectCircle(t, c)

			seen := make(map[Point]bool, len(pts))
			for _, p := range pts {
				if seen[p] {
					t.Fatalf("%s: duplicate point %s", c, p)
				}
				seen[p] = true
			}

			for _, p := range pts {
				dx, dy := p.X-c.CX, p.Y-c.CY
				if e := math.Abs(math.Hypot(float64(dx), float64(dy)) - float64(r)); e >= 0.5 {
					t.Fatalf("%s: point %s is %.3f away from the circle", c, p, e)
				}

				// all eight reflections must be present
				for _, q := range []Point{
					{dx, dy}, {dy, dx}, {-dx, dy}, {dx, -dy},
					{-dx, -dy}, {-dy, -dx}, {dy, -dx}, {-dy, dx},
				} {
					if !seen[Point{c.CX + q.X, c.CY + q.Y}] {
						t.Fatalf("%s: reflection (%d,%d) of %s missing", c, q.X, q.Y, p)
					}
				}
			}

			// The sorted points form a closed 8-connected contour.
			prevAngle := math.Inf(-1)
			for i, p := range pts {
				q := pts[(i+1)%len(pts)]
				if abs(p.X-q.X) > 1 || abs(p.Y-q.Y) > 1 {
					t.Fatalf("%s: gap between %s and %s", c, p, q)
				}
				angle := math.Atan2(float64(p.Y-c.CY), float64(p.X-c.CX))
				if angle < prevAngle {
					t.Fatalf("%s: point %s out of order", c, p)
				}
				prevAngle = angle
			}
		}
	}
}

func TestCircleOctants(t *testing.T) {
	c := Circle{2, 3, 5}
	seq, err := CircleOctants(c)
	if err != nil {
		t.Fatal(err)
	}
	raw := slices.Collect(seq)
	if len(raw)%8 != 0 {
		t.Fatalf("got %d points, expected a multiple of 8", len(raw))
	}

	// The first iteration has x=0, so the reflections pairwise coincide.
	want := []Point{{2, 8}, {7, 3}, {7, 3}, {2, -2}, {2, -2}, {-3, 3}, {-3, 3}, {2, 8}}
	if d := cmp.Diff(want, raw[:8]); d != "" {
		t.Errorf("first octant points (-want +got):\n%s", d)
	}

	sorted := collectCircle(t, c)
	unique := slices.Clone(raw)
	slices.SortFunc(unique, comparePoints)
	unique = slices.Compact(unique)
	slices.SortFunc(sorted, comparePoints)
	if d := cmp.Diff(unique, sorted); d != "" {
		t.Errorf("point sets differ (-raw +sorted):\n%s", d)
	}
}

func comparePoints(a, b Point) int {
	if a.X != b.X {
		return a.X - b.X
	}
	return a.Y - b.Y
}

func TestCircleErrors(t *testing.T) {
	_, err := BresenhamCircle(Circle{0, 0, -1})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative radius: expected ErrInvalidInput, got %v", err)
	}
	_, err = CircleOctants(Circle{0, 0, -3})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative radius: expected ErrInvalidInput, got %v", err)
	}

	overflow := []Circle{
		{math.MaxInt, 0, 1},
		{0, math.MinInt, 1},
		{0, 0, math.MaxInt/4 + 1},
	}
	for _, c := range overflow {
		if _, err := BresenhamCircle(c); !errors.Is(err, ErrOverflow) {
			t.Errorf("%s: expected ErrOverflow, got %v", c, err)
		}
	}

	// A circle touching the limits is fine, as long as no points are
	// generated outside the range of int.
	if _, err := CircleOctants(Circle{math.MaxInt - 10, 0, 10}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
