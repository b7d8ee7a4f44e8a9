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
	"errors"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/gridraster"
)

func TestRequest(t *testing.T) {
	opt := &options{x1: 1, y1: 2, x2: 3, y2: 4, cx: 5, cy: 6, r: 7}

	req, err := request(gridraster.AlgDDA, opt)
	if err != nil {
		t.Fatal(err)
	}
	if req != (gridraster.Line{X1: 1, Y1: 2, X2: 3, Y2: 4}) {
		t.Errorf("line request %v", req)
	}

	req, err = request(gridraster.AlgCircle, opt)
	if err != nil {
		t.Fatal(err)
	}
	if req != (gridraster.Circle{CX: 5, CY: 6, R: 7}) {
		t.Errorf("circle request %v", req)
	}

	opt.r = -1
	if _, err := request(gridraster.AlgCircle, opt); !errors.Is(err, gridraster.ErrInvalidInput) {
		t.Errorf("negative radius: expected ErrInvalidInput, got %v", err)
	}
}

func TestRandomize(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	const m = 7
	for range 1000 {
		opt := &options{cx: 3, cy: 3}
		randomize(opt, m, rng.IntN)
		for _, v := range []int{opt.x1, opt.y1, opt.x2, opt.y2} {
			if v < -m || v >= m {
				t.Fatalf("coordinate %d outside [-%d, %d)", v, m, m)
			}
		}
		if opt.r < 0 || opt.r >= m {
			t.Fatalf("radius %d outside [0, %d)", opt.r, m)
		}
		if opt.cx != 0 || opt.cy != 0 {
			t.Fatalf("center (%d,%d) not reset", opt.cx, opt.cy)
		}
	}

	opt := &options{x1: 4, r: 2}
	randomize(opt, 0, rng.IntN)
	if opt.x1 != 0 || opt.r != 0 {
		t.Errorf("zero extent gives %+v", opt)
	}
}

func TestRunOutput(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.png", "out.pdf"} {
		fname := filepath.Join(dir, name)
		opt := &options{
			alg:    "castle-pitway",
			x2:     7,
			y2:     3,
			width:  200,
			height: 150,
			scale:  20,
			out:    fname,
		}
		if err := run(t.Context(), opt); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		info, err := os.Stat(fname)
		if err != nil {
			t.Fatal(err)
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	opt := &options{alg: "bresenham", width: 100, height: 100, out: filepath.Join(dir, "out.gif")}
	if err := run(t.Context(), opt); err == nil {
		t.Error("unsupported format accepted")
	}

	opt = &options{alg: "wu", width: 100, height: 100}
	if err := run(t.Context(), opt); !errors.Is(err, gridraster.ErrInvalidInput) {
		t.Errorf("unknown algorithm: expected ErrInvalidInput, got %v", err)
	}
}
