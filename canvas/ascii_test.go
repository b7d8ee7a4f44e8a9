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
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/gridraster"
)

func TestWriteASCII(t *testing.T) {
	pts := []gridraster.Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}}
	buf := &bytes.Buffer{}
	if err := WriteASCII(buf, pts, 80); err != nil {
		t.Fatal(err)
	}
	want := "|...##\n" +
		"|.##..\n" +
		"##----\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestWriteASCIIAxes(t *testing.T) {
	pts := []gridraster.Point{{-1, -1}, {1, 1}}
	buf := &bytes.Buffer{}
	if err := WriteASCII(buf, pts, 80); err != nil {
		t.Fatal(err)
	}
	want := ".|#\n" +
		"-+-\n" +
		"#|.\n"
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestWriteASCIINarrow(t *testing.T) {
	var pts []gridraster.Point
	for x := 10; x <= 109; x++ {
		pts = append(pts, gridraster.Point{X: x, Y: 3})
	}
	buf := &bytes.Buffer{}
	if err := WriteASCII(buf, pts, 30); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines", len(lines))
	}
	if n := len(lines[0]); n > 30 {
		t.Errorf("line has %d columns", n)
	}
	if strings.Trim(lines[0], "#") != "" {
		t.Errorf("gaps in %q", lines[0])
	}
}

func TestWriteASCIITall(t *testing.T) {
	var pts []gridraster.Point
	for y := 0; y >= -99999; y-- {
		pts = append(pts, gridraster.Point{X: 0, Y: y})
	}
	buf := &bytes.Buffer{}
	if err := WriteASCII(buf, pts, 40); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) > 40 {
		t.Errorf("got %d rows, expected at most 40", len(lines))
	}
	for i, l := range lines {
		if l != "#" {
			t.Errorf("row %d is %q", i, l)
		}
	}
}

func TestWriteASCIIEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := WriteASCII(buf, nil, 80); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}
