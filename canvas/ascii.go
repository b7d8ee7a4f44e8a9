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
	"bufio"
	"io"

	"seehuhn.de/go/gridraster"
)

// WriteASCII writes a character plot of the points to w, with the
// y-axis pointing up.  Grid points are shown as '#', the axes as '-' and
// '|', and empty cells as '.'.  If the points span more than maxCols
// grid units in either direction, k×k blocks of grid units are combined
// into one character cell, so that the plot has at most maxCols columns
// and at most maxCols rows.
func WriteASCII(w io.Writer, pts []gridraster.Point, maxCols int) error {
	if len(pts) == 0 {
		return nil
	}
	maxCols = max(maxCols, 1)

	xMin, xMax := pts[0].X, pts[0].X
	yMin, yMax := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}

	// cell size in grid units
	k := (max(xMax-xMin, yMax-yMin) + maxCols) / maxCols
	cols := (xMax-xMin)/k + 1
	rows := (yMax-yMin)/k + 1

	cells := make([][]byte, rows)
	for r := range cells {
		cells[r] = make([]byte, cols)
		for c := range cells[r] {
			cells[r][c] = '.'
		}
	}
	if xMin <= 0 && 0 <= xMax {
		c := (0 - xMin) / k
		for r := range cells {
			cells[r][c] = '|'
		}
	}
	if yMin <= 0 && 0 <= yMax {
		r := rows - 1 - (0-yMin)/k
		for c := range cells[r] {
			if cells[r][c] == '|' {
				cells[r][c] = '+'
			} else {
				cells[r][c] = '-'
			}
		}
	}
	for _, p := range pts {
		cells[rows-1-(p.Y-yMin)/k][(p.X-xMin)/k] = '#'
	}

	bw := bufio.NewWriter(w)
	for _, row := range cells {
		bw.Write(row)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
