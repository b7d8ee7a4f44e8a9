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

// Command genpdf draws every test case, with every applicable algorithm,
// into a separate PDF file for visual inspection.
// Run from the module root directory.
package main

import (
	"context"
	"fmt"
	"log"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/gridraster"
	"seehuhn.de/go/gridraster/canvas"
	"seehuhn.de/go/gridraster/testcases"
)

const plotDir = "testdata/plots"

func main() {
	if err := run(context.Background()); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context) error {
	if err := os.MkdirAll(plotDir, 0755); err != nil {
		return err
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			for _, alg := range tc.Algorithms() {
				name := category + "_" + tc.Name + "_" + alg.String()
				pdfPath := filepath.Join(plotDir, name+".pdf")
				if err := generatePDF(ctx, tc, alg, pdfPath); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
			}
		}
	}
	return nil
}

func generatePDF(ctx context.Context, tc testcases.TestCase, alg gridraster.Algorithm, pdfPath string) error {
	res, err := alg.Rasterize(ctx, tc.Request)
	if err != nil {
		return err
	}

	view := canvas.NewView(tc.Width, tc.Height)
	// The test cases may use scales outside the interactive zoom range.
	view.Scale = tc.Scale

	page, err := canvas.CreatePDF(pdfPath, tc.Width, tc.Height)
	if err != nil {
		return err
	}
	canvas.NewPainter(view).Render(page, res)
	return page.Close()
}
