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

// Command export writes the test case definitions to JSON, so that the
// algorithms can be cross-checked against other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"log"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/gridraster"
	"seehuhn.de/go/gridraster/testcases"
)

func main() {
	if err := run("testdata/testcases.json"); err != nil {
		log.Fatal(err)
	}
}

func run(fname string) (err error) {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		return err
	}
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

type jsonTestCase struct {
	Name       string   `json:"name"`
	Shape      string   `json:"shape"`
	Algorithms []string `json:"algorithms"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Scale      float64  `json:"scale"`

	// line requests
	From []int `json:"from,omitempty"`
	To   []int `json:"to,omitempty"`

	// circle requests
	Center []int `json:"center,omitempty"`
	Radius *int  `json:"radius,omitempty"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Scale:  tc.Scale,
	}
	for _, alg := range tc.Algorithms() {
		jtc.Algorithms = append(jtc.Algorithms, alg.String())
	}

	switch req := tc.Request.(type) {
	case gridraster.Line:
		jtc.Shape = "line"
		jtc.From = []int{req.X1, req.Y1}
		jtc.To = []int{req.X2, req.Y2}
	case gridraster.Circle:
		jtc.Shape = "circle"
		jtc.Center = []int{req.CX, req.CY}
		r := req.R
		jtc.Radius = &r
	}
	return jtc
}
