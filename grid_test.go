/*
Copyright © 2020 the AviaGrid authors.
This file is part of AviaGrid.

AviaGrid is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

AviaGrid is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with AviaGrid.  If not, see <http://www.gnu.org/licenses/>.
*/

package aviagrid

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// testGridValue gives every (year index, country, variable, oil point,
// carbon point) grid cell a distinct value so that ingestion and
// interpolation tests can tell cells apart.
func testGridValue(y, c, n, op, cp int) float64 {
	return float64((((y*CountryCount+c)*OilPricePointCount+op)*CarbonPricePointCount+cp)*numVars + n)
}

// gridCSV builds a complete grid source in run order: carbon price
// index cycling fastest, then oil price index, for every (year,
// country) block.
func gridCSV(nvar int) string {
	var b bytes.Buffer
	b.WriteString("Year,Country,CountryIndex,Oilprice,Carbonprice,Var0,Var1\n")
	for y := 0; y < YearCount; y++ {
		for c := 0; c < CountryCount; c++ {
			for op := 0; op < OilPricePointCount; op++ {
				for cp := 0; cp < CarbonPricePointCount; cp++ {
					fmt.Fprintf(&b, "%d,XX,%d,0,0", FirstYear+y, c)
					for n := 0; n < nvar; n++ {
						fmt.Fprintf(&b, ",%g", testGridValue(y, c, n, op, cp))
					}
					b.WriteString("\n")
				}
			}
		}
	}
	return b.String()
}

// basicGridSrc is built once and shared; the full source is ~600,000
// rows.
var basicGridSrc string

func basicGrid() string {
	if basicGridSrc == "" {
		basicGridSrc = gridCSV(2)
	}
	return basicGridSrc
}

func TestReadGrid(t *testing.T) {
	g, err := ReadGrid(strings.NewReader(basicGrid()), RunModeBasic)
	if err != nil {
		t.Fatal(err)
	}
	if g.Countries() != CountryCount {
		t.Fatalf("got %d countries, want %d", g.Countries(), CountryCount)
	}
	if g.VarCount() != 2 {
		t.Fatalf("got %d variables, want 2", g.VarCount())
	}
	cases := []struct{ year, c, n, op, cp int }{
		{2005, 0, 0, 0, 0},
		{2005, 0, 1, 0, 1},
		{2005, 1, 0, 8, 4},
		{2020, 77, 1, 3, 2},
		{2100, CountryCount - 1, 1, 8, 4},
	}
	for _, tc := range cases {
		want := testGridValue(tc.year-FirstYear, tc.c, tc.n, tc.op, tc.cp)
		if got := g.Value(tc.year, tc.c, tc.n, tc.op, tc.cp); got != want {
			t.Errorf("Value(%d,%d,%d,%d,%d): got %g, want %g",
				tc.year, tc.c, tc.n, tc.op, tc.cp, got, want)
		}
	}
}

func TestReadGridWrongRowCount(t *testing.T) {
	src := basicGrid()
	// Drop the final data row.
	src = src[:strings.LastIndex(strings.TrimSuffix(src, "\n"), "\n")+1]
	if _, err := ReadGrid(strings.NewReader(src), RunModeBasic); err == nil {
		t.Fatal("expected an error for a truncated grid source")
	}
}

func TestReadGridBadYear(t *testing.T) {
	src := strings.Replace(basicGrid(), "\n2005,", "\n1999,", 1)
	if _, err := ReadGrid(strings.NewReader(src), RunModeBasic); err == nil {
		t.Fatal("expected an error for a year outside the model range")
	}
}

func TestReadGridBadCountry(t *testing.T) {
	src := strings.Replace(basicGrid(), "\n2005,XX,0,", "\n2005,XX,500,", 1)
	if _, err := ReadGrid(strings.NewReader(src), RunModeBasic); err == nil {
		t.Fatal("expected an error for a country index outside the grid")
	}
}

func TestReadGridShortRow(t *testing.T) {
	// A full-mode read needs 16 variable columns; a basic-format source
	// must be rejected rather than silently reading junk.
	if _, err := ReadGrid(strings.NewReader(basicGrid()), RunModeFull); err == nil {
		t.Fatal("expected an error for too few variable columns")
	}
}
