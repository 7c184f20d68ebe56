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
	"math"
	"testing"
)

const testTolerance = 1e-8

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func TestOilPricePointsBaseline(t *testing.T) {
	want := []float64{30, 50, 70, 90, 110, 130, 150, 170, 190}
	for _, year := range []int{2020, 2050, 2100} {
		got := OilPricePoints(year)
		if len(got) != OilPricePointCount {
			t.Fatalf("year %d: got %d points, want %d", year, len(got), OilPricePointCount)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("year %d point %d: got %g, want %g", year, i, got[i], want[i])
			}
		}
	}
}

func TestCarbonPricePointsBaseline(t *testing.T) {
	want := []float64{0, 10, 100, 500, 1000}
	for _, year := range []int{2050, 2075, 2100} {
		got := CarbonPricePoints(year)
		if len(got) != CarbonPricePointCount {
			t.Fatalf("year %d: got %d points, want %d", year, len(got), CarbonPricePointCount)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("year %d point %d: got %g, want %g", year, i, got[i], want[i])
			}
		}
	}
}

func TestAxisPointsStrictlyAscending(t *testing.T) {
	for year := FirstYear; year <= LastYear; year++ {
		for _, axis := range [][]float64{OilPricePoints(year), CarbonPricePoints(year)} {
			for i := 1; i < len(axis); i++ {
				if axis[i] <= axis[i-1] {
					t.Fatalf("year %d: axis %v not strictly ascending at index %d", year, axis, i)
				}
			}
		}
	}
}

func TestOilPricePointsHistorical(t *testing.T) {
	// Before 2017 all points collapse to the observed price for that
	// year, separated only by the ascending deltas.
	got := OilPricePoints(2005)
	if got[0] != 68.74 {
		t.Errorf("2005 base point: got %g, want 68.74", got[0])
	}
	if different(got[8], 68.74+8e-4, testTolerance) {
		t.Errorf("2005 last point: got %g, want %g", got[8], 68.74+8e-4)
	}
	if v := OilPricePoints(2016)[0]; v != 42.77 {
		t.Errorf("2016 base point: got %g, want 42.77", v)
	}
}

func TestOilPricePointsRampIn(t *testing.T) {
	// Between 2017 and 2020 each point moves linearly from the 2016
	// observed value to its baseline position.
	cases := []struct {
		year  int
		index int
		want  float64
	}{
		{2018, 0, 30 - 2*(30-42.77)/4},
		{2018, 8, 190 - 2*(190-42.77)/4},
		{2019, 0, 30 - 1*(30-42.77)/4},
		{2017, 4, 110 - 3*(110-42.77)/4},
	}
	for _, c := range cases {
		if got := OilPricePoints(c.year)[c.index]; different(got, c.want, testTolerance) {
			t.Errorf("year %d point %d: got %g, want %g", c.year, c.index, got, c.want)
		}
	}
}

func TestCarbonPricePointsRampIn(t *testing.T) {
	// Before 2016 the carbon signal collapses to near zero.
	got := CarbonPricePoints(2010)
	if got[0] != 0 {
		t.Errorf("2010 first point: got %g, want 0", got[0])
	}
	if different(got[4], 4e-4, testTolerance) {
		t.Errorf("2010 last point: got %g, want %g", got[4], 4e-4)
	}

	// From 2016 to 2050 each point ramps linearly toward its baseline.
	cases := []struct {
		year  int
		index int
		want  float64
	}{
		{2030, 1, 10 - 20.0*10/35},
		{2030, 4, 1000 - 20.0*1000/35},
		{2016, 2, 100 - 34.0*100/35},
		{2049, 3, 500 - 1.0*500/35},
	}
	for _, c := range cases {
		if got := CarbonPricePoints(c.year)[c.index]; different(got, c.want, testTolerance) {
			t.Errorf("year %d point %d: got %g, want %g", c.year, c.index, got, c.want)
		}
	}
}
