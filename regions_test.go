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
	"strings"
	"testing"
)

func TestReadCountryRegions(t *testing.T) {
	src := `Country,Index,Region,FuelScaling
AE,0,MEA,1.0
AF,1,ODA,1.0
AL,2,EEU,0.97
AM,3,FSU,1.0
`
	c, err := ReadCountryRegions(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if c.Len() != 4 {
		t.Fatalf("got %d countries, want 4", c.Len())
	}
	want := []string{"MEA", "ODA", "EEU", "FSU"}
	for i, w := range want {
		if got := c.Region(i); got != w {
			t.Errorf("country %d: got %q, want %q", i, got, w)
		}
	}
}

func TestReadCountryRegionsShortRow(t *testing.T) {
	src := "Country,Index,Region,FuelScaling\nAE,0\n"
	if _, err := ReadCountryRegions(strings.NewReader(src)); err == nil {
		t.Fatal("expected an error for a row without a region code")
	}
}

func TestRegionCodes(t *testing.T) {
	if len(RegionCodes) != 16 {
		t.Fatalf("got %d region codes, want 16", len(RegionCodes))
	}
	seen := make(map[string]bool)
	for _, r := range RegionCodes {
		if seen[r] {
			t.Errorf("duplicate region code %q", r)
		}
		seen[r] = true
	}
}
