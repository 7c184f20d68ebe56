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
	"encoding/csv"
	"fmt"
	"io"
)

// RegionCodes lists the 16 TIAM world regions that results are
// aggregated to.
var RegionCodes = []string{
	"AFR", "AUS", "CAN", "CSA", "CHI", "EEU", "FSU", "IND",
	"JPN", "MEX", "MEA", "ODA", "SKO", "UK", "USA", "WEU",
}

// CountryRegions maps each grid country index to the code of the world
// region it is aggregated into. Row order in the source defines the
// country index, which must match the grid's country axis ordering.
type CountryRegions struct {
	regions []string
}

// ReadCountryRegions loads a country-to-region lookup from a CSV source
// with one row per country after a header row. The region code is in
// the third column; the fourth column holds a fuel scaling factor that
// is not used here. The source must be complete and in grid country
// order; completeness against a particular grid is checked when the two
// are combined in NewModel.
func ReadCountryRegions(r io.Reader) (*CountryRegions, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("aviagrid: reading country-region source: %v", err)
	}
	c := &CountryRegions{regions: make([]string, 0, len(rows)-1)}
	for i, row := range rows[1:] { // row 0 is headers.
		if len(row) < 3 {
			return nil, fmt.Errorf("aviagrid: country-region source row %d has %d fields; expected at least 3",
				i+2, len(row))
		}
		c.regions = append(c.regions, row[2])
	}
	return c, nil
}

// Len returns the number of countries in the lookup.
func (c *CountryRegions) Len() int { return len(c.regions) }

// Region returns the region code for the given country index.
func (c *CountryRegions) Region(country int) string { return c.regions[country] }
