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
	"strconv"
	"strings"

	"github.com/ctessum/sparse"
)

// RunMode selects how many output variables are read from the grid and
// returned from queries.
type RunMode int

const (
	// RunModeBasic reads and outputs aviation fuel use only. Read-in and
	// query times increase with the number of variables, so basic mode
	// is faster to use.
	RunModeBasic RunMode = iota

	// RunModeFull reads and outputs the complete range of metrics,
	// including flights, RPK, RTK, NOx and distance flown. Full mode
	// allows a larger range of policy interactions and non-CO2 impacts
	// to be calculated.
	RunModeFull
)

// VarCount returns the number of output variables in this run mode.
func (m RunMode) VarCount() int {
	if m == RunModeBasic {
		return 2
	}
	return numVars
}

// Grid holds the AIM outputs to interpolate between. The axes are
// [year][country][variable][oil price grid point][carbon price grid
// point]. The countries are the AIM country set by alphabetical order
// of 2-letter ISO code, matching the ordering of the country-region
// lookup. A Grid is built once at load and never modified afterwards.
type Grid struct {
	data *sparse.DenseArray
	mode RunMode
}

// Mode returns the run mode the grid was loaded with.
func (g *Grid) Mode() RunMode { return g.mode }

// VarCount returns the number of output variables held per grid point.
func (g *Grid) VarCount() int { return g.mode.VarCount() }

// Countries returns the number of countries on the grid's country axis.
func (g *Grid) Countries() int { return g.data.Shape[1] }

// gridColumnOffset is the column in a grid source row where output
// variables start; the preceding columns are year, country code,
// country index, and the oil and carbon price variables used for the
// run, which are implied by row order rather than read.
const gridColumnOffset = 5

// ReadGrid loads a grid from a CSV source with one row per grid point.
// The first row is a header. Within each (year, country) block, rows
// must be ordered with the carbon price index cycling fastest, then the
// oil price index; the cycling position is tracked from the row
// sequence itself. Loading is all or nothing: a source whose dimensions
// do not match the expected model run layout returns an error rather
// than a partially filled grid.
func ReadGrid(r io.Reader, mode RunMode) (*Grid, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("aviagrid: reading grid source: %v", err)
	}
	nvar := mode.VarCount()
	const pointsPerBlock = OilPricePointCount * CarbonPricePointCount
	wantRows := YearCount * CountryCount * pointsPerBlock
	if len(rows)-1 != wantRows {
		return nil, fmt.Errorf("aviagrid: grid source has %d data rows; expected %d (%d years × %d countries × %d price grid points)",
			len(rows)-1, wantRows, YearCount, CountryCount, pointsPerBlock)
	}

	data := sparse.ZerosDense(YearCount, CountryCount, nvar, OilPricePointCount, CarbonPricePointCount)

	opind, cpind := 0, 0
	for i, row := range rows[1:] { // row 0 is headers.
		// Work out which point in the oil and carbon price grid we are.
		if cpind == CarbonPricePointCount {
			cpind = 0
			opind++
		}
		if opind == OilPricePointCount {
			cpind = 0
			opind = 0
		}

		if len(row) < gridColumnOffset+nvar {
			return nil, fmt.Errorf("aviagrid: grid source row %d has %d fields; expected at least %d",
				i+2, len(row), gridColumnOffset+nvar)
		}
		year, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("aviagrid: grid source row %d: parsing year: %v", i+2, err)
		}
		if year < FirstYear || year > LastYear {
			return nil, fmt.Errorf("aviagrid: grid source row %d: year %d outside %d–%d",
				i+2, year, FirstYear, LastYear)
		}
		country, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, fmt.Errorf("aviagrid: grid source row %d: parsing country index: %v", i+2, err)
		}
		if country < 0 || country >= CountryCount {
			return nil, fmt.Errorf("aviagrid: grid source row %d: country index %d outside 0–%d",
				i+2, country, CountryCount-1)
		}
		for n := 0; n < nvar; n++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[gridColumnOffset+n]), 64)
			if err != nil {
				return nil, fmt.Errorf("aviagrid: grid source row %d: parsing variable %d: %v", i+2, n, err)
			}
			data.Set(v, year-FirstYear, country, n, opind, cpind)
		}
		cpind++
	}
	return &Grid{data: data, mode: mode}, nil
}

// Value returns the stored output value for the given year, country
// index, output variable index, and oil and carbon price grid indices.
func (g *Grid) Value(year, country, variable, oilIndex, carbonIndex int) float64 {
	return g.data.Get(year-FirstYear, country, variable, oilIndex, carbonIndex)
}

// interpolateCountry bilinearly interpolates every output variable for
// one country at fractional position (fop, fcp) within the grid cell
// whose lower corner is (opind, cpind). Fractions outside [0, 1]
// extrapolate linearly.
func (g *Grid) interpolateCountry(year, country, opind, cpind int, fop, fcp float64) []float64 {
	out := make([]float64, g.VarCount())
	y := year - FirstYear
	for n := range out {
		f00 := g.data.Get(y, country, n, opind, cpind)
		f10 := g.data.Get(y, country, n, opind+1, cpind)
		f01 := g.data.Get(y, country, n, opind, cpind+1)
		f11 := g.data.Get(y, country, n, opind+1, cpind+1)
		out[n] = f00*(1-fop)*(1-fcp) + f10*fop*(1-fcp) + f01*(1-fop)*fcp + f11*fop*fcp
	}
	return out
}
