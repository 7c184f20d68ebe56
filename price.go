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

// usd2005To2015 converts year-2005 US dollars to year-2015 US dollars
// (divide by it), matching the dollar-year basis used internally in
// AIM.
const usd2005To2015 = 0.824

// co2PerKgFuel is the mass of CO2 emitted per kg of Jet A-1 burnt
// [kgCO2/kg].
const co2PerKgFuel = 3.15

// PriceTable holds one forecast kerosene and carbon price per year, as
// supplied by an external integrated assessment model. Kerosene price
// is in year-2005 USD/kg fuel and carbon price in year-2005 USD/kgCO2.
type PriceTable struct {
	data *sparse.DenseArray
}

// Positions of the two price variables in a PriceTable row.
const (
	priceKerosene = iota
	priceCarbon
	numPriceVars
)

// ReadPrices loads a price forecast from a CSV source with columns
// [year, kerosene price, carbon price] and one row per year 2005–2100,
// after a header row. A source with the wrong number of rows or fields
// is rejected.
func ReadPrices(r io.Reader) (*PriceTable, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("aviagrid: reading price source: %v", err)
	}
	if len(rows)-1 != YearCount {
		return nil, fmt.Errorf("aviagrid: price source has %d data rows; expected %d (one per year %d–%d)",
			len(rows)-1, YearCount, FirstYear, LastYear)
	}
	data := sparse.ZerosDense(YearCount, numPriceVars)
	for i, row := range rows[1:] { // row 0 is headers.
		if len(row) < 1+numPriceVars {
			return nil, fmt.Errorf("aviagrid: price source row %d has %d fields; expected at least %d",
				i+2, len(row), 1+numPriceVars)
		}
		year, err := strconv.Atoi(strings.TrimSpace(row[0]))
		if err != nil {
			return nil, fmt.Errorf("aviagrid: price source row %d: parsing year: %v", i+2, err)
		}
		if year < FirstYear || year > LastYear {
			return nil, fmt.Errorf("aviagrid: price source row %d: year %d outside %d–%d",
				i+2, year, FirstYear, LastYear)
		}
		for n := 0; n < numPriceVars; n++ {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[1+n]), 64)
			if err != nil {
				return nil, fmt.Errorf("aviagrid: price source row %d: parsing price: %v", i+2, err)
			}
			data.Set(v, year-FirstYear, n)
		}
	}
	return &PriceTable{data: data}, nil
}

// Kerosene returns the forecast kerosene price for the given year in
// year-2005 USD/kg fuel.
func (p *PriceTable) Kerosene(year int) float64 {
	return p.data.Get(year-FirstYear, priceKerosene)
}

// Carbon returns the forecast carbon price for the given year in
// year-2005 USD/kgCO2.
func (p *PriceTable) Carbon(year int) float64 {
	return p.data.Get(year-FirstYear, priceCarbon)
}

// KerosenePriceToOilPrice estimates the oil price input, in year-2015
// USD/bbl, that AIM would associate with the given kerosene price in
// year-2005 USD/kg. The external models forecast kerosene price, but
// the grid runs vary oil price and derive kerosene price internally, so
// queries have to be placed on the oil price axis. The linear model
// here is fitted against historical EIA data and AIM's internal fuel
// price routine. It carries no lagged-price term: hedging means a given
// AIM oil price can correspond to several previous-year fuel prices, so
// an exact inversion is not possible, and the modelled aviation system
// may be somewhat more sensitive to rapid fuel price changes than the
// real one.
func KerosenePriceToOilPrice(kerosenePrice float64) float64 {
	p := kerosenePrice / usd2005To2015 // to year-2015 USD/kg
	return 68.74 * (p/0.783 - 0.1062) / 0.7930
}

// CarbonPriceToGridUnits converts a carbon price in year-2005 USD/kgCO2
// into the year-2015 USD/tCO2 coordinate used on the carbon price axis.
func CarbonPriceToGridUnits(carbonPrice float64) float64 {
	return 1000 * carbonPrice / usd2005To2015
}

// CarbonPricePerKgFuel converts a carbon price per kgCO2 into the
// equivalent price per kg of Jet A-1 burnt, for reporting the effective
// fuel price including carbon costs.
func CarbonPricePerKgFuel(carbonPrice float64) float64 {
	return co2PerKgFuel * carbonPrice
}
