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

// The AIM grid runs cover oil and carbon price ranges that change by
// year: the modelled range becomes greater over time. OilPricePoints
// and CarbonPricePoints account for this when assigning coordinates to
// the interpolation grid. If the axis values here drift from the ones
// the grid runs were made with, extrapolation silently fires for
// queries that should be within-domain, so the ramp rules below must
// track the run setup exactly.

// oilPriceBase is the baseline oil price grid in year-2015 USD/bbl.
// It applies from 2020 onwards and is consistent between all sets of
// model runs.
var oilPriceBase = []float64{30, 50, 70, 90, 110, 130, 150, 170, 190}

// oilPriceHistory holds the single observed oil price per year for
// 2005–2016, in year-2015 USD/bbl, which is what is used internally in
// AIM. These are the same for all model runs.
var oilPriceHistory = []float64{68.74, 77.61, 82.67, 109.77, 68.45, 86.39, 99.98, 97.06, 99.67, 93.26, 48.66, 42.77}

// carbonPriceBase is the baseline carbon price grid in year-2015
// USD/tCO2. It applies from 2050 onwards, with a linear ramp up to that
// point from 2015.
var carbonPriceBase = []float64{0, 10, 100, 500, 1000}

// ascentEpsilon separates collapsed axis points so that the strictly
// ascending coordinate condition is met in years where the underlying
// runs explored a single price value.
const ascentEpsilon = 1e-4

// OilPricePoints returns the oil price interpolation coordinates for
// the given year, in year-2015 USD/bbl. The returned sequence is
// strictly ascending and has OilPricePointCount entries. Before 2017
// only the historical price was modelled, so all points collapse to the
// year's observed value (plus a small ascending delta); between 2017
// and 2020 each point moves linearly from the 2016 observed value out
// to its baseline position.
func OilPricePoints(year int) []float64 {
	points := make([]float64, len(oilPriceBase))
	copy(points, oilPriceBase)
	switch {
	case year < 2017:
		base := oilPriceHistory[year-FirstYear]
		for i := range points {
			points[i] = base + ascentEpsilon*float64(i)
		}
	case year < 2020:
		base := oilPriceHistory[len(oilPriceHistory)-1]
		for i, p := range points {
			points[i] = p - float64(2020-year)*(p-base)/(2020-2016)
		}
	}
	return points
}

// CarbonPricePoints returns the carbon price interpolation coordinates
// for the given year, in year-2015 USD/tCO2. The returned sequence is
// strictly ascending and has CarbonPricePointCount entries. Before 2016
// no carbon price signal was modelled, so all points collapse to near
// zero; from 2016 the points ramp linearly up to their 2050 baseline
// positions.
func CarbonPricePoints(year int) []float64 {
	points := make([]float64, len(carbonPriceBase))
	copy(points, carbonPriceBase)
	if year >= 2050 {
		return points
	}
	if year < 2016 {
		for i := range points {
			points[i] = ascentEpsilon * float64(i)
		}
		return points
	}
	for i, p := range points {
		points[i] = p - float64(2050-year)*p/(2050-2015)
	}
	return points
}
