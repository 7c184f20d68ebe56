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

import "math"

// Synthetic price trajectories for running the model standalone,
// without a price forecast from an external integrated assessment
// model.

// keroseneHistory is the US EIA jet fuel price for 2005 onwards in
// year-2015 USD per US gallon; the final entry is the 2017 base that
// later years grow from.
var keroseneHistory = []float64{2.11, 2.35, 2.47, 3.36, 1.88, 2.39, 3.22, 3.20, 3.03, 2.77, 1.63, 1.30, 1.56}

// jetA1KgPerGallon is the mass of a US gallon of Jet A-1 at typical
// density.
const jetA1KgPerGallon = 3.044

// KerosenePriceTrend generates a kerosene price for the given year in
// year-2005 USD/kg, which is what the model expects as input. Years
// before 2017 return the historical price; from 2017 the price grows
// from the 2017 value at the given yearly rate.
func KerosenePriceTrend(year int, rate float64) float64 {
	if year < 2017 {
		i := year - FirstYear
		if i < 0 {
			i = 0
		}
		return usd2005To2015 * keroseneHistory[i] / jetA1KgPerGallon
	}
	last := keroseneHistory[len(keroseneHistory)-1]
	return usd2005To2015 * last * math.Pow(rate, float64(year-2017)) / jetA1KgPerGallon
}

// CarbonPriceTrend generates a carbon price for the given year in
// year-2005 USD/kgCO2, starting from base USD/tCO2 in 2020 and growing
// at the given yearly rate. Years before 2020 return zero (i.e. the EU
// ETS is ignored). The price is the effective carbon price applied
// across all carbon on a route group; no free baseline allocation is
// assumed.
func CarbonPriceTrend(year int, base, rate float64) float64 {
	if year < 2020 {
		return 0
	}
	return base * math.Pow(rate, float64(year-2020)) / 1000
}
