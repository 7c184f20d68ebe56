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
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// axisPosition locates x on a strictly ascending axis, returning the
// index of the grid cell to interpolate in and the fractional position
// of x within it. Positions outside the axis range produce fractions
// outside [0, 1], which extrapolate linearly from the nearest cell.
func axisPosition(points []float64, x float64) (int, float64) {
	i := sort.SearchFloat64s(points, x) - 1
	if i < 0 {
		i = 0
	} else if i > len(points)-2 {
		i = len(points) - 2
	}
	return i, (x - points[i]) / (points[i+1] - points[i])
}

// Interpolate estimates the aviation activity outcome for one region
// and year at the given kerosene price (year-2005 USD/kg fuel) and
// carbon price (year-2005 USD/kgCO2). It interpolates each grid country
// belonging to the region bilinearly on the year's oil × carbon price
// grid and sums the results, then floors physically impossible negative
// values.
//
// Query points outside the year's modelled price range are extrapolated
// linearly rather than rejected. Far outside the range — zero oil
// price, or carbon prices well beyond $1000/tCO2 — the extrapolated
// results may be nonsensical.
func (m *Model) Interpolate(year int, region string, kerosenePrice, carbonPrice float64) (*Outcome, error) {
	if year < FirstYear || year > LastYear {
		return nil, fmt.Errorf("aviagrid: query year %d outside %d–%d", year, FirstYear, LastYear)
	}

	// The grid runs vary oil price, so place the kerosene price query on
	// the oil price axis, and move the carbon price to the axis units.
	op := KerosenePriceToOilPrice(kerosenePrice)
	cp := CarbonPriceToGridUnits(carbonPrice)

	opind, fop := axisPosition(OilPricePoints(year), op)
	cpind, fcp := axisPosition(CarbonPricePoints(year), cp)

	total := make([]float64, m.grid.VarCount())
	for c := 0; c < m.lookup.Len(); c++ {
		if m.lookup.Region(c) != region {
			continue
		}
		floats.Add(total, m.grid.interpolateCountry(year, c, opind, cpind, fop, fcp))
	}

	floorNegatives(total)
	return outcomeFromVector(total), nil
}

// floorNegatives applies the physical-consistency rules to a summed
// variable vector in place. A negative interpolated value means the
// query extrapolated into a regime where the activity it measures has
// collapsed (for example a carbon price so high that flying is
// inaccessible apart from to the very rich), so the affected group of
// variables is set to zero. Not every variable behaves smoothly at the
// extrapolation boundary — there are complex interactions around hold
// freight capacity in passenger aircraft versus freighters — which is
// why the hold freight RTKs are floored individually.
//
// The pax- and freighter-specific cascades below are currently inert:
// their flags are never raised, so only the all-domestic and
// all-international cascades and the individual hold freight floors
// take effect.
// TODO: confirm with the AIM grid-run maintainers whether the pax and
// freighter cascades should fire; downstream comparisons depend on the
// current numeric behaviour, so do not change it unilaterally.
func floorNegatives(v []float64) {
	var domAll, intAll bool
	var domPax, intPax, domFreighter, intFreighter bool

	for n, val := range v {
		if val >= 0 {
			continue
		}
		switch n {
		case VarDomesticFuel, VarDomesticNOx, VarDomesticAKM:
			// Zero implies no domestic flights at all.
			domAll = true
		case VarInternationalFuel, VarInternationalNOx, VarInternationalAKM:
			intAll = true
		case VarDomesticRPK, VarDomesticPassengerFlights:
			domPax = false
		case VarInternationalRPK, VarInternationalPassengerFlights:
			intPax = false
		case VarDomesticFreighterRTK, VarDomesticFreighterFlights:
			domFreighter = false
		case VarInternationalFreighterRTK, VarInternationalFreighterFlights:
			intFreighter = false
		case VarDomesticHoldFreightRTK, VarInternationalHoldFreightRTK:
			// Hold freight RTK is floored on its own; it does not imply
			// anything about the other variables.
			v[n] = 0
		}
	}

	zero := func(indices ...int) {
		for _, n := range indices {
			if n < len(v) {
				v[n] = 0
			}
		}
	}
	if domAll {
		zero(VarDomesticFuel, VarDomesticRPK, VarDomesticHoldFreightRTK,
			VarDomesticFreighterRTK, VarDomesticPassengerFlights,
			VarDomesticFreighterFlights, VarDomesticNOx, VarDomesticAKM)
	}
	if intAll {
		zero(VarInternationalFuel, VarInternationalRPK, VarInternationalHoldFreightRTK,
			VarInternationalFreighterRTK, VarInternationalPassengerFlights,
			VarInternationalFreighterFlights, VarInternationalNOx, VarInternationalAKM)
	}
	if domPax {
		zero(VarDomesticRPK, VarDomesticHoldFreightRTK, VarDomesticPassengerFlights)
	}
	if intPax {
		zero(VarInternationalRPK, VarInternationalHoldFreightRTK, VarInternationalPassengerFlights)
	}
	if domFreighter {
		zero(VarDomesticFreighterRTK, VarDomesticFreighterFlights)
	}
	if intFreighter {
		zero(VarInternationalFreighterRTK, VarInternationalFreighterFlights)
	}
}
