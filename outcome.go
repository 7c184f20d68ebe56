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

// Output variable positions in the AIM grid source and in report
// output. The ordering is fixed by the grid generation runs; basic mode
// covers the first two positions only.
const (
	VarDomesticFuel = iota
	VarInternationalFuel
	VarDomesticRPK
	VarInternationalRPK
	VarDomesticHoldFreightRTK
	VarInternationalHoldFreightRTK
	VarDomesticFreighterRTK
	VarInternationalFreighterRTK
	VarDomesticPassengerFlights
	VarInternationalPassengerFlights
	VarDomesticFreighterFlights
	VarInternationalFreighterFlights
	VarDomesticNOx
	VarInternationalNOx
	VarDomesticAKM
	VarInternationalAKM

	numVars
)

// varNames gives the report column header for each variable position.
var varNames = []string{
	"Domestic_Fuel_Mt",
	"International_Fuel_Mt",
	"Domestic_RPK",
	"International_RPK",
	"Domestic_Hold_Freight_RTK",
	"International_Hold_Freight_RTK",
	"Domestic_Freighter_RTK",
	"International_Freighter_RTK",
	"Domestic_Passenger_Flights",
	"International_Passenger_Flights",
	"Domestic_Freighter_Flights",
	"International_Freighter_Flights",
	"Domestic_NOx_kt",
	"International_NOx_kt",
	"Domestic_AKM",
	"International_AKM",
}

// VarNames returns the report column headers for the output variables
// of the given run mode, in grid order.
func VarNames(mode RunMode) []string {
	return varNames[:mode.VarCount()]
}

// Outcome holds the aggregated interpolation results for one
// (year, region) query. Fuel is in Mt, NOx in kt; RPK, RTK, AKM and
// flight counts are in the native AIM units. In basic mode only the
// fuel fields are populated.
type Outcome struct {
	DomesticFuelMt      float64
	InternationalFuelMt float64

	DomesticRPK      float64
	InternationalRPK float64

	DomesticHoldFreightRTK      float64
	InternationalHoldFreightRTK float64

	DomesticFreighterRTK      float64
	InternationalFreighterRTK float64

	DomesticPassengerFlights      float64
	InternationalPassengerFlights float64

	DomesticFreighterFlights      float64
	InternationalFreighterFlights float64

	DomesticNOxKt      float64
	InternationalNOxKt float64

	DomesticAKM      float64
	InternationalAKM float64
}

// outcomeFromVector converts a positional variable vector of length 2
// or 16 into a named Outcome.
func outcomeFromVector(v []float64) *Outcome {
	var o Outcome
	for n, val := range v {
		switch n {
		case VarDomesticFuel:
			o.DomesticFuelMt = val
		case VarInternationalFuel:
			o.InternationalFuelMt = val
		case VarDomesticRPK:
			o.DomesticRPK = val
		case VarInternationalRPK:
			o.InternationalRPK = val
		case VarDomesticHoldFreightRTK:
			o.DomesticHoldFreightRTK = val
		case VarInternationalHoldFreightRTK:
			o.InternationalHoldFreightRTK = val
		case VarDomesticFreighterRTK:
			o.DomesticFreighterRTK = val
		case VarInternationalFreighterRTK:
			o.InternationalFreighterRTK = val
		case VarDomesticPassengerFlights:
			o.DomesticPassengerFlights = val
		case VarInternationalPassengerFlights:
			o.InternationalPassengerFlights = val
		case VarDomesticFreighterFlights:
			o.DomesticFreighterFlights = val
		case VarInternationalFreighterFlights:
			o.InternationalFreighterFlights = val
		case VarDomesticNOx:
			o.DomesticNOxKt = val
		case VarInternationalNOx:
			o.InternationalNOxKt = val
		case VarDomesticAKM:
			o.DomesticAKM = val
		case VarInternationalAKM:
			o.InternationalAKM = val
		}
	}
	return &o
}

// Vector returns the outcome as a positional variable vector of the
// length appropriate for the given run mode, for report output and
// external-model exchange.
func (o *Outcome) Vector(mode RunMode) []float64 {
	full := []float64{
		o.DomesticFuelMt, o.InternationalFuelMt,
		o.DomesticRPK, o.InternationalRPK,
		o.DomesticHoldFreightRTK, o.InternationalHoldFreightRTK,
		o.DomesticFreighterRTK, o.InternationalFreighterRTK,
		o.DomesticPassengerFlights, o.InternationalPassengerFlights,
		o.DomesticFreighterFlights, o.InternationalFreighterFlights,
		o.DomesticNOxKt, o.InternationalNOxKt,
		o.DomesticAKM, o.InternationalAKM,
	}
	return full[:mode.VarCount()]
}
