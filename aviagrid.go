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

// Package aviagrid is a reduced-form model of aviation fuel use and
// activity. It interpolates within a precomputed grid of Aviation
// Integrated Model (AIM) outputs, indexed by oil price and carbon price,
// to give fast estimates of aviation fuel use, flights, RPK, RTK, NOx
// and distance flown per world region and year. It is intended for
// coupling with integrated assessment models that supply kerosene and
// carbon price forecasts but cannot afford to run the full simulation.
package aviagrid

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/ctessum/requestcache"
)

// Version gives the version number.
const Version = "0.9.1"

// Fixed dimensions of the AIM grid runs. These are the same between
// all sets of model runs and are not expected to change.
const (
	FirstYear = 2005
	LastYear  = 2100
	YearCount = LastYear - FirstYear + 1

	// CountryCount is the number of countries in the AIM output,
	// ordered alphabetically by 2-letter ISO code.
	CountryCount = 140

	// OilPricePointCount and CarbonPricePointCount are the numbers of
	// grid points in the oil price and carbon price dimensions.
	OilPricePointCount    = 9
	CarbonPricePointCount = 5
)

// Model holds the data needed to answer interpolation queries: the AIM
// output grid, the country-to-region lookup, and (optionally) a table
// of forecast prices. It is immutable after creation, so a single Model
// may be shared among concurrently running queries without locking.
type Model struct {
	grid   *Grid
	lookup *CountryRegions
	prices *PriceTable // may be nil; see Prices.

	// CacheSize specifies the number of query results to be held in the
	// memory cache used by Query. The default is 100. CacheSize can only
	// be changed before Query is called for the first time.
	CacheSize int

	queryCache *requestcache.Cache
	queryInit  sync.Once
}

// NewModel creates a Model from a loaded grid and country lookup.
// prices may be nil if the caller supplies prices directly to
// Interpolate or Query. The lookup must have exactly one region code per
// grid country; a mismatch means the two inputs came from different
// model run sets and is rejected rather than silently misaligning the
// country axis.
func NewModel(grid *Grid, lookup *CountryRegions, prices *PriceTable) (*Model, error) {
	if grid == nil {
		return nil, fmt.Errorf("aviagrid: model requires a grid")
	}
	if lookup == nil {
		return nil, fmt.Errorf("aviagrid: model requires a country-region lookup")
	}
	if lookup.Len() != grid.Countries() {
		return nil, fmt.Errorf("aviagrid: country-region lookup has %d entries but the grid has %d countries",
			lookup.Len(), grid.Countries())
	}
	return &Model{
		grid:      grid,
		lookup:    lookup,
		prices:    prices,
		CacheSize: 100,
	}, nil
}

// Grid returns the AIM output grid the model interpolates over.
func (m *Model) Grid() *Grid { return m.grid }

// Regions returns the country-to-region lookup used for aggregation.
func (m *Model) Regions() *CountryRegions { return m.lookup }

// Prices returns the forecast price table, or nil if the model was
// created without one.
func (m *Model) Prices() *PriceTable { return m.prices }

type queryRequest struct {
	year             int
	region           string
	kerosene, carbon float64
}

// Query is equivalent to Interpolate but caches results, speeding up
// repeated requests for the same (year, region, price) combination when
// the model is coupled to an iterating external solver. It is
// concurrency-safe. The cache size is controlled by the CacheSize
// attribute of the receiver.
func (m *Model) Query(ctx context.Context, year int, region string, kerosenePrice, carbonPrice float64) (*Outcome, error) {
	m.queryInit.Do(func() {
		m.queryCache = requestcache.NewCache(func(ctx context.Context, request interface{}) (interface{}, error) {
			q := request.(queryRequest)
			return m.Interpolate(q.year, q.region, q.kerosene, q.carbon)
		}, runtime.GOMAXPROCS(-1),
			requestcache.Deduplicate(), requestcache.Memory(m.CacheSize))
	})
	req := m.queryCache.NewRequest(ctx,
		queryRequest{year: year, region: region, kerosene: kerosenePrice, carbon: carbonPrice},
		fmt.Sprintf("%d_%s_%g_%g", year, region, kerosenePrice, carbonPrice),
	)
	result, err := req.Result()
	if err != nil {
		return nil, err
	}
	return result.(*Outcome), nil
}
