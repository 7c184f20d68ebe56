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

package aviagridutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/atslab/aviagrid"
	"github.com/sirupsen/logrus"
)

// Run loads the model data named by the configuration, interpolates
// every configured (year, region) pair, and writes the CSV report.
func Run(cfg *RunConfig) error {
	start := time.Now()
	m, err := loadModel(cfg)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"grid":     cfg.GridFile,
		"duration": time.Since(start),
	}).Info("loaded grid data")

	start = time.Now()
	rows, err := report(m, cfg)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"years":    fmt.Sprintf("%d–%d", cfg.BeginYear, cfg.EndYear),
		"regions":  len(cfg.Regions),
		"duration": time.Since(start),
	}).Info("interpolated outcomes")

	f, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("aviagrid: creating output file: %v", err)
	}
	defer f.Close()
	if err := writeReport(f, m.Grid().Mode(), rows); err != nil {
		return err
	}
	logrus.WithField("file", cfg.OutputFile).Info("wrote report")
	return nil
}

// loadModel reads the grid, country lookup and (optionally) price
// forecast named by the configuration and assembles them into a Model.
// Loading is all or nothing; no queries are served from a partial load.
func loadModel(cfg *RunConfig) (*aviagrid.Model, error) {
	gf, err := os.Open(cfg.GridFile)
	if err != nil {
		return nil, fmt.Errorf("aviagrid: opening grid file: %v", err)
	}
	defer gf.Close()
	grid, err := aviagrid.ReadGrid(gf, cfg.Mode)
	if err != nil {
		return nil, err
	}

	lf, err := os.Open(cfg.CountryLookupFile)
	if err != nil {
		return nil, fmt.Errorf("aviagrid: opening country lookup file: %v", err)
	}
	defer lf.Close()
	lookup, err := aviagrid.ReadCountryRegions(lf)
	if err != nil {
		return nil, err
	}

	var prices *aviagrid.PriceTable
	if cfg.PriceFile != "" {
		pf, err := os.Open(cfg.PriceFile)
		if err != nil {
			return nil, fmt.Errorf("aviagrid: opening price file: %v", err)
		}
		defer pf.Close()
		if prices, err = aviagrid.ReadPrices(pf); err != nil {
			return nil, err
		}
	} else {
		logrus.WithFields(logrus.Fields{
			"keroseneRate": cfg.ScenarioKeroseneRate,
			"carbonBase":   cfg.ScenarioCarbonBase,
			"carbonRate":   cfg.ScenarioCarbonRate,
		}).Info("no price file; using synthetic price trends")
	}

	return aviagrid.NewModel(grid, lookup, prices)
}

// prices returns the kerosene and carbon price to query for a year,
// from the forecast table if the model has one and from the synthetic
// trends otherwise.
func prices(m *aviagrid.Model, cfg *RunConfig, year int) (kerosene, carbon float64) {
	if t := m.Prices(); t != nil {
		return t.Kerosene(year), t.Carbon(year)
	}
	return aviagrid.KerosenePriceTrend(year, cfg.ScenarioKeroseneRate),
		aviagrid.CarbonPriceTrend(year, cfg.ScenarioCarbonBase, cfg.ScenarioCarbonRate)
}

// report interpolates every configured (year, region) pair and formats
// the result rows.
func report(m *aviagrid.Model, cfg *RunConfig) ([][]string, error) {
	mode := m.Grid().Mode()
	rows := make([][]string, 0, (cfg.EndYear-cfg.BeginYear+1)*len(cfg.Regions))
	for year := cfg.BeginYear; year <= cfg.EndYear; year++ {
		kerosene, carbon := prices(m, cfg, year)
		for _, region := range cfg.Regions {
			o, err := m.Interpolate(year, region, kerosene, carbon)
			if err != nil {
				return nil, err
			}
			rows = append(rows, reportRow(year, region, kerosene, carbon, o.Vector(mode)))
		}
	}
	return rows, nil
}

// reportHeader returns the report column headers for a run mode.
func reportHeader(mode aviagrid.RunMode) []string {
	h := []string{
		"Year",
		"Region",
		"KerosenePrice_Assumed_Year2005USDPerkg",
		"CarbonPrice_Assumed_Year2005USDPerkg",
		"EffectiveKerosenePrice_WithCarbon_Year2005USDPerkg",
	}
	return append(h, aviagrid.VarNames(mode)...)
}

// reportRow formats one (year, region) result. The effective kerosene
// price column folds the carbon cost into the fuel price for reference;
// it is not itself a model input, as the model takes fuel and carbon
// price separately.
func reportRow(year int, region string, kerosene, carbon float64, vars []float64) []string {
	row := []string{
		strconv.Itoa(year),
		region,
		formatValue(kerosene),
		formatValue(carbon),
		formatValue(kerosene + aviagrid.CarbonPricePerKgFuel(carbon)),
	}
	for _, v := range vars {
		row = append(row, formatValue(v))
	}
	return row
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// writeReport writes the header and result rows as CSV.
func writeReport(w io.Writer, mode aviagrid.RunMode, rows [][]string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(reportHeader(mode)); err != nil {
		return fmt.Errorf("aviagrid: writing report: %v", err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("aviagrid: writing report: %v", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("aviagrid: writing report: %v", err)
	}
	return nil
}
