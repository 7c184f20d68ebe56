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
	"fmt"
	"os"
	"path/filepath"

	"github.com/atslab/aviagrid"
	"github.com/lnashier/viper"
	"github.com/spf13/cast"
)

// RunConfig holds the resolved settings for one model run.
type RunConfig struct {
	GridFile          string
	CountryLookupFile string

	// PriceFile is the price forecast to run with. If empty, synthetic
	// price trends controlled by the Scenario fields are used.
	PriceFile string

	OutputFile string

	Mode aviagrid.RunMode

	BeginYear, EndYear int
	Regions            []string

	// Synthetic trend parameters, used only when PriceFile is empty.
	ScenarioKeroseneRate float64
	ScenarioCarbonBase   float64
	ScenarioCarbonRate   float64
}

// runConfig resolves the configuration surface into a RunConfig,
// deriving defaulted file names from the data directory and scenario
// selectors.
func runConfig(cfg *viper.Viper) (*RunConfig, error) {
	dataDir := os.ExpandEnv(cfg.GetString("DataDir"))
	soc := cfg.GetString("SocScenario")
	tech := cfg.GetString("TechScenario")

	c := &RunConfig{
		GridFile:          os.ExpandEnv(cfg.GetString("GridFile")),
		CountryLookupFile: os.ExpandEnv(cfg.GetString("CountryLookupFile")),
		PriceFile:         os.ExpandEnv(cfg.GetString("PriceFile")),
		OutputFile:        os.ExpandEnv(cfg.GetString("OutputFile")),

		BeginYear: cfg.GetInt("BeginYear"),
		EndYear:   cfg.GetInt("EndYear"),
		Regions:   cast.ToStringSlice(cfg.Get("Regions")),

		ScenarioKeroseneRate: cfg.GetFloat64("Scenario.KeroseneRate"),
		ScenarioCarbonBase:   cfg.GetFloat64("Scenario.CarbonBase"),
		ScenarioCarbonRate:   cfg.GetFloat64("Scenario.CarbonRate"),
	}
	if cfg.GetBool("FullOutputs") {
		c.Mode = aviagrid.RunModeFull
	}
	if c.GridFile == "" {
		c.GridFile = filepath.Join(dataDir, fmt.Sprintf("grid_output_by_country_%s_%s.csv", soc, tech))
	}
	if c.CountryLookupFile == "" {
		c.CountryLookupFile = filepath.Join(dataDir, "country_region_lookup.csv")
	}
	switch c.PriceFile {
	case "":
		c.PriceFile = filepath.Join(dataDir, "Prices_KerCO2.csv")
	case "none":
		c.PriceFile = ""
	}
	if c.OutputFile == "" {
		c.OutputFile = fmt.Sprintf("output_byregion_%s_%s.csv", soc, tech)
	}

	if c.BeginYear < aviagrid.FirstYear || c.EndYear > aviagrid.LastYear || c.BeginYear > c.EndYear {
		return nil, fmt.Errorf("aviagrid: report years %d–%d outside the modelled range %d–%d",
			c.BeginYear, c.EndYear, aviagrid.FirstYear, aviagrid.LastYear)
	}
	if len(c.Regions) == 0 {
		return nil, fmt.Errorf("aviagrid: no regions specified for the report")
	}
	if err := checkOutputFile(c.OutputFile); err != nil {
		return nil, err
	}
	return c, nil
}

// checkOutputFile makes sure the directory the report will be written
// to exists before the run spends time loading and interpolating.
func checkOutputFile(path string) error {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		return fmt.Errorf("aviagrid: the directory for the output file is missing: %v", err)
	}
	return nil
}
