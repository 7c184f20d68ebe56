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
	"path/filepath"
	"testing"

	"github.com/atslab/aviagrid"
)

func TestRunConfigDefaults(t *testing.T) {
	cfg, err := runConfig(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("aviation_grid_data", "grid_output_by_country_SSP2_t2.csv"); cfg.GridFile != want {
		t.Errorf("GridFile: got %q, want %q", cfg.GridFile, want)
	}
	if want := filepath.Join("aviation_grid_data", "country_region_lookup.csv"); cfg.CountryLookupFile != want {
		t.Errorf("CountryLookupFile: got %q, want %q", cfg.CountryLookupFile, want)
	}
	if want := filepath.Join("aviation_grid_data", "Prices_KerCO2.csv"); cfg.PriceFile != want {
		t.Errorf("PriceFile: got %q, want %q", cfg.PriceFile, want)
	}
	if want := "output_byregion_SSP2_t2.csv"; cfg.OutputFile != want {
		t.Errorf("OutputFile: got %q, want %q", cfg.OutputFile, want)
	}
	if cfg.Mode != aviagrid.RunModeBasic {
		t.Errorf("Mode: got %v, want basic", cfg.Mode)
	}
	if cfg.BeginYear != aviagrid.FirstYear || cfg.EndYear != aviagrid.LastYear {
		t.Errorf("years: got %d–%d, want %d–%d",
			cfg.BeginYear, cfg.EndYear, aviagrid.FirstYear, aviagrid.LastYear)
	}
	if len(cfg.Regions) != 16 {
		t.Errorf("Regions: got %d codes, want 16", len(cfg.Regions))
	}
}

func TestRunConfigScenarioSelectors(t *testing.T) {
	Cfg.Set("SocScenario", "SSP1")
	Cfg.Set("TechScenario", "t1")
	defer func() {
		Cfg.Set("SocScenario", "SSP2")
		Cfg.Set("TechScenario", "t2")
	}()
	cfg, err := runConfig(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("aviation_grid_data", "grid_output_by_country_SSP1_t1.csv"); cfg.GridFile != want {
		t.Errorf("GridFile: got %q, want %q", cfg.GridFile, want)
	}
	if want := "output_byregion_SSP1_t1.csv"; cfg.OutputFile != want {
		t.Errorf("OutputFile: got %q, want %q", cfg.OutputFile, want)
	}
}

func TestRunConfigSyntheticPrices(t *testing.T) {
	Cfg.Set("PriceFile", "none")
	defer Cfg.Set("PriceFile", "")
	cfg, err := runConfig(Cfg)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.PriceFile != "" {
		t.Errorf("PriceFile: got %q, want empty for synthetic trends", cfg.PriceFile)
	}
	if cfg.ScenarioKeroseneRate != 1.0 || cfg.ScenarioCarbonBase != 40.0 || cfg.ScenarioCarbonRate != 1.03 {
		t.Errorf("unexpected synthetic trend defaults: %+v", cfg)
	}
}

func TestRunConfigBadYears(t *testing.T) {
	Cfg.Set("BeginYear", 2050)
	Cfg.Set("EndYear", 2030)
	defer func() {
		Cfg.Set("BeginYear", aviagrid.FirstYear)
		Cfg.Set("EndYear", aviagrid.LastYear)
	}()
	if _, err := runConfig(Cfg); err == nil {
		t.Fatal("expected an error for an inverted year range")
	}
}
