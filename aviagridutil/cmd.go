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

	"github.com/atslab/aviagrid"
	"github.com/lnashier/viper"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to AviaGrid.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "DataDir",
			usage: `
              DataDir is the directory holding the processed AIM grid
              outputs and lookup tables in CSV format.`,
			defaultVal: "aviation_grid_data",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "SocScenario",
			usage: `
              SocScenario selects the socioeconomic scenario the grid
              data was generated for.`,
			defaultVal: "SSP2",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "TechScenario",
			usage: `
              TechScenario selects the aircraft technology scenario the
              grid data was generated for.`,
			defaultVal: "t2",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "GridFile",
			usage: `
              GridFile is the path to the grid of AIM outputs by country.
              If empty, it is derived from DataDir, SocScenario and
              TechScenario.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "CountryLookupFile",
			usage: `
              CountryLookupFile is the path to the lookup between grid
              country and world region. If empty, it is derived from
              DataDir.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "PriceFile",
			usage: `
              PriceFile is the path to the kerosene and carbon price
              forecast to run with. If set to the word 'none', synthetic
              price trends controlled by the Scenario options are used
              instead. If empty, it is derived from DataDir.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "FullOutputs",
			usage: `
              FullOutputs runs the model in full mode, reading and
              reporting flights, RPK, RTK, NOx and distance flown in
              addition to fuel use. Read-in and run times increase with
              the number of variables.`,
			shorthand:  "f",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile is the path of the CSV report to write. If
              empty, it is derived from SocScenario and TechScenario.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "BeginYear",
			usage: `
              BeginYear is the first year to report.`,
			defaultVal: aviagrid.FirstYear,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "EndYear",
			usage: `
              EndYear is the last year to report.`,
			defaultVal: aviagrid.LastYear,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Regions",
			usage: `
              Regions lists the region codes to report. The default is
              the full 16-region TIAM set.`,
			defaultVal: aviagrid.RegionCodes,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Scenario.KeroseneRate",
			usage: `
              Scenario.KeroseneRate is the yearly kerosene price growth
              rate after 2017 used when running with synthetic price
              trends.`,
			defaultVal: 1.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Scenario.CarbonBase",
			usage: `
              Scenario.CarbonBase is the 2020 carbon price in year-2005
              USD/tCO2 used when running with synthetic price trends.`,
			defaultVal: 40.0,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "Scenario.CarbonRate",
			usage: `
              Scenario.CarbonRate is the yearly carbon price growth rate
              after 2020 used when running with synthetic price trends.`,
			defaultVal: 1.03,
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("AVIAGRID")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			case float64:
				if option.shorthand == "" {
					set.Float64(option.name, option.defaultVal.(float64), option.usage)
				} else {
					set.Float64P(option.name, option.shorthand, option.defaultVal.(float64), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("aviagrid: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "aviagrid",
	Short: "A reduced-form aviation fuel and activity model.",
	Long: `AviaGrid estimates aviation fuel use and activity by world region and
year by interpolating across a grid of Aviation Integrated Model (AIM)
outputs indexed by oil price and carbon price.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'AVIAGRID_var' where 'var'
is the name of the variable to be set.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of AviaGrid.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("AviaGrid v%s\n", aviagrid.Version)
	},
	DisableAutoGenTag: true,
}

// runCmd interpolates a full set of years and regions and writes the
// report file.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the model and write a report by region and year.",
	Long: `run loads the AIM output grid, interpolates every configured region and
year at the forecast kerosene and carbon prices, and writes the results
to a CSV report file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := runConfig(Cfg)
		if err != nil {
			return err
		}
		return Run(cfg)
	},
	DisableAutoGenTag: true,
}
