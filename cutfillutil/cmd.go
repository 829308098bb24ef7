/*
Copyright © 2026 the cutfill authors.
This file is part of cutfill.

cutfill is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

cutfill is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with cutfill.  If not, see <http://www.gnu.org/licenses/>.
*/

package cutfillutil

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/cutfill"
	"github.com/spf13/cast"
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
	// Options are the configuration options available to cutfill.
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
			name: "verbose",
			usage: `
              verbose enables debug logging.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "close",
			usage: `
              close specifies whether the open ends of the two sections
              should be closed with vertical lines at the ends of the
              distance range the sections share, so that the area beyond
              their first and last crossings is included.`,
			defaultVal: true,
			flagsets:   []*pflag.FlagSet{diffCmd.Flags(), batchCmd.Flags()},
		},
		{
			name: "reverse-t0",
			usage: `
              reverse-t0 reverses the initial (time t0) section, for
              sections surveyed right to left.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{diffCmd.Flags()},
		},
		{
			name: "reverse-t1",
			usage: `
              reverse-t1 reverses the final (time t1) section, for
              sections surveyed right to left.`,
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{diffCmd.Flags()},
		},
		{
			name: "adjust-t0",
			usage: `
              adjust-t0 is added to every elevation of the initial
              (time t0) section.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{diffCmd.Flags()},
		},
		{
			name: "adjust-t1",
			usage: `
              adjust-t1 is added to every elevation of the final
              (time t1) section.`,
			defaultVal: 0.0,
			flagsets:   []*pflag.FlagSet{diffCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output specifies a file to write the results to. The format
              is chosen by the file extension: ".csv" writes one row per
              interval with the columns x0, x1 and area; ".xlsx" writes a
              workbook of intervals, polygons and totals; ".shp" writes the
              polygons as a shapefile. If empty, only the summary is printed.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{diffCmd.Flags()},
		},
		{
			name: "jobs",
			usage: `
              jobs specifies the location of a TOML file listing the
              sections to compare, one [[Section]] table per section.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{batchCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("CUTFILL")
	Cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	Cfg.AutomaticEnv()

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
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
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
	Root.AddCommand(diffCmd)
	Root.AddCommand(batchCmd)
}

// setConfig finds and reads in the configuration file, if there is one,
// and sets up logging.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("cutfill: problem reading configuration file: %v", err)
		}
	}
	verbose, err := cast.ToBoolE(Cfg.Get("verbose"))
	if err != nil {
		return fmt.Errorf("cutfill: reading 'verbose': %v", err)
	}
	configureLogger(logrus.StandardLogger(), verbose)
	return nil
}

// configureLogger sets the format of log messages, and the debug level
// if verbose is true.
func configureLogger(l *logrus.Logger, verbose bool) {
	l.Formatter = &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		DisableSorting:  true,
	}
	l.Level = logrus.InfoLevel
	if verbose {
		l.Level = logrus.DebugLevel
	}
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "cutfill",
	Short: "Cut and fill between repeat cross-section surveys.",
	Long: `cutfill calculates the material gained (fill) and lost (cut) between two
surveys of the same cross section. Each survey is read as a CSV file of
distance along the section and elevation.

Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'CUTFILL_var' where 'var' is
the name of the variable to be set, with dashes replaced by underscores.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	SilenceUsage:      true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of cutfill.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("cutfill v%s\n", cutfill.Version)
	},
	DisableAutoGenTag: true,
}

// diffCmd compares two surveys of one section.
var diffCmd = &cobra.Command{
	Use:   "diff FILE_T0 FILE_T1",
	Short: "Calculate the cut and fill between two surveys.",
	Long: `diff calculates the cut and fill between the initial survey of a section
in FILE_T0 and the final survey in FILE_T1, prints the totals, and
optionally writes the results to the file given by --output.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		job := Job{
			T0:        args[0],
			T1:        args[1],
			ReverseT0: Cfg.GetBool("reverse-t0"),
			ReverseT1: Cfg.GetBool("reverse-t1"),
			AdjustT0:  Cfg.GetFloat64("adjust-t0"),
			AdjustT1:  Cfg.GetFloat64("adjust-t1"),
			Output:    os.ExpandEnv(Cfg.GetString("output")),
		}
		closeEnds := Cfg.GetBool("close")
		job.Close = &closeEnds
		_, err := Diff(cmd.OutOrStdout(), logrus.StandardLogger(), job)
		return err
	},
	DisableAutoGenTag: true,
}

// batchCmd compares the surveys of every section in a job file.
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Calculate the cut and fill for a list of sections.",
	Long: `batch calculates the cut and fill for every section listed in the TOML
file given by --jobs. Each section is given as a [[Section]] table:

	[[Section]]
	Name = "XS-7"
	T0 = "xs7_2004.csv"
	T1 = "xs7_2010.csv"
	ReverseT0 = true
	Output = "xs7.csv"

Relative file paths are relative to the job file. The --close option is
used for sections that do not set Close.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jobsFile := os.ExpandEnv(Cfg.GetString("jobs"))
		if jobsFile == "" {
			return fmt.Errorf("cutfill: the 'jobs' option is required")
		}
		jobs, err := LoadJobs(jobsFile)
		if err != nil {
			return err
		}
		return Batch(cmd.OutOrStdout(), logrus.StandardLogger(), jobs, Cfg.GetBool("close"))
	},
	DisableAutoGenTag: true,
}
