package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gotri/internal/config"
	"github.com/philipparndt/gotri/version"
)

var (
	configPath    string
	verbose       bool
	formatFlag    string
	precisionFlag int
	localeFlag    string
	lenientFlag   bool
	historyFlag   bool

	cfg    = config.Defaults()
	logger = log.New(io.Discard, "gotri: ", log.LstdFlags)
)

var rootCmd = &cobra.Command{
	Use:   "gotri",
	Short: "Solve a triangle from any sufficient set of measurements",
	Long: `gotri completes a triangle from a partial set of measurements: sides,
angles, medians, angle bisectors, altitudes and area. The first rule whose
inputs are all known derives the sides; every other measurement, the
inradius and the circumradius follow from them.`,
	Version:           version.GetFullVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default: $GOTRI_CONFIG, ./gotri.yaml, ~/.config/gotri/gotri.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log rule selection and file events to stderr")
	flags.StringVarP(&formatFlag, "format", "f", "", "Output format: text, json or yaml")
	flags.IntVarP(&precisionFlag, "precision", "p", 0, "Fraction digits in text output")
	flags.StringVar(&localeFlag, "locale", "", "Locale for number formatting, e.g. de-CH")
	flags.BoolVar(&lenientFlag, "lenient", false, "Propagate NaN instead of reporting infeasible triangles")
	flags.BoolVar(&historyFlag, "history", false, "Record solves in the history database")
}

// loadConfig reads the config file and lets explicitly set flags win
func loadConfig(cmd *cobra.Command, args []string) error {
	if verbose {
		logger.SetOutput(os.Stderr)
	}

	loaded, path, err := config.LoadWithPath(configPath, os.Getenv)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Printf("using config %s", path)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		loaded.Output.Format = formatFlag
	}
	if flags.Changed("precision") {
		loaded.Output.Precision = precisionFlag
	}
	if flags.Changed("locale") {
		loaded.Output.Locale = localeFlag
	}
	if flags.Changed("lenient") {
		loaded.Solver.Lenient = lenientFlag
	}
	if flags.Changed("history") {
		loaded.History.Enabled = historyFlag
	}

	if err := config.Validate(loaded); err != nil {
		return err
	}
	cfg = loaded
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
