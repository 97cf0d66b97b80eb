package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gotri/internal/report"
)

var ratiosCmd = &cobra.Command{
	Use:     "ratios <degrees>...",
	Short:   "Print sin, cos, tan and cot of angles given in degrees",
	Example: `  gotri ratios 30 45 90`,
	Args:    cobra.MinimumNArgs(1),
	RunE:    runRatios,
}

func init() {
	rootCmd.AddCommand(ratiosCmd)
}

func runRatios(cmd *cobra.Command, args []string) error {
	angles := make([]float64, 0, len(args))
	for _, arg := range args {
		deg, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid angle %q", arg)
		}
		angles = append(angles, deg)
	}
	return report.WriteRatios(cmd.OutOrStdout(), angles, reportOptions())
}
