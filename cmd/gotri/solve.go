package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gotri/internal/report"
)

var (
	solveRatios   bool
	solveVertices bool
	solveName     string
	solveFields   *measurementFlags
)

var solveCmd = &cobra.Command{
	Use:   "solve [field=value...]",
	Short: "Solve one triangle from the given measurements",
	Long: `Solve one triangle. Measurements are given as flags (--AB 3) or as
field=value arguments (AB=3). Empty and zero values mean unknown.`,
	Example: `  gotri solve AB=3 AC=4 BC=5
  gotri solve --AB 5 --BC 5 --angleB 60 --ratios
  gotri solve angleA=40 angleB=60 area=12.5 -f json`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().BoolVarP(&solveRatios, "ratios", "r", false, "Show sin, cos, tan and cot of each angle")
	solveCmd.Flags().BoolVar(&solveVertices, "vertices", false, "Show vertex coordinates with A at the origin and B on the x axis")
	solveCmd.Flags().StringVar(&solveName, "name", "triangle", "Name shown in the report and history")
	solveFields = addMeasurementFlags(solveCmd.Flags())
}

func runSolve(cmd *cobra.Command, args []string) error {
	in, err := solveFields.parse(args)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.solve(cmd.Context(), solveName, in)
	if err != nil {
		return fmt.Errorf("recording history: %w", err)
	}

	opts := reportOptions()
	opts.Ratios = solveRatios
	opts.Vertices = solveVertices
	if err := report.Write(cmd.OutOrStdout(), []report.Result{res}, opts); err != nil {
		return err
	}
	return res.Err
}
