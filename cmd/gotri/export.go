package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/stl"
)

var (
	exportOutput string
	exportName   string
	exportFields *measurementFlags
)

var exportCmd = &cobra.Command{
	Use:   "export [field=value...]",
	Short: "Solve a triangle and write it as an ASCII STL facet",
	Long: `Solve a triangle and write it as a single ASCII STL facet lying in the
XY plane with A at the origin and B on the positive X axis.`,
	Example: `  gotri export AB=3 AC=4 BC=5 -o right.stl`,
	RunE:    runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportName, "name", "triangle", "Solid name written to the STL file")
	exportFields = addMeasurementFlags(exportCmd.Flags())
}

func runExport(cmd *cobra.Command, args []string) error {
	in, err := exportFields.parse(args)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	res, err := s.solve(cmd.Context(), exportName, in)
	if err != nil {
		return fmt.Errorf("recording history: %w", err)
	}
	if res.Err != nil {
		return res.Err
	}

	set := res.Solution.Set
	placed, err := geometry.PlaceSides(set.AB, set.AC, set.BC)
	if err != nil {
		return fmt.Errorf("placing triangle: %w", err)
	}

	model := stl.NewModel(exportName)
	model.AddTriangle(placed)

	if exportOutput == "" {
		return stl.Write(cmd.OutOrStdout(), model)
	}
	if err := stl.WriteFile(exportOutput, model); err != nil {
		return err
	}
	logger.Printf("wrote %s", exportOutput)
	return nil
}
