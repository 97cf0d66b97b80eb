package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gotri/internal/report"
	"github.com/philipparndt/gotri/pkg/analysis"
	"github.com/philipparndt/gotri/pkg/stl"
	"github.com/philipparndt/gotri/pkg/triangle"
)

var (
	facetIndex    int
	facetCount    int
	facetRatios   bool
	facetLargest  bool
	facetSmallest bool
)

var facetCmd = &cobra.Command{
	Use:   "facet <file.stl>",
	Short: "Solve triangles taken from the facets of an STL file",
	Long: `Read an ASCII or binary STL file and solve each facet from its three
edge lengths (V1V2 = AB, V1V3 = AC, V2V3 = BC).`,
	Args: cobra.ExactArgs(1),
	RunE: runFacet,
}

func init() {
	rootCmd.AddCommand(facetCmd)

	facetCmd.Flags().IntVarP(&facetIndex, "index", "i", -1, "Solve only the facet at this index")
	facetCmd.Flags().IntVarP(&facetCount, "count", "n", 10, "Number of facets to solve when no index is given (0 for all)")
	facetCmd.Flags().BoolVarP(&facetRatios, "ratios", "r", false, "Show sin, cos, tan and cot of each angle")
	facetCmd.Flags().BoolVarP(&facetLargest, "largest", "l", false, "Solve the facets with the largest area first")
	facetCmd.Flags().BoolVarP(&facetSmallest, "smallest", "s", false, "Solve the facets with the smallest area first")
	facetCmd.MarkFlagsMutuallyExclusive("largest", "smallest", "index")
}

func runFacet(cmd *cobra.Command, args []string) error {
	model, err := stl.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing STL file: %w", err)
	}
	facets := analysis.Facets(model)
	summary := analysis.Summarize(facets)
	logger.Printf("%s: %d facets (%d degenerate), surface area %g, edges %g..%g",
		args[0], summary.TriangleCount, summary.Degenerate, summary.SurfaceArea,
		summary.MinEdgeLength, summary.MaxEdgeLength)

	selected, err := selectFacets(facets)
	if err != nil {
		return err
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	results := make([]report.Result, 0, len(selected))
	for _, f := range selected {
		in := triangle.MeasurementSet{AB: f.Edges[0], AC: f.Edges[1], BC: f.Edges[2]}

		res, err := s.solve(cmd.Context(), fmt.Sprintf("facet #%d", f.Index), in)
		if err != nil {
			return fmt.Errorf("recording history: %w", err)
		}
		results = append(results, res)
	}

	opts := reportOptions()
	opts.Ratios = facetRatios
	if err := report.Write(cmd.OutOrStdout(), results, opts); err != nil {
		return err
	}
	if anyFailed(results) {
		return errSomeFailed
	}
	return nil
}

func selectFacets(facets []analysis.FacetInfo) ([]analysis.FacetInfo, error) {
	if facetIndex >= 0 {
		if facetIndex >= len(facets) {
			return nil, fmt.Errorf("facet %d out of range (model has %d)", facetIndex, len(facets))
		}
		return facets[facetIndex : facetIndex+1], nil
	}

	switch {
	case facetLargest:
		return analysis.Largest(facets, facetCount), nil
	case facetSmallest:
		return analysis.Smallest(facets, facetCount), nil
	}

	if facetCount > 0 && facetCount < len(facets) {
		return facets[:facetCount], nil
	}
	return facets, nil
}
