package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gotri/internal/input"
	"github.com/philipparndt/gotri/internal/report"
)

var batchRatios bool

var batchCmd = &cobra.Command{
	Use:   "batch <requests.yaml>",
	Short: "Solve every triangle in a request file",
	Long: `Solve every triangle listed in a YAML request file:

  triangles:
    - name: right
      AB: 3
      AC: 4
      BC: 5
    - {angleA: 40, angleB: 60, area: 12.5}

Triangles that cannot be solved are reported and the command exits non-zero.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().BoolVarP(&batchRatios, "ratios", "r", false, "Show sin, cos, tan and cot of each angle")
}

func runBatch(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	results, err := solveFile(cmd.Context(), s, args[0], cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if anyFailed(results) {
		return errSomeFailed
	}
	return nil
}

// solveFile solves and prints every request in path
func solveFile(ctx context.Context, s *session, path string, out io.Writer) ([]report.Result, error) {
	reqs, err := input.LoadRequests(path)
	if err != nil {
		return nil, err
	}

	results := make([]report.Result, 0, len(reqs))
	for _, req := range reqs {
		res, err := s.solve(ctx, req.Name, req.Set)
		if err != nil {
			return nil, fmt.Errorf("recording history: %w", err)
		}
		results = append(results, res)
	}

	opts := reportOptions()
	opts.Ratios = batchRatios
	if err := report.Write(out, results, opts); err != nil {
		return nil, err
	}
	return results, nil
}
