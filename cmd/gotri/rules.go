package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gotri/pkg/triangle"
)

var rulesFields *measurementFlags

var rulesCmd = &cobra.Command{
	Use:   "rules [field=value...]",
	Short: "List the rules in priority order",
	Long: `List every rule in the order the solver tries them. With measurements
given, only the matching rules are listed and the first one, which the
solver would use, is marked.`,
	RunE: runRules,
}

func init() {
	rootCmd.AddCommand(rulesCmd)

	rulesFields = addMeasurementFlags(rulesCmd.Flags())
}

func runRules(cmd *cobra.Command, args []string) error {
	in, err := rulesFields.parse(args)
	if err != nil {
		return err
	}
	filter := len(in.KnownFields()) > 0

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tRULE\tCATEGORY\tNEEDS\t")

	chosen := false
	for i, r := range triangle.Rules() {
		marker := ""
		if filter {
			if !r.Matches(in) {
				continue
			}
			if !chosen {
				marker = " <-"
				chosen = true
			}
		}

		needs := make([]string, len(r.Given))
		for j, f := range r.Given {
			needs[j] = f.String()
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", i+1, r.Name, r.Category, strings.Join(needs, ", "), marker)
	}

	if err := tw.Flush(); err != nil {
		return err
	}
	if filter && !chosen {
		return triangle.ErrNoRuleMatched
	}
	return nil
}
