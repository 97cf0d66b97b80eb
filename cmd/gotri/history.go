package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gotri/internal/history"
	"github.com/philipparndt/gotri/internal/report"
	"github.com/philipparndt/gotri/pkg/triangle"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded solves",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the measurements of a recorded solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all recorded solves",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of entries to list (0 for all)")
}

// openHistory opens the store even when recording is disabled so past
// entries stay readable
func openHistory() (*history.Store, error) {
	return history.NewStore(cfg.History.Path)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tWHEN\tNAME\tRULE\tINPUT\t")
	for _, e := range entries {
		outcome := e.Rule
		if e.Error != "" {
			outcome = "error"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			e.ID, e.CreatedAt.Local().Format(time.DateTime), e.Name, outcome, knownSummary(e.Input))
	}
	return tw.Flush()
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	e, err := store.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	res := report.Result{Name: e.Name, Input: e.Input}
	if e.Error != "" {
		res.Err = errors.New(e.Error)
	} else {
		res.Solution = &triangle.Solution{Set: e.Output, Rule: e.Rule}
	}
	return report.Write(cmd.OutOrStdout(), []report.Result{res}, reportOptions())
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	store, err := openHistory()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Clear(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries\n", n)
	return nil
}

func knownSummary(m triangle.MeasurementSet) string {
	parts := make([]string, 0, 3)
	for _, f := range m.KnownFields() {
		parts = append(parts, fmt.Sprintf("%s=%g", f, m.Get(f)))
	}
	return strings.Join(parts, " ")
}
