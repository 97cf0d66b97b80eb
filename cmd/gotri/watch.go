package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/philipparndt/gotri/pkg/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch <requests.yaml>...",
	Short: "Re-solve request files whenever they change",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVarP(&batchRatios, "ratios", "r", false, "Show sin, cos, tan and cot of each angle")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	out := cmd.OutOrStdout()
	run := func(path string) {
		fmt.Fprintf(out, "==> %s\n", path)
		if _, err := solveFile(ctx, s, path, out); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}

	for _, path := range args {
		run(path)
	}

	fw, err := watcher.NewFileWatcher(cfg.Watch.Debounce)
	if err != nil {
		return err
	}
	defer fw.Close()

	fw.OnError = func(err error) {
		logger.Printf("watcher error: %v", err)
	}

	// Solves run one at a time; debounce timers fire on their own goroutines
	changes := make(chan string)
	if err := fw.Watch(args, func(path string) {
		logger.Printf("changed: %s", path)
		select {
		case changes <- path:
		case <-ctx.Done():
		}
	}); err != nil {
		return err
	}
	fw.Start(ctx)

	logger.Printf("watching %d file(s), press Ctrl+C to stop", len(args))
	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-changes:
			run(path)
		}
	}
}
