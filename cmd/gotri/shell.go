package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/philipparndt/gotri/internal/input"
	"github.com/philipparndt/gotri/internal/report"
	"github.com/philipparndt/gotri/pkg/triangle"
)

const shellPrompt = "gotri> "

const shellHelp = `Enter measurements as field=value pairs, e.g.

  AB=3 AC=4 BC=5
  angleA=40 angleB=60 area=12.5

Commands:
  :rules     list the rules in priority order
  :fields    list the field names
  :ratios    toggle the sin/cos/tan/cot table
  :vertices  toggle vertex coordinates
  :help      show this help
  exit       leave the shell (or Ctrl+D)
`

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Solve triangles interactively",
	Args:  cobra.NoArgs,
	RunE:  runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

// completionWords are the field names offered on Tab
func completionWords() []string {
	words := []string{":rules", ":fields", ":ratios", ":vertices", ":help", "exit"}
	for _, f := range triangle.InputFields() {
		words = append(words, f.String()+"=")
	}
	return words
}

func runShell(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	words := completionWords()
	line.SetCompleter(func(text string) []string {
		return completeLast(text, words)
	})

	historyFile := filepath.Join(os.TempDir(), ".gotri_history")
	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(historyFile); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}()

	out := cmd.OutOrStdout()
	opts := reportOptions()
	count := 0

	fmt.Fprintln(out, "Type ':help' for commands, 'exit' or Ctrl+D to quit")

	for {
		text, err := line.Prompt(shellPrompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(out, "^C")
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return err
		}

		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}
		line.AppendHistory(trimmed)

		switch trimmed {
		case "exit", "quit":
			return nil
		case ":help":
			fmt.Fprint(out, shellHelp)
			continue
		case ":rules":
			for i, r := range triangle.Rules() {
				fmt.Fprintf(out, "%2d  %s\n", i+1, r)
			}
			continue
		case ":fields":
			for _, f := range triangle.InputFields() {
				fmt.Fprintf(out, "  %-10s %s\n", f, describe(f))
			}
			continue
		case ":ratios":
			opts.Ratios = !opts.Ratios
			fmt.Fprintf(out, "ratios %s\n", onOff(opts.Ratios))
			continue
		case ":vertices":
			opts.Vertices = !opts.Vertices
			fmt.Fprintf(out, "vertices %s\n", onOff(opts.Vertices))
			continue
		}

		raw, err := input.ParseArgs(strings.Fields(trimmed))
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		in, err := input.Parse(raw)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		count++
		res, err := s.solve(cmd.Context(), fmt.Sprintf("shell #%d", count), in)
		if err != nil {
			fmt.Fprintf(out, "Error: recording history: %v\n", err)
		}
		if err := report.Write(out, []report.Result{res}, opts); err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}

// completeLast completes the word under the cursor, keeping the ones
// before it
func completeLast(text string, words []string) []string {
	start := strings.LastIndexAny(text, " \t") + 1
	prefix, partial := text[:start], strings.ToLower(text[start:])

	var matches []string
	for _, w := range words {
		if strings.HasPrefix(strings.ToLower(w), partial) {
			matches = append(matches, prefix+w)
		}
	}
	sort.Strings(matches)
	return matches
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
