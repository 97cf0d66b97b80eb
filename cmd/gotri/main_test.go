package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gotri/internal/input"
	"github.com/philipparndt/gotri/pkg/stl"
	"github.com/philipparndt/gotri/pkg/triangle"
)

// execute runs the root command in an isolated environment. Positional
// field=value arguments are used throughout because flag values persist on
// the package-level commands between runs.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("GOTRI_CONFIG", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestMeasurementFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	mf := addMeasurementFlags(fs)
	require.NoError(t, fs.Parse([]string{"--AB", "3", "--angleB=60", "--BC", "9"}))

	m, err := mf.parse([]string{"BC=5"})
	require.NoError(t, err)
	assert.Equal(t, triangle.MeasurementSet{AB: 3, BC: 5, AngleB: 60}, m)

	require.NoError(t, fs.Parse([]string{"--area", "x"}))
	_, err = mf.parse(nil)
	var perr *input.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, triangle.FieldArea, perr.Field)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "side AB", describe(triangle.FieldAB))
	assert.Equal(t, "angle at B in degrees", describe(triangle.FieldAngleB))
	assert.Equal(t, "median from C", describe(triangle.FieldMedianCM))
	assert.Equal(t, "altitude from A", describe(triangle.FieldHeightA))
}

func TestCompleteLast(t *testing.T) {
	words := completionWords()
	assert.Equal(t, []string{"AB=3 angleA=", "AB=3 angleB=", "AB=3 angleC="}, completeLast("AB=3 ang", words))
	assert.Contains(t, completeLast(":r", words), ":rules")
	assert.Empty(t, completeLast("zz", words))
}

func TestSolveCommandJSON(t *testing.T) {
	out, err := execute(t, "solve", "AB=3", "AC=4", "BC=5", "-f", "json")
	require.NoError(t, err)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "SSS", docs[0]["rule"])
	assert.InDelta(t, 2.5, docs[0]["measurements"].(map[string]any)["circumRadius"], 1e-9)
}

func TestSolveCommandParseError(t *testing.T) {
	_, err := execute(t, "solve", "AB=abc", "AC=4", "-f", "text")
	require.Error(t, err)
	assert.Equal(t, "please enter a number for AB", err.Error())
}

func TestSolveCommandInsufficient(t *testing.T) {
	out, err := execute(t, "solve", "AB=3", "-f", "text")
	assert.ErrorIs(t, err, triangle.ErrNoRuleMatched)
	assert.Contains(t, out, "error")
}

func TestBatchCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
triangles:
  - {name: equilateral, AB: 5, BC: 5, angleB: 60}
  - {name: lonely, AB: 3}
`), 0o644))

	out, err := execute(t, "batch", path, "-f", "text")
	assert.ErrorIs(t, err, errSomeFailed)
	assert.Contains(t, out, "equilateral (rule SAS(B))")
	assert.Contains(t, out, "lonely: error")
}

func TestRulesCommand(t *testing.T) {
	out, err := execute(t, "rules", "AB=3", "AC=4", "BC=5")
	require.NoError(t, err)
	assert.Contains(t, out, "SSS")
	assert.Contains(t, out, "<-")
	assert.NotContains(t, out, "SAS(B)")
}

func TestRatiosCommand(t *testing.T) {
	out, err := execute(t, "ratios", "30", "-f", "text", "-p", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "0.50")

	_, err = execute(t, "ratios", "thirty")
	assert.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.stl")
	_, err := execute(t, "export", "AB=5", "BC=5", "angleB=60", "-o", path)
	require.NoError(t, err)

	model, err := stl.Parse(path)
	require.NoError(t, err)
	require.Equal(t, 1, model.TriangleCount())
	for _, l := range model.Triangles[0].EdgeLengths() {
		assert.InDelta(t, 5.0, l, 1e-9)
	}
}

func TestFacetCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.stl")
	_, err := execute(t, "export", "AB=3", "AC=4", "BC=5", "-o", path)
	require.NoError(t, err)

	out, err := execute(t, "facet", path, "-f", "json")
	require.NoError(t, err)

	var docs []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "facet #0", docs[0]["name"])
	assert.InDelta(t, 6.0, docs[0]["measurements"].(map[string]any)["area"], 1e-9)
}

// Runs last: --history stays set on the root command afterwards
func TestHistoryCommands(t *testing.T) {
	home := t.TempDir()
	dbPath := filepath.Join(home, "history.db")
	cfgPath := filepath.Join(home, "gotri.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("history:\n  path: "+dbPath+"\n"), 0o644))

	_, err := execute(t, "--config", cfgPath, "--history", "solve", "AB=3", "AC=4", "BC=5", "--name", "right", "-f", "text")
	require.NoError(t, err)

	out, err := execute(t, "--config", cfgPath, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "right")
	assert.Contains(t, out, "SSS")

	out, err = execute(t, "--config", cfgPath, "history", "clear")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted 1 entries")
}
