package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/gotri/pkg/triangle"
)

func TestParseRejectsNonNumericField(t *testing.T) {
	m, err := Parse(map[triangle.Field]string{
		triangle.FieldAB: "abc",
		triangle.FieldAC: "4",
	})

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, triangle.FieldAB, perr.Field)
	assert.Equal(t, "abc", perr.Value)
	assert.Equal(t, "please enter a number for AB", err.Error())
	assert.Equal(t, triangle.MeasurementSet{}, m)
}

func TestParseReportsFirstFieldInFormOrder(t *testing.T) {
	_, err := Parse(map[triangle.Field]string{
		triangle.FieldArea:   "x",
		triangle.FieldAngleA: "y",
	})

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, triangle.FieldAngleA, perr.Field)
}

func TestParseBlankAndZeroAreAbsent(t *testing.T) {
	m, err := Parse(map[triangle.Field]string{
		triangle.FieldAB: "  ",
		triangle.FieldAC: "0",
		triangle.FieldBC: " 5.5 ",
	})
	require.NoError(t, err)
	assert.False(t, m.Known(triangle.FieldAB))
	assert.False(t, m.Known(triangle.FieldAC))
	assert.Equal(t, 5.5, m.BC)
}

func TestParseValueRejectsNonFinite(t *testing.T) {
	for _, text := range []string{"NaN", "inf", "-Inf", "1e999"} {
		_, err := ParseValue(triangle.FieldArea, text)
		assert.Error(t, err, text)
	}
}

func TestParseRejectsDerivedField(t *testing.T) {
	_, err := Parse(map[triangle.Field]string{triangle.FieldInRadius: "1"})
	assert.Error(t, err)
}

func TestParseNamed(t *testing.T) {
	m, err := ParseNamed(map[string]string{"ab": "3", "AngleB": "60"})
	require.NoError(t, err)
	assert.Equal(t, 3.0, m.AB)
	assert.Equal(t, 60.0, m.AngleB)

	_, err = ParseNamed(map[string]string{"hypotenuse": "5"})
	assert.Error(t, err)
}

func TestReadRequests(t *testing.T) {
	doc := `
triangles:
  - name: right
    AB: 3
    AC: 4
    BC: 5
  - angleA: 40
    angleB: 60
    area: 12.5
`
	reqs, err := ReadRequests(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, reqs, 2)

	assert.Equal(t, "right", reqs[0].Name)
	assert.Equal(t, triangle.MeasurementSet{AB: 3, AC: 4, BC: 5}, reqs[0].Set)

	assert.Equal(t, "#2", reqs[1].Name)
	assert.Equal(t, 12.5, reqs[1].Set.Area)
}

func TestReadRequestsBadValue(t *testing.T) {
	_, err := ReadRequests(strings.NewReader("triangles:\n  - AB: abc\n"))

	var perr *ParseError
	require.True(t, errors.As(err, &perr), "got %v", err)
	assert.Equal(t, triangle.FieldAB, perr.Field)
}

func TestReadRequestsRejectsMalformedEntries(t *testing.T) {
	cases := map[string]string{
		"unknown field": "triangles:\n  - perimeter: 12\n",
		"duplicate":     "triangles:\n  - AB: 3\n    ab: 4\n",
		"not a mapping": "triangles:\n  - 3\n",
		"nested value":  "triangles:\n  - AB: [3]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadRequests(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestReadRequestsEmpty(t *testing.T) {
	reqs, err := ReadRequests(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestLoadRequests(t *testing.T) {
	path := filepath.Join(t.TempDir(), "req.yaml")
	require.NoError(t, os.WriteFile(path, []byte("triangles:\n  - {AB: 5, BC: 5, angleB: 60}\n"), 0o644))

	reqs, err := LoadRequests(path)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, 60.0, reqs[0].Set.AngleB)

	_, err = LoadRequests(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseArgs(t *testing.T) {
	raw, err := ParseArgs([]string{"AB=5", "bc=5", "angleB=60"})
	require.NoError(t, err)

	m, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, triangle.MeasurementSet{AB: 5, BC: 5, AngleB: 60}, m)

	_, err = ParseArgs([]string{"AB"})
	assert.Error(t, err)

	_, err = ParseArgs([]string{"side=3"})
	assert.Error(t, err)

	raw, err = ParseArgs([]string{"AB=abc"})
	require.NoError(t, err)
	_, err = Parse(raw)
	var perr *ParseError
	assert.ErrorAs(t, err, &perr)
}
