package triangle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldNamesRoundTrip(t *testing.T) {
	for _, f := range AllFields() {
		parsed, err := ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	f, err := ParseField("ANGLEa")
	require.NoError(t, err)
	assert.Equal(t, FieldAngleA, f)

	_, err = ParseField("perimeter")
	assert.Error(t, err)
}

func TestInputFields(t *testing.T) {
	fields := InputFields()
	assert.Len(t, fields, 16)
	assert.Equal(t, FieldAB, fields[0])
	assert.Equal(t, FieldArea, fields[15])
	assert.Len(t, AllFields(), 18)
}

func TestKnownTreatsZeroAndNegativeAsAbsent(t *testing.T) {
	m := MeasurementSet{AB: 3, AC: 0, BC: -1}
	assert.True(t, m.Known(FieldAB))
	assert.False(t, m.Known(FieldAC))
	assert.False(t, m.Known(FieldBC))
	assert.Equal(t, []Field{FieldAB}, m.KnownFields())
}

func TestGetSet(t *testing.T) {
	var m MeasurementSet
	for i, f := range AllFields() {
		m.Set(f, float64(i+1))
	}
	assert.Equal(t, 1.0, m.AB)
	assert.Equal(t, 16.0, m.Area)
	assert.Equal(t, 18.0, m.CircumRadius)
	assert.Equal(t, 6.0, m.Get(FieldAngleC))
}

func TestFinite(t *testing.T) {
	m := Complete(3, 4, 5)
	_, ok := m.Finite()
	assert.True(t, ok)

	m.BisectorB = math.NaN()
	f, ok := m.Finite()
	assert.False(t, ok)
	assert.Equal(t, FieldBisectorB, f)
}
