// Package triangle infers a complete set of triangle measurements from a
// partial one. A MeasurementSet holds sides, angles, medians, bisectors,
// altitudes and area; the Solver picks the first rule whose inputs are all
// known, derives the sides and completes every other field from them.
//
// Angles are in degrees. A field is known when it is strictly positive.
package triangle

import (
	"fmt"
	"math"
	"strings"
)

// Field identifies one slot of a MeasurementSet
type Field int

const (
	FieldAB Field = iota
	FieldAC
	FieldBC
	FieldAngleA
	FieldAngleB
	FieldAngleC
	FieldMedianAM
	FieldMedianBM
	FieldMedianCM
	FieldBisectorA
	FieldBisectorB
	FieldBisectorC
	FieldHeightA
	FieldHeightB
	FieldHeightC
	FieldArea
	FieldInRadius
	FieldCircumRadius

	fieldCount
)

var fieldNames = [fieldCount]string{
	"AB", "AC", "BC",
	"angleA", "angleB", "angleC",
	"medianAM", "medianBM", "medianCM",
	"bisectorA", "bisectorB", "bisectorC",
	"heightA", "heightB", "heightC",
	"area", "inRadius", "circumRadius",
}

// String returns the canonical field name
func (f Field) String() string {
	if f < 0 || f >= fieldCount {
		return fmt.Sprintf("Field(%d)", int(f))
	}
	return fieldNames[f]
}

// ParseField resolves a field name, ignoring case
func ParseField(name string) (Field, error) {
	for i, n := range fieldNames {
		if strings.EqualFold(n, name) {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}

// InputFields returns the sixteen fields a caller may supply
func InputFields() []Field {
	fields := make([]Field, 0, FieldArea+1)
	for f := FieldAB; f <= FieldArea; f++ {
		fields = append(fields, f)
	}
	return fields
}

// AllFields returns every field including the derived radii
func AllFields() []Field {
	fields := make([]Field, 0, fieldCount)
	for f := Field(0); f < fieldCount; f++ {
		fields = append(fields, f)
	}
	return fields
}

// MeasurementSet holds every measurement of a triangle. Zero means unknown.
type MeasurementSet struct {
	AB float64 `json:"AB" yaml:"AB"`
	AC float64 `json:"AC" yaml:"AC"`
	BC float64 `json:"BC" yaml:"BC"`

	AngleA float64 `json:"angleA" yaml:"angleA"`
	AngleB float64 `json:"angleB" yaml:"angleB"`
	AngleC float64 `json:"angleC" yaml:"angleC"`

	MedianAM float64 `json:"medianAM" yaml:"medianAM"`
	MedianBM float64 `json:"medianBM" yaml:"medianBM"`
	MedianCM float64 `json:"medianCM" yaml:"medianCM"`

	BisectorA float64 `json:"bisectorA" yaml:"bisectorA"`
	BisectorB float64 `json:"bisectorB" yaml:"bisectorB"`
	BisectorC float64 `json:"bisectorC" yaml:"bisectorC"`

	HeightA float64 `json:"heightA" yaml:"heightA"`
	HeightB float64 `json:"heightB" yaml:"heightB"`
	HeightC float64 `json:"heightC" yaml:"heightC"`

	Area         float64 `json:"area" yaml:"area"`
	InRadius     float64 `json:"inRadius" yaml:"inRadius"`
	CircumRadius float64 `json:"circumRadius" yaml:"circumRadius"`
}

func (m *MeasurementSet) slot(f Field) *float64 {
	switch f {
	case FieldAB:
		return &m.AB
	case FieldAC:
		return &m.AC
	case FieldBC:
		return &m.BC
	case FieldAngleA:
		return &m.AngleA
	case FieldAngleB:
		return &m.AngleB
	case FieldAngleC:
		return &m.AngleC
	case FieldMedianAM:
		return &m.MedianAM
	case FieldMedianBM:
		return &m.MedianBM
	case FieldMedianCM:
		return &m.MedianCM
	case FieldBisectorA:
		return &m.BisectorA
	case FieldBisectorB:
		return &m.BisectorB
	case FieldBisectorC:
		return &m.BisectorC
	case FieldHeightA:
		return &m.HeightA
	case FieldHeightB:
		return &m.HeightB
	case FieldHeightC:
		return &m.HeightC
	case FieldArea:
		return &m.Area
	case FieldInRadius:
		return &m.InRadius
	case FieldCircumRadius:
		return &m.CircumRadius
	}
	panic(fmt.Sprintf("triangle: invalid field %d", int(f)))
}

// Get returns the value stored for a field
func (m MeasurementSet) Get(f Field) float64 {
	return *m.slot(f)
}

// Set stores a value for a field
func (m *MeasurementSet) Set(f Field, v float64) {
	*m.slot(f) = v
}

// Known reports whether a field holds a usable (strictly positive) value
func (m MeasurementSet) Known(f Field) bool {
	return m.Get(f) > 0
}

// KnownFields lists the known input fields in form order
func (m MeasurementSet) KnownFields() []Field {
	var known []Field
	for _, f := range InputFields() {
		if m.Known(f) {
			known = append(known, f)
		}
	}
	return known
}

// Sides returns AB, AC, BC
func (m MeasurementSet) Sides() [3]float64 {
	return [3]float64{m.AB, m.AC, m.BC}
}

// Angles returns angleA, angleB, angleC
func (m MeasurementSet) Angles() [3]float64 {
	return [3]float64{m.AngleA, m.AngleB, m.AngleC}
}

// Perimeter returns AB + AC + BC
func (m MeasurementSet) Perimeter() float64 {
	return m.AB + m.AC + m.BC
}

// Finite reports the first field holding NaN or an infinity
func (m MeasurementSet) Finite() (Field, bool) {
	for _, f := range AllFields() {
		v := m.Get(f)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return f, false
		}
	}
	return 0, true
}
