// Package input turns raw field text into a MeasurementSet. An empty field
// and a field holding "0" both mean the measurement is absent; anything
// that is not a finite number is rejected with a ParseError before the
// solver is ever called.
package input

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/philipparndt/gotri/pkg/triangle"
)

// ParseError reports field text that is not a number
type ParseError struct {
	Field triangle.Field
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("please enter a number for %s", e.Field)
}

// ParseValue parses the text of a single field. Blank text yields 0.
func ParseValue(f triangle.Field, text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Field: f, Value: text}
	}
	return v, nil
}

// Parse builds a MeasurementSet from raw text keyed by field. Fields are
// parsed in form order so the first bad field is the one reported.
func Parse(raw map[triangle.Field]string) (triangle.MeasurementSet, error) {
	var m triangle.MeasurementSet
	for _, f := range triangle.InputFields() {
		text, ok := raw[f]
		if !ok {
			continue
		}
		v, err := ParseValue(f, text)
		if err != nil {
			return triangle.MeasurementSet{}, err
		}
		m.Set(f, v)
	}

	for f := range raw {
		if !IsInput(f) {
			return triangle.MeasurementSet{}, fmt.Errorf("%s is derived and cannot be supplied", f)
		}
	}
	return m, nil
}

// ParseNamed is Parse keyed by field name, as read from a form or a file
func ParseNamed(raw map[string]string) (triangle.MeasurementSet, error) {
	byField := make(map[triangle.Field]string, len(raw))
	for name, text := range raw {
		f, err := triangle.ParseField(name)
		if err != nil {
			return triangle.MeasurementSet{}, err
		}
		byField[f] = text
	}
	return Parse(byField)
}

// IsInput reports whether f can be supplied by the caller
func IsInput(f triangle.Field) bool {
	for _, in := range triangle.InputFields() {
		if in == f {
			return true
		}
	}
	return false
}

// ParseArgs reads "field=value" words such as "AB=3 angleB=60"
func ParseArgs(args []string) (map[triangle.Field]string, error) {
	raw := make(map[triangle.Field]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("expected field=value, got %q", arg)
		}
		f, err := triangle.ParseField(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		raw[f] = value
	}
	return raw, nil
}
