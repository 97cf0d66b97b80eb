package triangle

import (
	"fmt"
	"math"
)

// Violation is an identity a completed set fails to satisfy
type Violation struct {
	Identity string
	Want     float64
	Got      float64
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: want %g, got %g", v.Identity, v.Want, v.Got)
}

// Check verifies the identities every completed triangle satisfies:
// angle sum, Heron's formula, the extended law of sines, the inradius and
// circumradius products, and the median, bisector and altitude formulas.
// Comparisons are relative to the magnitude of the expected value.
func Check(m MeasurementSet, tol float64) []Violation {
	var out []Violation
	expect := func(identity string, want, got float64) {
		if math.Abs(want-got) > tol*math.Max(1, math.Abs(want)) || math.IsNaN(got) {
			out = append(out, Violation{Identity: identity, Want: want, Got: got})
		}
	}

	expect("angle sum", 180, m.AngleA+m.AngleB+m.AngleC)
	expect("heron", Heron(m.AB, m.AC, m.BC), m.Area)

	diameter := 2 * m.CircumRadius
	expect("law of sines BC/sin A", diameter, m.BC/math.Sin(toRadians(m.AngleA)))
	expect("law of sines AC/sin B", diameter, m.AC/math.Sin(toRadians(m.AngleB)))
	expect("law of sines AB/sin C", diameter, m.AB/math.Sin(toRadians(m.AngleC)))

	expect("inradius", m.Area, m.InRadius*Semiperimeter(m.AB, m.AC, m.BC))
	expect("circumradius", m.AB*m.AC*m.BC, 4*m.Area*m.CircumRadius)

	expect("medianAM", MedianFromSides(m.BC, m.AB, m.AC), m.MedianAM)
	expect("medianBM", MedianFromSides(m.AC, m.AB, m.BC), m.MedianBM)
	expect("medianCM", MedianFromSides(m.AB, m.AC, m.BC), m.MedianCM)

	expect("bisectorA", BisectorFromSides(m.AB, m.AC, m.BC), m.BisectorA)
	expect("bisectorB", BisectorFromSides(m.AB, m.BC, m.AC), m.BisectorB)
	expect("bisectorC", BisectorFromSides(m.AC, m.BC, m.AB), m.BisectorC)

	expect("heightA", Altitude(m.Area, m.BC), m.HeightA)
	expect("heightB", Altitude(m.Area, m.AC), m.HeightB)
	expect("heightC", Altitude(m.Area, m.AB), m.HeightC)

	return out
}
