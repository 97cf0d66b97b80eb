package triangle

import "math"

// Ratios holds the trigonometric ratios of one angle
type Ratios struct {
	Sin float64 `json:"sin" yaml:"sin"`
	Cos float64 `json:"cos" yaml:"cos"`
	Tan float64 `json:"tan" yaml:"tan"`
	Cot float64 `json:"cot" yaml:"cot"`
}

// RatiosOf returns sin, cos, tan and cot of an angle in degrees. A right
// angle is special-cased so cos and cot are exactly zero and tan is +Inf
// rather than a huge finite number.
func RatiosOf(deg float64) Ratios {
	if deg == 90 {
		return Ratios{Sin: 1, Cos: 0, Tan: math.Inf(1), Cot: 0}
	}
	rad := toRadians(deg)
	r := Ratios{
		Sin: math.Sin(rad),
		Cos: math.Cos(rad),
		Tan: math.Tan(rad),
	}
	if r.Tan != 0 {
		r.Cot = 1 / r.Tan
	} else {
		r.Cot = math.Inf(1)
	}
	return r
}

// AngleRatios returns the ratios for angles A, B and C of a set
func AngleRatios(m MeasurementSet) [3]Ratios {
	return [3]Ratios{RatiosOf(m.AngleA), RatiosOf(m.AngleB), RatiosOf(m.AngleC)}
}
