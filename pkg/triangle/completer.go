package triangle

// derivation is what a rule resolves before completion. Sides are always
// set; angles and area are left zero unless the rule fixed them directly,
// in which case they take precedence over the values derived from sides.
type derivation struct {
	sides  [3]float64 // AB, AC, BC
	angles [3]float64 // A, B, C
	area   float64
}

func (d *derivation) setSide(f Field, v float64) {
	d.sides[f-FieldAB] = v
}

func (d derivation) side(f Field) float64 {
	return d.sides[f-FieldAB]
}

func (d derivation) hasAngles() bool {
	return d.angles != [3]float64{}
}

// keepAngle fixes the angle at v to the given value and derives the other
// two from the resolved sides, closing the sum on the last one.
func (d *derivation) keepAngle(v vertex, deg float64) {
	a, b, _ := SidesToAngles(d.sides[0], d.sides[1], d.sides[2])
	switch v.angle {
	case FieldAngleA:
		d.angles = [3]float64{deg, b, 180 - deg - b}
	case FieldAngleB:
		d.angles = [3]float64{a, deg, 180 - a - deg}
	case FieldAngleC:
		d.angles = [3]float64{a, 180 - a - deg, deg}
	}
}

// complete fills every field of a MeasurementSet from a derivation. The
// order is fixed: angles, area, radii, medians, bisectors, altitudes.
func complete(d derivation) MeasurementSet {
	var m MeasurementSet
	m.AB, m.AC, m.BC = d.sides[0], d.sides[1], d.sides[2]

	if d.hasAngles() {
		m.AngleA, m.AngleB, m.AngleC = d.angles[0], d.angles[1], d.angles[2]
	} else {
		m.AngleA, m.AngleB, m.AngleC = SidesToAngles(m.AB, m.AC, m.BC)
	}

	m.Area = d.area
	if m.Area == 0 {
		m.Area = Heron(m.AB, m.AC, m.BC)
	}

	m.CircumRadius = CircumRadius(m.AB, m.AC, m.BC, m.Area)
	m.InRadius = InRadius(m.Area, Semiperimeter(m.AB, m.AC, m.BC))

	m.MedianAM = MedianFromSides(m.BC, m.AB, m.AC)
	m.MedianBM = MedianFromSides(m.AC, m.AB, m.BC)
	m.MedianCM = MedianFromSides(m.AB, m.AC, m.BC)

	m.BisectorA = BisectorFromSides(m.AB, m.AC, m.BC)
	m.BisectorB = BisectorFromSides(m.AB, m.BC, m.AC)
	m.BisectorC = BisectorFromSides(m.AC, m.BC, m.AB)

	m.HeightA = Altitude(m.Area, m.BC)
	m.HeightB = Altitude(m.Area, m.AC)
	m.HeightC = Altitude(m.Area, m.AB)

	return m
}

// Complete derives every measurement of the triangle with the given sides
func Complete(ab, ac, bc float64) MeasurementSet {
	return complete(derivation{sides: [3]float64{ab, ac, bc}})
}
