package triangle

import (
	"fmt"
	"math"
	"strings"
)

// Category groups rules that apply the same derivation to different vertices
type Category int

const (
	CategorySAS Category = iota
	CategorySSAArea
	CategoryASA
	CategorySSS
	CategoryMedian
	CategoryBisector
	CategoryAngleBisector
	CategorySideAltitude
	CategoryAltitudes
)

func (c Category) String() string {
	switch c {
	case CategorySAS:
		return "SAS"
	case CategorySSAArea:
		return "SSA+Area"
	case CategoryASA:
		return "ASA"
	case CategorySSS:
		return "SSS"
	case CategoryMedian:
		return "Side+Median"
	case CategoryBisector:
		return "Side+Bisector"
	case CategoryAngleBisector:
		return "Angle+Side+Bisector"
	case CategorySideAltitude:
		return "Side+Altitude"
	case CategoryAltitudes:
		return "Altitudes"
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// Rule pairs the fields an input pattern needs with the derivation that
// resolves the sides from them.
type Rule struct {
	Name     string
	Category Category
	Given    []Field

	derive func(m MeasurementSet) (derivation, error)
}

// Matches reports whether every field the rule needs is known
func (r Rule) Matches(m MeasurementSet) bool {
	for _, f := range r.Given {
		if !m.Known(f) {
			return false
		}
	}
	return true
}

func (r Rule) String() string {
	names := make([]string, len(r.Given))
	for i, f := range r.Given {
		names[i] = f.String()
	}
	return fmt.Sprintf("%s [%s]", r.Name, strings.Join(names, ", "))
}

// vertex names the fields attached to one corner of the triangle: its
// angle, the cevians drawn from it, the two sides meeting there and the
// side opposite it.
type vertex struct {
	name     string
	angle    Field
	median   Field
	bisector Field
	p, q     Field
	opposite Field
}

var (
	vertexA = vertex{"A", FieldAngleA, FieldMedianAM, FieldBisectorA, FieldAB, FieldAC, FieldBC}
	vertexB = vertex{"B", FieldAngleB, FieldMedianBM, FieldBisectorB, FieldAB, FieldBC, FieldAC}
	vertexC = vertex{"C", FieldAngleC, FieldMedianCM, FieldBisectorC, FieldAC, FieldBC, FieldAB}
)

// altitudeOnto returns the altitude field that falls on a side
func altitudeOnto(side Field) Field {
	switch side {
	case FieldAB:
		return FieldHeightC
	case FieldAC:
		return FieldHeightB
	}
	return FieldHeightA
}

// otherSide returns the side field that is neither a nor b
func otherSide(a, b Field) Field {
	return FieldAB + FieldAC + FieldBC - a - b
}

// catalog is the priority order. The first block mirrors the legacy
// solver's cascade and must not be reordered; altitude rules come last so
// they never preempt it.
var catalog = []Rule{
	sasRule(vertexB),
	sasRule(vertexC),
	sasRule(vertexA),

	ssaAreaRule(vertexA),
	ssaAreaRule(vertexC),
	ssaAreaRule(vertexB),

	asaRule(vertexA, vertexB, FieldAC, FieldBC, FieldAB),
	asaRule(vertexA, vertexC, FieldAB, FieldBC, FieldAC),
	asaRule(vertexB, vertexC, FieldAB, FieldAC, FieldBC),

	sssRule(),

	medianRule(vertexA, FieldAB, FieldAC),
	medianRule(vertexA, FieldAB, FieldBC),
	medianRule(vertexA, FieldAC, FieldBC),
	medianRule(vertexB, FieldAB, FieldBC),
	medianRule(vertexB, FieldAC, FieldBC),
	medianRule(vertexB, FieldAB, FieldAC),
	medianRule(vertexC, FieldAC, FieldBC),
	medianRule(vertexC, FieldAB, FieldBC),
	medianRule(vertexC, FieldAB, FieldAC),

	bisectorRule(vertexA, FieldAB, FieldAC),
	bisectorRule(vertexA, FieldAB, FieldBC),
	bisectorRule(vertexA, FieldAC, FieldBC),
	bisectorRule(vertexB, FieldAB, FieldBC),
	bisectorRule(vertexB, FieldAC, FieldBC),
	bisectorRule(vertexB, FieldAB, FieldAC),
	bisectorRule(vertexC, FieldAC, FieldBC),
	bisectorRule(vertexC, FieldAB, FieldBC),
	bisectorRule(vertexC, FieldAB, FieldAC),

	angleBisectorRule(vertexA, FieldAC),
	angleBisectorRule(vertexA, FieldAB),
	angleBisectorRule(vertexB, FieldBC),
	angleBisectorRule(vertexB, FieldAB),
	angleBisectorRule(vertexC, FieldAC),
	angleBisectorRule(vertexC, FieldBC),

	sideAltitudeRule(vertexA, FieldAB),
	sideAltitudeRule(vertexA, FieldAC),
	sideAltitudeRule(vertexB, FieldAB),
	sideAltitudeRule(vertexB, FieldBC),
	sideAltitudeRule(vertexC, FieldAC),
	sideAltitudeRule(vertexC, FieldBC),

	altitudesRule(),
}

// Rules returns a copy of the rule catalog in priority order
func Rules() []Rule {
	rules := make([]Rule, len(catalog))
	copy(rules, catalog)
	return rules
}

// LookupRule finds a catalog rule by name
func LookupRule(name string) (Rule, bool) {
	for _, r := range catalog {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// withIncludedAngle resolves the side opposite v from the two sides at v
// and the angle between them.
func withIncludedAngle(v vertex, p, q, deg, area float64) derivation {
	var d derivation
	d.setSide(v.p, p)
	d.setSide(v.q, q)
	d.setSide(v.opposite, LawOfCosines(p, q, deg))
	d.keepAngle(v, deg)
	d.area = area
	return d
}

func sasRule(v vertex) Rule {
	return Rule{
		Name:     fmt.Sprintf("SAS(%s)", v.name),
		Category: CategorySAS,
		Given:    []Field{v.p, v.q, v.angle},
		derive: func(m MeasurementSet) (derivation, error) {
			p, q, deg := m.Get(v.p), m.Get(v.q), m.Get(v.angle)
			return withIncludedAngle(v, p, q, deg, SASArea(p, q, deg)), nil
		},
	}
}

func ssaAreaRule(v vertex) Rule {
	return Rule{
		Name:     fmt.Sprintf("SSA+Area(%s)", v.name),
		Category: CategorySSAArea,
		Given:    []Field{v.p, v.q, FieldArea},
		derive: func(m MeasurementSet) (derivation, error) {
			p, q := m.Get(v.p), m.Get(v.q)
			deg := IncludedAngleFromArea(p, q, m.Area)
			return withIncludedAngle(v, p, q, deg, m.Area), nil
		},
	}
}

// scaleFields are the lengths, after the sides, that can fix the size of
// a triangle whose shape is known.
var scaleFields = []Field{
	FieldMedianAM, FieldMedianBM, FieldMedianCM,
	FieldBisectorA, FieldBisectorB, FieldBisectorC,
	FieldHeightA, FieldHeightB, FieldHeightC,
}

// asaRule closes the angle sum and scales the similar triangle with unit
// circumdiameter by the first known length, trying the sides in the given
// order first and the area last.
func asaRule(v1, v2 vertex, sides ...Field) Rule {
	lengths := append(sides, scaleFields...)
	return Rule{
		Name:     fmt.Sprintf("ASA(%s,%s)", v1.name, v2.name),
		Category: CategoryASA,
		Given:    []Field{v1.angle, v2.angle},
		derive: func(m MeasurementSet) (derivation, error) {
			var angles MeasurementSet
			angles.Set(v1.angle, m.Get(v1.angle))
			angles.Set(v2.angle, m.Get(v2.angle))
			third := otherAngle(v1.angle, v2.angle)
			angles.Set(third, 180-m.Get(v1.angle)-m.Get(v2.angle))

			d := derivation{angles: angles.Angles()}
			d.sides = [3]float64{
				math.Sin(toRadians(angles.AngleC)),
				math.Sin(toRadians(angles.AngleB)),
				math.Sin(toRadians(angles.AngleA)),
			}
			unit := complete(d)

			k, ok := scaleFrom(m, unit, lengths)
			if !ok {
				return derivation{}, ErrUnderdetermined
			}
			for i := range d.sides {
				d.sides[i] *= k
			}
			return d, nil
		},
	}
}

func otherAngle(a, b Field) Field {
	return FieldAngleA + FieldAngleB + FieldAngleC - a - b
}

func scaleFrom(m, unit MeasurementSet, lengths []Field) (float64, bool) {
	for _, f := range lengths {
		if m.Known(f) {
			return m.Get(f) / unit.Get(f), true
		}
	}
	if m.Known(FieldArea) {
		return math.Sqrt(m.Area / unit.Area), true
	}
	return 0, false
}

func sssRule() Rule {
	return Rule{
		Name:     "SSS",
		Category: CategorySSS,
		Given:    []Field{FieldAB, FieldAC, FieldBC},
		derive: func(m MeasurementSet) (derivation, error) {
			return derivation{sides: m.Sides()}, nil
		},
	}
}

// twoSides copies two known sides into a derivation and reports the
// missing one.
func twoSides(m MeasurementSet, a, b Field) (derivation, Field) {
	var d derivation
	d.setSide(a, m.Get(a))
	d.setSide(b, m.Get(b))
	return d, otherSide(a, b)
}

// adjacentTo returns the side at v other than s
func adjacentTo(v vertex, s Field) Field {
	if s == v.p {
		return v.q
	}
	return v.p
}

func medianRule(v vertex, a, b Field) Rule {
	return Rule{
		Name:     fmt.Sprintf("Median(%s; %s,%s)", v.name, a, b),
		Category: CategoryMedian,
		Given:    []Field{v.median, a, b},
		derive: func(m MeasurementSet) (derivation, error) {
			d, missing := twoSides(m, a, b)
			median := m.Get(v.median)
			if missing == v.opposite {
				d.setSide(missing, OppositeFromMedian(median, d.side(v.p), d.side(v.q)))
			} else {
				other := adjacentTo(v, missing)
				d.setSide(missing, AdjacentFromMedian(median, d.side(v.opposite), d.side(other)))
			}
			return d, nil
		},
	}
}

func bisectorRule(v vertex, a, b Field) Rule {
	return Rule{
		Name:     fmt.Sprintf("Bisector(%s; %s,%s)", v.name, a, b),
		Category: CategoryBisector,
		Given:    []Field{v.bisector, a, b},
		derive: func(m MeasurementSet) (derivation, error) {
			d, missing := twoSides(m, a, b)
			bisector := m.Get(v.bisector)
			if missing == v.opposite {
				d.setSide(missing, OppositeFromBisector(bisector, d.side(v.p), d.side(v.q)))
			} else {
				other := adjacentTo(v, missing)
				d.setSide(missing, AdjacentFromBisector(bisector, d.side(other), d.side(v.opposite)))
			}
			return d, nil
		},
	}
}

func angleBisectorRule(v vertex, side Field) Rule {
	return Rule{
		Name:     fmt.Sprintf("AngleBisector(%s; %s)", v.name, side),
		Category: CategoryAngleBisector,
		Given:    []Field{v.angle, side, v.bisector},
		derive: func(m MeasurementSet) (derivation, error) {
			deg, known := m.Get(v.angle), m.Get(side)
			other := AdjacentFromAngleBisector(deg, known, m.Get(v.bisector))
			p, q := known, other
			if side != v.p {
				p, q = other, known
			}
			return withIncludedAngle(v, p, q, deg, SASArea(p, q, deg)), nil
		},
	}
}

// sideAltitudeRule turns the altitude onto one of the sides at v into the
// area and continues as SSA+Area.
func sideAltitudeRule(v vertex, onto Field) Rule {
	height := altitudeOnto(onto)
	return Rule{
		Name:     fmt.Sprintf("SideAltitude(%s; %s)", v.name, height),
		Category: CategorySideAltitude,
		Given:    []Field{v.p, v.q, height},
		derive: func(m MeasurementSet) (derivation, error) {
			p, q := m.Get(v.p), m.Get(v.q)
			area := m.Get(onto) * m.Get(height) / 2
			deg := IncludedAngleFromArea(p, q, area)
			return withIncludedAngle(v, p, q, deg, area), nil
		},
	}
}

// altitudesRule uses that sides are inversely proportional to their
// altitudes; the reciprocal triangle's area K' fixes the scale 1/(2K').
func altitudesRule() Rule {
	return Rule{
		Name:     "Altitudes",
		Category: CategoryAltitudes,
		Given:    []Field{FieldHeightA, FieldHeightB, FieldHeightC},
		derive: func(m MeasurementSet) (derivation, error) {
			ab, ac, bc := 1/m.HeightC, 1/m.HeightB, 1/m.HeightA
			k := 1 / (2 * Heron(ab, ac, bc))
			return derivation{sides: [3]float64{ab * k, ac * k, bc * k}}, nil
		},
	}
}
