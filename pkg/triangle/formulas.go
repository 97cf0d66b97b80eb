package triangle

import "math"

// Conventions used throughout: BC lies opposite vertex A, AC opposite B and
// AB opposite C. Functions return NaN (never panic) when their argument
// leaves the domain of sqrt, acos or asin.

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

// SidesToAngles returns the interior angles at A, B and C using the law of
// cosines for A and B and closing the sum for C.
func SidesToAngles(ab, ac, bc float64) (float64, float64, float64) {
	a := toDegrees(math.Acos((ab*ab + ac*ac - bc*bc) / (2 * ab * ac)))
	b := toDegrees(math.Acos((ab*ab + bc*bc - ac*ac) / (2 * ab * bc)))
	return a, b, 180 - a - b
}

// Semiperimeter returns half the perimeter
func Semiperimeter(a, b, c float64) float64 {
	return (a + b + c) / 2
}

// Heron returns the area of a triangle from its sides
func Heron(a, b, c float64) float64 {
	s := Semiperimeter(a, b, c)
	return math.Sqrt(s * (s - a) * (s - b) * (s - c))
}

// MedianFromSides returns the median drawn onto the opposite side
func MedianFromSides(opposite, adj1, adj2 float64) float64 {
	return 0.5 * math.Sqrt(2*adj1*adj1+2*adj2*adj2-opposite*opposite)
}

// BisectorFromSides returns the internal bisector of the angle between p
// and q, measured to the opposite side.
func BisectorFromSides(p, q, opposite float64) float64 {
	sum := p + q
	return math.Sqrt(p * q * (1 - opposite*opposite/(sum*sum)))
}

// CircumRadius returns abc / 4K
func CircumRadius(a, b, c, area float64) float64 {
	return a * b * c / (4 * area)
}

// InRadius returns K / s
func InRadius(area, semiperimeter float64) float64 {
	return area / semiperimeter
}

// Altitude returns the height onto the given side
func Altitude(area, opposite float64) float64 {
	return 2 * area / opposite
}

// LawOfCosines returns the side opposite the included angle
func LawOfCosines(p, q, includedDeg float64) float64 {
	return math.Sqrt(p*p + q*q - 2*p*q*math.Cos(toRadians(includedDeg)))
}

// LawOfSines scales a known side by the ratio of the sines of the angles
// opposite the wanted side and the known side.
func LawOfSines(known, oppositeKnownDeg, oppositeWantDeg float64) float64 {
	return known * math.Sin(toRadians(oppositeWantDeg)) / math.Sin(toRadians(oppositeKnownDeg))
}

// SASArea returns ½·p·q·sin(included)
func SASArea(p, q, includedDeg float64) float64 {
	return 0.5 * p * q * math.Sin(toRadians(includedDeg))
}

// IncludedAngleFromArea returns the acute angle between p and q that
// encloses the given area.
func IncludedAngleFromArea(p, q, area float64) float64 {
	return toDegrees(math.Asin(2 * area / (p * q)))
}

// OppositeFromMedian returns the side a median bisects, given the two
// sides meeting at the median's vertex.
func OppositeFromMedian(median, p, q float64) float64 {
	return math.Sqrt(2*p*p + 2*q*q - 4*median*median)
}

// AdjacentFromMedian returns the unknown side at the median's vertex from
// the other adjacent side and the opposite side.
func AdjacentFromMedian(median, opposite, other float64) float64 {
	return math.Sqrt((4*median*median + opposite*opposite - 2*other*other) / 2)
}

// OppositeFromBisector returns the side opposite the bisected angle
func OppositeFromBisector(bisector, p, q float64) float64 {
	return (p + q) * math.Sqrt(1-bisector*bisector/(p*q))
}

// AdjacentFromBisector returns the unknown side q at the bisected vertex
// given the known adjacent side p and the opposite side o. Writing the
// bisector formula as t²(p+q)² = pq((p+q)² − o²) gives a cubic in q,
//
//	p·q³ + (2p² − t²)·q² + p(p² − o² − 2t²)·q − p²t² = 0,
//
// whose coefficients change sign exactly once, so it has one positive root.
func AdjacentFromBisector(bisector, p, opposite float64) float64 {
	t2 := bisector * bisector
	root, ok := positiveCubicRoot(
		p,
		2*p*p-t2,
		p*(p*p-opposite*opposite-2*t2),
		-p*p*t2,
	)
	if !ok {
		return math.NaN()
	}
	return root
}

// AdjacentFromAngleBisector returns the unknown side q at a vertex with a
// known angle, known adjacent side p and bisector t, from
// t = 2pq·cos(α/2) / (p+q).
func AdjacentFromAngleBisector(angleDeg, p, bisector float64) float64 {
	denom := 2*p*math.Cos(toRadians(angleDeg/2)) - bisector
	if denom <= 0 {
		return math.NaN()
	}
	return bisector * p / denom
}
