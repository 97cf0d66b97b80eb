package geometry

import (
	"fmt"
	"math"
)

// Triangle represents a triangular facet in 3D space. V1, V2 and V3 play
// the roles of vertices A, B and C.
type Triangle struct {
	Normal     Vector3
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(normal, v1, v2, v3 Vector3) Triangle {
	return Triangle{
		Normal: normal,
		V1:     v1,
		V2:     v2,
		V3:     v3,
	}
}

// CalculateNormal computes the unit normal from the winding order
func (t Triangle) CalculateNormal() Vector3 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1)).Length() / 2.0
}

// EdgeLengths returns |V1V2|, |V1V3| and |V2V3|, i.e. AB, AC and BC
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V1.Distance(t.V3),
		t.V2.Distance(t.V3),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	return t.V1.Add(t.V2).Add(t.V3).Mul(1.0 / 3.0)
}

// Vertex returns V1, V2 or V3 for index 0, 1 or 2
func (t Triangle) Vertex(i int) Vector3 {
	switch i {
	case 0:
		return t.V1
	case 1:
		return t.V2
	default:
		return t.V3
	}
}

// opposite returns the two vertices not at index i, in winding order
func (t Triangle) opposite(i int) (Vector3, Vector3) {
	return t.Vertex((i + 1) % 3), t.Vertex((i + 2) % 3)
}

// MedianFoot returns the midpoint of the side opposite vertex i
func (t Triangle) MedianFoot(i int) Vector3 {
	p, q := t.opposite(i)
	return p.Lerp(q, 0.5)
}

// BisectorFoot returns where the bisector of the angle at vertex i meets
// the opposite side; it divides that side in the ratio of the adjacent
// sides.
func (t Triangle) BisectorFoot(i int) Vector3 {
	v := t.Vertex(i)
	p, q := t.opposite(i)
	dp, dq := v.Distance(p), v.Distance(q)
	return p.Lerp(q, dp/(dp+dq))
}

// AltitudeFoot returns the foot of the perpendicular from vertex i to the
// line through the opposite side.
func (t Triangle) AltitudeFoot(i int) Vector3 {
	p, q := t.opposite(i)
	return t.Vertex(i).ProjectOntoLine(p, q)
}

// PlaceSides lays out a triangle with the given side lengths in the XY
// plane: A at the origin, B on the positive X axis and C above it.
func PlaceSides(ab, ac, bc float64) (Triangle, error) {
	if ab <= 0 || ac <= 0 || bc <= 0 {
		return Triangle{}, fmt.Errorf("side lengths must be positive: %v, %v, %v", ab, ac, bc)
	}

	x := (ab*ab + ac*ac - bc*bc) / (2 * ab)
	h := ac*ac - x*x
	if h <= 0 || math.IsNaN(h) {
		return Triangle{}, fmt.Errorf("sides %v, %v, %v do not span a triangle", ab, ac, bc)
	}

	return NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(ab, 0, 0),
		NewVector3(x, math.Sqrt(h), 0),
	), nil
}
