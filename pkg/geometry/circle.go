package geometry

import "fmt"

// Circle is a circle embedded in 3D space
type Circle struct {
	Center Vector3 // Circle center in 3D
	Radius float64 // Circle radius
	Normal Vector3 // Normal vector of the plane containing the circle
}

// Circumcircle returns the circle through three points. With u = b−a,
// v = c−a and w = u×v the center is
//
//	a + ((|u|²·v − |v|²·u) × w) / (2|w|²)
//
// which reduces to the planar determinant formula when the points share a
// coordinate plane.
func Circumcircle(a, b, c Vector3) (*Circle, error) {
	u := b.Sub(a)
	v := c.Sub(a)
	w := u.Cross(v)

	scale := u.LengthSquared() * v.LengthSquared()
	denom := 2 * w.LengthSquared()
	if denom <= 1e-20*scale || denom == 0 {
		return nil, fmt.Errorf("points are collinear")
	}

	offset := v.Mul(u.LengthSquared()).Sub(u.Mul(v.LengthSquared())).Cross(w).Mul(1 / denom)
	center := a.Add(offset)

	return &Circle{
		Center: center,
		Radius: offset.Length(),
		Normal: w.Normalize(),
	}, nil
}

// Circumcircle returns the circle through the triangle's vertices
func (t Triangle) Circumcircle() (*Circle, error) {
	return Circumcircle(t.V1, t.V2, t.V3)
}
