package geometry

import (
	"math"
	"testing"
)

func rightTriangle() Triangle {
	// Right angle at V1 with legs 3 and 4
	return NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)
}

func TestTriangleArea(t *testing.T) {
	area := rightTriangle().Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleEdgeLengths(t *testing.T) {
	lengths := rightTriangle().EdgeLengths()

	// AB, AC, BC
	expected := [3]float64{3, 4, 5}
	for i := range expected {
		if math.Abs(lengths[i]-expected[i]) > 1e-10 {
			t.Errorf("Edge %d length failed: expected %v, got %v", i, expected[i], lengths[i])
		}
	}
}

func TestTrianglePerimeter(t *testing.T) {
	perimeter := rightTriangle().Perimeter()
	expected := 12.0 // 3 + 4 + 5 = 12

	if math.Abs(perimeter-expected) > 1e-10 {
		t.Errorf("Perimeter failed: expected %v, got %v", expected, perimeter)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 1),
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if center.Distance(expected) > 1e-12 {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestTriangleCalculateNormal(t *testing.T) {
	normal := rightTriangle().CalculateNormal()
	expected := NewVector3(0, 0, 1)

	if normal != expected {
		t.Errorf("CalculateNormal failed: expected %v, got %v", expected, normal)
	}
}

func TestTriangleCevianFeet(t *testing.T) {
	tri := rightTriangle()

	// Median from the right angle is half the hypotenuse
	if d := tri.V1.Distance(tri.MedianFoot(0)); math.Abs(d-2.5) > 1e-10 {
		t.Errorf("Median length failed: expected 2.5, got %v", d)
	}

	// Altitude onto the hypotenuse is 2*6/5
	if d := tri.V1.Distance(tri.AltitudeFoot(0)); math.Abs(d-2.4) > 1e-10 {
		t.Errorf("Altitude length failed: expected 2.4, got %v", d)
	}

	// Bisector of the right angle: 2*3*4*cos(45°)/7
	expected := 24 * math.Cos(math.Pi/4) / 7
	if d := tri.V1.Distance(tri.BisectorFoot(0)); math.Abs(d-expected) > 1e-10 {
		t.Errorf("Bisector length failed: expected %v, got %v", expected, d)
	}
}

func TestPlaceSides(t *testing.T) {
	tri, err := PlaceSides(3, 4, 5)
	if err != nil {
		t.Fatalf("PlaceSides failed: %v", err)
	}

	lengths := tri.EdgeLengths()
	expected := [3]float64{3, 4, 5}
	for i := range expected {
		if math.Abs(lengths[i]-expected[i]) > 1e-10 {
			t.Errorf("Placed edge %d failed: expected %v, got %v", i, expected[i], lengths[i])
		}
	}

	if _, err := PlaceSides(1, 2, 3); err == nil {
		t.Error("PlaceSides should reject a degenerate triangle")
	}
	if _, err := PlaceSides(0, 2, 3); err == nil {
		t.Error("PlaceSides should reject a zero side")
	}
}
