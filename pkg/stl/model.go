package stl

import (
	"fmt"

	"github.com/philipparndt/gotri/pkg/geometry"
)

// Model represents a complete STL model
type Model struct {
	Name      string
	Triangles []geometry.Triangle
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:      name,
		Triangles: make([]geometry.Triangle, 0),
	}
}

// AddTriangle adds a triangle to the model
func (m *Model) AddTriangle(triangle geometry.Triangle) {
	m.Triangles = append(m.Triangles, triangle)
}

// TriangleCount returns the number of triangles in the model
func (m *Model) TriangleCount() int {
	return len(m.Triangles)
}

// Facet returns the triangle at index i
func (m *Model) Facet(i int) (geometry.Triangle, error) {
	if i < 0 || i >= len(m.Triangles) {
		return geometry.Triangle{}, fmt.Errorf("facet %d out of range (model has %d)", i, len(m.Triangles))
	}
	return m.Triangles[i], nil
}
