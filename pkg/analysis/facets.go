// Package analysis summarizes the facets of an STL model before they are
// handed to the triangle solver.
package analysis

import (
	"math"
	"sort"

	"github.com/philipparndt/gotri/pkg/stl"
)

// FacetInfo describes one facet of a model
type FacetInfo struct {
	Index     int
	Area      float64
	Perimeter float64
	Edges     [3]float64 // AB, AC, BC
}

// Degenerate reports whether the facet's edges fail the strict triangle
// inequality, i.e. its vertices are collinear or coincide.
func (f FacetInfo) Degenerate() bool {
	ab, ac, bc := f.Edges[0], f.Edges[1], f.Edges[2]
	return ab+ac <= bc || ab+bc <= ac || ac+bc <= ab
}

// Summary contains aggregate measurements of a model
type Summary struct {
	TriangleCount int
	Degenerate    int
	SurfaceArea   float64
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
}

// Facets returns per-facet measurements in model order
func Facets(model *stl.Model) []FacetInfo {
	facets := make([]FacetInfo, 0, model.TriangleCount())
	for i, t := range model.Triangles {
		facets = append(facets, FacetInfo{
			Index:     i,
			Area:      t.Area(),
			Perimeter: t.Perimeter(),
			Edges:     t.EdgeLengths(),
		})
	}
	return facets
}

// Summarize aggregates facet measurements
func Summarize(facets []FacetInfo) Summary {
	s := Summary{TriangleCount: len(facets)}
	if len(facets) == 0 {
		return s
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for _, f := range facets {
		s.SurfaceArea += f.Area
		if f.Degenerate() {
			s.Degenerate++
		}
		for _, length := range f.Edges {
			totalLength += length
			if length < minLength {
				minLength = length
			}
			if length > maxLength {
				maxLength = length
			}
		}
	}

	s.MinEdgeLength = minLength
	s.MaxEdgeLength = maxLength
	s.AvgEdgeLength = totalLength / float64(3*len(facets))
	return s
}

// Largest returns the count facets with the largest area
func Largest(facets []FacetInfo, count int) []FacetInfo {
	return ranked(facets, count, func(a, b FacetInfo) bool { return a.Area > b.Area })
}

// Smallest returns the count facets with the smallest area
func Smallest(facets []FacetInfo, count int) []FacetInfo {
	return ranked(facets, count, func(a, b FacetInfo) bool { return a.Area < b.Area })
}

func ranked(facets []FacetInfo, count int, less func(a, b FacetInfo) bool) []FacetInfo {
	sorted := make([]FacetInfo, len(facets))
	copy(sorted, facets)

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})

	if count <= 0 || count > len(sorted) {
		count = len(sorted)
	}
	return sorted[:count]
}
