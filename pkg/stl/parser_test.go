package stl

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/gotri/pkg/geometry"
)

const asciiFacet = `solid right angle
  facet normal 0 0 1
    outer loop
      vertex 0 0 0
      vertex 3 0 0
      vertex 0 4 0
    endloop
  endfacet
endsolid right angle
`

func TestReadASCII(t *testing.T) {
	model, err := Read(strings.NewReader(asciiFacet))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if model.Name != "right angle" {
		t.Errorf("Name failed: expected %q, got %q", "right angle", model.Name)
	}
	if model.TriangleCount() != 1 {
		t.Fatalf("TriangleCount failed: expected 1, got %d", model.TriangleCount())
	}

	facet, err := model.Facet(0)
	if err != nil {
		t.Fatalf("Facet failed: %v", err)
	}
	if facet.V3 != geometry.NewVector3(0, 4, 0) {
		t.Errorf("V3 failed: got %v", facet.V3)
	}
}

func TestReadASCIIInvalidCoordinate(t *testing.T) {
	data := strings.Replace(asciiFacet, "vertex 3 0 0", "vertex 3 x 0", 1)
	if _, err := Read(strings.NewReader(data)); err == nil {
		t.Error("Read should reject a non-numeric coordinate")
	}
}

func TestReadASCIIShortFacet(t *testing.T) {
	data := strings.Replace(asciiFacet, "      vertex 0 4 0\n", "", 1)
	if _, err := Read(strings.NewReader(data)); err == nil {
		t.Error("Read should reject a facet with two vertices")
	}
}

func TestReadBinary(t *testing.T) {
	var buf bytes.Buffer
	header := make([]byte, 80)
	copy(header, "binary facet")
	buf.Write(header)
	binary.Write(&buf, binary.LittleEndian, uint32(1))
	for _, v := range [][3]float32{{0, 0, 1}, {0, 0, 0}, {6, 0, 0}, {0, 8, 0}} {
		binary.Write(&buf, binary.LittleEndian, v)
	}
	binary.Write(&buf, binary.LittleEndian, uint16(0))

	model, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if model.Name != "binary facet" {
		t.Errorf("Name failed: expected %q, got %q", "binary facet", model.Name)
	}
	if model.TriangleCount() != 1 {
		t.Fatalf("TriangleCount failed: expected 1, got %d", model.TriangleCount())
	}
	if area := model.Triangles[0].Area(); math.Abs(area-24) > 1e-9 {
		t.Errorf("Area failed: expected 24, got %v", area)
	}
}

func TestReadBinaryTruncated(t *testing.T) {
	if _, err := Read(bytes.NewReader(make([]byte, 40))); err == nil {
		t.Error("Read should reject a truncated binary header")
	}
}

func TestFacetOutOfRange(t *testing.T) {
	model := NewModel("empty")
	if _, err := model.Facet(0); err == nil {
		t.Error("Facet should fail on an empty model")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	placed, err := geometry.PlaceSides(7, 8, 9)
	if err != nil {
		t.Fatalf("PlaceSides failed: %v", err)
	}

	model := NewModel("seven eight nine")
	model.AddTriangle(placed)

	path := filepath.Join(t.TempDir(), "facet.stl")
	if err := WriteFile(path, model); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	parsed, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed.Name != model.Name {
		t.Errorf("Name failed: expected %q, got %q", model.Name, parsed.Name)
	}

	lengths := parsed.Triangles[0].EdgeLengths()
	expected := [3]float64{7, 8, 9}
	for i := range expected {
		if math.Abs(lengths[i]-expected[i]) > 1e-12 {
			t.Errorf("Edge %d failed: expected %v, got %v", i, expected[i], lengths[i])
		}
	}
}

func TestWriteComputesMissingNormal(t *testing.T) {
	model := NewModel("")
	model.AddTriangle(geometry.Triangle{
		V1: geometry.NewVector3(0, 0, 0),
		V2: geometry.NewVector3(1, 0, 0),
		V3: geometry.NewVector3(0, 1, 0),
	})

	var buf bytes.Buffer
	if err := Write(&buf, model); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.Contains(buf.String(), "facet normal 0 0 1") {
		t.Errorf("expected computed normal in output:\n%s", buf.String())
	}
}

func TestParseMissingFile(t *testing.T) {
	if _, err := Parse(filepath.Join(os.TempDir(), "does-not-exist.stl")); err == nil {
		t.Error("Parse should fail for a missing file")
	}
}
