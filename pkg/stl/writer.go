package stl

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/philipparndt/gotri/pkg/geometry"
)

// Write encodes the model as ASCII STL. Coordinates are written with the
// shortest representation that round-trips a float64.
func Write(w io.Writer, m *Model) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "solid %s\n", m.Name)
	for _, t := range m.Triangles {
		normal := t.Normal
		if normal.LengthSquared() == 0 {
			normal = t.CalculateNormal()
		}
		fmt.Fprintf(bw, "  facet normal %s\n", formatVector(normal))
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range []geometry.Vector3{t.V1, t.V2, t.V3} {
			fmt.Fprintf(bw, "      vertex %s\n", formatVector(v))
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", m.Name)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write STL: %w", err)
	}
	return nil
}

// WriteFile writes the model to filename as ASCII STL
func WriteFile(filename string, m *Model) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(file, m); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func formatVector(v geometry.Vector3) string {
	return strconv.FormatFloat(v.X, 'g', -1, 64) + " " +
		strconv.FormatFloat(v.Y, 'g', -1, 64) + " " +
		strconv.FormatFloat(v.Z, 'g', -1, 64)
}
