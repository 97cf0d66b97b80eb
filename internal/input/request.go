package input

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gotri/pkg/triangle"
)

// Request is one named triangle in a request file
type Request struct {
	Name string
	Set  triangle.MeasurementSet
}

// RequestFile is the document read by batch and watch:
//
//	triangles:
//	  - name: right
//	    AB: 3
//	    AC: 4
//	    BC: 5
type RequestFile struct {
	Triangles []Request `yaml:"triangles"`
}

// UnmarshalYAML reads a flat mapping of field names to values. Values go
// through ParseValue so a bad number fails the same way as form input.
func (r *Request) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: triangle must be a mapping", node.Line)
	}

	raw := make(map[triangle.Field]string)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if value.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: %s must be a scalar", value.Line, key.Value)
		}

		if key.Value == "name" {
			r.Name = value.Value
			continue
		}

		f, err := triangle.ParseField(key.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", key.Line, err)
		}
		if _, dup := raw[f]; dup {
			return fmt.Errorf("line %d: %s given twice", key.Line, f)
		}
		raw[f] = value.Value
	}

	m, err := Parse(raw)
	if err != nil {
		return err
	}
	r.Set = m
	return nil
}

// ReadRequests decodes a request file from r
func ReadRequests(r io.Reader) ([]Request, error) {
	var file RequestFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, err
	}

	for i := range file.Triangles {
		if file.Triangles[i].Name == "" {
			file.Triangles[i].Name = fmt.Sprintf("#%d", i+1)
		}
	}
	return file.Triangles, nil
}

// LoadRequests reads the request file at path
func LoadRequests(path string) ([]Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open request file: %w", err)
	}
	defer f.Close()

	reqs, err := ReadRequests(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return reqs, nil
}
