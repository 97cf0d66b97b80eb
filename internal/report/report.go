// Package report renders solved triangles as a text table, JSON or YAML.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/gotri/pkg/geometry"
	"github.com/philipparndt/gotri/pkg/triangle"
)

// Options selects the output format and number style
type Options struct {
	Format    string // text, json or yaml
	Precision int    // fraction digits for text output
	Locale    string // BCP 47 tag, e.g. "de-CH"
	Ratios    bool   // include sin/cos/tan/cot of each angle
	Vertices  bool   // include a planar placement of the triangle
}

// Result is one solved (or failed) request
type Result struct {
	Name     string
	Input    triangle.MeasurementSet
	Solution *triangle.Solution
	Err      error
}

// Write renders results in the configured format
func Write(w io.Writer, results []Result, opts Options) error {
	switch opts.Format {
	case "", "text":
		return writeText(w, results, opts)
	case "json", "yaml":
		return encode(w, documents(results, opts), opts.Format)
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
}

func encode(w io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// Number is a float that encodes NaN and ±Inf as JSON strings
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte(strconv.Quote(strconv.FormatFloat(f, 'g', -1, 64))), nil
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

type ratiosDoc struct {
	Angle string `json:"angle" yaml:"angle"`
	Sin   Number `json:"sin" yaml:"sin"`
	Cos   Number `json:"cos" yaml:"cos"`
	Tan   Number `json:"tan" yaml:"tan"`
	Cot   Number `json:"cot" yaml:"cot"`
}

type vertexDoc struct {
	X Number `json:"x" yaml:"x"`
	Y Number `json:"y" yaml:"y"`
}

type document struct {
	Name         string               `json:"name" yaml:"name"`
	Rule         string               `json:"rule,omitempty" yaml:"rule,omitempty"`
	Error        string               `json:"error,omitempty" yaml:"error,omitempty"`
	Measurements map[string]Number    `json:"measurements,omitempty" yaml:"measurements,omitempty"`
	Ratios       []ratiosDoc          `json:"ratios,omitempty" yaml:"ratios,omitempty"`
	Vertices     map[string]vertexDoc `json:"vertices,omitempty" yaml:"vertices,omitempty"`
}

func documents(results []Result, opts Options) []document {
	docs := make([]document, 0, len(results))
	for _, r := range results {
		d := document{Name: r.Name}
		if r.Err != nil {
			d.Error = r.Err.Error()
			docs = append(docs, d)
			continue
		}

		set := r.Solution.Set
		d.Rule = r.Solution.Rule
		d.Measurements = make(map[string]Number, len(triangle.AllFields()))
		for _, f := range triangle.AllFields() {
			d.Measurements[f.String()] = Number(set.Get(f))
		}

		if opts.Ratios {
			for i, ratios := range triangle.AngleRatios(set) {
				d.Ratios = append(d.Ratios, ratiosDoc{
					Angle: angleNames[i],
					Sin:   Number(ratios.Sin),
					Cos:   Number(ratios.Cos),
					Tan:   Number(ratios.Tan),
					Cot:   Number(ratios.Cot),
				})
			}
		}

		if opts.Vertices {
			if placed, err := geometry.PlaceSides(set.AB, set.AC, set.BC); err == nil {
				d.Vertices = make(map[string]vertexDoc, 3)
				for i, name := range vertexNames {
					v := placed.Vertex(i)
					d.Vertices[name] = vertexDoc{X: Number(v.X), Y: Number(v.Y)}
				}
			}
		}

		docs = append(docs, d)
	}
	return docs
}

var (
	angleNames  = [3]string{"angleA", "angleB", "angleC"}
	vertexNames = [3]string{"A", "B", "C"}
)

func writeText(w io.Writer, results []Result, opts Options) error {
	p, err := printer(opts.Locale)
	if err != nil {
		return err
	}
	format := func(v float64) string {
		return p.Sprint(number.Decimal(v, number.Scale(opts.Precision)))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(tw)
		}

		if r.Err != nil {
			fmt.Fprintf(tw, "%s: error: %v\n", r.Name, r.Err)
			continue
		}

		set := r.Solution.Set
		if r.Solution.Rule != "" {
			fmt.Fprintf(tw, "%s (rule %s)\n", r.Name, r.Solution.Rule)
		} else {
			fmt.Fprintf(tw, "%s (no rule applied)\n", r.Name)
		}

		for _, f := range triangle.AllFields() {
			marker := ""
			if r.Input.Known(f) {
				marker = "*"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\t\n", f, format(set.Get(f)), marker)
		}

		if opts.Ratios {
			fmt.Fprintf(tw, "\n  \tsin\tcos\ttan\tcot\t\n")
			for i, ratios := range triangle.AngleRatios(set) {
				fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\t%s\t\n", angleNames[i],
					format(ratios.Sin), format(ratios.Cos), format(ratios.Tan), format(ratios.Cot))
			}
		}

		if opts.Vertices {
			if placed, err := geometry.PlaceSides(set.AB, set.AC, set.BC); err == nil {
				fmt.Fprintln(tw)
				for i, name := range vertexNames {
					v := placed.Vertex(i)
					fmt.Fprintf(tw, "  %s\t(%s, %s)\t\n", name, format(v.X), format(v.Y))
				}
			}
		}
	}
	return tw.Flush()
}

func printer(locale string) (*message.Printer, error) {
	if locale == "" {
		locale = "en"
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return message.NewPrinter(tag), nil
}
