package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"golang.org/x/text/number"

	"github.com/philipparndt/gotri/pkg/triangle"
)

// WriteRatios prints sin, cos, tan and cot for each angle in degrees
func WriteRatios(w io.Writer, angles []float64, opts Options) error {
	switch opts.Format {
	case "", "text":
	default:
		docs := make([]ratiosDoc, 0, len(angles))
		for _, deg := range angles {
			r := triangle.RatiosOf(deg)
			docs = append(docs, ratiosDoc{
				Angle: fmt.Sprint(deg),
				Sin:   Number(r.Sin),
				Cos:   Number(r.Cos),
				Tan:   Number(r.Tan),
				Cot:   Number(r.Cot),
			})
		}
		return encode(w, docs, opts.Format)
	}

	p, err := printer(opts.Locale)
	if err != nil {
		return err
	}
	format := func(v float64) string {
		return p.Sprint(number.Decimal(v, number.Scale(opts.Precision)))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "angle\tsin\tcos\ttan\tcot\t")
	for _, deg := range angles {
		r := triangle.RatiosOf(deg)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n", format(deg),
			format(r.Sin), format(r.Cos), format(r.Tan), format(r.Cot))
	}
	return tw.Flush()
}
