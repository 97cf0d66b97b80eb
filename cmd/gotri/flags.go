package main

import (
	"github.com/spf13/pflag"

	"github.com/philipparndt/gotri/internal/input"
	"github.com/philipparndt/gotri/pkg/triangle"
)

// measurementFlags is one string flag per input field (--AB, --angleA, ...).
// Values stay text until parse so a bad number is reported per field.
type measurementFlags struct {
	fs     *pflag.FlagSet
	values map[triangle.Field]*string
}

func addMeasurementFlags(fs *pflag.FlagSet) *measurementFlags {
	mf := &measurementFlags{
		fs:     fs,
		values: make(map[triangle.Field]*string),
	}
	for _, f := range triangle.InputFields() {
		mf.values[f] = fs.String(f.String(), "", "Known "+describe(f))
	}
	return mf
}

// parse merges the flags with "field=value" arguments; arguments win
func (mf *measurementFlags) parse(args []string) (triangle.MeasurementSet, error) {
	raw := make(map[triangle.Field]string)
	for f, v := range mf.values {
		if mf.fs.Changed(f.String()) {
			raw[f] = *v
		}
	}

	fromArgs, err := input.ParseArgs(args)
	if err != nil {
		return triangle.MeasurementSet{}, err
	}
	for f, v := range fromArgs {
		raw[f] = v
	}

	return input.Parse(raw)
}

func describe(f triangle.Field) string {
	switch f {
	case triangle.FieldAB, triangle.FieldAC, triangle.FieldBC:
		return "side " + f.String()
	case triangle.FieldAngleA, triangle.FieldAngleB, triangle.FieldAngleC:
		return "angle at " + f.String()[len("angle"):] + " in degrees"
	case triangle.FieldMedianAM, triangle.FieldMedianBM, triangle.FieldMedianCM:
		return "median from " + f.String()[len("median"):len("median")+1]
	case triangle.FieldBisectorA, triangle.FieldBisectorB, triangle.FieldBisectorC:
		return "angle bisector from " + f.String()[len("bisector"):]
	case triangle.FieldHeightA, triangle.FieldHeightB, triangle.FieldHeightC:
		return "altitude from " + f.String()[len("height"):]
	default:
		return f.String()
	}
}
