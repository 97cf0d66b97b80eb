package triangle

import (
	"errors"
	"fmt"
	"math"
)

// DefaultTolerance is the relative slack allowed when checking that
// resolved sides form a proper (non-degenerate) triangle.
const DefaultTolerance = 1e-9

// angleSumTolerance bounds |A + B + C − 180| in degrees
const angleSumTolerance = 1e-6

// Solution is a completed MeasurementSet and the rule that produced it
type Solution struct {
	Set  MeasurementSet `json:"set" yaml:"set"`
	Rule string         `json:"rule" yaml:"rule"`
}

// Solver dispatches a MeasurementSet to the first matching rule. A Solver
// holds no mutable state and is safe for concurrent use.
type Solver struct {
	rules     []Rule
	tolerance float64
	lenient   bool
}

// Option configures a Solver
type Option func(*Solver)

// WithTolerance sets the relative tolerance for the triangle inequality
func WithTolerance(tol float64) Option {
	return func(s *Solver) {
		if tol > 0 {
			s.tolerance = tol
		}
	}
}

// WithLenient reproduces the legacy arithmetic: no feasibility checks, so
// domain errors show up as NaN fields, and an unmatched input is returned
// unchanged instead of failing with ErrNoRuleMatched.
func WithLenient() Option {
	return func(s *Solver) {
		s.lenient = true
	}
}

// WithRules replaces the rule order, e.g. with a filtered Rules()
func WithRules(rules []Rule) Option {
	return func(s *Solver) {
		s.rules = append([]Rule(nil), rules...)
	}
}

// NewSolver creates a solver over the full rule catalog
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		rules:     catalog,
		tolerance: DefaultTolerance,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var defaultSolver = NewSolver()

// Solve completes a MeasurementSet with the default solver
func Solve(in MeasurementSet) (*Solution, error) {
	return defaultSolver.Solve(in)
}

// Match returns the first rule whose inputs are all known
func (s *Solver) Match(in MeasurementSet) (Rule, bool) {
	for _, r := range s.rules {
		if r.Matches(in) {
			return r, true
		}
	}
	return Rule{}, false
}

// Solve runs the first matching rule and completes the triangle. Only the
// first match is tried; a later rule is never used as a fallback.
func (s *Solver) Solve(in MeasurementSet) (*Solution, error) {
	rule, ok := s.Match(in)
	if !ok {
		if s.lenient {
			return &Solution{Set: in}, nil
		}
		return nil, ErrNoRuleMatched
	}

	d, err := rule.derive(in)
	if err != nil {
		if errors.Is(err, ErrUnderdetermined) && s.lenient {
			return &Solution{Set: in, Rule: rule.Name}, nil
		}
		return nil, fmt.Errorf("rule %s: %w", rule.Name, err)
	}

	if !s.lenient {
		if reason := s.infeasible(d); reason != "" {
			return nil, &InfeasibleError{Rule: rule.Name, Reason: reason}
		}
	}

	out := complete(d)
	if !s.lenient {
		if f, ok := out.Finite(); !ok {
			return nil, &InfeasibleError{Rule: rule.Name, Reason: fmt.Sprintf("%s is not finite", f)}
		}
	}

	return &Solution{Set: out, Rule: rule.Name}, nil
}

// infeasible explains why a derivation cannot be completed, or returns ""
func (s *Solver) infeasible(d derivation) string {
	for i, v := range d.sides {
		if !positive(v) {
			return fmt.Sprintf("side %s resolved to %v", FieldAB+Field(i), v)
		}
	}

	ab, ac, bc := d.sides[0], d.sides[1], d.sides[2]
	slack := s.tolerance * (ab + ac + bc)
	switch {
	case ab+ac-bc <= slack:
		return fmt.Sprintf("triangle inequality fails: AB + AC <= BC (%g + %g <= %g)", ab, ac, bc)
	case ab+bc-ac <= slack:
		return fmt.Sprintf("triangle inequality fails: AB + BC <= AC (%g + %g <= %g)", ab, bc, ac)
	case ac+bc-ab <= slack:
		return fmt.Sprintf("triangle inequality fails: AC + BC <= AB (%g + %g <= %g)", ac, bc, ab)
	}

	if d.hasAngles() {
		sum := 0.0
		for i, v := range d.angles {
			if !positive(v) {
				return fmt.Sprintf("%s resolved to %v", FieldAngleA+Field(i), v)
			}
			sum += v
		}
		if math.Abs(sum-180) > angleSumTolerance {
			return fmt.Sprintf("angles sum to %v", sum)
		}
	}

	if d.area != 0 && !positive(d.area) {
		return fmt.Sprintf("area resolved to %v", d.area)
	}
	return ""
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
