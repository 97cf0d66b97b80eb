package triangle

import (
	"errors"
	"fmt"
)

var (
	// ErrNoRuleMatched is returned when the known fields satisfy no rule
	ErrNoRuleMatched = errors.New("triangle: insufficient measurements, no rule matched")

	// ErrInfeasibleTriangle is wrapped by every InfeasibleError
	ErrInfeasibleTriangle = errors.New("triangle: measurements do not form a triangle")

	// ErrUnderdetermined is returned when a rule fixes the shape but nothing
	// supplied fixes the size, e.g. two angles and no length.
	ErrUnderdetermined = errors.New("triangle: shape known but scale is not")
)

// InfeasibleError describes why a matched rule could not produce a triangle
type InfeasibleError struct {
	Rule   string
	Reason string
}

func (e *InfeasibleError) Error() string {
	return fmt.Sprintf("triangle: rule %s: %s", e.Rule, e.Reason)
}

func (e *InfeasibleError) Unwrap() error {
	return ErrInfeasibleTriangle
}
