package growth

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is the single failure kind of the core: a
// non-positive, non-finite or out-of-range parameter, or too few samples.
var ErrInvalidParameter = errors.New("growth: invalid parameter")

// ParameterError names the offending field.
type ParameterError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("growth: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}

// OverflowError reports a trajectory whose population left the float64
// range. The parameters are valid but too large to sample exactly.
type OverflowError struct {
	T float64
	N float64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("growth: population overflows at t = %g (N = %v): reduce the rate or the time horizon", e.T, e.N)
}

func (e *OverflowError) Unwrap() error {
	return ErrInvalidParameter
}
