package growth

import "gonum.org/v1/gonum/floats"

// DefaultSamples is the number of points in a trajectory unless the
// caller asks for another resolution.
const DefaultSamples = 200

// SampleTimes returns n evenly spaced instants covering [0, horizon],
// both endpoints included.
func SampleTimes(horizon float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, &ParameterError{Field: "sample count", Value: float64(n), Reason: "must be at least 2"}
	}
	if err := checkPositive("time horizon", horizon); err != nil {
		return nil, err
	}
	times := floats.Span(make([]float64, n), 0, horizon)
	times[n-1] = horizon
	return times, nil
}
