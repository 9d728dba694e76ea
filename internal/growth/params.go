package growth

import "math"

// Params is the parameter set shared by both models. It is a value type;
// build it with NewParams so the invariants hold.
type Params struct {
	GrowthRate        float64 `json:"growth_rate"`
	CarryingCapacity  float64 `json:"carrying_capacity"`
	InitialPopulation float64 `json:"initial_population"`
	TimeHorizon       float64 `json:"time_horizon"`
}

// NewParams validates and returns a parameter set. All four values must be
// finite and strictly positive.
//
// initial > capacity is accepted: the logistic curve then decays toward
// the capacity from above instead of rising to it.
//
// Values are checked for sign and finiteness only, so float64 limits apply
// downstream:
//   - an initial population below the smallest normal float64 (about
//     2.2e-308) overflows (K-N0)/N0, and the logistic N(0) evaluates to 0
//     instead of N0
//   - a time horizon that small makes consecutive sample times collapse,
//     so they are no longer strictly increasing
//   - a large rate·horizon overflows the exponential; Trajectory.CheckFinite
//     reports it as an *OverflowError
func NewParams(rate, capacity, initial, horizon float64) (Params, error) {
	p := Params{
		GrowthRate:        rate,
		CarryingCapacity:  capacity,
		InitialPopulation: initial,
		TimeHorizon:       horizon,
	}
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}

// Validate reports the first field that is non-positive or non-finite.
func (p Params) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"growth rate", p.GrowthRate},
		{"carrying capacity", p.CarryingCapacity},
		{"initial population", p.InitialPopulation},
		{"time horizon", p.TimeHorizon},
	}
	for _, f := range fields {
		if err := checkPositive(f.name, f.value); err != nil {
			return err
		}
	}
	return nil
}

// Saturated reports whether the population starts at or above capacity.
func (p Params) Saturated() bool {
	return p.InitialPopulation >= p.CarryingCapacity
}

func checkPositive(name string, v float64) error {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return &ParameterError{Field: name, Value: v, Reason: "must be finite"}
	case v <= 0:
		return &ParameterError{Field: name, Value: v, Reason: "must be positive"}
	}
	return nil
}
