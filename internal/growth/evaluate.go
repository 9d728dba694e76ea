package growth

// Evaluate samples the closed-form solution of kind over [0, TimeHorizon]
// and returns it with the model's analytic description.
//
// p is re-validated so that hand-built parameter sets cannot reach the
// formulas; samples must be at least 2.
func Evaluate(kind Kind, p Params, samples int) (*Trajectory, *Solution, error) {
	m, err := ModelFor(kind)
	if err != nil {
		return nil, nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}

	times, err := SampleTimes(p.TimeHorizon, samples)
	if err != nil {
		return nil, nil, err
	}

	values := make([]float64, len(times))
	for i, t := range times {
		values[i] = m.Population(p, t)
	}

	return &Trajectory{Times: times, Values: values}, m.Solution(p), nil
}

// Comparison holds both models evaluated on the same parameter set.
type Comparison struct {
	Exponential      *Trajectory `json:"exponential"`
	Logistic         *Trajectory `json:"logistic"`
	CarryingCapacity float64     `json:"carrying_capacity"`
}

// Compare evaluates both models for an overlay view. The carrying capacity
// is returned so the caller can draw the logistic asymptote.
func Compare(p Params, samples int) (*Comparison, error) {
	exp, _, err := Evaluate(Exponential, p, samples)
	if err != nil {
		return nil, err
	}
	logistic, _, err := Evaluate(Logistic, p, samples)
	if err != nil {
		return nil, err
	}
	return &Comparison{
		Exponential:      exp,
		Logistic:         logistic,
		CarryingCapacity: p.CarryingCapacity,
	}, nil
}
