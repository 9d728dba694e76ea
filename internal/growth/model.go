package growth

import "math"

// Model is a closed-form growth law.
type Model interface {
	Kind() Kind
	// Population evaluates N(t) for a validated parameter set.
	Population(p Params, t float64) float64
	Solution(p Params) *Solution
}

// ExponentialModel is unconstrained growth, dN/dt = rN.
type ExponentialModel struct{}

func (ExponentialModel) Kind() Kind { return Exponential }

func (ExponentialModel) Population(p Params, t float64) float64 {
	return p.InitialPopulation * math.Exp(p.GrowthRate*t)
}

func (ExponentialModel) Solution(p Params) *Solution {
	return exponentialSolution(p)
}

// LogisticModel is resource-limited growth, dN/dt = r(1 - N/K)N.
type LogisticModel struct{}

func (LogisticModel) Kind() Kind { return Logistic }

// Population is finite for every t because NewParams rejects N0 <= 0.
func (LogisticModel) Population(p Params, t float64) float64 {
	k, n0, r := p.CarryingCapacity, p.InitialPopulation, p.GrowthRate
	return k / (1 + ((k-n0)/n0)*math.Exp(-r*t))
}

func (LogisticModel) Solution(p Params) *Solution {
	return logisticSolution(p)
}

var registry = map[Kind]func() Model{
	Exponential: func() Model { return ExponentialModel{} },
	Logistic:    func() Model { return LogisticModel{} },
}

// ModelFor returns the model implementing kind.
func ModelFor(kind Kind) (Model, error) {
	fn, ok := registry[kind]
	if !ok {
		return nil, &ParameterError{Field: "model kind", Value: float64(kind), Reason: "unknown model"}
	}
	return fn(), nil
}
