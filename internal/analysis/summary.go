package analysis

import (
	"math"

	"github.com/san-kum/growthlab/internal/growth"
)

// Direction is the monotonic trend of a sampled curve.
type Direction int

const (
	Flat Direction = iota
	Increasing
	Decreasing
	Mixed
)

func (d Direction) String() string {
	switch d {
	case Flat:
		return "flat"
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	}
	return "mixed"
}

// Monotonicity classifies values. Equal neighbours do not break a trend,
// so a logistic curve that saturates at K still counts as increasing.
func Monotonicity(values []float64) Direction {
	up, down := false, false
	for i := 1; i < len(values); i++ {
		switch {
		case values[i] > values[i-1]:
			up = true
		case values[i] < values[i-1]:
			down = true
		}
	}
	switch {
	case up && down:
		return Mixed
	case up:
		return Increasing
	case down:
		return Decreasing
	}
	return Flat
}

// DoublingTime is the time for an exponential population to double.
func DoublingTime(p growth.Params) float64 {
	return math.Ln2 / p.GrowthRate
}

// Inflection returns the instant of fastest logistic growth, where N = K/2.
// It exists only when the population starts below half the capacity.
func Inflection(p growth.Params) (growth.Point, bool) {
	k, n0 := p.CarryingCapacity, p.InitialPopulation
	if n0 >= k/2 {
		return growth.Point{}, false
	}
	t := math.Log((k-n0)/n0) / p.GrowthRate
	return growth.Point{T: t, N: k / 2}, true
}

// CapacityCrossing returns when the exponential model reaches K.
func CapacityCrossing(p growth.Params) (float64, bool) {
	k, n0 := p.CarryingCapacity, p.InitialPopulation
	if n0 >= k {
		return 0, false
	}
	return math.Log(k/n0) / p.GrowthRate, true
}

// Summary condenses one trajectory.
type Summary struct {
	Model     string    `json:"model"`
	Initial   float64   `json:"initial"`
	Final     float64   `json:"final"`
	Peak      float64   `json:"peak"`
	Direction Direction `json:"-"`
	Trend     string    `json:"trend"`

	// Exponential model only.
	DoublingTime float64 `json:"doubling_time,omitempty"`

	// Logistic model only. Saturated is set when N0 >= K, so the curve
	// never rises.
	Saturated     bool          `json:"saturated,omitempty"`
	CapacityGap   float64       `json:"capacity_gap,omitempty"`
	RelativeGap   float64       `json:"relative_gap,omitempty"`
	Inflection    *growth.Point `json:"inflection,omitempty"`
	InflectionHit bool          `json:"inflection_in_range,omitempty"`

	// CapacityCrossing is when the exponential model overtakes K, if it
	// does within the time horizon.
	CapacityCrossing *float64 `json:"capacity_crossing,omitempty"`
}

// Summarize computes the landmarks of traj, which must have been evaluated
// for kind with p.
func Summarize(kind growth.Kind, p growth.Params, traj *growth.Trajectory) Summary {
	s := Summary{
		Model:   kind.String(),
		Initial: traj.Initial().N,
		Final:   traj.Final().N,
		Peak:    traj.Values[0],
	}
	for _, v := range traj.Values {
		if v > s.Peak {
			s.Peak = v
		}
	}
	s.Direction = Monotonicity(traj.Values)
	s.Trend = s.Direction.String()

	switch kind {
	case growth.Exponential:
		s.DoublingTime = DoublingTime(p)
		if t, ok := CapacityCrossing(p); ok && t <= p.TimeHorizon {
			s.CapacityCrossing = &t
		}
	case growth.Logistic:
		s.Saturated = p.Saturated()
		s.CapacityGap = math.Abs(p.CarryingCapacity - s.Final)
		s.RelativeGap = s.CapacityGap / p.CarryingCapacity
		if pt, ok := Inflection(p); ok {
			s.Inflection = &pt
			s.InflectionHit = pt.T <= p.TimeHorizon
		}
	}
	return s
}
