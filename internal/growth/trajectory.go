package growth

import "math"

// Point is one sample of a trajectory.
type Point struct {
	T float64 `json:"t"`
	N float64 `json:"n"`
}

// Trajectory is a population sampled at increasing instants.
// Values[i] is the population at Times[i].
type Trajectory struct {
	Times  []float64 `json:"times"`
	Values []float64 `json:"values"`
}

func (tr *Trajectory) Len() int {
	return len(tr.Times)
}

// Initial returns the first sample.
func (tr *Trajectory) Initial() Point {
	return Point{T: tr.Times[0], N: tr.Values[0]}
}

// Final returns the sample at the time horizon.
func (tr *Trajectory) Final() Point {
	last := len(tr.Times) - 1
	return Point{T: tr.Times[last], N: tr.Values[last]}
}

func (tr *Trajectory) Points() []Point {
	pts := make([]Point, len(tr.Times))
	for i := range tr.Times {
		pts[i] = Point{T: tr.Times[i], N: tr.Values[i]}
	}
	return pts
}

// CheckFinite returns an *OverflowError for the first sample that is not a
// finite number.
func (tr *Trajectory) CheckFinite() error {
	for i, v := range tr.Values {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return &OverflowError{T: tr.Times[i], N: v}
		}
	}
	return nil
}
