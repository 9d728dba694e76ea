package config

import "math"

// Range is one dashboard slider: its bounds, step and starting value.
type Range struct {
	Name    string
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

var (
	RateRange     = Range{Name: "rate", Min: 0.1, Max: 2.0, Step: 0.05, Default: DefaultRate}
	CapacityRange = Range{Name: "capacity", Min: 100, Max: 5000, Step: 100, Default: DefaultCapacity}
	InitialRange  = Range{Name: "initial", Min: 1, Max: 100, Step: 1, Default: DefaultInitial}
	HorizonRange  = Range{Name: "horizon", Min: 5, Max: 50, Step: 1, Default: DefaultHorizon}
)

// Ranges lists the sliders in display order.
func Ranges() []Range {
	return []Range{RateRange, CapacityRange, InitialRange, HorizonRange}
}

func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(r.Max, v))
}

// Nudge moves v by n slider steps, snapping to the step grid and staying
// within bounds.
func (r Range) Nudge(v float64, n int) float64 {
	steps := math.Round((v-r.Min)/r.Step) + float64(n)
	snapped := r.Min + steps*r.Step
	// drop accumulated binary noise such as 0.5000000000000001
	snapped = math.Round(snapped*1e9) / 1e9
	return r.Clamp(snapped)
}
