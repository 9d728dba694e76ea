package viz

import (
	"fmt"
	"math"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/growthlab/internal/growth"
)

var kindColors = map[growth.Kind]asciigraph.AnsiColor{
	growth.Exponential: asciigraph.Blue,
	growth.Logistic:    asciigraph.Red,
}

const cappedNote = " (overflowing samples capped)"

// PlotTrajectory draws one model's population against time.
func PlotTrajectory(kind growth.Kind, traj *growth.Trajectory, width, height int) string {
	values, capped := plottable(traj.Values)
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(kindColors[kind]),
		asciigraph.Caption(caption(fmt.Sprintf("%s growth, N(t) for t in [0, %g]", kind, traj.Final().T), capped)),
	)
}

// PlotLogistic draws the logistic curve with its carrying capacity as a
// flat reference line.
func PlotLogistic(traj *growth.Trajectory, capacity float64, width, height int) string {
	values, capped := plottable(traj.Values)
	return asciigraph.PlotMany([][]float64{values, flat(capacity, traj.Len())},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(kindColors[growth.Logistic], asciigraph.Gray),
		asciigraph.SeriesLegends("logistic", fmt.Sprintf("K = %g", capacity)),
		asciigraph.Caption(caption(fmt.Sprintf("logistic growth, N(t) for t in [0, %g]", traj.Final().T), capped)),
	)
}

// PlotComparison overlays both models and the carrying capacity.
func PlotComparison(cmp *growth.Comparison, width, height int) string {
	n := cmp.Exponential.Len()
	exp, expCapped := plottable(cmp.Exponential.Values)
	logistic, logCapped := plottable(cmp.Logistic.Values)
	return asciigraph.PlotMany(
		[][]float64{exp, logistic, flat(cmp.CarryingCapacity, n)},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(kindColors[growth.Exponential], kindColors[growth.Logistic], asciigraph.Gray),
		asciigraph.SeriesLegends("exponential", "logistic", fmt.Sprintf("K = %g", cmp.CarryingCapacity)),
		asciigraph.Caption(caption("model comparison", expCapped || logCapped)),
	)
}

// plottable returns a copy of values that asciigraph can scale: +Inf and
// NaN become the largest finite sample, -Inf the smallest. capped reports
// whether any sample was replaced.
func plottable(values []float64) (out []float64, capped bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			lo, hi = math.Min(lo, v), math.Max(hi, v)
		}
	}
	if math.IsInf(hi, -1) {
		lo, hi = 0, 0
	}

	out = make([]float64, len(values))
	for i, v := range values {
		switch {
		case math.IsInf(v, -1):
			out[i], capped = lo, true
		case math.IsInf(v, 1) || math.IsNaN(v):
			out[i], capped = hi, true
		default:
			out[i] = v
		}
	}
	return out, capped
}

func caption(text string, capped bool) string {
	if capped {
		return text + cappedNote
	}
	return text
}

func flat(v float64, n int) []float64 {
	line := make([]float64, n)
	for i := range line {
		line[i] = v
	}
	return line
}
