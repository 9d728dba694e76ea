package export

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// SVGOptions sizes the chart. Capacity, when positive, is drawn as a
// dashed reference line.
type SVGOptions struct {
	Width    int
	Height   int
	Capacity float64
}

var svgColors = []string{"#3b82f6", "#ef4444", "#22c55e", "#eab308"}

// headroom keeps the top of the tallest curve off the edge.
const headroom = 1 / 1.05

// WriteSVG draws every series as a polyline on shared axes. A series that
// fails CheckFinite is rejected: a linear axis spanning an overflowing
// curve would flatten every other series onto the bottom edge.
func WriteSVG(w io.Writer, opts SVGOptions, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("no data to export")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid svg size %dx%d", opts.Width, opts.Height)
	}

	minT, maxT := math.Inf(1), math.Inf(-1)
	minN, maxN := 0.0, math.Inf(-1)
	for _, s := range series {
		if s.Trajectory.Len() < 2 {
			return fmt.Errorf("series %s has fewer than 2 samples", s.Name)
		}
		if err := s.Trajectory.CheckFinite(); err != nil {
			return fmt.Errorf("series %s: %w", s.Name, err)
		}
		for _, pt := range s.Trajectory.Points() {
			minT, maxT = math.Min(minT, pt.T), math.Max(maxT, pt.T)
			maxN = math.Max(maxN, pt.N)
		}
	}
	if opts.Capacity > 0 {
		maxN = math.Max(maxN, opts.Capacity)
	}
	spanT, spanN := maxT-minT, maxN-minN
	if spanT == 0 {
		spanT = 1
	}
	if spanN == 0 {
		spanN = 1
	}

	width, height := float64(opts.Width), float64(opts.Height)
	x := func(t float64) float64 { return (t - minT) / spanT * width }
	y := func(n float64) float64 { return height - (n-minN)/spanN*height*headroom }

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, opts.Width, opts.Height, opts.Width, opts.Height)

	if opts.Capacity > 0 {
		fmt.Fprintf(&sb, `<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#888899" stroke-dasharray="6 4"><title>K = %g</title></line>
`, y(opts.Capacity), opts.Width, y(opts.Capacity), opts.Capacity)
	}

	for i, s := range series {
		fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="`, svgColors[i%len(svgColors)])
		for j, pt := range s.Trajectory.Points() {
			cmd := " L"
			if j == 0 {
				cmd = "M"
			}
			fmt.Fprintf(&sb, "%s%.1f,%.1f", cmd, x(pt.T), y(pt.N))
		}
		fmt.Fprintf(&sb, `"><title>%s</title></path>
`, s.Name)
	}

	sb.WriteString("</svg>\n")
	_, err := io.WriteString(w, sb.String())
	return err
}
