// Package viz renders growth models in the terminal.
//
// It is a thin front end over package growth and holds no model state of
// its own:
//
//   - [PlotTrajectory], [PlotComparison]: asciigraph line charts
//   - [RenderSolution], [RenderSummary]: styled formula and landmark panels
//   - [Dashboard]: a Bubble Tea slider dashboard that re-evaluates the
//     models on every parameter change
//
// # Key Bindings
//
//	j/k   - Select slider
//	h/l   - Move slider one step
//	H/L   - Move slider five steps
//	Tab   - Cycle exponential / logistic / comparison views
//	r     - Reset sliders to defaults
//	q     - Quit
package viz
