// Package analysis derives summary quantities from growth trajectories.
//
// The package complements the closed forms in package growth with the
// landmarks a reader looks for on a growth curve:
//
//   - [Monotonicity]: whether a sampled curve rises, falls or is flat
//   - [DoublingTime]: ln 2 / r for unconstrained growth
//   - [Inflection]: where logistic growth is fastest (N = K/2)
//   - [CapacityCrossing]: when unconstrained growth overtakes K
//   - [Summarize]: all of the above for one evaluated trajectory
package analysis
