// Package growth evaluates the exponential and logistic population models.
//
// The package is the computational core of growthlab. Given a validated
// parameter set it produces:
//
//   - [Trajectory]: the closed-form solution sampled over [0, T]
//   - [Solution]: the differential equation, its exact solution and the
//     derivation steps, as [formula.Expr] trees rather than rendered text
//   - [Comparison]: both trajectories side by side with the asymptote K
//
// Solutions are evaluated analytically; nothing here integrates an ODE.
//
// # Example
//
//	p, err := growth.NewParams(0.5, 1000, 10, 10)
//	if err != nil {
//		return err
//	}
//	traj, sol, err := growth.Evaluate(growth.Logistic, p, growth.DefaultSamples)
//
// # Thread Safety
//
// Every function is pure and holds no state, so concurrent calls with
// different arguments need no locking.
package growth
