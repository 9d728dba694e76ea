// Package formula models closed-form mathematics as structured data.
//
// Every node implements [Expr], which renders itself either as LaTeX
// (for typesetting front ends) or as plain unicode text (for terminals).
// Nodes also marshal to a tagged JSON tree so that a renderer in another
// process can typeset them without re-deriving the mathematics.
//
// # Example
//
//	n, t := formula.Symbol("N"), formula.Symbol("t")
//	ode := formula.Equals(formula.D(n, t), formula.Mul(formula.Fixed(0.5, 2), n))
//	ode.LaTeX()  // \frac{dN}{dt} = 0.50 N
//	ode.String() // dN/dt = 0.50N
package formula
