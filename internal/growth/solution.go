package growth

import "github.com/san-kum/growthlab/internal/formula"

// RatePrecision is the number of decimals shown for the growth rate in
// formulas.
const RatePrecision = 2

// Solution describes a model analytically: its differential equation,
// its exact solution and how that solution is reached.
type Solution struct {
	Kind       Kind         `json:"-"`
	Model      string       `json:"model"`
	Equation   formula.Expr `json:"equation"`
	ClosedForm formula.Expr `json:"closed_form"`
	// Transform is the Laplace image of N; nil when the model is nonlinear.
	Transform formula.Expr `json:"transform,omitempty"`
	// Derivation lists the substitution steps that linearise the equation.
	// Empty for the exponential model.
	Derivation []formula.Expr `json:"derivation"`
	// Linearization condenses Derivation into one general implication.
	Linearization formula.Expr `json:"linearization,omitempty"`
}

var (
	symN = formula.Symbol("N")
	symT = formula.Symbol("t")
	symU = formula.Symbol("u")
	symS = formula.Symbol("s")

	symR  = formula.Symbol("r")
	symK  = formula.Symbol("K")
	symN0 = formula.SymbolTeX("N₀", "N_0")
)

func rate(p Params) formula.Num {
	return formula.Fixed(p.GrowthRate, RatePrecision)
}

func exponentialSolution(p Params) *Solution {
	r, n0 := rate(p), formula.Number(p.InitialPopulation)
	return &Solution{
		Kind:       Exponential,
		Model:      Exponential.String(),
		Equation:   formula.Equals(formula.D(symN, symT), formula.Mul(r, symN)),
		ClosedForm: formula.Equals(formula.Apply(symN, symT), formula.Mul(n0, formula.E(formula.Mul(r, symT)))),
		Transform:  formula.Equals(formula.Laplace(symN), formula.Div(n0, formula.Sub(symS, r))),
		Derivation: []formula.Expr{},
	}
}

func logisticSolution(p Params) *Solution {
	r := rate(p)
	k, n0 := formula.Number(p.CarryingCapacity), formula.Number(p.InitialPopulation)
	one := formula.Number(1)

	ratio := formula.Paren(formula.Div(formula.Sub(k, n0), n0))
	decay := formula.E(formula.Negate(formula.Mul(r, symT)))

	return &Solution{
		Kind:  Logistic,
		Model: Logistic.String(),
		Equation: formula.Equals(
			formula.D(symN, symT),
			formula.Mul(r, formula.Sub(one, formula.Div(symN, k)), symN),
		),
		ClosedForm: formula.Equals(
			formula.Apply(symN, symT),
			formula.Div(k, formula.Add(one, formula.Mul(ratio, decay))),
		),
		Derivation: []formula.Expr{
			formula.Equals(symU, formula.Div(one, symN)),
			formula.Equals(
				formula.D(symU, symT),
				formula.Negate(formula.Mul(
					formula.Paren(formula.Div(one, formula.Pow(symN, formula.Number(2)))),
					formula.Paren(formula.D(symN, symT)),
				)),
			),
			formula.Equals(
				formula.Add(formula.D(symU, symT), formula.Mul(r, symU)),
				formula.Div(r, k),
			),
		},
		Linearization: linearization(symR, symK),
	}
}

// linearization is u = 1/N ⇒ du/dt + ru = r/K.
func linearization(r, k formula.Expr) formula.Expr {
	u, one := symU, formula.Number(1)
	return formula.Implies(
		formula.Equals(u, formula.Div(one, symN)),
		formula.Equals(formula.Add(formula.D(u, symT), formula.Mul(r, u)), formula.Div(r, k)),
	)
}
