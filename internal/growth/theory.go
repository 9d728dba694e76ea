package growth

import "github.com/san-kum/growthlab/internal/formula"

// Theory states a model in general form, with r, K and N₀ left symbolic.
type Theory struct {
	Kind       Kind         `json:"-"`
	Model      string       `json:"model"`
	Summary    string       `json:"summary"`
	Equation   formula.Expr `json:"equation"`
	ClosedForm formula.Expr `json:"closed_form"`
	// Transform is set for the exponential model only.
	Transform formula.Expr `json:"transform,omitempty"`
	// Linearization is set for the logistic model only.
	Linearization formula.Expr `json:"linearization,omitempty"`
}

// Application is a field where the models are used.
type Application struct {
	Field    string `json:"field"`
	Examples string `json:"examples"`
}

// Applications lists where exponential and logistic growth show up.
var Applications = []Application{
	{Field: "biology", Examples: "bacterial cultures, animal populations"},
	{Field: "economics", Examples: "market models with limited resources"},
}

// Theories returns the general form of every model in display order.
func Theories() []Theory {
	one := formula.Number(1)
	growthLaw := formula.Apply(symN, symT)

	return []Theory{
		{
			Kind:       Exponential,
			Model:      Exponential.String(),
			Summary:    "growth proportional to the current population, without limit",
			Equation:   formula.Equals(formula.D(symN, symT), formula.Mul(symR, symN)),
			ClosedForm: formula.Equals(growthLaw, formula.Mul(symN0, formula.E(formula.Mul(symR, symT)))),
			Transform:  formula.Equals(formula.Laplace(symN), formula.Div(symN0, formula.Sub(symS, symR))),
		},
		{
			Kind:     Logistic,
			Model:    Logistic.String(),
			Summary:  "nonlinear growth that slows as the population approaches the carrying capacity K",
			Equation: formula.Equals(formula.D(symN, symT), formula.Mul(symR, symN, formula.Sub(one, formula.Div(symN, symK)))),
			ClosedForm: formula.Equals(growthLaw, formula.Div(symK, formula.Add(one, formula.Mul(
				formula.Paren(formula.Div(formula.Sub(symK, symN0), symN0)),
				formula.E(formula.Negate(formula.Mul(symR, symT))),
			)))),
			Linearization: linearization(symR, symK),
		},
	}
}
