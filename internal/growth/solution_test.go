package growth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponentialSolution(t *testing.T) {
	p := mustParams(t, 0.5, 1000, 10, 10)
	_, sol, err := Evaluate(Exponential, p, DefaultSamples)
	require.NoError(t, err)

	assert.Equal(t, Exponential, sol.Kind)
	assert.Equal(t, "dN/dt = 0.50N", sol.Equation.String())
	assert.Equal(t, `\frac{dN}{dt} = 0.50 N`, sol.Equation.LaTeX())
	assert.Equal(t, "N(t) = 10e^(0.50t)", sol.ClosedForm.String())
	assert.Equal(t, `N(t) = 10 e^{0.50 t}`, sol.ClosedForm.LaTeX())
	require.NotNil(t, sol.Transform)
	assert.Equal(t, `\mathcal{L}\{N\} = \frac{10}{s - 0.50}`, sol.Transform.LaTeX())
	assert.Empty(t, sol.Derivation)
	assert.Nil(t, sol.Linearization)
}

func TestLogisticSolution(t *testing.T) {
	p := mustParams(t, 0.5, 1000, 10, 10)
	_, sol, err := Evaluate(Logistic, p, DefaultSamples)
	require.NoError(t, err)

	assert.Equal(t, Logistic, sol.Kind)
	assert.Equal(t, "dN/dt = 0.50(1 - N/1000)N", sol.Equation.String())
	assert.Equal(t, `\frac{dN}{dt} = 0.50 \left(1 - \frac{N}{1000}\right) N`, sol.Equation.LaTeX())
	assert.Equal(t, "N(t) = 1000/(1 + ((1000 - 10)/10)e^(-0.50t))", sol.ClosedForm.String())
	assert.Equal(t,
		`N(t) = \frac{1000}{1 + \left(\frac{1000 - 10}{10}\right) e^{-0.50 t}}`,
		sol.ClosedForm.LaTeX())
	assert.Nil(t, sol.Transform)

	require.Len(t, sol.Derivation, 3)
	assert.Equal(t, "u = 1/N", sol.Derivation[0].String())
	assert.Equal(t, "du/dt = -(1/N²)(dN/dt)", sol.Derivation[1].String())
	assert.Equal(t, "du/dt + 0.50u = 0.50/1000", sol.Derivation[2].String())
	assert.Equal(t, `\frac{du}{dt} + 0.50 u = \frac{0.50}{1000}`, sol.Derivation[2].LaTeX())

	require.NotNil(t, sol.Linearization)
	assert.Equal(t, "u = 1/N ⇒ du/dt + ru = r/K", sol.Linearization.String())
	assert.Equal(t, `u = \frac{1}{N} \Rightarrow \frac{du}{dt} + r u = \frac{r}{K}`, sol.Linearization.LaTeX())
}

func TestSolution_RoundsRate(t *testing.T) {
	p := mustParams(t, 1.234, 1000, 10, 10)
	_, sol, err := Evaluate(Exponential, p, DefaultSamples)
	require.NoError(t, err)
	assert.Equal(t, "dN/dt = 1.23N", sol.Equation.String())
}

func TestSolution_JSON(t *testing.T) {
	p := mustParams(t, 0.5, 1000, 10, 10)
	_, sol, err := Evaluate(Logistic, p, DefaultSamples)
	require.NoError(t, err)

	data, err := json.Marshal(sol)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "logistic", decoded["model"])
	assert.NotContains(t, decoded, "transform")
	assert.Len(t, decoded["derivation"], 3)

	eq, ok := decoded["equation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "eq", eq["type"])
}

func TestTheories(t *testing.T) {
	th := Theories()
	require.Len(t, th, 2)

	exp, logistic := th[0], th[1]
	assert.Equal(t, Exponential, exp.Kind)
	assert.Equal(t, "dN/dt = rN", exp.Equation.String())
	assert.Equal(t, "N(t) = N₀e^(rt)", exp.ClosedForm.String())
	assert.Equal(t, `N(t) = N_0 e^{r t}`, exp.ClosedForm.LaTeX())
	assert.Equal(t, "ℒ{N} = N₀/(s - r)", exp.Transform.String())
	assert.Nil(t, exp.Linearization)

	assert.Equal(t, Logistic, logistic.Kind)
	assert.Equal(t, "dN/dt = rN(1 - N/K)", logistic.Equation.String())
	assert.Equal(t, "N(t) = K/(1 + ((K - N₀)/N₀)e^(-rt))", logistic.ClosedForm.String())
	assert.Equal(t, `N(t) = \frac{K}{1 + \left(\frac{K - N_0}{N_0}\right) e^{-r t}}`, logistic.ClosedForm.LaTeX())
	assert.Equal(t, "u = 1/N ⇒ du/dt + ru = r/K", logistic.Linearization.String())
	assert.Nil(t, logistic.Transform)

	require.Len(t, Applications, 2)
	assert.Equal(t, "biology", Applications[0].Field)
}
