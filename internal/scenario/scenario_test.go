package scenario

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/san-kum/growthlab/internal/analysis"
	"github.com/san-kum/growthlab/internal/growth"
)

const sampleScenario = `
name: islands
description: two island populations and a rate sweep
steps:
  - name: small island
    growth_rate: 0.5
    carrying_capacity: 200
    initial_population: 10
    time_horizon: 20
  - name: overcrowded
    growth_rate: 0.8
    carrying_capacity: 100
    initial_population: 300
    time_horizon: 20
sweep:
  param: growth_rate
  min: 0.5
  max: 1.5
  count: 3
  base:
    carrying_capacity: 1000
    initial_population: 10
    time_horizon: 10
`

func writeScenario(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadAndRun(t *testing.T) {
	sc, err := Load(writeScenario(t, sampleScenario))
	require.NoError(t, err)
	assert.Equal(t, "islands", sc.Name)
	require.Len(t, sc.Steps, 2)
	require.NotNil(t, sc.Sweep)

	outcomes, err := Run(context.Background(), sc, growth.DefaultSamples, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, outcomes, 5)

	assert.Equal(t, "small island", outcomes[0].Step.Name)
	assert.Equal(t, analysis.Increasing, outcomes[0].Logistic.Direction)
	assert.Equal(t, analysis.Decreasing, outcomes[1].Logistic.Direction)
	assert.Equal(t, 200.0, outcomes[0].Comparison.CarryingCapacity)

	assert.Equal(t, "growth_rate=0.5", outcomes[2].Step.Name)
	assert.Equal(t, "growth_rate=1", outcomes[3].Step.Name)
	assert.Equal(t, 1.5, outcomes[4].Params.GrowthRate)
	assert.Equal(t, 1000.0, outcomes[4].Params.CarryingCapacity)
}

func TestRun_InvalidStep(t *testing.T) {
	sc := &Scenario{Steps: []Step{
		{Name: "ok", GrowthRate: 0.5, CarryingCapacity: 1000, InitialPopulation: 10, TimeHorizon: 10},
		{Name: "extinct", GrowthRate: 0.5, CarryingCapacity: 1000, InitialPopulation: 0, TimeHorizon: 10},
	}}

	outcomes, err := Run(context.Background(), sc, growth.DefaultSamples, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, growth.ErrInvalidParameter))
	assert.Contains(t, err.Error(), "step 2 (extinct)")
	assert.Len(t, outcomes, 1)
}

func TestRun_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sc := &Scenario{Steps: []Step{{Name: "ok", GrowthRate: 0.5, CarryingCapacity: 1000, InitialPopulation: 10, TimeHorizon: 10}}}
	outcomes, err := Run(ctx, sc, growth.DefaultSamples, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, outcomes)
}

func TestSweepSteps_Errors(t *testing.T) {
	_, err := (&Sweep{Param: "growth_rate", Count: 1}).Steps()
	assert.Error(t, err)

	_, err = (&Sweep{Param: "mass", Min: 1, Max: 2, Count: 2}).Steps()
	assert.Error(t, err)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
