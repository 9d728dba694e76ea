package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/growthlab/internal/growth"
)

func TestMonotonicity(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   Direction
	}{
		{"empty", nil, Flat},
		{"single", []float64{3}, Flat},
		{"constant", []float64{2, 2, 2}, Flat},
		{"rising", []float64{1, 2, 4}, Increasing},
		{"rising then saturated", []float64{1, 2, 2}, Increasing},
		{"falling", []float64{5, 3, 3, 1}, Decreasing},
		{"oscillating", []float64{1, 3, 2}, Mixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Monotonicity(tt.values); got != tt.want {
				t.Errorf("Monotonicity(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestDoublingTime(t *testing.T) {
	p, err := growth.NewParams(0.5, 1000, 10, 10)
	require.NoError(t, err)

	dt := DoublingTime(p)
	m := growth.ExponentialModel{}
	assert.InDelta(t, 2*m.Population(p, 0), m.Population(p, dt), 1e-9)
}

func TestInflection(t *testing.T) {
	p, err := growth.NewParams(0.5, 1000, 10, 10)
	require.NoError(t, err)

	pt, ok := Inflection(p)
	require.True(t, ok)
	assert.InDelta(t, math.Log(99)/0.5, pt.T, 1e-12)
	assert.Equal(t, 500.0, pt.N)
	assert.InDelta(t, pt.N, growth.LogisticModel{}.Population(p, pt.T), 1e-9)

	crowded, err := growth.NewParams(0.5, 100, 60, 10)
	require.NoError(t, err)
	_, ok = Inflection(crowded)
	assert.False(t, ok)
}

func TestCapacityCrossing(t *testing.T) {
	p, err := growth.NewParams(0.5, 1000, 10, 10)
	require.NoError(t, err)

	at, ok := CapacityCrossing(p)
	require.True(t, ok)
	assert.InDelta(t, 1000, growth.ExponentialModel{}.Population(p, at), 1e-9)

	saturated, err := growth.NewParams(0.5, 100, 100, 10)
	require.NoError(t, err)
	_, ok = CapacityCrossing(saturated)
	assert.False(t, ok)
}

func TestSummarize(t *testing.T) {
	p, err := growth.NewParams(0.5, 1000, 10, 10)
	require.NoError(t, err)

	exp, _, err := growth.Evaluate(growth.Exponential, p, growth.DefaultSamples)
	require.NoError(t, err)
	es := Summarize(growth.Exponential, p, exp)
	assert.Equal(t, "exponential", es.Model)
	assert.Equal(t, Increasing, es.Direction)
	assert.Equal(t, "increasing", es.Trend)
	assert.Equal(t, 10.0, es.Initial)
	assert.Equal(t, es.Final, es.Peak)
	assert.InDelta(t, math.Ln2/0.5, es.DoublingTime, 1e-12)
	require.NotNil(t, es.CapacityCrossing)
	assert.Nil(t, es.Inflection)

	logistic, _, err := growth.Evaluate(growth.Logistic, p, growth.DefaultSamples)
	require.NoError(t, err)
	ls := Summarize(growth.Logistic, p, logistic)
	assert.Equal(t, Increasing, ls.Direction)
	assert.InDelta(t, 400.14, ls.CapacityGap, 0.01)
	assert.InDelta(t, 0.40014, ls.RelativeGap, 1e-4)
	require.NotNil(t, ls.Inflection)
	assert.True(t, ls.InflectionHit)
	assert.Zero(t, ls.DoublingTime)
	assert.Nil(t, ls.CapacityCrossing)
	assert.False(t, ls.Saturated)
	assert.False(t, es.Saturated)
}

func TestSummarize_DecayingLogistic(t *testing.T) {
	p, err := growth.NewParams(1.0, 100, 400, 20)
	require.NoError(t, err)

	traj, _, err := growth.Evaluate(growth.Logistic, p, growth.DefaultSamples)
	require.NoError(t, err)

	s := Summarize(growth.Logistic, p, traj)
	assert.Equal(t, Decreasing, s.Direction)
	assert.Equal(t, 400.0, s.Peak)
	assert.Less(t, s.CapacityGap, 1e-3)
	assert.Nil(t, s.Inflection)
	assert.True(t, s.Saturated)
}
