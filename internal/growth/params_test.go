package growth

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParams(t *testing.T) {
	p, err := NewParams(0.5, 1000, 10, 10)
	require.NoError(t, err)

	assert.Equal(t, 0.5, p.GrowthRate)
	assert.Equal(t, 1000.0, p.CarryingCapacity)
	assert.Equal(t, 10.0, p.InitialPopulation)
	assert.Equal(t, 10.0, p.TimeHorizon)
	assert.False(t, p.Saturated())
}

func TestNewParams_Invalid(t *testing.T) {
	tests := []struct {
		name                           string
		rate, capacity, initial, horiz float64
		field                          string
	}{
		{"zero initial population", 0.5, 1000, 0, 10, "initial population"},
		{"negative rate", -1, 1000, 10, 10, "growth rate"},
		{"NaN horizon", 0.5, 1000, 10, math.NaN(), "time horizon"},
		{"zero capacity", 0.5, 0, 10, 10, "carrying capacity"},
		{"infinite rate", math.Inf(1), 1000, 10, 10, "growth rate"},
		{"negative infinite horizon", 0.5, 1000, 10, math.Inf(-1), "time horizon"},
		{"NaN capacity", 0.5, math.NaN(), 10, 10, "carrying capacity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParams(tt.rate, tt.capacity, tt.initial, tt.horiz)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidParameter), "expected ErrInvalidParameter, got %v", err)

			var perr *ParameterError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.field, perr.Field)
		})
	}
}

func TestParams_Saturated(t *testing.T) {
	p, err := NewParams(0.5, 100, 500, 10)
	require.NoError(t, err)
	assert.True(t, p.Saturated())
}

func TestParameterError_Message(t *testing.T) {
	err := &ParameterError{Field: "growth rate", Value: -1, Reason: "must be positive"}
	assert.Equal(t, "growth: invalid growth rate -1: must be positive", err.Error())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
	}{
		{"exponential", Exponential},
		{"exp", Exponential},
		{"Logistic", Logistic},
		{" log ", Logistic},
	}
	for _, tt := range tests {
		got, err := ParseKind(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseKind("gompertz")
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "exponential", Exponential.String())
	assert.Equal(t, "logistic", Logistic.String())
	assert.Equal(t, "kind(7)", Kind(7).String())
}
