// Package scenario evaluates batches of parameter sets described in YAML.
package scenario

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/growthlab/internal/analysis"
	"github.com/san-kum/growthlab/internal/growth"
	"github.com/san-kum/growthlab/internal/logging"
)

// Scenario is a named list of parameter sets, optionally extended by a sweep.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
	Sweep       *Sweep `yaml:"sweep,omitempty"`
}

// Step is one parameter set to evaluate.
type Step struct {
	Name              string  `yaml:"name"`
	GrowthRate        float64 `yaml:"growth_rate"`
	CarryingCapacity  float64 `yaml:"carrying_capacity"`
	InitialPopulation float64 `yaml:"initial_population"`
	TimeHorizon       float64 `yaml:"time_horizon"`
}

// Sweep varies one parameter of Base across [Min, Max] in Count steps.
type Sweep struct {
	Param string  `yaml:"param"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
	Count int     `yaml:"count"`
	Base  Step    `yaml:"base"`
}

// Outcome is the evaluation of one step.
type Outcome struct {
	Step        Step
	Params      growth.Params
	Comparison  *growth.Comparison
	Exponential analysis.Summary
	Logistic    analysis.Summary
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}

	return &sc, nil
}

// Expand returns the explicit steps followed by the sweep steps.
func (sc *Scenario) Expand() ([]Step, error) {
	steps := append([]Step(nil), sc.Steps...)
	if sc.Sweep == nil {
		return steps, nil
	}
	swept, err := sc.Sweep.Steps()
	if err != nil {
		return nil, err
	}
	return append(steps, swept...), nil
}

// Steps generates Count evenly spaced variations of Base.
func (sw *Sweep) Steps() ([]Step, error) {
	if sw.Count < 2 {
		return nil, fmt.Errorf("sweep over %s: count must be at least 2, got %d", sw.Param, sw.Count)
	}

	stride := (sw.Max - sw.Min) / float64(sw.Count-1)
	steps := make([]Step, 0, sw.Count)
	for i := 0; i < sw.Count; i++ {
		v := sw.Min + float64(i)*stride
		step := sw.Base
		switch sw.Param {
		case "growth_rate":
			step.GrowthRate = v
		case "carrying_capacity":
			step.CarryingCapacity = v
		case "initial_population":
			step.InitialPopulation = v
		case "time_horizon":
			step.TimeHorizon = v
		default:
			return nil, fmt.Errorf("sweep: unknown parameter %q", sw.Param)
		}
		step.Name = fmt.Sprintf("%s=%.4g", sw.Param, v)
		steps = append(steps, step)
	}
	return steps, nil
}

// Run evaluates every step in order. It stops at the first invalid step,
// returning the outcomes gathered so far.
func Run(ctx context.Context, sc *Scenario, samples int, log *zap.Logger) ([]Outcome, error) {
	log = logging.OrNop(log)

	steps, err := sc.Expand()
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, 0, len(steps))
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		log.Debug("evaluating step",
			zap.String("scenario", sc.Name),
			zap.Int("step", i+1),
			zap.Int("of", len(steps)),
			zap.String("name", step.Name))

		p, err := growth.NewParams(step.GrowthRate, step.CarryingCapacity, step.InitialPopulation, step.TimeHorizon)
		if err != nil {
			return outcomes, fmt.Errorf("step %d (%s): %w", i+1, step.Name, err)
		}

		cmp, err := growth.Compare(p, samples)
		if err != nil {
			return outcomes, fmt.Errorf("step %d (%s): %w", i+1, step.Name, err)
		}

		outcomes = append(outcomes, Outcome{
			Step:        step,
			Params:      p,
			Comparison:  cmp,
			Exponential: analysis.Summarize(growth.Exponential, p, cmp.Exponential),
			Logistic:    analysis.Summarize(growth.Logistic, p, cmp.Logistic),
		})
	}

	return outcomes, nil
}
