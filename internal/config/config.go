package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/growthlab/internal/growth"
)

const (
	DefaultModel      = "both"
	DefaultRate       = 0.5
	DefaultCapacity   = 1000.0
	DefaultInitial    = 10.0
	DefaultHorizon    = 10.0
	DefaultSampleSize = growth.DefaultSamples
)

// Config is a dashboard setting: which models to show and the slider values.
// The validate tags mirror Ranges.
type Config struct {
	Model             string  `yaml:"model" validate:"oneof=exponential logistic both"`
	GrowthRate        float64 `yaml:"growth_rate" validate:"gte=0.1,lte=2"`
	CarryingCapacity  float64 `yaml:"carrying_capacity" validate:"gte=100,lte=5000"`
	InitialPopulation float64 `yaml:"initial_population" validate:"gte=1,lte=100"`
	TimeHorizon       float64 `yaml:"time_horizon" validate:"gte=5,lte=50"`
	Samples           int     `yaml:"samples" validate:"gte=2"`
}

func DefaultConfig() *Config {
	return &Config{
		Model:             DefaultModel,
		GrowthRate:        DefaultRate,
		CarryingCapacity:  DefaultCapacity,
		InitialPopulation: DefaultInitial,
		TimeHorizon:       DefaultHorizon,
		Samples:           DefaultSampleSize,
	}
}

// Load reads a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var validate = validator.New()

// Validate checks the values against the slider ranges.
// The core accepts any positive value; this is the stricter dashboard check.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return fmt.Errorf("%w: %s", growth.ErrInvalidParameter, strings.Join(msgs, "; "))
}

func formatFieldError(fe validator.FieldError) string {
	field := yamlName(fe.StructField())
	switch fe.Tag() {
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func yamlName(structField string) string {
	switch structField {
	case "GrowthRate":
		return "growth_rate"
	case "CarryingCapacity":
		return "carrying_capacity"
	case "InitialPopulation":
		return "initial_population"
	case "TimeHorizon":
		return "time_horizon"
	}
	return strings.ToLower(structField)
}

// Params builds the core parameter set.
func (c *Config) Params() (growth.Params, error) {
	return growth.NewParams(c.GrowthRate, c.CarryingCapacity, c.InitialPopulation, c.TimeHorizon)
}

// Kinds returns the models selected by Model.
func (c *Config) Kinds() ([]growth.Kind, error) {
	if c.Model == "" || c.Model == "both" {
		return growth.Kinds(), nil
	}
	k, err := growth.ParseKind(c.Model)
	if err != nil {
		return nil, err
	}
	return []growth.Kind{k}, nil
}
