package config

import "sort"

var Presets = map[string]*Config{
	"default": {
		Model: "both", GrowthRate: 0.5, CarryingCapacity: 1000, InitialPopulation: 10, TimeHorizon: 10, Samples: DefaultSampleSize,
	},
	"slow": {
		Model: "both", GrowthRate: 0.1, CarryingCapacity: 1000, InitialPopulation: 10, TimeHorizon: 50, Samples: DefaultSampleSize,
	},
	"fast": {
		Model: "both", GrowthRate: 2.0, CarryingCapacity: 1000, InitialPopulation: 10, TimeHorizon: 10, Samples: DefaultSampleSize,
	},
	// starts past K/2, so the logistic curve has no inflection
	"crowded": {
		Model: "logistic", GrowthRate: 0.5, CarryingCapacity: 100, InitialPopulation: 60, TimeHorizon: 20, Samples: DefaultSampleSize,
	},
	// N0 = K: the logistic curve stays flat at the capacity
	"saturated": {
		Model: "logistic", GrowthRate: 0.5, CarryingCapacity: 100, InitialPopulation: 100, TimeHorizon: 10, Samples: DefaultSampleSize,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
