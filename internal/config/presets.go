package config

// Presets are named starting configurations for common experiments.
var Presets = map[string]*Config{
	"reference": {
		Dt: 0.005, Steps: 500, Particles: 10, Box: 10,
		Epsilon: 1, Sigma: 1, Mass: 1, Cutoff: 2.5, Seed: 42,
	},
	"sparse": {
		Dt: 0.005, Steps: 1000, Particles: 5, Box: 20,
		Epsilon: 1, Sigma: 1, Mass: 1, Cutoff: 2.5, Seed: 42,
	},
	"dense": {
		Dt: 0.002, Steps: 2000, Particles: 30, Box: 8,
		Epsilon: 1, Sigma: 1, Mass: 1, Cutoff: 2.5, Seed: 42,
	},
	"freeflight": {
		Dt: 0.005, Steps: 500, Particles: 10, Box: 10,
		Epsilon: 0, Sigma: 1, Mass: 1, Cutoff: 2.5, Seed: 42,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	clone := *cfg
	return &clone
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
