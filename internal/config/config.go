package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/mdsim/internal/md"
	"github.com/san-kum/mdsim/internal/sim"
)

// Reference run parameters.
const (
	DefaultDt        = 0.005
	DefaultSteps     = 500
	DefaultParticles = 10
	DefaultBox       = 10.0
	DefaultEpsilon   = 1.0
	DefaultSigma     = 1.0
	DefaultMass      = 1.0
	DefaultSeed      = 42
)

// Config is the YAML-facing run configuration. A zero cutoff means "derive
// the conventional 2.5*sigma".
type Config struct {
	Dt        float64 `yaml:"dt"`
	Steps     int     `yaml:"steps"`
	Particles int     `yaml:"particles"`
	Box       float64 `yaml:"box"`
	Epsilon   float64 `yaml:"epsilon"`
	Sigma     float64 `yaml:"sigma"`
	Mass      float64 `yaml:"mass"`
	Cutoff    float64 `yaml:"cutoff"`
	Seed      int64   `yaml:"seed"`
}

func Default() *Config {
	return &Config{
		Dt:        DefaultDt,
		Steps:     DefaultSteps,
		Particles: DefaultParticles,
		Box:       DefaultBox,
		Epsilon:   DefaultEpsilon,
		Sigma:     DefaultSigma,
		Mass:      DefaultMass,
		Cutoff:    2.5 * DefaultSigma,
		Seed:      DefaultSeed,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
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

// SimConfig lowers the configuration into the simulation parameter set,
// deriving the default cutoff when none was given.
func (c *Config) SimConfig() sim.Config {
	cutoff := c.Cutoff
	if cutoff == 0 {
		cutoff = 2.5 * c.Sigma
	}
	return sim.Config{
		Params: md.Params{
			Dt:      c.Dt,
			Box:     c.Box,
			Epsilon: c.Epsilon,
			Sigma:   c.Sigma,
			Mass:    c.Mass,
			Cutoff:  cutoff,
		},
		Steps:     c.Steps,
		Particles: c.Particles,
		Seed:      c.Seed,
	}
}

// Validate applies the simulation-level parameter checks.
func (c *Config) Validate() error {
	return c.SimConfig().Validate()
}
