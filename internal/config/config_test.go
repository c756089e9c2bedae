package config

import (
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Dt != 0.005 {
		t.Errorf("dt = %g, want 0.005", cfg.Dt)
	}
	if cfg.Steps != 500 {
		t.Errorf("steps = %d, want 500", cfg.Steps)
	}
	if cfg.Cutoff != 2.5 {
		t.Errorf("cutoff = %g, want 2.5", cfg.Cutoff)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestSimConfigDerivesCutoff(t *testing.T) {
	cfg := Default()
	cfg.Sigma = 2
	cfg.Cutoff = 0

	sc := cfg.SimConfig()
	if sc.Cutoff != 5 {
		t.Errorf("derived cutoff = %g, want 2.5*sigma = 5", sc.Cutoff)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative dt", func(c *Config) { c.Dt = -1 }},
		{"zero particles", func(c *Config) { c.Particles = 0 }},
		{"negative steps", func(c *Config) { c.Steps = -5 }},
		{"zero box", func(c *Config) { c.Box = 0 }},
		{"negative cutoff", func(c *Config) { c.Cutoff = -0.5 }},
		{"negative epsilon", func(c *Config) { c.Epsilon = -1 }},
		{"zero mass", func(c *Config) { c.Mass = 0 }},
		{"zero sigma", func(c *Config) { c.Sigma = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := Default()
	cfg.Particles = 25
	cfg.Seed = 7

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if *loaded != *cfg {
		t.Errorf("round trip changed config: %+v vs %+v", loaded, cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestPresets(t *testing.T) {
	for _, name := range ListPresets() {
		cfg := GetPreset(name)
		if cfg == nil {
			t.Fatalf("preset %q missing", name)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("preset %q invalid: %v", name, err)
		}
	}

	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for unknown preset")
	}

	// Mutating a returned preset must not change the catalog.
	cfg := GetPreset("reference")
	cfg.Particles = 999
	if GetPreset("reference").Particles == 999 {
		t.Error("preset catalog mutated through returned copy")
	}
}
