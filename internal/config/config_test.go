package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BikerConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultBikerConfig()) {
		t.Errorf("embedded defaults drifted from DefaultBikerConfig()\nyaml: %+v\ncode: %+v", cfg, DefaultBikerConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadBikerCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "biker.yaml")
	doc := []byte("session:\n  duration_sec: 30\nterrain:\n  hills:\n    spawn_min_sec: 1\n    spawn_max_sec: 2\n")
	if err := os.WriteFile(path, doc, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBiker(path)
	if err != nil {
		t.Fatalf("LoadBiker() failed: %v", err)
	}
	if cfg.Session.DurationSec != 30 {
		t.Errorf("DurationSec = %d, expected 30", cfg.Session.DurationSec)
	}
	if cfg.Terrain.Hills.SpawnMaxSec != 2 {
		t.Errorf("SpawnMaxSec = %v, expected 2", cfg.Terrain.Hills.SpawnMaxSec)
	}
	// Untouched fields keep their defaults
	if cfg.Terrain.Hills.WidthMin != 220 {
		t.Errorf("WidthMin = %d, expected default 220", cfg.Terrain.Hills.WidthMin)
	}
	if len(cfg.Collectibles.Items) != 2 {
		t.Errorf("expected default catalog of 2 items, got %d", len(cfg.Collectibles.Items))
	}
}

func TestLoadBikerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadBiker(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("terrain: [not, a, map"), 0o600)
	if _, err := LoadBiker(bad); err == nil {
		t.Error("malformed custom config should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("terrain:\n  hills:\n    spawn_min_sec: 30\n    spawn_max_sec: 5\n"), 0o600)
	_, err := LoadBiker(invalid)
	if !errors.Is(err, ErrHillTiming) {
		t.Errorf("expected ErrHillTiming, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BikerConfig)
		ok     bool
	}{
		{"defaults", func(*BikerConfig) {}, true},
		{"zero viewport", func(c *BikerConfig) { c.Viewport.Width = 0 }, false},
		{"inverted widths", func(c *BikerConfig) { c.Terrain.Hills.WidthMin = 600 }, false},
		{"unknown baseline", func(c *BikerConfig) { c.Terrain.Baseline.Kind = "square" }, false},
		{"noise baseline", func(c *BikerConfig) { c.Terrain.Baseline.Kind = BaselineNoise }, true},
		{"duplicate item", func(c *BikerConfig) {
			c.Collectibles.Items = append(c.Collectibles.Items, c.Collectibles.Items[0])
		}, false},
		{"unknown backend", func(c *BikerConfig) { c.Scores.Backend = "csv" }, false},
		{"endless session", func(c *BikerConfig) { c.Session.DurationSec = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBikerConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tc.ok {
				t.Errorf("Validate() = %v, expected ok=%v", err, tc.ok)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultBikerConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}

	cfg = DefaultBikerConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset InitialLevel = %v, expected 0.7", cfg.Difficulty.InitialLevel)
	}

	cfg = DefaultBikerConfig()
	ApplyPreset(&cfg, "")
	if !reflect.DeepEqual(cfg, DefaultBikerConfig()) {
		t.Error("empty preset should leave the config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be DifficultyHard")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should map to empty")
	}
}
