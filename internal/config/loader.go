package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the file looked up in the user and local config directories.
const ConfigFileName = "biker.yaml"

// LoadBiker loads the biker configuration.
// Search order: customPath -> ~/.biker/configs/biker.yaml -> ./configs/biker.yaml -> embedded default.
// Every source is decoded on top of the hardcoded defaults, so partial files work.
func LoadBiker(customPath string) (BikerConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg := DefaultBikerConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(ConfigFileName), filepath.Join("configs", ConfigFileName)} {
		if path == "" {
			continue
		}
		if cfg, ok := tryLoad(path); ok {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultBikerConfig()
	if err := yaml.Unmarshal(defaultBikerYAML, &cfg); err != nil {
		return DefaultBikerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads and validates a config file, reporting false on any failure.
func tryLoad(path string) (BikerConfig, bool) {
	cfg := DefaultBikerConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".biker", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *BikerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Easy rides are gentler to pedal as well
	switch preset {
	case DifficultyEasy:
		cfg.Pedal.Rider.SlopeFactor *= 0.75
	case DifficultyHard:
		cfg.Pedal.Rider.Deceleration *= 1.5
	}
}

// Validation errors. Construction code treats these as fatal.
var (
	ErrViewport   = errors.New("viewport width and height must be positive")
	ErrHillTiming = errors.New("hills: spawn_min_sec must be positive and not above spawn_max_sec")
	ErrHillRange  = errors.New("hills: width/height/ahead ranges must satisfy 0 < min <= max")
	ErrCatalog    = errors.New("collectibles: item names must be unique and non-empty")
)

// Validate reports the first invalid field. Rider parameters are checked by
// the rider package when the simulator is constructed.
func (c BikerConfig) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return ErrViewport
	}
	h := c.Terrain.Hills
	if h.SpawnMinSec <= 0 || h.SpawnMinSec > h.SpawnMaxSec {
		return ErrHillTiming
	}
	if h.WidthMin <= 0 || h.WidthMin > h.WidthMax ||
		h.HeightMin < 0 || h.HeightMin > h.HeightMax ||
		h.AheadMin < 0 || h.AheadMin > h.AheadMax {
		return ErrHillRange
	}
	switch c.Terrain.Baseline.Kind {
	case BaselineSine, BaselineNoise:
	default:
		return fmt.Errorf("terrain: unknown baseline kind %q", c.Terrain.Baseline.Kind)
	}
	seen := make(map[string]bool, len(c.Collectibles.Items))
	for _, it := range c.Collectibles.Items {
		if it.Name == "" || seen[it.Name] {
			return ErrCatalog
		}
		seen[it.Name] = true
	}
	switch c.Scores.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("scores: unknown backend %q", c.Scores.Backend)
	}
	if c.Session.DurationSec < 0 {
		return errors.New("session: duration_sec must not be negative")
	}
	return nil
}
