// Package config provides YAML-based configuration loading and difficulty
// management for the biker game.
package config

// BikerConfig contains all tunables of a ride.
type BikerConfig struct {
	Viewport     ViewportConfig     `yaml:"viewport"`
	Terrain      TerrainConfig      `yaml:"terrain"`
	Pedal        ModeConfig         `yaml:"pedal"`
	Auto         ModeConfig         `yaml:"auto"`
	Collectibles CollectiblesConfig `yaml:"collectibles"`
	Session      SessionConfig      `yaml:"session"`
	Scores       ScoresConfig       `yaml:"scores"`
	Difficulty   DifficultyConfig   `yaml:"difficulty"`
}

// ViewportConfig is the size of the virtual world window in world units.
// The renderer scales it onto the terminal grid.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// TerrainConfig describes the ground: a baseline curve plus transient hills.
type TerrainConfig struct {
	Baseline BaselineConfig `yaml:"baseline"`
	Hills    HillConfig     `yaml:"hills"`
}

// BaselineKind selects the baseline curve implementation.
type BaselineKind string

const (
	BaselineSine  BaselineKind = "sine"
	BaselineNoise BaselineKind = "noise"
)

// BaselineConfig defines the fixed-per-session ground curve.
type BaselineConfig struct {
	Kind       BaselineKind `yaml:"kind"`
	Offset     float64      `yaml:"offset"`     // Vertical offset (mid height)
	Amplitude  float64      `yaml:"amplitude"`  // Peak deviation from offset
	Frequency  float64      `yaml:"frequency"`  // Sine: radians per world unit
	Wavelength float64      `yaml:"wavelength"` // Noise: world units per lattice cell of the first octave
	Octaves    int          `yaml:"octaves"`    // Noise only
	Seed       int64        `yaml:"seed"`       // Noise only; 0 = use the session seed
}

// HillConfig defines hill timing, size and lifecycle.
type HillConfig struct {
	SpawnMinSec   float64 `yaml:"spawn_min_sec"`
	SpawnMaxSec   float64 `yaml:"spawn_max_sec"`
	WidthMin      int     `yaml:"width_min"`
	WidthMax      int     `yaml:"width_max"`
	HeightMin     int     `yaml:"height_min"`
	HeightMax     int     `yaml:"height_max"`
	AheadMin      int     `yaml:"ahead_min"` // Lead distance past the right edge of the viewport
	AheadMax      int     `yaml:"ahead_max"`
	CleanupMargin float64 `yaml:"cleanup_margin"`
}

// ModeConfig bundles rider physics and energy scoring for one game mode.
type ModeConfig struct {
	Rider  RiderConfig  `yaml:"rider"`
	Energy EnergyConfig `yaml:"energy"`
}

// RiderConfig defines rider geometry, speed model and animation.
type RiderConfig struct {
	ScreenX      float64         `yaml:"screen_x"`   // Fixed local x of the rider
	WheelBase    float64         `yaml:"wheel_base"` // Distance between wheel contacts
	MinSpeed     float64         `yaml:"min_speed"`
	MaxSpeed     float64         `yaml:"max_speed"`
	StartSpeed   float64         `yaml:"start_speed"`
	PedalBoost   float64         `yaml:"pedal_boost"`  // Added per pedal push; 0 = automatic mode
	SlopeFactor  float64         `yaml:"slope_factor"` // Speed lost per unit of uphill slope
	Friction     float64         `yaml:"friction"`     // Multiplier applied every tick, (0, 1]
	Deceleration float64         `yaml:"deceleration"` // Constant loss per tick
	Animation    AnimationConfig `yaml:"animation"`
}

// AnimationConfig controls how fast the pedalling frames flip.
type AnimationConfig struct {
	Frames        int     `yaml:"frames"`
	SpeedBased    bool    `yaml:"speed_based"`
	FixedInterval int     `yaml:"fixed_interval"` // Ticks per frame when not speed based
	FloorInterval int     `yaml:"floor_interval"` // Minimum ticks per frame when speed based
	SpeedDivisor  float64 `yaml:"speed_divisor"`  // interval = divisor / speed
}

// EnergyPolicy selects how motion converts into energy.
type EnergyPolicy string

const (
	PolicySlopeMultiplier EnergyPolicy = "slope_multiplier"
	PolicyDisplacement    EnergyPolicy = "displacement"
)

// EnergyConfig holds the parameters of both energy policies. Only the fields
// of the selected policy are used.
type EnergyConfig struct {
	Policy EnergyPolicy `yaml:"policy"`

	// slope_multiplier
	PerPixelRate    float64 `yaml:"per_pixel_rate"`
	UphillBonus     float64 `yaml:"uphill_bonus"`
	DownhillPenalty float64 `yaml:"downhill_penalty"`
	MultMin         float64 `yaml:"mult_min"`
	MultMax         float64 `yaml:"mult_max"`

	// displacement
	FlatRate           float64 `yaml:"flat_rate"`
	DownhillMultiplier float64 `yaml:"downhill_multiplier"`
	UphillRate         float64 `yaml:"uphill_rate"`
}

// CollectiblesConfig defines collectible placement, pickup and catalog.
type CollectiblesConfig struct {
	LeadDistance  float64    `yaml:"lead_distance"`
	YOffset       float64    `yaml:"y_offset"` // Height above the ground at spawn
	PickupXTol    float64    `yaml:"pickup_x_tol"`
	PickupYTol    float64    `yaml:"pickup_y_tol"`
	MessageSec    float64    `yaml:"message_sec"`
	DiscardMargin float64    `yaml:"discard_margin"`
	Items         []ItemSpec `yaml:"items"`
}

// ItemSpec is one catalog entry.
type ItemSpec struct {
	Name    string  `yaml:"name"`
	Energy  float64 `yaml:"energy"` // Threshold in kJ
	Message string  `yaml:"message"`
	Glyph   string  `yaml:"glyph"`
}

// SessionConfig defines how long a ride lasts.
type SessionConfig struct {
	DurationSec int    `yaml:"duration_sec"` // 0 = endless, only quitting ends the ride
	PlayerName  string `yaml:"player_name"`
}

// BackendKind selects the score persistence backend.
type BackendKind string

const (
	BackendJSON   BackendKind = "json"
	BackendSQLite BackendKind = "sqlite"
)

// ScoresConfig defines the high-score ledger.
type ScoresConfig struct {
	Backend    BackendKind `yaml:"backend"`
	Path       string      `yaml:"path"` // Empty = highscore.json next to the executable
	Persist    bool        `yaml:"persist"`
	DailyCap   int         `yaml:"daily_cap"`
	MonthlyCap int         `yaml:"monthly_cap"`
	YearlyCap  int         `yaml:"yearly_cap"`
	AllTimeCap int         `yaml:"alltime_cap"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = gentle, 1.0 = rough
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a ride.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "time", "energy", or "none"
	MaxAt float64 `yaml:"max_at"` // Ticks or kJ at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes on terrain.
type ScalingConfig struct {
	HeightMultiplier  float64 `yaml:"height_multiplier"`  // Added to hill height factor at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction removed from spawn interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ParsePreset converts a CLI string into a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
