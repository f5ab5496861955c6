package config

import (
	_ "embed"
)

//go:embed defaults/biker.yaml
var defaultBikerYAML []byte

// DefaultBikerConfig returns the hardcoded default configuration. It matches
// defaults/biker.yaml and is used when the embedded file cannot be parsed.
func DefaultBikerConfig() BikerConfig {
	return BikerConfig{
		Viewport: ViewportConfig{
			Width:  480,
			Height: 720,
		},
		Terrain: TerrainConfig{
			Baseline: BaselineConfig{
				Kind:       BaselineSine,
				Offset:     360,
				Amplitude:  50,
				Frequency:  0.01,
				Wavelength: 400,
				Octaves:    4,
			},
			Hills: HillConfig{
				SpawnMinSec:   5,
				SpawnMaxSec:   20,
				WidthMin:      220,
				WidthMax:      520,
				HeightMin:     20,
				HeightMax:     80,
				AheadMin:      120,
				AheadMax:      320,
				CleanupMargin: 100,
			},
		},
		Pedal: ModeConfig{
			Rider: RiderConfig{
				ScreenX:      140,
				WheelBase:    60,
				MinSpeed:     0,
				MaxSpeed:     50,
				StartSpeed:   0,
				PedalBoost:   10,
				SlopeFactor:  0.6,
				Friction:     0.99,
				Deceleration: 0.1,
				Animation: AnimationConfig{
					Frames:        3,
					SpeedBased:    true,
					FixedInterval: 10,
					FloorInterval: 2,
					SpeedDivisor:  15,
				},
			},
			Energy: EnergyConfig{
				Policy:             PolicySlopeMultiplier,
				PerPixelRate:       0.01,
				UphillBonus:        2.0,
				DownhillPenalty:    0.8,
				MultMin:            0.2,
				MultMax:            3.0,
				FlatRate:           0.01,
				DownhillMultiplier: 0.5,
				UphillRate:         0.05,
			},
		},
		Auto: ModeConfig{
			Rider: RiderConfig{
				ScreenX:      140,
				WheelBase:    60,
				MinSpeed:     2,
				MaxSpeed:     10,
				StartSpeed:   5,
				PedalBoost:   0,
				SlopeFactor:  0.6,
				Friction:     0.99,
				Deceleration: 0,
				Animation: AnimationConfig{
					Frames:        3,
					SpeedBased:    false,
					FixedInterval: 10,
					FloorInterval: 2,
					SpeedDivisor:  15,
				},
			},
			Energy: EnergyConfig{
				Policy:             PolicyDisplacement,
				PerPixelRate:       0.01,
				UphillBonus:        2.0,
				DownhillPenalty:    0.8,
				MultMin:            0.2,
				MultMax:            3.0,
				FlatRate:           0.01,
				DownhillMultiplier: 0.5,
				UphillRate:         0.05,
			},
		},
		Collectibles: CollectiblesConfig{
			LeadDistance:  160,
			YOffset:       2,
			PickupXTol:    24,
			PickupYTol:    28,
			MessageSec:    5,
			DiscardMargin: 200,
			Items: []ItemSpec{
				{
					Name:    "headset",
					Energy:  400,
					Message: "You would need to bike for 90 more minutes to charge a headset!",
					Glyph:   "Ω",
				},
				{
					Name:    "telefon",
					Energy:  600,
					Message: "You need to bike 4 minutes to charge a full phone!",
					Glyph:   "▯",
				},
			},
		},
		Session: SessionConfig{
			DurationSec: 120,
			PlayerName:  "Unknown",
		},
		Scores: ScoresConfig{
			Backend:    BackendJSON,
			Path:       "",
			Persist:    true,
			DailyCap:   30,
			MonthlyCap: 5,
			YearlyCap:  5,
			AllTimeCap: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200, // 2 minutes at 60fps
			},
			Scaling: ScalingConfig{
				HeightMultiplier:  0.5,
				IntervalReduction: 0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultBikerYAML
}
