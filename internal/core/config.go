package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// GameState is the per-tick status a game reports to the platform.
type GameState struct {
	Energy   float64 // Accumulated energy in kJ (the score)
	Speed    float64 // Current rider speed in world units per tick
	Ticks    int     // Simulation ticks since the session started
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}

// SessionSummary describes a finished ride. The platform turns it into a
// score entry when the session ends.
type SessionSummary struct {
	EnergyKJ    float64
	DurationSec int
	Distance    float64  // World units travelled
	AvgSpeed    float64  // World units per second
	AvgPowerW   float64  // EnergyKJ*1000 / DurationSec
	Collected   []string // Collectible names in pickup order
}
