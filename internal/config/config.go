// Package config provides YAML/TOML game configuration loading for the
// dragon game. All constants the simulation uses live in DragonConfig, which
// is passed by value into every component at construction.
package config

// DragonConfig contains all configuration for the game.
type DragonConfig struct {
	Timing    Timing    `yaml:"timing" toml:"timing"`
	World     World     `yaml:"world" toml:"world"`
	Creature  Creature  `yaml:"creature" toml:"creature"`
	Obstacles Obstacles `yaml:"obstacles" toml:"obstacles"`
}

// Timing defines the simulation rate.
type Timing struct {
	FPS int `yaml:"fps" toml:"fps"`
}

// World defines the playfield size in cells.
type World struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// Creature defines the flying creature's geometry and motion.
// Speeds are in cells per millisecond, durations in milliseconds.
type Creature struct {
	X             int     `yaml:"x" toml:"x"`
	Width         int     `yaml:"width" toml:"width"`
	Height        int     `yaml:"height" toml:"height"`
	UpSpeed       float64 `yaml:"up_speed" toml:"up_speed"`
	DownSpeed     float64 `yaml:"down_speed" toml:"down_speed"`
	ClimbDuration float64 `yaml:"climb_duration_ms" toml:"climb_duration_ms"`
	InitialClimb  float64 `yaml:"initial_climb_ms" toml:"initial_climb_ms"`
	FlapPeriod    int     `yaml:"flap_period_ms" toml:"flap_period_ms"`
}

// Obstacles defines obstacle geometry, scroll speed and spawn cadence.
type Obstacles struct {
	Width         int     `yaml:"width" toml:"width"`
	PieceHeight   int     `yaml:"piece_height" toml:"piece_height"`
	ScrollSpeed   float64 `yaml:"scroll_speed" toml:"scroll_speed"`
	SpawnInterval float64 `yaml:"spawn_interval_ms" toml:"spawn_interval_ms"`
}
