// Package config provides YAML-based configuration loading for the
// tile-merge puzzle: board shape, merge rules and animation timings.
package config

// TileMergeConfig contains all configuration for the 2048 game.
type TileMergeConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Rules     RulesConfig     `yaml:"rules"`
	Animation AnimationConfig `yaml:"animation"`
}

// BoardConfig defines the grid and the tiles placed on every start.
type BoardConfig struct {
	Size       int               `yaml:"size"`
	StartTiles []StartTileConfig `yaml:"start_tiles"`
}

// StartTileConfig is one tile seeded on (re)start.
type StartTileConfig struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Score uint64 `yaml:"score"`
}

// RulesConfig defines merge engine parameters.
type RulesConfig struct {
	Slide         string `yaml:"slide"`          // "step" or "cascade"
	SpawnFraction int    `yaml:"spawn_fraction"` // Keep the lowest 1/N seen scores as spawn values
}

// AnimationConfig defines the tween played for each board event.
type AnimationConfig struct {
	Move  TweenConfig `yaml:"move"`
	Death TweenConfig `yaml:"death"`
	Spawn TweenConfig `yaml:"spawn"`
	Bump  TweenConfig `yaml:"bump"`
	Score TweenConfig `yaml:"score"`
	Pulse TweenConfig `yaml:"pulse"`
}

// TweenConfig defines the timing of one tween kind. Durations are seconds.
type TweenConfig struct {
	Duration float64 `yaml:"duration"`
	Delay    float64 `yaml:"delay"`
	Easing   string  `yaml:"easing"`
}
