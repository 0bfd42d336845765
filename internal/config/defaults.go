package config

import (
	_ "embed"
)

//go:embed defaults/2048.yaml
var defaultTileMergeYAML []byte

// DefaultTileMergeConfig returns the default 2048 configuration.
func DefaultTileMergeConfig() TileMergeConfig {
	return TileMergeConfig{
		Board: BoardConfig{
			Size: 4,
			StartTiles: []StartTileConfig{
				{X: 1, Y: 1, Score: 2},
				{X: 2, Y: 2, Score: 2},
			},
		},
		Rules: RulesConfig{
			Slide:         "step",
			SpawnFraction: 3,
		},
		Animation: AnimationConfig{
			Move:  TweenConfig{Duration: 0.15, Easing: "out_back"},
			Death: TweenConfig{Duration: 0.35, Easing: "in_circ"},
			Spawn: TweenConfig{Duration: 0.15, Easing: "out_back"},
			Bump:  TweenConfig{Duration: 0.075, Easing: "in_out_circ"},
			Score: TweenConfig{Duration: 0.5, Delay: 0.15, Easing: "out_quad"},
			Pulse: TweenConfig{Duration: 0.6, Easing: "out_bounce"},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "2048":
		return defaultTileMergeYAML
	default:
		return nil
	}
}
