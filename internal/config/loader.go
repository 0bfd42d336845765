package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tilemerge/internal/tween"
)

// Board size limits accepted by Validate.
const (
	MinBoardSize = 2
	MaxBoardSize = 8
)

// LoadTileMerge loads 2048 configuration.
// Search order: customPath -> ~/.tilemerge/configs/2048.yaml -> ./configs/2048.yaml -> embedded default
// Fields missing from a file keep their default values.
func LoadTileMerge(customPath string) (TileMergeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return TileMergeConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseTileMerge(data)
		if err != nil {
			return TileMergeConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("2048.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseTileMerge(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "2048.yaml")); err == nil {
		if cfg, err := parseTileMerge(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseTileMerge(defaultTileMergeYAML)
	if err != nil {
		return DefaultTileMergeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseTileMerge decodes data over the defaults and validates the result.
func parseTileMerge(data []byte) (TileMergeConfig, error) {
	cfg := DefaultTileMergeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return TileMergeConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return TileMergeConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilemerge", "configs", filename)
}

// Validate reports every problem found in the configuration.
func (c TileMergeConfig) Validate() error {
	var errs []error

	size := c.Board.Size
	if size < MinBoardSize || size > MaxBoardSize {
		errs = append(errs, fmt.Errorf("board.size %d outside [%d, %d]", size, MinBoardSize, MaxBoardSize))
	}

	seen := make(map[[2]int]bool)
	for i, st := range c.Board.StartTiles {
		if st.X < 0 || st.X >= size || st.Y < 0 || st.Y >= size {
			errs = append(errs, fmt.Errorf("board.start_tiles[%d] (%d,%d) off the board", i, st.X, st.Y))
		}
		if st.Score == 0 {
			errs = append(errs, fmt.Errorf("board.start_tiles[%d] has zero score", i))
		}
		key := [2]int{st.X, st.Y}
		if seen[key] {
			errs = append(errs, fmt.Errorf("board.start_tiles[%d] duplicates (%d,%d)", i, st.X, st.Y))
		}
		seen[key] = true
	}

	switch c.Rules.Slide {
	case "step", "cascade":
	default:
		errs = append(errs, fmt.Errorf("rules.slide %q must be step or cascade", c.Rules.Slide))
	}
	if c.Rules.SpawnFraction < 1 {
		errs = append(errs, fmt.Errorf("rules.spawn_fraction %d must be at least 1", c.Rules.SpawnFraction))
	}

	anim := map[string]TweenConfig{
		"move":  c.Animation.Move,
		"death": c.Animation.Death,
		"spawn": c.Animation.Spawn,
		"bump":  c.Animation.Bump,
		"score": c.Animation.Score,
		"pulse": c.Animation.Pulse,
	}
	for _, name := range []string{"move", "death", "spawn", "bump", "score", "pulse"} {
		tc := anim[name]
		if tc.Duration <= 0 {
			errs = append(errs, fmt.Errorf("animation.%s.duration must be positive", name))
		}
		if tc.Delay < 0 {
			errs = append(errs, fmt.Errorf("animation.%s.delay must not be negative", name))
		}
		if _, ok := tween.ParseEasing(tc.Easing); !ok {
			errs = append(errs, fmt.Errorf("animation.%s.easing %q unknown", name, tc.Easing))
		}
	}

	return errors.Join(errs...)
}

// Ease returns the parsed easing curve, falling back to the default curve.
func (t TweenConfig) Ease() tween.Easing {
	e, _ := tween.ParseEasing(t.Easing)
	return e
}
