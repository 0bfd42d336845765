package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultsValid(t *testing.T) {
	if err := DefaultTileMergeConfig().Validate(); err != nil {
		t.Errorf("DefaultTileMergeConfig invalid: %v", err)
	}

	var embedded TileMergeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("2048"), &embedded); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("embedded YAML invalid: %v", err)
	}
	if embedded.Board.Size != DefaultTileMergeConfig().Board.Size {
		t.Errorf("embedded board size = %d, want %d", embedded.Board.Size, DefaultTileMergeConfig().Board.Size)
	}
	if GetDefaultYAML("tetris") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  size: 5\nrules:\n  slide: cascade\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTileMerge(path)
	if err != nil {
		t.Fatalf("LoadTileMerge failed: %v", err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("board.size = %d, want 5", cfg.Board.Size)
	}
	if cfg.Rules.Slide != "cascade" {
		t.Errorf("rules.slide = %q, want cascade", cfg.Rules.Slide)
	}
	// Untouched sections keep their defaults.
	if cfg.Animation.Move.Duration != 0.15 {
		t.Errorf("animation.move.duration = %v, want default 0.15", cfg.Animation.Move.Duration)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTileMerge(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("rules:\n  slide: sideways\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadTileMerge(bad)
	if err == nil || !strings.Contains(err.Error(), "rules.slide") {
		t.Errorf("invalid config error = %v, want rules.slide complaint", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadTileMerge("")
	if err != nil {
		t.Fatalf("LoadTileMerge failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("fallback config invalid: %v", err)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "2048.yaml"), []byte("board:\n  size: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTileMerge("")
	if err != nil {
		t.Fatalf("LoadTileMerge failed: %v", err)
	}
	if cfg.Board.Size != 6 {
		t.Errorf("board.size = %d, want 6 from ./configs", cfg.Board.Size)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *TileMergeConfig)
		field  string
	}{
		{"board too small", func(c *TileMergeConfig) { c.Board.Size = 1 }, "board.size"},
		{"board too large", func(c *TileMergeConfig) { c.Board.Size = 9 }, "board.size"},
		{"start tile off board", func(c *TileMergeConfig) {
			c.Board.StartTiles = []StartTileConfig{{X: 4, Y: 0, Score: 2}}
		}, "start_tiles[0]"},
		{"start tile zero score", func(c *TileMergeConfig) {
			c.Board.StartTiles = []StartTileConfig{{X: 0, Y: 0}}
		}, "zero score"},
		{"duplicate start tile", func(c *TileMergeConfig) {
			c.Board.StartTiles = []StartTileConfig{{X: 0, Y: 0, Score: 2}, {X: 0, Y: 0, Score: 4}}
		}, "duplicates"},
		{"unknown slide", func(c *TileMergeConfig) { c.Rules.Slide = "" }, "rules.slide"},
		{"spawn fraction", func(c *TileMergeConfig) { c.Rules.SpawnFraction = 0 }, "spawn_fraction"},
		{"zero duration", func(c *TileMergeConfig) { c.Animation.Bump.Duration = 0 }, "animation.bump.duration"},
		{"negative delay", func(c *TileMergeConfig) { c.Animation.Score.Delay = -1 }, "animation.score.delay"},
		{"unknown easing", func(c *TileMergeConfig) { c.Animation.Pulse.Easing = "wobble" }, "animation.pulse.easing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTileMergeConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate should fail")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not mention %s", err, tt.field)
			}
		})
	}
}
