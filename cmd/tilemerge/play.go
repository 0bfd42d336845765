package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilemerge/internal/core"
	"github.com/vovakirdan/tilemerge/internal/games/t2048"
	"github.com/vovakirdan/tilemerge/internal/platform/tui"
	"github.com/vovakirdan/tilemerge/internal/registry"
	"github.com/vovakirdan/tilemerge/internal/storage"
)

var (
	flagConfig string
	flagSlide  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  R                 - Restart
  P/Esc             - Pause
  Ctrl+S            - Save a text screenshot
  ?                 - Show all keys
  Q/Ctrl+C          - Quit

Slide rules:
  step    - every tile moves at most one cell per key
  cascade - tiles keep sliding until they stop

Without --slide a picker asks for the rule first.

Examples:
  tilemerge play
  tilemerge play --slide cascade
  tilemerge play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	playCmd.Flags().StringVar(&flagSlide, "slide", "", "Slide rule: step or cascade")
}

func runPlay(cmd *cobra.Command, args []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	slide := flagSlide
	if slide == "" {
		picked, err := tui.RunRuleSelector(cfg)
		if err != nil {
			return fmt.Errorf("rule selector: %w", err)
		}
		if picked == "" {
			return nil
		}
		slide = picked
	}

	rule, ok := t2048.ParseSlideRule(slide)
	if !ok {
		return fmt.Errorf("unknown slide rule %q (want step or cascade)", slide)
	}
	t2048.SetConfigPath(flagConfig)
	t2048.SetSlideRule(rule)

	game, err := registry.Create(t2048.GameID)
	if err != nil {
		return fmt.Errorf("cannot create game: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("playing without score storage", "err", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	logger.Info("starting", "slide", rule, "seed", cfg.Seed, "size", fmt.Sprintf("%dx%d", width, height))
	if err := tui.Run(game, store, cfg, tui.WithLogger(logger)); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
