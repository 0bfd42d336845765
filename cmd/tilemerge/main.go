// tilemerge is a terminal sliding-tile puzzle in the spirit of 2048.
//
// Usage:
//
//	tilemerge play            - Play interactively
//	tilemerge sim --moves N   - Run a headless seeded game
//	tilemerge scores          - Show recorded runs
//	tilemerge list            - List available boards
//	tilemerge config          - Print the default board config
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.tilemerge/scores.db)
//	--log-file <path>  - Write logs to a file
//	--debug            - Log every move
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/games/t2048"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogFile string
	flagDebug   bool

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilemerge",
	Short: "tilemerge - slide and merge tiles in your terminal",
	Long: `tilemerge is a terminal puzzle: slide numbered tiles across a square
board, merge equal neighbours and keep the board from filling up.

Available commands:
  play     - Play interactively
  sim      - Run a headless seeded game and print the final board
  scores   - View recorded runs
  list     - Show available boards
  config   - Print or install the default board config

Examples:
  tilemerge play
  tilemerge play --slide cascade
  tilemerge sim --moves 200 --seed 7
  tilemerge scores --interactive`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tilemerge/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging builds the shared logger. The terminal belongs to Bubble Tea,
// so logs only go somewhere when --log-file is set.
func setupLogging(cmd *cobra.Command, args []string) error {
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "tilemerge",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	t2048.SetLogger(logger)
	return nil
}
