package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilemerge/internal/config"
	"github.com/vovakirdan/tilemerge/internal/games/t2048"
)

var flagConfigWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or install the default board config",
	Long: `Print the built-in board configuration as YAML. With --write it is
saved to ~/.tilemerge/configs/2048.yaml, which 'play' picks up
automatically.

Examples:
  tilemerge config > my-2048.yaml
  tilemerge config --write`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Write to ~/.tilemerge/configs/2048.yaml")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	data := config.GetDefaultYAML(t2048.GameID)
	if !flagConfigWrite {
		_, err := os.Stdout.Write(data)
		return err
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot find home directory: %w", err)
	}
	path := filepath.Join(home, ".tilemerge", "configs", "2048.yaml")
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	fmt.Println("Wrote", path)
	return nil
}
