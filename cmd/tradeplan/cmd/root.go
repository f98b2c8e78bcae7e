package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/config"
	"github.com/rustyeddy/tradeplan/prefs"
)

var rootCmd = &cobra.Command{
	Use:   "tradeplan",
	Short: "Risk-first trade planning for manual order entry",
	Long: `Tradeplan turns an entry idea and a volatility measure into a complete
bracket-order plan before any order exists.

It provides tools for:
  - Validating a trade idea against risk rules in one pass
  - ATR-based stop, profit target, and trailing-stop levels
  - Risk-budgeted position sizing that never exceeds the budget
  - A ready-to-enter order ticket (stop-limit entry plus OCO bracket)
  - An interactive terminal calculator that recomputes as you type

Complete documentation is available at https://github.com/rustyeddy/tradeplan`,
}

var rootDBPath string

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A .env file is optional; missing is not an error.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&rootDBPath, "db", "", "path to the preferences DB (default $HOME/.tradeplan/tradeplan.db)")
}

// prefsPath resolves the preferences DB location: --db flag, then the
// TRADEPLAN_DB environment variable, then the loaded config, then a dot
// directory under $HOME.
func prefsPath(cfgDBPath string) string {
	if rootDBPath != "" {
		return rootDBPath
	}
	if v := os.Getenv("TRADEPLAN_DB"); v != "" {
		return v
	}
	if cfgDBPath != "" {
		return cfgDBPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "tradeplan.db"
	}
	return filepath.Join(home, ".tradeplan", "tradeplan.db")
}

func openPrefs(cfgDBPath string) (*prefs.Store, error) {
	path := prefsPath(cfgDBPath)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create preferences dir: %w", err)
		}
	}
	return prefs.Open(path)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
