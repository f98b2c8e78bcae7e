package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive plan calculator",
	Long: `Open a full-screen calculator that recomputes the plan as you type.

Account size edits persist to the preferences store, so the next session
starts from the same value.

Example:
  tradeplan tui`,
	RunE: runTUI,
}

var tuiConfigPath string

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().StringVarP(&tuiConfigPath, "config", "f", "", "path to defaults file (YAML or JSON)")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(tuiConfigPath)
	if err != nil {
		return err
	}

	store, err := openPrefs(cfg.Store.DBPath)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	defer store.Close()

	return tui.Run(cfg, store)
}
