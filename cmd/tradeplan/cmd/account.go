package cmd

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/prefs"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Show or set the persisted account size",
	Long: `Manage the account size used for percent-of-account risk budgets.

The value lives in a small SQLite preferences store, so the plan command
and the interactive calculator share it across sessions.

Subcommands:
  show - Print the current account size
  set  - Persist a new account size

Examples:
  tradeplan account show
  tradeplan account set 25000`,
}

var accountShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current account size",
	Args:  cobra.NoArgs,
	RunE:  runAccountShow,
}

var accountSetCmd = &cobra.Command{
	Use:   "set <amount>",
	Short: "Persist a new account size",
	Args:  cobra.ExactArgs(1),
	RunE:  runAccountSet,
}

var accountConfigPath string

func init() {
	rootCmd.AddCommand(accountCmd)
	accountCmd.AddCommand(accountShowCmd)
	accountCmd.AddCommand(accountSetCmd)

	accountCmd.PersistentFlags().StringVarP(&accountConfigPath, "config", "f", "", "path to defaults file (YAML or JSON)")
}

func runAccountShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(accountConfigPath)
	if err != nil {
		return err
	}

	store, err := openPrefs(cfg.Store.DBPath)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	defer store.Close()

	_, ok, err := store.Get(prefs.KeyAccountSize)
	if err != nil {
		return fmt.Errorf("read preferences: %w", err)
	}
	if !ok {
		fmt.Printf("Account size: $%.2f (config default, nothing persisted yet)\n", cfg.Account.Size)
		return nil
	}

	fmt.Printf("Account size: $%.2f\n", store.AccountSize(cfg.Account.Size))
	return nil
}

func runAccountSet(cmd *cobra.Command, args []string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(args[0]), 64)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", args[0], err)
	}
	// ParseFloat accepts "NaN" and "Inf" spellings, which v <= 0 alone
	// would let through.
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("account size must be a positive number, got %s", args[0])
	}

	cfg, err := loadConfig(accountConfigPath)
	if err != nil {
		return err
	}

	store, err := openPrefs(cfg.Store.DBPath)
	if err != nil {
		return fmt.Errorf("open preferences: %w", err)
	}
	defer store.Close()

	if err := store.SetAccountSize(v); err != nil {
		return fmt.Errorf("save account size: %w", err)
	}

	fmt.Printf("✓ Account size saved: $%.2f\n", v)
	return nil
}
