package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Generate or validate defaults files",
	Long: `Manage the defaults file that seeds plan parameters.

Subcommands:
  init     - Generate a default configuration file
  validate - Validate an existing configuration file

Examples:
  tradeplan config init -o tradeplan.yaml
  tradeplan config validate -f tradeplan.yaml`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default configuration file",
	Long: `Create a new configuration file with default settings.

Example:
  tradeplan config init -o tradeplan.yaml`,
	RunE: runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a configuration file",
	Long: `Check if a configuration file is valid and can be loaded.

Example:
  tradeplan config validate -f tradeplan.yaml`,
	RunE: runConfigValidate,
}

var (
	configInitOutput   string
	configValidatePath string
)

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)

	configInitCmd.Flags().StringVarP(&configInitOutput, "output", "o", "tradeplan.yaml", "output config file path")
	configValidateCmd.Flags().StringVarP(&configValidatePath, "file", "f", "", "path to config file (required)")
	configValidateCmd.MarkFlagRequired("file")
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if err := cfg.SaveToFile(configInitOutput); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("✓ Created default configuration: %s\n", configInitOutput)
	fmt.Println("\nEdit the file and plan with:")
	fmt.Printf("  tradeplan plan -e 50 -a 1.5 -f %s\n", configInitOutput)
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromFile(configValidatePath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("✓ Configuration valid: %s\n", configValidatePath)
	fmt.Printf("  Account fallback: $%.2f\n", cfg.Account.Size)
	fmt.Printf("  Risk: %.2f%% of account\n", cfg.Plan.RiskPercent)
	fmt.Printf("  Stop: %.2fx ATR, Target: %.2fR, Trail: %.2fx ATR, Buffer: %.2f\n",
		cfg.Plan.StopMultiple, cfg.Plan.TargetR, cfg.Plan.TrailMultiple, cfg.Plan.EntryBuffer)
	return nil
}
