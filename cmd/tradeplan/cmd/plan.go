package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/config"
	"github.com/rustyeddy/tradeplan/pkg/id"
	"github.com/rustyeddy/tradeplan/plan"
	"github.com/rustyeddy/tradeplan/render"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a complete trade plan from an entry idea",
	Long: `Compute stop, target, trailing stop, position size, and an order ticket
from an entry price and an ATR reading.

Parameters not given as flags come from the defaults file (or built-in
defaults). The account size resolves in order: --account flag, the
TRADEPLAN_ACCOUNT_SIZE environment variable, the persisted preference,
then the config fallback.

Examples:
  tradeplan plan -d long -e 50 -a 1.5
  tradeplan plan -d short -e 82.40 -a 2.10 --risk-amount 250 --xlsx plan.xlsx
  tradeplan plan -e 50 -a 1.5 --json`,
	RunE: runPlan,
}

var (
	planDirection  string
	planEntry      float64
	planATR        float64
	planRiskPct    float64
	planRiskAmount float64
	planAccount    float64
	planStopMult   float64
	planTargetR    float64
	planTrailMult  float64
	planBuffer     float64
	planConfigPath string
	planXLSXPath   string
	planJSON       bool
)

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringVarP(&planDirection, "direction", "d", "long", "trade direction (long or short)")
	planCmd.Flags().Float64VarP(&planEntry, "entry", "e", 0, "intended entry price (required)")
	planCmd.Flags().Float64VarP(&planATR, "atr", "a", 0, "average true range in price units (required)")

	planCmd.Flags().Float64Var(&planRiskPct, "risk-pct", 0, "risk budget as a percent of account (default from config)")
	planCmd.Flags().Float64Var(&planRiskAmount, "risk-amount", 0, "risk budget as a fixed dollar amount")
	planCmd.Flags().Float64Var(&planAccount, "account", 0, "account size in dollars (default from prefs, then config)")

	planCmd.Flags().Float64Var(&planStopMult, "stop-mult", 0, "stop distance as a multiple of ATR (default from config)")
	planCmd.Flags().Float64Var(&planTargetR, "target-r", 0, "profit target as an R multiple (default from config)")
	planCmd.Flags().Float64Var(&planTrailMult, "trail-mult", 0, "trailing offset as a multiple of ATR (default from config)")
	planCmd.Flags().Float64Var(&planBuffer, "buffer", 0, "entry limit buffer past the stop trigger (default from config)")

	planCmd.Flags().StringVarP(&planConfigPath, "config", "f", "", "path to defaults file (YAML or JSON)")
	planCmd.Flags().StringVar(&planXLSXPath, "xlsx", "", "also write the plan to an Excel workbook at this path")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "print the raw calculation as JSON")

	planCmd.MarkFlagRequired("entry")
	planCmd.MarkFlagRequired("atr")
	planCmd.MarkFlagsMutuallyExclusive("risk-pct", "risk-amount")
}

func runPlan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(planConfigPath)
	if err != nil {
		return err
	}

	pick := func(name string, flagVal, cfgVal float64) float64 {
		if cmd.Flags().Changed(name) {
			return flagVal
		}
		return cfgVal
	}

	in := plan.Inputs{
		Direction:     plan.Direction(planDirection),
		EntryPrice:    planEntry,
		ATR:           planATR,
		StopMultiple:  pick("stop-mult", planStopMult, cfg.Plan.StopMultiple),
		TargetR:       pick("target-r", planTargetR, cfg.Plan.TargetR),
		TrailMultiple: pick("trail-mult", planTrailMult, cfg.Plan.TrailMultiple),
		EntryBuffer:   pick("buffer", planBuffer, cfg.Plan.EntryBuffer),
	}

	if cmd.Flags().Changed("risk-amount") {
		in.Risk = plan.FixedDollar(planRiskAmount)
	} else {
		in.Risk = plan.PercentOfAccount(
			resolveAccountSize(cmd, cfg),
			pick("risk-pct", planRiskPct, cfg.Plan.RiskPercent),
		)
	}

	calc := plan.Calculate(in)
	ref := id.NewPlanRef()

	// The workbook is written before any stdout output so that --json and
	// --xlsx compose.
	if planXLSXPath != "" {
		if err := render.WritePlanXLSX(calc, ref, planXLSXPath); err != nil {
			return fmt.Errorf("write workbook: %w", err)
		}
	}

	if planJSON {
		return render.JSON(os.Stdout, calc)
	}

	render.Plan(os.Stdout, ref, calc)
	if planXLSXPath != "" {
		fmt.Printf("\n✓ Wrote plan workbook: %s\n", planXLSXPath)
	}

	return nil
}

// resolveAccountSize applies the account resolution order. An explicit
// --account value passes through untouched even when out of range, so the
// validator reports it instead of a silent fallback.
func resolveAccountSize(cmd *cobra.Command, cfg *config.Config) float64 {
	if cmd.Flags().Changed("account") {
		return planAccount
	}

	if v := os.Getenv("TRADEPLAN_ACCOUNT_SIZE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			return f
		}
	}

	store, err := openPrefs(cfg.Store.DBPath)
	if err != nil {
		return cfg.Account.Size
	}
	defer store.Close()

	return store.AccountSize(cfg.Account.Size)
}
