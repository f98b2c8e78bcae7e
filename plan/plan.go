// Package plan is the trade-planning engine: it turns manually observed
// price levels and an account risk budget into stop/target/trailing levels,
// a whole-unit position size, and a broker-ready bracket ticket.
//
// Everything here is pure. Calculate is a total function of its Inputs: it
// never performs I/O, never panics on bad input, and is safe to call from
// concurrent goroutines. Invalid inputs come back as a Calculation carrying
// the blocking issues, not as a Go error.
package plan

import "fmt"

// Direction is the side of the planned trade. It is a closed two-value
// choice supplied by the caller; it is never inferred from price comparison,
// so there is no "unknown" state anywhere in the pipeline.
type Direction string

const (
	Long  Direction = "long"
	Short Direction = "short"
)

// Valid reports whether d is one of the two recognized directions.
func (d Direction) Valid() bool {
	return d == Long || d == Short
}

// sign is +1 when the favorable direction is up, -1 when it is down.
// Only meaningful after validation.
func (d Direction) sign() float64 {
	if d == Short {
		return -1
	}
	return 1
}

type riskBasis int

const (
	basisNone riskBasis = iota
	basisPercent
	basisFixed
)

// RiskBudget is the per-trade risk allowance, expressed either as a
// percentage of the account or as a fixed dollar amount. Exactly one basis
// is active; construct values with PercentOfAccount or FixedDollar. The
// zero value has no basis and fails validation.
type RiskBudget struct {
	basis       riskBasis
	accountSize float64
	percent     float64 // e.g. 1 means 1% of the account
	amount      float64
}

// PercentOfAccount budgets percent% of accountSize per trade.
func PercentOfAccount(accountSize, percent float64) RiskBudget {
	return RiskBudget{basis: basisPercent, accountSize: accountSize, percent: percent}
}

// FixedDollar budgets a flat dollar amount per trade.
func FixedDollar(amount float64) RiskBudget {
	return RiskBudget{basis: basisFixed, amount: amount}
}

// MaxDollarRisk resolves the budget to the most that may be lost if the
// stop is hit.
func (b RiskBudget) MaxDollarRisk() float64 {
	switch b.basis {
	case basisPercent:
		return b.accountSize * b.percent / 100
	case basisFixed:
		return b.amount
	}
	return 0
}

func (b RiskBudget) String() string {
	switch b.basis {
	case basisPercent:
		return fmt.Sprintf("%.2f%% of $%.2f", b.percent, b.accountSize)
	case basisFixed:
		return fmt.Sprintf("$%.2f fixed", b.amount)
	}
	return "unset"
}

// Inputs are the manually observed levels and settings for one planned
// trade. The engine treats them as an immutable value record.
type Inputs struct {
	Direction  Direction
	EntryPrice float64
	ATR        float64 // per-bar volatility unit (average true range)
	Risk       RiskBudget

	StopMultiple  float64 // ATRs between entry and protective stop
	TargetR       float64 // reward target, in multiples of risk per unit
	TrailMultiple float64 // ATRs for the trailing stop offset
	EntryBuffer   float64 // worse-price allowance on the entry limit leg
}

// Issue is one validation finding. Code is a stable identifier for
// programmatic checks; Msg is the sentence shown to the trader.
type Issue struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

// ValidationResult collects every finding for one set of inputs. Errors
// block the calculation; warnings do not. Valid is true iff Errors is empty.
type ValidationResult struct {
	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`
}

func (vr *ValidationResult) addError(code, msg string) {
	vr.Errors = append(vr.Errors, Issue{Code: code, Msg: msg})
	vr.Valid = false
}

func (vr *ValidationResult) addWarning(code, msg string) {
	vr.Warnings = append(vr.Warnings, Issue{Code: code, Msg: msg})
}

// Calculation is the result record for one planning request. It is built
// fresh on every Calculate call and never mutated afterwards.
//
// RMultiple and Ticket are absent (nil) when their precondition does not
// hold, so callers cannot mistake "not computed" for "computed as zero".
type Calculation struct {
	Direction  Direction `json:"direction"`
	EntryPrice float64   `json:"entry_price"`

	StopDistance   float64 `json:"stop_distance"`
	StopPrice      float64 `json:"stop_price"`
	RiskPerUnit    float64 `json:"risk_per_unit"`
	TargetDistance float64 `json:"target_distance"`
	TargetPrice    float64 `json:"target_price"`
	TrailingAmount float64 `json:"trailing_amount"`

	MaxDollarRisk float64  `json:"max_dollar_risk"`
	PositionSize  int      `json:"position_size"`
	TotalCost     float64  `json:"total_cost"`
	DollarRisk    float64  `json:"dollar_risk"`
	RMultiple     *float64 `json:"r_multiple,omitempty"`

	Valid    bool    `json:"valid"`
	Errors   []Issue `json:"errors,omitempty"`
	Warnings []Issue `json:"warnings,omitempty"`

	Ticket *Ticket `json:"ticket,omitempty"`
}

// Calculate runs the full planning pipeline: validate, derive price levels,
// size the position, build the order ticket. Stages after validation run
// only when the inputs are valid; an invalid Calculation keeps every derived
// field at its zero value and carries no ticket.
func Calculate(in Inputs) Calculation {
	vr := Validate(in)

	out := Calculation{
		Direction:  in.Direction,
		EntryPrice: in.EntryPrice,
		Valid:      vr.Valid,
		Errors:     vr.Errors,
		Warnings:   vr.Warnings,
	}
	if !out.Valid {
		return out
	}

	lv := deriveLevels(in)
	out.StopDistance = lv.stopDistance
	out.StopPrice = lv.stopPrice
	out.RiskPerUnit = lv.riskPerUnit
	out.TargetDistance = lv.targetDistance
	out.TargetPrice = lv.targetPrice
	out.TrailingAmount = lv.trailing

	sz := sizePosition(in.Risk.MaxDollarRisk(), lv.riskPerUnit, in.EntryPrice)
	out.MaxDollarRisk = sz.maxDollarRisk
	out.PositionSize = sz.units
	out.TotalCost = sz.totalCost
	out.DollarRisk = sz.dollarRisk

	if lv.riskPerUnit > 0 {
		r := lv.targetDistance / lv.riskPerUnit
		out.RMultiple = &r
	}

	if sz.units == 0 {
		// Valid but non-actionable: the trader should skip this setup.
		out.Warnings = append(out.Warnings, Issue{
			Code: "ZERO_POSITION",
			Msg:  "position size rounds to zero: risk per unit exceeds the risk budget",
		})
		return out
	}

	out.Ticket = buildTicket(in, lv, sz.units)
	return out
}
