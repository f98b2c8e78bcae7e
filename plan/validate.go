package plan

import "math"

// Validate checks one set of inputs for logical consistency. It never stops
// at the first problem: every error and warning is accumulated so the trader
// sees the whole checklist in one pass.
func Validate(in Inputs) ValidationResult {
	vr := ValidationResult{Valid: true}

	if !in.Direction.Valid() {
		vr.addError("BAD_DIRECTION", "direction must be long or short")
	}

	switch in.Risk.basis {
	case basisPercent:
		if !positive(in.Risk.percent) {
			vr.addError("NO_RISK_PCT", "risk percent must be greater than zero")
		} else {
			switch {
			case in.Risk.percent > 5:
				vr.addWarning("RISK_OVER_5PCT", "risk exceeds 5% of account")
			case in.Risk.percent > 2:
				vr.addWarning("RISK_OVER_2PCT", "risk exceeds 2% of account")
			}
		}
		if !positive(in.Risk.accountSize) {
			vr.addError("NO_ACCOUNT_SIZE", "account size must be greater than zero")
		}
	case basisFixed:
		if !positive(in.Risk.amount) {
			vr.addError("NO_RISK_AMOUNT", "risk amount must be greater than zero")
		}
	default:
		vr.addError("NO_RISK_BASIS", "risk budget must be a percent of account or a fixed dollar amount")
	}

	if !positive(in.EntryPrice) {
		vr.addError("NO_ENTRY_PRICE", "entry price must be greater than zero")
	}
	if !positive(in.ATR) {
		vr.addError("NO_ATR", "ATR must be greater than zero")
	}

	// A stop multiple of zero is allowed: it degenerates to stop == entry and
	// surfaces downstream as a zero-position warning.
	if !nonNegative(in.StopMultiple) {
		vr.addError("BAD_STOP_MULTIPLE", "stop multiple cannot be negative")
	}

	if !positive(in.TargetR) {
		vr.addError("NO_TARGET_R", "target R multiple must be greater than zero")
	} else {
		switch {
		case in.TargetR < 1:
			vr.addWarning("REWARD_UNDER_RISK", "reward is less than risk")
		case in.TargetR < 2:
			vr.addWarning("REWARD_UNDER_2R", "reward under 2R: consider waiting for a better setup")
		}
	}

	if !nonNegative(in.TrailMultiple) {
		vr.addError("BAD_TRAIL_MULTIPLE", "trailing multiple cannot be negative")
	}
	if !nonNegative(in.EntryBuffer) {
		vr.addError("BAD_ENTRY_BUFFER", "entry buffer cannot be negative")
	}

	return vr
}

// positive and nonNegative reject NaN and +Inf as well, so garbage input
// can never reach the arithmetic stages.

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func nonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}
