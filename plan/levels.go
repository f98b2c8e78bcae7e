package plan

import "math"

// levels are the prices derived from the entry, the volatility unit, and
// the configured multiples. Only computed for validated inputs.
type levels struct {
	stopDistance   float64
	stopPrice      float64
	riskPerUnit    float64
	targetDistance float64
	targetPrice    float64
	trailing       float64
}

// deriveLevels places the stop on the adverse side of the entry and the
// target on the favorable side. riskPerUnit is recomputed from the two
// prices rather than assumed equal to stopDistance, so the figures stay
// consistent if price rounding is ever introduced. Multiples of zero are
// not clamped; they degenerate to stop == entry and are handled by the
// position sizer.
func deriveLevels(in Inputs) levels {
	sign := in.Direction.sign()

	lv := levels{}
	lv.stopDistance = in.ATR * in.StopMultiple
	lv.stopPrice = in.EntryPrice - sign*lv.stopDistance
	lv.riskPerUnit = math.Abs(in.EntryPrice - lv.stopPrice)
	lv.targetDistance = lv.riskPerUnit * in.TargetR
	lv.targetPrice = in.EntryPrice + sign*lv.targetDistance
	lv.trailing = in.ATR * in.TrailMultiple
	return lv
}
