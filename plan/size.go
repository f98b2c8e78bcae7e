package plan

import "math"

type sizing struct {
	maxDollarRisk float64
	units         int
	totalCost     float64
	dollarRisk    float64
}

// sizePosition converts the dollar budget and the per-unit risk distance
// into a whole-unit position. Floor, never round: the realized dollar risk
// must not exceed the budget. A zero risk distance means the risk is
// undefined, so the size is zero rather than a division fault.
func sizePosition(budget, riskPerUnit, entryPrice float64) sizing {
	s := sizing{maxDollarRisk: budget}
	if riskPerUnit <= 0 {
		return s
	}

	q := math.Floor(budget / riskPerUnit)
	if q >= math.MaxInt {
		// A quotient past the int range saturates at the largest
		// representable size instead of wrapping negative.
		s.units = math.MaxInt
	} else {
		s.units = int(q)
	}
	s.totalCost = float64(s.units) * entryPrice
	s.dollarRisk = float64(s.units) * riskPerUnit
	return s
}
