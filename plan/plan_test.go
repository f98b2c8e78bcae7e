package plan

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-9

func TestCalculateLong(t *testing.T) {
	t.Parallel()

	c := Calculate(Inputs{
		Direction:     Long,
		EntryPrice:    50.00,
		ATR:           1.50,
		Risk:          PercentOfAccount(10000, 1),
		StopMultiple:  2,
		TargetR:       2,
		TrailMultiple: 1,
		EntryBuffer:   0.05,
	})

	assert.True(t, c.Valid)
	assert.Empty(t, c.Errors)
	assert.Empty(t, c.Warnings)

	assert.InDelta(t, 3.00, c.StopDistance, delta)
	assert.InDelta(t, 47.00, c.StopPrice, delta)
	assert.InDelta(t, 3.00, c.RiskPerUnit, delta)
	assert.InDelta(t, 6.00, c.TargetDistance, delta)
	assert.InDelta(t, 56.00, c.TargetPrice, delta)
	assert.InDelta(t, 1.50, c.TrailingAmount, delta)

	assert.InDelta(t, 100.00, c.MaxDollarRisk, delta)
	assert.Equal(t, 33, c.PositionSize)
	assert.InDelta(t, 1650.00, c.TotalCost, delta)
	assert.InDelta(t, 99.00, c.DollarRisk, delta)

	require.NotNil(t, c.RMultiple)
	assert.InDelta(t, 2.00, *c.RMultiple, delta)

	require.NotNil(t, c.Ticket)
	assert.Equal(t, BuyStopLimit, c.Ticket.EntryKind)
	assert.InDelta(t, 47.00, c.Ticket.EntryStopPrice, delta)
	assert.InDelta(t, 47.05, c.Ticket.EntryLimitPrice, delta)
	assert.Equal(t, 33, c.Ticket.Quantity)
	assert.Equal(t, SellLimit, c.Ticket.TargetKind)
	assert.InDelta(t, 56.00, c.Ticket.TargetPrice, delta)
	assert.Equal(t, SellTrailingStop, c.Ticket.TrailKind)
	assert.InDelta(t, -1.50, c.Ticket.TrailAmount, delta)
	assert.Equal(t, Linkage, c.Ticket.Linkage)
}

func TestCalculateShort(t *testing.T) {
	t.Parallel()

	c := Calculate(Inputs{
		Direction:     Short,
		EntryPrice:    50.00,
		ATR:           1.50,
		Risk:          PercentOfAccount(10000, 1),
		StopMultiple:  2,
		TargetR:       2,
		TrailMultiple: 1,
		EntryBuffer:   0.05,
	})

	assert.True(t, c.Valid)

	assert.InDelta(t, 3.00, c.StopDistance, delta)
	assert.InDelta(t, 53.00, c.StopPrice, delta)
	assert.InDelta(t, 3.00, c.RiskPerUnit, delta)
	assert.InDelta(t, 44.00, c.TargetPrice, delta)

	assert.Equal(t, 33, c.PositionSize)
	assert.InDelta(t, 99.00, c.DollarRisk, delta)

	require.NotNil(t, c.Ticket)
	assert.Equal(t, SellStopLimit, c.Ticket.EntryKind)
	assert.InDelta(t, 53.00, c.Ticket.EntryStopPrice, delta)
	assert.InDelta(t, 52.95, c.Ticket.EntryLimitPrice, delta)
	assert.Equal(t, BuyLimit, c.Ticket.TargetKind)
	assert.InDelta(t, 44.00, c.Ticket.TargetPrice, delta)
	assert.Equal(t, BuyTrailingStop, c.Ticket.TrailKind)
	assert.InDelta(t, 1.50, c.Ticket.TrailAmount, delta)
}

func TestCalculateFixedDollarBudget(t *testing.T) {
	t.Parallel()

	in := goodInputs()
	in.Risk = FixedDollar(250)

	c := Calculate(in)
	assert.True(t, c.Valid)
	assert.InDelta(t, 250.00, c.MaxDollarRisk, delta)
	assert.Equal(t, 83, c.PositionSize)
	assert.InDelta(t, 249.00, c.DollarRisk, delta)
}

// A zero risk percent is rejected outright: no levels, no sizing, no ticket.
func TestCalculateRejectsZeroRiskPercent(t *testing.T) {
	t.Parallel()

	in := goodInputs()
	in.Risk = PercentOfAccount(10000, 0)

	c := Calculate(in)
	assert.False(t, c.Valid)
	require.Len(t, c.Errors, 1)
	assert.Equal(t, "risk percent must be greater than zero", c.Errors[0].Msg)

	assert.Zero(t, c.StopDistance)
	assert.Zero(t, c.StopPrice)
	assert.Zero(t, c.TargetPrice)
	assert.Zero(t, c.MaxDollarRisk)
	assert.Zero(t, c.PositionSize)
	assert.Nil(t, c.RMultiple)
	assert.Nil(t, c.Ticket)
}

// Zero multiples collapse the geometry onto the entry price. The plan stays
// valid but sizes to zero, so no ticket is produced.
func TestCalculateDegenerateMultiples(t *testing.T) {
	t.Parallel()

	in := goodInputs()
	in.StopMultiple = 0
	in.TrailMultiple = 0

	c := Calculate(in)
	assert.True(t, c.Valid)
	assert.Contains(t, codes(c.Warnings), "ZERO_POSITION")

	assert.InDelta(t, 50.00, c.StopPrice, delta)
	assert.Zero(t, c.StopDistance)
	assert.Zero(t, c.RiskPerUnit)
	assert.InDelta(t, 100.00, c.MaxDollarRisk, delta)
	assert.Equal(t, 0, c.PositionSize)
	assert.Nil(t, c.RMultiple)
	assert.Nil(t, c.Ticket)
}

// A budget below one unit of risk also yields no ticket, with the same
// zero-position warning.
func TestCalculateBudgetTooSmall(t *testing.T) {
	t.Parallel()

	in := goodInputs()
	in.Risk = FixedDollar(2) // risk per unit is 3.00

	c := Calculate(in)
	assert.True(t, c.Valid)
	assert.Equal(t, 0, c.PositionSize)
	assert.Zero(t, c.TotalCost)
	assert.Zero(t, c.DollarRisk)
	assert.Nil(t, c.Ticket)
	assert.Contains(t, codes(c.Warnings), "ZERO_POSITION")
}

func TestCalculateDeterministic(t *testing.T) {
	t.Parallel()

	in := goodInputs()
	assert.Equal(t, Calculate(in), Calculate(in))
}

// Whole-unit sizing must never risk more dollars than the budget allows.
func TestCalculateFloorsPositionSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		budget    float64
		wantUnits int
	}{
		{"exact fit", 99, 33},
		{"just under a unit more", 101.99, 33},
		{"one more unit", 102, 34},
		{"fractional budget", 100.50, 33},
		{"single unit", 3, 1},
		{"below one unit", 2.99, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := goodInputs()
			in.Risk = FixedDollar(tt.budget)

			c := Calculate(in)
			assert.Equal(t, tt.wantUnits, c.PositionSize)
			assert.LessOrEqual(t, c.DollarRisk, c.MaxDollarRisk+delta)
			assert.InDelta(t, float64(tt.wantUnits)*c.RiskPerUnit, c.DollarRisk, delta)
		})
	}
}

// A budget astronomically above the per-unit risk saturates at the largest
// representable size instead of wrapping negative.
func TestCalculateSaturatesHugePositionSize(t *testing.T) {
	t.Parallel()

	in := goodInputs()
	in.ATR = 1e-8
	in.StopMultiple = 1
	in.Risk = PercentOfAccount(1e15, 100)

	c := Calculate(in)
	assert.True(t, c.Valid)
	assert.Equal(t, math.MaxInt, c.PositionSize)
	assert.GreaterOrEqual(t, c.PositionSize, 0)
	assert.Positive(t, c.TotalCost)
	assert.Positive(t, c.DollarRisk)
	assert.LessOrEqual(t, c.DollarRisk, c.MaxDollarRisk)
	assert.Contains(t, codes(c.Warnings), "RISK_OVER_5PCT")
	require.NotNil(t, c.Ticket)
	assert.Equal(t, math.MaxInt, c.Ticket.Quantity)
}

// The stop sits on the losing side of the entry and the target on the
// winning side, for both directions.
func TestCalculateSides(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		direction Direction
	}{
		{"long", Long},
		{"short", Short},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := goodInputs()
			in.Direction = tt.direction

			c := Calculate(in)
			require.True(t, c.Valid)
			require.NotNil(t, c.Ticket)

			if tt.direction == Long {
				assert.Less(t, c.StopPrice, c.EntryPrice)
				assert.Greater(t, c.TargetPrice, c.EntryPrice)
				assert.Greater(t, c.Ticket.EntryLimitPrice, c.Ticket.EntryStopPrice)
				assert.Negative(t, c.Ticket.TrailAmount)
			} else {
				assert.Greater(t, c.StopPrice, c.EntryPrice)
				assert.Less(t, c.TargetPrice, c.EntryPrice)
				assert.Less(t, c.Ticket.EntryLimitPrice, c.Ticket.EntryStopPrice)
				assert.Positive(t, c.Ticket.TrailAmount)
			}
		})
	}
}

// Risk per unit is recomputed from the rounded stop side rather than taken
// from the raw distance, so the two always agree.
func TestCalculateRiskPerUnitMatchesStop(t *testing.T) {
	t.Parallel()

	in := goodInputs()
	in.EntryPrice = 123.47
	in.ATR = 2.13
	in.StopMultiple = 1.8

	c := Calculate(in)
	require.True(t, c.Valid)
	assert.InDelta(t, math.Abs(c.EntryPrice-c.StopPrice), c.RiskPerUnit, delta)
}

func TestRiskBudgetMaxDollarRisk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		budget RiskBudget
		want   float64
	}{
		{"one percent of 10k", PercentOfAccount(10000, 1), 100},
		{"two percent of 25k", PercentOfAccount(25000, 2), 500},
		{"fixed 75", FixedDollar(75), 75},
		{"unset", RiskBudget{}, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, tt.budget.MaxDollarRisk(), delta)
		})
	}
}

func TestDirectionValid(t *testing.T) {
	t.Parallel()

	assert.True(t, Long.Valid())
	assert.True(t, Short.Valid())
	assert.False(t, Direction("").Valid())
	assert.False(t, Direction("Long").Valid())
	assert.False(t, Direction("buy").Valid())
}
