package plan

import "math"

// OrderKind names one leg of the bracket the way a broker ticket would.
type OrderKind string

const (
	BuyStopLimit     OrderKind = "buy-stop-limit"
	SellStopLimit    OrderKind = "sell-stop-limit"
	BuyLimit         OrderKind = "buy-limit"
	SellLimit        OrderKind = "sell-limit"
	BuyTrailingStop  OrderKind = "buy-trailing-stop"
	SellTrailingStop OrderKind = "sell-trailing-stop"
)

// Linkage is the only bracket wiring the builder emits: the entry order,
// once filled, arms the profit target and the trailing stop as a
// one-cancels-other pair. Both exit legs are always present; nothing here
// deactivates one in favor of the other.
const Linkage = "entry triggers one-cancels-other bracket of target and trailing stop"

// Ticket is a broker-agnostic order ticket for one planned trade. Every
// kind field is fully determined by the trade direction.
type Ticket struct {
	EntryKind       OrderKind `json:"entry_kind"`
	EntryStopPrice  float64   `json:"entry_stop_price"`
	EntryLimitPrice float64   `json:"entry_limit_price"`
	Quantity        int       `json:"quantity"`

	TargetKind  OrderKind `json:"target_kind"`
	TargetPrice float64   `json:"target_price"`

	TrailKind   OrderKind `json:"trail_kind"`
	TrailAmount float64   `json:"trail_amount"`

	Linkage string `json:"linkage"`
}

// buildTicket translates the derived levels into the three bracket legs.
// No ticket is produced for a zero-size plan.
//
// The entry limit sits on the worse-price side of the trigger so the order
// still fills once armed. The trailing offset is signed the way trailing
// platforms expect it: negative for a long (offset below the running high),
// positive for a short.
func buildTicket(in Inputs, lv levels, qty int) *Ticket {
	if qty <= 0 {
		return nil
	}

	t := &Ticket{
		EntryStopPrice: lv.stopPrice,
		Quantity:       qty,
		TargetPrice:    lv.targetPrice,
		Linkage:        Linkage,
	}

	trail := math.Abs(lv.trailing)
	switch in.Direction {
	case Short:
		t.EntryKind = SellStopLimit
		t.EntryLimitPrice = lv.stopPrice - in.EntryBuffer
		t.TargetKind = BuyLimit
		t.TrailKind = BuyTrailingStop
		t.TrailAmount = trail
	default:
		t.EntryKind = BuyStopLimit
		t.EntryLimitPrice = lv.stopPrice + in.EntryBuffer
		t.TargetKind = SellLimit
		t.TrailKind = SellTrailingStop
		t.TrailAmount = -trail
	}
	return t
}
