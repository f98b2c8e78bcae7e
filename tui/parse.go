package tui

import (
	"strconv"
	"strings"

	"github.com/rustyeddy/tradeplan/plan"
)

// formValues carries the raw form strings before any parsing.
type formValues struct {
	Entry   string
	ATR     string
	Account string
	Risk    string
	Stop    string
	Target  string
	Trail   string
	Buffer  string
}

// parseFloat is forgiving: unparsable text becomes zero so the validator
// reports the field instead of the form crashing mid-edit.
func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// buildInputs assembles engine inputs from the raw form state.
func buildInputs(dir plan.Direction, fixedBasis bool, v formValues) plan.Inputs {
	in := plan.Inputs{
		Direction:     dir,
		EntryPrice:    parseFloat(v.Entry),
		ATR:           parseFloat(v.ATR),
		StopMultiple:  parseFloat(v.Stop),
		TargetR:       parseFloat(v.Target),
		TrailMultiple: parseFloat(v.Trail),
		EntryBuffer:   parseFloat(v.Buffer),
	}

	if fixedBasis {
		in.Risk = plan.FixedDollar(parseFloat(v.Risk))
	} else {
		in.Risk = plan.PercentOfAccount(parseFloat(v.Account), parseFloat(v.Risk))
	}

	return in
}
