// Package id generates plan references: short, time-sortable tags a trader
// can copy into a broker's client-order-id field to tie the entered bracket
// back to the plan that produced it.
package id

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// refPrefix marks references generated by this tool.
const refPrefix = "TP"

// NewPlanRef returns a fresh plan reference: the TP prefix plus a
// 26-character ULID. References generated by one process sort
// lexicographically by creation time.
func NewPlanRef() string {
	return refPrefix + "-" + ulid.Make().String()
}

// IsPlanRef reports whether s is a reference produced by NewPlanRef.
func IsPlanRef(s string) bool {
	rest, ok := strings.CutPrefix(s, refPrefix+"-")
	if !ok {
		return false
	}
	_, err := ulid.ParseStrict(rest)
	return err == nil
}
