package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every rejected value errors out before the preference store is opened,
// so nothing is persisted and no database file is needed here.
func TestAccountSetRejectsBadAmounts(t *testing.T) {
	t.Parallel()

	for _, bad := range []string{"NaN", "Inf", "+Inf", "-Inf", "0", "-25", "abc"} {
		err := runAccountSet(accountSetCmd, []string{bad})
		assert.Error(t, err, bad)
	}
}
