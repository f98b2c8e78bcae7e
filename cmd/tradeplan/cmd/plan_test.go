package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// silenceStdout routes stdout to /dev/null for the duration of the test so
// command output does not interleave with the test runner's.
func silenceStdout(t *testing.T) {
	t.Helper()

	old := os.Stdout
	null, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	require.NoError(t, err)
	os.Stdout = null
	t.Cleanup(func() {
		os.Stdout = old
		null.Close()
	})
}

// The JSON and workbook outputs are independent: asking for both produces
// both.
func TestPlanJSONAlsoWritesWorkbook(t *testing.T) {
	silenceStdout(t)

	path := filepath.Join(t.TempDir(), "plan.xlsx")
	rootCmd.SetArgs([]string{
		"plan", "-e", "50", "-a", "1.5",
		"--risk-amount", "250",
		"--json", "--xlsx", path,
	})
	require.NoError(t, rootCmd.Execute())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
