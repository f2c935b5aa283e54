package bench

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestRunner() *Runner {
	return &Runner{
		Log:     zerolog.Nop(),
		Seed:    1,
		Results: NewResults(),
	}
}

func TestRunnerSuites(t *testing.T) {
	cases := []struct {
		op      string
		pattern string
	}{
		{"insert", "random"},
		{"insert", "sequential"},
		{"search", "random"},
		{"search", "sequential"},
		{"search", "skewed"},
		{"delete", "random"},
		{"delete", "sequential"},
		{"mixed", "mixed"},
	}
	sizes := []int{200, 400}

	for _, tc := range cases {
		t.Run(tc.op+"_"+tc.pattern, func(t *testing.T) {
			runner := newTestRunner()
			require.NoError(t, runner.Run(tc.op, tc.pattern, sizes))

			for _, kind := range TreeKinds {
				for _, size := range sizes {
					key := fmt.Sprintf("%s_%d", tc.pattern, size)
					secs, ok := runner.Results[kind][tc.op][key]
					require.True(t, ok, "missing result %s/%s/%s", kind, tc.op, key)
					require.GreaterOrEqual(t, secs, 0.0)
				}
			}
		})
	}
}

func TestRunnerRejectsUnknownSuite(t *testing.T) {
	runner := newTestRunner()
	require.Error(t, runner.Run("insert", "skewed", []int{10}))
	require.Error(t, runner.Run("delete", "skewed", []int{10}))
	require.Error(t, runner.Run("lookup", "random", []int{10}))
}

func TestResultsRoundTrip(t *testing.T) {
	runner := newTestRunner()
	require.NoError(t, runner.Run("insert", "random", []int{100}))

	path := filepath.Join(t.TempDir(), "results.json")
	require.NoError(t, runner.Results.Save(path))

	loaded, err := LoadResults(path)
	require.NoError(t, err)
	require.Equal(t, runner.Results, loaded)
}
