package output_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wealthpro/wealth-analytics/internal/calculation"
	"github.com/wealthpro/wealth-analytics/internal/config"
	"github.com/wealthpro/wealth-analytics/internal/output"
)

func exampleReport(t *testing.T) *output.MonteCarloCSVReport {
	t.Helper()
	example := config.NewInputParser().CreateExampleConfiguration()
	in := example.MonteCarlo[0]
	in.Seed = 7
	res, err := calculation.RunMonteCarlo(t.Context(), in)
	require.NoError(t, err)
	return &output.MonteCarloCSVReport{Input: in, Result: res}
}

func TestGenerateReport_AllFormats(t *testing.T) {
	example := config.NewInputParser().CreateExampleConfiguration()
	report, err := calculation.NewCalculationEngine().RunPlan(t.Context(), example)
	require.NoError(t, err)

	dir := t.TempDir()
	files, err := output.GenerateReport(report, "all", dir)
	require.NoError(t, err)
	require.Len(t, files, 4)
	for _, f := range files {
		info, err := os.Stat(f)
		require.NoError(t, err)
		assert.Positive(t, info.Size(), f)
	}

	files, err = output.GenerateReport(report, "json", dir)
	require.NoError(t, err)
	assert.Equal(t, ".json", filepath.Ext(files[0]))
}

func TestUnknownFormatErrorIncludesSuggestions(t *testing.T) {
	_, err := output.GenerateReport(nil, "definitely-not-a-format", t.TempDir())
	require.Error(t, err)
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "Try one of:")
	assert.Contains(t, err.Error(), "series-csv")
}

func TestMonteCarloCSVReport(t *testing.T) {
	r := exampleReport(t)
	files, err := r.GenerateAllCSVReports(filepath.Join(t.TempDir(), "mc"))
	require.NoError(t, err)
	require.Len(t, files, 4)

	detailed, err := os.ReadFile(files[1])
	require.NoError(t, err)
	// header + one row per simulation
	assert.Len(t, splitLines(string(detailed)), 1+calculation.DefaultSimulations)

	paths, err := os.ReadFile(files[3])
	require.NoError(t, err)
	lines := splitLines(string(paths))
	assert.Len(t, lines, 1+r.Result.Months+1)
	assert.Equal(t, "0", lines[1][:1])
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSpace(s), "\n")
}
