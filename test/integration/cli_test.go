package integration

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/outcome-sim/internal/calculation"
	"github.com/rpgo/outcome-sim/internal/config"
	"github.com/rpgo/outcome-sim/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputGeneration(t *testing.T) {
	// Load configuration
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	// Run simulation
	result, err := calculation.NewOutcomeSimulator(cfg.Simulation, nil).Run()
	require.NoError(t, err)

	dir := t.TempDir()
	for _, format := range output.AvailableFormatterNames() {
		path, err := output.WriteReport(result, format, dir)
		assert.NoError(t, err, format)

		info, err := os.Stat(path)
		if assert.NoError(t, err, format) {
			assert.Greater(t, info.Size(), int64(0), format)
		}
	}

	plot := filepath.Join(dir, "outcome_histogram.png")
	require.NoError(t, output.SaveHistogramPlot(result, plot))
	data, err := os.ReadFile(plot)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("\x89PNG")))
}

func TestRepeatedRunsPrintIdentically(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile("../testdata/example_config.yaml")
	require.NoError(t, err)

	render := func() string {
		result, err := calculation.NewOutcomeSimulator(cfg.Simulation, nil).Run()
		require.NoError(t, err)
		out, err := output.Render(result, cfg.Output.Format)
		require.NoError(t, err)
		return string(out)
	}

	first := render()
	assert.Equal(t, first, render())
	assert.Len(t, strings.Split(strings.TrimSpace(first), "\n"), 3)
}
