package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/outcome-sim/internal/config"
	"github.com/rpgo/outcome-sim/internal/output"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootPrintsThreeSummaryLines(t *testing.T) {
	stdout, _, err := execute(t, "--seed", "42", "--plot", "")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "Mean of outcome: "))
	assert.True(t, strings.HasPrefix(lines[1], "Standard deviation of outcome: "))
	assert.True(t, strings.HasPrefix(lines[2], "95% confidence interval of outcome: "))
	assert.Contains(t, lines[2], " to ")
}

func TestRootSameSeedSameOutput(t *testing.T) {
	first, _, err := execute(t, "--seed", "7", "--plot", "")
	require.NoError(t, err)
	second, _, err := execute(t, "run", "--seed", "7", "--plot", "")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, _, err := execute(t, "--seed", "8", "--plot", "")
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestRootWritesPlot(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "hist.png")
	_, stderr, err := execute(t, "--seed", "1", "--samples", "500", "--plot", plot)
	require.NoError(t, err)

	info, err := os.Stat(plot)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
	assert.Contains(t, stderr, "histogram written to")
}

func TestRootJSONOutput(t *testing.T) {
	stdout, _, err := execute(t, "--seed", "3", "--samples", "1000", "--bins", "20", "--json", "--plot", "")
	require.NoError(t, err)

	var decoded struct {
		Seed    uint64 `json:"seed"`
		Summary struct {
			Mean  float64 `json:"mean"`
			Lower float64 `json:"lower"`
			Upper float64 `json:"upper"`
		} `json:"summary"`
		Histogram struct {
			Counts []float64 `json:"counts"`
		} `json:"histogram"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	assert.Equal(t, uint64(3), decoded.Seed)
	assert.InDelta(t, 50.0, decoded.Summary.Mean, 2.5)
	assert.LessOrEqual(t, decoded.Summary.Lower, decoded.Summary.Upper)
	assert.Len(t, decoded.Histogram.Counts, 20)
}

func TestRootWritesReportFile(t *testing.T) {
	report := filepath.Join(t.TempDir(), "report.html")
	stdout, _, err := execute(t, "--seed", "5", "--format", "html", "--output", report, "--plot", "")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Contains(t, string(data), "new Chart(")
}

func TestRootInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"zero samples", []string{"--samples", "0"}, "samples must be greater than 0"},
		{"bad format", []string{"--format", "pdf"}, "unsupported output format"},
		{"bad log level", []string{"--log-level", "loud"}, "invalid log level"},
		{"missing config", []string{"--config", "does-not-exist.yaml"}, "failed to read file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append(tt.args, "--plot", "")
			_, _, err := execute(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRootConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sim.yaml")
	body := "simulation:\n  samples: 300\n  seed: 11\n  noise:\n    std_dev: 0\noutput:\n  format: csv\n  plot_path: \"\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	stdout, _, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "Metric,Value,Description\n"))
	assert.Contains(t, stdout, "Samples,300,")
	assert.Contains(t, stdout, "Seed,11,")

	// flags win over the file
	stdout, _, err = execute(t, "--config", path, "--format", "console")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "Mean of outcome: "))
}

func TestRunWritesMetrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outcomesim.prom")
	_, _, err := execute(t, "--seed", "4", "--samples", "200", "--plot", "", "--metrics", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "outcomesim_samples_total 200")
	assert.Contains(t, string(data), `outcomesim_outcome{stat="mean"}`)

	_, _, err = execute(t, "price", "--simulations", "500", "--steps", "2", "--metrics", path)
	require.NoError(t, err)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `outcomesim_option_price{type="call"}`)
}

func TestPriceCommand(t *testing.T) {
	stdout, _, err := execute(t, "price", "--simulations", "2000", "--steps", "8", "--seed", "99")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "Monte Carlo European Option Pricing\n"))
	assert.Contains(t, stdout, "simulations: 2000\n")
	assert.Contains(t, stdout, "seed:        99\n")
	assert.Contains(t, stdout, "put_call_parity_gap: ")

	again, _, err := execute(t, "price", "--simulations", "2000", "--steps", "8", "--seed", "99")
	require.NoError(t, err)
	assert.Equal(t, stdout, again)
}

func TestPriceCommandJSON(t *testing.T) {
	stdout, _, err := execute(t, "price", "--simulations", "1000", "--steps", "4", "--json")
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &decoded))
	assert.Contains(t, decoded, "call_price")
	assert.Contains(t, decoded, "put_price")
}

func TestPriceCommandInvalid(t *testing.T) {
	_, _, err := execute(t, "price", "--volatility", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "volatility must be greater than 0")
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outcomesim.yaml")
	stdout, _, err := execute(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Wrote "+path)

	loaded, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, config.NewInputParser().CreateExampleConfiguration(), loaded)

	_, _, err = execute(t, "config", "init", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = execute(t, "config", "init", path, "--force")
	require.NoError(t, err)

	stdout, _, err = execute(t, "config", "show", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, stdout, "seed: 12345")

	stdout, _, err = execute(t, "config", "show", "--config", path, "--json")
	require.NoError(t, err)
	var shown struct {
		Simulation struct {
			Seed    uint64 `json:"seed"`
			Samples int    `json:"samples"`
		} `json:"simulation"`
		Output struct {
			Format string `json:"format"`
		} `json:"output"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &shown))
	assert.Equal(t, uint64(12345), shown.Simulation.Seed)
	assert.Equal(t, 10000, shown.Simulation.Samples)
	assert.Equal(t, "json", shown.Output.Format)
}

func TestRootHelpMentionsPlotFile(t *testing.T) {
	stdout, _, err := execute(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "outcome_histogram.png")
	assert.Contains(t, stdout, `--plot ""`)
}

func TestNewVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "outcomesim version "+version+"\n", stdout)

	stdout, _, err = execute(t, "version", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"`+version+`"}`, stdout)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger("warn", &buf)
	require.NoError(t, err)
	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())

	logger.Infof("hidden")
	logger.Warnf("shown %d", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 1")

	_, err = newLogger("loud", &buf)
	assert.Error(t, err)
}

func TestFormatFlagListsFormatters(t *testing.T) {
	root := newRootCmd()
	usage := root.Flags().Lookup("format").Usage
	for _, name := range output.AvailableFormatterNames() {
		assert.Contains(t, usage, name)
	}
}
