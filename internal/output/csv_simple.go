package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/outcome-sim/internal/domain"
)

// CSVSummarizer implements the metric/value summary CSV output.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	s := result.Summary
	rows := [][]string{
		{"Metric", "Value", "Description"},
		{"Samples", intToString(result.Parameters.Samples), "Number of Monte Carlo samples"},
		{"Seed", uint64ToString(result.Seed), "Random seed used for the run"},
		{"Mean", FormatStat(s.Mean), "Mean of outcome"},
		{"StdDev", FormatStat(s.StdDev), "Population standard deviation of outcome"},
		{"Lower", FormatStat(s.Lower), FormatLevel(s.Level) + " interval lower bound"},
		{"Upper", FormatStat(s.Upper), FormatLevel(s.Level) + " interval upper bound"},
		{"Min", FormatStat(s.Min), "Smallest outcome"},
		{"Max", FormatStat(s.Max), "Largest outcome"},
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
