package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/outcome-sim/internal/domain"
	"github.com/rpgo/outcome-sim/pkg/decimal"
)

// ConsoleFormatter prints the three summary lines of a run.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	s := result.Summary
	fmt.Fprintf(&buf, "Mean of outcome: %s\n", FormatStat(s.Mean))
	fmt.Fprintf(&buf, "Standard deviation of outcome: %s\n", FormatStat(s.StdDev))
	fmt.Fprintf(&buf, "%s confidence interval of outcome: %s\n", FormatLevel(s.Level), decimal.FormatInterval(s.Lower, s.Upper, decimal.DefaultPlaces))
	return buf.Bytes(), nil
}
