package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/outcome-sim/internal/domain"
	"gonum.org/v1/gonum/floats"
)

// histogramBarWidth is the number of characters used by the tallest bar.
const histogramBarWidth = 50

// HistogramTextFormatter draws the outcome histogram as horizontal bars.
type HistogramTextFormatter struct{}

func (h HistogramTextFormatter) Name() string { return "histogram" }

func (h HistogramTextFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	hist := result.Histogram
	heights := hist.Heights()

	label := "count"
	if hist.Density {
		label = "density"
	}
	fmt.Fprintln(&buf, "Monte Carlo Simulation of Outcome Variable")
	fmt.Fprintf(&buf, "%d bins, n=%d, seed=%d (%s)\n", hist.Bins(), result.Parameters.Samples, result.Seed, label)

	if len(heights) == 0 {
		return buf.Bytes(), nil
	}
	tallest := floats.Max(heights)

	for i, v := range heights {
		bar := 0
		if tallest > 0 {
			bar = int(v / tallest * histogramBarWidth)
		}
		closing := ")"
		if i == len(heights)-1 {
			closing = "]"
		}
		fmt.Fprintf(&buf, "[%9s, %9s%s %-*s %.6f\n",
			FormatStat(hist.Edges[i]), FormatStat(hist.Edges[i+1]), closing,
			histogramBarWidth, strings.Repeat("#", bar), v)
	}
	return buf.Bytes(), nil
}
