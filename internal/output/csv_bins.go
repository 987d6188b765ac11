package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rpgo/outcome-sim/internal/domain"
)

// CSVBinsExporter writes one row per histogram bin.
type CSVBinsExporter struct{}

func (c CSVBinsExporter) Name() string { return "csv-bins" }

func (c CSVBinsExporter) Format(result *domain.SimulationResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Bin", "Lower", "Upper", "Count", "Density"}); err != nil {
		return nil, err
	}
	h := result.Histogram
	for i := range h.Counts {
		row := []string{
			intToString(i),
			floatToString(h.Edges[i]),
			floatToString(h.Edges[i+1]),
			floatToString(h.Counts[i]),
			floatToString(h.Densities[i]),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func floatToString(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func uint64ToString(v uint64) string { return strconv.FormatUint(v, 10) }
