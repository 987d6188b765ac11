package output

import (
	"encoding/json"

	"github.com/rpgo/outcome-sim/internal/domain"
)

// JSONFormatter serializes the simulation result (without raw samples) as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.SimulationResult) ([]byte, error) {
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
