// Package metrics exports run statistics in the Prometheus text format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rpgo/outcome-sim/internal/domain"
)

// Namespace prefixes every exported metric.
const Namespace = "outcomesim"

// Recorder holds the metrics of a single process on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	samplesCounter   prometheus.Counter
	runsCounter      *prometheus.CounterVec
	durationGauge    *prometheus.GaugeVec
	outcomeGauge     *prometheus.GaugeVec
	optionPriceGauge *prometheus.GaugeVec
}

// NewRecorder creates a Recorder with all metrics registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		samplesCounter: factory.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "samples_total",
			Help:      "Number of outcome samples drawn.",
		}),
		runsCounter: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Number of completed runs.",
		}, []string{"kind"}),
		durationGauge: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last run.",
		}, []string{"kind"}),
		outcomeGauge: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "outcome",
			Help:      "Summary statistics of the last outcome simulation.",
		}, []string{"stat"}),
		optionPriceGauge: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "option_price",
			Help:      "Estimated option prices of the last pricing run.",
		}, []string{"type"}),
	}
}

// ObserveSimulation records a finished outcome simulation.
func (r *Recorder) ObserveSimulation(result *domain.SimulationResult, elapsed time.Duration) {
	r.samplesCounter.Add(float64(result.Parameters.Samples))
	r.runsCounter.WithLabelValues("simulation").Inc()
	r.durationGauge.WithLabelValues("simulation").Set(elapsed.Seconds())

	s := result.Summary
	r.outcomeGauge.WithLabelValues("mean").Set(s.Mean)
	r.outcomeGauge.WithLabelValues("std_dev").Set(s.StdDev)
	r.outcomeGauge.WithLabelValues("lower").Set(s.Lower)
	r.outcomeGauge.WithLabelValues("upper").Set(s.Upper)
}

// ObserveOption records a finished option pricing run.
func (r *Recorder) ObserveOption(summary *domain.OptionSummary, elapsed time.Duration) {
	r.runsCounter.WithLabelValues("option").Inc()
	r.durationGauge.WithLabelValues("option").Set(elapsed.Seconds())
	r.optionPriceGauge.WithLabelValues("call").Set(summary.CallPrice)
	r.optionPriceGauge.WithLabelValues("put").Set(summary.PutPrice)
}

// WriteTextfile writes every metric to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics %s: %w", path, err)
	}
	return nil
}
