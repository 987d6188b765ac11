package calculation

import (
	"fmt"

	"github.com/rpgo/outcome-sim/internal/domain"
)

// Defaults match the reference run: input1 ~ N(10, 2), input2 ~ N(5, 1),
// noise ~ N(0, 1), 10,000 samples, 50 density bins, 95% interval.
const (
	DefaultSamples       = 10000
	DefaultBins          = 50
	DefaultIntervalLevel = 0.95
)

// DefaultSimulationParameters returns the reference run parameters with no seed
func DefaultSimulationParameters() domain.SimulationParameters {
	return domain.SimulationParameters{
		Samples:       DefaultSamples,
		Input1:        domain.Distribution{Mean: 10, StdDev: 2},
		Input2:        domain.Distribution{Mean: 5, StdDev: 1},
		Noise:         domain.Distribution{Mean: 0, StdDev: 1},
		IntervalLevel: DefaultIntervalLevel,
		Histogram: domain.HistogramSettings{
			Bins:    DefaultBins,
			Density: true,
		},
	}
}

// OutcomeSimulator runs the input1*input2+noise Monte Carlo simulation
type OutcomeSimulator struct {
	Parameters domain.SimulationParameters
	Seed       uint64
	Logger     Logger
}

// NewOutcomeSimulator creates a new simulator. A zero seed is replaced by
// one from the seed provider so the run can still be reproduced later.
func NewOutcomeSimulator(params domain.SimulationParameters, logger Logger) *OutcomeSimulator {
	seed := params.Seed
	if seed == 0 {
		seed = seedFunc()
	}
	return &OutcomeSimulator{
		Parameters: params,
		Seed:       seed,
		Logger:     loggerOrNop(logger),
	}
}

// Validate checks that the parameters can be simulated
func (s *OutcomeSimulator) Validate() error {
	p := s.Parameters
	if p.Samples <= 0 {
		return fmt.Errorf("%w: samples must be greater than 0", ErrInvalidParameters)
	}
	if p.Histogram.Bins <= 0 {
		return fmt.Errorf("%w: histogram bins must be greater than 0", ErrInvalidParameters)
	}
	if !(p.IntervalLevel > 0 && p.IntervalLevel < 1) {
		return fmt.Errorf("%w: interval level must be between 0 and 1, got %v", ErrInvalidParameters, p.IntervalLevel)
	}
	named := []struct {
		name string
		dist domain.Distribution
	}{{"input1", p.Input1}, {"input2", p.Input2}, {"noise", p.Noise}}
	for _, n := range named {
		if err := validateDistribution(n.dist); err != nil {
			return fmt.Errorf("%s: %w", n.name, err)
		}
	}
	return nil
}

// Run draws the three sample sequences, combines them and summarizes the outcome
func (s *OutcomeSimulator) Run() (*domain.SimulationResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	p := s.Parameters
	s.Logger.Debugf("simulating %d samples with seed %d", p.Samples, s.Seed)

	samples, err := s.drawSamples()
	if err != nil {
		return nil, err
	}

	summary, err := Summarize(samples.Outcome, p.IntervalLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize outcome: %w", err)
	}

	histogram, err := BuildHistogram(samples.Outcome, p.Histogram.Bins, p.Histogram.Density)
	if err != nil {
		return nil, fmt.Errorf("failed to build histogram: %w", err)
	}

	s.Logger.Infof("simulation complete: n=%d mean=%.4f std=%.4f", samples.Len(), summary.Mean, summary.StdDev)

	p.Seed = s.Seed
	return &domain.SimulationResult{
		Parameters: p,
		Seed:       s.Seed,
		Samples:    samples,
		Summary:    summary,
		Histogram:  histogram,
	}, nil
}

// drawSamples draws input1, input2 and noise in that order from one stream
func (s *OutcomeSimulator) drawSamples() (domain.SampleSet, error) {
	p := s.Parameters
	sampler := NewNormalSampler(s.Seed)

	input1, err := sampler.Sample(p.Input1, p.Samples)
	if err != nil {
		return domain.SampleSet{}, fmt.Errorf("input1: %w", err)
	}
	input2, err := sampler.Sample(p.Input2, p.Samples)
	if err != nil {
		return domain.SampleSet{}, fmt.Errorf("input2: %w", err)
	}
	noise, err := sampler.Sample(p.Noise, p.Samples)
	if err != nil {
		return domain.SampleSet{}, fmt.Errorf("noise: %w", err)
	}

	outcome, err := CombineOutcome(input1, input2, noise)
	if err != nil {
		return domain.SampleSet{}, err
	}

	return domain.SampleSet{
		Input1:  input1,
		Input2:  input2,
		Noise:   noise,
		Outcome: outcome,
	}, nil
}

// CombineOutcome returns a[i]*b[i] + noise[i] for every index
func CombineOutcome(a, b, noise []float64) ([]float64, error) {
	if len(a) != len(b) || len(a) != len(noise) {
		return nil, fmt.Errorf("%w: sequence lengths differ (%d, %d, %d)", ErrInvalidParameters, len(a), len(b), len(noise))
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i]*b[i] + noise[i]
	}
	return out, nil
}
