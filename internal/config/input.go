package config

import (
	"fmt"
	"math"
	"os"

	"github.com/rpgo/outcome-sim/internal/calculation"
	"github.com/rpgo/outcome-sim/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultPlotPath is where the histogram image goes when no path is configured
const DefaultPlotPath = "outcome_histogram.png"

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file.
// Fields omitted from the file keep their default values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML over the default configuration and validates the result
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := DefaultConfiguration()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateSimulation(&config.Simulation); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	if err := ip.validateOption(&config.Option); err != nil {
		return fmt.Errorf("option: %w", err)
	}
	if config.Output.Format == "" {
		return fmt.Errorf("output: format is required")
	}
	return nil
}

// validateSimulation validates the outcome simulation block
func (ip *InputParser) validateSimulation(sim *domain.SimulationParameters) error {
	if sim.Samples <= 0 {
		return fmt.Errorf("samples must be greater than 0")
	}
	if sim.Histogram.Bins <= 0 {
		return fmt.Errorf("histogram bins must be greater than 0")
	}
	if sim.IntervalLevel <= 0 || sim.IntervalLevel >= 1 {
		return fmt.Errorf("interval level must be between 0 and 1")
	}

	dists := []struct {
		name string
		dist domain.Distribution
	}{{"input1", sim.Input1}, {"input2", sim.Input2}, {"noise", sim.Noise}}
	for _, d := range dists {
		if math.IsNaN(d.dist.Mean) || math.IsInf(d.dist.Mean, 0) {
			return fmt.Errorf("%s mean must be finite", d.name)
		}
		if math.IsNaN(d.dist.StdDev) || math.IsInf(d.dist.StdDev, 0) {
			return fmt.Errorf("%s standard deviation must be finite", d.name)
		}
		if d.dist.StdDev < 0 {
			return fmt.Errorf("%s standard deviation cannot be negative", d.name)
		}
	}

	return nil
}

// validateOption validates the option pricing block
func (ip *InputParser) validateOption(opt *domain.OptionParameters) error {
	return calculation.NewOptionPricer(*opt, nil).Validate()
}

// DefaultConfiguration returns the reference run: the reference constants,
// 10,000 samples, console output and a PNG histogram.
func DefaultConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Simulation: calculation.DefaultSimulationParameters(),
		Option:     calculation.DefaultOptionParameters(),
		Output: domain.OutputSettings{
			Format:   "console",
			PlotPath: DefaultPlotPath,
		},
	}
}

// CreateExampleConfiguration creates an example configuration file body
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	config := DefaultConfiguration()
	config.Simulation.Seed = 12345
	return config
}
