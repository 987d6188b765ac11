package main

import (
	"fmt"
	"time"

	"github.com/rpgo/outcome-sim/internal/calculation"
	"github.com/rpgo/outcome-sim/internal/config"
	"github.com/rpgo/outcome-sim/internal/domain"
	"github.com/rpgo/outcome-sim/internal/metrics"
	"github.com/rpgo/outcome-sim/internal/output"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the outcome simulation",
		Long: `Run the outcome simulation and print its summary.

Examples:
  outcomesim run                         # reference run, random seed
  outcomesim run --seed 42               # reproducible run
  outcomesim run --format histogram      # text histogram instead of summary
  outcomesim run --format html --output report.html --plot ""`,
		RunE: runSimulation,
	}
	addSimulationFlags(cmd)
	return cmd
}

func addSimulationFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64("seed", 0, "Random seed (0 picks one from the clock)")
	cmd.Flags().Int("samples", calculation.DefaultSamples, "Number of Monte Carlo samples")
	cmd.Flags().Int("bins", calculation.DefaultBins, "Number of histogram bins")
	cmd.Flags().String("format", "console", fmt.Sprintf("Output format %v", output.AvailableFormatterNames()))
	cmd.Flags().String("output", "", "Write the report to this file or directory instead of stdout")
	cmd.Flags().String("plot", config.DefaultPlotPath, "Histogram image path (empty to skip)")
}

// loadConfiguration reads --config (or the defaults) and applies explicitly set flags.
func loadConfiguration(cmd *cobra.Command) (*domain.Configuration, error) {
	parser := config.NewInputParser()

	cfg := config.DefaultConfiguration()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := parser.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Lookup("samples") != nil {
		if flags.Changed("seed") {
			cfg.Simulation.Seed, _ = flags.GetUint64("seed")
		}
		if flags.Changed("samples") {
			cfg.Simulation.Samples, _ = flags.GetInt("samples")
		}
		if flags.Changed("bins") {
			cfg.Simulation.Histogram.Bins, _ = flags.GetInt("bins")
		}
		if flags.Changed("format") {
			cfg.Output.Format, _ = flags.GetString("format")
		}
		if flags.Changed("output") {
			cfg.Output.Path, _ = flags.GetString("output")
		}
		if flags.Changed("plot") {
			cfg.Output.PlotPath, _ = flags.GetString("plot")
		}
	}
	if jsonOut, _ := flags.GetBool("json"); jsonOut {
		cfg.Output.Format = "json"
	}

	if err := parser.ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	if output.GetFormatterByName(cfg.Output.Format) == nil {
		return nil, fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, cfg.Output.Format)
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	logger, err := commandLogger(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfiguration(cmd)
	if err != nil {
		return err
	}

	start := time.Now()
	result, err := calculation.NewOutcomeSimulator(cfg.Simulation, logger).Run()
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}
	elapsed := time.Since(start)
	logger.Debugf("seed %d", result.Seed)

	if cfg.Output.Path != "" {
		path, err := output.WriteReport(result, cfg.Output.Format, cfg.Output.Path)
		if err != nil {
			return err
		}
		logger.Infof("report written to %s", path)
	} else {
		data, err := output.Render(result, cfg.Output.Format)
		if err != nil {
			return err
		}
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
	}

	if cfg.Output.PlotPath != "" {
		if err := output.SaveHistogramPlot(result, cfg.Output.PlotPath); err != nil {
			return err
		}
		logger.Infof("histogram written to %s", cfg.Output.PlotPath)
	}

	return writeMetrics(cmd, logger, func(r *metrics.Recorder) {
		r.ObserveSimulation(result, elapsed)
	})
}
