package main

import (
	"fmt"
	"time"

	"github.com/rpgo/outcome-sim/internal/calculation"
	"github.com/rpgo/outcome-sim/internal/metrics"
	"github.com/rpgo/outcome-sim/internal/output"
	"github.com/spf13/cobra"
)

func newPriceCmd() *cobra.Command {
	defaults := calculation.DefaultOptionParameters()
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price European call and put options by Monte Carlo",
		Long: `Price a European call and put by simulating geometric Brownian motion
paths of the underlying, and report the put-call parity gap as a sanity check.

Examples:
  outcomesim price
  outcomesim price --strike 110 --volatility 0.3 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := commandLogger(cmd)
			if err != nil {
				return err
			}
			cfg, err := loadConfiguration(cmd)
			if err != nil {
				return err
			}

			params := cfg.Option
			flags := cmd.Flags()
			if flags.Changed("simulations") {
				params.Simulations, _ = flags.GetInt("simulations")
			}
			if flags.Changed("steps") {
				params.Steps, _ = flags.GetInt("steps")
			}
			if flags.Changed("spot") {
				params.Spot, _ = flags.GetFloat64("spot")
			}
			if flags.Changed("strike") {
				params.Strike, _ = flags.GetFloat64("strike")
			}
			if flags.Changed("rate") {
				params.Rate, _ = flags.GetFloat64("rate")
			}
			if flags.Changed("volatility") {
				params.Volatility, _ = flags.GetFloat64("volatility")
			}
			if flags.Changed("maturity") {
				params.Maturity, _ = flags.GetFloat64("maturity")
			}
			if flags.Changed("seed") {
				params.Seed, _ = flags.GetUint64("seed")
			}

			start := time.Now()
			summary, err := calculation.NewOptionPricer(params, logger).Price()
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}
			elapsed := time.Since(start)

			data := output.FormatOptionText(summary)
			if jsonOut, _ := flags.GetBool("json"); jsonOut {
				if data, err = output.FormatOptionJSON(summary); err != nil {
					return err
				}
			}
			if _, err := cmd.OutOrStdout().Write(data); err != nil {
				return err
			}

			return writeMetrics(cmd, logger, func(r *metrics.Recorder) {
				r.ObserveOption(summary, elapsed)
			})
		},
	}

	cmd.Flags().Int("simulations", defaults.Simulations, "Number of Monte Carlo paths")
	cmd.Flags().Int("steps", defaults.Steps, "Time steps per path")
	cmd.Flags().Float64("spot", defaults.Spot, "Initial asset price")
	cmd.Flags().Float64("strike", defaults.Strike, "Option strike price")
	cmd.Flags().Float64("rate", defaults.Rate, "Risk-free annual rate as decimal")
	cmd.Flags().Float64("volatility", defaults.Volatility, "Annual volatility as decimal")
	cmd.Flags().Float64("maturity", defaults.Maturity, "Time to maturity in years")
	cmd.Flags().Uint64("seed", defaults.Seed, "RNG seed for deterministic runs")

	return cmd
}
