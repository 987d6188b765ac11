package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "outcomesim",
		Short: "Monte Carlo simulation of outcome = input1 * input2 + noise",
		Long: `outcomesim draws samples from two independent normal inputs and a normal
noise term, combines them as input1 * input2 + noise, and reports the mean,
standard deviation and 95% interval of the outcome along with a histogram.

Run without arguments to reproduce the reference simulation:
input1 ~ N(10, 2), input2 ~ N(5, 1), noise ~ N(0, 1), 10,000 samples.

The histogram is saved as outcome_histogram.png in the current directory.
Use --plot <path> to write it elsewhere, or --plot "" to skip the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSimulation,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("metrics", "", "Write Prometheus metrics for the run to this textfile")

	addSimulationFlags(rootCmd)

	rootCmd.AddCommand(
		newRunCmd(),
		newPriceCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{"version": version})
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "outcomesim version %s\n", version)
			return err
		},
	}
}
