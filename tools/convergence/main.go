package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/rpgo/outcome-sim/internal/calculation"
	"github.com/rpgo/outcome-sim/pkg/decimal"
)

// Prints how the outcome statistics settle as the sample count grows.
func main() {
	seed := flag.Uint64("seed", 12345, "random seed shared by every run")
	flag.Parse()

	params := calculation.DefaultSimulationParameters()
	params.Seed = *seed
	expectedMean := params.Input1.Mean * params.Input2.Mean

	fmt.Printf("%10s %10s %10s %10s %10s\n", "samples", "mean", "|err|", "std", "95% width")
	for _, n := range []int{100, 1000, 10000, 100000, 1000000} {
		params.Samples = n
		result, err := calculation.NewOutcomeSimulator(params, nil).Run()
		if err != nil {
			log.Fatal(err)
		}
		s := result.Summary
		fmt.Printf("%10d %10s %10s %10s %10s\n",
			n,
			decimal.Fixed(s.Mean, 4),
			decimal.Fixed(math.Abs(s.Mean-expectedMean), 4),
			decimal.Fixed(s.StdDev, 4),
			decimal.Fixed(s.Upper-s.Lower, 4),
		)
	}
}
