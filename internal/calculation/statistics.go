package calculation

import (
	"fmt"
	"math"
	"slices"

	"github.com/rpgo/outcome-sim/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of values
func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// PopStdDev returns the population standard deviation (divisor N) of values
func PopStdDev(values []float64) float64 {
	return math.Sqrt(stat.PopVariance(values, nil))
}

// Percentile returns the p-th quantile (p in [0,1]) of an ascending slice,
// interpolating linearly between the two closest ranks at h = (n-1)p.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// Summarize computes mean, population standard deviation and the central
// interval holding level of the samples.
func Summarize(values []float64, level float64) (domain.Summary, error) {
	if len(values) == 0 {
		return domain.Summary{}, fmt.Errorf("%w: cannot summarize an empty sample", ErrInvalidParameters)
	}
	if !(level > 0 && level < 1) {
		return domain.Summary{}, fmt.Errorf("%w: interval level must be between 0 and 1, got %v", ErrInvalidParameters, level)
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	tail := (1 - level) / 2
	return domain.Summary{
		Mean:   Mean(values),
		StdDev: PopStdDev(values),
		Lower:  Percentile(sorted, tail),
		Upper:  Percentile(sorted, 1-tail),
		Level:  level,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}, nil
}

// BuildHistogram bins values into equal-width bins spanning [min, max].
// Every bin is half-open except the last, which also holds max. When all
// values are equal the range becomes [v-0.5, v+0.5].
func BuildHistogram(values []float64, bins int, density bool) (domain.Histogram, error) {
	if bins <= 0 {
		return domain.Histogram{}, fmt.Errorf("%w: bins must be greater than 0", ErrInvalidParameters)
	}
	if len(values) == 0 {
		return domain.Histogram{}, fmt.Errorf("%w: cannot bin an empty sample", ErrInvalidParameters)
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	lo, hi := sorted[0], sorted[len(sorted)-1]
	if lo == hi {
		lo -= 0.5
		hi += 0.5
	}

	edges := floats.Span(make([]float64, bins+1), lo, hi)

	// stat.Histogram wants x < last divider; nudge it so max lands in the last bin.
	dividers := slices.Clone(edges)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))
	counts := stat.Histogram(nil, dividers, sorted, nil)

	n := float64(len(values))
	densities := make([]float64, bins)
	for i, c := range counts {
		densities[i] = c / (n * (edges[i+1] - edges[i]))
	}

	return domain.Histogram{
		Edges:     edges,
		Counts:    counts,
		Densities: densities,
		Density:   density,
	}, nil
}
