package domain

// Distribution describes a normal distribution by its mean and standard deviation
type Distribution struct {
	Mean   float64 `yaml:"mean" json:"mean"`
	StdDev float64 `yaml:"std_dev" json:"std_dev"`
}

// HistogramSettings controls how the outcome histogram is binned
type HistogramSettings struct {
	Bins    int  `yaml:"bins" json:"bins"`
	Density bool `yaml:"density" json:"density"`
}

// SimulationParameters holds everything needed for one outcome simulation run.
// A zero Seed asks the simulator to pick one.
type SimulationParameters struct {
	Samples       int               `yaml:"samples" json:"samples"`
	Seed          uint64            `yaml:"seed" json:"seed"`
	Input1        Distribution      `yaml:"input1" json:"input1"`
	Input2        Distribution      `yaml:"input2" json:"input2"`
	Noise         Distribution      `yaml:"noise" json:"noise"`
	IntervalLevel float64           `yaml:"interval_level" json:"interval_level"`
	Histogram     HistogramSettings `yaml:"histogram" json:"histogram"`
}

// SampleSet holds the drawn sequences and the combined outcome, index-aligned
type SampleSet struct {
	Input1  []float64 `json:"input1"`
	Input2  []float64 `json:"input2"`
	Noise   []float64 `json:"noise"`
	Outcome []float64 `json:"outcome"`
}

// Len returns the number of samples in the set
func (s SampleSet) Len() int { return len(s.Outcome) }

// Summary holds descriptive statistics of the outcome sequence.
// Lower and Upper bound the central Level share of the samples.
type Summary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Lower  float64 `json:"lower"`
	Upper  float64 `json:"upper"`
	Level  float64 `json:"level"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Histogram is an equal-width binning of the outcome.
// Edges has one more element than Counts and Densities.
type Histogram struct {
	Edges     []float64 `json:"edges"`
	Counts    []float64 `json:"counts"`
	Densities []float64 `json:"densities"`
	Density   bool      `json:"density"`
}

// Bins returns the number of bins
func (h Histogram) Bins() int { return len(h.Counts) }

// Heights returns densities for a density histogram and raw counts otherwise
func (h Histogram) Heights() []float64 {
	if h.Density {
		return h.Densities
	}
	return h.Counts
}

// SimulationResult represents the results of a single outcome simulation
type SimulationResult struct {
	Parameters SimulationParameters `json:"parameters"`
	Seed       uint64               `json:"seed"`
	Samples    SampleSet            `json:"-"`
	Summary    Summary              `json:"summary"`
	Histogram  Histogram            `json:"histogram"`
}
