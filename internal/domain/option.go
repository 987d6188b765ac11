package domain

// OptionParameters describes a European option priced by simulating
// geometric Brownian motion paths of the underlying
type OptionParameters struct {
	Simulations int     `yaml:"simulations" json:"simulations"`
	Steps       int     `yaml:"steps" json:"steps"`
	Spot        float64 `yaml:"spot" json:"spot"`
	Strike      float64 `yaml:"strike" json:"strike"`
	Rate        float64 `yaml:"rate" json:"rate"`
	Volatility  float64 `yaml:"volatility" json:"volatility"`
	Maturity    float64 `yaml:"maturity" json:"maturity"`
	Seed        uint64  `yaml:"seed" json:"seed"`
}

// ConfidenceInterval is a symmetric interval around an estimate
type ConfidenceInterval struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// OptionSummary represents the results of an option pricing run
type OptionSummary struct {
	Parameters                     OptionParameters   `json:"parameters"`
	CallPrice                      float64            `json:"call_price"`
	CallCI95                       ConfidenceInterval `json:"call_ci_95"`
	PutPrice                       float64            `json:"put_price"`
	PutCI95                        ConfidenceInterval `json:"put_ci_95"`
	ProbabilityInTheMoney          float64            `json:"probability_in_the_money"`
	ExpectedTerminalPrice          float64            `json:"expected_terminal_price"`
	TheoreticalTerminalExpectation float64            `json:"theoretical_terminal_expectation"`
	PutCallParityGap               float64            `json:"put_call_parity_gap"`
}
