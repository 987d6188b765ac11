package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/outcome-sim/internal/domain"
)

// z95 is the two-sided 95% normal quantile used for price confidence intervals.
const z95 = 1.96

// DefaultOptionParameters returns an at-the-money one year option on a 100 spot
func DefaultOptionParameters() domain.OptionParameters {
	return domain.OptionParameters{
		Simulations: 100000,
		Steps:       252,
		Spot:        100.0,
		Strike:      100.0,
		Rate:        0.05,
		Volatility:  0.20,
		Maturity:    1.0,
		Seed:        42,
	}
}

// OptionPricer prices European call and put options by Monte Carlo
type OptionPricer struct {
	Parameters domain.OptionParameters
	Logger     Logger
}

// NewOptionPricer creates a new option pricer
func NewOptionPricer(params domain.OptionParameters, logger Logger) *OptionPricer {
	return &OptionPricer{Parameters: params, Logger: loggerOrNop(logger)}
}

// Validate checks the option parameters
func (op *OptionPricer) Validate() error {
	p := op.Parameters
	checks := []struct {
		name string
		ok   bool
	}{
		{"simulations", p.Simulations > 0},
		{"steps", p.Steps > 0},
		{"spot", p.Spot > 0},
		{"strike", p.Strike > 0},
		{"volatility", p.Volatility > 0},
		{"maturity", p.Maturity > 0},
	}
	for _, c := range checks {
		if !c.ok {
			return fmt.Errorf("%w: %s must be greater than 0", ErrInvalidParameters, c.name)
		}
	}
	return nil
}

// Price simulates terminal prices and returns discounted payoff statistics
func (op *OptionPricer) Price() (*domain.OptionSummary, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	p := op.Parameters
	op.Logger.Debugf("pricing with %d paths x %d steps, seed %d", p.Simulations, p.Steps, p.Seed)

	n := float64(p.Simulations)
	dt := p.Maturity / float64(p.Steps)
	drift := (p.Rate - 0.5*p.Volatility*p.Volatility) * dt
	diffusion := p.Volatility * math.Sqrt(dt)
	discount := math.Exp(-p.Rate * p.Maturity)

	sampler := NewNormalSampler(p.Seed)

	var callSum, callSqSum, putSum, putSqSum, terminalSum float64
	itm := 0

	for path := 0; path < p.Simulations; path++ {
		price := p.Spot
		for step := 0; step < p.Steps; step++ {
			price *= math.Exp(drift + diffusion*sampler.StandardNormal())
		}
		terminalSum += price

		call := math.Max(price-p.Strike, 0)
		put := math.Max(p.Strike-price, 0)
		callSum += call
		callSqSum += call * call
		putSum += put
		putSqSum += put * put

		if price > p.Strike {
			itm++
		}
	}

	meanCall := callSum / n
	meanPut := putSum / n
	callPrice := discount * meanCall
	putPrice := discount * meanPut

	callVar := math.Max(callSqSum/n-meanCall*meanCall, 0)
	putVar := math.Max(putSqSum/n-meanPut*meanPut, 0)
	callErr := discount * math.Sqrt(callVar/n)
	putErr := discount * math.Sqrt(putVar/n)

	summary := &domain.OptionSummary{
		Parameters:                     p,
		CallPrice:                      callPrice,
		CallCI95:                       domain.ConfidenceInterval{Low: callPrice - z95*callErr, High: callPrice + z95*callErr},
		PutPrice:                       putPrice,
		PutCI95:                        domain.ConfidenceInterval{Low: putPrice - z95*putErr, High: putPrice + z95*putErr},
		ProbabilityInTheMoney:          float64(itm) / n,
		ExpectedTerminalPrice:          terminalSum / n,
		TheoreticalTerminalExpectation: p.Spot * math.Exp(p.Rate*p.Maturity),
	}
	summary.PutCallParityGap = ParityGap(summary.CallPrice, summary.PutPrice, p)

	op.Logger.Infof("option priced: call=%.6f put=%.6f parity_gap=%.6f", summary.CallPrice, summary.PutPrice, summary.PutCallParityGap)
	return summary, nil
}

// ParityGap returns |(C - P) - (S - K·e^{-rT})|
func ParityGap(call, put float64, p domain.OptionParameters) float64 {
	return math.Abs((call - put) - (p.Spot - p.Strike*math.Exp(-p.Rate*p.Maturity)))
}
