package calculation

import (
	"math"
	"testing"

	"github.com/rpgo/outcome-sim/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallOption(seed uint64) domain.OptionParameters {
	p := DefaultOptionParameters()
	p.Simulations = 20000
	p.Steps = 16
	p.Seed = seed
	return p
}

func TestOptionPricerSameSeedIsDeterministic(t *testing.T) {
	first, err := NewOptionPricer(smallOption(123456), nil).Price()
	require.NoError(t, err)
	second, err := NewOptionPricer(smallOption(123456), nil).Price()
	require.NoError(t, err)

	assert.Equal(t, first.CallPrice, second.CallPrice)
	assert.Equal(t, first.PutPrice, second.PutPrice)
	assert.Equal(t, first.ProbabilityInTheMoney, second.ProbabilityInTheMoney)
	assert.Equal(t, first.ExpectedTerminalPrice, second.ExpectedTerminalPrice)
}

func TestOptionPricerPutCallParity(t *testing.T) {
	p := smallOption(999)
	p.Simulations = 40000
	summary, err := NewOptionPricer(p, nil).Price()
	require.NoError(t, err)

	assert.Less(t, summary.PutCallParityGap, 0.5)
	assert.InDelta(t, ParityGap(summary.CallPrice, summary.PutPrice, p), summary.PutCallParityGap, 1e-12)
}

func TestOptionPricerSanity(t *testing.T) {
	summary, err := NewOptionPricer(smallOption(7), nil).Price()
	require.NoError(t, err)

	// Black-Scholes for these parameters: call ≈ 10.45, put ≈ 5.57
	assert.InDelta(t, 10.45, summary.CallPrice, 0.6)
	assert.InDelta(t, 5.57, summary.PutPrice, 0.4)
	assert.LessOrEqual(t, summary.CallCI95.Low, summary.CallPrice)
	assert.GreaterOrEqual(t, summary.CallCI95.High, summary.CallPrice)
	assert.LessOrEqual(t, summary.PutCI95.Low, summary.PutPrice)
	assert.GreaterOrEqual(t, summary.PutCI95.High, summary.PutPrice)
	assert.Greater(t, summary.ProbabilityInTheMoney, 0.0)
	assert.Less(t, summary.ProbabilityInTheMoney, 1.0)
	assert.InDelta(t, 100*math.Exp(0.05), summary.TheoreticalTerminalExpectation, 1e-12)
	assert.InDelta(t, summary.TheoreticalTerminalExpectation, summary.ExpectedTerminalPrice, 1.0)
}

func TestOptionPricerInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.OptionParameters)
		want   string
	}{
		{"simulations", func(p *domain.OptionParameters) { p.Simulations = 0 }, "simulations must be greater than 0"},
		{"steps", func(p *domain.OptionParameters) { p.Steps = 0 }, "steps must be greater than 0"},
		{"spot", func(p *domain.OptionParameters) { p.Spot = -1 }, "spot must be greater than 0"},
		{"strike", func(p *domain.OptionParameters) { p.Strike = 0 }, "strike must be greater than 0"},
		{"volatility", func(p *domain.OptionParameters) { p.Volatility = 0 }, "volatility must be greater than 0"},
		{"maturity", func(p *domain.OptionParameters) { p.Maturity = 0 }, "maturity must be greater than 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultOptionParameters()
			tt.mutate(&p)
			summary, err := NewOptionPricer(p, nil).Price()
			require.Error(t, err)
			assert.Nil(t, summary)
			assert.ErrorIs(t, err, ErrInvalidParameters)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
