package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/rpgo/outcome-sim/internal/domain"
	"github.com/rpgo/outcome-sim/pkg/decimal"
)

// FormatOptionText renders an option pricing summary as aligned text.
func FormatOptionText(s *domain.OptionSummary) []byte {
	var buf bytes.Buffer
	p := s.Parameters
	f4 := func(v float64) string { return decimal.Fixed(v, 4) }
	f6 := func(v float64) string { return decimal.Fixed(v, 6) }

	fmt.Fprintln(&buf, "Monte Carlo European Option Pricing")
	fmt.Fprintln(&buf, "==================================")
	fmt.Fprintf(&buf, "simulations: %d\n", p.Simulations)
	fmt.Fprintf(&buf, "steps:       %d\n", p.Steps)
	fmt.Fprintf(&buf, "spot:        %s\n", f4(p.Spot))
	fmt.Fprintf(&buf, "strike:      %s\n", f4(p.Strike))
	fmt.Fprintf(&buf, "rate:        %s\n", f4(p.Rate))
	fmt.Fprintf(&buf, "volatility:  %s\n", f4(p.Volatility))
	fmt.Fprintf(&buf, "maturity:    %s\n", f4(p.Maturity))
	fmt.Fprintf(&buf, "seed:        %d\n", p.Seed)
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "call_price:  %s\n", f6(s.CallPrice))
	fmt.Fprintf(&buf, "call_ci_95:  [%s, %s]\n", f6(s.CallCI95.Low), f6(s.CallCI95.High))
	fmt.Fprintf(&buf, "put_price:   %s\n", f6(s.PutPrice))
	fmt.Fprintf(&buf, "put_ci_95:   [%s, %s]\n", f6(s.PutCI95.Low), f6(s.PutCI95.High))
	fmt.Fprintf(&buf, "prob_itm:    %s\n", f6(s.ProbabilityInTheMoney))
	fmt.Fprintf(&buf, "E[S_T]:      %s\n", f6(s.ExpectedTerminalPrice))
	fmt.Fprintf(&buf, "E_theory:    %s\n", f6(s.TheoreticalTerminalExpectation))
	fmt.Fprintln(&buf)
	fmt.Fprintf(&buf, "put_call_parity_gap: %s\n", f6(s.PutCallParityGap))
	return buf.Bytes()
}

// FormatOptionJSON renders an option pricing summary as indented JSON.
func FormatOptionJSON(s *domain.OptionSummary) ([]byte, error) {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}
