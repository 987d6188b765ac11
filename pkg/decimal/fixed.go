// Package decimal renders floating point results at a fixed number of places.
package decimal

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPlaces is the precision used for printed statistics
const DefaultPlaces int32 = 2

// Fixed formats v with exactly places digits after the decimal point.
// Rounding is half-to-even on the exact binary value, so the output matches
// fmt's %.Nf, including the sign of values that round to zero.
// NaN and infinities use strconv spelling.
func Fixed(v float64, places int32) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := exact(v).RoundBank(places).StringFixed(places)
	if math.Signbit(v) && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

// exact returns the full decimal expansion of a finite v.
func exact(v float64) decimal.Decimal {
	_, exp := math.Frexp(v)
	digits := min(1074, max(0, 53-exp))
	d, err := decimal.NewFromString(new(big.Float).SetFloat64(v).Text('f', digits))
	if err != nil {
		return decimal.NewFromFloat(v)
	}
	return d
}

// Fixed2 formats v with two decimal places
func Fixed2(v float64) string { return Fixed(v, DefaultPlaces) }

// FormatInterval formats an interval as "<low> to <high>"
func FormatInterval(low, high float64, places int32) string {
	return Fixed(low, places) + " to " + Fixed(high, places)
}

// FormatPercent formats a fraction (0.95) as a trimmed percentage ("95%")
func FormatPercent(fraction float64) string {
	if math.IsNaN(fraction) || math.IsInf(fraction, 0) {
		return strconv.FormatFloat(fraction, 'f', -1, 64) + "%"
	}
	return decimal.NewFromFloat(fraction).Mul(decimal.NewFromInt(100)).String() + "%"
}
