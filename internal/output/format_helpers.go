package output

import (
	"strconv"

	"github.com/rpgo/outcome-sim/pkg/decimal"
)

// FormatStat formats a statistic with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatStat(v float64) string { return decimal.Fixed2(v) }

// FormatLevel formats an interval level such as 0.95 as "95%".
func FormatLevel(level float64) string { return decimal.FormatPercent(level) }

func intToString(i int) string { return strconv.Itoa(i) }
