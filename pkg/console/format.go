package console

import (
	"fmt"
	"math"
)

// FormatBillions formata um valor em bilhões com uma casa decimal, ex.: "3.9B".
func FormatBillions(v float64) string {
	return fmt.Sprintf("%.1fB", v)
}

// FormatBillionsPrecise is FormatBillions with two decimals, used in tables and tooltips.
func FormatBillionsPrecise(v float64) string {
	return fmt.Sprintf("%.2fB", v)
}

// FormatMultiple formats an ROI multiple. Non-finite values come from a zero AI spend.
func FormatMultiple(v float64) string {
	switch {
	case math.IsNaN(v):
		return "n/a"
	case math.IsInf(v, 1):
		return "∞×"
	case math.IsInf(v, -1):
		return "-∞×"
	}
	return fmt.Sprintf("%.2f×", v)
}

// FormatPercent formats a fraction as a whole percentage, ex.: 0.25 -> "25 %".
func FormatPercent(v float64) string {
	return fmt.Sprintf("%d %%", int(math.Round(v*100)))
}
