package practice

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ProgressPercent is the share of the monthly goal reached by income, as a
// whole percent in [0, 100]. Halves round up. A goal of zero or less yields 0.
func ProgressPercent(income, monthlyGoal decimal.Decimal) int {
	if !monthlyGoal.IsPositive() {
		return 0
	}

	// multiply first so exact inputs stay exact before the division
	percent := income.Mul(hundred).Div(monthlyGoal).Round(0)

	switch {
	case percent.GreaterThanOrEqual(hundred):
		return 100
	case percent.IsNegative():
		return 0
	default:
		return int(percent.IntPart())
	}
}
