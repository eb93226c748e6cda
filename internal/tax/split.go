// Package tax splits a quoted amount into its GST base and tax parts.
package tax

import (
	"github.com/shopspring/decimal"

	"github.com/cleared-dev/ledgerbrain/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Round rounds to a whole currency unit, ties away from zero.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// Split computes base, tax and total for amount at ratePercent.
//
// When inclusive is true the amount already contains the tax and is the total.
// Otherwise the amount is the base and tax is added on top. Negative inputs are
// treated as zero, so every field of the result is non-negative and
// Base+Tax == Total.
func Split(amount, ratePercent decimal.Decimal, inclusive bool) model.TaxSplit {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	if ratePercent.IsNegative() {
		ratePercent = decimal.Zero
	}

	if ratePercent.IsZero() {
		return model.TaxSplit{Base: amount, Tax: decimal.Zero, Total: amount}
	}

	if inclusive {
		base := Round(amount.Mul(hundred).Div(hundred.Add(ratePercent)))
		return model.TaxSplit{Base: base, Tax: amount.Sub(base), Total: amount}
	}

	tax := Round(amount.Mul(ratePercent).Div(hundred))
	return model.TaxSplit{Base: amount, Tax: tax, Total: amount.Add(tax)}
}
