package catalog

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// DisplayDiscount returns the informational discounted price for a slot's
// category discount. The pricing engine never subtracts this; it exists only
// so clients can render a strike-through figure.
func DisplayDiscount(priceCents int, discountPercent int) int {
	if discountPercent <= 0 || priceCents <= 0 {
		return priceCents
	}
	if discountPercent >= 100 {
		return 0
	}

	price := decimal.NewFromInt(int64(priceCents))
	keep := hundred.Sub(decimal.NewFromInt(int64(discountPercent)))
	discounted := price.Mul(keep).Div(hundred).Round(0)
	return int(discounted.IntPart())
}
