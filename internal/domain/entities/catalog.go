package entities

import "github.com/shopspring/decimal"

// PricingCatalog is the price table used to price order items.
//
// ShirtTypePrices maps a shirt type id to its base price. Only the ids needed
// for a given cart have to be present.
type PricingCatalog struct {
	ShirtTypePrices    map[string]decimal.Decimal
	PatchUnitPrice     decimal.Decimal
	PersonalizationFee decimal.Decimal
}

func (c PricingCatalog) ShirtTypePrice(id string) (decimal.Decimal, bool) {
	if c.ShirtTypePrices == nil {
		return decimal.Zero, false
	}
	p, ok := c.ShirtTypePrices[id]
	return p, ok
}

// FormatMoney renders an amount with two decimal places. Amounts are kept at
// full precision everywhere else.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
