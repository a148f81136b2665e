// Package pricing prices order items against a PricingCatalog.
//
// Every function here is pure: no I/O, no clocks, no rounding. Amounts are
// rounded only when rendered by the HTTP layer.
package pricing

import (
	"fmt"
	"strings"

	"loja_merch/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// LineBreakdown details how a single item was priced.
type LineBreakdown struct {
	Index           int
	Base            decimal.Decimal
	Patches         decimal.Decimal
	Personalization decimal.Decimal
	UnitPrice       decimal.Decimal
	Quantity        int
	LineTotal       decimal.Decimal
}

// PriceItem returns the unit price of one item:
// base + len(patches)*patchUnit + personalization fee (once, when personalized).
func PriceItem(item entities.OrderItem, catalog entities.PricingCatalog) (decimal.Decimal, error) {
	line, err := priceLine(item, catalog)
	if err != nil {
		return decimal.Zero, err
	}
	return line.UnitPrice, nil
}

// PriceOrder sums PriceItem(item) * quantity over items. The first item that
// cannot be priced fails the whole order.
func PriceOrder(items []entities.OrderItem, catalog entities.PricingCatalog) (decimal.Decimal, error) {
	total := decimal.Zero
	for i, item := range items {
		line, err := priceLine(item, catalog)
		if err != nil {
			return decimal.Zero, fmt.Errorf("item %d: %w", i, err)
		}
		total = total.Add(line.LineTotal)
	}
	return total, nil
}

// Breakdown prices every item and returns the per-line detail with the total.
func Breakdown(items []entities.OrderItem, catalog entities.PricingCatalog) ([]LineBreakdown, decimal.Decimal, error) {
	lines := make([]LineBreakdown, 0, len(items))
	total := decimal.Zero
	for i, item := range items {
		line, err := priceLine(item, catalog)
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("item %d: %w", i, err)
		}
		line.Index = i
		lines = append(lines, line)
		total = total.Add(line.LineTotal)
	}
	return lines, total, nil
}

// ShirtTypeIDs returns the distinct shirt type ids referenced by items, in
// first-seen order.
func ShirtTypeIDs(items []entities.OrderItem) []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, item := range items {
		id := strings.TrimSpace(item.ShirtTypeID)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}

func priceLine(item entities.OrderItem, catalog entities.PricingCatalog) (LineBreakdown, error) {
	qty := item.EffectiveQuantity()
	if qty < 0 {
		return LineBreakdown{}, fmt.Errorf("%w: quantity must be positive", entities.ErrInvalidInput)
	}

	base, err := resolveBase(item, catalog)
	if err != nil {
		return LineBreakdown{}, err
	}

	patches := catalog.PatchUnitPrice.Mul(decimal.NewFromInt(int64(len(item.PatchImages))))
	personalization := decimal.Zero
	if item.IsPersonalized() {
		personalization = catalog.PersonalizationFee
	}

	unit := base.Add(patches).Add(personalization)
	return LineBreakdown{
		Base:            base,
		Patches:         patches,
		Personalization: personalization,
		UnitPrice:       unit,
		Quantity:        qty,
		LineTotal:       unit.Mul(decimal.NewFromInt(int64(qty))),
	}, nil
}

// resolveBase looks the shirt type up in the catalog first and falls back to
// the item's own product price.
func resolveBase(item entities.OrderItem, catalog entities.PricingCatalog) (decimal.Decimal, error) {
	if id := strings.TrimSpace(item.ShirtTypeID); id != "" {
		if p, ok := catalog.ShirtTypePrice(id); ok {
			return p, nil
		}
	}
	if item.ProductPrice != nil {
		return *item.ProductPrice, nil
	}
	if item.ShirtTypeID != "" {
		return decimal.Zero, fmt.Errorf("%w: shirt type %q", entities.ErrUnresolvedBaseType, item.ShirtTypeID)
	}
	return decimal.Zero, fmt.Errorf("%w: %s item has no shirt type or product price", entities.ErrUnresolvedBaseType, item.ProductType)
}
