package pricing

import (
	"errors"
	"testing"

	"loja_merch/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() entities.PricingCatalog {
	return entities.PricingCatalog{
		ShirtTypePrices: map[string]decimal.Decimal{
			"7": decimal.RequireFromString("30.00"),
			"9": decimal.RequireFromString("45.90"),
		},
		PatchUnitPrice:     decimal.RequireFromString("2.00"),
		PersonalizationFee: decimal.RequireFromString("3.00"),
	}
}

func priceOf(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestPriceItem_Example(t *testing.T) {
	item := entities.OrderItem{
		ProductType: entities.ProductTypeShirt,
		ShirtTypeID: "7",
		PatchImages: []string{"p1", "p2"},
		PlayerName:  "Ronaldo",
		Quantity:    2,
	}

	unit, err := PriceItem(item, testCatalog())
	require.NoError(t, err)
	assert.True(t, unit.Equal(decimal.RequireFromString("37.00")), unit.String())

	total, err := PriceOrder([]entities.OrderItem{item}, testCatalog())
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("74.00")), total.String())
}

func TestPriceItem_Deterministic(t *testing.T) {
	item := entities.OrderItem{ShirtTypeID: "9", PatchImages: []string{"a"}, PlayerNumber: "10"}
	first, err := PriceItem(item, testCatalog())
	require.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := PriceItem(item, testCatalog())
		require.NoError(t, err)
		assert.True(t, first.Equal(again))
	}
}

func TestPriceItem_PersonalizationAppliedOnce(t *testing.T) {
	both := entities.OrderItem{ShirtTypeID: "7", PlayerName: "Kaká", PlayerNumber: "22"}
	unit, err := PriceItem(both, testCatalog())
	require.NoError(t, err)
	assert.True(t, unit.Equal(decimal.RequireFromString("33")), unit.String())

	blank := entities.OrderItem{ShirtTypeID: "7", PlayerName: "   "}
	unit, err = PriceItem(blank, testCatalog())
	require.NoError(t, err)
	assert.True(t, unit.Equal(decimal.RequireFromString("30")), unit.String())
}

func TestPriceItem_BaseResolution(t *testing.T) {
	t.Run("falls back to product price", func(t *testing.T) {
		item := entities.OrderItem{ProductType: entities.ProductTypeShoes, ProductPrice: priceOf("199.99")}
		unit, err := PriceItem(item, testCatalog())
		require.NoError(t, err)
		assert.True(t, unit.Equal(decimal.RequireFromString("199.99")))
	})

	t.Run("unknown shirt type falls back to product price", func(t *testing.T) {
		item := entities.OrderItem{ShirtTypeID: "404", ProductPrice: priceOf("50")}
		unit, err := PriceItem(item, testCatalog())
		require.NoError(t, err)
		assert.True(t, unit.Equal(decimal.RequireFromString("50")))
	})

	t.Run("catalog wins over product price", func(t *testing.T) {
		item := entities.OrderItem{ShirtTypeID: "7", ProductPrice: priceOf("99")}
		unit, err := PriceItem(item, testCatalog())
		require.NoError(t, err)
		assert.True(t, unit.Equal(decimal.RequireFromString("30")))
	})

	t.Run("unresolved", func(t *testing.T) {
		_, err := PriceItem(entities.OrderItem{ShirtTypeID: "404"}, testCatalog())
		assert.True(t, errors.Is(err, entities.ErrUnresolvedBaseType))
		assert.True(t, errors.Is(err, entities.ErrPricing))

		_, err = PriceItem(entities.OrderItem{ProductType: entities.ProductTypeShoes}, entities.PricingCatalog{})
		assert.ErrorIs(t, err, entities.ErrUnresolvedBaseType)
	})
}

func TestPriceOrder_Additive(t *testing.T) {
	items := []entities.OrderItem{
		{ShirtTypeID: "7", PatchImages: []string{"p1"}, Quantity: 3},
		{ShirtTypeID: "9", PlayerName: "Marta", Quantity: 1},
		{ProductType: entities.ProductTypeShoes, ProductPrice: priceOf("0.10"), Quantity: 7},
		{ShirtTypeID: "7"},
	}

	expected := decimal.Zero
	for _, item := range items {
		unit, err := PriceItem(item, testCatalog())
		require.NoError(t, err)
		expected = expected.Add(unit.Mul(decimal.NewFromInt(int64(item.EffectiveQuantity()))))
	}

	total, err := PriceOrder(items, testCatalog())
	require.NoError(t, err)
	assert.True(t, expected.Equal(total), "%s != %s", expected, total)
	// 3*32 + 48.90 + 0.70 + 30
	assert.True(t, total.Equal(decimal.RequireFromString("175.60")), total.String())
}

func TestPriceOrder_NoIntermediateRounding(t *testing.T) {
	catalog := entities.PricingCatalog{
		ShirtTypePrices: map[string]decimal.Decimal{"x": decimal.RequireFromString("0.333")},
	}
	items := []entities.OrderItem{{ShirtTypeID: "x", Quantity: 3}, {ShirtTypeID: "x", Quantity: 3}}
	total, err := PriceOrder(items, catalog)
	require.NoError(t, err)
	assert.Equal(t, "1.998", total.String())
}

func TestPriceOrder_FailsOnFirstUnpricedItem(t *testing.T) {
	items := []entities.OrderItem{{ShirtTypeID: "7"}, {ShirtTypeID: "nope"}}
	_, err := PriceOrder(items, testCatalog())
	assert.ErrorIs(t, err, entities.ErrUnresolvedBaseType)
	assert.Contains(t, err.Error(), "item 1")

	_, err = PriceOrder([]entities.OrderItem{{ShirtTypeID: "7", Quantity: -1}}, testCatalog())
	assert.ErrorIs(t, err, entities.ErrInvalidInput)
}

func TestBreakdown(t *testing.T) {
	items := []entities.OrderItem{
		{ShirtTypeID: "7", PatchImages: []string{"p1", "p2"}, PlayerName: "Ronaldo", Quantity: 2},
		{ShirtTypeID: "9"},
	}
	lines, total, err := Breakdown(items, testCatalog())
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, 0, lines[0].Index)
	assert.True(t, lines[0].Base.Equal(decimal.RequireFromString("30")))
	assert.True(t, lines[0].Patches.Equal(decimal.RequireFromString("4")))
	assert.True(t, lines[0].Personalization.Equal(decimal.RequireFromString("3")))
	assert.True(t, lines[0].LineTotal.Equal(decimal.RequireFromString("74")))
	assert.Equal(t, 1, lines[1].Quantity)
	assert.True(t, total.Equal(decimal.RequireFromString("119.90")), total.String())
}

func TestShirtTypeIDs(t *testing.T) {
	ids := ShirtTypeIDs([]entities.OrderItem{{ShirtTypeID: "7"}, {}, {ShirtTypeID: " 9 "}, {ShirtTypeID: "7"}})
	assert.Equal(t, []string{"7", "9"}, ids)
}
