package memory

import (
	"context"
	"testing"

	"loja_merch/internal/domain/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	ctx := context.Background()
	seed := entities.PricingCatalog{
		ShirtTypePrices: map[string]decimal.Decimal{"classic": decimal.NewFromInt(100)},
		PatchUnitPrice:  decimal.NewFromInt(10),
	}
	c := NewCatalog(seed)
	c.SetShirtTypePrice("retro", decimal.NewFromInt(130))

	_, found := seed.ShirtTypePrices["retro"]
	assert.False(t, found, "seed map must not be shared")

	price, found, err := c.GetShirtTypePrice(ctx, "retro")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, price.Equal(decimal.NewFromInt(130)))

	_, found, err = c.GetShirtTypePrice(ctx, "ghost")
	require.NoError(t, err)
	assert.False(t, found)

	patch, err := c.GetPatchUnitPrice(ctx)
	require.NoError(t, err)
	assert.True(t, patch.Equal(decimal.NewFromInt(10)))

	fee, err := c.GetPersonalizationFee(ctx)
	require.NoError(t, err)
	assert.True(t, fee.IsZero())
}
