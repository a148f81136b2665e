package memory

import (
	"context"
	"sync"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// Catalog is a price table held in memory, paired with the memory order
// store for local runs.
type Catalog struct {
	mu      sync.RWMutex
	catalog entities.PricingCatalog
}

var _ interfaces.ICatalogProvider = (*Catalog)(nil)

func NewCatalog(seed entities.PricingCatalog) *Catalog {
	prices := make(map[string]decimal.Decimal, len(seed.ShirtTypePrices))
	for id, p := range seed.ShirtTypePrices {
		prices[id] = p
	}
	seed.ShirtTypePrices = prices
	return &Catalog{catalog: seed}
}

func (c *Catalog) SetShirtTypePrice(id string, price decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.catalog.ShirtTypePrices[id] = price
}

func (c *Catalog) GetShirtTypePrice(_ context.Context, id string) (decimal.Decimal, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.catalog.ShirtTypePrice(id)
	return p, ok, nil
}

func (c *Catalog) GetPatchUnitPrice(context.Context) (decimal.Decimal, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog.PatchUnitPrice, nil
}

func (c *Catalog) GetPersonalizationFee(context.Context) (decimal.Decimal, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog.PersonalizationFee, nil
}
