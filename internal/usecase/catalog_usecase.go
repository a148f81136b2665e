package usecase

import (
	"context"
	"fmt"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/domain/pricing"
	"loja_merch/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// ICatalogUseCase builds the pricing catalog slice a cart needs.
type ICatalogUseCase interface {
	LoadCatalog(ctx context.Context, items []entities.OrderItem) (entities.PricingCatalog, error)
}

type CatalogUseCase struct {
	provider interfaces.ICatalogProvider
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(provider interfaces.ICatalogProvider) *CatalogUseCase {
	return &CatalogUseCase{provider: provider}
}

// LoadCatalog fetches the base price of every shirt type referenced by items
// plus the shared patch and personalization prices. Unknown shirt types are
// left out so pricing can fall back to the item's own price.
func (u *CatalogUseCase) LoadCatalog(ctx context.Context, items []entities.OrderItem) (entities.PricingCatalog, error) {
	catalog := entities.PricingCatalog{ShirtTypePrices: make(map[string]decimal.Decimal)}

	for _, id := range pricing.ShirtTypeIDs(items) {
		price, found, err := u.provider.GetShirtTypePrice(ctx, id)
		if err != nil {
			return entities.PricingCatalog{}, fmt.Errorf("%w: shirt type %s: %w", entities.ErrPricing, id, err)
		}
		if found {
			catalog.ShirtTypePrices[id] = price
		}
	}

	patch, err := u.provider.GetPatchUnitPrice(ctx)
	if err != nil {
		return entities.PricingCatalog{}, fmt.Errorf("%w: patch price: %w", entities.ErrPricing, err)
	}
	fee, err := u.provider.GetPersonalizationFee(ctx)
	if err != nil {
		return entities.PricingCatalog{}, fmt.Errorf("%w: personalization fee: %w", entities.ErrPricing, err)
	}
	catalog.PatchUnitPrice = patch
	catalog.PersonalizationFee = fee
	return catalog, nil
}
