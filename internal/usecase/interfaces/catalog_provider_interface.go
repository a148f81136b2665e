package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// ICatalogProvider exposes the price table maintained by the catalog admin.
// GetShirtTypePrice reports found=false for unknown ids.

type ICatalogProvider interface {
	GetShirtTypePrice(ctx context.Context, id string) (price decimal.Decimal, found bool, err error)
	GetPatchUnitPrice(ctx context.Context) (decimal.Decimal, error)
	GetPersonalizationFee(ctx context.Context) (decimal.Decimal, error)
}
