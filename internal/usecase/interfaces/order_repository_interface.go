package interfaces

import (
	"context"
	"loja_merch/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IOrderRepository is the authoritative order store.
//
// Lookups and updates of a missing order return a zero Order (empty ID) and a
// nil error; callers translate that into entities.ErrOrderNotFound.
//
// UpdateTracking is append-only: images and videos are added to the stored
// collections (set union) and a non-empty text replaces the stored text.

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context, filter entities.OrderFilter, page entities.Page) (entities.OrderPage, error)
	UpdateStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	UpdatePrice(ctx context.Context, id string, amount decimal.Decimal) (entities.Order, error)
	UpdateTracking(ctx context.Context, id string, update entities.TrackingUpdate) (entities.Order, error)
	UpdateProof(ctx context.Context, id string, proof entities.ProofOfPayment) (entities.Order, error)
}
