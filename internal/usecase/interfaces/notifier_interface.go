package interfaces

import (
	"context"
	"loja_merch/internal/domain/entities"
)

// INotifier delivers customer notifications. Callers treat it as
// fire-and-forget: errors are logged, never propagated.

type INotifier interface {
	SendStatusChangeEmail(ctx context.Context, order entities.Order) error
}
