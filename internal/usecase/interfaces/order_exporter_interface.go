package interfaces

import (
	"context"
	"loja_merch/internal/domain/entities"
)

// IOrderExporter renders orders into a downloadable report.

type IOrderExporter interface {
	ExportOrders(ctx context.Context, orders []entities.Order) (entities.ExportFile, error)
}
