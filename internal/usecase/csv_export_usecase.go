package usecase

import (
	"context"
	"fmt"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/domain/lifecycle"
	"loja_merch/internal/infrastructure/observability"
	"loja_merch/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// maxExportPages bounds the listing loop against a store that keeps handing
// back a cursor.
const maxExportPages = 1000

// ExportResult is a rendered report and the ids of the orders in it.
type ExportResult struct {
	File     entities.ExportFile
	OrderIDs []string
}

// ICSVExportUseCase builds the report of orders flagged for export.
type ICSVExportUseCase interface {
	Export(ctx context.Context) (ExportResult, error)
}

type CSVExportUseCase struct {
	repo     interfaces.IOrderRepository
	exporter interfaces.IOrderExporter
	logger   *zap.Logger
}

var _ ICSVExportUseCase = (*CSVExportUseCase)(nil)

func NewCSVExportUseCase(repo interfaces.IOrderRepository, exporter interfaces.IOrderExporter, logger *zap.Logger) *CSVExportUseCase {
	return &CSVExportUseCase{repo: repo, exporter: exporter, logger: observability.OrNop(logger)}
}

// SelectForExport keeps the orders currently flagged for export, in input
// order. It fails with ErrNothingToExport when none are.
func SelectForExport(orders []entities.Order) ([]entities.Order, error) {
	var out []entities.Order
	for _, o := range orders {
		if lifecycle.ExportEligible(o) {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return nil, entities.ErrNothingToExport
	}
	return out, nil
}

// Export renders every flagged order. It never changes order status; moving
// exported orders forward is a separate bulk call.
func (u *CSVExportUseCase) Export(ctx context.Context) (ExportResult, error) {
	ctx, span := observability.StartSpan(ctx, "CSVExportUseCase.Export")
	defer span.End()

	flagged, err := u.listFlagged(ctx)
	if err != nil {
		return ExportResult{}, err
	}
	selected, err := SelectForExport(flagged)
	if err != nil {
		return ExportResult{}, err
	}

	file, err := u.exporter.ExportOrders(ctx, selected)
	if err != nil {
		return ExportResult{}, fmt.Errorf("render export: %w", err)
	}

	ids := make([]string, len(selected))
	for i, o := range selected {
		ids[i] = o.ID
	}
	u.logger.Info("orders exported", zap.Int("count", len(ids)), zap.String("file", file.Name))
	return ExportResult{File: file, OrderIDs: ids}, nil
}

func (u *CSVExportUseCase) listFlagged(ctx context.Context) ([]entities.Order, error) {
	var (
		all    []entities.Order
		cursor string
	)
	filter := entities.OrderFilter{Status: entities.OrderStatusCSV}
	for i := 0; i < maxExportPages; i++ {
		page, err := u.repo.List(ctx, filter, entities.Page{Limit: entities.MaxPageLimit, Cursor: cursor})
		if err != nil {
			return nil, storeError("list flagged orders", err)
		}
		all = append(all, page.Orders...)
		if page.NextCursor == "" || page.NextCursor == cursor {
			return all, nil
		}
		cursor = page.NextCursor
	}
	return all, nil
}
