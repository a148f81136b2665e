package notification

import (
	"context"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/infrastructure/observability"
	"loja_merch/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// LogNotifier only logs the email it would have sent. Used locally and when
// no email transport is configured.
type LogNotifier struct {
	logger *zap.Logger
}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: observability.OrNop(logger)}
}

func (n *LogNotifier) SendStatusChangeEmail(_ context.Context, order entities.Order) error {
	email, err := newStatusChangeEmail(order)
	if err != nil {
		return record(err)
	}
	n.logger.Info("status change email (log only)",
		zap.String("order_id", email.OrderID),
		zap.String("to", email.To),
		zap.String("status", email.StatusLabel),
		zap.String("total", email.Total),
	)
	return record(nil)
}
