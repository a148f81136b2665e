package notification

import (
	"context"
	"fmt"
	"time"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/infrastructure/observability"
	"loja_merch/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// WebhookNotifier POSTs status change email requests to an HTTP email service.
type WebhookNotifier struct {
	client *resty.Client
	url    string
	logger *zap.Logger
}

var _ interfaces.INotifier = (*WebhookNotifier)(nil)

func NewWebhookNotifier(url string, timeout time.Duration, logger *zap.Logger) *WebhookNotifier {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(200*time.Millisecond).
		SetHeader("Content-Type", "application/json")
	return &WebhookNotifier{client: client, url: url, logger: observability.OrNop(logger)}
}

func (n *WebhookNotifier) SendStatusChangeEmail(ctx context.Context, order entities.Order) error {
	return record(n.send(ctx, order))
}

func (n *WebhookNotifier) send(ctx context.Context, order entities.Order) error {
	email, err := newStatusChangeEmail(order)
	if err != nil {
		return err
	}

	resp, err := n.client.R().
		SetContext(ctx).
		SetBody(email).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("email webhook request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("email webhook returned %d: %s", resp.StatusCode(), resp.String())
	}

	n.logger.Info("status change email requested",
		zap.String("order_id", order.ID),
		zap.Int("status_code", resp.StatusCode()),
	)
	return nil
}
