package lifecycle

import (
	"context"
	"fmt"

	"loja_merch/internal/domain/entities"
)

// Hook is a side effect run after a persisted status change.
type Hook struct {
	Name    string
	Matches func(from, to entities.OrderStatus) bool
	Run     func(ctx context.Context, order entities.Order) error
}

// HookError reports a failed hook run.
type HookError struct {
	Hook    string
	OrderID string
	From    entities.OrderStatus
	To      entities.OrderStatus
	Err     error

	barrier chan struct{}
}

func (e HookError) Error() string {
	return fmt.Sprintf("hook %s (order %s, %s -> %s): %v", e.Hook, e.OrderID, e.From, e.To, e.Err)
}

func (e HookError) Unwrap() error {
	return e.Err
}

// On matches exactly one from -> to edge.
func On(from, to entities.OrderStatus) func(entities.OrderStatus, entities.OrderStatus) bool {
	return func(f, t entities.OrderStatus) bool {
		return f == from && t == to
	}
}

// Entering matches any transition into to.
func Entering(to entities.OrderStatus) func(entities.OrderStatus, entities.OrderStatus) bool {
	return func(_, t entities.OrderStatus) bool {
		return t == to
	}
}

// StatusNotifier sends the customer-facing status change email.
type StatusNotifier interface {
	SendStatusChangeEmail(ctx context.Context, order entities.Order) error
}

// NotifyOnAwaitingPayment emails the customer once a quoted order is ready to
// be paid.
func NotifyOnAwaitingPayment(n StatusNotifier) Hook {
	return Hook{
		Name:    "notify-awaiting-payment",
		Matches: On(entities.OrderStatusToQuote, entities.OrderStatusAwaitingPayment),
		Run: func(ctx context.Context, order entities.Order) error {
			if err := n.SendStatusChangeEmail(ctx, order); err != nil {
				return fmt.Errorf("%w: %w", entities.ErrNotification, err)
			}
			return nil
		},
	}
}
