package notification

import (
	"errors"
	"strings"
	"time"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/infrastructure/observability"
)

var ErrNoRecipient = errors.New("order has no contact email")

// StatusChangeEmail is the request handed to the email service.
type StatusChangeEmail struct {
	OrderID     string    `json:"order_id"`
	UserID      string    `json:"user_id"`
	To          string    `json:"to"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	Total       string    `json:"total"`
	RequestedAt time.Time `json:"requested_at"`
}

func newStatusChangeEmail(order entities.Order) (StatusChangeEmail, error) {
	to := strings.TrimSpace(order.ContactEmail)
	if to == "" {
		return StatusChangeEmail{}, ErrNoRecipient
	}
	return StatusChangeEmail{
		OrderID:     order.ID,
		UserID:      order.UserID,
		To:          to,
		Status:      string(order.Status),
		StatusLabel: order.Status.Label(),
		Total:       entities.FormatMoney(order.TotalPrice),
		RequestedAt: time.Now().UTC(),
	}, nil
}

func record(err error) error {
	if err != nil {
		observability.RecordNotification("failed")
		return err
	}
	observability.RecordNotification("sent")
	return nil
}
