package entities

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrderStatus(t *testing.T) {
	cases := map[string]OrderStatus{
		"to_quote":               OrderStatusToQuote,
		"A Orçamentar":           OrderStatusToQuote,
		"  a   orçamentar ":      OrderStatusToQuote,
		"PENDING":                OrderStatusPending,
		"Pendente":               OrderStatusPending,
		"csv":                    OrderStatusCSV,
		"Aguardando Comprovante": OrderStatusAwaitingProof,
		"awaiting_payment":       OrderStatusAwaitingPayment,
		"Em Produção":            OrderStatusProcessing,
	}
	for raw, want := range cases {
		got, err := ParseOrderStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseOrderStatus("shipped")
	assert.True(t, errors.Is(err, ErrUnknownStatus))
	assert.True(t, errors.Is(err, ErrValidation))

	_, err = ParseOrderStatus("")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestOrderStatus_LabelsCoverEveryStatus(t *testing.T) {
	for _, s := range OrderStatuses {
		assert.True(t, s.IsValid())
		assert.NotEqual(t, string(s), s.Label(), "status %s has no label", s)
	}
	assert.Equal(t, "A Orçamentar", OrderStatusToQuote.Label())
	assert.Equal(t, "bogus", OrderStatus("bogus").Label())
}

func TestOrderStatus_Before(t *testing.T) {
	assert.True(t, OrderStatusPending.Before(OrderStatusProcessing))
	assert.True(t, OrderStatusAwaitingPayment.Before(OrderStatusProcessing))
	assert.False(t, OrderStatusProcessing.Before(OrderStatusProcessing))
	assert.False(t, OrderStatusCSV.Before(OrderStatusProcessing))
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusCancelled.IsTerminal())
	assert.False(t, OrderStatusCSV.IsTerminal())
}
