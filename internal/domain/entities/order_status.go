package entities

import (
	"fmt"
	"strings"
)

// OrderStatus is the administrative lifecycle state of an order.
//
// Values are stable codes; the pt-BR labels shown to customers and admins live
// in statusLabels and are accepted as input aliases by ParseOrderStatus.
type OrderStatus string

const (
	OrderStatusAwaitingProof   OrderStatus = "awaiting_proof"
	OrderStatusPending         OrderStatus = "pending"
	OrderStatusToReview        OrderStatus = "to_review"
	OrderStatusToQuote         OrderStatus = "to_quote"
	OrderStatusAwaitingPayment OrderStatus = "awaiting_payment"
	OrderStatusProcessing      OrderStatus = "processing"
	OrderStatusCompleted       OrderStatus = "completed"
	OrderStatusCancelled       OrderStatus = "cancelled"
	OrderStatusCSV             OrderStatus = "csv"
)

// OrderStatuses lists every status in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderStatusAwaitingProof,
	OrderStatusPending,
	OrderStatusToReview,
	OrderStatusToQuote,
	OrderStatusAwaitingPayment,
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusCancelled,
	OrderStatusCSV,
}

var statusLabels = map[OrderStatus]string{
	OrderStatusAwaitingProof:   "Aguardando Comprovante",
	OrderStatusPending:         "Pendente",
	OrderStatusToReview:        "A Revisar",
	OrderStatusToQuote:         "A Orçamentar",
	OrderStatusAwaitingPayment: "Aguardando Pagamento",
	OrderStatusProcessing:      "Em Produção",
	OrderStatusCompleted:       "Concluído",
	OrderStatusCancelled:       "Cancelado",
	OrderStatusCSV:             "CSV",
}

// lifecycle position; csv sits beside the flow and has no rank.
var statusRank = map[OrderStatus]int{
	OrderStatusAwaitingProof:   0,
	OrderStatusPending:         1,
	OrderStatusToReview:        2,
	OrderStatusToQuote:         3,
	OrderStatusAwaitingPayment: 4,
	OrderStatusProcessing:      5,
	OrderStatusCompleted:       6,
	OrderStatusCancelled:       6,
}

var statusByAlias = func() map[string]OrderStatus {
	m := make(map[string]OrderStatus, len(statusLabels)*2)
	for s, label := range statusLabels {
		m[normalizeStatusKey(string(s))] = s
		m[normalizeStatusKey(label)] = s
	}
	return m
}()

func normalizeStatusKey(v string) string {
	return strings.ToLower(strings.Join(strings.Fields(v), " "))
}

// ParseOrderStatus resolves a status code or display label. Unknown values fail
// with ErrUnknownStatus.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	if s, ok := statusByAlias[normalizeStatusKey(raw)]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

func (s OrderStatus) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the display label, or the raw value for unknown statuses.
func (s OrderStatus) Label() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Before reports whether s comes strictly earlier than other in the main flow.
// The csv side-channel never precedes anything.
func (s OrderStatus) Before(other OrderStatus) bool {
	a, okA := statusRank[s]
	b, okB := statusRank[other]
	return okA && okB && a < b
}

func (s OrderStatus) String() string {
	return string(s)
}
