package usecase

import (
	"testing"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/domain/lifecycle"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newMachine(t *testing.T, allowTerminalOverride bool) *lifecycle.StateMachine {
	t.Helper()
	m := lifecycle.New(lifecycle.Options{AllowTerminalOverride: allowTerminalOverride, Logger: zap.NewNop()})
	t.Cleanup(m.Close)
	return m
}

func orderIn(status entities.OrderStatus) entities.Order {
	return entities.Order{
		ID:         "ord-1",
		UserID:     "user-1",
		Status:     status,
		TotalPrice: decimal.Zero,
		Proof:      &entities.ProofOfPayment{Reference: "pix-123"},
	}
}

type decimalMatcher struct {
	want decimal.Decimal
}

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string {
	return "is decimal " + m.want.String()
}

func decimalEq(s string) gomock.Matcher {
	return decimalMatcher{want: decimal.RequireFromString(s)}
}
