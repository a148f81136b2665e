package payments

import (
	"context"
	"errors"
	"testing"

	"loja_merch/internal/domain/entities"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakePayments struct {
	resp  *payment.Response
	err   error
	calls []int
}

func (f *fakePayments) Get(_ context.Context, id int) (*payment.Response, error) {
	f.calls = append(f.calls, id)
	return f.resp, f.err
}

func TestMercadoPagoProofVerifier_VerifyProof(t *testing.T) {
	ctx := context.Background()

	t.Run("approved payment", func(t *testing.T) {
		fake := &fakePayments{resp: &payment.Response{ID: 123, Status: "approved"}}
		v := &MercadoPagoProofVerifier{client: fake, logger: zap.NewNop()}

		ok, err := v.VerifyProof(ctx, entities.ProofOfPayment{Reference: " 123 "})
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []int{123}, fake.calls)
	})

	t.Run("pending payment is not approved", func(t *testing.T) {
		fake := &fakePayments{resp: &payment.Response{ID: 9, Status: "pending"}}
		v := &MercadoPagoProofVerifier{client: fake, logger: zap.NewNop()}

		ok, err := v.VerifyProof(ctx, entities.ProofOfPayment{Reference: "9"})
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("non numeric reference skips provider", func(t *testing.T) {
		fake := &fakePayments{}
		v := &MercadoPagoProofVerifier{client: fake, logger: zap.NewNop()}

		ok, err := v.VerifyProof(ctx, entities.ProofOfPayment{Reference: "pix-abc"})
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, fake.calls)
	})

	t.Run("provider error", func(t *testing.T) {
		fake := &fakePayments{err: errors.New("401 unauthorized")}
		v := &MercadoPagoProofVerifier{client: fake, logger: zap.NewNop()}

		_, err := v.VerifyProof(ctx, entities.ProofOfPayment{Reference: "77"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401 unauthorized")
	})

	t.Run("mock mode approves payment ids", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		v, err := NewMercadoPagoProofVerifier("", nil)
		require.NoError(t, err)

		ok, err := v.VerifyProof(ctx, entities.ProofOfPayment{Reference: "42"})
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		_, err := NewMercadoPagoProofVerifier("", nil)
		assert.ErrorIs(t, err, ErrMissingMercadoPagoAccessToken)
	})
}
