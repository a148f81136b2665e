package payments

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"loja_merch/internal/domain/entities"
	"loja_merch/internal/infrastructure/observability"
	"loja_merch/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoVerifierNotConfigured = errors.New("mercado pago verifier not configured")

const statusApproved = "approved"

type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoProofVerifier checks that a proof reference is the id of an
// approved Mercado Pago payment. References that are not payment ids are
// rejected without calling the provider.
type MercadoPagoProofVerifier struct {
	client   paymentGetter
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.IProofVerifier = (*MercadoPagoProofVerifier)(nil)

func NewMercadoPagoProofVerifier(accessToken string, logger *zap.Logger) (*MercadoPagoProofVerifier, error) {
	logger = observability.OrNop(logger)
	if isPaymentGatewayMockEnabled() {
		logger.Info("mercado pago verifier in mock mode")
		return &MercadoPagoProofVerifier{mockMode: true, logger: logger}, nil
	}

	if accessToken == "" {
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercado pago sdk config: %w", err)
	}
	logger.Info("mercado pago client initialized")

	return &MercadoPagoProofVerifier{client: payment.NewClient(cfg), logger: logger}, nil
}

func (v *MercadoPagoProofVerifier) VerifyProof(ctx context.Context, proof entities.ProofOfPayment) (bool, error) {
	ref := strings.TrimSpace(proof.Reference)
	id, err := strconv.Atoi(ref)
	if err != nil || id <= 0 {
		v.logger.Info("proof reference is not a payment id", zap.String("reference", ref))
		return false, nil
	}

	if v.mockMode {
		return true, nil
	}
	if v.client == nil {
		return false, ErrMercadoPagoVerifierNotConfigured
	}

	resp, err := v.client.Get(ctx, id)
	if err != nil {
		return false, fmt.Errorf("mercado pago get payment %d: %w", id, err)
	}

	approved := strings.EqualFold(resp.Status, statusApproved)
	v.logger.Info("proof verified",
		zap.Int("payment_id", resp.ID),
		zap.String("provider_status", resp.Status),
		zap.Bool("approved", approved),
	)
	return approved, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
