package interfaces

import (
	"context"
	"loja_merch/internal/domain/entities"
)

// IProofVerifier checks a proof of payment against the payment provider.
// Payment processing itself happens elsewhere; this only confirms a reference.

type IProofVerifier interface {
	VerifyProof(ctx context.Context, proof entities.ProofOfPayment) (approved bool, err error)
}
