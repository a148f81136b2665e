package entities

import (
	"errors"
	"fmt"
)

// Error kinds. Every specific error below wraps exactly one of them so callers
// can branch with errors.Is on either level.
var (
	ErrValidation   = errors.New("validation error")
	ErrPricing      = errors.New("pricing error")
	ErrStore        = errors.New("order store error")
	ErrNotification = errors.New("notification error")
)

var (
	ErrMissingProof      = fmt.Errorf("%w: proof of payment is required", ErrValidation)
	ErrUnknownStatus     = fmt.Errorf("%w: unknown order status", ErrValidation)
	ErrPriceNotEditable  = fmt.Errorf("%w: price can only be set while the order is awaiting a quote", ErrValidation)
	ErrTerminalStatus    = fmt.Errorf("%w: order is in a terminal status", ErrValidation)
	ErrIllegalTransition = fmt.Errorf("%w: status transition not allowed", ErrValidation)
	ErrInvalidInput      = fmt.Errorf("%w: invalid input", ErrValidation)
	ErrProofRejected     = fmt.Errorf("%w: proof of payment could not be verified", ErrValidation)
	ErrNothingToExport   = fmt.Errorf("%w: no orders flagged for export", ErrValidation)

	ErrTrackingNotEditable = fmt.Errorf("%w: tracking cannot change on a cancelled order", ErrValidation)

	ErrUnresolvedBaseType = fmt.Errorf("%w: unresolved base price", ErrPricing)

	ErrOrderNotFound = fmt.Errorf("%w: order not found", ErrStore)
)
