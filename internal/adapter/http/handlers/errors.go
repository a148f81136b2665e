package handlers

import (
	"errors"
	"net/http"

	"loja_merch/internal/domain/entities"
	"loja_merch/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_PAYLOAD", "Invalid request payload", http.StatusBadRequest)
	errMissingOrderID = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Order id is required", http.StatusBadRequest)
)

// mapOrderError translates domain and store failures into transport errors.
// Specific reasons are checked before their kind.
func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrUnknownStatus):
		return pkg.NewDomainError("UNKNOWN_STATUS", "Unknown order status", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest).WithDetail("reason", err.Error())
	case errors.Is(err, entities.ErrMissingProof):
		return pkg.NewDomainError("MISSING_PROOF", "A proof of payment is required for this transition", err, http.StatusConflict)
	case errors.Is(err, entities.ErrTerminalStatus):
		return pkg.NewDomainError("TERMINAL_STATUS", "Order is in a terminal status", err, http.StatusConflict)
	case errors.Is(err, entities.ErrIllegalTransition):
		return pkg.NewDomainError("ILLEGAL_TRANSITION", "Status transition not allowed", err, http.StatusConflict).WithDetail("reason", err.Error())
	case errors.Is(err, entities.ErrPriceNotEditable):
		return pkg.NewDomainError("PRICE_NOT_EDITABLE", "Price can only be edited while the order is to be quoted", err, http.StatusConflict)
	case errors.Is(err, entities.ErrTrackingNotEditable):
		return pkg.NewDomainError("TRACKING_NOT_EDITABLE", "Tracking cannot change on this order", err, http.StatusConflict)
	case errors.Is(err, entities.ErrProofRejected):
		return pkg.NewDomainError("PROOF_REJECTED", "Proof of payment was not accepted", err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrNothingToExport):
		return pkg.NewDomainError("NOTHING_TO_EXPORT", "No orders are flagged for export", err, http.StatusNotFound)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("VALIDATION_ERROR", "Validation failed", err, http.StatusUnprocessableEntity).WithDetail("reason", err.Error())
	case errors.Is(err, entities.ErrPricing):
		return pkg.NewDomainError("PRICING_ERROR", "Order could not be priced", err, http.StatusUnprocessableEntity).WithDetail("reason", err.Error())
	case errors.Is(err, entities.ErrStore):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Order store failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func abortWithError(c *gin.Context, err error) {
	appErr := mapOrderError(err)
	_ = c.Error(appErr)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func abortWithAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// outcomeStatus is 207 when part of a batch failed.
func outcomeStatus(failed bool) int {
	if failed {
		return http.StatusMultiStatus
	}
	return http.StatusOK
}
