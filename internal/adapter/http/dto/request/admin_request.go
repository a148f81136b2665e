package request

import (
	"loja_merch/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type PriceRequest struct {
	Amount *decimal.Decimal `json:"amount" binding:"required"`
}

type TrackingRequest struct {
	Text   string   `json:"text"`
	Images []string `json:"images"`
	Videos []string `json:"videos"`
}

func (r TrackingRequest) ToEntity() entities.TrackingUpdate {
	return entities.TrackingUpdate{
		Text:   SanitizeText(r.Text),
		Images: sanitizeRefs(r.Images),
		Videos: sanitizeRefs(r.Videos),
	}
}

// ChangesRequest carries the edits an admin staged on one order. Absent
// fields are left untouched.
type ChangesRequest struct {
	Status   *string          `json:"status"`
	Price    *decimal.Decimal `json:"price"`
	Tracking *TrackingRequest `json:"tracking"`
}

func (r ChangesRequest) IsEmpty() bool {
	return r.Status == nil && r.Price == nil && r.Tracking == nil
}

type BulkStatusRequest struct {
	OrderIDs []string `json:"order_ids" binding:"required,min=1"`
	Status   string   `json:"status" binding:"required"`
}
