package response

import (
	"loja_merch/internal/domain/entities"
	"loja_merch/internal/usecase"
)

type FieldResultResponse struct {
	Outcome string `json:"outcome"`
	Reason  string `json:"reason,omitempty"`
}

// ReconcileResponse reports each staged field on its own. Order is present
// only when no field failed.
type ReconcileResponse struct {
	OrderID string                         `json:"order_id"`
	Fields  map[string]FieldResultResponse `json:"fields"`
	Order   *OrderResponse                 `json:"order,omitempty"`
}

type BulkStatusResponse struct {
	Status    string            `json:"status"`
	Succeeded []string          `json:"succeeded"`
	Failed    map[string]string `json:"failed"`
}

type StatusLabelResponse struct {
	Code     string `json:"code"`
	Label    string `json:"label"`
	Terminal bool   `json:"terminal"`
}

func FromReconcileResult(r usecase.ReconcileResult) ReconcileResponse {
	resp := ReconcileResponse{OrderID: r.OrderID, Fields: map[string]FieldResultResponse{}}
	for _, f := range []usecase.Field{usecase.FieldPrice, usecase.FieldTracking, usecase.FieldStatus} {
		fr := r.Field(f)
		resp.Fields[string(f)] = FieldResultResponse{Outcome: string(fr.Outcome), Reason: fr.Reason()}
	}
	if r.Order != nil {
		o := FromOrder(*r.Order)
		resp.Order = &o
	}
	return resp
}

func FromBulkResult(r usecase.BulkResult) BulkStatusResponse {
	resp := BulkStatusResponse{
		Status:    string(r.Target),
		Succeeded: r.Succeeded(),
		Failed:    map[string]string{},
	}
	if resp.Succeeded == nil {
		resp.Succeeded = []string{}
	}
	for _, id := range r.Failed() {
		resp.Failed[id] = r.Items[id].Reason()
	}
	return resp
}

func StatusLabels() []StatusLabelResponse {
	out := make([]StatusLabelResponse, 0, len(entities.OrderStatuses))
	for _, s := range entities.OrderStatuses {
		out = append(out, StatusLabelResponse{Code: string(s), Label: s.Label(), Terminal: s.IsTerminal()})
	}
	return out
}
