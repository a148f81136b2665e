package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"loja_merch/internal/adapter/http/handlers/mocks"
	"loja_merch/internal/domain/entities"
	"loja_merch/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type adminMocks struct {
	orders     *mocks.MockIOrderUseCase
	reconciler *mocks.MockIReconciler
	bulk       *mocks.MockIBulkStatusApplier
	export     *mocks.MockICSVExportUseCase
	router     *gin.Engine
}

func newAdminRouter(t *testing.T) adminMocks {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := adminMocks{
		orders:     mocks.NewMockIOrderUseCase(ctrl),
		reconciler: mocks.NewMockIReconciler(ctrl),
		bulk:       mocks.NewMockIBulkStatusApplier(ctrl),
		export:     mocks.NewMockICSVExportUseCase(ctrl),
	}
	h := NewAdminHandler(m.orders, m.reconciler, m.bulk, m.export)

	r := gin.New()
	admin := r.Group("/v1/admin")
	admin.PATCH("/orders/:id/status", h.UpdateStatus)
	admin.PATCH("/orders/:id/price", h.UpdatePrice)
	admin.POST("/orders/:id/tracking", h.AddTracking)
	admin.POST("/orders/:id/changes", h.ApplyChanges)
	admin.POST("/orders/bulk-status", h.BulkStatus)
	admin.GET("/orders/export", h.ExportCSV)
	admin.GET("/statuses", h.ListStatuses)
	m.router = r
	return m
}

func TestAdminHandler_UpdateStatus(t *testing.T) {
	t.Run("label is accepted", func(t *testing.T) {
		m := newAdminRouter(t)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusToReview).
			Return(entities.Order{ID: "ord-1", Status: entities.OrderStatusToReview}, nil)

		w := doJSON(m.router, http.MethodPatch, "/v1/admin/orders/ord-1/status", `{"status":"A Revisar"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown status never reaches the usecase", func(t *testing.T) {
		m := newAdminRouter(t)

		w := doJSON(m.router, http.MethodPatch, "/v1/admin/orders/ord-1/status", `{"status":"shipped"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing proof is 409", func(t *testing.T) {
		m := newAdminRouter(t)
		m.orders.EXPECT().UpdateStatus(gomock.Any(), "ord-1", entities.OrderStatusPending).Return(entities.Order{}, entities.ErrMissingProof)

		w := doJSON(m.router, http.MethodPatch, "/v1/admin/orders/ord-1/status", `{"status":"pending"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "MISSING_PROOF" {
			t.Fatalf("expected MISSING_PROOF, got %v", body["code"])
		}
	})
}

func TestAdminHandler_UpdatePrice(t *testing.T) {
	t.Run("missing amount", func(t *testing.T) {
		m := newAdminRouter(t)

		w := doJSON(m.router, http.MethodPatch, "/v1/admin/orders/ord-1/price", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not editable", func(t *testing.T) {
		m := newAdminRouter(t)
		m.orders.EXPECT().UpdatePrice(gomock.Any(), "ord-1", gomock.Any()).Return(entities.Order{}, entities.ErrPriceNotEditable)

		w := doJSON(m.router, http.MethodPatch, "/v1/admin/orders/ord-1/price", `{"amount":"150.00"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("updated", func(t *testing.T) {
		m := newAdminRouter(t)
		m.orders.EXPECT().UpdatePrice(gomock.Any(), "ord-1", gomock.Any()).DoAndReturn(func(_ any, _ string, amount decimal.Decimal) (entities.Order, error) {
			if !amount.Equal(decimal.RequireFromString("150.5")) {
				t.Fatalf("unexpected amount %s", amount)
			}
			return entities.Order{ID: "ord-1", TotalPrice: amount}, nil
		})

		w := doJSON(m.router, http.MethodPatch, "/v1/admin/orders/ord-1/price", `{"amount":150.5}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestAdminHandler_AddTracking(t *testing.T) {
	m := newAdminRouter(t)
	m.orders.EXPECT().AddTracking(gomock.Any(), "ord-1", entities.TrackingUpdate{Text: "BR123", Images: []string{"img/1.png"}, Videos: []string{}}).
		Return(entities.Order{ID: "ord-1", TrackingText: "BR123"}, nil)

	w := doJSON(m.router, http.MethodPost, "/v1/admin/orders/ord-1/tracking", `{"text":"<b>BR123</b>","images":["img/1.png"]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestAdminHandler_ApplyChanges(t *testing.T) {
	snapshot := entities.Order{
		ID:         "ord-1",
		Status:     entities.OrderStatusToQuote,
		TotalPrice: decimal.NewFromInt(100),
		Proof:      &entities.ProofOfPayment{Reference: "pix-1"},
	}

	t.Run("empty body", func(t *testing.T) {
		m := newAdminRouter(t)

		w := doJSON(m.router, http.MethodPost, "/v1/admin/orders/ord-1/changes", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("partial failure is 207", func(t *testing.T) {
		m := newAdminRouter(t)
		m.reconciler.EXPECT().Open(gomock.Any(), "ord-1").Return(usecase.NewPendingChangeSet(snapshot), nil)
		m.reconciler.EXPECT().ApplyAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, cs *usecase.PendingChangeSet) (usecase.ReconcileResult, error) {
			dirty := cs.Dirty()
			if !dirty.Price || !dirty.Status || dirty.Tracking {
				t.Fatalf("unexpected dirty flags %+v", dirty)
			}
			return usecase.ReconcileResult{
				OrderID:  "ord-1",
				Price:    usecase.FieldResult{Outcome: usecase.OutcomeApplied},
				Status:   usecase.FieldResult{Outcome: usecase.OutcomeFailed, Err: errors.New("store timeout")},
				Tracking: usecase.FieldResult{Outcome: usecase.OutcomeSkipped},
			}, nil
		})

		w := doJSON(m.router, http.MethodPost, "/v1/admin/orders/ord-1/changes", `{"price":"120","status":"awaiting_payment"}`)
		if w.Code != http.StatusMultiStatus {
			t.Fatalf("expected 207, got %d", w.Code)
		}

		var body struct {
			Fields map[string]struct {
				Outcome string `json:"outcome"`
				Reason  string `json:"reason"`
			} `json:"fields"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if body.Fields["status"].Reason != "store timeout" || body.Fields["price"].Outcome != "applied" {
			t.Fatalf("unexpected fields: %+v", body.Fields)
		}
	})

	t.Run("validation aborts the batch", func(t *testing.T) {
		m := newAdminRouter(t)
		m.reconciler.EXPECT().Open(gomock.Any(), "ord-1").Return(usecase.NewPendingChangeSet(snapshot), nil)
		m.reconciler.EXPECT().ApplyAll(gomock.Any(), gomock.Any()).Return(usecase.ReconcileResult{}, entities.ErrIllegalTransition)

		w := doJSON(m.router, http.MethodPost, "/v1/admin/orders/ord-1/changes", `{"status":"completed"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unknown staged status", func(t *testing.T) {
		m := newAdminRouter(t)
		m.reconciler.EXPECT().Open(gomock.Any(), "ord-1").Return(usecase.NewPendingChangeSet(snapshot), nil)

		w := doJSON(m.router, http.MethodPost, "/v1/admin/orders/ord-1/changes", `{"status":"lost"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAdminHandler_BulkStatus(t *testing.T) {
	t.Run("mixed results", func(t *testing.T) {
		m := newAdminRouter(t)
		m.bulk.EXPECT().ApplyBulk(gomock.Any(), []string{"a", "b"}, entities.OrderStatusProcessing).Return(usecase.BulkResult{
			Target: entities.OrderStatusProcessing,
			Items: map[string]usecase.BulkItemResult{
				"a": {OK: true},
				"b": {Err: entities.ErrMissingProof},
			},
		}, nil)

		w := doJSON(m.router, http.MethodPost, "/v1/admin/orders/bulk-status", `{"order_ids":["a","b"],"status":"processing"}`)
		if w.Code != http.StatusMultiStatus {
			t.Fatalf("expected 207, got %d", w.Code)
		}
	})

	t.Run("all succeeded", func(t *testing.T) {
		m := newAdminRouter(t)
		m.bulk.EXPECT().ApplyBulk(gomock.Any(), []string{"a"}, entities.OrderStatusCancelled).Return(usecase.BulkResult{
			Target: entities.OrderStatusCancelled,
			Items:  map[string]usecase.BulkItemResult{"a": {OK: true}},
		}, nil)

		w := doJSON(m.router, http.MethodPost, "/v1/admin/orders/bulk-status", `{"order_ids":["a"],"status":"cancelled"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("unknown target", func(t *testing.T) {
		m := newAdminRouter(t)

		w := doJSON(m.router, http.MethodPost, "/v1/admin/orders/bulk-status", `{"order_ids":["a"],"status":"nope"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestAdminHandler_ExportCSV(t *testing.T) {
	file := entities.ExportFile{Name: "orders.csv", ContentType: "text/csv; charset=utf-8", Content: []byte("order_id\nord-1\n")}

	t.Run("download", func(t *testing.T) {
		m := newAdminRouter(t)
		m.export.EXPECT().Export(gomock.Any()).Return(usecase.ExportResult{File: file, OrderIDs: []string{"ord-1"}}, nil)

		w := doJSON(m.router, http.MethodGet, "/v1/admin/orders/export", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != string(file.Content) {
			t.Fatalf("unexpected body %q", w.Body.String())
		}
		if got := w.Header().Get("Content-Disposition"); got != `attachment; filename="orders.csv"` {
			t.Fatalf("unexpected disposition %q", got)
		}
	})

	t.Run("advance exported orders", func(t *testing.T) {
		m := newAdminRouter(t)
		m.export.EXPECT().Export(gomock.Any()).Return(usecase.ExportResult{File: file, OrderIDs: []string{"ord-1"}}, nil)
		m.bulk.EXPECT().ApplyBulk(gomock.Any(), []string{"ord-1"}, entities.OrderStatusProcessing).Return(usecase.BulkResult{
			Target: entities.OrderStatusProcessing,
			Items:  map[string]usecase.BulkItemResult{"ord-1": {OK: true}},
		}, nil)

		w := doJSON(m.router, http.MethodGet, "/v1/admin/orders/export?advance_to=processing", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("X-Advanced-Count") != "1" {
			t.Fatalf("expected one advanced order, got %q", w.Header().Get("X-Advanced-Count"))
		}
	})

	t.Run("nothing to export", func(t *testing.T) {
		m := newAdminRouter(t)
		m.export.EXPECT().Export(gomock.Any()).Return(usecase.ExportResult{}, entities.ErrNothingToExport)

		w := doJSON(m.router, http.MethodGet, "/v1/admin/orders/export", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestAdminHandler_ListStatuses(t *testing.T) {
	m := newAdminRouter(t)

	w := doJSON(m.router, http.MethodGet, "/v1/admin/statuses", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json response: %v", err)
	}
	if len(body) != len(entities.OrderStatuses) {
		t.Fatalf("expected %d statuses, got %d", len(entities.OrderStatuses), len(body))
	}
}
