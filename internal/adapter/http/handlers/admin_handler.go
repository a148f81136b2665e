package handlers

import (
	"net/http"
	"strconv"
	"strings"

	request "loja_merch/internal/adapter/http/dto/request"
	response "loja_merch/internal/adapter/http/dto/response"
	"loja_merch/internal/domain/entities"
	"loja_merch/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the administration console endpoints.
type AdminHandler struct {
	orders     usecase.IOrderUseCase
	reconciler usecase.IReconciler
	bulk       usecase.IBulkStatusApplier
	export     usecase.ICSVExportUseCase
}

func NewAdminHandler(
	orders usecase.IOrderUseCase,
	reconciler usecase.IReconciler,
	bulk usecase.IBulkStatusApplier,
	export usecase.ICSVExportUseCase,
) *AdminHandler {
	return &AdminHandler{orders: orders, reconciler: reconciler, bulk: bulk, export: export}
}

// UpdateStatus godoc
// @Summary      Move an order to another status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id      path      string                 true  "Order id"
// @Param        status  body      request.StatusRequest  true  "Target status code or label"
// @Success      200     {object}  response.OrderResponse
// @Failure      409     {object}  pkg.HTTPError
// @Router       /admin/orders/{id}/status [patch]
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidPayload.WithDetail("reason", err.Error()))
		return
	}
	target, err := entities.ParseOrderStatus(payload.Status)
	if err != nil {
		abortWithError(c, err)
		return
	}

	order, err := h.orders.UpdateStatus(c.Request.Context(), id, target)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UpdatePrice godoc
// @Summary      Set the quoted price of an order
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id     path      string                true  "Order id"
// @Param        price  body      request.PriceRequest  true  "New total"
// @Success      200    {object}  response.OrderResponse
// @Failure      409    {object}  pkg.HTTPError
// @Router       /admin/orders/{id}/price [patch]
func (h *AdminHandler) UpdatePrice(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var payload request.PriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidPayload.WithDetail("reason", err.Error()))
		return
	}

	order, err := h.orders.UpdatePrice(c.Request.Context(), id, *payload.Amount)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// AddTracking godoc
// @Summary      Append tracking information
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id        path      string                   true  "Order id"
// @Param        tracking  body      request.TrackingRequest  true  "Tracking text and media refs"
// @Success      200       {object}  response.OrderResponse
// @Router       /admin/orders/{id}/tracking [post]
func (h *AdminHandler) AddTracking(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var payload request.TrackingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidPayload.WithDetail("reason", err.Error()))
		return
	}

	order, err := h.orders.AddTracking(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ApplyChanges godoc
// @Summary      Apply staged status, price and tracking edits
// @Description  Every field is validated first. Store updates then run independently; 207 reports a partial failure.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Order id"
// @Param        changes  body      request.ChangesRequest  true  "Staged edits"
// @Success      200      {object}  response.ReconcileResponse
// @Success      207      {object}  response.ReconcileResponse
// @Failure      409      {object}  pkg.HTTPError
// @Router       /admin/orders/{id}/changes [post]
func (h *AdminHandler) ApplyChanges(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var payload request.ChangesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidPayload.WithDetail("reason", err.Error()))
		return
	}
	if payload.IsEmpty() {
		abortWithAppError(c, errInvalidPayload.WithDetail("reason", "no changes staged"))
		return
	}

	ctx := c.Request.Context()
	cs, err := h.reconciler.Open(ctx, id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	if payload.Price != nil {
		cs.StagePrice(*payload.Price)
	}
	if payload.Tracking != nil {
		cs.StageTracking(payload.Tracking.ToEntity())
	}
	if payload.Status != nil {
		if err := cs.Stage(usecase.FieldStatus, *payload.Status); err != nil {
			abortWithError(c, err)
			return
		}
	}

	result, err := h.reconciler.ApplyAll(ctx, cs)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(outcomeStatus(!result.FullySucceeded()), response.FromReconcileResult(result))
}

// BulkStatus godoc
// @Summary      Move many orders to one status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        bulk  body      request.BulkStatusRequest  true  "Order ids and target status"
// @Success      200   {object}  response.BulkStatusResponse
// @Success      207   {object}  response.BulkStatusResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /admin/orders/bulk-status [post]
func (h *AdminHandler) BulkStatus(c *gin.Context) {
	var payload request.BulkStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidPayload.WithDetail("reason", err.Error()))
		return
	}
	target, err := entities.ParseOrderStatus(payload.Status)
	if err != nil {
		abortWithError(c, err)
		return
	}

	result, err := h.bulk.ApplyBulk(c.Request.Context(), payload.OrderIDs, target)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(outcomeStatus(len(result.Failed()) > 0), response.FromBulkResult(result))
}

// ExportCSV godoc
// @Summary      Download the orders flagged for CSV export
// @Description  advance_to moves the exported orders to a new status once the file is built.
// @Tags         admin
// @Produce      text/csv
// @Param        advance_to  query     string  false  "Status to move exported orders to"
// @Success      200         {file}    file
// @Failure      404         {object}  pkg.HTTPError
// @Router       /admin/orders/export [get]
func (h *AdminHandler) ExportCSV(c *gin.Context) {
	var advanceTo entities.OrderStatus
	if raw := strings.TrimSpace(c.Query("advance_to")); raw != "" {
		status, err := entities.ParseOrderStatus(raw)
		if err != nil {
			abortWithError(c, err)
			return
		}
		advanceTo = status
	}

	ctx := c.Request.Context()
	result, err := h.export.Export(ctx)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.Header("X-Exported-Count", strconv.Itoa(len(result.OrderIDs)))
	if advanceTo != "" {
		bulk, err := h.bulk.ApplyBulk(ctx, result.OrderIDs, advanceTo)
		if err != nil {
			abortWithError(c, err)
			return
		}
		c.Header("X-Advanced-Count", strconv.Itoa(len(bulk.Succeeded())))
		c.Header("X-Advance-Failed-Count", strconv.Itoa(len(bulk.Failed())))
	}

	c.Header("Content-Disposition", `attachment; filename="`+result.File.Name+`"`)
	c.Data(http.StatusOK, result.File.ContentType, result.File.Content)
}

// ListStatuses godoc
// @Summary      Status codes with their display labels
// @Tags         admin
// @Produce      json
// @Success      200  {array}  response.StatusLabelResponse
// @Router       /admin/statuses [get]
func (h *AdminHandler) ListStatuses(c *gin.Context) {
	c.JSON(http.StatusOK, response.StatusLabels())
}
