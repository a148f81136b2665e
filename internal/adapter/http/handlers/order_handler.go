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

// OrderHandler serves the customer-facing order endpoints.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Submit an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.CreateOrderRequest  true  "Checkout payload"
// @Success      201    {object}  response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      422    {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidPayload.WithDetail("reason", err.Error()))
		return
	}

	order, err := h.usecase.CreateOrder(c.Request.Context(), payload.ToCommand())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// QuoteOrder godoc
// @Summary      Price a cart without creating an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        cart  body      request.QuoteRequest  true  "Cart items"
// @Success      200   {object}  response.QuoteResponse
// @Failure      422   {object}  pkg.HTTPError
// @Router       /orders/quote [post]
func (h *OrderHandler) QuoteOrder(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidPayload.WithDetail("reason", err.Error()))
		return
	}

	quote, err := h.usecase.QuoteOrder(c.Request.Context(), payload.ToItems())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListOrders godoc
// @Summary      List orders newest first
// @Tags         orders
// @Produce      json
// @Param        status   query     string  false  "Status code or label"
// @Param        user_id  query     string  false  "Customer id"
// @Param        limit    query     int     false  "Page size (max 100)"
// @Param        cursor   query     string  false  "Cursor from a previous page"
// @Success      200      {object}  response.OrderPageResponse
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var filter entities.OrderFilter
	if raw := strings.TrimSpace(c.Query("status")); raw != "" {
		status, err := entities.ParseOrderStatus(raw)
		if err != nil {
			abortWithError(c, err)
			return
		}
		filter.Status = status
	}
	filter.UserID = strings.TrimSpace(c.Query("user_id"))

	page := entities.Page{Cursor: strings.TrimSpace(c.Query("cursor"))}
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			abortWithAppError(c, errInvalidPayload.WithDetail("reason", "limit must be an integer"))
			return
		}
		page.Limit = limit
	}

	result, err := h.usecase.ListOrders(c.Request.Context(), filter, page)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPage(result))
}

// GetOrder godoc
// @Summary      Get one order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := h.usecase.GetOrder(c.Request.Context(), id)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// AttachProof godoc
// @Summary      Attach a proof of payment
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id     path      string                true  "Order id"
// @Param        proof  body      request.ProofRequest  true  "Proof reference or image"
// @Success      200    {object}  response.OrderResponse
// @Failure      409    {object}  pkg.HTTPError
// @Failure      422    {object}  pkg.HTTPError
// @Router       /orders/{id}/proof [patch]
func (h *OrderHandler) AttachProof(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var payload request.ProofRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithAppError(c, errInvalidPayload.WithDetail("reason", err.Error()))
		return
	}

	order, err := h.usecase.AttachProof(c.Request.Context(), id, payload.ToEntity())
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

func orderID(c *gin.Context) (string, bool) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		abortWithAppError(c, errMissingOrderID)
		return "", false
	}
	return id, true
}
