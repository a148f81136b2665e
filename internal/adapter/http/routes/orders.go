package routes

import (
	"net/http"

	"loja_merch/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing        = "/ping"
	PathOrders      = "/orders"
	PathAdminOrders = "/admin/orders"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.POST("/quote", orderHandler.QuoteOrder)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/proof", orderHandler.AttachProof)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler) {
	admin := rg.Group(PathAdminOrders)
	{
		admin.POST("/bulk-status", adminHandler.BulkStatus)
		admin.GET("/export", adminHandler.ExportCSV)
		admin.PATCH("/:id/status", adminHandler.UpdateStatus)
		admin.PATCH("/:id/price", adminHandler.UpdatePrice)
		admin.POST("/:id/tracking", adminHandler.AddTracking)
		admin.POST("/:id/changes", adminHandler.ApplyChanges)
	}

	rg.GET("/admin/statuses", adminHandler.ListStatuses)
}
