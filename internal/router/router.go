// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/config"
	"github.com/TGM-HWI-SWP/B.I.E.R/internal/handlers"
	"github.com/TGM-HWI-SWP/B.I.E.R/internal/middleware"
	"github.com/TGM-HWI-SWP/B.I.E.R/internal/services"
	"github.com/TGM-HWI-SWP/B.I.E.R/internal/store"
)

func Initialize(st store.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	historyService := services.NewHistoryService(st)
	productService := services.NewProductService(st, historyService)
	warehouseService := services.NewWarehouseService(st, historyService)
	inventoryService := services.NewInventoryService(st, historyService)
	reportService := services.NewReportService(st)

	// Initialize handlers
	productHandler := handlers.NewProductHandler(productService)
	warehouseHandler := handlers.NewWarehouseHandler(warehouseService, inventoryService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	reportHandler := handlers.NewReportHandler(reportService)
	historyHandler := handlers.NewHistoryHandler(historyService)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		warehouses := v1.Group("/warehouses")
		{
			warehouses.GET("", warehouseHandler.ListWarehouses)
			warehouses.POST("", warehouseHandler.CreateWarehouse)
			warehouses.GET("/:id", warehouseHandler.GetWarehouse)
			warehouses.PUT("/:id", warehouseHandler.UpdateWarehouse)
			warehouses.DELETE("/:id", warehouseHandler.DeleteWarehouse)
			warehouses.GET("/:id/inventory", warehouseHandler.GetWarehouseInventory)
		}

		inventory := v1.Group("/inventory")
		{
			inventory.POST("/add", inventoryHandler.AddStock)
			inventory.PUT("/quantity", inventoryHandler.SetQuantity)
			inventory.POST("/withdraw", inventoryHandler.WithdrawStock)
			inventory.POST("/move", inventoryHandler.MoveStock)
			inventory.DELETE("/:warehouseId/:productId", inventoryHandler.RemoveEntry)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/inventory/:warehouseId", reportHandler.InventoryReport)
			reports.GET("/statistics", reportHandler.StatisticsReport)
		}

		v1.GET("/history", historyHandler.ListEvents)
	}

	return r
}
