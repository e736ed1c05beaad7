// internal/handlers/warehouse.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/services"
	"github.com/TGM-HWI-SWP/B.I.E.R/internal/utils"
)

type WarehouseHandler struct {
	warehouseService *services.WarehouseService
	inventoryService *services.InventoryService
}

func NewWarehouseHandler(warehouseService *services.WarehouseService, inventoryService *services.InventoryService) *WarehouseHandler {
	return &WarehouseHandler{
		warehouseService: warehouseService,
		inventoryService: inventoryService,
	}
}

// GET /warehouses
func (h *WarehouseHandler) ListWarehouses(c *gin.Context) {
	warehouses, err := h.warehouseService.List(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, warehouses)
}

// POST /warehouses
func (h *WarehouseHandler) CreateWarehouse(c *gin.Context) {
	var req services.CreateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	warehouse, err := h.warehouseService.Create(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	utils.CreatedResponse(c, warehouse)
}

// GET /warehouses/:id
func (h *WarehouseHandler) GetWarehouse(c *gin.Context) {
	warehouse, found, err := h.warehouseService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	if !found {
		utils.NotFoundResponse(c, "warehouse not found")
		return
	}
	utils.SuccessResponse(c, warehouse)
}

// PUT /warehouses/:id
func (h *WarehouseHandler) UpdateWarehouse(c *gin.Context) {
	var req services.UpdateWarehouseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	warehouse, err := h.warehouseService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, warehouse)
}

// DELETE /warehouses/:id
func (h *WarehouseHandler) DeleteWarehouse(c *gin.Context) {
	if err := h.warehouseService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// GET /warehouses/:id/inventory
func (h *WarehouseHandler) GetWarehouseInventory(c *gin.Context) {
	stocked, err := h.inventoryService.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, stocked)
}
