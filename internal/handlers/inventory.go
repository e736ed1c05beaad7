// internal/handlers/inventory.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/services"
	"github.com/TGM-HWI-SWP/B.I.E.R/internal/utils"
)

type InventoryHandler struct {
	inventoryService *services.InventoryService
}

func NewInventoryHandler(inventoryService *services.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// POST /inventory/add
func (h *InventoryHandler) AddStock(c *gin.Context) {
	var req services.AddStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.inventoryService.AddStock(c.Request.Context(), req.WarehouseID, req.ProductID, req.Quantity); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"added": req.Quantity})
}

// PUT /inventory/quantity
func (h *InventoryHandler) SetQuantity(c *gin.Context) {
	var req services.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.inventoryService.SetQuantity(c.Request.Context(), req.WarehouseID, req.ProductID, req.Quantity); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"quantity": req.Quantity})
}

// POST /inventory/withdraw
func (h *InventoryHandler) WithdrawStock(c *gin.Context) {
	var req services.WithdrawStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if err := h.inventoryService.Withdraw(c.Request.Context(), req.WarehouseID, req.ProductID, req.Quantity); err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"withdrawn": req.Quantity})
}

// POST /inventory/move
func (h *InventoryHandler) MoveStock(c *gin.Context) {
	var req services.MoveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	err := h.inventoryService.MoveStock(c.Request.Context(), req.ProductID, req.FromWarehouseID, req.ToWarehouseID, req.Quantity)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"moved": req.Quantity})
}

// DELETE /inventory/:warehouseId/:productId
func (h *InventoryHandler) RemoveEntry(c *gin.Context) {
	err := h.inventoryService.RemoveEntry(c.Request.Context(), c.Param("warehouseId"), c.Param("productId"))
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, gin.H{"removed": true})
}
