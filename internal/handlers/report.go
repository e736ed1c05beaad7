// internal/handlers/report.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/services"
	"github.com/TGM-HWI-SWP/B.I.E.R/internal/utils"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GET /reports/inventory/:warehouseId
// With ?format=text the report is returned as a downloadable plain-text
// artifact instead of JSON.
func (h *ReportHandler) InventoryReport(c *gin.Context) {
	warehouseID := c.Param("warehouseId")

	if c.Query("format") == "text" {
		text, err := h.reportService.RenderInventoryReport(c.Request.Context(), warehouseID)
		if err != nil {
			utils.ServiceErrorResponse(c, err)
			return
		}
		c.Header("Content-Disposition", "attachment; filename=inventory_"+warehouseID+".txt")
		c.String(http.StatusOK, text)
		return
	}

	rows, err := h.reportService.InventoryReport(c.Request.Context(), warehouseID)
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, rows)
}

// GET /reports/statistics
func (h *ReportHandler) StatisticsReport(c *gin.Context) {
	if c.Query("format") == "text" {
		text, err := h.reportService.RenderStatistics(c.Request.Context())
		if err != nil {
			utils.ServiceErrorResponse(c, err)
			return
		}
		c.Header("Content-Disposition", "attachment; filename=statistics.txt")
		c.String(http.StatusOK, text)
		return
	}

	stats, err := h.reportService.Statistics(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, stats)
}
