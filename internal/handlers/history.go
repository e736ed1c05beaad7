// internal/handlers/history.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/TGM-HWI-SWP/B.I.E.R/internal/services"
	"github.com/TGM-HWI-SWP/B.I.E.R/internal/utils"
)

type HistoryHandler struct {
	historyService *services.HistoryService
}

func NewHistoryHandler(historyService *services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

// GET /history
func (h *HistoryHandler) ListEvents(c *gin.Context) {
	events, err := h.historyService.List(c.Request.Context())
	if err != nil {
		utils.ServiceErrorResponse(c, err)
		return
	}
	utils.SuccessResponse(c, events)
}
