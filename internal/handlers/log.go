package handlers

import (
	"net/http"
	"strconv"

	"github.com/pienas/amongus/internal/services"

	"github.com/gin-gonic/gin"
)

type LogHandler struct {
	logService *services.LogService
}

func NewLogHandler(logService *services.LogService) *LogHandler {
	return &LogHandler{logService: logService}
}

// List godoc
// @Summary      List game log entries
// @Description  Most recent entries first
// @Tags         logs
// @Security     BearerAuth
// @Produce      json
// @Param        limit query int false "Max entries (default 100)"
// @Success      200 {array} GameLog
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/logs [get]
func (h *LogHandler) List(c *gin.Context) {
	limit := 100
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	logs, err := h.logService.List(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
