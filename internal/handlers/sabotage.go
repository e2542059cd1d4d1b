package handlers

import (
	"net/http"

	"github.com/pienas/amongus/internal/services"
	"github.com/pienas/amongus/internal/ws"

	"github.com/gin-gonic/gin"
)

type SabotageHandler struct {
	sabotageService *services.SabotageService
	playerService   *services.PlayerService
	hub             *ws.Hub
}

func NewSabotageHandler(sabotageService *services.SabotageService, playerService *services.PlayerService, hub *ws.Hub) *SabotageHandler {
	return &SabotageHandler{sabotageService: sabotageService, playerService: playerService, hub: hub}
}

type StartSabotageRequest struct {
	UID  string `json:"uid" binding:"required" example:"u-7f3a"`
	Type string `json:"type" binding:"required,oneof=oxygen comms" example:"oxygen"`
}

type ResolveSabotageRequest struct {
	UID  string `json:"uid" binding:"required" example:"u-91cc"`
	Step string `json:"step" binding:"required,oneof=oxygen_first oxygen_second comms" example:"oxygen_first"`
	Code int    `json:"code" binding:"required" example:"661084"`
}

// Start godoc
// @Summary      Start a sabotage
// @Description  Imposter action; oxygen arms a deadline, comms blocks meetings until fixed
// @Tags         sabotage
// @Accept       json
// @Produce      json
// @Param        request body StartSabotageRequest true "Sabotage type"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/sabotage/start [post]
func (h *SabotageHandler) Start(c *gin.Context) {
	var req StartSabotageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.sabotageService.Start(req.UID, req.Type); err != nil {
		c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "sabotage_started")
	c.JSON(http.StatusOK, MessageResponse{Message: "sabotage started"})
}

// Resolve godoc
// @Summary      Resolve a sabotage step
// @Description  Verify the repair station code; the final step clears the sabotage
// @Tags         sabotage
// @Accept       json
// @Produce      json
// @Param        request body ResolveSabotageRequest true "Repair step"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/sabotage/resolve [post]
func (h *SabotageHandler) Resolve(c *gin.Context) {
	var req ResolveSabotageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.sabotageService.ResolveStep(req.UID, req.Step, req.Code); err != nil {
		c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "sabotage_step_resolved")
	c.JSON(http.StatusOK, MessageResponse{Message: "step resolved"})
}
