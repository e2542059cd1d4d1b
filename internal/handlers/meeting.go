package handlers

import (
	"net/http"

	"github.com/pienas/amongus/internal/services"
	"github.com/pienas/amongus/internal/ws"

	"github.com/gin-gonic/gin"
)

type MeetingHandler struct {
	meetingService *services.MeetingService
	playerService  *services.PlayerService
	authService    *services.AuthService
	hub            *ws.Hub
}

func NewMeetingHandler(meetingService *services.MeetingService, playerService *services.PlayerService, authService *services.AuthService, hub *ws.Hub) *MeetingHandler {
	return &MeetingHandler{meetingService: meetingService, playerService: playerService, authService: authService, hub: hub}
}

type ReportRequest struct {
	UID      string `json:"uid" binding:"required" example:"u-7f3a"`
	FoundUID string `json:"found_uid" binding:"required" example:"u-91cc"`
}

type CallMeetingRequest struct {
	UID string `json:"uid" binding:"required" example:"u-7f3a"`
}

type VoteRequest struct {
	TargetUID string `json:"target_uid" binding:"required" example:"u-91cc"`
}

// Report godoc
// @Summary      Report a body
// @Description  Crewmate action; gathers everyone for a meeting
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        request body ReportRequest true "Reporter and found player"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/meetings/report [post]
func (h *MeetingHandler) Report(c *gin.Context) {
	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.meetingService.Report(req.UID, req.FoundUID); err != nil {
		c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "body_reported")
	c.JSON(http.StatusOK, MessageResponse{Message: "body reported"})
}

// Call godoc
// @Summary      Call an emergency meeting
// @Description  Crewmate action; blocked during sabotage and on cooldown
// @Tags         meetings
// @Accept       json
// @Produce      json
// @Param        request body CallMeetingRequest true "Caller identity"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/meetings/call [post]
func (h *MeetingHandler) Call(c *gin.Context) {
	var req CallMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.meetingService.Call(req.UID); err != nil {
		c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "meeting_called")
	c.JSON(http.StatusOK, MessageResponse{Message: "meeting called"})
}

// Confirm godoc
// @Summary      Confirm the meeting start
// @Description  Moves the gathered players from starting into the running meeting
// @Tags         meetings
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/meetings/confirm [post]
func (h *MeetingHandler) Confirm(c *gin.Context) {
	actorName, actorUID := operatorActor(c, h.authService)
	if err := h.meetingService.ConfirmStart(actorName, actorUID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "meeting_started")
	c.JSON(http.StatusOK, MessageResponse{Message: "meeting started"})
}

// End godoc
// @Summary      End the meeting
// @Description  Clears meeting flags and re-arms the post-meeting cooldowns
// @Tags         meetings
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/meetings/end [post]
func (h *MeetingHandler) End(c *gin.Context) {
	actorName, actorUID := operatorActor(c, h.authService)
	if err := h.meetingService.End(actorName, actorUID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "meeting_ended")
	c.JSON(http.StatusOK, MessageResponse{Message: "meeting ended"})
}

// Vote godoc
// @Summary      Vote a player out
// @Description  Records the meeting verdict and re-checks win conditions
// @Tags         meetings
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body VoteRequest true "Voted player"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/meetings/vote [post]
func (h *MeetingHandler) Vote(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	actorName, actorUID := operatorActor(c, h.authService)
	if err := h.meetingService.VoteOut(req.TargetUID, actorName, actorUID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "player_voted_out")
	c.JSON(http.StatusOK, MessageResponse{Message: "player voted out"})
}
