package handlers

import (
	"net/http"

	"github.com/pienas/amongus/internal/services"
	"github.com/pienas/amongus/internal/ws"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	gameService   *services.GameService
	playerService *services.PlayerService
	authService   *services.AuthService
	hub           *ws.Hub
}

func NewGameHandler(gameService *services.GameService, playerService *services.PlayerService, authService *services.AuthService, hub *ws.Hub) *GameHandler {
	return &GameHandler{gameService: gameService, playerService: playerService, authService: authService, hub: hub}
}

type StartGameRequest struct {
	Imposters int `json:"imposters" binding:"required,min=1" example:"2"`
}

type KillRequest struct {
	UID       string `json:"uid" binding:"required" example:"u-7f3a"`
	TargetUID string `json:"target_uid" binding:"required" example:"u-91cc"`
}

// Start godoc
// @Summary      Start a new game
// @Description  Draw roles, deal tasks and arm the starting cooldowns
// @Tags         game
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        request body StartGameRequest true "Imposter count"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/game/start [post]
func (h *GameHandler) Start(c *gin.Context) {
	var req StartGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	actorName, actorUID := operatorActor(c, h.authService)
	if err := h.gameService.StartGame(req.Imposters, actorName, actorUID); err != nil {
		c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "game_started")
	c.JSON(http.StatusOK, MessageResponse{Message: "game started"})
}

// Reset godoc
// @Summary      Reset to lobby
// @Description  Return every non-disqualified player to the lobby state
// @Tags         game
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/game/reset [post]
func (h *GameHandler) Reset(c *gin.Context) {
	actorName, actorUID := operatorActor(c, h.authService)
	if err := h.gameService.ResetGame(actorName, actorUID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "game_reset")
	c.JSON(http.StatusOK, MessageResponse{Message: "game reset"})
}

// Pause godoc
// @Summary      Pause the game
// @Tags         game
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/game/pause [post]
func (h *GameHandler) Pause(c *gin.Context) {
	actorName, actorUID := operatorActor(c, h.authService)
	if err := h.gameService.PauseGame(actorName, actorUID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "game_paused")
	c.JSON(http.StatusOK, MessageResponse{Message: "game paused"})
}

// Unpause godoc
// @Summary      Unpause the game
// @Tags         game
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/game/unpause [post]
func (h *GameHandler) Unpause(c *gin.Context) {
	actorName, actorUID := operatorActor(c, h.authService)
	if err := h.gameService.UnpauseGame(actorName, actorUID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "game_unpaused")
	c.JSON(http.StatusOK, MessageResponse{Message: "game unpaused"})
}

// UndoWin godoc
// @Summary      Undo a declared win
// @Description  Clear the win marker and pause the game for review
// @Tags         game
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/game/undo-win [post]
func (h *GameHandler) UndoWin(c *gin.Context) {
	actorName, actorUID := operatorActor(c, h.authService)
	if err := h.gameService.UndoWin(actorName, actorUID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "win_undone")
	c.JSON(http.StatusOK, MessageResponse{Message: "win undone"})
}

// Kill godoc
// @Summary      Kill a player
// @Description  Imposter action; respects the kill cooldown
// @Tags         game
// @Accept       json
// @Produce      json
// @Param        request body KillRequest true "Killer and target"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/v1/game/kill [post]
func (h *GameHandler) Kill(c *gin.Context) {
	var req KillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.gameService.Kill(req.UID, req.TargetUID); err != nil {
		c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "player_killed")
	c.JSON(http.StatusOK, MessageResponse{Message: "player killed"})
}
