package handlers

import (
	"net/http"

	"github.com/pienas/amongus/internal/services"
	"github.com/pienas/amongus/internal/ws"

	"github.com/gin-gonic/gin"
)

type PlayerHandler struct {
	playerService *services.PlayerService
	authService   *services.AuthService
	hub           *ws.Hub
}

func NewPlayerHandler(playerService *services.PlayerService, authService *services.AuthService, hub *ws.Hub) *PlayerHandler {
	return &PlayerHandler{playerService: playerService, authService: authService, hub: hub}
}

type SignInRequest struct {
	UID  string `json:"uid" binding:"required" example:"u-7f3a"`
	Name string `json:"name" binding:"required,min=1,max=100" example:"Jonas"`
}

type JoinRequest struct {
	UID string `json:"uid" binding:"required" example:"u-7f3a"`
}

type RenameRequest struct {
	UID  string `json:"uid" binding:"required" example:"u-7f3a"`
	Name string `json:"name" binding:"required,min=1,max=100" example:"Jonas II"`
}

type AdminRenameRequest struct {
	Name string `json:"name" binding:"required,min=1,max=100" example:"Jonas II"`
}

// SignIn godoc
// @Summary      Sign a player in
// @Description  Create the player record on first sight, or return the existing one
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        request body SignInRequest true "Player identity"
// @Success      200 {object} services.PlayerState
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/players/signin [post]
func (h *PlayerHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	player, err := h.playerService.SignIn(req.UID, req.Name)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	state, err := h.playerService.Get(player.UID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "player_signed_in")
	c.JSON(http.StatusOK, state)
}

// Join godoc
// @Summary      Join the lobby
// @Description  Mark the player as ready for the next game
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        request body JoinRequest true "Player identity"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/players/join [post]
func (h *PlayerHandler) Join(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.playerService.Join(req.UID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "player_joined")
	c.JSON(http.StatusOK, MessageResponse{Message: "joined"})
}

// Rename godoc
// @Summary      Rename yourself
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        request body RenameRequest true "New display name"
// @Success      200 {object} Player
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/players/rename [post]
func (h *PlayerHandler) Rename(c *gin.Context) {
	var req RenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	player, err := h.playerService.Rename(req.UID, req.Name, req.Name, req.UID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "player_renamed")
	c.JSON(http.StatusOK, player)
}

// AdminRename godoc
// @Summary      Rename a player
// @Tags         players
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        uid path string true "Player UID"
// @Param        request body AdminRenameRequest true "New display name"
// @Success      200 {object} Player
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/players/{uid}/name [put]
func (h *PlayerHandler) AdminRename(c *gin.Context) {
	var req AdminRenameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	actorName, actorUID := operatorActor(c, h.authService)
	player, err := h.playerService.Rename(c.Param("uid"), req.Name, actorName, actorUID)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "player_renamed")
	c.JSON(http.StatusOK, player)
}

// HideScreen godoc
// @Summary      Confirm the role reveal screen was hidden
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        request body JoinRequest true "Player identity"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/players/screen-hidden [post]
func (h *PlayerHandler) HideScreen(c *gin.Context) {
	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.playerService.HideScreen(req.UID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "screen_hidden")
	c.JSON(http.StatusOK, MessageResponse{Message: "screen hidden"})
}

// Disqualify godoc
// @Summary      Disqualify a player
// @Description  Permanently remove a player from the event
// @Tags         players
// @Security     BearerAuth
// @Produce      json
// @Param        uid path string true "Player UID"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/players/{uid}/disqualify [post]
func (h *PlayerHandler) Disqualify(c *gin.Context) {
	actorName, actorUID := operatorActor(c, h.authService)
	if err := h.playerService.Disqualify(c.Param("uid"), actorName, actorUID); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "player_disqualified")
	c.JSON(http.StatusOK, MessageResponse{Message: "player disqualified"})
}

// List godoc
// @Summary      List active players
// @Tags         players
// @Produce      json
// @Success      200 {array} Player
// @Failure      500 {object} ErrorResponse
// @Router       /api/v1/players [get]
func (h *PlayerHandler) List(c *gin.Context) {
	players, err := h.playerService.ListActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, players)
}

// State godoc
// @Summary      Get game state
// @Description  Full game snapshot, or a single player's view when uid is given
// @Tags         players
// @Produce      json
// @Param        uid query string false "Player UID"
// @Success      200 {object} services.GameState
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/players/state [get]
func (h *PlayerHandler) State(c *gin.Context) {
	if uid := c.Query("uid"); uid != "" {
		state, err := h.playerService.Get(uid)
		if err != nil {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusOK, state)
		return
	}

	state, err := h.playerService.GameState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}
