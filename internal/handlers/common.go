package handlers

import (
	"errors"
	"net/http"

	"github.com/pienas/amongus/internal/models"
	"github.com/pienas/amongus/internal/services"
)

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Message string `json:"message" example:"operation successful"`
}

// Type aliases so swag can resolve models in annotations.
type Player = models.Player
type GameLog = models.GameLog

// errStatus maps the service sentinel errors onto HTTP status codes. State
// conflicts (cooldowns, duplicate actions) are 409, everything else is a 400.
func errStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrSabotageAlreadyActive),
		errors.Is(err, services.ErrSabotageOnCooldown),
		errors.Is(err, services.ErrMeetingOnCooldown),
		errors.Is(err, services.ErrSabotageActive),
		errors.Is(err, services.ErrAlreadyReported),
		errors.Is(err, services.ErrKillOnCooldown):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
