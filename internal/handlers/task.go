package handlers

import (
	"net/http"

	"github.com/pienas/amongus/internal/services"
	"github.com/pienas/amongus/internal/ws"

	"github.com/gin-gonic/gin"
)

type TaskHandler struct {
	taskService   *services.TaskService
	playerService *services.PlayerService
	hub           *ws.Hub
}

func NewTaskHandler(taskService *services.TaskService, playerService *services.PlayerService, hub *ws.Hub) *TaskHandler {
	return &TaskHandler{taskService: taskService, playerService: playerService, hub: hub}
}

type CompleteTaskRequest struct {
	UID    string `json:"uid" binding:"required" example:"u-7f3a"`
	Tier   string `json:"tier" binding:"required,oneof=easy medium hard" example:"easy"`
	TaskID int    `json:"task_id" binding:"required" example:"7"`
	Code   int    `json:"code" binding:"required" example:"384915"`
}

type ProgressResponse struct {
	Progress float64 `json:"progress" example:"62.5"`
}

// Complete godoc
// @Summary      Complete a task
// @Description  Verify the station code and mark the task done
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        request body CompleteTaskRequest true "Task completion"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/tasks/complete [post]
func (h *TaskHandler) Complete(c *gin.Context) {
	var req CompleteTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.taskService.CompleteTask(req.UID, req.Tier, req.TaskID, req.Code); err != nil {
		c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
		return
	}

	broadcastState(h.hub, h.playerService, "task_completed")
	c.JSON(http.StatusOK, MessageResponse{Message: "task completed"})
}

// Progress godoc
// @Summary      Overall task progress
// @Description  Weighted completion percentage across all in-game players
// @Tags         tasks
// @Produce      json
// @Success      200 {object} ProgressResponse
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/tasks/progress [get]
func (h *TaskHandler) Progress(c *gin.Context) {
	progress, err := h.taskService.Progress()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, ProgressResponse{Progress: progress})
}
