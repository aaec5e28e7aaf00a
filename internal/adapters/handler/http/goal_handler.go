package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/services"
)

type GoalHandler struct {
	svc *services.GoalService
}

func NewGoalHandler(svc *services.GoalService) *GoalHandler {
	return &GoalHandler{
		svc: svc,
	}
}

type createGoalRequest struct {
	Title       string       `json:"title" binding:"required"`
	Description string       `json:"description"`
	TargetDate  calendar.Day `json:"target_date" swaggertype:"string" example:"2024-12-31"`
}

type updateProgressRequest struct {
	Progress *int `json:"progress" binding:"required"`
}

func (h *GoalHandler) RegisterRoutes(router *gin.RouterGroup) {
	goals := router.Group("/goals")
	{
		goals.POST("", h.Create)
		goals.GET("", h.List)
		goals.PATCH("/:id/progress", h.UpdateProgress)
		goals.DELETE("/:id", h.Delete)
	}
}

// Create godoc
// @Summary  Create a goal
// @Tags     goals
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body createGoalRequest true "Goal"
// @Success  201 {object} domain.Goal
// @Failure  400 {object} map[string]string
// @Router   /goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req createGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	goal, err := h.svc.Create(c.Request.Context(), services.CreateGoalInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		TargetDate:  req.TargetDate,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, goal)
}

// List godoc
// @Summary  List goals
// @Tags     goals
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} domain.Goal
// @Router   /goals [get]
func (h *GoalHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	list, err := h.svc.List(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// UpdateProgress godoc
// @Summary  Set the progress of a goal, 100 completes it
// @Tags     goals
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id   path string true "Goal id"
// @Param    body body updateProgressRequest true "Progress (0-100)"
// @Success  200 {object} domain.Goal
// @Failure  400 {object} map[string]string
// @Failure  404 {object} map[string]string
// @Router   /goals/{id}/progress [patch]
func (h *GoalHandler) UpdateProgress(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req updateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "progress is required")
		return
	}

	goal, err := h.svc.UpdateProgress(c.Request.Context(), c.Param("id"), userID, *req.Progress)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, goal)
}

// Delete godoc
// @Summary  Delete a goal
// @Tags     goals
// @Security BearerAuth
// @Param    id path string true "Goal id"
// @Success  204
// @Failure  404 {object} map[string]string
// @Router   /goals/{id} [delete]
func (h *GoalHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), c.Param("id"), userID); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
