package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/services"
)

type ReviewHandler struct {
	svc *services.ReviewService
}

func NewReviewHandler(svc *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

type saveReviewRequest struct {
	Week          calendar.Day `json:"week_start" swaggertype:"string" example:"2024-05-06"`
	Wins          string       `json:"wins"`
	Challenges    string       `json:"challenges"`
	Lessons       string       `json:"lessons"`
	NextWeekFocus string       `json:"next_week_focus"`
	Rating        int          `json:"rating"`
}

func (h *ReviewHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/reviews", h.Save)
	router.GET("/reviews", h.List)
}

// Save godoc
// @Summary  Create or replace the review of a week
// @Description Any day of the week may be sent; it is normalized to the Monday.
// @Tags     reviews
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body saveReviewRequest true "Review"
// @Success  200 {object} domain.WeeklyReview
// @Failure  400 {object} map[string]string
// @Router   /reviews [post]
func (h *ReviewHandler) Save(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req saveReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	review, err := h.svc.Save(c.Request.Context(), services.SaveReviewInput{
		UserID:        userID,
		Week:          req.Week,
		Wins:          req.Wins,
		Challenges:    req.Challenges,
		Lessons:       req.Lessons,
		NextWeekFocus: req.NextWeekFocus,
		Rating:        req.Rating,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, review)
}

// List godoc
// @Summary  List weekly reviews, newest first
// @Tags     reviews
// @Produce  json
// @Security BearerAuth
// @Success  200 {array} domain.WeeklyReview
// @Router   /reviews [get]
func (h *ReviewHandler) List(c *gin.Context) {
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
