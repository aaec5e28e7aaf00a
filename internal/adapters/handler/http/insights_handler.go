package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/services"
)

type InsightsHandler struct {
	svc *services.InsightsService
}

func NewInsightsHandler(svc *services.InsightsService) *InsightsHandler {
	return &InsightsHandler{svc: svc}
}

func (h *InsightsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/insights", h.GetInsights)
}

// GetInsights godoc
// @Summary  Momentum score, streak, patterns and recommendations
// @Tags     insights
// @Produce  json
// @Security BearerAuth
// @Param    tz query string false "IANA timezone used to decide today, e.g. Europe/London"
// @Success  200 {object} domain.InsightsResult
// @Failure  400 {object} map[string]string
// @Router   /insights [get]
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	result, err := h.svc.GetInsights(c.Request.Context(), userID, c.Query("tz"))
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
