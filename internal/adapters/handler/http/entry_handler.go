package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/calendar"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/services"
)

type EntryHandler struct {
	svc *services.JournalService
}

func NewEntryHandler(svc *services.JournalService) *EntryHandler {
	return &EntryHandler{
		svc: svc,
	}
}

type saveEntryRequest struct {
	Gratitude  string       `json:"gratitude"`
	Priority1  string       `json:"priority_1"`
	Priority2  string       `json:"priority_2"`
	Priority3  string       `json:"priority_3"`
	Tasks      domain.Tasks `json:"tasks" swaggertype:"array,object"`
	Reflection string       `json:"reflection"`
	Mood       string       `json:"mood"`
}

func (h *EntryHandler) RegisterRoutes(router *gin.RouterGroup) {
	entries := router.Group("/entries")
	{
		entries.GET("", h.List)
		entries.GET("/:date", h.Get)
		entries.PUT("/:date", h.Save)
		entries.DELETE("/:date", h.Delete)
	}
}

func dateParam(c *gin.Context) (calendar.Day, bool) {
	day, err := calendar.Parse(c.Param("date"))
	if err != nil {
		badRequest(c, "invalid date, expected YYYY-MM-DD")
		return calendar.Day{}, false
	}
	return day, true
}

// optionalDateQuery returns the zero day when the parameter is absent.
func optionalDateQuery(c *gin.Context, name string) (calendar.Day, bool) {
	raw := c.Query(name)
	if raw == "" {
		return calendar.Day{}, true
	}
	day, err := calendar.Parse(raw)
	if err != nil {
		badRequest(c, "invalid "+name+", expected YYYY-MM-DD")
		return calendar.Day{}, false
	}
	return day, true
}

// Save godoc
// @Summary  Create or replace the entry of a day
// @Tags     entries
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    date path string true "Day (YYYY-MM-DD)"
// @Param    body body saveEntryRequest true "Entry content"
// @Success  200 {object} domain.JournalEntry
// @Failure  400 {object} map[string]string
// @Router   /entries/{date} [put]
func (h *EntryHandler) Save(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	date, ok := dateParam(c)
	if !ok {
		return
	}

	var req saveEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	entry, err := h.svc.Save(c.Request.Context(), services.SaveEntryInput{
		UserID:     userID,
		Date:       date,
		Gratitude:  req.Gratitude,
		Priority1:  req.Priority1,
		Priority2:  req.Priority2,
		Priority3:  req.Priority3,
		Tasks:      req.Tasks,
		Reflection: req.Reflection,
		Mood:       req.Mood,
	})
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Get godoc
// @Summary  Fetch the entry of a day
// @Tags     entries
// @Produce  json
// @Security BearerAuth
// @Param    date path string true "Day (YYYY-MM-DD)"
// @Success  200 {object} domain.JournalEntry
// @Failure  404 {object} map[string]string
// @Router   /entries/{date} [get]
func (h *EntryHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	date, ok := dateParam(c)
	if !ok {
		return
	}

	entry, err := h.svc.Get(c.Request.Context(), userID, date)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// List godoc
// @Summary  List entries, newest first
// @Tags     entries
// @Produce  json
// @Security BearerAuth
// @Param    from query string false "First day (YYYY-MM-DD), defaults to 29 days before to"
// @Param    to   query string false "Last day (YYYY-MM-DD), defaults to today"
// @Success  200 {array} domain.JournalEntry
// @Failure  400 {object} map[string]string
// @Router   /entries [get]
func (h *EntryHandler) List(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	from, ok := optionalDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := optionalDateQuery(c, "to")
	if !ok {
		return
	}

	list, err := h.svc.List(c.Request.Context(), userID, from, to)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Delete godoc
// @Summary  Delete the entry of a day
// @Tags     entries
// @Security BearerAuth
// @Param    date path string true "Day (YYYY-MM-DD)"
// @Success  204
// @Failure  404 {object} map[string]string
// @Router   /entries/{date} [delete]
func (h *EntryHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	date, ok := dateParam(c)
	if !ok {
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userID, date); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
