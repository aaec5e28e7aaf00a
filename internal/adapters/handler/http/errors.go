package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/adapters/handler/http/middleware"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/core/domain"
	"github.com/KhamareClarke/leveragejournal.com-sub001/internal/observability"
)

var validationErrors = []error{
	domain.ErrInvalidEmail,
	domain.ErrPasswordTooShort,
	domain.ErrInvalidTimezone,
	domain.ErrInvalidDateRange,
	domain.ErrEntryDateRequired,
	domain.ErrEntryFieldTooLong,
	domain.ErrEntryTooManyTasks,
	domain.ErrEntryInFuture,
	domain.ErrGoalTitleEmpty,
	domain.ErrGoalTitleTooLong,
	domain.ErrGoalDescTooLong,
	domain.ErrInvalidProgress,
	domain.ErrReviewWeekRequired,
	domain.ErrReviewInvalidRating,
	domain.ErrReviewFieldTooLong,
}

func isValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func handleError(c *gin.Context, err error) {
	switch {
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})

	// Goals of other users are reported as missing.
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrEntryNotFound),
		errors.Is(err, domain.ErrGoalNotFound),
		errors.Is(err, domain.ErrReviewNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})

	case errors.Is(err, domain.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})

	default:
		_ = c.Error(err)
		observability.LoggerFromContext(c.Request.Context()).
			WithError(err).
			Errorf("[ERROR] request %s %s failed", c.Request.Method, c.Request.URL.Path)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// requireUser reads the id stored by the auth middleware.
func requireUser(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return "", false
	}
	return userID, true
}
