package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/holidays/internal/logger"
	"github.com/joefazee/holidays/models"
)

// ServiceErrorResponse maps a service error onto the response envelope.
// Unknown errors are logged and reported as 500 with fallback as the message.
func ServiceErrorResponse(c *gin.Context, log logger.Logger, err error, fallback string) {
	switch {
	case models.IsNotFound(err, ""):
		NotFoundResponse(c, capitalize(models.NotFoundResource(err)))
	case errors.Is(err, models.ErrRecordNotFound):
		NotFoundResponse(c, "Record")
	case errors.Is(err, models.ErrConflict):
		ErrorResponse(c, http.StatusBadRequest, "DUPLICATE_USERNAME", err.Error(), nil)
	case errors.Is(err, models.ErrInvalidCredentials):
		ErrorResponse(c, http.StatusBadRequest, "INVALID_CREDENTIALS", err.Error(), nil)
	case errors.Is(err, models.ErrInvalidUsername),
		errors.Is(err, models.ErrPasswordTooShort),
		errors.Is(err, models.ErrPasswordTooLong):
		ErrorResponse(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	default:
		if log != nil {
			log.Error(err, map[string]interface{}{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
			})
		}
		InternalErrorResponse(c, fallback)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
