package calendar

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/holidays/app/api"
	"github.com/joefazee/holidays/app/user"
	"github.com/joefazee/holidays/internal/logger"
	"github.com/joefazee/holidays/internal/validator"
)

// Handler handles HTTP requests for user calendars
type Handler struct {
	service Service
	logger  logger.Logger
}

// NewHandler creates a new calendar handler
func NewHandler(service Service, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// AddHolidays godoc
// @Summary Add holidays to a calendar
// @Description Save the public holidays of a country and year, optionally narrowed to a list of names
// @Tags calendar
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Param request body AddHolidaysRequest true "Country, year and optional holiday names"
// @Success 201 {object} api.Response{data=[]EventResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 403 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/users/{userId}/calendar/holidays [post]
func (h *Handler) AddHolidays(c *gin.Context) {
	userID, ok := user.ContextGetUserID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	var req AddHolidaysRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	req.Normalize()
	v := validator.New()
	if !req.Validate(v) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	events, err := h.service.AddHolidays(c.Request.Context(), userID, &req)
	if err != nil {
		api.ServiceErrorResponse(c, h.logger, err, "Failed to add holidays")
		return
	}

	api.CreatedResponse(c, "Holidays added successfully", events)
}

// GetHolidays godoc
// @Summary List calendar holidays
// @Description Get every holiday saved on the user's calendar in insertion order
// @Tags calendar
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} api.Response{data=[]EventResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 401 {object} api.Response{error=api.ErrorInfo}
// @Failure 403 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/users/{userId}/calendar/holidays [get]
func (h *Handler) GetHolidays(c *gin.Context) {
	userID, ok := user.ContextGetUserID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	events, err := h.service.GetHolidays(c.Request.Context(), userID)
	if err != nil {
		api.ServiceErrorResponse(c, h.logger, err, "Failed to fetch holidays")
		return
	}

	api.ListResponse(c, "Holidays retrieved successfully", events, len(events))
}
