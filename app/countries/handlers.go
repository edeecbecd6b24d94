package countries

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/holidays/app/api"
	"github.com/joefazee/holidays/internal/logger"
	"github.com/joefazee/holidays/internal/validator"
)

// Handler handles HTTP requests for countries
type Handler struct {
	service Service
	logger  logger.Logger
}

// NewHandler creates a new country handler
func NewHandler(service Service, log logger.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  log,
	}
}

// GetAvailableCountries godoc
// @Summary List available countries
// @Description Get every country supported by the holiday registry
// @Tags countries
// @Produce json
// @Success 200 {object} api.Response{data=[]AvailableCountryResponse}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/available [get]
func (h *Handler) GetAvailableCountries(c *gin.Context) {
	countries, err := h.service.GetAvailableCountries(c.Request.Context())
	if err != nil {
		h.logger.Error(err, map[string]interface{}{"path": c.FullPath()})
		api.InternalErrorResponse(c, "Failed to fetch countries")
		return
	}

	api.ListResponse(c, "Countries retrieved successfully", countries, len(countries))
}

// GetCountryInfo godoc
// @Summary Get country info
// @Description Get borders, population series and flag of a country
// @Tags countries
// @Produce json
// @Param code path string true "Country Code (2 letters)"
// @Success 200 {object} api.Response{data=CountryInfoResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 500 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/countries/{code}/info [get]
func (h *Handler) GetCountryInfo(c *gin.Context) {
	code := NormalizeCountryCode(c.Param("code"))

	v := validator.New()
	if !ValidateCountryCode(v, code) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	info, err := h.service.GetCountryInfo(c.Request.Context(), code)
	if err != nil {
		api.ServiceErrorResponse(c, h.logger, err, "Failed to fetch country info")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Country info retrieved successfully", info)
}
