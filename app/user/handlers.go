package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/holidays/app/api"
	"github.com/joefazee/holidays/internal/logger"
	"github.com/joefazee/holidays/internal/validator"
)

// Handler handles HTTP requests for user operations
type Handler struct {
	service Service
	logger  logger.Logger
}

// NewHandler creates a new user handler
func NewHandler(service Service, log logger.Logger) *Handler {
	return &Handler{service: service, logger: log}
}

// Signup godoc
// @Summary      Sign up
// @Description  Create a new user account
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      SignupRequest  true  "Username and password"
// @Success      201      {object}  api.Response
// @Failure      400      {object}  api.Response{error=api.ErrorInfo}
// @Failure      500      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/users/signup [post]
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	v := validator.New()
	if !req.Validate(v) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	if err := h.service.Signup(c.Request.Context(), &req); err != nil {
		api.ServiceErrorResponse(c, h.logger, err, "Failed to sign up")
		return
	}

	api.CreatedResponse(c, "Signed up successfully", nil)
}

// Login godoc
// @Summary      Log in a user
// @Description  Authenticate a user and return an access token
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "User credentials"
// @Success      200      {object}  api.Response{data=LoginResponse}
// @Failure      400      {object}  api.Response{error=api.ErrorInfo}
// @Failure      404      {object}  api.Response{error=api.ErrorInfo}
// @Failure      500      {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/users/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		api.ServiceErrorResponse(c, h.logger, err, "Failed to log in")
		return
	}

	api.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// DeleteAccount godoc
// @Summary      Delete account
// @Description  Delete the authenticated user together with its calendar
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User ID"
// @Success      200     {object}  api.Response
// @Failure      400     {object}  api.Response{error=api.ErrorInfo}
// @Failure      401     {object}  api.Response{error=api.ErrorInfo}
// @Failure      403     {object}  api.Response{error=api.ErrorInfo}
// @Failure      404     {object}  api.Response{error=api.ErrorInfo}
// @Router       /api/v1/users/{userId} [delete]
func (h *Handler) DeleteAccount(c *gin.Context) {
	userID, ok := ContextGetUserID(c)
	if !ok {
		api.UnauthorizedResponse(c)
		return
	}

	if err := h.service.DeleteAccount(c.Request.Context(), userID); err != nil {
		api.ServiceErrorResponse(c, h.logger, err, "Failed to delete account")
		return
	}

	api.DeletedResponse(c, "Account deleted successfully")
}
