package user

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/joefazee/holidays/app/api"
	"github.com/joefazee/holidays/internal/security"
)

const (
	AuthorizationHeaderKey  = "Authorization"
	AuthorizationTypeBearer = "Bearer"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID   = "userID"
	ContextUsername = "username"
)

// AuthMiddleware verifies the bearer token and that its subject still exists.
func AuthMiddleware(tokenMaker security.Maker, authService AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Vary", AuthorizationHeaderKey)

		fields := strings.Fields(c.GetHeader(AuthorizationHeaderKey))
		if len(fields) != 2 || !strings.EqualFold(fields[0], AuthorizationTypeBearer) {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		exists, err := authService.UserExists(c.Request.Context(), payload.UserID)
		if err != nil {
			_ = c.Error(err)
			api.InternalErrorResponse(c, "Could not verify user")
			c.Abort()
			return
		}
		if !exists {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		c.Set(ContextUserID, payload.UserID)
		c.Set(ContextUsername, payload.Username)
		c.Next()
	}
}

// RequireSelf rejects requests whose path parameter param is not the authenticated user.
// A malformed id is a 400; another user's id is a 403 carrying message.
func RequireSelf(param, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		target, err := uuid.Parse(c.Param(param))
		if err != nil {
			api.BadRequestResponse(c, "invalid user id")
			c.Abort()
			return
		}

		current, ok := ContextGetUserID(c)
		if !ok {
			api.UnauthorizedResponse(c)
			c.Abort()
			return
		}

		if current != target {
			api.ForbiddenResponse(c, message)
			c.Abort()
			return
		}

		c.Next()
	}
}

// ContextGetUserID returns the authenticated user id, if any.
func ContextGetUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
