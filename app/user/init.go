package user

import (
	"github.com/gin-gonic/gin"

	"github.com/joefazee/holidays/internal/deps"
)

const (
	RepoKey        = "user_repository"
	ServiceKey     = "user_service"
	AuthServiceKey = "auth_service"
)

// ForbiddenAccountMessage is returned when a user targets another user's account.
const ForbiddenAccountMessage = "Forbidden to access an account of another user"

// InitRepositories initializes and registers repositories and services for this module
func InitRepositories(container *deps.Container) {
	userRepo := NewRepository(container.DB)
	container.RegisterRepository(RepoKey, userRepo)

	authService := NewAuthService(userRepo, container.Cache)
	container.RegisterService(AuthServiceKey, authService)

	userService := NewService(userRepo, authService, container.TokenMaker, container.Sanitizer, container.TokenTTL, container.Logger)
	container.RegisterService(ServiceKey, userService)
}

// Authenticate returns the auth middleware built from the registered services.
func Authenticate(container *deps.Container) gin.HandlerFunc {
	return AuthMiddleware(container.TokenMaker, container.GetService(AuthServiceKey).(AuthService))
}

// MountPublic mounts signup and login
func MountPublic(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	userGroup := r.Group("/users")
	userGroup.POST("/signup", handler.Signup)
	userGroup.POST("/login", handler.Login)
}

// MountAuthenticated mounts routes that act on the caller's own account
func MountAuthenticated(r *gin.RouterGroup, container *deps.Container) {
	handler := createHandler(container)

	userGroup := r.Group("/users")
	userGroup.DELETE("/:userId", RequireSelf("userId", ForbiddenAccountMessage), handler.DeleteAccount)
}

func createHandler(container *deps.Container) *Handler {
	return NewHandler(container.GetService(ServiceKey).(Service), container.Logger)
}
