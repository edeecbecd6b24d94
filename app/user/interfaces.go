package user

import (
	"context"

	"github.com/google/uuid"

	"github.com/joefazee/holidays/models"
)

// Repository persists users. Lookups of missing users return models.NotFound(models.ResourceUser).
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

type Service interface {
	Signup(ctx context.Context, req *SignupRequest) error
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// AuthService answers whether a token subject still exists.
type AuthService interface {
	UserExists(ctx context.Context, userID uuid.UUID) (bool, error)
	Forget(ctx context.Context, userID uuid.UUID) error
}
