package calendar

import (
	"context"

	"github.com/google/uuid"

	"github.com/joefazee/holidays/models"
)

// Repository stores calendar events.
type Repository interface {
	// CreateEvents inserts the whole batch in one transaction.
	CreateEvents(ctx context.Context, events []models.Event) error
	// FindByUserID returns a user's events in insertion order.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Event, error)
}

// UserFinder resolves calendar owners.
type UserFinder interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

type Service interface {
	AddHolidays(ctx context.Context, userID uuid.UUID, req *AddHolidaysRequest) ([]EventResponse, error)
	GetHolidays(ctx context.Context, userID uuid.UUID) ([]EventResponse, error)
}
