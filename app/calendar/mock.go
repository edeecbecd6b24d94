package calendar

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/joefazee/holidays/models"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateEvents(ctx context.Context, events []models.Event) error {
	return m.Called(ctx, events).Error(0)
}

func (m *MockRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]models.Event, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

type MockUserFinder struct {
	mock.Mock
}

func (m *MockUserFinder) GetByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockService struct {
	mock.Mock
}

func (m *MockService) AddHolidays(ctx context.Context, userID uuid.UUID, req *AddHolidaysRequest) ([]EventResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]EventResponse), args.Error(1)
}

func (m *MockService) GetHolidays(ctx context.Context, userID uuid.UUID) ([]EventResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]EventResponse), args.Error(1)
}
