package calendar

import (
	"context"

	"github.com/google/uuid"

	"github.com/joefazee/holidays/app/holidays"
	"github.com/joefazee/holidays/internal/logger"
)

type service struct {
	repo    Repository
	users   UserFinder
	fetcher holidays.Fetcher
	logger  logger.Logger
}

// NewService creates a new calendar service
func NewService(repo Repository, users UserFinder, fetcher holidays.Fetcher, log logger.Logger) Service {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &service{
		repo:    repo,
		users:   users,
		fetcher: fetcher,
		logger:  log,
	}
}

// AddHolidays saves the filtered holidays of a country and year on the user's calendar.
// Repeated calls store duplicates; nothing is written when the user does not exist.
func (s *service) AddHolidays(ctx context.Context, userID uuid.UUID, req *AddHolidaysRequest) ([]EventResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	records, err := s.fetcher.GetHolidays(ctx, req.CountryCode, req.Year)
	if err != nil {
		return nil, err
	}

	events, err := ToEvents(user.ID, holidays.Filter(records, req.AllowList()))
	if err != nil {
		return nil, err
	}

	if len(events) == 0 {
		return []EventResponse{}, nil
	}

	if err := s.repo.CreateEvents(ctx, events); err != nil {
		s.logger.Error(err, map[string]interface{}{
			"user_id":      user.ID,
			"country_code": req.CountryCode,
			"year":         req.Year,
			"events":       len(events),
		})
		return nil, err
	}

	return ToEventResponseList(events), nil
}

func (s *service) GetHolidays(ctx context.Context, userID uuid.UUID) ([]EventResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	events, err := s.repo.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return ToEventResponseList(events), nil
}
