package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/joefazee/holidays/internal/provider"
	"github.com/joefazee/holidays/internal/validator"
	"github.com/joefazee/holidays/models"
)

// AddHolidaysRequest asks for the holidays of a country and year to be saved.
// A nil Holidays keeps every holiday; an empty list keeps none.
type AddHolidaysRequest struct {
	CountryCode string    `json:"countryCode" binding:"required"`
	Year        int       `json:"year"`
	Holidays    *[]string `json:"holidays"`
}

func (r *AddHolidaysRequest) Normalize() {
	r.CountryCode = strings.ToUpper(strings.TrimSpace(r.CountryCode))
}

func (r *AddHolidaysRequest) Validate(v *validator.Validator) bool {
	v.Check(validator.IsCountryCode(r.CountryCode), "countryCode", "Country code must be 2 characters long.")
	v.Check(r.Year > 0, "year", "Year must be a positive number.")
	if r.Holidays != nil {
		v.Check(validator.AllNotBlank(*r.Holidays), "holidays", "Holiday names must not be blank.")
	}
	return v.Valid()
}

// AllowList returns the filter argument for the request.
func (r *AddHolidaysRequest) AllowList() []string {
	if r.Holidays == nil {
		return nil
	}
	if *r.Holidays == nil {
		return []string{}
	}
	return *r.Holidays
}

// EventResponse is a saved holiday on a user's calendar
type EventResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Date        string    `json:"date"`
	LocalName   string    `json:"localName"`
	Name        string    `json:"name"`
	CountryCode string    `json:"countryCode"`
	Global      bool      `json:"global"`
	Fixed       bool      `json:"fixed"`
}

func ToEventResponse(e *models.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Date:        e.Date.Format(models.EventDateLayout),
		LocalName:   e.LocalName,
		Name:        e.Name,
		CountryCode: e.CountryCode,
		Global:      e.Global,
		Fixed:       e.Fixed,
	}
}

func ToEventResponseList(events []models.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = ToEventResponse(&events[i])
	}
	return responses
}

// ToEvents turns holiday records into unsaved events owned by userID.
func ToEvents(userID uuid.UUID, records []provider.Holiday) ([]models.Event, error) {
	events := make([]models.Event, 0, len(records))
	for _, h := range records {
		date, err := time.Parse(models.EventDateLayout, h.Date)
		if err != nil {
			return nil, fmt.Errorf("holiday %q has date %q: %w", h.Name, h.Date, models.ErrInvalidEventDate)
		}

		e := models.Event{
			UserID:      userID,
			Date:        date,
			LocalName:   h.LocalName,
			Name:        h.Name,
			CountryCode: h.CountryCode,
			Global:      h.Global,
			Fixed:       h.Fixed,
		}
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("holiday %q: %w", h.Name, err)
		}
		events = append(events, e)
	}
	return events, nil
}
