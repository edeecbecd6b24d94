package calendar

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joefazee/holidays/internal/provider"
	"github.com/joefazee/holidays/internal/validator"
	"github.com/joefazee/holidays/models"
)

func TestAddHolidaysRequest_Validate(t *testing.T) {
	blank := []string{"Christmas Day", "  "}
	valid := []string{"Christmas Day"}

	tests := []struct {
		name      string
		req       AddHolidaysRequest
		wantValid bool
		wantField string
	}{
		{name: "valid without list", req: AddHolidaysRequest{CountryCode: "us", Year: 2025}, wantValid: true},
		{name: "valid with list", req: AddHolidaysRequest{CountryCode: "US", Year: 2025, Holidays: &valid}, wantValid: true},
		{name: "three letter code", req: AddHolidaysRequest{CountryCode: "USA", Year: 2025}, wantField: "countryCode"},
		{name: "digits in code", req: AddHolidaysRequest{CountryCode: "U1", Year: 2025}, wantField: "countryCode"},
		{name: "zero year", req: AddHolidaysRequest{CountryCode: "US", Year: 0}, wantField: "year"},
		{name: "negative year", req: AddHolidaysRequest{CountryCode: "US", Year: -1}, wantField: "year"},
		{name: "blank holiday name", req: AddHolidaysRequest{CountryCode: "US", Year: 2025, Holidays: &blank}, wantField: "holidays"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			req.Normalize()
			v := validator.New()

			assert.Equal(t, tt.wantValid, req.Validate(v))
			if tt.wantField != "" {
				assert.Contains(t, v.Errors, tt.wantField)
			}
		})
	}
}

func TestAddHolidaysRequest_Normalize(t *testing.T) {
	req := AddHolidaysRequest{CountryCode: " ua "}
	req.Normalize()
	assert.Equal(t, "UA", req.CountryCode)
}

func TestAddHolidaysRequest_AllowList(t *testing.T) {
	var nilInner []string
	empty := []string{}
	some := []string{"Easter"}

	assert.Nil(t, (&AddHolidaysRequest{}).AllowList())
	assert.Equal(t, []string{}, (&AddHolidaysRequest{Holidays: &nilInner}).AllowList())
	assert.Equal(t, []string{}, (&AddHolidaysRequest{Holidays: &empty}).AllowList())
	assert.Equal(t, []string{"Easter"}, (&AddHolidaysRequest{Holidays: &some}).AllowList())
}

func TestToEvents(t *testing.T) {
	userID := uuid.New()

	t.Run("Copies every field", func(t *testing.T) {
		events, err := ToEvents(userID, []provider.Holiday{
			{Date: "2025-04-21", LocalName: "Великдень", Name: "Easter Monday", CountryCode: "UA", Global: true, Fixed: false},
		})

		require.NoError(t, err)
		require.Len(t, events, 1)
		e := events[0]
		assert.Equal(t, userID, e.UserID)
		assert.Equal(t, time.Date(2025, time.April, 21, 0, 0, 0, 0, time.UTC), e.Date)
		assert.Equal(t, "Великдень", e.LocalName)
		assert.Equal(t, "Easter Monday", e.Name)
		assert.Equal(t, "UA", e.CountryCode)
		assert.True(t, e.Global)
		assert.False(t, e.Fixed)
		assert.Equal(t, uuid.Nil, e.ID)
	})

	t.Run("Empty input", func(t *testing.T) {
		events, err := ToEvents(userID, nil)
		require.NoError(t, err)
		assert.Empty(t, events)
	})

	t.Run("Bad date", func(t *testing.T) {
		_, err := ToEvents(userID, []provider.Holiday{{Date: "2025-13-01", Name: "Nope"}})
		assert.ErrorIs(t, err, models.ErrInvalidEventDate)
	})

	t.Run("Rejects invalid events", func(t *testing.T) {
		tests := []struct {
			name    string
			userID  uuid.UUID
			holiday provider.Holiday
			want    error
		}{
			{name: "missing owner", userID: uuid.Nil, holiday: provider.Holiday{Date: "2025-01-01", Name: "New Year's Day", CountryCode: "US"}, want: models.ErrInvalidUserID},
			{name: "missing country", userID: userID, holiday: provider.Holiday{Date: "2025-01-01", Name: "New Year's Day"}, want: models.ErrInvalidCountryCode},
			{name: "long country", userID: userID, holiday: provider.Holiday{Date: "2025-01-01", Name: "New Year's Day", CountryCode: "USA"}, want: models.ErrInvalidCountryCode},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				events, err := ToEvents(tt.userID, []provider.Holiday{tt.holiday})
				assert.Nil(t, events)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestToEventResponse(t *testing.T) {
	e := models.Event{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		Date:        time.Date(2025, time.December, 25, 0, 0, 0, 0, time.UTC),
		LocalName:   "Christmas Day",
		Name:        "Christmas Day",
		CountryCode: "US",
		Global:      true,
		Fixed:       true,
	}

	resp := ToEventResponse(&e)

	assert.Equal(t, e.ID, resp.ID)
	assert.Equal(t, e.UserID, resp.UserID)
	assert.Equal(t, "2025-12-25", resp.Date)
	assert.True(t, resp.Fixed)
	assert.Len(t, ToEventResponseList([]models.Event{e, e}), 2)
}
