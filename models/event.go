package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventDateLayout is the calendar date format used by the holiday provider and in API responses.
const EventDateLayout = "2006-01-02"

// Event is a saved holiday on a user's calendar.
// Events are never deduplicated: adding the same holiday twice stores two rows.
type Event struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Date        time.Time `gorm:"type:date;not null" json:"date"`
	LocalName   string    `gorm:"column:local_name;type:varchar(255);not null" json:"local_name"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	CountryCode string    `gorm:"column:country_code;type:varchar(2);not null" json:"country_code"`
	Global      bool      `gorm:"not null" json:"global"`
	Fixed       bool      `gorm:"not null" json:"fixed"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// TableName specifies the table name for Event model
func (*Event) TableName() string {
	return "events"
}

// BeforeCreate assigns a time-ordered id, so rows of one batch sort in insertion order.
func (e *Event) BeforeCreate(_ *gorm.DB) error {
	if e.ID != uuid.Nil {
		return nil
	}
	id, err := uuid.NewV7()
	if err != nil {
		return err
	}
	e.ID = id
	return nil
}

// Validate performs validation on the event model
func (e *Event) Validate() error {
	if e.UserID == uuid.Nil {
		return ErrInvalidUserID
	}
	if len(e.CountryCode) != 2 {
		return ErrInvalidCountryCode
	}
	if e.Date.IsZero() {
		return ErrInvalidEventDate
	}
	return nil
}
