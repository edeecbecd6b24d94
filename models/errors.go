package models

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidUsername  = errors.New("invalid username")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordTooShort = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong  = errors.New("password must not be longer than 72 bytes")
	ErrInvalidUserID    = errors.New("invalid user ID")

	ErrInvalidCountryCode = errors.New("invalid country code")
	ErrInvalidEventDate   = errors.New("invalid event date")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")

	ErrRecordNotFound     = errors.New("record not found")
	ErrConflict           = errors.New("another user with the same username already exists")
	ErrInvalidCredentials = errors.New("wrong credentials")
)

// Resources reported by NotFoundError.
const (
	ResourceCountry    = "country"
	ResourcePopulation = "population"
	ResourceFlag       = "flag"
	ResourceHolidays   = "holidays"
	ResourceUser       = "user"
)

// NotFoundError tells the caller which resource was missing.
type NotFoundError struct {
	Resource string
}

// NotFound returns a NotFoundError for resource.
func NotFound(resource string) error {
	return &NotFoundError{Resource: resource}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// Is lets errors.Is(err, ErrRecordNotFound) match any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrRecordNotFound
}

// IsNotFound reports whether err is a NotFoundError for resource.
// An empty resource matches any NotFoundError.
func IsNotFound(err error, resource string) bool {
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		return false
	}
	return resource == "" || nf.Resource == resource
}

// NotFoundResource returns the missing resource name, or "" when err is not a NotFoundError.
func NotFoundResource(err error) string {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Resource
	}
	return ""
}
