package user

import (
	"github.com/google/uuid"

	"github.com/joefazee/holidays/internal/validator"
	"github.com/joefazee/holidays/models"
)

const (
	MinUsernameLength = 3
	MaxUsernameLength = 50
	MinPasswordLength = 8
)

// SignupRequest represents the request to create a user.
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *SignupRequest) Validate(v *validator.Validator) bool {
	v.Check(validator.NotBlank(r.Username), "username", "username is required")
	v.Check(validator.MinRunes(r.Username, MinUsernameLength) && validator.MaxRunes(r.Username, MaxUsernameLength),
		"username", "username must be between 3 and 50 characters")
	v.Check(validator.Matches(r.Username, validator.UsernameRgx), "username",
		"username may only contain letters, digits, dots, dashes and underscores")
	v.Check(validator.MinRunes(r.Password, MinPasswordLength), "password", "password must be at least 8 characters")
	v.Check(len(r.Password) <= models.MaxPasswordBytes, "password", "password must not be longer than 72 bytes")
	return v.Valid()
}

// LoginRequest represents the request to log in.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	ID          uuid.UUID `json:"id"`
	AccessToken string    `json:"accessToken"`
}
