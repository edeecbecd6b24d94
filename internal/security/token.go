package security

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Supported token types.
const (
	TokenTypePaseto = "paseto"
	TokenTypeJWT    = "jwt"
)

// Maker makes a new token
type Maker interface {

	// CreateToken creates a new token for a specific user and duration
	CreateToken(userID uuid.UUID, username string, duration time.Duration) (string, *Payload, error)

	// VerifyToken checks if the token is valid or not
	VerifyToken(token string) (*Payload, error)
}

// NewMaker returns the Maker configured by tokenType.
func NewMaker(tokenType, symmetricKey string) (Maker, error) {
	switch tokenType {
	case TokenTypePaseto, "":
		return NewPasetoMaker(symmetricKey)
	case TokenTypeJWT:
		return NewJWTMaker(symmetricKey)
	default:
		return nil, fmt.Errorf("unsupported token type %q", tokenType)
	}
}
