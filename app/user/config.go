package user

import (
	"errors"
	"time"

	"github.com/joefazee/holidays/internal/security"
)

const (
	DefaultTokenTTL       = time.Hour
	UserExistenceCacheTTL = 5 * time.Minute
)

type Config struct {
	SymmetricKey string        `env:"SYMMETRIC_KEY" validate:"required,min=32"`
	TokenType    string        `env:"TOKEN_TYPE" env-default:"paseto" validate:"oneof=paseto jwt"`
	TokenTTL     time.Duration `env:"TOKEN_TTL" env-default:"1h"`
}

func (c *Config) Validate() error {
	if c.SymmetricKey == "" {
		return errors.New("symmetric key must be set")
	}
	if c.TokenType == security.TokenTypePaseto && len(c.SymmetricKey) != 32 {
		return errors.New("paseto symmetric key must be exactly 32 characters")
	}
	if c.TokenTTL < 0 {
		return errors.New("token ttl must not be negative")
	}
	return nil
}

// TTL returns the configured token lifetime, or DefaultTokenTTL when unset.
func (c *Config) TTL() time.Duration {
	if c.TokenTTL <= 0 {
		return DefaultTokenTTL
	}
	return c.TokenTTL
}

func GetDefaultConfig() *Config {
	return &Config{
		SymmetricKey: "12345678901234567890123456789012",
		TokenType:    security.TokenTypePaseto,
		TokenTTL:     DefaultTokenTTL,
	}
}
