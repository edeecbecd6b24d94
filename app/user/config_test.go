package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	t.Run("default is valid", func(t *testing.T) {
		cfg := GetDefaultConfig()
		assert.NoError(t, cfg.Validate())
		assert.Equal(t, time.Hour, cfg.TTL())
	})

	t.Run("missing key", func(t *testing.T) {
		cfg := &Config{TokenType: "paseto"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("paseto key must be 32", func(t *testing.T) {
		cfg := &Config{SymmetricKey: "123456789012345678901234567890123", TokenType: "paseto"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("jwt accepts longer key", func(t *testing.T) {
		cfg := &Config{SymmetricKey: "123456789012345678901234567890123", TokenType: "jwt"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("zero ttl falls back", func(t *testing.T) {
		cfg := &Config{}
		assert.Equal(t, DefaultTokenTTL, cfg.TTL())

		cfg.TokenTTL = 15 * time.Minute
		assert.Equal(t, 15*time.Minute, cfg.TTL())
	})
}
