package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser(t *testing.T) {
	t.Run("TableName", func(t *testing.T) {
		u := User{}
		assert.Equal(t, "users", u.TableName())
	})

	t.Run("BeforeCreate", func(t *testing.T) {
		u := User{}
		assert.Equal(t, uuid.Nil, u.ID)

		err := u.BeforeCreate(nil)
		assert.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, u.ID)

		existingID := uuid.New()
		u2 := User{ID: existingID}
		err = u2.BeforeCreate(nil)
		assert.NoError(t, err)
		assert.Equal(t, existingID, u2.ID)
	})

	t.Run("SetPassword and CheckPassword", func(t *testing.T) {
		u := User{}
		err := u.SetPassword("short")
		assert.ErrorIs(t, err, ErrPasswordTooShort)

		require.NoError(t, u.SetPassword("correct-horse"))
		assert.NotEqual(t, "correct-horse", u.PasswordHash)
		assert.True(t, u.CheckPassword("correct-horse"))
		assert.False(t, u.CheckPassword("wrong-horse"))
	})

	t.Run("Validate", func(t *testing.T) {
		u := User{Username: "  ", PasswordHash: "hash"}
		assert.ErrorIs(t, u.Validate(), ErrInvalidUsername)

		u.Username = "alice"
		u.PasswordHash = ""
		assert.ErrorIs(t, u.Validate(), ErrInvalidPassword)

		u.PasswordHash = "hash"
		assert.NoError(t, u.Validate())
	})
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("password123")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("password123", hash))
	assert.False(t, CheckPasswordHash("password124", hash))

	_, err = HashPassword("1234567")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	hash, err = HashPassword(strings.Repeat("a", MaxPasswordBytes))
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash(strings.Repeat("a", MaxPasswordBytes), hash))

	_, err = HashPassword(strings.Repeat("a", MaxPasswordBytes+1))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	// 25 three-byte runes: short in characters, over the limit in bytes.
	_, err = HashPassword(strings.Repeat("€", 25))
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}
