package utils_test

import (
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/ledger_book_app/internal/utils"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := utils.GenerateJWT("admin", "secret", time.Hour, "ledger-book")
	require.NoError(t, err)

	claims, err := utils.ParseAndValidateJWT(token, "secret", "ledger-book")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)

	_, err = utils.ParseAndValidateJWT(token, "other-secret", "ledger-book")
	assert.Error(t, err)

	_, err = utils.ParseAndValidateJWT(token, "secret", "someone-else")
	assert.Error(t, err)
}

func TestParseJWT_Expired(t *testing.T) {
	token, err := utils.GenerateJWT("admin", "secret", -time.Minute, "")
	require.NoError(t, err)
	_, err = utils.ParseAndValidateJWT(token, "secret", "")
	assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
}

func TestPasswordHash(t *testing.T) {
	hash, err := utils.HashPassword("hunter2")
	require.NoError(t, err)
	assert.True(t, utils.CheckPasswordHash("hunter2", hash))
	assert.False(t, utils.CheckPasswordHash("hunter3", hash))
	assert.False(t, utils.CheckPasswordHash("hunter2", ""))
}

func TestGenerateSecureRandomString(t *testing.T) {
	s, err := utils.GenerateSecureRandomString(16)
	require.NoError(t, err)
	assert.Len(t, s, 32)
	_, err = utils.GenerateSecureRandomString(0)
	assert.Error(t, err)
}
