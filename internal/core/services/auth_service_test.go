package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
	"github.com/SscSPs/ledger_book_app/internal/core/services"
	"github.com/SscSPs/ledger_book_app/internal/dto"
	"github.com/SscSPs/ledger_book_app/internal/platform/config"
	"github.com/SscSPs/ledger_book_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := utils.HashPassword("hunter2")
	require.NoError(t, err)
	svc := services.NewAuthService(&config.Config{
		AdminUsername:     "admin",
		AdminPasswordHash: hash,
		JWTSecret:         "secret",
		JWTIssuer:         "ledger",
		JWTExpiryDuration: time.Hour,
	})
	ctx := context.Background()

	resp, err := svc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "hunter2"})
	require.NoError(t, err)
	claims, err := utils.ParseAndValidateJWT(resp.Token, "secret", "ledger")
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "admin", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Login(ctx, dto.LoginRequest{Username: "root", Password: "hunter2"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
