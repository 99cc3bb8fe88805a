package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_book_app/internal/apperrors"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/dto"
	"github.com/SscSPs/ledger_book_app/internal/platform/config"
	"github.com/SscSPs/ledger_book_app/internal/utils"
)

type authService struct {
	BaseService
	username     string
	passwordHash string
	jwtSecret    string
	jwtIssuer    string
	expiry       time.Duration
	now          func() time.Time
}

// NewAuthService creates an auth service for the operator account in cfg.
func NewAuthService(cfg *config.Config) portssvc.AuthSvc {
	return &authService{
		username:     cfg.AdminUsername,
		passwordHash: cfg.AdminPasswordHash,
		jwtSecret:    cfg.JWTSecret,
		jwtIssuer:    cfg.JWTIssuer,
		expiry:       cfg.JWTExpiryDuration,
		now:          time.Now,
	}
}

var _ portssvc.AuthSvc = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.username)) == 1
	// Always run bcrypt so a wrong username costs the same as a wrong password.
	passOK := utils.CheckPasswordHash(req.Password, s.passwordHash)
	if !userOK || !passOK {
		s.LogWarn(ctx, "Login failed", slog.String("username", req.Username))
		return nil, fmt.Errorf("%w: invalid username or password", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(s.username, s.jwtSecret, s.expiry, s.jwtIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token")
		return nil, err
	}
	s.LogInfo(ctx, "Login succeeded", slog.String("username", s.username))
	return &dto.LoginResponse{Token: token, ExpiresAt: s.now().Add(s.expiry)}, nil
}
