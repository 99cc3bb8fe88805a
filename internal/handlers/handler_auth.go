package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/dto"
	"github.com/SscSPs/ledger_book_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// loginRate limits login attempts per client IP.
const loginRate = "5-M"

type authHandler struct {
	authService portssvc.AuthSvc
}

func registerAuthRoutes(r *gin.Engine, authService portssvc.AuthSvc) error {
	h := &authHandler{authService: authService}

	loginLimiter, err := middleware.NewLimiter(loginRate)
	if err != nil {
		return err
	}

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
	}
	return nil
}

// login godoc
// @Summary Log in as the administrator
// @Description Exchanges the configured admin credentials for a bearer token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, logger, err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Login failed", slog.String("username", req.Username))
		respondServiceError(c, logger, err, "log in")
		return
	}
	logger.Info("Login succeeded", slog.String("username", req.Username))
	c.JSON(http.StatusOK, resp)
}
