package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_book_app/cmd/docs"
	"github.com/SscSPs/ledger_book_app/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_book_app/internal/core/ports/services"
	"github.com/SscSPs/ledger_book_app/internal/middleware"
	"github.com/SscSPs/ledger_book_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := domain.RegisterISODate(v); err != nil {
			return err
		}
	}

	registerHealthRoute(r, services.Health)

	var v1Middleware []gin.HandlerFunc
	if cfg.AuthEnabled {
		if err := registerAuthRoutes(r, services.Auth); err != nil {
			return err
		}
		v1Middleware = append(v1Middleware, middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	}

	setupAPIV1Routes(r, services, v1Middleware...)
	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific route registrations
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer, mw ...gin.HandlerFunc) {
	v1 := r.Group("/api/v1", mw...)

	registerEntityRoutes(v1, domain.Customer, services)
	registerEntityRoutes(v1, domain.Supplier, services)
	registerDashboardRoutes(v1, services.Dashboard, services.Settings)
	registerSettingsRoutes(v1, services.Settings)
	registerBackupRoutes(v1, services.Backup)
}

// registerHealthRoute reports 503 while the storage backend is unreachable.
func registerHealthRoute(r *gin.Engine, health portssvc.HealthSvc) {
	r.GET("/health", func(c *gin.Context) {
		if err := health.Ping(c.Request.Context()); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
