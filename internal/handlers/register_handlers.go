package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/stock_trading_app/cmd/docs"
	portsrepo "github.com/SscSPs/stock_trading_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stock_trading_app/internal/core/ports/services"
	"github.com/SscSPs/stock_trading_app/internal/middleware"
	"github.com/SscSPs/stock_trading_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const healthCheckTimeout = 2 * time.Second

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// stockMiddleware is applied to the /stocks routes only.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	health portsrepo.HealthChecker,
	stockMiddleware ...gin.HandlerFunc,
) error {
	r.GET("/health", healthHandler(health))

	api := r.Group("", stockMiddleware...)
	registerStockRoutes(api, services.Stock)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// healthHandler godoc
// @Summary Health check
// @Description Reports whether the service and its stock store are reachable
// @Tags health
// @Produce  plain
// @Success 200 {string} string "OK"
// @Failure 503 {string} string "Stock store unavailable"
// @Router /health [get]
func healthHandler(health portsrepo.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
			defer cancel()
			if err := health.Ping(ctx); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
				c.String(http.StatusServiceUnavailable, "Stock store unavailable")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
