package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/SscSPs/stock_trading_app/internal/clients/market"
	portsclients "github.com/SscSPs/stock_trading_app/internal/core/ports/clients"
	portsrepo "github.com/SscSPs/stock_trading_app/internal/core/ports/repositories"
	"github.com/SscSPs/stock_trading_app/internal/core/services"
	"github.com/SscSPs/stock_trading_app/internal/events"
	"github.com/SscSPs/stock_trading_app/internal/handlers"
	"github.com/SscSPs/stock_trading_app/internal/middleware"
	"github.com/SscSPs/stock_trading_app/internal/platform/config"
	"github.com/SscSPs/stock_trading_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/stock_trading_app/internal/repositories/database/redisstore"
	"github.com/SscSPs/stock_trading_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title Stock Trading API
// @version 1.0
// @description Creates stocks, publishes them to the market and prices them in any market currency.

// @host localhost:8080
// @BasePath /
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore, err := setupStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	marketClient := market.NewClient(cfg.StockMarketBaseURL, cfg.StockMarketTimeout)

	var publisher portsclients.StockEventPublisher = events.NoopPublisher{}
	if cfg.KafkaEnabled() {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaStockTopic)
		logger.Info("Stock events enabled", slog.Any("brokers", cfg.KafkaBrokers), slog.String("topic", cfg.KafkaStockTopic))
	}
	defer func() {
		if cerr := publisher.Close(); cerr != nil {
			logger.Error("Error closing stock event publisher", slog.String("error", cerr.Error()))
		}
	}()

	serviceContainer := services.NewServiceContainer(repos, marketClient, publisher)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), corsMiddleware(cfg))

	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return err
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, repos.Health, middleware.RateLimit(rateLimiter)); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutdown signal received, draining connections")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("Server stopped")
	return nil
}

// setupStore connects the configured stock store and returns a cleanup func.
func setupStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StockStore {
	case config.StoreRedis:
		client, err := database.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Redis stock store connected", slog.String("addr", cfg.RedisAddr))
		return redisstore.NewRepositoryProvider(client), func() {
			if err := client.Close(); err != nil {
				logger.Error("Error closing Redis client", slog.String("error", err.Error()))
			}
		}, nil

	default:
		// Initialize database connection pool (for application use)
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")

		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			database.ClosePgxPool(dbPool)
			return portsrepo.RepositoryProvider{}, nil, err
		}

		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
	}
}

func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	corsCfg.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}

	if len(cfg.CORSAllowedOrigins) == 0 || slices.Contains(cfg.CORSAllowedOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return cors.New(corsCfg)
}
