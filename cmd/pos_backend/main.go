package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/pos_backend/internal/core/ports/repositories"
	"github.com/SscSPs/pos_backend/internal/core/services"
	"github.com/SscSPs/pos_backend/internal/handlers"
	"github.com/SscSPs/pos_backend/internal/middleware"
	"github.com/SscSPs/pos_backend/internal/platform/config"
	"github.com/SscSPs/pos_backend/internal/repositories/database/pgsql"
	"github.com/SscSPs/pos_backend/internal/repositories/database/sqlite"
	"github.com/SscSPs/pos_backend/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// @title POS Backend API
// @version 1.0
// @description Point of sale backend: sales, goods receipts, stock and customer debt.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	repos, closeDB, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("driver", cfg.DatabaseDriver), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeDB()

	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.BootstrapAdminPhone != "" && cfg.BootstrapAdminPin != "" {
		admin, err := serviceContainer.Employee.EnsureBootstrapAdmin(ctx, cfg.BootstrapAdminName, cfg.BootstrapAdminPhone, cfg.BootstrapAdminPin)
		if err != nil {
			logger.Error("Failed to create bootstrap admin", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if admin != nil {
			logger.Info("Bootstrap admin created", slog.String("employee_id", admin.EmployeeID))
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, cors, rate limit)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		// cors.New panics on an empty origin list
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	}
	r.Use(cors.New(corsConfig))

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid RATE_LIMIT", slog.String("value", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.GinMiddlewarize(limiter.New(memory.NewStore(), rate)))

	if cfg.PrometheusEnabled {
		r.Use(middleware.PrometheusMiddleware())
	}

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("driver", cfg.DatabaseDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openRepositories connects the configured store, brings its schema up to date and returns
// the repository provider together with a close func.
func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.RepositoryProvider, func(), error) {
	switch cfg.DatabaseDriver {
	case config.DriverSQLite:
		db, err := database.NewSQLiteDB(ctx, cfg.SQLitePath)
		if err != nil {
			return repositories.RepositoryProvider{}, nil, err
		}
		if err := sqlite.ApplySchema(ctx, db); err != nil {
			_ = db.Close()
			return repositories.RepositoryProvider{}, nil, err
		}
		logger.Info("SQLite database ready.", slog.String("path", cfg.SQLitePath))
		return sqlite.NewRepositoryProvider(db), func() { _ = db.Close() }, nil

	default:
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			return repositories.RepositoryProvider{}, nil, err
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return repositories.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
	}
}
