package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/prayaas/yuvasetu/internal/app/controllers"
	"github.com/prayaas/yuvasetu/internal/app/migrations"
	"github.com/prayaas/yuvasetu/internal/app/repositories"
	"github.com/prayaas/yuvasetu/internal/app/routes"
	"github.com/prayaas/yuvasetu/internal/app/services"
	"github.com/prayaas/yuvasetu/internal/config"
	"github.com/prayaas/yuvasetu/internal/db"
	"github.com/prayaas/yuvasetu/internal/middleware"
	"github.com/prayaas/yuvasetu/internal/pkg/auth"
	"github.com/prayaas/yuvasetu/internal/pkg/filestorage"
	"github.com/prayaas/yuvasetu/internal/pkg/helpers"
	"github.com/prayaas/yuvasetu/internal/pkg/logger"
	"github.com/prayaas/yuvasetu/internal/pkg/metrics"
	"github.com/prayaas/yuvasetu/internal/seed"
)

// Dependencies holds the wired application components
type Dependencies struct {
	Repos       *repositories.Repositories
	Services    *services.Services
	Controllers *controllers.Controllers
	JWTService  *auth.JWTService
	FileStorage *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin account
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection established")

	migrator := migrations.NewMigrator(dbPool)
	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrateCtx, migrateCancel := context.WithTimeout(context.Background(), helpers.ParseDuration("60s", time.Minute))
	defer migrateCancel()
	if err := migrator.MigrateFromDirectory(migrateCtx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.EnsureDefaultAdmin(migrateCtx, repositories.NewUserRepository(dbPool)); err != nil {
		lgr.Error().Err(err).Msg("Failed to seed default admin")
		return nil, err
	}

	return dbPool, nil
}

// BuildDependencies constructs repositories, services and controllers
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		TokenExpiration: helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	repos := repositories.NewRepositories(dbPool)
	svcs := services.NewServices(repos, jwtService, storage)
	ctrls := controllers.NewControllers(svcs)

	lgr.Info().Msg("Application dependencies wired")

	return &Dependencies{
		Repos:       repos,
		Services:    svcs,
		Controllers: ctrls,
		JWTService:  jwtService,
		FileStorage: storage,
	}, nil
}

// SetupRouter builds the gin engine with middleware and routes
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(metrics.GinMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	routes.SetupRoutes(router, deps.Controllers, deps.JWTService)

	lgr.Info().Msg("Router configured")
	return router
}
