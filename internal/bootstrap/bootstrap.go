// Package bootstrap wires configuration, storage, services and HTTP routing
// together at startup.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/devang/placeport/internal/app/controllers"
	appMigrations "github.com/devang/placeport/internal/app/migrations"
	appRepos "github.com/devang/placeport/internal/app/repositories"
	appRoutes "github.com/devang/placeport/internal/app/routes"
	appServices "github.com/devang/placeport/internal/app/services"
	"github.com/devang/placeport/internal/config"
	"github.com/devang/placeport/internal/db"
	appMiddleware "github.com/devang/placeport/internal/middleware"
	pkgAuth "github.com/devang/placeport/internal/pkg/auth"
	"github.com/devang/placeport/internal/pkg/email"
	"github.com/devang/placeport/internal/pkg/logger"
	"github.com/devang/placeport/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          *appServices.AuthService
	UserService          *appServices.UserService
	CompanyService       *appServices.CompanyService
	ExperienceService    *appServices.ExperienceService
	StatsService         *appServices.StatsService
	PlacementService     *appServices.PlacementService
	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	CompanyController    *appControllers.CompanyController
	ExperienceController *appControllers.ExperienceController
	StatsController      *appControllers.StatsController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Mailer               email.Sender
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  strings.ToLower(cfg.Logging.Level),
		Format: strings.ToLower(cfg.Logging.Format),
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Pool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Pool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database, lgr); err != nil {
		// A missing admin is recoverable by hand; keep starting.
		lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway...")
	}

	return database, nil
}

// SetupRedis connects the one-time-code store.
func SetupRedis(cfg *config.Config, lgr zerolog.Logger) (*redis.Client, error) {
	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Connecting to Redis...")
	client, err := db.NewRedisClient(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to Redis")
		return nil, err
	}
	return client, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, redisClient *redis.Client, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database, redisClient)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Mailer = email.NewSender(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
	}, lgr)

	deps.PlacementService = appServices.NewPlacementService(deps.Repos.TxRunner, lgr)
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.CodeRepository,
		deps.Mailer,
		deps.JWTService,
		cfg.Auth.EmailDomain,
		cfg.CodeTTL(),
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.PlacementService, lgr)
	deps.CompanyService = appServices.NewCompanyService(deps.Repos.CompanyRepository, deps.PlacementService, lgr)
	deps.ExperienceService = appServices.NewExperienceService(deps.Repos.ExperienceRepository, lgr)
	deps.StatsService = appServices.NewStatsService(deps.Repos.StatsRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, deps.PlacementService, lgr)
	deps.CompanyController = appControllers.NewCompanyController(deps.CompanyService, lgr)
	deps.ExperienceController = appControllers.NewExperienceController(deps.ExperienceService, lgr)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CompanyController,
		deps.ExperienceController,
		deps.StatsController,
		deps.AuthMiddleware,
	)

	return router
}
