package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/omniport/acadsync/internal/acad"
	appControllers "github.com/omniport/acadsync/internal/app/controllers"
	appMigrations "github.com/omniport/acadsync/internal/app/migrations"
	appRepos "github.com/omniport/acadsync/internal/app/repositories"
	appRoutes "github.com/omniport/acadsync/internal/app/routes"
	appServices "github.com/omniport/acadsync/internal/app/services"
	"github.com/omniport/acadsync/internal/config"
	"github.com/omniport/acadsync/internal/db"
	appMiddleware "github.com/omniport/acadsync/internal/middleware"
	pkgAuth "github.com/omniport/acadsync/internal/pkg/auth"
	"github.com/omniport/acadsync/internal/pkg/helpers"
	"github.com/omniport/acadsync/internal/pkg/logger"
	"github.com/omniport/acadsync/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	ImportService       *appServices.ImportService
	SyncService         *appServices.SyncService
	AuthService         *appServices.AuthService
	DirectoryService    *appServices.DirectoryService
	AuthController      *appControllers.AuthController
	SyncController      *appControllers.SyncController
	DirectoryController *appControllers.DirectoryController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	AcadClient          *acad.Client
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
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
// seeds the lookup tables.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
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
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Partial seed data is recoverable, the next start retries
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AcadClient = acad.NewClient(acad.ClientConfig{
		BaseURL:  cfg.Acad.BaseURL,
		APIToken: cfg.Acad.APIToken,
		Timeout:  helpers.ParseDuration(cfg.Acad.Timeout, 30*time.Second),
		PageSize: cfg.Acad.PageSize,
	}, lgr)

	deps.ImportService = appServices.NewImportService(
		deps.Repos.UserRepository,
		deps.Repos.PersonRepository,
		deps.Repos.StudentRepository,
		deps.Repos.FacultyMemberRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.BranchRepository,
		deps.Repos.ResidenceRepository,
		deps.Repos.ProfileRepository,
		lgr,
	)

	deps.SyncService = appServices.NewSyncService(
		deps.AcadClient,
		deps.Repos.SyncBatchRepository,
		deps.ImportService,
		lgr,
	)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.DirectoryService = appServices.NewDirectoryService(
		deps.Repos.PersonRepository,
		deps.Repos.DepartmentRepository,
		deps.Repos.CentreRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.SyncController = appControllers.NewSyncController(deps.SyncService, deps.ImportService)
	deps.DirectoryController = appControllers.NewDirectoryController(deps.DirectoryService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.SyncController,
		deps.DirectoryController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
