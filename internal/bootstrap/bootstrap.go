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

	appControllers "github.com/emrah/lessonhub/internal/app/controllers"
	appMigrations "github.com/emrah/lessonhub/internal/app/migrations"
	appRepos "github.com/emrah/lessonhub/internal/app/repositories"
	appRoutes "github.com/emrah/lessonhub/internal/app/routes"
	appServices "github.com/emrah/lessonhub/internal/app/services"
	"github.com/emrah/lessonhub/internal/config"
	"github.com/emrah/lessonhub/internal/db"
	appMiddleware "github.com/emrah/lessonhub/internal/middleware"
	pkgAuth "github.com/emrah/lessonhub/internal/pkg/auth"
	"github.com/emrah/lessonhub/internal/pkg/logger"
	"github.com/emrah/lessonhub/internal/pkg/session"
	"github.com/emrah/lessonhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	UserService            appServices.UserService
	StudentService         appServices.StudentService
	LessonService          appServices.LessonService
	AvailabilityService    appServices.AvailabilityService
	TimeOffService         appServices.TimeOffService
	InstrumentService      appServices.InstrumentService
	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	StudentController      *appControllers.StudentController
	LessonController       *appControllers.LessonController
	AvailabilityController *appControllers.AvailabilityController
	TimeOffController      *appControllers.TimeOffController
	InstrumentController   *appControllers.InstrumentController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	Sessions               *session.MemoryStore
	Codec                  *pkgAuth.SessionTokenCodec
	Logger                 zerolog.Logger
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
// seeds the initial admin account.
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

	if err := seed.CreateDefaultData(context.Background(), cfg, dbPool, lgr); err != nil {
		// Startup proceeds; an operator can still create the admin by hand
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.Sessions = session.NewMemoryStore(cfg.SessionTTL())
	deps.Codec = pkgAuth.NewSessionTokenCodec(cfg.Session.Secret, cfg.Session.Issuer)

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.LessonService = appServices.NewLessonService(deps.Repos.LessonRepository)
	deps.AvailabilityService = appServices.NewAvailabilityService(deps.Repos.AvailabilityRepository)
	deps.TimeOffService = appServices.NewTimeOffService(deps.Repos.TimeOffRepository)
	deps.InstrumentService = appServices.NewInstrumentService(deps.Repos.InstrumentRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Codec, deps.Sessions)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Sessions, deps.Codec, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.LessonController = appControllers.NewLessonController(deps.LessonService)
	deps.AvailabilityController = appControllers.NewAvailabilityController(deps.AvailabilityService)
	deps.TimeOffController = appControllers.NewTimeOffController(deps.TimeOffService)
	deps.InstrumentController = appControllers.NewInstrumentController(deps.InstrumentService)

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

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.StudentController,
		deps.LessonController,
		deps.AvailabilityController,
		deps.TimeOffController,
		deps.InstrumentController,
		deps.AuthMiddleware,
	)

	return router
}
