package bootstrap

import (
	"context"
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/hirehunt/hirehunt/internal/app/controllers"
	"github.com/hirehunt/hirehunt/internal/app/matching"
	appMigrations "github.com/hirehunt/hirehunt/internal/app/migrations"
	appRepos "github.com/hirehunt/hirehunt/internal/app/repositories"
	appRoutes "github.com/hirehunt/hirehunt/internal/app/routes"
	appServices "github.com/hirehunt/hirehunt/internal/app/services"
	"github.com/hirehunt/hirehunt/internal/config"
	"github.com/hirehunt/hirehunt/internal/db"
	appMiddleware "github.com/hirehunt/hirehunt/internal/middleware"
	pkgAuth "github.com/hirehunt/hirehunt/internal/pkg/auth"
	"github.com/hirehunt/hirehunt/internal/pkg/helpers"
	"github.com/hirehunt/hirehunt/internal/pkg/logger"
	"github.com/hirehunt/hirehunt/internal/pkg/notify"
	"github.com/hirehunt/hirehunt/internal/pkg/websocket"
	"github.com/hirehunt/hirehunt/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    *appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	Dispatcher     *notify.Dispatcher
	Hub            *websocket.Hub
	Database       *db.PostgresDB
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := logger.Get()
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects to PostgreSQL, applies migrations and seeds default data.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, lgr)
	if err := migrator.Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(ctx, database, cfg, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// newNotifier picks SMTP delivery when a provider is configured and the
// simulated log channel otherwise.
func newNotifier(cfg *config.Config, lgr zerolog.Logger) notify.Notifier {
	if cfg.SMTPEnabled() {
		lgr.Info().Str("host", cfg.Notification.SMTP.Host).Msg("Notifications delivered over SMTP")
		return notify.NewSMTPNotifier(notify.SMTPConfig{
			Host:     cfg.Notification.SMTP.Host,
			Port:     cfg.Notification.SMTP.Port,
			Username: cfg.Notification.SMTP.Username,
			Password: cfg.Notification.SMTP.Password,
			From:     cfg.Notification.SMTP.From,
		}, lgr)
	}

	lgr.Info().Msg("No SMTP host configured, notifications are written to the log")
	return notify.NewLogNotifier(helpers.ParseDuration(cfg.Notification.SimulatedDelay, 500*time.Millisecond), lgr)
}

func newScoreFloor(cfg *config.Config) matching.Floor {
	if cfg.Referral.ScoreFloor == config.ScoreFloorNone {
		return matching.NoFloor{}
	}
	return matching.NewRandomFloor(rand.NewSource(time.Now().UnixNano()))
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Database: database, Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Dispatcher = notify.NewDispatcher(newNotifier(cfg, lgr), notify.DispatcherConfig{
		QueueSize: cfg.Notification.QueueSize,
		Workers:   cfg.Notification.Workers,
		Timeout:   helpers.ParseDuration(cfg.Notification.Timeout, 10*time.Second),
	}, lgr)

	deps.Hub = websocket.NewHub(logger.WithComponent("live_hub"))

	repos := deps.Repos
	deps.Services = &appServices.Services{
		AuthService: appServices.NewAuthService(repos.UserRepository, deps.JWTService, lgr),
		UserService: appServices.NewUserService(repos.UserRepository, lgr),
		JobService:  appServices.NewJobService(repos.JobRepository, lgr),
		ReferralService: appServices.NewReferralService(
			repos.UserRepository,
			repos.JobRepository,
			repos.ReferralRepository,
			matching.NewScorer(newScoreFloor(cfg)),
			deps.Dispatcher,
			deps.Hub,
			appServices.ReferralOptions{UniquePerJob: cfg.Referral.UniquePerJob},
			lgr,
		),
		MessageService:     appServices.NewMessageService(repos.UserRepository, repos.MessageRepository, deps.Hub, lgr),
		WalkInDriveService: appServices.NewWalkInDriveService(repos.UserRepository, repos.WalkInDriveRepository, lgr),
		DashboardService: appServices.NewDashboardService(
			repos.UserRepository,
			repos.JobRepository,
			repos.ReferralRepository,
			repos.WalkInDriveRepository,
			lgr,
		),
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	svc := deps.Services
	deps.Controllers = &appRoutes.Controllers{
		Auth:        appControllers.NewAuthController(svc.AuthService, lgr),
		User:        appControllers.NewUserController(svc.UserService),
		Job:         appControllers.NewJobController(svc.JobService),
		Referral:    appControllers.NewReferralController(svc.ReferralService),
		Message:     appControllers.NewMessageController(svc.MessageService),
		WalkInDrive: appControllers.NewWalkInDriveController(svc.WalkInDriveService),
		Dashboard:   appControllers.NewDashboardController(svc.DashboardService),
		WebSocket:   websocket.NewHandler(deps.Hub, lgr),
	}

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
	router.Use(appMiddleware.RequestID(), appMiddleware.Logger(lgr), gin.Recovery())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, deps.Database)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
