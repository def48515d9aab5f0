// Package bootstrap assembles the application: configuration, logging,
// the record store, services, controllers, and the router.
package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/krupanka/studentms/internal/app/auth"
	appControllers "github.com/krupanka/studentms/internal/app/controllers"
	appRoutes "github.com/krupanka/studentms/internal/app/routes"
	appServices "github.com/krupanka/studentms/internal/app/services"
	"github.com/krupanka/studentms/internal/app/store"
	"github.com/krupanka/studentms/internal/config"
	appMiddleware "github.com/krupanka/studentms/internal/middleware"
	pkgAuth "github.com/krupanka/studentms/internal/pkg/auth"
	"github.com/krupanka/studentms/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store               *store.Store
	AuthzService        *appAuth.AuthorizationService
	JWTService          *pkgAuth.JWTService
	AuthService         *appServices.AuthService
	StudentService      *appServices.StudentService
	TeacherService      *appServices.TeacherService
	AuthController      *appControllers.AuthController
	StudentController   *appControllers.StudentController
	TeacherController   *appControllers.TeacherController
	PrincipalController *appControllers.PrincipalController
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

// SetupStore opens the record store and loads the persisted snapshot,
// seeding the default records on first start.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*store.Store, error) {
	st := store.New(cfg.Storage.Path, cfg.Auth.DefaultStudentPassword, lgr)
	if err := st.Load(); err != nil {
		lgr.Error().Err(err).Str("path", cfg.Storage.Path).Msg("Failed to load record snapshot")
		return nil, fmt.Errorf("failed to load record snapshot: %w", err)
	}
	lgr.Info().Str("path", cfg.Storage.Path).Msg("Record store ready")
	return st, nil
}

// BuildDependencies initializes application services and controllers.
func BuildDependencies(cfg *config.Config, st *store.Store, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Store: st, Logger: lgr}

	deps.AuthzService = appAuth.NewAuthorizationService(appAuth.Secrets{
		AdminPassword:     cfg.Auth.AdminPassword,
		PrincipalPassword: cfg.Auth.PrincipalPassword,
	}, st)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(st, deps.AuthzService, deps.JWTService, lgr)
	deps.StudentService = appServices.NewStudentService(st, deps.AuthzService, lgr)
	deps.TeacherService = appServices.NewTeacherService(st, deps.AuthzService, lgr)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, lgr)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService, lgr)
	deps.PrincipalController = appControllers.NewPrincipalController(deps.TeacherService, lgr)

	return deps
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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.CORS())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.TeacherController,
		deps.PrincipalController,
	)

	return router
}

// LogStartupBanner announces the listening port and the default role
// credentials, mirroring what operators expect to see on first start.
func LogStartupBanner(cfg *config.Config, lgr zerolog.Logger) {
	lgr.Info().Str("port", cfg.Server.Port).Msg("Student management server starting")
	lgr.Info().Str("password", cfg.Auth.AdminPassword).Msg("Admin login: password only")
	lgr.Info().Str("password", cfg.Auth.PrincipalPassword).Msg("Principal login: password only")
	lgr.Info().Msg("Teacher login: email and password, after principal approval")
	lgr.Info().Str("password", cfg.Auth.DefaultStudentPassword).Msg("Student login: numeric ID and password")
}
