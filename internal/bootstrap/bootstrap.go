package bootstrap

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/campustools/gradepoint/internal/app/controllers"
	"github.com/campustools/gradepoint/internal/app/gpa"
	appRepos "github.com/campustools/gradepoint/internal/app/repositories"
	appRoutes "github.com/campustools/gradepoint/internal/app/routes"
	appServices "github.com/campustools/gradepoint/internal/app/services"
	"github.com/campustools/gradepoint/internal/config"
	appMiddleware "github.com/campustools/gradepoint/internal/middleware"
	"github.com/campustools/gradepoint/internal/pkg/logger"
)

// ConfigPath is where LoadConfigAndSetupLogger looks for the YAML config.
var ConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	TableService    *appServices.TableService
	TableController *appControllers.TableController
	ScaleController *appControllers.ScaleController
	Repos           *appRepos.Repositories
	Logger          zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(ConfigPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	ApplyLogging(cfg)

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// ApplyLogging (re)configures the global logger from the config. Called at
// startup and again by the config watcher on file changes.
func ApplyLogging(cfg *config.Config) {
	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})
}

// BuildDependencies initializes the table store, services, and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(cfg.TableTTL())

	deps.TableService = appServices.NewTableService(
		deps.Repos.TableRepository,
		gpa.DefaultScale,
		cfg.Table.DefaultRows,
		cfg.Table.DefaultCredits,
		lgr,
	)

	deps.TableController = appControllers.NewTableController(deps.TableService, cfg.GPA.DisplayPrecision)
	deps.ScaleController = appControllers.NewScaleController(deps.TableService)

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
	router.Use(appMiddleware.RequestLogger(lgr), gin.Recovery())

	// Setup Swagger
	appRoutes.SetupSwagger(router)

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.TableController,
		deps.ScaleController,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
