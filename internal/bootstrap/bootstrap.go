package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/schoolhub/internal/app/controllers"
	appMigrations "github.com/yigit/schoolhub/internal/app/migrations"
	appRepos "github.com/yigit/schoolhub/internal/app/repositories"
	"github.com/yigit/schoolhub/internal/app/repositories/memory"
	appRoutes "github.com/yigit/schoolhub/internal/app/routes"
	appServices "github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/config"
	"github.com/yigit/schoolhub/internal/db"
	appMiddleware "github.com/yigit/schoolhub/internal/middleware"
	pkgAuth "github.com/yigit/schoolhub/internal/pkg/auth"
	"github.com/yigit/schoolhub/internal/pkg/campusmap"
	"github.com/yigit/schoolhub/internal/pkg/docindex"
	"github.com/yigit/schoolhub/internal/pkg/helpers"
	"github.com/yigit/schoolhub/internal/pkg/logger"
	"github.com/yigit/schoolhub/internal/pkg/notices"
	"github.com/yigit/schoolhub/internal/seed"
	"github.com/yigit/schoolhub/internal/web"
)

// DefaultConfigPath is read when CONFIG_PATH is unset.
const DefaultConfigPath = "configs/config.yaml"

// Collaborators are the external capabilities the app talks to. Tests pass
// fakes, production builds them from config.
type Collaborators struct {
	Repos        *appRepos.Repositories
	NoticeSource notices.Source
	Index        docindex.Index // nil disables chat
	MapRenderer  campusmap.Renderer
}

// Close releases collaborators holding files open, such as an on-disk index.
func (c Collaborators) Close() error {
	if closer, ok := c.Index.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services    *appServices.Services
	Controllers appRoutes.Controllers
	Sessions    *appMiddleware.SessionMiddleware
	Logger      zerolog.Logger
}

// Store is an open persistence backend.
type Store struct {
	Repos *appRepos.Repositories
	Close func()
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ParseConfig(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the configured store, applies migrations and seeds the
// reference data.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Store, error) {
	var store *Store

	switch cfg.Database.Driver {
	case config.DriverMemory:
		lgr.Warn().Msg("Using in-memory store, data is lost on restart")
		repos, _ := memory.NewRepositories()
		store = &Store{Repos: repos, Close: func() {}}

	default:
		lgr.Info().Msg("Establishing database connection...")
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")

		migrator := appMigrations.NewMigrator(database.Pool)
		if dir := cfg.Database.MigrationsPath; dir != "" {
			if info, err := os.Stat(dir); err == nil && info.IsDir() {
				migrator.WithFS(os.DirFS(dir), ".")
			}
		}
		if err := migrator.Migrate(ctx); err != nil {
			database.Close()
			lgr.Error().Err(err).Msg("Database migration error")
			return nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		store = &Store{Repos: appRepos.NewPostgresRepositories(database), Close: database.Close}
	}

	if err := seed.CreateDefaultData(ctx, store.Repos.Subjects, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}
	return store, nil
}

// SetupIndex loads the persisted document index, building it from the
// document directory when no index has been saved yet. A failure disables
// chat instead of stopping the server.
func SetupIndex(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) docindex.Index {
	if !cfg.Chat.Enabled {
		lgr.Info().Msg("Chat disabled by configuration")
		return nil
	}

	start := time.Now()
	index, built, err := docindex.LoadOrBuild(ctx, cfg.Chat.IndexPath, cfg.Chat.DocumentDir)
	if err != nil {
		lgr.Warn().Err(err).Str("index", cfg.Chat.IndexPath).Str("docs", cfg.Chat.DocumentDir).Msg("Document index unavailable, chat disabled")
		return nil
	}
	lgr.Info().
		Bool("built", built).
		Int("passages", index.Len()).
		Dur("took", time.Since(start)).
		Msg("Document index ready")
	return index
}

// NewCollaborators builds the production collaborators around repos.
func NewCollaborators(ctx context.Context, cfg *config.Config, repos *appRepos.Repositories, lgr zerolog.Logger) Collaborators {
	timeout := helpers.ParseDuration(cfg.Notices.Timeout, 5*time.Second)
	return Collaborators{
		Repos:        repos,
		NoticeSource: notices.NewFeedSource(cfg.Notices.FeedURL, timeout, cfg.Notices.Limit),
		Index:        SetupIndex(ctx, cfg, lgr),
		MapRenderer:  campusmap.NewLeafletRenderer(campusmap.DefaultOptions),
	}
}

// BuildDependencies initializes services, controllers and the session middleware.
func BuildDependencies(cfg *config.Config, collab Collaborators, lgr zerolog.Logger) *Dependencies {
	sessions := pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey: cfg.Session.Secret,
		TTL:       helpers.ParseDuration(cfg.Session.TTL, 12*time.Hour),
		Issuer:    cfg.Session.Issuer,
	})
	sessionMiddleware := appMiddleware.NewSessionMiddleware(sessions, cfg.Session.CookieName, cfg.Session.Secure)

	svc := appServices.NewServices(appServices.Dependencies{
		Repos:         collab.Repos,
		Sessions:      sessions,
		NoticeSource:  collab.NoticeSource,
		NoticeTimeout: helpers.ParseDuration(cfg.Notices.Timeout, 5*time.Second),
		Index:         collab.Index,
		ChatTimeout:   helpers.ParseDuration(cfg.Chat.Timeout, 10*time.Second),
		MapRenderer:   collab.MapRenderer,
	})

	return &Dependencies{
		Services: svc,
		Controllers: appRoutes.Controllers{
			Auth:      appControllers.NewAuthController(svc.Auth, sessionMiddleware),
			Feedback:  appControllers.NewFeedbackController(svc.Feedback),
			Directory: appControllers.NewDirectoryController(svc.Tutors, svc.Subjects),
			Campus:    appControllers.NewCampusController(svc.Map, svc.Notices, svc.Chat),
			Pages:     appControllers.NewPagesController(collab.Repos.Ping, svc.Chat.Enabled()),
		},
		Sessions: sessionMiddleware,
		Logger:   lgr,
	}
}

// SetupRouter configures the Gin engine with middleware, templates and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	templates, err := web.Templates(cfg.Server.TemplatesPath)
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(deps.Logger))
	router.Use(appMiddleware.Flashes(cfg.Session.Secret, cfg.Session.Secure))
	router.SetHTMLTemplate(templates)

	appRoutes.SetupRouter(router, deps.Controllers, deps.Sessions)
	return router, nil
}
